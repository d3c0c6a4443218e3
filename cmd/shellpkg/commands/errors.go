// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-shell-packager/packaging"
)

// Exit codes returned by Execute.
const (
	ExitOK                 = 0
	ExitUsage              = 1
	ExitFailure            = 2
	ExitAuthentication     = 3
	ExitShellNotFound      = 4
	ExitFeatureUnavailable = 5
)

// errUsage marks bad flags, arguments or configuration.
var errUsage = errors.New("usage error")

func usageError(err error) error {
	return fmt.Errorf("%w: %w", errUsage, err)
}

// usageArgs marks argument validation failures as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}

// ExitCode maps err to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, errUsage),
		errors.Is(err, packaging.ErrInvalidConfig),
		errors.Is(err, packaging.ErrInvalidArgument):
		return ExitUsage
	case errors.Is(err, packaging.ErrAuthenticationFailed):
		return ExitAuthentication
	case errors.Is(err, packaging.ErrShellNotFound):
		return ExitShellNotFound
	case errors.Is(err, packaging.ErrFeatureUnavailable):
		return ExitFeatureUnavailable
	default:
		return ExitFailure
	}
}
