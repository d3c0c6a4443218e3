// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks the merged configuration. The password is deliberately
// left out; see [StructuredConfig.RequirePassword].
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Server.Host) == "" {
		return fmt.Errorf("%w: host is required", ErrInvalidServerConfigs)
	}
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidServerConfigs, cfg.Server.Port)
	}
	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	if strings.TrimSpace(cfg.Auth.Username) == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidAuthConfigs)
	}
	if strings.TrimSpace(cfg.Auth.Domain) == "" {
		return fmt.Errorf("%w: domain is required", ErrInvalidAuthConfigs)
	}

	switch cfg.Log.Format {
	case LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidLogConfigs, cfg.Log.Format)
	}

	return nil
}

// RequirePassword returns [ErrMissingPassword] if no password was supplied.
func (cfg *StructuredConfig) RequirePassword() error {
	if cfg.Auth.Password == "" {
		return ErrMissingPassword
	}
	return nil
}
