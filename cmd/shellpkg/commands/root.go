// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package commands implements the shellpkg CLI.
package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-shell-packager/internal/config"
	"github.com/MKhiriev/go-shell-packager/internal/logger"
	"github.com/MKhiriev/go-shell-packager/models"
	"github.com/MKhiriev/go-shell-packager/packaging"
)

// clientFactory opens an authenticated session.
type clientFactory func(ctx context.Context, cfg packaging.Config, opts ...packaging.Option) (packaging.PackagingClient, error)

// deps are the collaborators commands use; tests replace them.
type deps struct {
	info         models.AppBuildInfo
	fs           afero.Fs
	newClient    clientFactory
	readPassword func() (string, error)
}

// cli carries state shared by the commands of one root command.
type cli struct {
	deps
	flags *config.Flags
	log   *logger.Logger
}

func newPackagingClient(ctx context.Context, cfg packaging.Config, opts ...packaging.Option) (packaging.PackagingClient, error) {
	c, err := packaging.New(ctx, cfg, opts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// NewRootCmd returns the shellpkg root command wired to the real API client,
// the OS filesystem and a terminal password prompt.
func NewRootCmd(info models.AppBuildInfo) *cobra.Command {
	return newRootCmd(deps{
		info:         info,
		fs:           afero.NewOsFs(),
		newClient:    newPackagingClient,
		readPassword: promptPassword,
	})
}

func newRootCmd(d deps) *cobra.Command {
	c := &cli{deps: d, log: logger.Nop()}

	root := &cobra.Command{
		Use:   "shellpkg",
		Short: "Manage shells and packages on a CloudShell server",
		Long: `shellpkg talks to the packaging REST API of a CloudShell server.

It logs in once per invocation and then adds, updates, inspects or deletes
shells, lists installed standards, and imports or exports packages.

Connection settings come from flags, SHELLPKG_* environment variables and an
optional JSON file, in that order of precedence.`,
		Example: `  # Add a new shell
  shellpkg add dist/NutShell.zip --host cloudshell --username admin

  # Update an installed shell under an explicit name
  shellpkg update dist/NutShell.zip --name my_awesome_shell

  # List installed standards
  SHELLPKG_SERVER_HOST=cloudshell shellpkg standards`,
		Args:          usageArgs(cobra.NoArgs),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	c.flags = config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		c.newAddCmd(),
		c.newUpdateCmd(),
		c.newGetCmd(),
		c.newDeleteCmd(),
		c.newStandardsCmd(),
		c.newImportCmd(),
		c.newExportCmd(),
		c.newVersionCmd(),
	)

	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute(ctx context.Context, info models.AppBuildInfo) int {
	root := NewRootCmd(info)

	err := root.ExecuteContext(ctx)
	if err != nil {
		_, _ = fmt.Fprintln(root.ErrOrStderr(), errorStyle.Render("Error:"), err)
	}
	return ExitCode(err)
}

// connect resolves the configuration, prompts for a missing password and
// logs in.
func (c *cli) connect(ctx context.Context) (packaging.PackagingClient, error) {
	cfg, err := config.GetStructuredConfig(c.flags)
	if err != nil {
		return nil, usageError(err)
	}

	log, err := newLogger(cfg.Log)
	if err != nil {
		return nil, usageError(err)
	}
	c.log = log

	if err = cfg.RequirePassword(); err != nil {
		password, promptErr := c.readPassword()
		if promptErr != nil {
			return nil, usageError(errors.Join(err, promptErr))
		}
		cfg.Auth.Password = password
	}

	c.log.Debug().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Str("user", cfg.Auth.Username).
		Msg("connecting")

	return c.newClient(ctx, cfg.Packaging(),
		packaging.WithFs(c.fs),
		packaging.WithLogger(c.log.Logger),
	)
}

func newLogger(cfg config.Log) (*logger.Logger, error) {
	var log *logger.Logger
	if cfg.Format == config.LogFormatJSON {
		log = logger.NewLogger("shellpkg")
	} else {
		log = logger.NewConsoleLogger("shellpkg")
	}

	return log.WithLevelName(cfg.Level)
}
