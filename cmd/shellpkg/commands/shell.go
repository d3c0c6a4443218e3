// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package commands

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-shell-packager/models"
)

func (c *cli) newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <archive>",
		Short: "Add a new shell from an archive",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.connect(cmd.Context())
			if err != nil {
				return err
			}

			if err = client.AddShell(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("add shell: %w", err)
			}

			name := models.ShellPackage{Path: args[0]}.TargetName()
			_, err = fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Added shell"), name)
			return err
		},
	}
}

func (c *cli) newUpdateCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "update <archive>",
		Short: "Replace an installed shell with a new archive",
		Long: `Replace an installed shell with a new archive.

The shell name defaults to the archive file name without its extension;
use --name to target a different shell.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.connect(cmd.Context())
			if err != nil {
				return err
			}

			if err = client.UpdateShell(cmd.Context(), args[0], name); err != nil {
				return fmt.Errorf("update shell: %w", err)
			}

			target := models.ShellPackage{Path: args[0], Name: name}.TargetName()
			_, err = fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Updated shell"), target)
			return err
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "Target shell name (default: archive base name)")

	return cmd
}

func (c *cli) newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Show the server's descriptor of a shell",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.connect(cmd.Context())
			if err != nil {
				return err
			}

			shell, err := client.GetShell(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("get shell: %w", err)
			}

			var out bytes.Buffer
			if err = json.Indent(&out, shell, "", "  "); err != nil {
				return fmt.Errorf("format shell: %w", err)
			}
			out.WriteByte('\n')

			_, err = cmd.OutOrStdout().Write(out.Bytes())
			return err
		},
	}
}

func (c *cli) newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"rm"},
		Short:   "Delete an installed shell",
		Args:    usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.connect(cmd.Context())
			if err != nil {
				return err
			}

			if err = client.DeleteShell(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("delete shell: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Deleted shell"), args[0])
			return err
		},
	}
}
