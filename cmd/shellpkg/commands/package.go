// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func (c *cli) newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <package>",
		Short: "Import a package archive into the server",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.connect(cmd.Context())
			if err != nil {
				return err
			}

			if err = client.ImportPackage(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("import package: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Imported package"), filepath.Base(args[0]))
			return err
		},
	}
}

func (c *cli) newExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <topology>...",
		Short: "Export topologies into a package archive",
		Long: `Export one or more topologies into a package archive.

The archive is written to --output, or to "<first topology>.zip" in the
current directory when the flag is omitted.`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.connect(cmd.Context())
			if err != nil {
				return err
			}

			archive, err := client.ExportPackage(cmd.Context(), args)
			if err != nil {
				return fmt.Errorf("export package: %w", err)
			}

			path := output
			if path == "" {
				path = args[0] + ".zip"
			}
			if dir := filepath.Dir(path); dir != "." {
				if err = c.fs.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("create output directory: %w", err)
				}
			}
			if err = afero.WriteFile(c.fs, path, archive, 0o644); err != nil {
				return fmt.Errorf("write package: %w", err)
			}

			c.log.Debug().Str("path", path).Int("bytes", len(archive)).Msg("package written")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Exported package to"), path)
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: <first topology>.zip)")

	return cmd
}
