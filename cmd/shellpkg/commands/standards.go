// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-shell-packager/models"
)

func (c *cli) newStandardsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "standards",
		Short: "List the standards installed on the server",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := c.connect(cmd.Context())
			if err != nil {
				return err
			}

			standards, err := client.GetInstalledStandards(cmd.Context())
			if err != nil {
				return fmt.Errorf("get installed standards: %w", err)
			}

			if len(standards) == 0 {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), faintStyle.Render("No standards installed."))
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderStandards(standards))
			return err
		},
	}
}

func renderStandards(standards []models.Standard) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("STANDARD", "VERSIONS").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, s := range standards {
		name := s.Name()
		if name == "" {
			name = "?"
		}
		t.Row(name, strings.Join(s.Versions(), ", "))
	}

	return t.Render()
}
