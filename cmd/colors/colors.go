/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package colors provides the colors command for tokensync.
package colors

import (
	"github.com/spf13/cobra"

	"bennypowers.dev/tokensync/cmd/internal/cli"
	"bennypowers.dev/tokensync/syncer"
)

// Cmd is the colors cobra command.
var Cmd = &cobra.Command{
	Use:   "colors",
	Short: "Sync Figma colors into the stylesheet",
	Long: `Regenerate color primitives, semantic color variables and color utility
classes from a Figma color export.

Custom primitives are converted to oklch() and declared in @theme. Each semantic
color is matched to its nearest primitive, once for the light theme and once for
the dark theme, and bg-, text- and border- roles get a utility class with a
:hover variant where the export defines one.

Examples:
  # Use the paths from .config/tokensync.yaml
  tokensync colors

  # Preview the result
  tokensync colors --dry-run --source design/colors.json`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("source", "s", "", "Figma color export (default tools/figma-colors.json)")
}

func run(cmd *cobra.Command, args []string) error {
	source, _ := cmd.Flags().GetString("source")
	return cli.Sync(cmd, syncer.Mode{Colors: true}, cli.Overrides{Colors: source})
}
