/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package fonts provides the fonts command for tokensync.
package fonts

import (
	"github.com/spf13/cobra"

	"bennypowers.dev/tokensync/cmd/internal/cli"
	"bennypowers.dev/tokensync/syncer"
)

// Cmd is the fonts cobra command.
var Cmd = &cobra.Command{
	Use:   "fonts",
	Short: "Sync Figma text styles into the stylesheet",
	Long: `Regenerate font utility classes from a Figma text style export.

The export is either JSON ({"textStyles": [...]}) or CSS holding --font-*
variables and .font-* { @apply ...; } rules. Each text style becomes one class
applying a family, weight, size, line height and, unless normal, tracking.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("source", "s", "", "Figma text style export (default tools/figma-fonts.json)")
}

func run(cmd *cobra.Command, args []string) error {
	source, _ := cmd.Flags().GetString("source")
	return cli.Sync(cmd, syncer.Mode{Fonts: true}, cli.Overrides{Fonts: source})
}
