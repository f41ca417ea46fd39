/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package sync provides the sync command for tokensync.
package sync

import (
	"github.com/spf13/cobra"

	"bennypowers.dev/tokensync/cmd/internal/cli"
	"bennypowers.dev/tokensync/syncer"
)

// Cmd is the sync cobra command.
var Cmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync colors and fonts in one pass",
	Long: `Regenerate both colors and fonts, reading the stylesheet once and writing it
once. Both exports must be present and valid before anything is written.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().String("colors", "", "Figma color export")
	Cmd.Flags().String("fonts", "", "Figma text style export")
}

func run(cmd *cobra.Command, args []string) error {
	colors, _ := cmd.Flags().GetString("colors")
	fonts, _ := cmd.Flags().GetString("fonts")
	return cli.Sync(cmd, syncer.Mode{Colors: true, Fonts: true}, cli.Overrides{Colors: colors, Fonts: fonts})
}
