/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for tokensync.
package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokensync/cmd/colors"
	"bennypowers.dev/tokensync/cmd/fonts"
	"bennypowers.dev/tokensync/cmd/internal/cli"
	"bennypowers.dev/tokensync/cmd/list"
	"bennypowers.dev/tokensync/cmd/match"
	"bennypowers.dev/tokensync/cmd/sync"
	"bennypowers.dev/tokensync/cmd/validate"
	"bennypowers.dev/tokensync/cmd/version"
	"bennypowers.dev/tokensync/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "tokensync",
	Short: "Sync Figma design tokens into a Tailwind stylesheet",
	Long: `tokensync regenerates the theme variables and utility classes of a Tailwind 4
stylesheet from Figma color and text style exports, keeping hand-written CSS intact.

Configuration is read from .config/tokensync.{yaml,yml,json}.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetOutput(cmd.ErrOrStderr())
		logger.SetQuiet(viper.GetBool(cli.KeyQuiet))
		if viper.GetBool(cli.KeyVerbose) {
			logger.SetVerbose(true)
		}
	},
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringP(cli.KeyConfig, "c", "", "Config file (default .config/tokensync.{yaml,yml,json})")
	flags.StringP(cli.KeyStylesheet, "o", "", "Stylesheet to regenerate")
	flags.BoolP(cli.KeyQuiet, "q", false, "Only print warnings and errors")
	flags.BoolP(cli.KeyVerbose, "v", false, "Print debug output")
	flags.Bool(cli.KeyDryRun, false, "Print the stylesheet instead of writing it")
	flags.StringP(cli.KeyFormat, "f", "text", "Summary format (text, json)")
	rootCmd.MarkFlagsMutuallyExclusive(cli.KeyQuiet, cli.KeyVerbose)

	for _, key := range []string{cli.KeyConfig, cli.KeyStylesheet, cli.KeyQuiet, cli.KeyVerbose, cli.KeyDryRun, cli.KeyFormat} {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}

	rootCmd.AddCommand(colors.Cmd)
	rootCmd.AddCommand(fonts.Cmd)
	rootCmd.AddCommand(sync.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(match.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
