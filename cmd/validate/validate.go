/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for tokensync.
package validate

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"bennypowers.dev/tokensync/cmd/internal/cli"
	"bennypowers.dev/tokensync/fs"
	"bennypowers.dev/tokensync/syncer"
)

// ErrValidation is returned when a check fails.
var ErrValidation = errors.New("validation failed")

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the exports and the stylesheet without writing",
	Long: `Run a complete sync without writing anything and report problems: missing or
malformed exports, semantic colors without a match, hover colors without a base.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("strict", false, "Fail on warnings")
}

func run(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	quiet := viper.GetBool(cli.KeyQuiet)

	filesystem := fs.NewOSFileSystem()
	opts, err := cli.Options(filesystem, cli.Overrides{})
	if err != nil {
		return err
	}
	return Check(cmd, filesystem, opts, strict, quiet)
}

// Check runs both syncs as a dry run and reports the outcome on the
// command's output.
func Check(cmd *cobra.Command, filesystem fs.FileSystem, opts syncer.Options, strict, quiet bool) error {
	opts.DryRun = true
	opts.Out = io.Discard
	w := cmd.OutOrStdout()

	report, err := syncer.New(filesystem, opts).Run(cmd.Context(), syncer.Mode{Colors: true, Fonts: true})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	warnings := multierr.Errors(report.Warnings)
	if !quiet {
		fmt.Fprintf(w, "%s: %d semantic colors, %d font classes\n",
			opts.Stylesheet, len(report.Semantic), len(report.FontClasses))
		if report.Changed {
			fmt.Fprintln(w, "  stylesheet is out of date")
		}
	}
	if strict && len(warnings) > 0 {
		return fmt.Errorf("%w: %d warnings", ErrValidation, len(warnings))
	}
	if !quiet && len(warnings) == 0 {
		fmt.Fprintln(w, "All sources valid.")
	}
	return nil
}
