/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides the version command for tokensync.
package version

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokensync/internal/version"
)

// Cmd is the version cobra command.
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the tokensync version with the commit, build time and Go version it was built from.`,
	Args:  cobra.NoArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().String("output", "text", "Output format (text, json)")
	Cmd.Flags().Bool("short", false, "Print the version string only")
}

func run(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	short, _ := cmd.Flags().GetBool("short")
	return write(cmd.OutOrStdout(), version.Read(), output, short)
}

func write(w io.Writer, b version.Build, output string, short bool) error {
	switch {
	case short:
		_, err := fmt.Fprintln(w, b.Version)
		return err
	case output == "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(b); err != nil {
			return fmt.Errorf("error encoding version info: %w", err)
		}
		return nil
	default:
		if _, err := fmt.Fprintf(w, "tokensync %s\n", b); err != nil {
			return err
		}
		if b.Time != "" || b.GoVersion != "" {
			_, err := fmt.Fprintf(w, "  built %s with %s\n", orUnknown(b.Time), orUnknown(b.GoVersion))
			return err
		}
		return nil
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
