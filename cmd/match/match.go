/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package match provides the match command for tokensync.
package match

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokensync/cmd/internal/cli"
	"bennypowers.dev/tokensync/cmd/render"
	"bennypowers.dev/tokensync/color"
	"bennypowers.dev/tokensync/fs"
	"bennypowers.dev/tokensync/internal/logger"
	"bennypowers.dev/tokensync/palette"
	"bennypowers.dev/tokensync/parser"
	"bennypowers.dev/tokensync/token"
)

// Cmd is the match cobra command.
var Cmd = &cobra.Command{
	Use:   "match <color>...",
	Short: "Find the nearest primitive for colors",
	Long: `Find the primitive color a semantic color would resolve to.

Candidates are the custom primitives of the color export followed by the
Tailwind palette, compared in OKLCH.

Examples:
  tokensync match '#3b82f6' 'oklch(0.7 0.15 40)'
  tokensync match --standard rgb(10,20,30)`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("standard", false, "Match against the Tailwind palette only")
	Cmd.Flags().String("output", "table", "Output format: table, json")
}

// Result is the match for one queried color.
type Result struct {
	Query    string  `json:"query"`
	OkLCH    string  `json:"oklch,omitempty"`
	Match    string  `json:"match,omitempty"`
	Value    string  `json:"value,omitempty"`
	Distance float64 `json:"distance"`
	Error    string  `json:"error,omitempty"`
}

func run(cmd *cobra.Command, args []string) error {
	standard, _ := cmd.Flags().GetBool("standard")
	output, _ := cmd.Flags().GetString("output")

	var custom []*token.ColorGroup
	if !standard {
		filesystem := fs.NewOSFileSystem()
		opts, err := cli.Options(filesystem, cli.Overrides{})
		if err != nil {
			return err
		}
		if filesystem.Exists(opts.Colors) {
			result, err := parser.ParseColorsFile(filesystem, opts.Colors)
			if err != nil {
				return err
			}
			custom = result.Primitives.All()
		} else {
			logger.Debug("%s not found, matching the standard palette", opts.Colors)
		}
	}

	results := Nearest(palette.WithStandard(custom), args)
	w := cmd.OutOrStdout()
	if output == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	return outputTable(w, results, cli.IsTerminal(w))
}

// Nearest matches every query against the catalogue.
func Nearest(cat *palette.Catalogue, queries []string) []Result {
	results := make([]Result, 0, len(queries))
	for _, q := range queries {
		r := Result{Query: q}
		c, err := color.Parse(q)
		if err != nil {
			r.Error = err.Error()
			results = append(results, r)
			continue
		}
		r.OkLCH = c.String()
		if m, ok := cat.NearestTo(c); ok {
			r.Match, r.Value, r.Distance = m.Name, m.Value, m.Distance
		}
		results = append(results, r)
	}
	return results
}

func outputTable(w io.Writer, results []Result, swatches bool) error {
	for _, r := range results {
		if r.Error != "" {
			if _, err := fmt.Fprintf(w, "%-24s %s\n", r.Query, r.Error); err != nil {
				return err
			}
			continue
		}
		swatch := ""
		if swatches {
			swatch = render.ColorSwatch(r.Query) + render.ColorSwatch(r.Value)
		}
		if _, err := fmt.Fprintf(w, "%s%-24s %-16s %.4f\n", swatch, r.Query, r.Match, r.Distance); err != nil {
			return err
		}
	}
	return nil
}
