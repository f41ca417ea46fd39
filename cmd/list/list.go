/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for tokensync.
package list

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokensync/cmd/internal/cli"
	"bennypowers.dev/tokensync/color"
	"bennypowers.dev/tokensync/fs"
	"bennypowers.dev/tokensync/internal/logger"
	"bennypowers.dev/tokensync/parser"
	"bennypowers.dev/tokensync/typography"
)

// Kinds of listed tokens.
const (
	KindPrimitive = "primitive"
	KindSemantic  = "semantic"
	KindFont      = "font"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List tokens from the Figma exports",
	Long: `List the primitives, semantic colors and font classes the exports define,
as they will be written, without touching the stylesheet.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().String("type", "", "Filter by kind: primitive, semantic, font")
	Cmd.Flags().String("output", "table", "Output format: table, json, css")
}

// Entry is one listed token.
type Entry struct {
	Kind  string `json:"kind"`
	Name  string `json:"name"`
	Value string `json:"value"`
	Dark  string `json:"dark,omitempty"`
}

func run(cmd *cobra.Command, args []string) error {
	kind, _ := cmd.Flags().GetString("type")
	output, _ := cmd.Flags().GetString("output")

	filesystem := fs.NewOSFileSystem()
	opts, err := cli.Options(filesystem, cli.Overrides{})
	if err != nil {
		return err
	}

	var entries []Entry
	if kind == "" || kind == KindPrimitive || kind == KindSemantic {
		result, err := parser.ParseColorsFile(filesystem, opts.Colors)
		if err != nil {
			logger.Warn("%v", err)
		} else {
			entries = append(entries, colorEntries(&result.Colors)...)
		}
	}
	if kind == "" || kind == KindFont {
		fonts, err := parser.ParseFontsFile(filesystem, opts.Fonts)
		if err != nil {
			logger.Warn("%v", err)
		} else {
			mapper := typography.NewMapper(opts.Families, opts.Weights, fonts.Variables)
			entries = append(entries, fontEntries(fonts, mapper)...)
		}
	}

	entries = filterEntries(entries, kind)
	w := cmd.OutOrStdout()
	switch output {
	case "json":
		return outputJSON(w, entries)
	case "css":
		return outputCSS(w, entries)
	default:
		return outputTable(w, entries)
	}
}

func colorEntries(c *parser.Colors) []Entry {
	var entries []Entry
	if c.Primitives != nil {
		for _, g := range c.Primitives.All() {
			for _, t := range g.Tokens() {
				value := t.Value
				if converted, err := color.ToOkLCH(value); err == nil {
					value = converted
				}
				entries = append(entries, Entry{Kind: KindPrimitive, Name: t.CSSVariableName(), Value: value})
			}
		}
	}
	for _, e := range c.Semantic {
		entries = append(entries, Entry{Kind: KindSemantic, Name: e.Name, Value: e.Light, Dark: e.Dark})
	}
	return entries
}

func fontEntries(f *parser.Fonts, mapper *typography.Mapper) []Entry {
	var entries []Entry
	for _, r := range append(mapper.Rules(f.Styles), f.Rules...) {
		entries = append(entries, Entry{Kind: KindFont, Name: r.Class, Value: strings.Join(r.Utilities, " ")})
	}
	return entries
}

func filterEntries(entries []Entry, kind string) []Entry {
	if kind == "" {
		return entries
	}
	filtered := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Kind == kind {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func outputTable(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		value := e.Value
		if e.Dark != "" {
			value += " / " + e.Dark
		}
		if _, err := fmt.Fprintf(w, "%-40s %-10s %s\n", e.Name, e.Kind, value); err != nil {
			return err
		}
	}
	return nil
}

func outputJSON(w io.Writer, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

// outputCSS prints primitives as @theme declarations and font classes as
// rules. Semantic colors have no standalone value and are skipped.
func outputCSS(w io.Writer, entries []Entry) error {
	var b strings.Builder
	b.WriteString("@theme {\n")
	for _, e := range entries {
		if e.Kind == KindPrimitive {
			fmt.Fprintf(&b, "  %s: %s;\n", e.Name, e.Value)
		}
	}
	b.WriteString("}\n")
	for _, e := range entries {
		if e.Kind == KindFont {
			fmt.Fprintf(&b, "\n.%s {\n  @apply %s;\n}\n", e.Name, e.Value)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
