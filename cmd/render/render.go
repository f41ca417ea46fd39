/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mazznoer/csscolorparser"
	"go.uber.org/multierr"

	"bennypowers.dev/tokensync/syncer"
)

// Format is a summary output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON:
		return Format(s), nil
	}
	return "", fmt.Errorf("invalid format %q: expected text or json", s)
}

// Row holds computed display values for one semantic color.
type Row struct {
	Name       string `json:"name"`
	Light      string `json:"light"`
	Dark       string `json:"dark"`
	LightValue string `json:"lightValue"`
	DarkValue  string `json:"darkValue"`
}

// Summary is the serializable form of a report.
type Summary struct {
	Stylesheet       string            `json:"stylesheet"`
	Status           string            `json:"status"`
	ExistingFamilies int               `json:"existingFamilies"`
	ExportedFamilies int               `json:"exportedFamilies"`
	Families         int               `json:"families"`
	Semantic         []Row             `json:"semantic"`
	Fonts            map[string]string `json:"fonts"`
	ColorRules       int               `json:"colorRules"`
	FontRules        int               `json:"fontRules"`
	Warnings         []string          `json:"warnings"`
}

// Options configure summary output.
type Options struct {
	Format Format

	// Swatches prefixes each semantic color with 24-bit ANSI color blocks.
	Swatches bool

	DryRun bool
}

// NewSummary computes the display values of a report.
func NewSummary(r *syncer.Report, dryRun bool) Summary {
	s := Summary{
		Stylesheet:       r.Stylesheet,
		Status:           status(r, dryRun),
		ExistingFamilies: r.ExistingFamilies,
		ExportedFamilies: r.ExportedFamilies,
		Families:         r.Families,
		Semantic:         make([]Row, 0, len(r.Semantic)),
		Fonts:            make(map[string]string, len(r.FontClasses)),
		ColorRules:       r.ColorRules,
		FontRules:        r.FontRules,
		Warnings:         []string{},
	}
	for _, e := range r.Semantic {
		s.Semantic = append(s.Semantic, Row{
			Name:       e.Name,
			Light:      e.LightMatch.Name,
			Dark:       e.DarkMatch.Name,
			LightValue: e.LightMatch.Value,
			DarkValue:  e.DarkMatch.Value,
		})
	}
	for _, f := range r.FontClasses {
		s.Fonts[f.Class] = strings.Join(f.Utilities, " ")
	}
	for _, w := range multierr.Errors(r.Warnings) {
		s.Warnings = append(s.Warnings, w.Error())
	}
	return s
}

func status(r *syncer.Report, dryRun bool) string {
	switch {
	case dryRun:
		return "dry run"
	case r.Written && r.Created:
		return "created"
	case r.Written:
		return "updated"
	default:
		return "unchanged"
	}
}

// Write renders a report summary.
func Write(w io.Writer, r *syncer.Report, opts Options) error {
	s := NewSummary(r, opts.DryRun)
	if opts.Format == FormatJSON {
		out, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling summary: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	}
	_, err := io.WriteString(w, Text(r, s, opts.Swatches))
	return err
}

// Text renders a summary for the terminal.
func Text(r *syncer.Report, s Summary, swatches bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", s.Stylesheet, s.Status)

	if s.Families > 0 || len(s.Semantic) > 0 {
		fmt.Fprintf(&b, "  %d custom color families (%d existing, %d exported)\n",
			s.Families, s.ExistingFamilies, s.ExportedFamilies)
		fmt.Fprintf(&b, "  %d semantic colors\n", len(s.Semantic))
		width := nameWidth(s.Semantic)
		for _, row := range s.Semantic {
			b.WriteString("    ")
			if swatches {
				b.WriteString(ColorSwatch(row.LightValue))
				b.WriteString(ColorSwatch(row.DarkValue))
			}
			fmt.Fprintf(&b, "%-*s  %s / %s\n", width, row.Name, row.Light, row.Dark)
		}
	}

	if len(r.FontClasses) > 0 {
		fmt.Fprintf(&b, "  %d font classes\n", len(r.FontClasses))
		for _, f := range r.FontClasses {
			fmt.Fprintf(&b, "    %s: %s\n", f.Class, strings.Join(f.Utilities, " "))
		}
	}

	fmt.Fprintf(&b, "  %d color rules, %d font rules\n", s.ColorRules, s.FontRules)
	if n := len(s.Warnings); n > 0 {
		fmt.Fprintf(&b, "  %d warnings\n", n)
	}
	return b.String()
}

func nameWidth(rows []Row) int {
	width := 4
	for _, r := range rows {
		if len(r.Name) > width {
			width = len(r.Name)
		}
	}
	return width
}

// ColorSwatch returns a 24-bit ANSI color block for the given color value.
func ColorSwatch(value string) string {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return ""
	}
	r, g, b, _ := c.RGBA255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", r, g, b)
}
