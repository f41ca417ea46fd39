/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package syncer runs a sync: it reads the token exports and the
// stylesheet, regenerates the managed sections, and writes the result.
package syncer

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"

	"go.uber.org/multierr"

	"bennypowers.dev/tokensync/config"
	tsfs "bennypowers.dev/tokensync/fs"
	"bennypowers.dev/tokensync/internal/logger"
	"bennypowers.dev/tokensync/merge"
	"bennypowers.dev/tokensync/palette"
	"bennypowers.dev/tokensync/parser"
	"bennypowers.dev/tokensync/stylesheet"
	"bennypowers.dev/tokensync/token"
	"bennypowers.dev/tokensync/typography"
)

const defaultPerm fs.FileMode = 0o644

// Options configure a Syncer.
type Options struct {
	// Colors, Fonts and Stylesheet are file paths.
	Colors     string
	Fonts      string
	Stylesheet string

	// Parse configures how the existing stylesheet is read.
	Parse stylesheet.Options

	// Families and Weights map Figma names to font classes.
	Families map[string]string
	Weights  map[string]string

	// DryRun writes the result to Out instead of the stylesheet.
	DryRun bool
	Out    io.Writer
}

// OptionsFromConfig derives sync options from a loaded config.
func OptionsFromConfig(cfg *config.Config) Options {
	cfg = cfg.WithDefaults()
	return Options{
		Colors:     cfg.Colors,
		Fonts:      cfg.Fonts,
		Stylesheet: cfg.Stylesheet,
		Parse:      cfg.StylesheetOptions(),
		Families:   cfg.FontFamilies,
		Weights:    cfg.FontWeights,
	}
}

// Mode selects what a run regenerates.
type Mode struct {
	Colors bool
	Fonts  bool
}

// Report describes a completed run.
type Report struct {
	Stylesheet string

	// Created is set when the stylesheet did not exist before the run.
	Created bool

	// Changed is set when the output differs from the stylesheet.
	Changed bool

	// Written is set when the stylesheet was replaced.
	Written bool

	// Color sync results.
	ExistingFamilies int
	ExportedFamilies int
	Families         int
	Semantic         []merge.Resolved

	// Font sync results.
	FontClasses []token.FontRule

	// ColorRules and FontRules count the managed rules in the output,
	// including carried-over ones.
	ColorRules int
	FontRules  int

	// Warnings aggregates every recoverable problem of the run.
	Warnings error
}

// Syncer regenerates a stylesheet from token exports.
type Syncer struct {
	fs   tsfs.FileSystem
	opts Options
}

// New creates a Syncer.
func New(filesystem tsfs.FileSystem, opts Options) *Syncer {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	return &Syncer{fs: filesystem, opts: opts}
}

// Run performs one sync. Every selected source is read and validated
// before anything is written; a fatal error leaves the stylesheet
// untouched.
func (s *Syncer) Run(ctx context.Context, mode Mode) (*Report, error) {
	if !mode.Colors && !mode.Fonts {
		return nil, ErrNothingToSync
	}

	report := &Report{Stylesheet: s.opts.Stylesheet}

	var (
		colors *parser.Colors
		fonts  *parser.Fonts
	)
	if mode.Colors {
		result, err := s.readColors()
		if err != nil {
			return nil, err
		}
		colors = &result.Colors
		report.Warnings = multierr.Append(report.Warnings, result.Warnings)
	}
	if mode.Fonts {
		var err error
		if fonts, err = s.readFonts(); err != nil {
			return nil, err
		}
	}

	text, err := s.readStylesheet(report)
	if err != nil {
		return nil, err
	}
	doc := stylesheet.Parse(text, s.opts.Parse)

	var in merge.Input
	if colors != nil {
		in.Colors = s.colorInput(doc, colors, report)
	}
	if fonts != nil {
		in.Fonts = s.fontInput(doc, fonts, report)
	}

	out := merge.Render(doc, in, merge.Options{DarkSelector: s.opts.Parse.DarkSelector})
	report.ColorRules = out.ColorRules
	report.FontRules = out.FontRules
	report.Warnings = multierr.Append(report.Warnings, out.Warnings)
	report.Changed = out.CSS != text

	for _, w := range multierr.Errors(report.Warnings) {
		logger.Warn("%v", w)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("sync interrupted: %w", err)
	}

	if s.opts.DryRun {
		if _, err := io.WriteString(s.opts.Out, out.CSS); err != nil {
			return nil, fmt.Errorf("writing output: %w", err)
		}
		return report, nil
	}

	if !report.Changed {
		logger.Debug("%s is up to date", s.opts.Stylesheet)
		return report, nil
	}

	if err := tsfs.WriteAtomic(s.fs, s.opts.Stylesheet, []byte(out.CSS), s.perm()); err != nil {
		return nil, err
	}
	report.Written = true
	return report, nil
}

func (s *Syncer) readColors() (*parser.ColorResult, error) {
	path := s.opts.Colors
	if !s.fs.Exists(path) {
		return nil, fmt.Errorf("%w: %s", ErrSourceMissing, path)
	}
	logger.Debug("reading colors from %s", path)
	result, err := parser.ParseColorsFile(s.fs, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceInvalid, err)
	}
	return result, nil
}

func (s *Syncer) readFonts() (*parser.Fonts, error) {
	path := s.opts.Fonts
	if !s.fs.Exists(path) {
		return nil, fmt.Errorf("%w: %s", ErrSourceMissing, path)
	}
	logger.Debug("reading fonts from %s", path)
	fonts, err := parser.ParseFontsFile(s.fs, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceInvalid, err)
	}
	return fonts, nil
}

// readStylesheet returns the current stylesheet, or "" when it does not
// exist yet.
func (s *Syncer) readStylesheet(report *Report) (string, error) {
	path := s.opts.Stylesheet
	if !s.fs.Exists(path) {
		logger.Info("%s not found, creating a new stylesheet", path)
		report.Created = true
		return "", nil
	}
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

func (s *Syncer) perm() fs.FileMode {
	if info, err := s.fs.Stat(s.opts.Stylesheet); err == nil && info.Mode().IsRegular() {
		return info.Mode().Perm()
	}
	return defaultPerm
}

func (s *Syncer) colorInput(doc *stylesheet.Document, colors *parser.Colors, report *Report) *merge.ColorInput {
	exported := colors.Primitives
	if exported == nil {
		exported = token.NewColorGroups()
	}
	prims := merge.MergePrimitives(doc.Primitives(), exported)
	report.Warnings = multierr.Append(report.Warnings, prims.Warnings)
	report.ExistingFamilies = prims.Existing
	report.ExportedFamilies = prims.Exported
	report.Families = prims.Groups.Len()
	logger.Debug("%d existing and %d exported color families", prims.Existing, prims.Exported)

	cat := palette.WithStandard(prims.Candidates)
	resolved, warnings := merge.Resolve(colors.Semantic, cat)
	report.Warnings = multierr.Append(report.Warnings, warnings)
	report.Semantic = resolved
	for _, r := range resolved {
		logger.Debug("%s: light %s, dark %s", r.Name, r.LightMatch.Name, r.DarkMatch.Name)
	}

	return &merge.ColorInput{Primitives: prims.Groups, Semantic: resolved}
}

func (s *Syncer) fontInput(doc *stylesheet.Document, fonts *parser.Fonts, report *Report) *merge.FontInput {
	vars := append(append([]token.FontVar(nil), fonts.Variables...), doc.FontVariables()...)
	mapper := typography.NewMapper(s.opts.Families, s.opts.Weights, vars)

	rules := mapper.Rules(fonts.Styles)
	rules = append(rules, fonts.Rules...)
	for _, r := range rules {
		logger.Debug("%s: %s", r.Class, r.Apply())
	}
	report.FontClasses = rules

	return &merge.FontInput{Rules: rules, Variables: fonts.Variables}
}
