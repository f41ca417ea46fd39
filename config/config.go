/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for tokensync.
package config

import (
	"fmt"
	"maps"

	"github.com/bmatcuk/doublestar/v4"

	"bennypowers.dev/tokensync/stylesheet"
	"bennypowers.dev/tokensync/typography"
)

// Default source and target paths, relative to the project root.
const (
	DefaultColors     = "tools/figma-colors.json"
	DefaultFonts      = "tools/figma-fonts.json"
	DefaultStylesheet = "src/app/globals.css"
)

// Config represents the sync configuration.
type Config struct {
	// Colors is the Figma color export.
	Colors string `yaml:"colors" json:"colors"`

	// Fonts is the Figma text style export, JSON or CSS.
	Fonts string `yaml:"fonts" json:"fonts"`

	// Stylesheet is the Tailwind stylesheet to regenerate.
	Stylesheet string `yaml:"stylesheet" json:"stylesheet"`

	// DarkSelector scopes the dark theme block.
	DarkSelector string `yaml:"darkSelector" json:"darkSelector"`

	// FontFamilies maps Figma family names to font classes,
	// e.g. "Bree Serif": "font-display".
	FontFamilies map[string]string `yaml:"fontFamilies" json:"fontFamilies"`

	// FontWeights maps Figma weight names to weight classes.
	FontWeights map[string]string `yaml:"fontWeights" json:"fontWeights"`

	// ManagedFontClasses are globs naming utility classes the font sync
	// owns even when they do not use a single @apply.
	ManagedFontClasses []string `yaml:"managedFontClasses" json:"managedFontClasses"`

	// Preserve are globs naming utility classes never regenerated.
	Preserve []string `yaml:"preserve" json:"preserve"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Colors:       DefaultColors,
		Fonts:        DefaultFonts,
		Stylesheet:   DefaultStylesheet,
		DarkSelector: stylesheet.DefaultDarkSelector,
		FontFamilies: typography.DefaultFamilies(),
		FontWeights:  typography.DefaultWeights(),
	}
}

// WithDefaults returns a copy of c with empty fields set to their defaults.
// Configured family and weight maps extend the default maps.
func (c *Config) WithDefaults() *Config {
	d := Default()
	if c == nil {
		return d
	}

	out := *c
	if out.Colors == "" {
		out.Colors = d.Colors
	}
	if out.Fonts == "" {
		out.Fonts = d.Fonts
	}
	if out.Stylesheet == "" {
		out.Stylesheet = d.Stylesheet
	}
	if out.DarkSelector == "" {
		out.DarkSelector = d.DarkSelector
	}
	maps.Copy(d.FontFamilies, c.FontFamilies)
	out.FontFamilies = d.FontFamilies
	maps.Copy(d.FontWeights, c.FontWeights)
	out.FontWeights = d.FontWeights
	return &out
}

// Validate checks every configured glob.
func (c *Config) Validate() error {
	for _, field := range []struct {
		name  string
		globs []string
	}{
		{"managedFontClasses", c.ManagedFontClasses},
		{"preserve", c.Preserve},
	} {
		for _, g := range field.globs {
			if !doublestar.ValidatePattern(g) {
				return fmt.Errorf("%s: invalid pattern %q", field.name, g)
			}
		}
	}
	return nil
}

// IsPreserved reports whether a utility class is protected from
// regeneration.
func (c *Config) IsPreserved(class string) bool {
	return matchAny(c.Preserve, class)
}

// IsManagedFont reports whether a utility class belongs to the font sync
// regardless of its body.
func (c *Config) IsManagedFont(class string) bool {
	return matchAny(c.ManagedFontClasses, class)
}

// StylesheetOptions returns the parse options this config implies.
func (c *Config) StylesheetOptions() stylesheet.Options {
	return stylesheet.Options{
		DarkSelector:  c.DarkSelector,
		IsPreserved:   c.IsPreserved,
		IsManagedFont: c.IsManagedFont,
	}
}

func matchAny(globs []string, name string) bool {
	for _, g := range globs {
		if matched, _ := doublestar.Match(g, name); matched {
			return true
		}
	}
	return false
}
