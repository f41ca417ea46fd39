/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package typography maps text styles onto Tailwind utility classes.
package typography

import (
	"math"
	"strings"

	"bennypowers.dev/tokensync/token"
)

// DefaultFamilyClass is used when a family matches neither a theme
// variable nor the configured family map.
const DefaultFamilyClass = "font-sans"

// DefaultWeightClass is used for unknown weights.
const DefaultWeightClass = "font-normal"

type step struct {
	value float64
	class string
}

// sizes is the Tailwind font-size scale in px, ascending.
var sizes = []step{
	{12, "text-xs"},
	{14, "text-sm"},
	{16, "text-base"},
	{18, "text-lg"},
	{20, "text-xl"},
	{24, "text-2xl"},
	{30, "text-3xl"},
	{36, "text-4xl"},
	{48, "text-5xl"},
	{60, "text-6xl"},
	{72, "text-7xl"},
	{96, "text-8xl"},
	{128, "text-9xl"},
}

var tracking = []step{
	{-0.05, "tracking-tighter"},
	{-0.025, "tracking-tight"},
	{0, "tracking-normal"},
	{0.025, "tracking-wide"},
	{0.05, "tracking-wider"},
	{0.1, "tracking-widest"},
}

// TrackingNormal is the tracking class that is never emitted.
const TrackingNormal = "tracking-normal"

// DefaultFamilies maps Figma font families to family classes.
func DefaultFamilies() map[string]string {
	return map[string]string{
		"Mukta":      "font-sans",
		"Bree Serif": "font-serif",
		"Menlo":      "font-mono",
	}
}

// DefaultWeights maps Figma weight names to weight classes.
func DefaultWeights() map[string]string {
	return map[string]string{
		"Regular":    "font-normal",
		"Medium":     "font-medium",
		"SemiBold":   "font-semibold",
		"Bold":       "font-bold",
		"ExtraBold":  "font-extrabold",
		"Black":      "font-black",
		"Light":      "font-light",
		"ExtraLight": "font-extralight",
		"Thin":       "font-thin",
	}
}

// Mapper converts text styles to font rules.
type Mapper struct {
	families map[string]string
	weights  map[string]string
	vars     []token.FontVar
}

// NewMapper creates a Mapper. Theme font variables take precedence over
// the family map; nil maps fall back to the defaults.
func NewMapper(families, weights map[string]string, vars []token.FontVar) *Mapper {
	if families == nil {
		families = DefaultFamilies()
	}
	if weights == nil {
		weights = DefaultWeights()
	}
	return &Mapper{families: families, weights: weights, vars: vars}
}

// Rule returns the font rule for a text style.
func (m *Mapper) Rule(s token.TextStyle) token.FontRule {
	utilities := []string{
		m.FamilyClass(s.FontFamily),
		m.WeightClass(string(s.FontWeight)),
		SizeClass(s.FontSize),
		LineHeightClass(s.FontSize),
	}
	if tc := TrackingClass(s.LetterSpacing.Value); tc != TrackingNormal {
		utilities = append(utilities, tc)
	}
	return token.FontRule{Class: s.ClassName(), Utilities: utilities}
}

// Rules maps every style, in order.
func (m *Mapper) Rules(styles []token.TextStyle) []token.FontRule {
	rules := make([]token.FontRule, 0, len(styles))
	for _, s := range styles {
		rules = append(rules, m.Rule(s))
	}
	return rules
}

// FamilyClass resolves a font family to a family class.
func (m *Mapper) FamilyClass(family string) string {
	for _, v := range m.vars {
		if strings.EqualFold(v.FirstFamily(), strings.TrimSpace(family)) {
			return v.Class()
		}
	}
	if class, ok := m.families[family]; ok {
		return class
	}
	return DefaultFamilyClass
}

// WeightClass resolves a weight name to a weight class.
func (m *Mapper) WeightClass(weight string) string {
	if class, ok := m.weights[weight]; ok {
		return class
	}
	return DefaultWeightClass
}

// SizeClass returns the nearest Tailwind size for px.
func SizeClass(px float64) string {
	return nearest(px, sizes)
}

// LineHeightClass picks a leading class from the font size.
func LineHeightClass(px float64) string {
	switch {
	case px >= 48:
		return "leading-tight"
	case px >= 24:
		return "leading-snug"
	case px >= 18:
		return "leading-normal"
	default:
		return "leading-relaxed"
	}
}

// TrackingClass returns the nearest tracking class for a letter spacing.
func TrackingClass(spacing float64) string {
	return nearest(spacing, tracking)
}

func nearest(v float64, steps []step) string {
	best := steps[0]
	for _, s := range steps[1:] {
		if math.Abs(v-s.value) < math.Abs(v-best.value) {
			best = s
		}
	}
	return best.class
}
