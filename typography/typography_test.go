/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package typography_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bennypowers.dev/tokensync/token"
	"bennypowers.dev/tokensync/typography"
)

func TestSizeClass(t *testing.T) {
	tests := []struct {
		px       float64
		expected string
	}{
		{px: 12, expected: "text-xs"},
		{px: 13, expected: "text-xs"}, // tie with 14, first minimum wins
		{px: 14, expected: "text-sm"},
		{px: 15, expected: "text-sm"},
		{px: 22, expected: "text-xl"},
		{px: 27, expected: "text-2xl"},
		{px: 40, expected: "text-4xl"},
		{px: 200, expected: "text-9xl"},
		{px: 0, expected: "text-xs"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, typography.SizeClass(tt.px), "%vpx", tt.px)
	}
}

func TestLineHeightClass(t *testing.T) {
	tests := []struct {
		px       float64
		expected string
	}{
		{px: 12, expected: "leading-relaxed"},
		{px: 17.9, expected: "leading-relaxed"},
		{px: 18, expected: "leading-normal"},
		{px: 23, expected: "leading-normal"},
		{px: 24, expected: "leading-snug"},
		{px: 47, expected: "leading-snug"},
		{px: 48, expected: "leading-tight"},
		{px: 96, expected: "leading-tight"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, typography.LineHeightClass(tt.px), "%vpx", tt.px)
	}
}

func TestTrackingClass(t *testing.T) {
	assert.Equal(t, "tracking-normal", typography.TrackingClass(0))
	assert.Equal(t, "tracking-normal", typography.TrackingClass(0.01))
	assert.Equal(t, "tracking-tight", typography.TrackingClass(-0.02))
	assert.Equal(t, "tracking-tighter", typography.TrackingClass(-1))
	assert.Equal(t, "tracking-widest", typography.TrackingClass(0.5))
}

func TestMapper_Rule(t *testing.T) {
	m := typography.NewMapper(nil, nil, nil)

	rule := m.Rule(token.TextStyle{Name: "Body", FontFamily: "Mukta", FontWeight: "Regular", FontSize: 14})
	assert.Equal(t, "font-body", rule.Class)
	assert.Equal(t, []string{"font-sans", "font-normal", "text-sm", "leading-relaxed"}, rule.Utilities)

	rule = m.Rule(token.TextStyle{
		Name:          "Display Large",
		FontFamily:    "Bree Serif",
		FontWeight:    "Bold",
		FontSize:      60,
		LetterSpacing: token.LetterSpacing{Value: -0.05},
	})
	assert.Equal(t, "font-display-large", rule.Class)
	assert.Equal(t, []string{"font-serif", "font-bold", "text-6xl", "leading-tight", "tracking-tighter"}, rule.Utilities)

	rule = m.Rule(token.TextStyle{Name: "Odd", FontFamily: "Comic Sans", FontWeight: "Wobbly", FontSize: 16})
	assert.Equal(t, []string{"font-sans", "font-normal", "text-base", "leading-relaxed"}, rule.Utilities)
}

func TestMapper_ThemeVariables(t *testing.T) {
	vars := []token.FontVar{
		{Name: "display", Value: `'bree serif', serif`},
		{Name: "body", Value: `"Mukta", sans-serif`},
	}
	m := typography.NewMapper(nil, nil, vars)

	assert.Equal(t, "font-display", m.FamilyClass("Bree Serif"))
	assert.Equal(t, "font-body", m.FamilyClass("Mukta"))
	assert.Equal(t, "font-mono", m.FamilyClass("Menlo"))
	assert.Equal(t, "font-sans", m.FamilyClass("Unknown"))
}

func TestMapper_Rules(t *testing.T) {
	m := typography.NewMapper(map[string]string{"Inter": "font-body"}, nil, nil)
	rules := m.Rules([]token.TextStyle{
		{Name: "A", FontFamily: "Inter", FontWeight: "Medium", FontSize: 20},
		{Name: "B", FontFamily: "Mukta", FontWeight: "Black", FontSize: 30},
	})
	assert.Len(t, rules, 2)
	assert.Equal(t, "@apply font-body font-medium text-xl leading-normal;", rules[0].Apply())
	assert.Equal(t, "@apply font-sans font-black text-3xl leading-snug;", rules[1].Apply())
}
