/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package palette finds the nearest named color for a target color.
package palette

import (
	"math"

	"bennypowers.dev/tokensync/color"
	"bennypowers.dev/tokensync/token"
)

// Match is the result of a nearest-color lookup.
type Match struct {
	// Name is "family-shade", or the bare family for single-value entries.
	Name string

	// Value is the candidate's color as declared.
	Value string

	// Distance is the perceptual distance from the target.
	Distance float64
}

type candidate struct {
	name  string
	value string
	lch   color.OkLCH
	ok    bool
}

// Catalogue is an ordered list of named candidate colors.
// Candidates are converted once, when the catalogue is built.
type Catalogue struct {
	candidates []candidate
}

// NewCatalogue builds a catalogue from color groups, in the order given.
// Shades within a group are visited in ascending numeric order.
func NewCatalogue(sets ...[]*token.ColorGroup) *Catalogue {
	c := &Catalogue{}
	for _, groups := range sets {
		for _, g := range groups {
			for _, t := range g.Tokens() {
				lch, err := color.Parse(t.Value)
				c.candidates = append(c.candidates, candidate{
					name:  t.Name,
					value: t.Value,
					lch:   lch,
					ok:    err == nil,
				})
			}
		}
	}
	return c
}

// WithStandard builds a catalogue of the given groups followed by the
// Tailwind default palette.
func WithStandard(sets ...[]*token.ColorGroup) *Catalogue {
	return NewCatalogue(append(sets, Standard())...)
}

// Len returns the number of candidates, convertible or not.
func (c *Catalogue) Len() int {
	return len(c.candidates)
}

// Nearest returns the candidate closest to target. The first candidate
// at the minimum distance wins. It reports false when target cannot be
// read as a color or no candidate is convertible.
func (c *Catalogue) Nearest(target string) (Match, bool) {
	lch, err := color.Parse(target)
	if err != nil {
		return Match{}, false
	}
	return c.NearestTo(lch)
}

// NearestTo is Nearest for an already converted color.
func (c *Catalogue) NearestTo(target color.OkLCH) (Match, bool) {
	best := -1
	bestDistance := math.Inf(1)
	for i, cand := range c.candidates {
		if !cand.ok {
			continue
		}
		if d := color.Distance(target, cand.lch); d < bestDistance {
			best, bestDistance = i, d
		}
	}
	if best < 0 {
		return Match{}, false
	}
	return Match{
		Name:     c.candidates[best].name,
		Value:    c.candidates[best].value,
		Distance: bestDistance,
	}, true
}
