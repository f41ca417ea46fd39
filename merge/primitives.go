/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package merge regenerates the managed sections of a stylesheet from
// design tokens while keeping everything else intact.
package merge

import (
	"fmt"

	"go.uber.org/multierr"

	"bennypowers.dev/tokensync/color"
	"bennypowers.dev/tokensync/token"
)

// Primitives is the outcome of merging exported primitives into the
// stylesheet's existing ones.
type Primitives struct {
	// Groups are the merged groups to declare in @theme. Exported shades
	// are converted to oklch().
	Groups *token.ColorGroups

	// Candidates are the same groups holding the exported values as
	// written, for nearest-color matching.
	Candidates []*token.ColorGroup

	// Existing and Exported count the families on each side.
	Existing int
	Exported int

	// Warnings aggregates conversion failures.
	Warnings error
}

// MergePrimitives merges exported color groups over the existing ones.
// Exported families come first in export order, followed by families
// only the stylesheet declares. Exported shades win over existing ones.
// A shade that cannot be converted keeps its exported value.
func MergePrimitives(existing, exported *token.ColorGroups) *Primitives {
	p := &Primitives{
		Groups:   token.NewColorGroups(),
		Existing: existing.Len(),
		Exported: exported.Len(),
	}

	for _, src := range exported.All() {
		merged := token.NewColorGroup(src.Family)
		candidate := token.NewColorGroup(src.Family)
		if old, ok := existing.Get(src.Family); ok && !old.IsSingle() {
			for _, shade := range old.ShadeKeys() {
				merged.Set(shade, old.Shades[shade])
				candidate.Set(shade, old.Shades[shade])
			}
		}
		for _, shade := range src.ShadeKeys() {
			raw := src.Shades[shade]
			candidate.Set(shade, raw)
			converted, err := color.ToOkLCH(raw)
			if err != nil {
				p.Warnings = multierr.Append(p.Warnings,
					fmt.Errorf("failed to convert %s-%s (%s), using original value: %w", src.Family, shade, raw, err))
				converted = raw
			}
			merged.Set(shade, converted)
		}
		p.Groups.Put(merged)
		p.Candidates = append(p.Candidates, candidate)
	}

	for _, old := range existing.All() {
		if _, ok := exported.Get(old.Family); ok {
			continue
		}
		p.Groups.Put(old)
		p.Candidates = append(p.Candidates, old)
	}

	return p
}
