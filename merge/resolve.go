/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package merge

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"bennypowers.dev/tokensync/palette"
	"bennypowers.dev/tokensync/token"
)

var (
	// ErrIncomplete marks a semantic entry without a light or dark value.
	ErrIncomplete = errors.New("semantic color needs both light and dark values")

	// ErrNoMatch marks a semantic entry with no nearest primitive.
	ErrNoMatch = errors.New("no matching primitive")

	// ErrOrphanHover marks a hover entry whose base entry is missing.
	ErrOrphanHover = errors.New("hover color has no base color")
)

// Resolved is a semantic entry matched in both modes.
type Resolved struct {
	token.SemanticEntry
	LightMatch palette.Match
	DarkMatch  palette.Match
}

// Resolve matches every semantic entry against the catalogue, once per
// mode. Base entries are resolved before hover entries. Each entry is
// matched from its own values. Skipped entries are reported in the
// returned error, which aggregates one error per skip.
func Resolve(entries []token.SemanticEntry, cat *palette.Catalogue) ([]Resolved, error) {
	sorted := make([]token.SemanticEntry, len(entries))
	copy(sorted, entries)
	token.SortHoverLast(sorted)

	var (
		resolved []Resolved
		index    = make(map[string]int)
		warnings error
	)

	for _, e := range sorted {
		if e.Light == "" || e.Dark == "" {
			warnings = multierr.Append(warnings,
				fmt.Errorf("%s: %w (light %q, dark %q)", e.Key, ErrIncomplete, e.Light, e.Dark))
			continue
		}
		light, lightOK := cat.Nearest(e.Light)
		dark, darkOK := cat.Nearest(e.Dark)
		if !lightOK || !darkOK {
			warnings = multierr.Append(warnings,
				fmt.Errorf("%s: %w (light %s, dark %s)", e.Key, ErrNoMatch, e.Light, e.Dark))
			continue
		}

		r := Resolved{SemanticEntry: e, LightMatch: light, DarkMatch: dark}
		if i, dup := index[e.Name]; dup {
			resolved[i] = r
			continue
		}
		index[e.Name] = len(resolved)
		resolved = append(resolved, r)
	}

	return resolved, warnings
}
