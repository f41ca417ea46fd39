/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"sort"
	"strings"
)

const hoverSuffix = "-hover"

// SemanticEntry is a purpose-named color role with light and dark values.
type SemanticEntry struct {
	// Key is the raw key from the token source (e.g., "bg-brand-default-hover").
	Key string

	// Name is the normalized name (e.g., "bg-brand-hover").
	Name string

	// Type is the utility type: bg, text or border.
	Type string

	// Category is the role family (brand, neutral, danger, ...).
	Category string

	// Variant is whatever follows the category, without "hover".
	Variant string

	// Hover marks the hover state of the entry named by BaseName.
	Hover bool

	// Light is the light-mode color.
	Light string

	// Dark is the dark-mode color.
	Dark string
}

// NewSemanticEntry normalizes key and decomposes it.
func NewSemanticEntry(key, light, dark string) SemanticEntry {
	name := NormalizeSemantic(key)
	e := SemanticEntry{
		Key:   key,
		Name:  name,
		Light: light,
		Dark:  dark,
	}

	parts := strings.Split(name, "-")
	if len(parts) > 0 && parts[len(parts)-1] == "hover" && len(parts) > 1 {
		e.Hover = true
		parts = parts[:len(parts)-1]
	}
	e.Type = parts[0]
	if len(parts) > 1 {
		e.Category = parts[1]
	}
	if len(parts) > 2 {
		e.Variant = strings.Join(parts[2:], "-")
	}
	return e
}

// NormalizeSemantic applies the naming convention to a raw semantic key:
// text keys drop their first inner "-default-", a "-default-hover" suffix
// becomes "-hover" and a trailing "-default" is removed.
func NormalizeSemantic(key string) string {
	name := key
	if strings.HasPrefix(name, "text-") && strings.Contains(name, "-default-") {
		name = strings.Replace(name, "-default-", "-", 1)
	}
	switch {
	case strings.HasSuffix(name, "-default-hover"):
		name = strings.TrimSuffix(name, "-default-hover") + hoverSuffix
	case strings.HasSuffix(name, "-default"):
		name = strings.TrimSuffix(name, "-default")
	}
	return name
}

// BaseName is the name of the rule this entry belongs to.
// For hover entries it is the name without the "-hover" suffix.
func (e SemanticEntry) BaseName() string {
	if e.Hover {
		return strings.TrimSuffix(e.Name, hoverSuffix)
	}
	return e.Name
}

// SortHoverLast stably moves hover entries after all others.
func SortHoverLast(entries []SemanticEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return !entries[i].Hover && entries[j].Hover
	})
}
