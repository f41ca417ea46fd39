/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"sort"
	"strconv"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ColorGroup is a family of color shades (e.g., brand-50 … brand-950),
// or a single-value entry such as white.
type ColorGroup struct {
	// Family is the group's identifier.
	Family string

	// Value holds the color of a single-value entry.
	Value string

	// Shades maps shade keys ("50", "100", ...) to color values.
	Shades map[string]string
}

// NewColorGroup creates an empty shaded group.
func NewColorGroup(family string) *ColorGroup {
	return &ColorGroup{
		Family: family,
		Shades: make(map[string]string),
	}
}

// NewSingleColor creates a single-value entry.
func NewSingleColor(family, value string) *ColorGroup {
	return &ColorGroup{Family: family, Value: value}
}

// IsSingle reports whether the group is a single-value entry.
func (g *ColorGroup) IsSingle() bool {
	return len(g.Shades) == 0
}

// Set stores a shade value.
func (g *ColorGroup) Set(shade, value string) {
	if g.Shades == nil {
		g.Shades = make(map[string]string)
	}
	g.Shades[shade] = value
}

// ShadeKeys returns the shade keys in ascending numeric order.
// Non-numeric keys sort after numeric ones, lexically.
func (g *ColorGroup) ShadeKeys() []string {
	keys := make([]string, 0, len(g.Shades))
	for k := range g.Shades {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, errA := strconv.Atoi(keys[i])
		b, errB := strconv.Atoi(keys[j])
		switch {
		case errA == nil && errB == nil:
			return a < b
		case errA == nil:
			return true
		case errB == nil:
			return false
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}

// Tokens flattens the group into color tokens, shades ascending.
func (g *ColorGroup) Tokens() []ColorToken {
	if g.IsSingle() {
		return []ColorToken{{Name: g.Family, Value: g.Value}}
	}
	keys := g.ShadeKeys()
	tokens := make([]ColorToken, 0, len(keys))
	for _, k := range keys {
		tokens = append(tokens, ColorToken{Name: g.Family + "-" + k, Value: g.Shades[k]})
	}
	return tokens
}

// ColorGroups is an insertion-ordered set of color groups keyed by family.
type ColorGroups struct {
	groups *orderedmap.OrderedMap[string, *ColorGroup]
}

// NewColorGroups creates an empty collection.
func NewColorGroups() *ColorGroups {
	return &ColorGroups{groups: orderedmap.New[string, *ColorGroup]()}
}

// Get returns the group for family, if present.
func (c *ColorGroups) Get(family string) (*ColorGroup, bool) {
	if c == nil {
		return nil, false
	}
	return c.groups.Get(family)
}

// Ensure returns the shaded group for family, appending it when missing.
func (c *ColorGroups) Ensure(family string) *ColorGroup {
	if g, ok := c.groups.Get(family); ok {
		return g
	}
	g := NewColorGroup(family)
	c.groups.Set(family, g)
	return g
}

// Put stores a group, replacing any group of the same family in place.
func (c *ColorGroups) Put(g *ColorGroup) {
	c.groups.Set(g.Family, g)
}

// Len returns the number of groups.
func (c *ColorGroups) Len() int {
	if c == nil {
		return 0
	}
	return c.groups.Len()
}

// All returns the groups in insertion order.
func (c *ColorGroups) All() []*ColorGroup {
	if c == nil {
		return nil
	}
	all := make([]*ColorGroup, 0, c.groups.Len())
	for pair := c.groups.Oldest(); pair != nil; pair = pair.Next() {
		all = append(all, pair.Value)
	}
	return all
}

// Sorted returns the groups ordered by family name.
func (c *ColorGroups) Sorted() []*ColorGroup {
	all := c.All()
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Family < all[j].Family
	})
	return all
}

// TokenCount returns the number of color values across all groups.
func (c *ColorGroups) TokenCount() int {
	n := 0
	for _, g := range c.All() {
		if g.IsSingle() {
			n++
		} else {
			n += len(g.Shades)
		}
	}
	return n
}
