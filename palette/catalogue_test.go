/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package palette_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokensync/palette"
	"bennypowers.dev/tokensync/token"
)

func TestStandard(t *testing.T) {
	groups := palette.Standard()
	require.Len(t, groups, 24)
	assert.Equal(t, "slate", groups[0].Family)
	assert.Equal(t, "rose", groups[21].Family)
	assert.Equal(t, "white", groups[22].Family)
	assert.True(t, groups[22].IsSingle())
	assert.Equal(t, "black", groups[23].Family)

	blue := groups[15]
	require.Equal(t, "blue", blue.Family)
	assert.Equal(t, "#3b82f6", blue.Shades["500"])

	blue.Set("500", "#000000")
	again := palette.Standard()
	assert.Equal(t, "#3b82f6", again[15].Shades["500"], "Standard must return fresh groups")
}

func TestNearest_Reflexive(t *testing.T) {
	cat := palette.WithStandard()
	for _, g := range palette.Standard() {
		for _, tok := range g.Tokens() {
			m, ok := cat.Nearest(tok.Value)
			require.True(t, ok, tok.Name)
			assert.Zero(t, m.Distance, tok.Name)
			assert.Equal(t, tok.Value, m.Value, tok.Name)
		}
	}

	m, ok := cat.Nearest("#3b82f6")
	require.True(t, ok)
	assert.Equal(t, "blue-500", m.Name)

	m, ok = cat.Nearest("#ffffff")
	require.True(t, ok)
	assert.Equal(t, "white", m.Name)
}

func TestNearest_FirstMinimumWins(t *testing.T) {
	cat := palette.WithStandard()

	// zinc-50 and neutral-50 are both #fafafa; zinc is declared first.
	m, ok := cat.Nearest("#fafafa")
	require.True(t, ok)
	assert.Equal(t, "zinc-50", m.Name)
}

func TestNearest_CustomBeforeStandard(t *testing.T) {
	brand := token.NewColorGroup("brand")
	brand.Set("500", "#3b82f6")
	brand.Set("600", "#2563eb")

	cat := palette.WithStandard([]*token.ColorGroup{brand})
	m, ok := cat.Nearest("#3b82f6")
	require.True(t, ok)
	assert.Equal(t, "brand-500", m.Name)

	m, ok = cat.Nearest("#2563eb")
	require.True(t, ok)
	assert.Equal(t, "brand-600", m.Name)
}

func TestNearest_NoMatch(t *testing.T) {
	empty := palette.NewCatalogue()
	_, ok := empty.Nearest("#3b82f6")
	assert.False(t, ok, "empty catalogue")

	broken := token.NewColorGroup("broken")
	broken.Set("500", "not-a-color")
	broken.Set("600", "var(--color-elsewhere)")
	cat := palette.NewCatalogue([]*token.ColorGroup{broken})
	assert.Equal(t, 2, cat.Len())
	_, ok = cat.Nearest("#3b82f6")
	assert.False(t, ok, "every candidate unconvertible")

	_, ok = palette.WithStandard().Nearest("#nothex")
	assert.False(t, ok, "unconvertible target")
}

func TestNearest_SkipsUnconvertible(t *testing.T) {
	mixed := token.NewColorGroup("mixed")
	mixed.Set("100", "garbage")
	mixed.Set("200", "#ff0000")

	m, ok := palette.NewCatalogue([]*token.ColorGroup{mixed}).Nearest("#00ff00")
	require.True(t, ok)
	assert.Equal(t, "mixed-200", m.Name)
}
