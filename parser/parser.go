/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser reads Figma color and typography exports.
package parser

import (
	"errors"

	"bennypowers.dev/tokensync/token"
)

// ErrInvalidSource indicates a token source that cannot be read.
var ErrInvalidSource = errors.New("invalid token source")

// Colors is the content of a color export.
type Colors struct {
	// Primitives are the custom color families, in source order.
	Primitives *token.ColorGroups

	// Semantic are the semantic color roles, in source order.
	Semantic []token.SemanticEntry
}

// Fonts is the content of a typography export. A JSON export yields
// Styles; a CSS export yields Rules and Variables.
type Fonts struct {
	Styles    []token.TextStyle
	Rules     []token.FontRule
	Variables []token.FontVar
}

// Len returns the number of font classes the export defines.
func (f *Fonts) Len() int {
	if f == nil {
		return 0
	}
	return len(f.Styles) + len(f.Rules)
}
