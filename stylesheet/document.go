/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package stylesheet locates the managed sections of a generated
// Tailwind stylesheet.
package stylesheet

import (
	"strings"

	"bennypowers.dev/tokensync/token"
)

// DefaultDarkSelector is the class that scopes dark theme overrides.
const DefaultDarkSelector = ".dark"

const (
	keyRoot      = ":root"
	keyTheme     = "@theme"
	keyInline    = "@themeinline"
	keyDarkMedia = "@media(prefers-color-scheme:dark)"
	keyUtilities = "@layerutilities"
)

// Options control how sections are recognized.
type Options struct {
	// DarkSelector is the dark class block selector. Defaults to ".dark".
	DarkSelector string

	// IsPreserved reports whether a utility class must never be managed.
	IsPreserved func(class string) bool

	// IsManagedFont reports whether a font-* class is generated even
	// when its body is not a single @apply.
	IsManagedFont func(class string) bool
}

// Document is a stylesheet split into sections. Absent sections are nil.
type Document struct {
	// Empty reports that the source had no content at all.
	Empty bool

	// Header is the text preceding the first section.
	Header string

	Root        *Node
	Theme       *Theme
	ThemeInline *Node
	DarkMedia   *Node
	Dark        *Theme
	Utilities   *Utilities

	// Trailing holds every other node after the header, in order.
	Trailing []Node
}

// Parse splits text into sections.
func Parse(text string, opts Options) *Document {
	if opts.DarkSelector == "" {
		opts.DarkSelector = DefaultDarkSelector
	}
	darkKey := compact(opts.DarkSelector)

	doc := &Document{Empty: strings.TrimSpace(text) == ""}
	nodes := ParseNodes(text)

	first := -1
	for i, n := range nodes {
		if n.Kind == KindBlock && isSection(n.Key(), darkKey) {
			first = i
			break
		}
	}
	if first < 0 {
		doc.Header = strings.TrimSpace(text)
		return doc
	}
	doc.Header = strings.TrimSpace(text[:nodes[first].Offset])

	for _, n := range nodes[first:] {
		if n.Kind != KindBlock {
			doc.Trailing = append(doc.Trailing, n)
			continue
		}
		node := n
		switch key := n.Key(); {
		case key == keyRoot && doc.Root == nil:
			doc.Root = &node
		case key == keyTheme:
			if doc.Theme == nil {
				doc.Theme = NewTheme()
			}
			doc.Theme.parse(n.Body, true)
		case key == keyInline && doc.ThemeInline == nil:
			doc.ThemeInline = &node
		case key == keyDarkMedia && doc.DarkMedia == nil:
			doc.DarkMedia = &node
		case key == darkKey:
			if doc.Dark == nil {
				doc.Dark = NewTheme()
				doc.Dark.parse(n.Body, false)
			}
		case key == keyUtilities:
			if doc.Utilities == nil {
				doc.Utilities = &Utilities{}
			}
			doc.Utilities.parse(n.Body, opts)
		default:
			doc.Trailing = append(doc.Trailing, n)
		}
	}
	return doc
}

func isSection(key, darkKey string) bool {
	switch key {
	case keyRoot, keyTheme, keyInline, keyDarkMedia, keyUtilities, darkKey:
		return true
	}
	return false
}

// FontVariables returns the --font-* variables declared in @theme and
// then in @theme inline.
func (d *Document) FontVariables() []token.FontVar {
	vars := d.Theme.FontVariables()
	if d.ThemeInline != nil {
		inline := NewTheme()
		inline.parse(d.ThemeInline.Body, false)
		vars = append(vars, inline.FontVariables()...)
	}
	return vars
}

// Primitives returns the primitive color groups declared in @theme.
func (d *Document) Primitives() *token.ColorGroups {
	if d.Theme == nil {
		return token.NewColorGroups()
	}
	return d.Theme.Primitives
}
