/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package stylesheet

import (
	"regexp"
	"strings"

	"bennypowers.dev/tokensync/color"
	"bennypowers.dev/tokensync/token"
)

var (
	shadeVariable    = regexp.MustCompile(`^--color-(.+)-(\d+)$`)
	singleVariable   = regexp.MustCompile(`^--color-([A-Za-z0-9_-]+)$`)
	semanticValue    = regexp.MustCompile(`^var\(\s*--color-[A-Za-z0-9_-]+\s*\)$`)
	generatedComment = regexp.MustCompile(`^/\*\s*(?:[A-Za-z0-9 -]+ Colors|Semantic Colors - (?:Light|Dark) Theme)\s*\*/$`)
)

// Item is a preserved theme declaration with the comments directly
// preceding it. Decl is nil for trailing comments.
type Item struct {
	Comments []string
	Decl     *Node
}

// Property returns the declared property, or "" for comment-only items.
func (i Item) Property() string {
	if i.Decl == nil {
		return ""
	}
	return i.Decl.Prelude
}

// Theme is the parsed body of a @theme block or the dark class block.
type Theme struct {
	// Preserved holds declarations the generator does not own, in order.
	Preserved []Item

	// Primitives are the color primitives declared in the block.
	Primitives *token.ColorGroups

	// Semantic are var(--color-*) indirections, in order.
	Semantic []token.ColorToken
}

// NewTheme returns an empty theme.
func NewTheme() *Theme {
	return &Theme{Primitives: token.NewColorGroups()}
}

// parse classifies the declarations in body and adds them to t.
// When primitives is false, primitive declarations are preserved as-is.
func (t *Theme) parse(body string, primitives bool) {
	var pending []string
	for _, n := range ParseNodes(body) {
		switch n.Kind {
		case KindComment:
			pending = append(pending, n.Raw)
			continue
		case KindDeclaration:
			if t.claim(n, primitives) {
				pending = nil
				continue
			}
		}
		decl := n
		t.Preserved = append(t.Preserved, Item{Comments: pending, Decl: &decl})
		pending = nil
	}

	var leftover []string
	for _, c := range pending {
		if !generatedComment.MatchString(c) {
			leftover = append(leftover, c)
		}
	}
	if len(leftover) > 0 {
		t.Preserved = append(t.Preserved, Item{Comments: leftover})
	}
}

// claim records a declaration the generator owns.
func (t *Theme) claim(n Node, primitives bool) bool {
	prop, value := n.Prelude, n.Body
	if !strings.HasPrefix(prop, token.ColorVariablePrefix) {
		return false
	}

	if semanticValue.MatchString(value) {
		t.Semantic = append(t.Semantic, token.ColorToken{
			Name:  strings.TrimPrefix(prop, token.ColorVariablePrefix),
			Value: value,
		})
		return true
	}

	if !primitives {
		return false
	}

	if m := shadeVariable.FindStringSubmatch(prop); m != nil {
		t.Primitives.Ensure(m[1]).Set(m[2], value)
		return true
	}

	if m := singleVariable.FindStringSubmatch(prop); m != nil {
		if _, err := color.Parse(value); err != nil {
			return false
		}
		if _, exists := t.Primitives.Get(m[1]); exists {
			return false
		}
		t.Primitives.Put(token.NewSingleColor(m[1], value))
		return true
	}

	return false
}

// FontVariables returns the --font-* declarations among the preserved items.
func (t *Theme) FontVariables() []token.FontVar {
	if t == nil {
		return nil
	}
	var vars []token.FontVar
	for _, item := range t.Preserved {
		if name, ok := strings.CutPrefix(item.Property(), "--font-"); ok {
			vars = append(vars, token.FontVar{Name: name, Value: item.Decl.Body})
		}
	}
	return vars
}
