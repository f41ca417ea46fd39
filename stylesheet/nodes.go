/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package stylesheet

import (
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Kind classifies a top-level node.
type Kind int

const (
	// KindText is unterminated or unrecognized source text.
	KindText Kind = iota
	// KindComment is a /* ... */ comment.
	KindComment
	// KindDeclaration is a property: value; pair.
	KindDeclaration
	// KindStatement is an at-rule without a block, such as @import.
	KindStatement
	// KindBlock is a rule or at-rule with a {} body.
	KindBlock
)

func (k Kind) String() string {
	switch k {
	case KindComment:
		return "comment"
	case KindDeclaration:
		return "declaration"
	case KindStatement:
		return "statement"
	case KindBlock:
		return "block"
	default:
		return "text"
	}
}

// Node is a top-level piece of CSS source. Raw holds the node's exact
// source bytes without the surrounding whitespace.
type Node struct {
	Kind Kind
	Raw  string

	// Prelude is the selector or at-rule prelude of a block, or the
	// property of a declaration.
	Prelude string

	// Body is the text between a block's braces, or a declaration's value.
	Body string

	// Offset is the position of Raw in the parsed text.
	Offset int
}

// Children parses a block's body.
func (n Node) Children() []Node {
	if n.Kind != KindBlock {
		return nil
	}
	return ParseNodes(n.Body)
}

// Key is the prelude with whitespace removed and lowercased, for matching
// block preludes regardless of formatting.
func (n Node) Key() string {
	return compact(n.Prelude)
}

func compact(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}

// ParseNodes splits text into top-level nodes, keeping nested blocks
// intact. Whitespace between nodes is discarded.
func ParseNodes(text string) []Node {
	var (
		nodes   []Node
		offset  int
		start   = -1
		depth   int
		brace   = -1
		inBlock bool
	)

	emit := func(end int, kind Kind) {
		n := Node{Kind: kind, Raw: text[start:end], Offset: start}
		switch kind {
		case KindBlock:
			n.Prelude = strings.TrimSpace(text[start:brace])
			n.Body = text[brace+1 : end-1]
		case KindDeclaration:
			decl := strings.TrimSuffix(n.Raw, ";")
			prop, value, _ := strings.Cut(decl, ":")
			n.Prelude = strings.TrimSpace(prop)
			n.Body = strings.TrimSpace(value)
		}
		nodes = append(nodes, n)
		start, brace, inBlock = -1, -1, false
	}

	lexer := css.NewLexer(parse.NewInput(strings.NewReader(text)))
	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			break
		}
		pos := offset
		offset += len(data)

		if depth == 0 && start < 0 {
			switch tt {
			case css.WhitespaceToken:
				continue
			case css.CommentToken:
				start = pos
				emit(offset, KindComment)
				continue
			}
			start = pos
		}

		switch tt {
		case css.LeftBraceToken:
			if depth == 0 {
				brace = pos
				inBlock = true
			}
			depth++
		case css.RightBraceToken:
			if depth == 0 {
				emit(offset, KindText)
				continue
			}
			depth--
			if depth == 0 && inBlock {
				emit(offset, KindBlock)
			}
		case css.SemicolonToken:
			if depth == 0 {
				emit(offset, statementKind(text[start:offset]))
			}
		}
	}

	if start >= 0 {
		end := len(strings.TrimRight(text, " \t\r\n\f"))
		if end < start {
			end = len(text)
		}
		kind := KindText
		if !inBlock && depth == 0 {
			kind = statementKind(text[start:end])
		}
		emit(end, kind)
	}

	return nodes
}

func statementKind(raw string) Kind {
	raw = strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(raw, "@"):
		return KindStatement
	case strings.Contains(raw, ":"):
		return KindDeclaration
	default:
		return KindText
	}
}
