/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package stylesheet

import (
	"regexp"
	"strings"
)

// RuleKind classifies a node in the utilities layer.
type RuleKind int

const (
	// Foreign rules are hand-authored and passed through untouched.
	Foreign RuleKind = iota
	// ManagedColor rules are generated from semantic colors.
	ManagedColor
	// ManagedFont rules are generated from text styles.
	ManagedFont
)

var (
	classSelector = regexp.MustCompile(`^\.([A-Za-z0-9_-]+)(:[A-Za-z-]+)?$`)
	colorPrefix   = regexp.MustCompile(`^(?:bg|text|border)-`)
)

// Rule is a node of the utilities layer.
type Rule struct {
	Kind  RuleKind
	Node  Node
	Class string

	// Selector is the class selector without the leading dot,
	// pseudo-class included.
	Selector string

	// Comments are the comments directly above a managed rule, with no
	// blank line between them. They belong to the rule.
	Comments []string

	// Glob is set on font rules claimed through managedFontClasses.
	Glob bool
}

// Utilities is the parsed @layer utilities block.
type Utilities struct {
	Rules []Rule
}

// Of returns the rules of the given kind, in order.
func (u *Utilities) Of(kind RuleKind) []Rule {
	if u == nil {
		return nil
	}
	var rules []Rule
	for _, r := range u.Rules {
		if r.Kind == kind {
			rules = append(rules, r)
		}
	}
	return rules
}

// FontRules returns the managed font rules.
func (u *Utilities) FontRules() []Rule {
	return u.Of(ManagedFont)
}

// Comments returns the comments attached to managed rules, by selector.
func (u *Utilities) Comments() map[string][]string {
	comments := make(map[string][]string)
	if u == nil {
		return comments
	}
	for _, r := range u.Rules {
		if len(r.Comments) > 0 {
			comments[r.Selector] = r.Comments
		}
	}
	return comments
}

func (u *Utilities) parse(body string, opts Options) {
	var pending []Node
	flush := func(nodes []Node) {
		for _, c := range nodes {
			u.Rules = append(u.Rules, Rule{Kind: Foreign, Node: c})
		}
	}
	for _, n := range ParseNodes(body) {
		if n.Kind == KindComment {
			pending = append(pending, n)
			continue
		}
		r := classify(n, opts)
		if r.Kind != Foreign {
			split := adjacent(body, pending, n)
			flush(pending[:split])
			for _, c := range pending[split:] {
				r.Comments = append(r.Comments, c.Raw)
			}
		} else {
			flush(pending)
		}
		pending = nil
		u.Rules = append(u.Rules, r)
	}
	flush(pending)
}

// adjacent returns the index of the first comment in the unbroken run
// directly above n. Comments below a blank line stay separate.
func adjacent(body string, comments []Node, n Node) int {
	next := n.Offset
	for i := len(comments) - 1; i >= 0; i-- {
		c := comments[i]
		if strings.Count(body[c.Offset+len(c.Raw):next], "\n") > 1 {
			return i + 1
		}
		next = c.Offset
	}
	return 0
}

func classify(n Node, opts Options) Rule {
	r := Rule{Kind: Foreign, Node: n}
	if n.Kind != KindBlock {
		return r
	}
	m := classSelector.FindStringSubmatch(strings.TrimSpace(n.Prelude))
	if m == nil {
		return r
	}
	r.Class = m[1]
	pseudo := m[2]
	r.Selector = r.Class + pseudo

	if opts.IsPreserved != nil && opts.IsPreserved(r.Class) {
		return r
	}

	_, single := ApplyUtilities(n)
	switch {
	case colorPrefix.MatchString(r.Class) && single && (pseudo == "" || pseudo == ":hover"):
		r.Kind = ManagedColor
	case strings.HasPrefix(r.Class, "font-") && pseudo == "":
		r.Glob = opts.IsManagedFont != nil && opts.IsManagedFont(r.Class)
		if single || r.Glob {
			r.Kind = ManagedFont
		}
	}
	return r
}

// ApplyUtilities returns the utilities of a block whose body is a single
// @apply statement. The second result reports whether it is one.
func ApplyUtilities(n Node) ([]string, bool) {
	children := n.Children()
	if len(children) != 1 || children[0].Kind != KindStatement {
		return nil, false
	}
	stmt := strings.TrimSuffix(strings.TrimSpace(children[0].Raw), ";")
	args, ok := strings.CutPrefix(stmt, "@apply")
	if !ok || (args != "" && !isSpace(args[0])) {
		return nil, false
	}
	return strings.Fields(args), true
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f'
}
