/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package merge

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/multierr"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/tokensync/stylesheet"
	"bennypowers.dev/tokensync/token"
)

const indent = "  "

// Utility types that get a generated class.
var utilityTypes = map[string]bool{"bg": true, "text": true, "border": true}

// title capitalizes each hyphen-separated word ("big-stone" → "Big-Stone").
func title(s string) string {
	return cases.Title(language.English).String(s)
}

// Options control rendering.
type Options struct {
	// DarkSelector scopes the dark theme block. Defaults to ".dark".
	DarkSelector string
}

// ColorInput is freshly computed color content.
type ColorInput struct {
	Primitives *token.ColorGroups
	Semantic   []Resolved
}

// FontInput is freshly computed font content. Variables are written into
// @theme, replacing declarations of the same name.
type FontInput struct {
	Rules     []token.FontRule
	Variables []token.FontVar
}

// Input selects what a run regenerates. A nil part is carried over from
// the document unchanged.
type Input struct {
	Colors *ColorInput
	Fonts  *FontInput
}

// Output is a rendered stylesheet.
type Output struct {
	CSS string

	// ColorRules and FontRules count the managed utility classes written.
	ColorRules int
	FontRules  int

	// Warnings aggregates entries that produced no rule.
	Warnings error
}

// generated is a utility rule to write: .selector { body }.
type generated struct {
	selector string
	body     string
}

type declaration struct {
	name  string
	value string
}

// Render produces the complete stylesheet text.
func Render(doc *stylesheet.Document, in Input, opts Options) Output {
	if opts.DarkSelector == "" {
		opts.DarkSelector = stylesheet.DefaultDarkSelector
	}

	var out Output
	light, dark := semanticDeclarations(doc, in.Colors)

	blocks := []string{
		rawOr(doc.Header, defaultHeader),
		nodeOr(doc.Root, defaultRoot),
	}
	if theme := renderTheme(doc, in, light); theme != "" {
		blocks = append(blocks, theme)
	}
	blocks = append(blocks,
		nodeOr(doc.ThemeInline, defaultThemeInline),
		nodeOr(doc.DarkMedia, defaultDarkMedia),
	)
	if d := renderDark(doc, dark, opts.DarkSelector); d != "" {
		blocks = append(blocks, d)
	}

	var items []string
	comments := doc.Utilities.Comments()
	emit := func(rules []generated) int {
		for _, g := range rules {
			items = append(items, attach(comments[g.selector], rule(g.selector, g.body)))
		}
		return len(rules)
	}
	carry := func(r stylesheet.Rule) {
		items = append(items, attach(r.Comments, r.Node.Raw))
	}

	if in.Colors != nil {
		rules, warnings := colorRules(in.Colors.Semantic)
		out.Warnings = multierr.Append(out.Warnings, warnings)
		out.ColorRules = emit(rules)
	} else {
		for _, r := range doc.Utilities.Of(stylesheet.ManagedColor) {
			carry(r)
			out.ColorRules++
		}
	}
	if in.Fonts != nil {
		rules := fontRules(in.Fonts.Rules)
		out.FontRules = emit(rules)
		regenerated := make(map[string]bool, len(rules))
		for _, g := range rules {
			regenerated[g.selector] = true
		}
		// Font classes the export does not define are kept unless a
		// managedFontClasses glob claims them.
		for _, r := range doc.Utilities.Of(stylesheet.ManagedFont) {
			if !r.Glob && !regenerated[r.Selector] {
				carry(r)
			}
		}
	} else {
		for _, r := range doc.Utilities.Of(stylesheet.ManagedFont) {
			carry(r)
			out.FontRules++
		}
	}
	for _, r := range doc.Utilities.Of(stylesheet.Foreign) {
		items = append(items, r.Node.Raw)
	}
	blocks = append(blocks, renderUtilities(items))

	for _, n := range doc.Trailing {
		blocks = append(blocks, n.Raw)
	}
	if doc.Empty {
		blocks = append(blocks, defaultBody)
	}

	out.CSS = strings.Join(blocks, "\n\n") + "\n"
	return out
}

func rawOr(raw, fallback string) string {
	if strings.TrimSpace(raw) == "" {
		return fallback
	}
	return raw
}

func nodeOr(n *stylesheet.Node, fallback string) string {
	if n == nil {
		return fallback
	}
	return n.Raw
}

func semanticDeclarations(doc *stylesheet.Document, colors *ColorInput) (light, dark []declaration) {
	if colors != nil {
		for _, r := range colors.Semantic {
			light = append(light, declaration{r.Name, reference(r.LightMatch.Name)})
			dark = append(dark, declaration{r.Name, reference(r.DarkMatch.Name)})
		}
		return light, dark
	}
	if doc.Theme != nil {
		for _, t := range doc.Theme.Semantic {
			light = append(light, declaration{t.Name, t.Value})
		}
	}
	if doc.Dark != nil {
		for _, t := range doc.Dark.Semantic {
			dark = append(dark, declaration{t.Name, t.Value})
		}
	}
	return light, dark
}

func reference(name string) string {
	return token.ColorToken{Name: name}.Reference()
}

func renderTheme(doc *stylesheet.Document, in Input, light []declaration) string {
	var vars []token.FontVar
	if in.Fonts != nil {
		vars = in.Fonts.Variables
	}

	preserved, notes := preservedLines(doc.Theme, vars)

	groups := doc.Primitives()
	if in.Colors != nil && in.Colors.Primitives != nil {
		groups = in.Colors.Primitives
	}

	return block("@theme", [][]string{
		preserved,
		primitiveLines(groups),
		semanticLines("Semantic Colors - Light Theme", light),
		notes,
	})
}

func renderDark(doc *stylesheet.Document, dark []declaration, selector string) string {
	preserved, notes := preservedLines(doc.Dark, nil)
	return block(selector, [][]string{
		preserved,
		semanticLines("Semantic Colors - Dark Theme", dark),
		notes,
	})
}

// block renders non-empty sections separated by blank lines, or "" when
// every section is empty.
func block(prelude string, sections [][]string) string {
	var lines []string
	for _, s := range sections {
		if len(s) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, s...)
	}
	if len(lines) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(prelude)
	b.WriteString(" {\n")
	for _, line := range lines {
		if line != "" {
			b.WriteString(indent)
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}

// preservedLines renders the theme's preserved declarations, replacing
// or adding the given font variables. New variables follow the last
// existing --font-* declaration, or lead when there is none. Comments
// not attached to a declaration are returned separately as notes; they
// close the block so they never precede a generated declaration.
func preservedLines(theme *stylesheet.Theme, vars []token.FontVar) (lines, notes []string) {
	pending := make(map[string]string, len(vars))
	for _, v := range vars {
		pending["--font-"+v.Name] = v.Value
	}

	var (
		items    [][]string
		lastFont = -1
	)
	if theme != nil {
		for _, item := range theme.Preserved {
			if item.Decl == nil {
				notes = append(notes, item.Comments...)
				continue
			}
			itemLines := append([]string(nil), item.Comments...)
			prop := item.Property()
			if value, ok := pending[prop]; ok {
				itemLines = append(itemLines, prop+": "+value+";")
				delete(pending, prop)
			} else {
				itemLines = append(itemLines, item.Decl.Raw)
			}
			if strings.HasPrefix(prop, "--font-") {
				lastFont = len(items)
			}
			items = append(items, itemLines)
		}
	}

	var added []string
	for _, v := range vars {
		prop := "--font-" + v.Name
		if value, ok := pending[prop]; ok {
			added = append(added, prop+": "+value+";")
			delete(pending, prop)
		}
	}

	if lastFont < 0 {
		lines = append(lines, added...)
	}
	for i, item := range items {
		lines = append(lines, item...)
		if i == lastFont {
			lines = append(lines, added...)
		}
	}
	return lines, notes
}

func primitiveLines(groups *token.ColorGroups) []string {
	var lines []string
	for _, g := range groups.Sorted() {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		if g.IsSingle() {
			lines = append(lines, comment(title(g.Family)))
		} else {
			lines = append(lines, comment(title(g.Family)+" Colors"))
		}
		for _, t := range g.Tokens() {
			lines = append(lines, t.CSSVariableName()+": "+t.Value+";")
		}
	}
	return lines
}

func semanticLines(heading string, decls []declaration) []string {
	if len(decls) == 0 {
		return nil
	}

	byCategory := make(map[string][]declaration)
	for _, d := range decls {
		c := category(d.name)
		byCategory[c] = append(byCategory[c], d)
	}
	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	lines := []string{comment(heading)}
	for i, c := range categories {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, comment(title(c)))
		group := byCategory[c]
		sort.SliceStable(group, func(a, b int) bool { return group[a].name < group[b].name })
		for _, d := range group {
			lines = append(lines, token.ColorVariablePrefix+d.name+": "+d.value+";")
		}
	}
	return lines
}

// category is the role family of a semantic name: its second segment,
// or its only one.
func category(name string) string {
	parts := strings.Split(strings.TrimSuffix(name, "-hover"), "-")
	if len(parts) > 1 {
		return parts[1]
	}
	return parts[0]
}

func comment(text string) string {
	return "/* " + text + " */"
}

func colorRules(resolved []Resolved) ([]generated, error) {
	bases := make(map[string]bool)
	for _, r := range resolved {
		if !r.Hover {
			bases[r.Name] = true
		}
	}

	var warnings error
	hovers := make(map[string][]Resolved)
	for _, r := range resolved {
		if !r.Hover {
			continue
		}
		if !bases[r.BaseName()] {
			warnings = multierr.Append(warnings, fmt.Errorf("%s: %w %s", r.Key, ErrOrphanHover, r.BaseName()))
			continue
		}
		hovers[r.BaseName()] = append(hovers[r.BaseName()], r)
	}

	var rules []generated
	for _, r := range resolved {
		if r.Hover || !utilityTypes[r.Type] {
			continue
		}
		rules = append(rules, generated{r.Name, "@apply " + r.Type + "-" + r.LightMatch.Name + ";"})
		for _, h := range hovers[r.Name] {
			rules = append(rules, generated{r.Name + ":hover", "@apply " + h.Type + "-" + h.LightMatch.Name + ";"})
		}
	}
	return rules, warnings
}

// fontRules renders font rules. A repeated class keeps its first
// position and its last utilities.
func fontRules(rules []token.FontRule) []generated {
	var order []string
	byClass := make(map[string]token.FontRule)
	for _, r := range rules {
		if _, seen := byClass[r.Class]; !seen {
			order = append(order, r.Class)
		}
		byClass[r.Class] = r
	}
	out := make([]generated, 0, len(order))
	for _, class := range order {
		out = append(out, generated{class, byClass[class].Apply()})
	}
	return out
}

func rule(selector, body string) string {
	return "." + selector + " {\n" + indent + indent + body + "\n" + indent + "}"
}

// attach puts comments on the lines directly above a rule.
func attach(comments []string, css string) string {
	if len(comments) == 0 {
		return css
	}
	return strings.Join(append(append([]string(nil), comments...), css), "\n"+indent)
}

func renderUtilities(items []string) string {
	if len(items) == 0 {
		return emptyUtilities
	}
	var b strings.Builder
	b.WriteString("@layer utilities {\n")
	for i, item := range items {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(indent)
		b.WriteString(item)
	}
	b.WriteString("\n}")
	return b.String()
}
