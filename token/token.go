/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the design token types exchanged between the
// Figma exports and the generated stylesheet.
package token

import "strings"

// ColorVariablePrefix is the Tailwind theme namespace for colors.
const ColorVariablePrefix = "--color-"

// ColorToken is a named color value.
type ColorToken struct {
	// Name is the token's identifier (e.g., "brand-500" or "bg-brand").
	Name string `json:"name"`

	// Value is a hex string, an oklch() string or a var() reference.
	Value string `json:"value"`
}

// CSSVariableName returns the theme variable for this token,
// e.g. "--color-brand-500".
func (t ColorToken) CSSVariableName() string {
	if t.Name == "" {
		return ""
	}
	return ColorVariablePrefix + t.Name
}

// Reference returns a var() reference to this token's variable.
func (t ColorToken) Reference() string {
	return "var(" + t.CSSVariableName() + ")"
}

// FontVar is a --font-* theme variable.
type FontVar struct {
	// Name is the variable name without the "--font-" prefix (e.g., "sans").
	Name string

	// Value is the declared font stack.
	Value string
}

// FirstFamily returns the first entry of the font stack, unquoted.
func (v FontVar) FirstFamily() string {
	first, _, _ := strings.Cut(v.Value, ",")
	first = strings.ReplaceAll(first, `"`, "")
	first = strings.ReplaceAll(first, `'`, "")
	return strings.TrimSpace(first)
}

// Class returns the font family utility this variable generates.
func (v FontVar) Class() string {
	return "font-" + v.Name
}

// FontRule is a generated font utility class.
type FontRule struct {
	// Class is the class name without the leading dot (e.g., "font-body").
	Class string

	// Utilities are the @apply tokens composing the class.
	Utilities []string
}

// Apply returns the @apply statement for this rule.
func (r FontRule) Apply() string {
	return "@apply " + strings.Join(r.Utilities, " ") + ";"
}
