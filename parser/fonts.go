/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"bennypowers.dev/tokensync/fs"
	"bennypowers.dev/tokensync/stylesheet"
	"bennypowers.dev/tokensync/token"
)

// FontFormat identifies a typography export format.
type FontFormat string

const (
	// FontFormatJSON is {"textStyles": [...]}.
	FontFormatJSON FontFormat = "json"
	// FontFormatCSS is a stylesheet of --font-* variables and .font-* rules.
	FontFormatCSS FontFormat = "css"
)

// DetectFontFormat picks the format from the file extension, falling back
// to the content.
func DetectFontFormat(path string, data []byte) FontFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return FontFormatJSON
	case ".css":
		return FontFormatCSS
	}
	if isLikelyJSON(data) {
		return FontFormatJSON
	}
	return FontFormatCSS
}

// ParseFonts parses a typography export of the given format.
func ParseFonts(data []byte, format FontFormat) (*Fonts, error) {
	switch format {
	case FontFormatCSS:
		return ParseFontsCSS(data)
	default:
		return ParseFontsJSON(data)
	}
}

// ParseFontsJSON parses {"textStyles": [...]}.
func ParseFontsJSON(data []byte) (*Fonts, error) {
	root, err := decodeObject(data)
	if err != nil {
		return nil, err
	}
	raw, ok := root.Get("textStyles")
	if !ok {
		return nil, fmt.Errorf("%w: missing textStyles", ErrInvalidSource)
	}
	var styles []token.TextStyle
	if err := json.Unmarshal(raw, &styles); err != nil {
		return nil, fmt.Errorf("%w: textStyles: %v", ErrInvalidSource, err)
	}
	return &Fonts{Styles: styles}, nil
}

// ParseFontsCSS reads --font-* variables from the theme blocks and
// .font-* { @apply ...; } rules from the utilities layer or top level.
func ParseFontsCSS(data []byte) (*Fonts, error) {
	doc := stylesheet.Parse(string(data), stylesheet.Options{})
	fonts := &Fonts{Variables: doc.FontVariables()}

	for _, r := range doc.Utilities.FontRules() {
		if rule, ok := fontRule(r.Node); ok {
			fonts.Rules = append(fonts.Rules, rule)
		}
	}
	for _, n := range append(stylesheet.ParseNodes(doc.Header), doc.Trailing...) {
		if rule, ok := fontRule(n); ok {
			fonts.Rules = append(fonts.Rules, rule)
		}
	}

	if len(fonts.Rules) == 0 && len(fonts.Variables) == 0 {
		return nil, fmt.Errorf("%w: no --font-* variables or .font-* rules", ErrInvalidSource)
	}
	return fonts, nil
}

func fontRule(n stylesheet.Node) (token.FontRule, bool) {
	if n.Kind != stylesheet.KindBlock {
		return token.FontRule{}, false
	}
	class, ok := strings.CutPrefix(strings.TrimSpace(n.Prelude), ".")
	if !ok || !strings.HasPrefix(class, "font-") || strings.ContainsAny(class, " :,.>+~[") {
		return token.FontRule{}, false
	}
	utilities, ok := stylesheet.ApplyUtilities(n)
	if !ok || len(utilities) == 0 {
		return token.FontRule{}, false
	}
	return token.FontRule{Class: class, Utilities: utilities}, true
}

// ParseFontsFile reads and parses a typography export.
func ParseFontsFile(filesystem fs.FileSystem, path string) (*Fonts, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	fonts, err := ParseFonts(data, DetectFontFormat(path, data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fonts, nil
}
