/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"encoding/json"
	"fmt"
	"regexp"

	"go.uber.org/multierr"

	"bennypowers.dev/tokensync/fs"
	"bennypowers.dev/tokensync/token"
)

// Section names of a Figma color export. Older exports use the
// second name of each pair.
var (
	PrimitiveSections = []string{"custom-primitive-classes", "utility-classes-custom"}
	SemanticSections  = []string{"semantic-classes", "semantic-colors"}
)

var primitiveKey = regexp.MustCompile(`^color-(.+)-(\d+)$`)

type primitiveValue struct {
	Default string `json:"default"`
}

type semanticValue struct {
	Light string `json:"light"`
	Dark  string `json:"dark"`
}

// ColorResult is a parsed color export and the entries it had to skip.
type ColorResult struct {
	Colors

	// Warnings aggregates skipped entries. Nil when nothing was skipped.
	Warnings error
}

// ParseColors parses a Figma color export.
// Keys that do not follow the color-<family>-<shade> pattern are ignored.
func ParseColors(data []byte) (*ColorResult, error) {
	root, err := decodeObject(data)
	if err != nil {
		return nil, err
	}

	result := &ColorResult{Colors: Colors{Primitives: token.NewColorGroups()}}

	primitives, name, err := section(root, PrimitiveSections...)
	if err != nil {
		return nil, err
	}
	if primitives != nil {
		for pair := primitives.Oldest(); pair != nil; pair = pair.Next() {
			m := primitiveKey.FindStringSubmatch(pair.Key)
			if m == nil {
				continue
			}
			value, err := decodePrimitive(pair.Value)
			if err != nil {
				result.Warnings = multierr.Append(result.Warnings,
					fmt.Errorf("%s.%s: %w", name, pair.Key, err))
				continue
			}
			result.Primitives.Ensure(m[1]).Set(m[2], value)
		}
	}

	semantic, name, err := section(root, SemanticSections...)
	if err != nil {
		return nil, err
	}
	if semantic != nil {
		for pair := semantic.Oldest(); pair != nil; pair = pair.Next() {
			var v semanticValue
			if err := json.Unmarshal(pair.Value, &v); err != nil {
				result.Warnings = multierr.Append(result.Warnings,
					fmt.Errorf("%s.%s: expected {light, dark}: %w", name, pair.Key, err))
				continue
			}
			result.Semantic = append(result.Semantic, token.NewSemanticEntry(pair.Key, v.Light, v.Dark))
		}
	}

	return result, nil
}

// decodePrimitive accepts {"default": value} or a bare string.
func decodePrimitive(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var v primitiveValue
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", fmt.Errorf("expected a string or {default}: %w", err)
	}
	if v.Default == "" {
		return "", fmt.Errorf("missing default value")
	}
	return v.Default, nil
}

// ParseColorsFile reads and parses a color export.
func ParseColorsFile(filesystem fs.FileSystem, path string) (*ColorResult, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	result, err := ParseColors(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return result, nil
}
