/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// TextStyle is a Figma text style.
type TextStyle struct {
	Name          string        `json:"name"`
	FontFamily    string        `json:"fontFamily"`
	FontWeight    Weight        `json:"fontWeight"`
	FontSize      float64       `json:"fontSize"`
	LetterSpacing LetterSpacing `json:"letterSpacing"`
}

// ClassName returns the utility class generated for the style,
// e.g. "Body Small" → "font-body-small".
func (s TextStyle) ClassName() string {
	name := strings.ToLower(strings.TrimSpace(s.Name))
	return "font-" + whitespaceRun.ReplaceAllString(name, "-")
}

// LetterSpacing is a tracking value. Figma exports either a bare number
// or an object with a value and a unit.
type LetterSpacing struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit,omitempty"`
}

// UnmarshalJSON accepts a number, a numeric string, null or {value, unit}.
func (ls *LetterSpacing) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" || raw == "" {
		*ls = LetterSpacing{}
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*ls = LetterSpacing{Value: n}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, "%")), 64)
		if err != nil {
			return fmt.Errorf("letterSpacing %q: %w", s, err)
		}
		*ls = LetterSpacing{Value: v}
		return nil
	}

	type plain LetterSpacing
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("letterSpacing must be a number or {value, unit}: %w", err)
	}
	*ls = LetterSpacing(p)
	return nil
}

// Weight is a font weight name such as "Regular" or "SemiBold".
type Weight string

var numericWeights = map[int]Weight{
	100: "Thin",
	200: "ExtraLight",
	300: "Light",
	400: "Regular",
	500: "Medium",
	600: "SemiBold",
	700: "Bold",
	800: "ExtraBold",
	900: "Black",
}

// UnmarshalJSON accepts a weight name or a numeric weight (100–900).
func (w *Weight) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*w = Weight(strings.TrimSpace(s))
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("fontWeight must be a string or number: %w", err)
	}
	if name, ok := numericWeights[int(n)]; ok {
		*w = name
		return nil
	}
	*w = Weight(strconv.Itoa(int(n)))
	return nil
}
