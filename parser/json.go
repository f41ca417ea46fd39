/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// object is a JSON object with its keys in document order.
type object = orderedmap.OrderedMap[string, json.RawMessage]

// isLikelyJSON checks if data appears to be a JSON object.
// JSON typically starts with '{' (optionally preceded by whitespace/BOM).
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case 0xEF, 0xBB, 0xBF: // UTF-8 BOM
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

// decodeObject parses a JSON object, tolerating comments and trailing commas.
func decodeObject(data []byte) (*object, error) {
	if !isLikelyJSON(data) {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrInvalidSource)
	}
	obj := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(jsonc.ToJSON(stripBOM(data)), obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSource, err)
	}
	return obj, nil
}

// section returns the first of names present in obj as an object.
func section(obj *object, names ...string) (*object, string, error) {
	for _, name := range names {
		raw, ok := obj.Get(name)
		if !ok {
			continue
		}
		sub := orderedmap.New[string, json.RawMessage]()
		if err := json.Unmarshal(raw, sub); err != nil {
			return nil, name, fmt.Errorf("%w: %q must be an object: %v", ErrInvalidSource, name, err)
		}
		return sub, name, nil
	}
	return nil, "", nil
}

func stripBOM(data []byte) []byte {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return data[3:]
	}
	return data
}
