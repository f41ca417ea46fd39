/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/tokensync/fs"
)

// Config files are looked up as <root>/.config/tokensync<ext>, trying each
// extension in order.
const (
	ConfigFileName = "tokensync"
	ConfigDir      = ".config"
)

var configExtensions = []string{".yaml", ".yml", ".json"}

// Load finds and reads the config file under rootDir. It returns nil and
// no error when there is none.
func Load(filesystem fs.FileSystem, rootDir string) (*Config, error) {
	for _, ext := range configExtensions {
		p := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if filesystem.Exists(p) {
			return LoadFile(filesystem, p)
		}
	}
	return nil, nil
}

// LoadFile reads and validates one config file. Files ending in .json are
// JSON with comments allowed; anything else is YAML. Unknown keys are
// rejected.
func LoadFile(filesystem fs.FileSystem, path string) (*Config, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if filepath.Ext(path) == ".json" {
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.DisallowUnknownFields()
		err = dec.Decode(cfg)
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(cfg)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load with defaults filled in. Read errors yield the
// defaults.
func LoadOrDefault(filesystem fs.FileSystem, rootDir string) *Config {
	cfg, err := Load(filesystem, rootDir)
	if err != nil {
		return Default()
	}
	return cfg.WithDefaults()
}
