/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil loads test fixtures from a package's testdata
// directory and maintains golden files.
//
// Run tests with -update to rewrite golden files from actual output.
package testutil

import (
	"flag"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"testing"

	"bennypowers.dev/tokensync/internal/mapfs"
)

const testdata = "testdata"

var update = flag.Bool("update", false, "rewrite golden files from actual output")

// NewFixtureFS copies testdata/<dir> into an in-memory filesystem under
// root. Hidden files such as .config/ are included.
func NewFixtureFS(t *testing.T, dir, root string) *mapfs.MapFileSystem {
	t.Helper()

	src := os.DirFS(filepath.Join(testdata, dir))
	m := mapfs.New()
	err := fs.WalkDir(src, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(src, p)
		if err != nil {
			return err
		}
		m.AddFile(path.Join(root, p), string(data), 0o644)
		return nil
	})
	if err != nil {
		t.Fatalf("loading fixtures from %s: %v", dir, err)
	}
	return m
}

// LoadFixtureFile returns the content of testdata/<name>.
func LoadFixtureFile(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(testdata, name))
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}
	return data
}

// Golden returns the expected content of testdata/<name>. With -update
// the file is first replaced by actual.
func Golden(t *testing.T, name, actual string) string {
	t.Helper()
	if *update {
		p := filepath.Join(testdata, name)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("creating golden directory: %v", err)
		}
		if err := os.WriteFile(p, []byte(actual), 0o644); err != nil {
			t.Fatalf("writing golden file: %v", err)
		}
		t.Logf("updated %s", p)
	}
	return string(LoadFixtureFile(t, name))
}
