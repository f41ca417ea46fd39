/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package fs abstracts the filesystem a sync run touches, so runs can be
// tested against internal/mapfs.
package fs

import (
	"io/fs"
	"os"
)

// FileSystem is what the config loader, the parsers and the syncer need.
// Files are read and written whole.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	Rename(oldpath, newpath string) error
	Remove(name string) error
	MkdirAll(path string, perm fs.FileMode) error
	Stat(name string) (fs.FileInfo, error)

	// Exists reports whether a file or directory is at path.
	Exists(path string) bool
}

// OSFileSystem is the real filesystem.
type OSFileSystem struct{}

var _ FileSystem = (*OSFileSystem)(nil)

func NewOSFileSystem() *OSFileSystem { return &OSFileSystem{} }

func (*OSFileSystem) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }

func (*OSFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

func (*OSFileSystem) Rename(oldpath, newpath string) error { return os.Rename(oldpath, newpath) }

func (*OSFileSystem) Remove(name string) error { return os.Remove(name) }

func (*OSFileSystem) MkdirAll(path string, perm fs.FileMode) error { return os.MkdirAll(path, perm) }

func (*OSFileSystem) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }

func (f *OSFileSystem) Exists(path string) bool {
	_, err := f.Stat(path)
	return err == nil
}
