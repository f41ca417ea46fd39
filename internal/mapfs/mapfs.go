/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mapfs is an in-memory fs.FileSystem for tests.
//
// Paths are slash-separated and rooted at "/". Directories exist
// implicitly above every file, or explicitly once created by MkdirAll.
// Single operations can be made to fail with FailOn.
package mapfs

import (
	"errors"
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"
	"testing/fstest"
	"time"
)

// Operation names accepted by FailOn.
const (
	OpWrite  = "write"
	OpRead   = "read"
	OpRemove = "remove"
	OpRename = "rename"
	OpMkdir  = "mkdir"
)

var errNotDir = errors.New("not a directory")

// MapFileSystem holds files in an fstest.MapFS.
type MapFileSystem struct {
	mu       sync.RWMutex
	files    fstest.MapFS
	dirs     map[string]fs.FileMode
	failures map[string]error
	modTime  time.Time
}

// New returns an empty filesystem.
func New() *MapFileSystem {
	return &MapFileSystem{
		files:    fstest.MapFS{},
		dirs:     map[string]fs.FileMode{},
		failures: map[string]error{},
		modTime:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// FailOn makes every later call of op return err wrapped in a
// *fs.PathError. A nil err clears the failure.
func (m *MapFileSystem) FailOn(op string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.failures, op)
		return
	}
	m.failures[op] = err
}

// AddFile stores content at p. Unlike WriteFile it never fails.
func (m *MapFileSystem) AddFile(p, content string, mode fs.FileMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.put(key(p), []byte(content), mode)
}

func (m *MapFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := key(name)
	if err := m.check(OpWrite, name); err != nil {
		return err
	}
	if m.isFile(path.Dir(k)) {
		return &fs.PathError{Op: OpWrite, Path: name, Err: errNotDir}
	}
	m.put(k, slices.Clone(data), perm)
	return nil
}

func (m *MapFileSystem) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.check(OpRead, name); err != nil {
		return nil, err
	}
	return fs.ReadFile(m.files, key(name))
}

func (m *MapFileSystem) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.check(OpRemove, name); err != nil {
		return err
	}
	k := key(name)
	if !m.isFile(k) {
		return &fs.PathError{Op: OpRemove, Path: name, Err: fs.ErrNotExist}
	}
	delete(m.files, k)
	return nil
}

// Rename moves a file, replacing the target.
func (m *MapFileSystem) Rename(oldpath, newpath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.check(OpRename, oldpath); err != nil {
		return err
	}
	from, to := key(oldpath), key(newpath)
	f, ok := m.files[from]
	if !ok {
		return &fs.PathError{Op: OpRename, Path: oldpath, Err: fs.ErrNotExist}
	}
	if m.isFile(path.Dir(to)) {
		return &fs.PathError{Op: OpRename, Path: newpath, Err: errNotDir}
	}
	delete(m.files, from)
	m.files[to] = f
	return nil
}

func (m *MapFileSystem) MkdirAll(p string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.check(OpMkdir, p); err != nil {
		return err
	}
	var missing []string
	for k := key(p); k != "."; k = path.Dir(k) {
		if m.isFile(k) {
			return &fs.PathError{Op: OpMkdir, Path: p, Err: errNotDir}
		}
		if _, ok := m.dirs[k]; !ok {
			missing = append(missing, k)
		}
	}
	for _, k := range missing {
		m.dirs[k] = perm.Perm()
	}
	return nil
}

func (m *MapFileSystem) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fs.Stat(m.view(), key(name))
}

// Exists reports whether a file or directory exists at p.
func (m *MapFileSystem) Exists(p string) bool {
	_, err := m.Stat(p)
	return err == nil
}

// Files returns the rooted paths of all files, sorted.
func (m *MapFileSystem) Files() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	files := make([]string, 0, len(m.files))
	for k := range m.files {
		files = append(files, "/"+k)
	}
	slices.Sort(files)
	return files
}

func (m *MapFileSystem) put(k string, data []byte, mode fs.FileMode) {
	m.files[k] = &fstest.MapFile{Data: data, Mode: mode, ModTime: m.modTime}
}

func (m *MapFileSystem) isFile(k string) bool {
	f, ok := m.files[k]
	return ok && !f.Mode.IsDir()
}

func (m *MapFileSystem) check(op, name string) error {
	if err, ok := m.failures[op]; ok {
		return &fs.PathError{Op: op, Path: name, Err: err}
	}
	return nil
}

// view overlays the explicit directories on the files. fstest.MapFS
// synthesizes the implicit ones.
func (m *MapFileSystem) view() fstest.MapFS {
	if len(m.dirs) == 0 {
		return m.files
	}
	v := make(fstest.MapFS, len(m.files)+len(m.dirs))
	for k, mode := range m.dirs {
		v[k] = &fstest.MapFile{Mode: fs.ModeDir | mode, ModTime: m.modTime}
	}
	for k, f := range m.files {
		v[k] = f
	}
	return v
}

// key maps a rooted or relative path to an fs.FS key.
func key(p string) string {
	k := strings.TrimPrefix(path.Clean("/"+p), "/")
	if k == "" {
		return "."
	}
	return k
}
