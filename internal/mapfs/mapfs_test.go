/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package mapfs

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapFileSystem_Files(t *testing.T) {
	m := New()
	m.AddFile("/project/tools/figma-colors.json", "{}", 0o644)
	require.NoError(t, m.WriteFile("project/src/app/globals.css", []byte("body {}"), 0o600))

	assert.Equal(t, []string{"/project/src/app/globals.css", "/project/tools/figma-colors.json"}, m.Files())
	assert.True(t, m.Exists("/project/src"), "implicit directory")
	assert.False(t, m.Exists("/project/dist"))

	info, err := m.Stat("/project/src/app/globals.css")
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0o600), info.Mode().Perm())
}

func TestMapFileSystem_MkdirAll(t *testing.T) {
	m := New()
	require.NoError(t, m.MkdirAll("/project/styles", 0o755))

	info, err := m.Stat("/project/styles")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.True(t, m.Exists("/project"))
	assert.Empty(t, m.Files())

	m.AddFile("/project/file", "", 0o644)
	assert.Error(t, m.MkdirAll("/project/file/sub", 0o755))
}

func TestMapFileSystem_Rename(t *testing.T) {
	m := New()
	m.AddFile("/a/.globals.css.tmp", "new", 0o644)
	m.AddFile("/a/globals.css", "old", 0o644)

	require.NoError(t, m.Rename("/a/.globals.css.tmp", "/a/globals.css"))
	data, err := m.ReadFile("/a/globals.css")
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
	assert.Equal(t, []string{"/a/globals.css"}, m.Files())

	err = m.Rename("/a/missing", "/a/globals.css")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestMapFileSystem_FailOn(t *testing.T) {
	m := New()
	m.AddFile("/a", "x", 0o644)

	m.FailOn(OpRead, fs.ErrPermission)
	_, err := m.ReadFile("/a")
	var pathErr *fs.PathError
	require.True(t, errors.As(err, &pathErr))
	assert.Equal(t, OpRead, pathErr.Op)
	assert.ErrorIs(t, err, fs.ErrPermission)

	m.FailOn(OpRead, nil)
	_, err = m.ReadFile("/a")
	assert.NoError(t, err)
}

func TestMapFileSystem_Remove(t *testing.T) {
	m := New()
	m.AddFile("/a", "x", 0o644)
	require.NoError(t, m.Remove("/a"))
	assert.ErrorIs(t, m.Remove("/a"), fs.ErrNotExist)
}
