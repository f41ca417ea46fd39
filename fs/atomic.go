/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package fs

import (
	"fmt"
	"io/fs"
	"path/filepath"
)

// WriteAtomic replaces name with data. The data is written to a sibling
// temporary file which is then renamed over name, so readers see either
// the old content or the new, never a partial file. Missing parent
// directories are created.
func WriteAtomic(fsys FileSystem, name string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(name)
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp := filepath.Join(dir, "."+filepath.Base(name)+".tmp")
	if err := fsys.WriteFile(tmp, data, perm); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := fsys.Rename(tmp, name); err != nil {
		_ = fsys.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", name, err)
	}
	return nil
}
