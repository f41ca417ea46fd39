/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package syncer

import "errors"

var (
	// ErrSourceMissing indicates a required token export does not exist.
	ErrSourceMissing = errors.New("token source not found")

	// ErrSourceInvalid indicates a token export that cannot be parsed.
	ErrSourceInvalid = errors.New("token source is invalid")

	// ErrNothingToSync indicates a run with neither colors nor fonts selected.
	ErrNothingToSync = errors.New("nothing to sync")
)
