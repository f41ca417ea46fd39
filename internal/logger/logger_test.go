/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package logger_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"bennypowers.dev/tokensync/internal/logger"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() {
		logger.SetOutput(os.Stderr)
		logger.SetVerbose(false)
	})

	logger.Info("wrote %d rules", 3)
	logger.Debug("hidden")
	logger.Warn("bg-x: %s", "no match")
	assert.Equal(t, "info: wrote 3 rules\nwarn: bg-x: no match\n", buf.String())

	buf.Reset()
	logger.SetVerbose(true)
	logger.Debug("shown")
	assert.Equal(t, "debug: shown\n", buf.String())

	buf.Reset()
	logger.SetQuiet(true)
	logger.Info("dropped")
	logger.Warn("kept")
	assert.Equal(t, "warn: kept\n", buf.String())
}
