/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides the process-wide console logger.
package logger

import (
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.Mutex
	level  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	output io.Writer = os.Stderr
	sugar  *zap.SugaredLogger
)

func init() {
	build()
}

func build() {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	ec.NameKey = zapcore.OmitKey
	ec.EncodeLevel = zapcore.LowercaseLevelEncoder
	ec.ConsoleSeparator = ": "

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.AddSync(output), level)
	sugar = zap.New(core).Sugar()
}

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	build()
}

// SetVerbose enables debug messages.
func SetVerbose(verbose bool) {
	if verbose {
		level.SetLevel(zapcore.DebugLevel)
	} else {
		level.SetLevel(zapcore.InfoLevel)
	}
}

// SetQuiet drops everything below warnings.
func SetQuiet(quiet bool) {
	if quiet {
		level.SetLevel(zapcore.WarnLevel)
	} else {
		level.SetLevel(zapcore.InfoLevel)
	}
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	current().Warnf(format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	current().Infof(format, args...)
}

// Debug logs a debug message, shown only when verbose.
func Debug(format string, args ...any) {
	current().Debugf(format, args...)
}

func current() *zap.SugaredLogger {
	mu.Lock()
	defer mu.Unlock()
	return sugar
}
