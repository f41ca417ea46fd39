/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version reports how the tokensync binary was built.
//
// Release builds set the variables below via ldflags. Other builds fall
// back to the module version and VCS stamps the Go toolchain records.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Set at build time via ldflags.
var (
	Version   = "dev"
	GitCommit = ""
	GitTag    = ""
	BuildTime = ""
	GitDirty  = ""
)

// Build describes the running binary.
type Build struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	Tag       string `json:"tag,omitempty"`
	Time      string `json:"buildTime,omitempty"`
	Dirty     bool   `json:"dirty,omitempty"`
	GoVersion string `json:"goVersion,omitempty"`
}

// Read collects build information from ldflags, then from the embedded
// build info for whatever ldflags left empty.
func Read() Build {
	b := Build{
		Version: Version,
		Commit:  GitCommit,
		Tag:     GitTag,
		Time:    BuildTime,
		Dirty:   GitDirty == "dirty",
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return b.resolve("")
	}
	b.GoVersion = info.GoVersion
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if b.Commit == "" {
				b.Commit = s.Value
			}
		case "vcs.time":
			if b.Time == "" {
				b.Time = s.Value
			}
		case "vcs.modified":
			if GitDirty == "" {
				b.Dirty = s.Value == "true"
			}
		}
	}
	return b.resolve(info.Main.Version)
}

// resolve settles the version string. An explicit version wins, then the
// module version, then the tag with a short commit suffix.
func (b Build) resolve(module string) Build {
	switch {
	case b.Version != "dev":
	case module != "" && module != "(devel)":
		b.Version = module
	case b.Tag != "":
		b.Version = b.Tag
		if short := b.ShortCommit(); short != "" && !strings.HasSuffix(b.Tag, short) {
			b.Version += "-" + short
		}
		if b.Dirty {
			b.Version += "-dirty"
		}
	}
	return b
}

// ShortCommit returns the first seven characters of the commit.
func (b Build) ShortCommit() string {
	if len(b.Commit) > 7 {
		return b.Commit[:7]
	}
	return b.Commit
}

// String formats the build as "v1.2.0 (commit: 0123456)".
func (b Build) String() string {
	if b.Commit == "" {
		return b.Version
	}
	return fmt.Sprintf("%s (commit: %s)", b.Version, b.ShortCommit())
}

// Get returns the version string.
func Get() string {
	return Read().Version
}
