/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cli holds the plumbing shared by the sync commands.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokensync/cmd/render"
	"bennypowers.dev/tokensync/config"
	"bennypowers.dev/tokensync/fs"
	"bennypowers.dev/tokensync/syncer"
)

// Keys of the root persistent flags in viper.
const (
	KeyConfig     = "config"
	KeyStylesheet = "stylesheet"
	KeyQuiet      = "quiet"
	KeyVerbose    = "verbose"
	KeyDryRun     = "dry-run"
	KeyFormat     = "format"
)

// Overrides are per-command source paths. Empty fields keep the
// configured value.
type Overrides struct {
	Colors string
	Fonts  string
}

// LoadConfig reads the file named by --config, or searches the working
// directory. A missing config yields the defaults.
func LoadConfig(filesystem fs.FileSystem) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path := viper.GetString(KeyConfig); path != "" {
		cfg, err = config.LoadFile(filesystem, path)
	} else {
		cfg, err = config.Load(filesystem, ".")
	}
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return cfg.WithDefaults(), nil
}

// Options resolves sync options from config, flags and overrides.
func Options(filesystem fs.FileSystem, o Overrides) (syncer.Options, error) {
	cfg, err := LoadConfig(filesystem)
	if err != nil {
		return syncer.Options{}, err
	}
	if o.Colors != "" {
		cfg.Colors = o.Colors
	}
	if o.Fonts != "" {
		cfg.Fonts = o.Fonts
	}
	if path := viper.GetString(KeyStylesheet); path != "" {
		cfg.Stylesheet = path
	}
	opts := syncer.OptionsFromConfig(cfg)
	opts.DryRun = viper.GetBool(KeyDryRun)
	return opts, nil
}

// Sync runs one sync for a command and prints its summary.
func Sync(cmd *cobra.Command, mode syncer.Mode, o Overrides) error {
	format, err := render.ParseFormat(viper.GetString(KeyFormat))
	if err != nil {
		return err
	}

	filesystem := fs.NewOSFileSystem()
	opts, err := Options(filesystem, o)
	if err != nil {
		return err
	}
	opts.Out = cmd.OutOrStdout()

	report, err := syncer.New(filesystem, opts).Run(cmd.Context(), mode)
	if err != nil {
		return err
	}

	if viper.GetBool(KeyQuiet) {
		return nil
	}
	// The stylesheet owns stdout during a dry run.
	w := cmd.OutOrStdout()
	if opts.DryRun {
		w = cmd.ErrOrStderr()
	}
	return render.Write(w, report, render.Options{
		Format:   format,
		Swatches: format == render.FormatText && IsTerminal(w),
		DryRun:   opts.DryRun,
	})
}

// IsTerminal reports whether w is a character device.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
