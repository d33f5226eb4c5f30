// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package fnahost

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultFPSMax      = 60
	DefaultWidth       = 800
	DefaultHeight      = 600
	DefaultContentRoot = "Content"
	DefaultTitle       = "FNA Control"

	multiSampleCount = 0
)

// Options for creating a Control. All fields are optional.
type Options struct {
	BaseDir     string `toml:"base_dir"`     // Directory containing SDL3 and FNA3D. Defaults to the executable's directory.
	Debug       bool   `toml:"debug"`        // Create the graphics device in debug mode.
	FPSMax      int    `toml:"fps_max"`      // Frame-rate cap. Default 60.
	Width       int    `toml:"width"`        // Size used when the host reports none. Default 800.
	Height      int    `toml:"height"`       // Default 600.
	Title       string `toml:"title"`        // Title of the native window before embedding.
	ContentRoot string `toml:"content_root"` // Root directory for content lookups. Default "Content".
	DesignMode  bool   `toml:"design_mode"`  // Skip all native initialization.

	Loop          *Loop         `toml:"-"` // UI-thread loop. A new one is created when nil.
	WindowSystem  WindowSystem  `toml:"-"` // Defaults to SDL3.
	WindowManager WindowManager `toml:"-"` // Defaults to Win32.
	DeviceFactory DeviceFactory `toml:"-"` // Defaults to FNA3D.
	ContentFS     fs.FS         `toml:"-"` // Defaults to the executable's directory.

	now func() time.Time
}

// DefaultOptions returns the options used for zero fields.
func DefaultOptions() Options {
	return Options{
		FPSMax:      DefaultFPSMax,
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Title:       DefaultTitle,
		ContentRoot: DefaultContentRoot,
	}
}

// LoadOptions reads options from a TOML file. A missing file yields the
// defaults.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return opts, nil
	}
	if err != nil {
		return opts, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parsing %s: %w", path, err)
	}
	return opts.withDefaults(), nil
}

func resolveOpts(opts *Options) Options {
	var o Options
	if opts != nil {
		o = *opts
	}
	o = o.withDefaults()
	if o.Loop == nil {
		o.Loop = NewLoop()
	}
	if o.WindowSystem == nil {
		o.WindowSystem = NewSDLWindowSystem(o.BaseDir)
	}
	if o.WindowManager == nil {
		o.WindowManager = NewWindowManager()
	}
	if o.DeviceFactory == nil {
		o.DeviceFactory = NewFNA3DFactory(o.BaseDir, o.Debug)
	}
	return o
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.FPSMax <= 0 {
		o.FPSMax = d.FPSMax
	}
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.Title == "" {
		o.Title = d.Title
	}
	if o.ContentRoot == "" {
		o.ContentRoot = d.ContentRoot
	}
	return o
}
