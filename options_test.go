// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package fnahost

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOptionsMissingFile(t *testing.T) {
	opts, err := LoadOptions(filepath.Join(t.TempDir(), "none.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions(), opts)
}

func TestLoadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fnahost.toml")
	data := `
base_dir = "lib"
debug = true
fps_max = 144
width = 1024
content_root = "Assets"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	opts, err := LoadOptions(path)
	require.NoError(t, err)
	assert.Equal(t, "lib", opts.BaseDir)
	assert.True(t, opts.Debug)
	assert.Equal(t, 144, opts.FPSMax)
	assert.Equal(t, 1024, opts.Width)
	assert.Equal(t, DefaultHeight, opts.Height)
	assert.Equal(t, "Assets", opts.ContentRoot)
	assert.Equal(t, DefaultTitle, opts.Title)
	assert.False(t, opts.DesignMode)
}

func TestLoadOptionsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("fps_max = \"fast\""), 0o644))

	_, err := LoadOptions(path)
	assert.Error(t, err)
}

func TestResolveOptsDefaults(t *testing.T) {
	o := resolveOpts(nil)
	assert.Equal(t, DefaultFPSMax, o.FPSMax)
	assert.Equal(t, DefaultWidth, o.Width)
	assert.NotNil(t, o.Loop)
	assert.IsType(t, &SDLWindowSystem{}, o.WindowSystem)
	assert.IsType(t, &FNA3DFactory{}, o.DeviceFactory)
	assert.NotNil(t, o.WindowManager)

	loop := NewLoop()
	o = resolveOpts(&Options{FPSMax: -3, Loop: loop})
	assert.Equal(t, DefaultFPSMax, o.FPSMax)
	assert.Same(t, loop, o.Loop)
}
