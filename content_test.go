// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package fnahost

import (
	"io"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentManagerReadFile(t *testing.T) {
	fsys := fstest.MapFS{
		"Content/levels/one.txt": {Data: []byte("level one")},
		"Content/font.xnb":       {Data: []byte{1, 2, 3}},
	}
	cm := newContentManager(NewServiceContainer(), DefaultContentRoot, fsys)

	data, err := cm.ReadFile("levels/one.txt")
	require.NoError(t, err)
	assert.Equal(t, "level one", string(data))

	data, err = cm.ReadFile(`levels\one.txt`)
	require.NoError(t, err)
	assert.Equal(t, "level one", string(data))

	f, err := cm.Open("font.xnb")
	require.NoError(t, err)
	defer f.Close()
	raw, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, raw)

	_, err = cm.ReadFile("missing.xnb")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestContentManagerStaysUnderRoot(t *testing.T) {
	fsys := fstest.MapFS{
		"Secrets/key.txt":    {Data: []byte("secret")},
		"ContentExtra/a.txt": {Data: []byte("sibling")},
		"Content/b.txt":      {Data: []byte("b")},
	}
	cm := newContentManager(NewServiceContainer(), DefaultContentRoot, fsys)

	for _, name := range []string{
		"../../secret",
		"../Secrets/key.txt",
		`..\Secrets\key.txt`,
		"sub/../../Secrets/key.txt",
		"../ContentExtra/a.txt",
	} {
		_, err := cm.ReadFile(name)
		assert.ErrorIs(t, err, fs.ErrInvalid, name)
	}

	data, err := cm.ReadFile("sub/../b.txt")
	require.NoError(t, err)
	assert.Equal(t, "b", string(data))

	// An empty root exposes the whole filesystem.
	cm.RootDirectory = ""
	data, err = cm.ReadFile("Secrets/key.txt")
	require.NoError(t, err)
	assert.Equal(t, "secret", string(data))
}

func TestContentManagerRootChange(t *testing.T) {
	fsys := fstest.MapFS{"Assets/a.txt": {Data: []byte("a")}}
	cm := newContentManager(NewServiceContainer(), DefaultContentRoot, fsys)
	cm.RootDirectory = `\Assets\`

	data, err := cm.ReadFile("a.txt")
	require.NoError(t, err)
	assert.Equal(t, "a", string(data))
}

func TestServiceContainer(t *testing.T) {
	sc := NewServiceContainer()
	_, ok := GetService[*GraphicsDeviceService](sc)
	assert.False(t, ok)

	dev := &fakeDevice{}
	AddService(sc, &GraphicsDeviceService{device: dev})
	svc, ok := GetService[*GraphicsDeviceService](sc)
	require.True(t, ok)
	assert.Same(t, dev, svc.GraphicsDevice())

	// Interface-typed registrations are looked up by the interface.
	AddService[GraphicsDevice](sc, dev)
	got, ok := GetService[GraphicsDevice](sc)
	require.True(t, ok)
	assert.Same(t, dev, got)
}
