// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package fnahost

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
)

// ServiceContainer holds one service per type.
type ServiceContainer struct {
	mu       sync.RWMutex
	services map[reflect.Type]any
}

func NewServiceContainer() *ServiceContainer {
	return &ServiceContainer{services: make(map[reflect.Type]any)}
}

// AddService registers svc under type T, replacing any previous one.
func AddService[T any](sc *ServiceContainer, svc T) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.services[reflect.TypeFor[T]()] = svc
}

// GetService returns the service registered under type T.
func GetService[T any](sc *ServiceContainer) (T, bool) {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	svc, ok := sc.services[reflect.TypeFor[T]()].(T)
	return svc, ok
}

// GraphicsDeviceService exposes the control's device to content consumers.
type GraphicsDeviceService struct {
	device GraphicsDevice
}

func (s *GraphicsDeviceService) GraphicsDevice() GraphicsDevice { return s.device }

// ContentManager resolves content files under RootDirectory of an fs.FS.
type ContentManager struct {
	RootDirectory string

	fsys     fs.FS
	services *ServiceContainer
}

func newContentManager(services *ServiceContainer, root string, fsys fs.FS) *ContentManager {
	if fsys == nil {
		dir := "."
		if exe, err := os.Executable(); err == nil {
			dir = filepath.Dir(exe)
		}
		fsys = os.DirFS(dir)
	}
	return &ContentManager{RootDirectory: root, fsys: fsys, services: services}
}

func (cm *ContentManager) Services() *ServiceContainer { return cm.services }

// Open opens name relative to RootDirectory. Backslashes are accepted as
// separators.
func (cm *ContentManager) Open(name string) (fs.File, error) {
	p, err := cm.resolve(name)
	if err != nil {
		return nil, err
	}
	return cm.fsys.Open(p)
}

func (cm *ContentManager) ReadFile(name string) ([]byte, error) {
	p, err := cm.resolve(name)
	if err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(cm.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("reading content %s: %w", name, err)
	}
	return data, nil
}

// resolve joins name onto RootDirectory and rejects results outside the root.
func (cm *ContentManager) resolve(name string) (string, error) {
	norm := func(s string) string {
		return strings.TrimLeft(strings.ReplaceAll(s, "\\", "/"), "/")
	}
	root := path.Clean(norm(cm.RootDirectory))
	p := path.Clean(path.Join(root, norm(name)))
	inside := root == "." || p == root || strings.HasPrefix(p, root+"/")
	if !inside || !fs.ValidPath(p) {
		return "", &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	return p, nil
}
