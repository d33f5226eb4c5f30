// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package fnahost

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ebitengine/purego"
)

// SDL3 entry points. Bound once by loadSDL.
var (
	sdlInit                  func(flags uint32) bool
	sdlQuit                  func()
	sdlGetError              func() string
	sdlCreateWindow          func(title string, w, h int32, flags uint64) uintptr
	sdlDestroyWindow         func(win uintptr)
	sdlShowWindow            func(win uintptr) bool
	sdlHideWindow            func(win uintptr) bool
	sdlRaiseWindow           func(win uintptr) bool
	sdlSetWindowSize         func(win uintptr, w, h int32) bool
	sdlSetWindowFocusable    func(win uintptr, focusable bool) bool
	sdlGetWindowProperties   func(win uintptr) uint32
	sdlGetPointerProperty    func(props uint32, name string, def uintptr) uintptr
	sdlGetNumberProperty     func(props uint32, name string, def int64) int64
	sdlGetDisplayForWindow   func(win uintptr) uint32
	sdlPollEvent             func(event *sdlEvent) bool
	sdlGetCurrentVideoDriver func() string
	sdlShowCursor            func() bool
)

// FNA3D entry points. Bound once by loadFNA3D.
var (
	fna3dPrepareWindowAttributes func() uint32
	fna3dCreateDevice            func(params *fna3dPresentationParameters, debugMode uint8) uintptr
	fna3dDestroyDevice           func(device uintptr)
	fna3dSwapBuffers             func(device uintptr, src, dst *fna3dRect, overrideWindow uintptr)
	fna3dResetBackbuffer         func(device uintptr, params *fna3dPresentationParameters)
	fna3dClear                   func(device uintptr, options uint32, color *fna3dVec4, depth float32, stencil int32)
)

var (
	sdlOnce   sync.Once
	sdlErr    error
	fna3dOnce sync.Once
	fna3dErr  error
)

// loadSDL opens the SDL3 library from baseDir once per process.
func loadSDL(baseDir string) error {
	sdlOnce.Do(func() {
		sdlErr = bindLibrary(baseDir, sdlLibName(), []symbol{
			{&sdlInit, "SDL_Init"},
			{&sdlQuit, "SDL_Quit"},
			{&sdlGetError, "SDL_GetError"},
			{&sdlCreateWindow, "SDL_CreateWindow"},
			{&sdlDestroyWindow, "SDL_DestroyWindow"},
			{&sdlShowWindow, "SDL_ShowWindow"},
			{&sdlHideWindow, "SDL_HideWindow"},
			{&sdlRaiseWindow, "SDL_RaiseWindow"},
			{&sdlSetWindowSize, "SDL_SetWindowSize"},
			{&sdlSetWindowFocusable, "SDL_SetWindowFocusable"},
			{&sdlGetWindowProperties, "SDL_GetWindowProperties"},
			{&sdlGetPointerProperty, "SDL_GetPointerProperty"},
			{&sdlGetNumberProperty, "SDL_GetNumberProperty"},
			{&sdlGetDisplayForWindow, "SDL_GetDisplayForWindow"},
			{&sdlPollEvent, "SDL_PollEvent"},
			{&sdlGetCurrentVideoDriver, "SDL_GetCurrentVideoDriver"},
			{&sdlShowCursor, "SDL_ShowCursor"},
		})
	})
	return sdlErr
}

// loadFNA3D opens the FNA3D library from baseDir once per process.
func loadFNA3D(baseDir string) error {
	fna3dOnce.Do(func() {
		fna3dErr = bindLibrary(baseDir, fna3dLibName(), []symbol{
			{&fna3dPrepareWindowAttributes, "FNA3D_PrepareWindowAttributes"},
			{&fna3dCreateDevice, "FNA3D_CreateDevice"},
			{&fna3dDestroyDevice, "FNA3D_DestroyDevice"},
			{&fna3dSwapBuffers, "FNA3D_SwapBuffers"},
			{&fna3dResetBackbuffer, "FNA3D_ResetBackbuffer"},
			{&fna3dClear, "FNA3D_Clear"},
		})
	})
	return fna3dErr
}

type symbol struct {
	fptr any
	name string
}

func bindLibrary(baseDir, lib string, syms []symbol) error {
	handle, err := openLibrary(libraryPath(baseDir, lib))
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrLibraryLoad, lib, err)
	}
	for _, s := range syms {
		addr, err := getSymbolAddr(handle, s.name)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrLibraryLoad, s.name, err)
		}
		purego.RegisterFunc(s.fptr, addr)
	}
	Logger().Debug("native library bound", "lib", lib, "symbols", len(syms))
	return nil
}

// libraryPath prefers baseDir, then the executable's directory, and finally the
// bare name so the system loader search path applies.
func libraryPath(baseDir, lib string) string {
	var dirs []string
	if baseDir != "" {
		dirs = append(dirs, baseDir)
	}
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}
	for _, dir := range dirs {
		p := filepath.Join(dir, lib)
		if _, err := os.Stat(p); err == nil {
			if abs, err := filepath.Abs(p); err == nil {
				return abs
			}
			return p
		}
	}
	return lib
}

// subsystem reference-counts Init/Quit of one windowing library. The first
// acquire initializes it, the last release shuts it down and drops the entry.
type subsystem struct {
	ws   WindowSystem
	refs int
}

// subsystemKeyer is implemented by window systems whose instances share one
// process-wide subsystem.
type subsystemKeyer interface {
	subsystemKey() any
}

var (
	subsystemsMu sync.Mutex
	subsystems   = map[any]*subsystem{}
)

func subsystemKey(ws WindowSystem) any {
	if k, ok := ws.(subsystemKeyer); ok {
		return k.subsystemKey()
	}
	return ws
}

func acquireSubsystem(ws WindowSystem) error {
	subsystemsMu.Lock()
	defer subsystemsMu.Unlock()
	key := subsystemKey(ws)
	s, ok := subsystems[key]
	if !ok {
		if err := ws.Init(); err != nil {
			return err
		}
		s = &subsystem{ws: ws}
		subsystems[key] = s
		Logger().Debug("windowing subsystem initialized")
	}
	s.refs++
	return nil
}

func releaseSubsystem(ws WindowSystem) {
	subsystemsMu.Lock()
	defer subsystemsMu.Unlock()
	key := subsystemKey(ws)
	s, ok := subsystems[key]
	if !ok {
		return
	}
	s.refs--
	if s.refs == 0 {
		s.ws.Quit()
		delete(subsystems, key)
		Logger().Debug("windowing subsystem shut down")
	}
}

// subsystemRefs returns the live reference count shared by ws.
func subsystemRefs(ws WindowSystem) int {
	subsystemsMu.Lock()
	defer subsystemsMu.Unlock()
	if s, ok := subsystems[subsystemKey(ws)]; ok {
		return s.refs
	}
	return 0
}
