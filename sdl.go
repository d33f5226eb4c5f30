// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package fnahost

import (
	"encoding/binary"
	"fmt"
	"math"
	"runtime"
)

// Window flags understood by WindowSystem.CreateWindow (SDL3 values).
const (
	WindowHidden     uint64 = 0x00000008
	WindowInputFocus uint64 = 0x00000200
	WindowMouseFocus uint64 = 0x00000400
)

// WindowSystem is the native windowing library whose window gets embedded.
// Windows are identified by the library's own window pointer. Every method
// except Init and Quit must be called on the UI thread.
type WindowSystem interface {
	Init() error
	Quit()
	CreateWindow(title string, width, height int, flags uint64) (uintptr, error)
	DestroyWindow(win uintptr)
	ShowWindow(win uintptr)
	HideWindow(win uintptr)
	RaiseWindow(win uintptr)
	SetWindowFocusable(win uintptr, focusable bool)
	SetWindowSize(win uintptr, width, height int)
	// PlatformHandle returns the OS handle (an HWND on Windows) of win.
	PlatformHandle(win uintptr) (uintptr, error)
	DisplayIndex(win uintptr) uint32
	// PollEvent returns the next pending event without blocking. Events the
	// control does not consume come back with Kind EventNone.
	PollEvent() (InputEvent, bool)
	VideoDriver() string
	ShowCursor()
}

const sdlInitVideo = 0x00000020

// SDL3 event types.
const (
	sdlEventKeyDown    = 0x300
	sdlEventKeyUp      = 0x301
	sdlEventMouseMove  = 0x400
	sdlEventButtonDown = 0x401
	sdlEventButtonUp   = 0x402
)

// sdlEvent mirrors the 128-byte SDL_Event union.
type sdlEvent [128]byte

func (e *sdlEvent) u32(off int) uint32 { return binary.LittleEndian.Uint32(e[off:]) }
func (e *sdlEvent) f32(off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(e[off:]))
}

// decode extracts the fields the control consumes. Offsets follow SDL3's
// SDL_KeyboardEvent, SDL_MouseMotionEvent and SDL_MouseButtonEvent layouts.
func (e *sdlEvent) decode() InputEvent {
	switch e.u32(0) {
	case sdlEventKeyDown:
		return InputEvent{Kind: EventKeyDown, Code: e.u32(28)}
	case sdlEventKeyUp:
		return InputEvent{Kind: EventKeyUp, Code: e.u32(28)}
	case sdlEventMouseMove:
		return InputEvent{Kind: EventMotion, X: int(e.f32(28)), Y: int(e.f32(32))}
	case sdlEventButtonDown:
		return InputEvent{Kind: EventButtonDown, Code: uint32(e[24])}
	case sdlEventButtonUp:
		return InputEvent{Kind: EventButtonUp, Code: uint32(e[24])}
	}
	return InputEvent{}
}

// SDLWindowSystem is the SDL3 WindowSystem, bound at runtime with purego.
type SDLWindowSystem struct {
	baseDir string
}

// NewSDLWindowSystem returns an SDL3 window system that loads the library from
// baseDir on first Init.
func NewSDLWindowSystem(baseDir string) *SDLWindowSystem {
	return &SDLWindowSystem{baseDir: baseDir}
}

// sdlSubsystem keys the single SDL video subsystem of the process.
type sdlSubsystem struct{}

// subsystemKey makes every SDLWindowSystem share one Init/Quit count: SDL state
// is process-wide whatever baseDir each instance was created with.
func (s *SDLWindowSystem) subsystemKey() any { return sdlSubsystem{} }

func (s *SDLWindowSystem) Init() error {
	if err := loadSDL(s.baseDir); err != nil {
		return err
	}
	if !sdlInit(sdlInitVideo) {
		return fmt.Errorf("SDL_Init failed: %s", sdlGetError())
	}
	return nil
}

func (s *SDLWindowSystem) Quit() { sdlQuit() }

func (s *SDLWindowSystem) CreateWindow(title string, width, height int, flags uint64) (uintptr, error) {
	win := sdlCreateWindow(title, int32(width), int32(height), flags)
	if win == 0 {
		return 0, fmt.Errorf("SDL_CreateWindow failed: %s", sdlGetError())
	}
	return win, nil
}

func (s *SDLWindowSystem) DestroyWindow(win uintptr) { sdlDestroyWindow(win) }
func (s *SDLWindowSystem) ShowWindow(win uintptr)    { sdlShowWindow(win) }
func (s *SDLWindowSystem) HideWindow(win uintptr)    { sdlHideWindow(win) }
func (s *SDLWindowSystem) RaiseWindow(win uintptr)   { sdlRaiseWindow(win) }

func (s *SDLWindowSystem) SetWindowFocusable(win uintptr, focusable bool) {
	sdlSetWindowFocusable(win, focusable)
}

func (s *SDLWindowSystem) SetWindowSize(win uintptr, width, height int) {
	sdlSetWindowSize(win, int32(width), int32(height))
}

func (s *SDLWindowSystem) PlatformHandle(win uintptr) (uintptr, error) {
	props := sdlGetWindowProperties(win)
	var h uintptr
	switch runtime.GOOS {
	case "windows":
		h = sdlGetPointerProperty(props, "SDL.window.win32.hwnd", 0)
	case "darwin":
		h = sdlGetPointerProperty(props, "SDL.window.cocoa.window", 0)
	default:
		h = uintptr(sdlGetNumberProperty(props, "SDL.window.x11.window", 0))
	}
	if h == 0 {
		return 0, fmt.Errorf("SDL_GetWindowProperties: no platform handle for window %#x", win)
	}
	return h, nil
}

func (s *SDLWindowSystem) DisplayIndex(win uintptr) uint32 { return sdlGetDisplayForWindow(win) }

func (s *SDLWindowSystem) PollEvent() (InputEvent, bool) {
	var ev sdlEvent
	if !sdlPollEvent(&ev) {
		return InputEvent{}, false
	}
	return ev.decode(), true
}

func (s *SDLWindowSystem) VideoDriver() string { return sdlGetCurrentVideoDriver() }
func (s *SDLWindowSystem) ShowCursor()         { sdlShowCursor() }
