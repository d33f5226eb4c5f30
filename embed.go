// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package fnahost

import "fmt"

// Win32 style bits touched while embedding.
const (
	styleChild            int32 = 0x40000000
	styleOverlappedWindow int32 = 0x00CF0000
)

// WindowManager performs the host-side window surgery: style bits, reparenting,
// placement and focus. Handles are platform handles (HWND on Windows).
type WindowManager interface {
	WindowStyle(hwnd uintptr) (int32, error)
	SetWindowStyle(hwnd uintptr, style int32) error
	SetParent(child, parent uintptr) error
	SetWindowPos(hwnd uintptr, x, y, width, height int) error
	SetFocus(hwnd uintptr) error
}

// WindowHandle identifies the embedded native window. It is valid from window
// creation until destroy.
type WindowHandle struct {
	Native   uintptr // window system pointer (SDL_Window*)
	Platform uintptr // OS handle, zero until resolved
	Display  string
}

func (h WindowHandle) Valid() bool { return h.Native != 0 }

// embedder owns the native window: creation, reparenting into the host,
// geometry sync and teardown.
type embedder struct {
	ws WindowSystem
	wm WindowManager

	acquired bool
	win      WindowHandle
	width    int
	height   int
}

func newEmbedder(ws WindowSystem, wm WindowManager) *embedder {
	return &embedder{ws: ws, wm: wm}
}

// create makes a hidden, focusable, input-capable window of at least 1x1.
func (e *embedder) create(title string, width, height int, extraFlags uint64) (WindowHandle, error) {
	if !e.acquired {
		if err := acquireSubsystem(e.ws); err != nil {
			return WindowHandle{}, fmt.Errorf("%w: %w", ErrWindowCreation, err)
		}
		e.acquired = true
	}
	w, h := max(1, width), max(1, height)
	native, err := e.ws.CreateWindow(title, w, h, WindowHidden|WindowInputFocus|WindowMouseFocus|extraFlags)
	if err != nil {
		return WindowHandle{}, fmt.Errorf("%w: %w", ErrWindowCreation, err)
	}
	e.ws.SetWindowFocusable(native, true)
	e.win = WindowHandle{
		Native:  native,
		Display: fmt.Sprintf(`\\.\DISPLAY%d`, e.ws.DisplayIndex(native)),
	}
	e.width, e.height = w, h
	Logger().Debug("native window created", "window", native, "width", w, "height", h)
	return e.win, nil
}

func (e *embedder) resolvePlatformHandle(win WindowHandle) (uintptr, error) {
	if !win.Valid() {
		return 0, fmt.Errorf("%w: window not created", ErrHandleResolution)
	}
	h, err := e.ws.PlatformHandle(win.Native)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrHandleResolution, err)
	}
	if win.Native == e.win.Native {
		e.win.Platform = h
	}
	return h, nil
}

// embed turns child into a child window of parent covering width x height.
// On failure the window stays hidden.
func (e *embedder) embed(child, parent uintptr, width, height int) error {
	e.ws.HideWindow(e.win.Native)

	style, err := e.wm.WindowStyle(child)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEmbed, err)
	}
	style = style&^styleOverlappedWindow | styleChild
	if err := e.wm.SetWindowStyle(child, style); err != nil {
		return fmt.Errorf("%w: %w", ErrEmbed, err)
	}
	if err := e.wm.SetParent(child, parent); err != nil {
		return fmt.Errorf("%w: %w", ErrEmbed, err)
	}
	if err := e.wm.SetWindowPos(child, 0, 0, width, height); err != nil {
		return fmt.Errorf("%w: %w", ErrEmbed, err)
	}

	e.ws.ShowWindow(e.win.Native)
	Logger().Debug("native window embedded", "child", child, "parent", parent)
	return nil
}

// syncSize resizes the native window, its platform geometry and the device
// backbuffer. Calling it with the current size does nothing.
func (e *embedder) syncSize(width, height int, dev GraphicsDevice) error {
	if !e.win.Valid() {
		return nil
	}
	w, h := max(1, width), max(1, height)
	if w == e.width && h == e.height {
		return nil
	}
	e.ws.SetWindowSize(e.win.Native, w, h)
	if e.win.Platform != 0 {
		if err := e.wm.SetWindowPos(e.win.Platform, 0, 0, w, h); err != nil {
			return err
		}
	}
	e.width, e.height = w, h
	if dev != nil && !dev.IsDisposed() {
		pp := dev.PresentationParameters()
		pp.BackBufferWidth, pp.BackBufferHeight = w, h
		if err := dev.Reset(pp); err != nil {
			return fmt.Errorf("backbuffer reset: %w", err)
		}
	}
	Logger().Debug("native window resized", "width", w, "height", h)
	return nil
}

// focus forwards keyboard focus to the embedded window.
func (e *embedder) focus() {
	if !e.win.Valid() {
		return
	}
	if e.win.Platform != 0 {
		if err := e.wm.SetFocus(e.win.Platform); err != nil {
			Logger().Warn("focus request failed", "err", err)
		}
	}
	e.ws.RaiseWindow(e.win.Native)
	e.ws.SetWindowFocusable(e.win.Native, true)
}

// destroy hides and destroys the window and releases the subsystem. Safe to
// call more than once.
func (e *embedder) destroy() {
	if e.win.Valid() {
		e.ws.HideWindow(e.win.Native)
		e.ws.DestroyWindow(e.win.Native)
		Logger().Debug("native window destroyed", "window", e.win.Native)
		e.win = WindowHandle{}
	}
	if e.acquired {
		releaseSubsystem(e.ws)
		e.acquired = false
	}
}
