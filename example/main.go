// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build windows

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
	"unsafe"

	"github.com/YindSoft/fnahost"
	"golang.org/x/sys/windows"
)

const (
	wmDestroy = 0x0002
	wmSize    = 0x0005
	wmClose   = 0x0010
	wmQuit    = 0x0012

	pmRemove = 0x0001

	wsOverlappedWindow = 0x00CF0000
	wsClipChildren     = 0x02000000
	wsVisible          = 0x10000000
	cwUseDefault       = 0x80000000
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procRegisterClassEx  = user32.NewProc("RegisterClassExW")
	procCreateWindowEx   = user32.NewProc("CreateWindowExW")
	procDefWindowProc    = user32.NewProc("DefWindowProcW")
	procDestroyWindow    = user32.NewProc("DestroyWindow")
	procGetClientRect    = user32.NewProc("GetClientRect")
	procPeekMessage      = user32.NewProc("PeekMessageW")
	procTranslateMessage = user32.NewProc("TranslateMessage")
	procDispatchMessage  = user32.NewProc("DispatchMessageW")
	procPostQuitMessage  = user32.NewProc("PostQuitMessage")
	procGetModuleHandle  = kernel32.NewProc("GetModuleHandleW")
)

type wndClassEx struct {
	cbSize        uint32
	style         uint32
	lpfnWndProc   uintptr
	cbClsExtra    int32
	cbWndExtra    int32
	hInstance     windows.Handle
	hIcon         windows.Handle
	hCursor       windows.Handle
	hbrBackground windows.Handle
	lpszMenuName  *uint16
	lpszClassName *uint16
	hIconSm       windows.Handle
}

type point struct{ x, y int32 }

type msg struct {
	hwnd     windows.HWND
	message  uint32
	wParam   uintptr
	lParam   uintptr
	time     uint32
	pt       point
	lPrivate uint32
}

type rect struct{ left, top, right, bottom int32 }

// form is a plain top-level Win32 window acting as the host widget.
type form struct {
	hwnd     uintptr
	onResize func(width, height int)
}

func (f *form) Handle() uintptr { return f.hwnd }

func (f *form) Size() (int, int) {
	var r rect
	procGetClientRect.Call(f.hwnd, uintptr(unsafe.Pointer(&r)))
	return int(r.right - r.left), int(r.bottom - r.top)
}

func (f *form) OnResize(fn func(width, height int)) { f.onResize = fn }

// The window procedure has no user pointer; one form per process is enough here.
var mainForm = &form{}

func wndProc(hwnd, message, wParam, lParam uintptr) uintptr {
	switch message {
	case wmSize:
		if mainForm.onResize != nil {
			mainForm.onResize(int(lParam&0xFFFF), int(lParam>>16&0xFFFF))
		}
		return 0
	case wmClose:
		procDestroyWindow.Call(hwnd)
		return 0
	case wmDestroy:
		procPostQuitMessage.Call(0)
		return 0
	}
	ret, _, _ := procDefWindowProc.Call(hwnd, message, wParam, lParam)
	return ret
}

func createForm(title string, width, height int) (uintptr, error) {
	className, _ := windows.UTF16PtrFromString("FNAHostForm")
	titlePtr, _ := windows.UTF16PtrFromString(title)
	instance, _, _ := procGetModuleHandle.Call(0)

	wc := wndClassEx{
		cbSize:        uint32(unsafe.Sizeof(wndClassEx{})),
		lpfnWndProc:   windows.NewCallback(wndProc),
		hInstance:     windows.Handle(instance),
		lpszClassName: className,
	}
	if r, _, err := procRegisterClassEx.Call(uintptr(unsafe.Pointer(&wc))); r == 0 {
		return 0, fmt.Errorf("RegisterClassExW: %w", err)
	}

	hwnd, _, err := procCreateWindowEx.Call(
		0,
		uintptr(unsafe.Pointer(className)),
		uintptr(unsafe.Pointer(titlePtr)),
		wsOverlappedWindow|wsClipChildren|wsVisible,
		cwUseDefault, cwUseDefault,
		uintptr(width), uintptr(height),
		0, 0, instance, 0,
	)
	if hwnd == 0 {
		return 0, fmt.Errorf("CreateWindowExW: %w", err)
	}
	return hwnd, nil
}

// pumpMessages drains the Win32 queue and reports false once WM_QUIT arrives.
func pumpMessages() bool {
	var m msg
	for {
		r, _, _ := procPeekMessage.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0, pmRemove)
		if r == 0 {
			return true
		}
		if m.message == wmQuit {
			return false
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		procDispatchMessage.Call(uintptr(unsafe.Pointer(&m)))
	}
}

// demo tints the clear colour with WASD.
type demo struct {
	color fnahost.Color
	since float32
}

func (d *demo) update(c *fnahost.Control, elapsed float32) {
	in := c.InputState()
	step := func(v uint8, up, down fnahost.Key) uint8 {
		switch {
		case in.IsKeyDown(up) && v < 255:
			return v + 1
		case in.IsKeyDown(down) && v > 0:
			return v - 1
		}
		return v
	}
	d.color.R = step(d.color.R, fnahost.KeyW, fnahost.KeyS)
	d.color.G = step(d.color.G, fnahost.KeyD, fnahost.KeyA)

	d.since += elapsed
	if d.since >= 1 {
		d.since = 0
		slog.Info("frame", "fps", c.FPS(), "driver", c.VideoDriverName(), "color", d.color)
	}
}

func (d *demo) draw(c *fnahost.Control) {
	c.GraphicsDevice().Clear(d.color)
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)
	fnahost.SetLogger(logger)

	exe, _ := os.Executable()
	opts, err := fnahost.LoadOptions(filepath.Join(filepath.Dir(exe), "fnahost.toml"))
	if err != nil {
		slog.Error("options", "err", err)
		os.Exit(1)
	}

	loop := fnahost.NewLoop()
	if err := loop.Attach(); err != nil {
		slog.Error("attach", "err", err)
		os.Exit(1)
	}
	defer loop.Detach()

	hwnd, err := createForm("fnahost demo", opts.Width, opts.Height)
	if err != nil {
		slog.Error("host window", "err", err)
		os.Exit(1)
	}
	mainForm.hwnd = hwnd

	d := &demo{color: fnahost.CornflowerBlue}
	opts.Loop = loop
	ctrl, err := fnahost.NewControl(mainForm, fnahost.Client{
		Update: d.update,
		Draw:   d.draw,
	}, &opts)
	if err != nil {
		slog.Error("control", "err", err)
		os.Exit(1)
	}
	defer ctrl.Dispose()

	if err := ctrl.HandleCreated(); err != nil {
		slog.Error("startup", "err", err)
		return
	}

	for pumpMessages() {
		if loop.Pump() == 0 {
			time.Sleep(time.Millisecond)
		}
	}
}
