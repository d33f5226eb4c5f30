// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build windows

package fnahost

import (
	"fmt"

	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procGetWindowLongW = user32.NewProc("GetWindowLongW")
	procSetWindowLongW = user32.NewProc("SetWindowLongW")
	procSetParent      = user32.NewProc("SetParent")
	procSetWindowPos   = user32.NewProc("SetWindowPos")
	procSetFocus       = user32.NewProc("SetFocus")
)

const (
	gwlStyle      int32 = -16
	swpShowWindow       = 0x0040
)

type user32Manager struct{}

// NewWindowManager returns the Win32 window manager.
func NewWindowManager() WindowManager {
	return user32Manager{}
}

func (user32Manager) WindowStyle(hwnd uintptr) (int32, error) {
	idx := gwlStyle
	r, _, err := procGetWindowLongW.Call(hwnd, uintptr(idx))
	if r == 0 && err != windows.ERROR_SUCCESS {
		return 0, fmt.Errorf("GetWindowLongW: %w", err)
	}
	return int32(r), nil
}

func (user32Manager) SetWindowStyle(hwnd uintptr, style int32) error {
	idx := gwlStyle
	r, _, err := procSetWindowLongW.Call(hwnd, uintptr(idx), uintptr(uint32(style)))
	if r == 0 && err != windows.ERROR_SUCCESS {
		return fmt.Errorf("SetWindowLongW: %w", err)
	}
	return nil
}

func (user32Manager) SetParent(child, parent uintptr) error {
	r, _, err := procSetParent.Call(child, parent)
	if r == 0 && err != windows.ERROR_SUCCESS {
		return fmt.Errorf("SetParent: %w", err)
	}
	return nil
}

func (user32Manager) SetWindowPos(hwnd uintptr, x, y, width, height int) error {
	r, _, err := procSetWindowPos.Call(hwnd, 0, uintptr(x), uintptr(y), uintptr(width), uintptr(height), swpShowWindow)
	if r == 0 {
		return fmt.Errorf("SetWindowPos: %w", err)
	}
	return nil
}

func (user32Manager) SetFocus(hwnd uintptr) error {
	r, _, err := procSetFocus.Call(hwnd)
	if r == 0 && err != windows.ERROR_SUCCESS {
		return fmt.Errorf("SetFocus: %w", err)
	}
	return nil
}
