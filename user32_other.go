// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build !windows

package fnahost

type unsupportedManager struct{}

// NewWindowManager returns a manager whose operations all fail with
// ErrUnsupported: reparenting is only implemented for Win32 hosts.
func NewWindowManager() WindowManager {
	return unsupportedManager{}
}

func (unsupportedManager) WindowStyle(uintptr) (int32, error)             { return 0, ErrUnsupported }
func (unsupportedManager) SetWindowStyle(uintptr, int32) error            { return ErrUnsupported }
func (unsupportedManager) SetParent(uintptr, uintptr) error               { return ErrUnsupported }
func (unsupportedManager) SetWindowPos(uintptr, int, int, int, int) error { return ErrUnsupported }
func (unsupportedManager) SetFocus(uintptr) error                         { return ErrUnsupported }
