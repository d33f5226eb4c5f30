// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package fnahost

import "errors"

var (
	// ErrWindowCreation is returned when the windowing subsystem cannot be
	// initialized or the native window cannot be created.
	ErrWindowCreation = errors.New("fnahost: window creation failed")

	// ErrHandleResolution is returned when the platform handle of the native
	// window is unavailable.
	ErrHandleResolution = errors.New("fnahost: platform handle unavailable")

	// ErrEmbed is returned when reparenting the native window into the host fails.
	// The native window is left hidden, not destroyed.
	ErrEmbed = errors.New("fnahost: embedding failed")

	// ErrInitialization wraps any failure of the startup sequence run by
	// Control.HandleCreated. The control stays partially initialized until Dispose.
	ErrInitialization = errors.New("fnahost: initialization failed")

	// ErrLibraryLoad is returned when SDL3 or FNA3D cannot be loaded.
	ErrLibraryLoad = errors.New("fnahost: native library load failed")

	// ErrUnsupported is returned by operations that have no implementation on
	// the current platform.
	ErrUnsupported = errors.New("fnahost: unsupported on this platform")

	// ErrLoopRunning is returned when a Loop is attached twice.
	ErrLoopRunning = errors.New("fnahost: loop already attached")

	// ErrDisposed is returned by operations on a disposed control.
	ErrDisposed = errors.New("fnahost: control disposed")
)
