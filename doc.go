// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

// Package fnahost embeds an SDL3 window rendered by FNA3D inside a widget owned by
// a separate host GUI toolkit, and drives a fixed-rate update/draw loop against it.
//
// The host supplies its widget through the [Host] interface and forwards two
// notifications: [Control.HandleCreated] once its native handle exists, and
// [Control.Resize] whenever the widget changes size. Everything else is driven
// by the control itself.
//
// Basic usage:
//
//	import "github.com/YindSoft/fnahost"
//
//	loop := fnahost.NewLoop()
//	ctrl, err := fnahost.NewControl(host, fnahost.Client{
//	    Initialize: func(c *fnahost.Control) error { return nil },
//	    Update: func(c *fnahost.Control, elapsed float32) {
//	        in := c.InputState()
//	        if in.IsKeyDown(fnahost.KeyW) { ... }
//	    },
//	    Draw: func(c *fnahost.Control) {
//	        c.GraphicsDevice().Clear(fnahost.CornflowerBlue)
//	    },
//	}, &fnahost.Options{Loop: loop})
//	if err != nil { ... }
//	defer ctrl.Dispose()
//
//	// On the host's UI thread, after the widget handle exists:
//	if err := ctrl.HandleCreated(); err != nil { ... }
//	loop.Run(ctx) // or loop.Attach() + loop.Pump() from the host's own message loop
//
// Threading:
//
// All windowing, input draining and graphics calls run on the thread that runs
// the [Loop]. The frame timer lives on its own goroutine and only posts tick
// requests to the loop; at most one request is pending at a time, so a slow frame
// coalesces backlogged ticks instead of queueing them.
//
// Requirements: the SDL3 and FNA3D shared libraries (SDL3.dll and FNA3D.dll on
// Windows, libSDL3.so.0 and libFNA3D.so.0 on Linux) must be present next to the
// executable or in the directory specified by [Options.BaseDir]. Embedding into a
// host handle is implemented for Win32 only.
package fnahost
