// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build linux || darwin

package fnahost

import (
	"runtime"

	"github.com/ebitengine/purego"
)

func openLibrary(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

func getSymbolAddr(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

func sdlLibName() string {
	if runtime.GOOS == "darwin" {
		return "libSDL3.dylib"
	}
	return "libSDL3.so.0"
}

func fna3dLibName() string {
	if runtime.GOOS == "darwin" {
		return "libFNA3D.dylib"
	}
	return "libFNA3D.so.0"
}
