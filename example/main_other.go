// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build !windows

package main

import (
	"log/slog"
	"os"
)

func main() {
	slog.Error("the embedding demo needs a Win32 host window")
	os.Exit(1)
}
