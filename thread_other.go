// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build !windows && !linux

package fnahost

// currentThreadID reports no id; Loop.OnOwnerThread is then always false and
// RunOnMain must not be called from the loop itself.
func currentThreadID() (uint64, bool) {
	return 0, false
}
