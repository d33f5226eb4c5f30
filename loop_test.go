// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package fnahost

import (
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopPostPump(t *testing.T) {
	l := NewLoop()
	var order []int
	for i := range 3 {
		require.True(t, l.Post(func() { order = append(order, i) }))
	}
	assert.Equal(t, 3, l.Pump())
	assert.Equal(t, []int{0, 1, 2}, order)
	assert.Equal(t, 0, l.Pump())
}

func TestLoopPumpDefersReposted(t *testing.T) {
	l := NewLoop()
	ran := 0
	l.Post(func() {
		ran++
		l.Post(func() { ran++ })
	})
	assert.Equal(t, 1, l.Pump())
	assert.Equal(t, 1, ran)
	assert.Equal(t, 1, l.Pump())
	assert.Equal(t, 2, ran)
}

func TestLoopPostFull(t *testing.T) {
	l := NewLoop()
	for range loopQueueSize {
		require.True(t, l.Post(func() {}))
	}
	assert.False(t, l.Post(func() {}))
	assert.Equal(t, loopQueueSize, l.Pump())
}

func TestLoopRunOnMainUnattached(t *testing.T) {
	l := NewLoop()
	ran := false
	l.RunOnMain(func() { ran = true })
	assert.True(t, ran)
}

func TestLoopRunOnMain(t *testing.T) {
	l := NewLoop()
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- l.Run(ctx) }()

	require.Eventually(t, l.attached.Load, time.Second, time.Millisecond)

	ran := false
	l.RunOnMain(func() { ran = true })
	assert.True(t, ran)

	cancel()
	select {
	case err := <-errc:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.False(t, l.attached.Load())
}

func TestLoopRunTwice(t *testing.T) {
	l := NewLoop()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go l.Run(ctx)
	require.Eventually(t, l.attached.Load, time.Second, time.Millisecond)

	assert.ErrorIs(t, l.Run(ctx), ErrLoopRunning)
}

func TestLoopOwnerThread(t *testing.T) {
	if runtime.GOOS != "linux" && runtime.GOOS != "windows" {
		t.Skip("thread identity not available on " + runtime.GOOS)
	}
	l := NewLoop()
	assert.False(t, l.OnOwnerThread())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go l.Run(ctx)
	require.Eventually(t, l.attached.Load, time.Second, time.Millisecond)

	var inside bool
	l.RunOnMain(func() { inside = l.OnOwnerThread() })
	assert.True(t, inside)
	assert.False(t, l.OnOwnerThread())

	// Nested RunOnMain from the loop thread must not deadlock.
	nested := false
	l.RunOnMain(func() {
		l.RunOnMain(func() { nested = true })
	})
	assert.True(t, nested)
}
