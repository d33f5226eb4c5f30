// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package fnahost

import (
	"context"
	"runtime"
	"sync/atomic"
)

const loopQueueSize = 64

type funcRun struct {
	f    func()
	done chan struct{}
}

func (fr funcRun) run() {
	fr.f()
	if fr.done != nil {
		close(fr.done)
	}
}

// Loop is the work queue of the UI thread. Windowing, input and graphics calls
// are only made from functions the loop runs. Other goroutines hand work over
// with Post or RunOnMain.
//
// A host either gives the loop a thread of its own with Run, or, when it
// already runs a message loop, calls Attach once on its UI thread and Pump from
// that loop.
type Loop struct {
	queue    chan funcRun
	attached atomic.Bool
	owner    atomic.Uint64
}

func NewLoop() *Loop {
	return &Loop{queue: make(chan funcRun, loopQueueSize)}
}

// Attach binds the loop to the calling goroutine and locks it to its OS thread.
// Detach must be called from the same goroutine.
func (l *Loop) Attach() error {
	if !l.attached.CompareAndSwap(false, true) {
		return ErrLoopRunning
	}
	runtime.LockOSThread()
	id, _ := currentThreadID()
	l.owner.Store(id)
	return nil
}

func (l *Loop) Detach() {
	if !l.attached.CompareAndSwap(true, false) {
		return
	}
	l.owner.Store(0)
	runtime.UnlockOSThread()
}

// Run attaches the loop and executes queued work until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	if err := l.Attach(); err != nil {
		return err
	}
	defer l.Detach()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fr := <-l.queue:
			fr.run()
		}
	}
}

// Pump runs every queued function without blocking and returns how many ran.
// Work queued while pumping runs on the next call.
func (l *Loop) Pump() int {
	n := len(l.queue)
	for i := 0; i < n; i++ {
		select {
		case fr := <-l.queue:
			fr.run()
		default:
			return i
		}
	}
	return n
}

// Post queues f without blocking. It reports false when the queue is full.
func (l *Loop) Post(f func()) bool {
	select {
	case l.queue <- funcRun{f: f}:
		return true
	default:
		return false
	}
}

// RunOnMain runs f on the loop and waits for it. It runs f directly when
// called from the loop itself or when no thread is attached.
func (l *Loop) RunOnMain(f func()) {
	if !l.attached.Load() || l.OnOwnerThread() {
		f()
		return
	}
	done := make(chan struct{})
	l.queue <- funcRun{f: f, done: done}
	<-done
}

// OnOwnerThread reports whether the caller runs on the attached thread.
func (l *Loop) OnOwnerThread() bool {
	id, ok := currentThreadID()
	return ok && l.attached.Load() && id == l.owner.Load()
}
