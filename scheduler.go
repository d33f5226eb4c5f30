// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package fnahost

import (
	"math"
	"sync"
	"sync/atomic"
	"time"
)

// frameInterval is the timer period for a frame-rate cap, at least 1ms.
func frameInterval(fpsMax int) time.Duration {
	if fpsMax <= 0 {
		fpsMax = DefaultFPSMax
	}
	return time.Duration(max(1, 1000/fpsMax)) * time.Millisecond
}

// frameClock measures wall time between ticks in whole milliseconds.
type frameClock struct {
	now   func() time.Time
	start time.Time
	last  int64
}

func newFrameClock(now func() time.Time) *frameClock {
	if now == nil {
		now = time.Now
	}
	return &frameClock{now: now, start: now()}
}

// advance returns the seconds elapsed since the previous call.
func (c *frameClock) advance() float32 {
	cur := c.now().Sub(c.start).Milliseconds()
	elapsed := float32(cur-c.last) / 1000
	c.last = cur
	return elapsed
}

// scheduler drives ticks at a bounded rate. The timer runs on its own
// goroutine and only posts tick requests to the loop; at most one request is
// queued at a time. Every start and stop bumps the generation, and a tick
// carrying an older generation does nothing.
type scheduler struct {
	loop *Loop
	run  func(gen uint64)
	now  func() time.Time

	mu       sync.Mutex
	running  bool
	interval time.Duration
	quit     chan struct{}
	done     chan struct{}

	gen     atomic.Uint64
	pending atomic.Bool

	// clock and fps are only touched on the UI thread, fps is read anywhere.
	clock *frameClock
	fps   atomic.Uint32
}

func newScheduler(loop *Loop, run func(gen uint64)) *scheduler {
	return &scheduler{loop: loop, run: run}
}

// start launches the timer. It reports false when already running.
func (s *scheduler) start(fpsMax int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return false
	}
	s.running = true
	s.interval = frameInterval(fpsMax)
	gen := s.gen.Add(1)
	s.quit = make(chan struct{})
	s.done = make(chan struct{})
	go s.timer(gen, s.interval, s.quit, s.done)
	Logger().Debug("scheduler started", "interval", s.interval, "generation", gen)
	return true
}

func (s *scheduler) timer(gen uint64, interval time.Duration, quit, done chan struct{}) {
	defer close(done)
	t := time.NewTicker(interval)
	defer t.Stop()
	s.request(gen)
	for {
		select {
		case <-quit:
			return
		case <-t.C:
			s.request(gen)
		}
	}
}

// request posts a tick unless one is already queued.
func (s *scheduler) request(gen uint64) {
	if !s.pending.CompareAndSwap(false, true) {
		return
	}
	posted := s.loop.Post(func() {
		s.pending.Store(false)
		s.run(gen)
	})
	if !posted {
		s.pending.Store(false)
	}
}

// stop cancels the timer and waits for its goroutine to exit. Ticks already
// queued become stale. Safe to call from any goroutine, any number of times.
func (s *scheduler) stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.gen.Add(1)
	quit, done := s.quit, s.done
	s.quit, s.done = nil, nil
	s.mu.Unlock()

	close(quit)
	<-done
	Logger().Debug("scheduler stopped")
}

func (s *scheduler) isRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *scheduler) currentInterval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interval
}

// current reports whether gen belongs to the live timer.
func (s *scheduler) current(gen uint64) bool {
	return s.isRunning() && gen == s.gen.Load()
}

func (s *scheduler) resetClock() {
	s.clock = newFrameClock(s.now)
}

func (s *scheduler) clearClock() {
	s.clock = nil
}

// advance measures the frame time and records the frame rate.
func (s *scheduler) advance() float32 {
	if s.clock == nil {
		return 0
	}
	elapsed := s.clock.advance()
	if elapsed > 0 {
		s.fps.Store(math.Float32bits(1 / elapsed))
	}
	return elapsed
}

func (s *scheduler) framesPerSecond() float32 {
	return math.Float32frombits(s.fps.Load())
}
