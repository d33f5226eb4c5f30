// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package fnahost

import (
	"errors"
	"sync"
)

type fakeWindowSystem struct {
	mu sync.Mutex

	initErr   error
	createErr error
	handleErr error
	driver    string

	inits, quits    int
	created         []uintptr
	destroyed       []uintptr
	shown, hidden   int
	raised          int
	cursorShown     int
	lastFlags       uint64
	lastSize        [2]int
	sizes           [][2]int
	visible         map[uintptr]bool
	events          []InputEvent
	nextWindow      uintptr
	focusableCalls  int
	lastCreateTitle string
}

func newFakeWindowSystem() *fakeWindowSystem {
	return &fakeWindowSystem{driver: "windows", nextWindow: 0x1000, visible: map[uintptr]bool{}}
}

func (f *fakeWindowSystem) Init() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.initErr != nil {
		return f.initErr
	}
	f.inits++
	return nil
}

func (f *fakeWindowSystem) Quit() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.quits++
}

func (f *fakeWindowSystem) CreateWindow(title string, width, height int, flags uint64) (uintptr, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.nextWindow += 0x10
	f.created = append(f.created, f.nextWindow)
	f.lastFlags = flags
	f.lastSize = [2]int{width, height}
	f.lastCreateTitle = title
	return f.nextWindow, nil
}

func (f *fakeWindowSystem) DestroyWindow(win uintptr) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.destroyed = append(f.destroyed, win)
}

func (f *fakeWindowSystem) ShowWindow(win uintptr) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shown++
	f.visible[win] = true
}

func (f *fakeWindowSystem) HideWindow(win uintptr) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hidden++
	f.visible[win] = false
}

func (f *fakeWindowSystem) RaiseWindow(uintptr) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.raised++
}

func (f *fakeWindowSystem) SetWindowFocusable(uintptr, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.focusableCalls++
}

func (f *fakeWindowSystem) SetWindowSize(_ uintptr, width, height int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sizes = append(f.sizes, [2]int{width, height})
}

func (f *fakeWindowSystem) PlatformHandle(win uintptr) (uintptr, error) {
	if f.handleErr != nil {
		return 0, f.handleErr
	}
	return win + 1, nil
}

func (f *fakeWindowSystem) DisplayIndex(uintptr) uint32 { return 1 }

func (f *fakeWindowSystem) PollEvent() (InputEvent, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.events) == 0 {
		return InputEvent{}, false
	}
	ev := f.events[0]
	f.events = f.events[1:]
	return ev, true
}

func (f *fakeWindowSystem) push(evs ...InputEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, evs...)
}

func (f *fakeWindowSystem) VideoDriver() string { return f.driver }

func (f *fakeWindowSystem) ShowCursor() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cursorShown++
}

func (f *fakeWindowSystem) isVisible(win uintptr) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.visible[win]
}

func (f *fakeWindowSystem) counts() (inits, quits, destroyed int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inits, f.quits, len(f.destroyed)
}

type fakeWindowManager struct {
	mu sync.Mutex

	styles    map[uintptr]int32
	parents   map[uintptr]uintptr
	positions map[uintptr][4]int
	focused   []uintptr

	parentErr error
}

func newFakeWindowManager() *fakeWindowManager {
	return &fakeWindowManager{
		styles:    map[uintptr]int32{},
		parents:   map[uintptr]uintptr{},
		positions: map[uintptr][4]int{},
	}
}

func (m *fakeWindowManager) WindowStyle(hwnd uintptr) (int32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.styles[hwnd]; ok {
		return s, nil
	}
	// A fresh top-level window: WS_OVERLAPPEDWINDOW | WS_CLIPSIBLINGS.
	return styleOverlappedWindow | 0x04000000, nil
}

func (m *fakeWindowManager) SetWindowStyle(hwnd uintptr, style int32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.styles[hwnd] = style
	return nil
}

func (m *fakeWindowManager) SetParent(child, parent uintptr) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.parentErr != nil {
		return m.parentErr
	}
	m.parents[child] = parent
	return nil
}

func (m *fakeWindowManager) SetWindowPos(hwnd uintptr, x, y, width, height int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.positions[hwnd] = [4]int{x, y, width, height}
	return nil
}

func (m *fakeWindowManager) SetFocus(hwnd uintptr) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.focused = append(m.focused, hwnd)
	return nil
}

func (m *fakeWindowManager) focusCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.focused)
}

type fakeDevice struct {
	mu       sync.Mutex
	pp       PresentationParameters
	resets   []PresentationParameters
	presents int
	clears   []Color
	disposes int
	disposed bool
}

func (d *fakeDevice) PresentationParameters() PresentationParameters {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pp
}

func (d *fakeDevice) Reset(pp PresentationParameters) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.disposed {
		return ErrDisposed
	}
	d.pp = pp
	d.resets = append(d.resets, pp)
	return nil
}

func (d *fakeDevice) Present() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.presents++
}

func (d *fakeDevice) Clear(c Color) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clears = append(d.clears, c)
}

func (d *fakeDevice) Dispose() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.disposes++
	d.disposed = true
}

func (d *fakeDevice) IsDisposed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.disposed
}

func (d *fakeDevice) presentCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.presents
}

type fakeDeviceFactory struct {
	attrs     uint64
	createErr error
	created   []*fakeDevice
	adapter   Adapter
	profile   Profile
}

func (f *fakeDeviceFactory) PrepareWindowAttributes() (uint64, error) { return f.attrs, nil }

func (f *fakeDeviceFactory) CreateDevice(adapter Adapter, profile Profile, pp PresentationParameters) (GraphicsDevice, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.adapter, f.profile = adapter, profile
	d := &fakeDevice{pp: pp}
	f.created = append(f.created, d)
	return d, nil
}

type fakeHost struct {
	mu       sync.Mutex
	handle   uintptr
	w, h     int
	design   bool
	onResize func(width, height int)
}

func (h *fakeHost) Handle() uintptr { return h.handle }

func (h *fakeHost) Size() (int, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.w, h.h
}

func (h *fakeHost) SetSize(w, hh int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.w, h.h = w, hh
}

func (h *fakeHost) DesignMode() bool { return h.design }

func (h *fakeHost) OnResize(f func(width, height int)) { h.onResize = f }

var errFake = errors.New("fake failure")
