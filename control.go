// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package fnahost

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// RunState is the lifecycle position of a Control.
type RunState int32

const (
	StateUninitialized RunState = iota
	StateInitializing
	StateRunning
	StateStopped
	StateDisposed
)

func (s RunState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitializing:
		return "initializing"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	case StateDisposed:
		return "disposed"
	}
	return fmt.Sprintf("RunState(%d)", int32(s))
}

// Host is the widget of the host toolkit the native window is embedded into.
// A host may also implement DesignModeHost, ResizeNotifier and Sizer.
type Host interface {
	// Handle returns the widget's native handle (an HWND on Windows).
	Handle() uintptr
	Size() (width, height int)
}

// DesignModeHost is implemented by hosts that can run inside a visual designer.
type DesignModeHost interface {
	DesignMode() bool
}

// ResizeNotifier is implemented by hosts that deliver resize notifications
// themselves. The control registers its Resize with it on construction.
type ResizeNotifier interface {
	OnResize(func(width, height int))
}

// Sizer is implemented by hosts whose size the control may set when the host
// reports none.
type Sizer interface {
	SetSize(width, height int)
}

// Client holds the callbacks a control drives. Nil slots are skipped.
//
// Initialize runs once, after the graphics device and content exist. Update and
// Draw run once per tick on the UI thread, Draw always after Update. A panic in
// Update or Draw is not recovered and does not stop the control.
type Client struct {
	Initialize func(c *Control) error
	Update     func(c *Control, elapsed float32)
	Draw       func(c *Control)
}

// GameWindow is the embedded native window as seen by clients.
type GameWindow struct {
	handle WindowHandle
}

// Handle returns the window system pointer the graphics device is bound to.
func (w *GameWindow) Handle() uintptr { return w.handle.Native }

// PlatformHandle returns the OS handle of the window.
func (w *GameWindow) PlatformHandle() uintptr { return w.handle.Platform }

// ScreenDeviceName returns the display name, e.g. `\\.\DISPLAY1`.
func (w *GameWindow) ScreenDeviceName() string { return w.handle.Display }

// videoDrivers maps lowercase native driver names to display labels.
var videoDrivers = map[string]string{
	"windows":  "Direct3D 11",
	"direct3d": "Direct3D",
	"d3d11":    "Direct3D 11",
	"d3d12":    "Direct3D 12",
	"x11":      "OpenGL (X11)",
	"opengl":   "OpenGL",
	"vulkan":   "Vulkan",
}

// Control embeds a native rendering window in a host widget and drives the
// client's update and draw callbacks.
//
// HandleCreated, Resize, InputState and the getters for the device, window and
// content belong to the UI thread. StartRendering, StopRendering, Dispose and
// the state getters may be called from any goroutine.
type Control struct {
	host    Host
	client  Client
	opts    Options
	loop    *Loop
	ws      WindowSystem
	devices DeviceFactory
	emb     *embedder
	sched   *scheduler
	input   *Input

	mu         sync.Mutex
	state      RunState
	designMode bool
	width      int
	height     int

	initialized atomic.Bool

	// UI thread only.
	device  GraphicsDevice
	window  *GameWindow
	content *ContentManager
}

// NewControl creates a control for host. Nothing native happens until
// HandleCreated.
func NewControl(host Host, client Client, opts *Options) (*Control, error) {
	if host == nil {
		return nil, errors.New("fnahost: nil host")
	}
	o := resolveOpts(opts)
	c := &Control{
		host:    host,
		client:  client,
		opts:    o,
		loop:    o.Loop,
		ws:      o.WindowSystem,
		devices: o.DeviceFactory,
		emb:     newEmbedder(o.WindowSystem, o.WindowManager),
	}
	c.sched = newScheduler(o.Loop, c.tick)
	c.sched.now = o.now
	c.input = newInput(c.emb.focus)

	c.designMode = o.DesignMode
	if d, ok := host.(DesignModeHost); ok && d.DesignMode() {
		c.designMode = true
	}

	c.width, c.height = host.Size()
	if !c.designMode && (c.width <= 0 || c.height <= 0) {
		c.width, c.height = o.Width, o.Height
		if s, ok := host.(Sizer); ok {
			s.SetSize(c.width, c.height)
		}
	}

	if n, ok := host.(ResizeNotifier); ok {
		n.OnResize(func(width, height int) {
			if err := c.Resize(width, height); err != nil {
				Logger().Warn("resize failed", "width", width, "height", height, "err", err)
			}
		})
	}
	return c, nil
}

// HandleCreated runs the startup sequence: create the native window, embed it
// into the host, bind a graphics device, build the content context, call the
// client's Initialize and start rendering. It does nothing when already
// started or in design mode. A failure is wrapped in ErrInitialization and is
// not retried; Dispose cleans up whatever was created.
func (c *Control) HandleCreated() error {
	c.mu.Lock()
	switch {
	case c.state == StateDisposed:
		c.mu.Unlock()
		return ErrDisposed
	case c.state != StateUninitialized || c.designMode:
		c.mu.Unlock()
		return nil
	}
	c.state = StateInitializing
	width, height := c.width, c.height
	c.mu.Unlock()

	var err error
	c.loop.RunOnMain(func() {
		err = c.initialize(width, height)
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInitialization, err)
	}
	return nil
}

func (c *Control) initialize(width, height int) error {
	attrs, err := c.devices.PrepareWindowAttributes()
	if err != nil {
		return err
	}
	win, err := c.emb.create(c.opts.Title, width, height, attrs)
	if err != nil {
		return err
	}
	hwnd, err := c.emb.resolvePlatformHandle(win)
	if err != nil {
		return err
	}
	if err := c.emb.embed(hwnd, c.host.Handle(), width, height); err != nil {
		return err
	}
	win = c.emb.win
	c.window = &GameWindow{handle: win}

	dev, err := c.devices.CreateDevice(DefaultAdapter, ProfileHiDef, PresentationParameters{
		DeviceWindowHandle:   win.Native,
		BackBufferWidth:      max(1, width),
		BackBufferHeight:     max(1, height),
		IsFullScreen:         false,
		PresentationInterval: PresentImmediate,
		DepthStencilFormat:   Depth24Stencil8,
		MultiSampleCount:     multiSampleCount,
	})
	if err != nil {
		return fmt.Errorf("creating graphics device: %w", err)
	}
	c.device = dev

	services := NewServiceContainer()
	AddService(services, &GraphicsDeviceService{device: dev})
	c.content = newContentManager(services, c.opts.ContentRoot, c.opts.ContentFS)

	c.ws.SetWindowFocusable(win.Native, true)
	c.ws.ShowWindow(win.Native)
	c.ws.RaiseWindow(win.Native)
	c.ws.ShowCursor()

	c.sched.resetClock()
	c.initialized.Store(true)
	Logger().Info("control initialized", "width", width, "height", height, "display", win.Display)

	if c.client.Initialize != nil {
		if err := c.client.Initialize(c); err != nil {
			return fmt.Errorf("client initialize: %w", err)
		}
	}
	c.startRendering(StateInitializing)
	return nil
}

// tick is one frame on the UI thread: drain native events into the input
// state, measure elapsed time, then Update, Draw and Present.
func (c *Control) tick(gen uint64) {
	if !c.sched.current(gen) || !c.initialized.Load() || c.device == nil || c.device.IsDisposed() {
		return
	}

	for {
		ev, ok := c.ws.PollEvent()
		if !ok {
			break
		}
		c.input.Apply(ev)
	}

	elapsed := c.sched.advance()
	if c.client.Update != nil {
		c.client.Update(c, elapsed)
	}

	if c.initialized.Load() && c.device != nil {
		if c.client.Draw != nil {
			c.client.Draw(c)
		}
		c.device.Present()
	}
}

// Resize records the new host size and, once initialized, resizes the native
// window and the backbuffer to match.
func (c *Control) Resize(width, height int) error {
	c.mu.Lock()
	if c.state == StateDisposed {
		c.mu.Unlock()
		return nil
	}
	c.width, c.height = width, height
	c.mu.Unlock()

	if !c.initialized.Load() {
		return nil
	}
	var err error
	c.loop.RunOnMain(func() {
		err = c.emb.syncSize(width, height, c.device)
	})
	return err
}

// StartRendering restarts the frame timer of a stopped control. It does nothing
// before startup has completed, after a failed startup or while running.
func (c *Control) StartRendering() {
	c.startRendering(StateStopped)
}

// startRendering starts the timer when the control is in state from.
func (c *Control) startRendering(from RunState) {
	if !c.initialized.Load() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != from {
		return
	}
	if c.sched.start(c.opts.FPSMax) {
		c.state = StateRunning
	}
}

// StopRendering cancels the frame timer and waits for it to exit. A tick that
// is already executing finishes; queued ticks are dropped.
func (c *Control) StopRendering() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateRunning {
		return
	}
	c.sched.stop()
	c.state = StateStopped
}

// Dispose stops rendering, then releases the device, the native window and the
// windowing subsystem on the UI thread. Calling it again does nothing.
//
// When called off the UI thread while a loop is attached, Dispose waits for the
// loop to run the release, so the host must keep pumping it.
func (c *Control) Dispose() {
	c.mu.Lock()
	if c.state == StateDisposed {
		c.mu.Unlock()
		return
	}
	c.state = StateDisposed
	c.mu.Unlock()

	c.sched.stop()
	c.loop.RunOnMain(c.release)
}

func (c *Control) release() {
	c.initialized.Store(false)
	if c.device != nil {
		c.device.Dispose()
		c.device = nil
	}
	c.emb.destroy()
	c.sched.clearClock()
	Logger().Info("control disposed")
}

// InputState returns the input as of the last drained event.
func (c *Control) InputState() InputSnapshot {
	return c.input.Snapshot()
}

// VideoDriverName returns a display label for the native video driver, or
// "NULL" before initialization.
func (c *Control) VideoDriverName() string {
	if !c.initialized.Load() {
		return "NULL"
	}
	raw := c.ws.VideoDriver()
	if name, ok := videoDrivers[strings.ToLower(raw)]; ok {
		return name
	}
	return raw
}

func (c *Control) State() RunState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Control) IsInitialized() bool { return c.initialized.Load() }
func (c *Control) IsRunning() bool     { return c.sched.isRunning() }

// FPS returns the rate implied by the last measured frame time.
func (c *Control) FPS() float32 { return c.sched.framesPerSecond() }

// FrameInterval returns the timer period of the running scheduler.
func (c *Control) FrameInterval() time.Duration { return c.sched.currentInterval() }

func (c *Control) Size() (width, height int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.width, c.height
}

func (c *Control) Loop() *Loop                    { return c.loop }
func (c *Control) GraphicsDevice() GraphicsDevice { return c.device }
func (c *Control) Window() *GameWindow            { return c.window }
func (c *Control) Content() *ContentManager       { return c.content }
