// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package fnahost

import "fmt"

// Adapter names the display adapter a device is created on.
type Adapter struct {
	Name string
}

// DefaultAdapter is the adapter chosen by the graphics library.
var DefaultAdapter = Adapter{Name: "default"}

// Profile is the feature level requested from the device.
type Profile int

const (
	ProfileReach Profile = iota
	ProfileHiDef
)

// DepthFormat is the depth/stencil format of the backbuffer.
type DepthFormat int32

const (
	DepthNone DepthFormat = iota
	Depth16
	Depth24
	Depth24Stencil8
)

// PresentInterval controls how Present waits for vertical retrace.
// PresentImmediate never waits.
type PresentInterval int32

const (
	PresentDefault PresentInterval = iota
	PresentOne
	PresentTwo
	PresentImmediate
)

// PresentationParameters describes the backbuffer bound to a window.
type PresentationParameters struct {
	DeviceWindowHandle   uintptr
	BackBufferWidth      int
	BackBufferHeight     int
	IsFullScreen         bool
	PresentationInterval PresentInterval
	DepthStencilFormat   DepthFormat
	MultiSampleCount     int
}

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// CornflowerBlue is the customary clear colour.
var CornflowerBlue = Color{R: 100, G: 149, B: 237, A: 255}

// GraphicsDevice is a device bound to one window handle. All methods run on
// the UI thread.
type GraphicsDevice interface {
	PresentationParameters() PresentationParameters
	// Reset rebuilds the backbuffer with new parameters, typically on resize.
	Reset(pp PresentationParameters) error
	Present()
	Clear(c Color)
	Dispose()
	IsDisposed() bool
}

// DeviceFactory creates graphics devices and tells the window system which
// window attributes the device needs.
type DeviceFactory interface {
	PrepareWindowAttributes() (uint64, error)
	CreateDevice(adapter Adapter, profile Profile, pp PresentationParameters) (GraphicsDevice, error)
}

// fna3dPresentationParameters mirrors FNA3D_PresentationParameters.
type fna3dPresentationParameters struct {
	backBufferWidth      int32
	backBufferHeight     int32
	backBufferFormat     int32
	multiSampleCount     int32
	deviceWindowHandle   uintptr
	isFullScreen         uint8
	depthStencilFormat   int32
	presentationInterval int32
	displayOrientation   int32
	renderTargetUsage    int32
}

type fna3dRect struct {
	x, y, w, h int32
}

type fna3dVec4 struct {
	x, y, z, w float32
}

const fna3dClearTarget = 1

func toFNA3D(pp PresentationParameters) fna3dPresentationParameters {
	var full uint8
	if pp.IsFullScreen {
		full = 1
	}
	return fna3dPresentationParameters{
		backBufferWidth:      int32(max(1, pp.BackBufferWidth)),
		backBufferHeight:     int32(max(1, pp.BackBufferHeight)),
		multiSampleCount:     int32(pp.MultiSampleCount),
		deviceWindowHandle:   pp.DeviceWindowHandle,
		isFullScreen:         full,
		depthStencilFormat:   int32(pp.DepthStencilFormat),
		presentationInterval: int32(pp.PresentationInterval),
	}
}

// FNA3DFactory creates FNA3D devices, loading the library from baseDir.
type FNA3DFactory struct {
	baseDir string
	debug   bool
}

// NewFNA3DFactory returns a factory that loads FNA3D from baseDir on first use.
// With debug set, devices are created in FNA3D debug mode.
func NewFNA3DFactory(baseDir string, debug bool) *FNA3DFactory {
	return &FNA3DFactory{baseDir: baseDir, debug: debug}
}

func (f *FNA3DFactory) PrepareWindowAttributes() (uint64, error) {
	if err := loadFNA3D(f.baseDir); err != nil {
		return 0, err
	}
	return uint64(fna3dPrepareWindowAttributes()), nil
}

// CreateDevice ignores adapter and profile: FNA3D picks both from the window.
func (f *FNA3DFactory) CreateDevice(_ Adapter, _ Profile, pp PresentationParameters) (GraphicsDevice, error) {
	if err := loadFNA3D(f.baseDir); err != nil {
		return nil, err
	}
	raw := toFNA3D(pp)
	var debug uint8
	if f.debug {
		debug = 1
	}
	h := fna3dCreateDevice(&raw, debug)
	if h == 0 {
		return nil, fmt.Errorf("FNA3D_CreateDevice failed for window %#x", pp.DeviceWindowHandle)
	}
	return &fna3dDevice{handle: h, pp: pp}, nil
}

type fna3dDevice struct {
	handle uintptr
	pp     PresentationParameters
}

func (d *fna3dDevice) PresentationParameters() PresentationParameters { return d.pp }

func (d *fna3dDevice) Reset(pp PresentationParameters) error {
	if d.handle == 0 {
		return ErrDisposed
	}
	raw := toFNA3D(pp)
	fna3dResetBackbuffer(d.handle, &raw)
	d.pp = pp
	return nil
}

func (d *fna3dDevice) Present() {
	if d.handle == 0 {
		return
	}
	fna3dSwapBuffers(d.handle, nil, nil, d.pp.DeviceWindowHandle)
}

func (d *fna3dDevice) Clear(c Color) {
	if d.handle == 0 {
		return
	}
	v := fna3dVec4{
		x: float32(c.R) / 255,
		y: float32(c.G) / 255,
		z: float32(c.B) / 255,
		w: float32(c.A) / 255,
	}
	fna3dClear(d.handle, fna3dClearTarget, &v, 1, 0)
}

func (d *fna3dDevice) Dispose() {
	if d.handle == 0 {
		return
	}
	fna3dDestroyDevice(d.handle)
	d.handle = 0
}

func (d *fna3dDevice) IsDisposed() bool { return d.handle == 0 }
