// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package fnahost

import (
	"maps"
	"slices"
)

// EventKind tags a decoded native input event.
type EventKind uint8

const (
	EventNone EventKind = iota
	EventKeyDown
	EventKeyUp
	EventButtonDown
	EventButtonUp
	EventMotion
)

// InputEvent is one native event, decoded but not yet mapped to logical keys.
// Code holds the native key code for key events and the native button index for
// button events. X and Y are set for motion events.
type InputEvent struct {
	Kind EventKind
	Code uint32
	X, Y int
}

// Key is a logical keyboard key. Values follow the Windows virtual-key codes.
type Key uint8

const (
	KeyNone     Key = 0x00
	KeyBack     Key = 0x08
	KeyTab      Key = 0x09
	KeyEnter    Key = 0x0D
	KeyEscape   Key = 0x1B
	KeySpace    Key = 0x20
	KeyPageUp   Key = 0x21
	KeyPageDown Key = 0x22
	KeyEnd      Key = 0x23
	KeyHome     Key = 0x24
	KeyLeft     Key = 0x25
	KeyUp       Key = 0x26
	KeyRight    Key = 0x27
	KeyDown     Key = 0x28
	KeyInsert   Key = 0x2D
	KeyDelete   Key = 0x2E
	KeyD0       Key = 0x30
	KeyD1       Key = 0x31
	KeyD2       Key = 0x32
	KeyD3       Key = 0x33
	KeyD4       Key = 0x34
	KeyD5       Key = 0x35
	KeyD6       Key = 0x36
	KeyD7       Key = 0x37
	KeyD8       Key = 0x38
	KeyD9       Key = 0x39
	KeyA        Key = 0x41
	KeyB        Key = 0x42
	KeyC        Key = 0x43
	KeyD        Key = 0x44
	KeyE        Key = 0x45
	KeyF        Key = 0x46
	KeyG        Key = 0x47
	KeyH        Key = 0x48
	KeyI        Key = 0x49
	KeyJ        Key = 0x4A
	KeyK        Key = 0x4B
	KeyL        Key = 0x4C
	KeyM        Key = 0x4D
	KeyN        Key = 0x4E
	KeyO        Key = 0x4F
	KeyP        Key = 0x50
	KeyQ        Key = 0x51
	KeyR        Key = 0x52
	KeyS        Key = 0x53
	KeyT        Key = 0x54
	KeyU        Key = 0x55
	KeyV        Key = 0x56
	KeyW        Key = 0x57
	KeyX        Key = 0x58
	KeyY        Key = 0x59
	KeyZ        Key = 0x5A
	KeyF1       Key = 0x70
	KeyF12      Key = 0x7B

	KeyLeftShift    Key = 0xA0
	KeyRightShift   Key = 0xA1
	KeyLeftControl  Key = 0xA2
	KeyRightControl Key = 0xA3
	KeyLeftAlt      Key = 0xA4
	KeyRightAlt     Key = 0xA5
)

// MouseButton is a logical pointer button.
type MouseButton uint8

const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonMiddle
	MouseButtonRight
	MouseButtonX1
	MouseButtonX2
)

// SDL3 keycodes outside the printable ASCII range.
const (
	sdlkScancodeMask = 1 << 30
	sdlkF1           = 0x3A | sdlkScancodeMask
	sdlkInsert       = 0x49 | sdlkScancodeMask
	sdlkHome         = 0x4A | sdlkScancodeMask
	sdlkPageUp       = 0x4B | sdlkScancodeMask
	sdlkEnd          = 0x4D | sdlkScancodeMask
	sdlkPageDown     = 0x4E | sdlkScancodeMask
	sdlkRight        = 0x4F | sdlkScancodeMask
	sdlkLeft         = 0x50 | sdlkScancodeMask
	sdlkDown         = 0x51 | sdlkScancodeMask
	sdlkUp           = 0x52 | sdlkScancodeMask
	sdlkLCtrl        = 0xE0 | sdlkScancodeMask
	sdlkLShift       = 0xE1 | sdlkScancodeMask
	sdlkLAlt         = 0xE2 | sdlkScancodeMask
	sdlkRCtrl        = 0xE4 | sdlkScancodeMask
	sdlkRShift       = 0xE5 | sdlkScancodeMask
	sdlkRAlt         = 0xE6 | sdlkScancodeMask
)

// sdlKeyTable maps SDL3 keycodes to logical keys. Codes missing from the table
// map to KeyNone.
var sdlKeyTable = map[uint32]Key{
	0x08:         KeyBack,
	0x09:         KeyTab,
	0x0D:         KeyEnter,
	0x1B:         KeyEscape,
	0x20:         KeySpace,
	0x7F:         KeyDelete,
	sdlkInsert:   KeyInsert,
	sdlkHome:     KeyHome,
	sdlkPageUp:   KeyPageUp,
	sdlkEnd:      KeyEnd,
	sdlkPageDown: KeyPageDown,
	sdlkRight:    KeyRight,
	sdlkLeft:     KeyLeft,
	sdlkDown:     KeyDown,
	sdlkUp:       KeyUp,
	sdlkLCtrl:    KeyLeftControl,
	sdlkLShift:   KeyLeftShift,
	sdlkLAlt:     KeyLeftAlt,
	sdlkRCtrl:    KeyRightControl,
	sdlkRShift:   KeyRightShift,
	sdlkRAlt:     KeyRightAlt,
}

// sdlButtonTable maps SDL3 mouse button indices to logical buttons.
var sdlButtonTable = map[uint32]MouseButton{
	1: MouseButtonLeft,
	2: MouseButtonMiddle,
	3: MouseButtonRight,
	4: MouseButtonX1,
	5: MouseButtonX2,
}

func init() {
	// SDL3 letter keycodes are the lowercase ASCII values.
	for c := uint32('a'); c <= 'z'; c++ {
		sdlKeyTable[c] = KeyA + Key(c-'a')
	}
	for c := uint32('0'); c <= '9'; c++ {
		sdlKeyTable[c] = KeyD0 + Key(c-'0')
	}
	for i := uint32(0); i < 12; i++ {
		sdlKeyTable[sdlkF1+i] = KeyF1 + Key(i)
	}
}

// MapKey translates a native keycode to a logical key, KeyNone when unmapped.
func MapKey(code uint32) Key {
	return sdlKeyTable[code]
}

// MapButton translates a native button index, MouseButtonNone when unmapped.
func MapButton(code uint32) MouseButton {
	return sdlButtonTable[code]
}

// Input aggregates native events into pressed-key and pressed-button sets and
// the last pointer position. It is owned by one Control and only touched on the
// UI thread, so it carries no lock.
type Input struct {
	keys    map[Key]struct{}
	buttons map[MouseButton]struct{}
	x, y    int

	// focus runs when the primary button goes down while not already held.
	focus func()
}

func newInput(focus func()) *Input {
	return &Input{
		keys:    make(map[Key]struct{}),
		buttons: make(map[MouseButton]struct{}),
		focus:   focus,
	}
}

// Apply folds one event into the state.
func (in *Input) Apply(ev InputEvent) {
	switch ev.Kind {
	case EventKeyDown:
		in.KeyDown(ev.Code)
	case EventKeyUp:
		in.KeyUp(ev.Code)
	case EventButtonDown:
		in.ButtonDown(ev.Code)
	case EventButtonUp:
		in.ButtonUp(ev.Code)
	case EventMotion:
		in.Motion(ev.X, ev.Y)
	}
}

func (in *Input) KeyDown(code uint32) {
	if k := MapKey(code); k != KeyNone {
		in.keys[k] = struct{}{}
	}
}

func (in *Input) KeyUp(code uint32) {
	delete(in.keys, MapKey(code))
}

func (in *Input) ButtonDown(code uint32) {
	b := MapButton(code)
	if b == MouseButtonNone {
		return
	}
	if _, held := in.buttons[b]; held {
		return
	}
	in.buttons[b] = struct{}{}
	if b == MouseButtonLeft && in.focus != nil {
		in.focus()
	}
}

func (in *Input) ButtonUp(code uint32) {
	delete(in.buttons, MapButton(code))
}

// Motion overwrites the last known pointer position.
func (in *Input) Motion(x, y int) {
	in.x, in.y = x, y
}

// Snapshot copies the current state.
func (in *Input) Snapshot() InputSnapshot {
	return InputSnapshot{
		keys:    slices.Sorted(maps.Keys(in.keys)),
		buttons: slices.Sorted(maps.Keys(in.buttons)),
		x:       in.x,
		y:       in.y,
	}
}

// InputSnapshot is an immutable copy of the input state at one point of a tick.
type InputSnapshot struct {
	keys    []Key
	buttons []MouseButton
	x, y    int
}

func (s InputSnapshot) IsKeyDown(k Key) bool {
	_, ok := slices.BinarySearch(s.keys, k)
	return ok
}

func (s InputSnapshot) IsKeyUp(k Key) bool { return !s.IsKeyDown(k) }

// PressedKeys returns the held keys in ascending order.
func (s InputSnapshot) PressedKeys() []Key {
	return slices.Clone(s.keys)
}

func (s InputSnapshot) IsButtonDown(b MouseButton) bool {
	_, ok := slices.BinarySearch(s.buttons, b)
	return ok
}

// PressedButtons returns the held buttons in ascending order.
func (s InputSnapshot) PressedButtons() []MouseButton {
	return slices.Clone(s.buttons)
}

// Position returns the last known pointer position in window coordinates.
func (s InputSnapshot) Position() (x, y int) {
	return s.x, s.y
}
