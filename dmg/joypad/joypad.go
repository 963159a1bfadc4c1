// Package joypad models the button matrix behind the P1 register. The host
// input source is an external collaborator; it feeds state in through Press
// and Release.
package joypad

import (
	"github.com/valdr/dotmatrix/dmg/bit"
	"github.com/valdr/dotmatrix/dmg/interrupt"
)

// Key is one of the eight buttons.
type Key uint8

const (
	Right Key = iota
	Left
	Up
	Down
	A
	B
	Select
	Start
)

// Joypad holds the matrix state. P1 is just a selector: bits 4-5 choose
// which button group appears on the low nibble. Lines are active-low:
// 1 means released.
type Joypad struct {
	buttons uint8 // A/B/Select/Start on bits 0-3
	dpad    uint8 // Right/Left/Up/Down on bits 0-3
	selects uint8 // P1 bits 4-5 as last written

	ic *interrupt.Controller
}

func New(ic *interrupt.Controller) *Joypad {
	return &Joypad{
		buttons: 0x0F,
		dpad:    0x0F,
		selects: 0x30,
		ic:      ic,
	}
}

// Read returns P1: the selection bits plus the selected group's lines.
// Bits 6-7 are unused and read as 1; with neither group selected the low
// nibble floats high.
func (j *Joypad) Read() uint8 {
	result := uint8(0xC0) | j.selects

	selectDpad := !bit.IsSet(4, j.selects)
	selectButtons := !bit.IsSet(5, j.selects)

	switch {
	case selectButtons && selectDpad:
		result |= j.buttons & j.dpad & 0x0F
	case selectButtons:
		result |= j.buttons & 0x0F
	case selectDpad:
		result |= j.dpad & 0x0F
	default:
		result |= 0x0F
	}

	return result
}

// Write stores the selection bits; the low nibble is read-only.
func (j *Joypad) Write(value uint8) {
	j.selects = value & 0x30
}

// Press marks a key as held. A falling edge on a currently selected line
// raises the joypad interrupt.
func (j *Joypad) Press(key Key) {
	selectedBefore := j.Read() & 0x0F

	switch {
	case key <= Down:
		j.dpad = bit.Clear(uint8(key), j.dpad)
	default:
		j.buttons = bit.Clear(uint8(key-A), j.buttons)
	}

	selectedAfter := j.Read() & 0x0F
	if selectedBefore & ^selectedAfter != 0 {
		j.ic.Request(interrupt.Joypad)
	}
}

// Release marks a key as released. Rising edges never interrupt.
func (j *Joypad) Release(key Key) {
	switch {
	case key <= Down:
		j.dpad = bit.Set(uint8(key), j.dpad)
	default:
		j.buttons = bit.Set(uint8(key-A), j.buttons)
	}
}

// State is the serializable snapshot of the joypad.
type State struct {
	Buttons uint8
	Dpad    uint8
	Selects uint8
}

// Save captures the joypad state.
func (j *Joypad) Save() State {
	return State{Buttons: j.buttons, Dpad: j.dpad, Selects: j.selects}
}

// Restore replaces the joypad state.
func (j *Joypad) Restore(s State) {
	j.buttons = s.Buttons
	j.dpad = s.Dpad
	j.selects = s.Selects
}
