// Package interrupt implements the interrupt controller: the pending (IF)
// and enabled (IE) masks shared between the CPU and the peripherals that
// raise requests.
package interrupt

import "github.com/valdr/dotmatrix/dmg/bit"

// Kind identifies one of the five interrupt sources. The numeric value is
// the bit position in IE/IF and doubles as the priority order: lower is
// dispatched first.
type Kind uint8

const (
	VBlank Kind = iota
	STAT
	Timer
	Serial
	Joypad

	kindCount = 5
)

func (k Kind) String() string {
	switch k {
	case VBlank:
		return "vblank"
	case STAT:
		return "stat"
	case Timer:
		return "timer"
	case Serial:
		return "serial"
	case Joypad:
		return "joypad"
	}
	return "unknown"
}

// Vector returns the fixed handler address the CPU jumps to for this kind.
// Handlers sit 8 bytes apart starting at 0x40.
func (k Kind) Vector() uint16 {
	return 0x40 + uint16(k)*8
}

// Controller holds the enable and request masks. A request bit only signals
// intent: dispatch additionally needs the enable bit and the CPU's master
// enable flag, which lives in the CPU since its set/clear timing is tied to
// instruction boundaries.
type Controller struct {
	enable  uint8
	request uint8
}

func New() *Controller {
	return &Controller{}
}

// Request marks an interrupt as pending.
func (c *Controller) Request(kind Kind) {
	c.request = bit.Set(uint8(kind), c.request)
}

// Acknowledge clears the request bit, done by the CPU when it dispatches.
func (c *Controller) Acknowledge(kind Kind) {
	c.request = bit.Clear(uint8(kind), c.request)
}

// HighestPending returns the highest-priority interrupt that is both
// requested and enabled. The second return is false when there is none.
func (c *Controller) HighestPending() (Kind, bool) {
	masked := c.request & c.enable & 0x1F
	if masked == 0 {
		return 0, false
	}
	for i := uint8(0); i < kindCount; i++ {
		if bit.IsSet(i, masked) {
			return Kind(i), true
		}
	}
	return 0, false
}

// AnyPending reports whether any interrupt is requested and enabled,
// regardless of the master enable flag. This is the condition that wakes
// the CPU from HALT.
func (c *Controller) AnyPending() bool {
	return c.request&c.enable&0x1F != 0
}

// ReadEnable returns the IE register.
func (c *Controller) ReadEnable() uint8 {
	return c.enable
}

// WriteEnable sets the IE register. All 8 bits are writable on hardware
// even though only the low 5 matter.
func (c *Controller) WriteEnable(value uint8) {
	c.enable = value
}

// ReadRequest returns the IF register. The unused upper 3 bits always read
// as 1 on hardware, which matters for code probing IF directly.
func (c *Controller) ReadRequest() uint8 {
	return c.request | 0xE0
}

// WriteRequest sets the IF register; games may clear or raise requests by
// hand.
func (c *Controller) WriteRequest(value uint8) {
	c.request = value & 0x1F
}

// State is the serializable snapshot of the controller.
type State struct {
	Enable  uint8
	Request uint8
}

// Save captures the controller state.
func (c *Controller) Save() State {
	return State{Enable: c.enable, Request: c.request}
}

// Restore replaces the controller state.
func (c *Controller) Restore(s State) {
	c.enable = s.Enable
	c.request = s.Request
}
