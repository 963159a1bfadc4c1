// Package timer implements the DIV/TIMA/TMA/TAC timer subsystem.
//
// The divider and the programmable counter share one 16-bit counter: DIV is
// its top byte, and TIMA increments on falling edges of a TAC-selected bit
// of the same counter. Because the edge detector watches the counter itself,
// register writes that move the watched bit can clock TIMA too; that quirk
// is modeled, not approximated.
package timer

import (
	"github.com/valdr/dotmatrix/dmg/addr"
	"github.com/valdr/dotmatrix/dmg/bit"
	"github.com/valdr/dotmatrix/dmg/interrupt"
)

// tacBit maps TAC clock select (bits 1-0) to the watched bit of the internal
// counter.
//
//	00 -> bit 9  (4096 Hz)
//	01 -> bit 3  (262144 Hz)
//	10 -> bit 5  (65536 Hz)
//	11 -> bit 7  (16384 Hz)
var tacBit = [4]uint8{9, 3, 5, 7}

// frameSequencerBit is the counter bit whose falling edge clocks the audio
// frame sequencer (512 Hz).
const frameSequencerBit uint8 = 12

// overflowDelay is how many T-cycles TIMA reads 0x00 after overflowing
// before it reloads from TMA and the interrupt fires.
const overflowDelay = 4

// FrameSequencerFunc receives one call per 512 Hz frame-sequencer step.
// The audio unit hangs off this; the core never calls into it otherwise.
type FrameSequencerFunc func()

// Timer is the timer subsystem. It raises requests on the interrupt
// controller and exposes its four registers to the memory bus.
type Timer struct {
	counter    uint16 // internal 16-bit counter, DIV is the top byte
	lastSignal bool   // previous state of (enabled AND watched bit)
	overflow   int    // T-cycles left until the delayed TMA reload

	tima uint8
	tma  uint8
	tac  uint8

	ic           *interrupt.Controller
	frameSeq     FrameSequencerFunc
	lastFrameBit bool
}

// New returns a timer wired to the given interrupt controller, seeded with
// the counter value hardware leaves after boot.
func New(ic *interrupt.Controller) *Timer {
	return &Timer{
		counter: 0xABCC,
		ic:      ic,
	}
}

// SetFrameSequencer registers the audio collaborator's 512 Hz hook.
func (t *Timer) SetFrameSequencer(fn FrameSequencerFunc) {
	t.frameSeq = fn
}

// Tick advances the timer by the given number of T-cycles, one cycle at a
// time so no falling edge is missed inside a batch.
func (t *Timer) Tick(cycles int) {
	for i := 0; i < cycles; i++ {
		if t.overflow > 0 {
			t.overflow--
			if t.overflow == 0 {
				t.tima = t.tma
				t.ic.Request(interrupt.Timer)
			}
		}

		t.counter++
		t.checkEdges()
	}
}

// checkEdges runs the falling-edge detectors against the current counter.
// Called once per cycle and after any write that moves the counter or the
// watched bit, so write-triggered spurious increments happen exactly as on
// hardware.
func (t *Timer) checkEdges() {
	signal := t.enabled() && bit.IsSet16(tacBit[t.tac&0x03], t.counter)
	if t.lastSignal && !signal {
		t.incrementTIMA()
	}
	t.lastSignal = signal

	frameBit := bit.IsSet16(frameSequencerBit, t.counter)
	if t.lastFrameBit && !frameBit && t.frameSeq != nil {
		t.frameSeq()
	}
	t.lastFrameBit = frameBit
}

func (t *Timer) enabled() bool {
	return bit.IsSet(2, t.tac)
}

func (t *Timer) incrementTIMA() {
	if t.tima == 0xFF {
		// TIMA reads 0x00 for one M-cycle, then reloads from TMA and the
		// interrupt fires.
		t.tima = 0
		t.overflow = overflowDelay
		return
	}
	t.tima++
}

// Read returns the value of a timer register.
func (t *Timer) Read(address uint16) uint8 {
	switch address {
	case addr.DIV:
		return uint8(t.counter >> 8)
	case addr.TIMA:
		return t.tima
	case addr.TMA:
		return t.tma
	case addr.TAC:
		return t.tac | 0xF8
	}
	return 0xFF
}

// Write stores a timer register. DIV writes reset the whole internal
// counter; DIV and TAC writes both re-run the edge detector since either
// can pull the watched bit low.
func (t *Timer) Write(address uint16, value uint8) {
	switch address {
	case addr.DIV:
		t.counter = 0
		t.checkEdges()
	case addr.TIMA:
		// A write during the overflow window cancels the pending reload.
		t.overflow = 0
		t.tima = value
	case addr.TMA:
		t.tma = value
	case addr.TAC:
		t.tac = value & 0x07
		t.checkEdges()
	}
}

// State is the serializable snapshot of the timer.
type State struct {
	Counter    uint16
	LastSignal bool
	Overflow   int
	TIMA       uint8
	TMA        uint8
	TAC        uint8
}

// Save captures the timer state.
func (t *Timer) Save() State {
	return State{
		Counter:    t.counter,
		LastSignal: t.lastSignal,
		Overflow:   t.overflow,
		TIMA:       t.tima,
		TMA:        t.tma,
		TAC:        t.tac,
	}
}

// Restore replaces the timer state.
func (t *Timer) Restore(s State) {
	t.counter = s.Counter
	t.lastSignal = s.LastSignal
	t.overflow = s.Overflow
	t.tima = s.TIMA
	t.tma = s.TMA
	t.tac = s.TAC
	t.lastFrameBit = bit.IsSet16(frameSequencerBit, t.counter)
}
