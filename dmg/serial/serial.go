// Package serial implements the SB/SC serial port with no peer attached:
// outgoing bytes are handed to an optional capture callback and logged as
// text lines, incoming bits read as 1. Conformance ROMs that report over
// serial are read through the capture callback.
package serial

import (
	"log/slog"

	"github.com/valdr/dotmatrix/dmg/addr"
	"github.com/valdr/dotmatrix/dmg/bit"
	"github.com/valdr/dotmatrix/dmg/interrupt"
)

// byteTransferCycles is how long one byte takes on the internal 8192 Hz
// clock: 512 T-cycles per bit.
const byteTransferCycles = 4096

// noPeerRX is what shifts in when nothing is connected.
const noPeerRX byte = 0xFF

// Port is the serial port. It raises the serial interrupt when a transfer
// completes.
type Port struct {
	sb, sc    byte
	active    bool
	countdown int

	ic     *interrupt.Controller
	onByte func(byte)
	logger *slog.Logger

	// line buffers outgoing text until a terminator for readable logs
	line []byte
}

// New returns a port wired to the interrupt controller. onByte may be nil;
// when set it receives every transmitted byte.
func New(ic *interrupt.Controller, onByte func(byte)) *Port {
	return &Port{
		ic:     ic,
		onByte: onByte,
		logger: slog.Default(),
	}
}

// Read returns SB or SC.
func (p *Port) Read(address uint16) byte {
	switch address {
	case addr.SB:
		return p.sb
	case addr.SC:
		// only the start and clock-select bits exist
		return p.sc | 0x7E
	}
	return 0xFF
}

// Write stores SB or SC. Setting SC's start bit with the internal clock
// selected begins a transfer.
func (p *Port) Write(address uint16, value byte) {
	switch address {
	case addr.SB:
		p.sb = value
	case addr.SC:
		p.sc = value & 0x81
		p.maybeStartTransfer()
	}
}

// Tick advances an active transfer by the given number of T-cycles.
func (p *Port) Tick(cycles int) {
	if !p.active {
		return
	}
	p.countdown -= cycles
	if p.countdown <= 0 {
		p.completeTransfer()
	}
}

func (p *Port) maybeStartTransfer() {
	if p.active {
		return
	}
	// bit 7 starts the transfer, bit 0 selects the internal clock; with an
	// external clock and no peer nothing ever arrives.
	if !bit.IsSet(7, p.sc) || !bit.IsSet(0, p.sc) {
		return
	}

	b := p.sb
	if p.onByte != nil {
		p.onByte(b)
	}
	if b == 0 || b == '\n' || b == '\r' {
		if len(p.line) > 0 {
			p.logger.Info("serial", "line", string(p.line))
			p.line = p.line[:0]
		}
	} else {
		p.line = append(p.line, b)
	}

	p.active = true
	p.countdown = byteTransferCycles
}

func (p *Port) completeTransfer() {
	p.sb = noPeerRX
	p.sc = bit.Clear(7, p.sc)
	p.active = false
	p.countdown = 0
	p.ic.Request(interrupt.Serial)
}

// State is the serializable snapshot of the port.
type State struct {
	SB, SC    byte
	Active    bool
	Countdown int
}

// Save captures the port state.
func (p *Port) Save() State {
	return State{SB: p.sb, SC: p.sc, Active: p.active, Countdown: p.countdown}
}

// Restore replaces the port state.
func (p *Port) Restore(s State) {
	p.sb = s.SB
	p.sc = s.SC
	p.active = s.Active
	p.countdown = s.Countdown
}
