package dmg

import (
	"github.com/valdr/dotmatrix/dmg/cpu"
	"github.com/valdr/dotmatrix/dmg/interrupt"
	"github.com/valdr/dotmatrix/dmg/joypad"
	"github.com/valdr/dotmatrix/dmg/memory"
	"github.com/valdr/dotmatrix/dmg/serial"
	"github.com/valdr/dotmatrix/dmg/timer"
	"github.com/valdr/dotmatrix/dmg/video"
)

// Snapshot is the complete machine state: restoring it and replaying the
// same inputs reproduces the exact same execution. Cartridge state is not
// included; the cartridge collaborator owns its own persistence.
type Snapshot struct {
	CPU        cpu.State
	Interrupts interrupt.State
	Timer      timer.State
	Joypad     joypad.State
	Serial     serial.State
	PPU        video.State
	Bus        memory.State
}

// Snapshot captures the machine state between steps. Taking one mid-Step is
// not meaningful; callers drive the machine, so between-step timing is
// theirs to guarantee.
func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		CPU:        m.cpu.Save(),
		Interrupts: m.ic.Save(),
		Timer:      m.tmr.Save(),
		Joypad:     m.joy.Save(),
		Serial:     m.ser.Save(),
		PPU:        m.ppu.Save(),
		Bus:        m.bus.Save(),
	}
}

// Restore replaces the machine state with a previously captured snapshot.
func (m *Machine) Restore(s Snapshot) {
	m.cpu.Restore(s.CPU)
	m.ic.Restore(s.Interrupts)
	m.tmr.Restore(s.Timer)
	m.joy.Restore(s.Joypad)
	m.ser.Restore(s.Serial)
	m.ppu.Restore(s.PPU)
	m.bus.Restore(s.Bus)
}
