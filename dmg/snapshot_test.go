package dmg

import (
	"testing"

	"github.com/cespare/xxhash"
	"github.com/stretchr/testify/assert"
)

// counterProgram keeps the machine busy with observable side effects: it
// increments a counter in WRAM and copies it to the scroll register forever.
//
//	loop: LD HL, 0xC000
//	      INC (HL)
//	      LD A, (HL)
//	      LDH (0x43), A   ; SCX
//	      JR loop
var counterProgram = []uint8{
	0x21, 0x00, 0xC0,
	0x34,
	0x7E,
	0xE0, 0x43,
	0x18, 0xF7,
}

func TestSnapshot_roundTrip(t *testing.T) {
	m := newTestMachine(t, counterProgram...)
	m.RunCycles(12345)

	snap := m.Snapshot()

	restored := newTestMachine(t, counterProgram...)
	restored.Restore(snap)

	assert.Equal(t, snap, restored.Snapshot(), "restore reproduces the captured state")
}

func TestSnapshot_restoredMachineContinuesIdentically(t *testing.T) {
	m := newTestMachine(t, counterProgram...)
	m.RunCycles(54321)

	snap := m.Snapshot()

	restored := newTestMachine(t, counterProgram...)
	restored.Restore(snap)

	// run both sides well past a frame boundary and compare everything
	for i := 0; i < 2; i++ {
		m.RunUntilFrame()
		restored.RunUntilFrame()
	}

	assert.Equal(t, m.Snapshot(), restored.Snapshot())
	assert.Equal(t,
		xxhash.Sum64(m.FrameBuffer().Bytes()),
		xxhash.Sum64(restored.FrameBuffer().Bytes()))
}

func TestSnapshot_divergesWithoutRestore(t *testing.T) {
	m := newTestMachine(t, counterProgram...)
	m.RunCycles(1000)

	snap := m.Snapshot()
	m.RunCycles(1000)

	assert.NotEqual(t, snap, m.Snapshot())
}
