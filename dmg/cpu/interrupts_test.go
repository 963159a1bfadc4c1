package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/valdr/dotmatrix/dmg/interrupt"
)

func TestCPU_interruptDispatch(t *testing.T) {
	cpu, _, ic := newTestCPU(0x00)
	cpu.ime = true
	ic.WriteEnable(0x1F)
	ic.Request(interrupt.Timer)

	cycles := cpu.Step()

	assert.Equal(t, interruptCycles, cycles)
	assert.Equal(t, interrupt.Timer.Vector(), cpu.pc)
	assert.False(t, cpu.ime)
	assert.Equal(t, uint16(0x0100), cpu.popStack(), "return address pushed")
	assert.False(t, ic.AnyPending(), "request acknowledged")
}

func TestCPU_interruptPriority(t *testing.T) {
	cpu, _, ic := newTestCPU(0x00)
	cpu.ime = true
	ic.WriteEnable(0x1F)
	ic.WriteRequest(0x1F)

	cpu.Step()

	// all five pending: VBlank wins
	assert.Equal(t, interrupt.VBlank.Vector(), cpu.pc)
	assert.Equal(t, uint8(0x1E)|0xE0, ic.ReadRequest())
}

func TestCPU_interruptNeedsEnableBit(t *testing.T) {
	cpu, _, ic := newTestCPU(0x00)
	cpu.ime = true
	ic.Request(interrupt.VBlank)

	cycles := cpu.Step()

	// request without enable: the NOP executes normally
	assert.Equal(t, 4, cycles)
	assert.Equal(t, uint16(0x0101), cpu.pc)
}

func TestCPU_diTakesEffectImmediately(t *testing.T) {
	cpu, _, _ := newTestCPU(0xF3) // DI
	cpu.ime = true
	cpu.eiPending = true

	cpu.Step()

	assert.False(t, cpu.ime)
	assert.False(t, cpu.eiPending)
}

func TestCPU_eiDelaysOneInstruction(t *testing.T) {
	cpu, _, ic := newTestCPU(0xFB, 0x00, 0x00) // EI; NOP; NOP
	ic.WriteEnable(0x01)
	ic.Request(interrupt.VBlank)

	cpu.Step() // EI
	assert.False(t, cpu.ime)
	assert.True(t, cpu.eiPending)

	cpu.Step() // the instruction after EI still runs
	assert.True(t, cpu.ime)
	assert.Equal(t, uint16(0x0102), cpu.pc)

	cycles := cpu.Step() // now the pending interrupt dispatches
	assert.Equal(t, interruptCycles, cycles)
	assert.Equal(t, interrupt.VBlank.Vector(), cpu.pc)
}

func TestCPU_diInDelaySlotCancelsEnable(t *testing.T) {
	cpu, _, ic := newTestCPU(0xFB, 0xF3, 0x00) // EI; DI; NOP
	ic.WriteEnable(0x01)
	ic.Request(interrupt.VBlank)

	cpu.Step() // EI
	assert.True(t, cpu.eiPending)

	cpu.Step() // DI lands in the delay slot and wins
	assert.False(t, cpu.ime)
	assert.False(t, cpu.eiPending)

	// the pending interrupt must not dispatch: the NOP runs instead
	cycles := cpu.Step()
	assert.Equal(t, 4, cycles)
	assert.Equal(t, uint16(0x0103), cpu.pc)
	assert.False(t, cpu.ime)
	assert.True(t, ic.AnyPending())
}

func TestCPU_retiEnablesImmediately(t *testing.T) {
	cpu, _, _ := newTestCPU(0xD9) // RETI
	cpu.sp = 0xFFFE
	cpu.pushStack(0x0234)

	cycles := cpu.Step()

	assert.Equal(t, 16, cycles)
	assert.Equal(t, uint16(0x0234), cpu.pc)
	assert.True(t, cpu.ime)
}

func TestCPU_haltIdlesUntilInterrupt(t *testing.T) {
	cpu, _, ic := newTestCPU(0x76, 0x3C) // HALT; INC A

	cpu.Step()
	assert.True(t, cpu.halted)

	// nothing pending: the core burns idle cycles in place
	assert.Equal(t, haltCycles, cpu.Step())
	assert.Equal(t, uint16(0x0101), cpu.pc)

	// an enabled+requested interrupt wakes it even with IME clear, and
	// execution resumes without dispatching
	ic.WriteEnable(0x04)
	ic.Request(interrupt.Timer)
	a := cpu.a

	cpu.Step()
	assert.False(t, cpu.halted)
	assert.Equal(t, a+1, cpu.a)
	assert.True(t, ic.AnyPending(), "request stays pending without IME")
}

func TestCPU_haltWithIMEDispatchesOnWake(t *testing.T) {
	cpu, _, ic := newTestCPU(0x76) // HALT
	cpu.ime = true

	cpu.Step()
	assert.True(t, cpu.halted)

	ic.WriteEnable(0x01)
	ic.Request(interrupt.VBlank)

	cycles := cpu.Step()
	assert.Equal(t, interruptCycles, cycles)
	assert.Equal(t, interrupt.VBlank.Vector(), cpu.pc)
}

func TestCPU_haltBugFetchesOpcodeTwice(t *testing.T) {
	t.Run("single byte instruction repeats", func(t *testing.T) {
		cpu, _, ic := newTestCPU(0x76, 0x3C) // HALT; INC A
		ic.WriteEnable(0x04)
		ic.Request(interrupt.Timer)

		cpu.Step() // HALT with IME clear and a pending interrupt: no halt
		assert.False(t, cpu.halted)
		assert.True(t, cpu.haltBug)

		a := cpu.a
		cpu.Step() // INC A runs but PC does not advance past it
		assert.Equal(t, a+1, cpu.a)
		assert.Equal(t, uint16(0x0101), cpu.pc)

		cpu.Step() // so INC A runs a second time
		assert.Equal(t, a+2, cpu.a)
		assert.Equal(t, uint16(0x0102), cpu.pc)
	})

	t.Run("immediate operand reads the opcode byte", func(t *testing.T) {
		cpu, _, ic := newTestCPU(0x76, 0x3E, 0x42) // HALT; LD A, 0x42
		ic.WriteEnable(0x04)
		ic.Request(interrupt.Timer)

		cpu.Step()
		assert.True(t, cpu.haltBug)

		cpu.Step()
		// the operand read lands on the 0x3E opcode byte itself
		assert.Equal(t, uint8(0x3E), cpu.a)
		assert.Equal(t, uint16(0x0102), cpu.pc)
	})
}

func TestCPU_stopIdlesUntilInterrupt(t *testing.T) {
	cpu, _, ic := newTestCPU(0x10, 0x00, 0x3C) // STOP; INC A

	cpu.Step()
	assert.True(t, cpu.stopped)
	assert.Equal(t, uint16(0x0102), cpu.pc, "padding byte skipped")

	assert.Equal(t, haltCycles, cpu.Step())

	ic.WriteEnable(0x10)
	ic.Request(interrupt.Joypad)

	cpu.Step()
	assert.False(t, cpu.stopped)
	assert.Equal(t, uint16(0x0103), cpu.pc)
}
