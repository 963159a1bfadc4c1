package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// step loads the program at PC and runs one instruction.
func step(t *testing.T, cpu *CPU, bus *testBus, program ...uint8) int {
	t.Helper()
	copy(bus.mem[cpu.pc:], program)
	return cpu.Step()
}

func TestOpcodes_loads(t *testing.T) {
	t.Run("LD r, r", func(t *testing.T) {
		cpu, bus, _ := newTestCPU()
		cpu.c = 0x42
		cycles := step(t, cpu, bus, 0x41) // LD B, C
		assert.Equal(t, 4, cycles)
		assert.Equal(t, uint8(0x42), cpu.b)
	})

	t.Run("LD r, (HL)", func(t *testing.T) {
		cpu, bus, _ := newTestCPU()
		cpu.setHL(0xC000)
		bus.mem[0xC000] = 0x99
		cycles := step(t, cpu, bus, 0x46) // LD B, (HL)
		assert.Equal(t, 8, cycles)
		assert.Equal(t, uint8(0x99), cpu.b)
	})

	t.Run("LD (HL+), A advances HL", func(t *testing.T) {
		cpu, bus, _ := newTestCPU()
		cpu.a = 0x55
		cpu.setHL(0xC000)
		step(t, cpu, bus, 0x22)
		assert.Equal(t, uint8(0x55), bus.mem[0xC000])
		assert.Equal(t, uint16(0xC001), cpu.getHL())
	})

	t.Run("LD A, (HL-) walks backwards", func(t *testing.T) {
		cpu, bus, _ := newTestCPU()
		cpu.setHL(0xC001)
		bus.mem[0xC001] = 0x77
		step(t, cpu, bus, 0x3A)
		assert.Equal(t, uint8(0x77), cpu.a)
		assert.Equal(t, uint16(0xC000), cpu.getHL())
	})

	t.Run("LD (nn), SP stores both bytes", func(t *testing.T) {
		cpu, bus, _ := newTestCPU()
		cpu.sp = 0xBEEF
		cycles := step(t, cpu, bus, 0x08, 0x00, 0xC0)
		assert.Equal(t, 20, cycles)
		assert.Equal(t, uint8(0xEF), bus.mem[0xC000])
		assert.Equal(t, uint8(0xBE), bus.mem[0xC001])
	})

	t.Run("LDH uses the high page", func(t *testing.T) {
		cpu, bus, _ := newTestCPU()
		cpu.a = 0x12
		cycles := step(t, cpu, bus, 0xE0, 0x80) // LDH (0x80), A
		assert.Equal(t, 12, cycles)
		assert.Equal(t, uint8(0x12), bus.mem[0xFF80])

		bus.mem[0xFF81] = 0x34
		cycles = step(t, cpu, bus, 0xF0, 0x81) // LDH A, (0x81)
		assert.Equal(t, 12, cycles)
		assert.Equal(t, uint8(0x34), cpu.a)
	})

	t.Run("LD (0xFF00+C)", func(t *testing.T) {
		cpu, bus, _ := newTestCPU()
		cpu.a = 0xAB
		cpu.c = 0x80
		cycles := step(t, cpu, bus, 0xE2)
		assert.Equal(t, 8, cycles)
		assert.Equal(t, uint8(0xAB), bus.mem[0xFF80])
	})

	t.Run("LD HL, SP+e", func(t *testing.T) {
		cpu, bus, _ := newTestCPU()
		cpu.sp = 0xFFF0
		cycles := step(t, cpu, bus, 0xF8, 0x08)
		assert.Equal(t, 12, cycles)
		assert.Equal(t, uint16(0xFFF8), cpu.getHL())
	})
}

func TestOpcodes_conditionalCycles(t *testing.T) {
	testCases := []struct {
		desc     string
		program  []uint8
		setFlags Flag
		cycles   int
	}{
		{desc: "JR NZ taken", program: []uint8{0x20, 0x05}, cycles: 12},
		{desc: "JR NZ not taken", program: []uint8{0x20, 0x05}, setFlags: zeroFlag, cycles: 8},
		{desc: "JP Z taken", program: []uint8{0xCA, 0x00, 0x02}, setFlags: zeroFlag, cycles: 16},
		{desc: "JP Z not taken", program: []uint8{0xCA, 0x00, 0x02}, cycles: 12},
		{desc: "CALL NC taken", program: []uint8{0xD4, 0x00, 0x02}, cycles: 24},
		{desc: "CALL NC not taken", program: []uint8{0xD4, 0x00, 0x02}, setFlags: carryFlag, cycles: 12},
		{desc: "RET C taken", program: []uint8{0xD8}, setFlags: carryFlag, cycles: 20},
		{desc: "RET C not taken", program: []uint8{0xD8}, cycles: 8},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			cpu, _, _ := newTestCPU(tC.program...)
			cpu.sp = 0xFFFC // something popable for RET
			cpu.f = uint8(tC.setFlags)
			assert.Equal(t, tC.cycles, cpu.Step())
		})
	}
}

func TestOpcodes_notTakenSkipsOperands(t *testing.T) {
	cpu, bus, _ := newTestCPU()
	cpu.setFlag(zeroFlag)

	step(t, cpu, bus, 0x20, 0x05, 0x00) // JR NZ, +5 not taken
	assert.Equal(t, uint16(0x0102), cpu.pc)

	cpu.pc = 0x0200
	cpu.resetFlag(carryFlag)
	step(t, cpu, bus, 0xDA, 0x00, 0x80) // JP C, nn not taken
	assert.Equal(t, uint16(0x0203), cpu.pc)
}

func TestOpcodes_pushPopPairs(t *testing.T) {
	cpu, bus, _ := newTestCPU()
	cpu.sp = 0xFFFE
	cpu.setBC(0x1234)

	cycles := step(t, cpu, bus, 0xC5) // PUSH BC
	assert.Equal(t, 16, cycles)

	cpu.setBC(0)
	cycles = step(t, cpu, bus, 0xC1) // POP BC
	assert.Equal(t, 12, cycles)
	assert.Equal(t, uint16(0x1234), cpu.getBC())
}

func TestOpcodes_popAFMasksLowNibble(t *testing.T) {
	cpu, bus, _ := newTestCPU()
	cpu.sp = 0xFFFC
	bus.mem[0xFFFC] = 0xFF // would set the phantom low bits of F
	bus.mem[0xFFFD] = 0x12

	step(t, cpu, bus, 0xF1) // POP AF

	assert.Equal(t, uint8(0x12), cpu.a)
	assert.Equal(t, uint8(0xF0), cpu.f)
}

func TestOpcodes_jpHL(t *testing.T) {
	cpu, bus, _ := newTestCPU()
	cpu.setHL(0x4000)

	cycles := step(t, cpu, bus, 0xE9)

	assert.Equal(t, 4, cycles)
	assert.Equal(t, uint16(0x4000), cpu.pc)
}

func TestOpcodes_rotateAVariantsResetZero(t *testing.T) {
	// RLCA/RLA/RRCA/RRA always reset Z, unlike their CB forms
	for _, opcode := range []uint8{0x07, 0x17, 0x0F, 0x1F} {
		cpu, bus, _ := newTestCPU()
		cpu.a = 0
		cpu.f = 0
		step(t, cpu, bus, opcode)
		assert.False(t, cpu.isSetFlag(zeroFlag), "opcode 0x%02X", opcode)
	}
}

func TestOpcodes_cbMemoryForms(t *testing.T) {
	t.Run("SET 7, (HL)", func(t *testing.T) {
		cpu, bus, _ := newTestCPU()
		cpu.setHL(0xC000)
		cycles := step(t, cpu, bus, 0xCB, 0xFE)
		assert.Equal(t, 16, cycles)
		assert.Equal(t, uint8(0x80), bus.mem[0xC000])
	})

	t.Run("RES 0, (HL)", func(t *testing.T) {
		cpu, bus, _ := newTestCPU()
		cpu.setHL(0xC000)
		bus.mem[0xC000] = 0xFF
		cycles := step(t, cpu, bus, 0xCB, 0x86)
		assert.Equal(t, 16, cycles)
		assert.Equal(t, uint8(0xFE), bus.mem[0xC000])
	})

	t.Run("BIT 6, (HL) costs less than a write-back", func(t *testing.T) {
		cpu, bus, _ := newTestCPU()
		cpu.setHL(0xC000)
		bus.mem[0xC000] = 0x40
		cycles := step(t, cpu, bus, 0xCB, 0x76)
		assert.Equal(t, 12, cycles)
		assert.False(t, cpu.isSetFlag(zeroFlag))
	})

	t.Run("SRL (HL)", func(t *testing.T) {
		cpu, bus, _ := newTestCPU()
		cpu.setHL(0xC000)
		bus.mem[0xC000] = 0x03
		cycles := step(t, cpu, bus, 0xCB, 0x3E)
		assert.Equal(t, 16, cycles)
		assert.Equal(t, uint8(0x01), bus.mem[0xC000])
		assert.True(t, cpu.isSetFlag(carryFlag))
	})
}

func TestOpcodes_aluImmediates(t *testing.T) {
	cpu, bus, _ := newTestCPU()
	cpu.a = 0x10

	cycles := step(t, cpu, bus, 0xC6, 0x05) // ADD A, n
	assert.Equal(t, 8, cycles)
	assert.Equal(t, uint8(0x15), cpu.a)

	step(t, cpu, bus, 0xFE, 0x15) // CP n
	assert.True(t, cpu.isSetFlag(zeroFlag))
	assert.Equal(t, uint8(0x15), cpu.a)
}

func TestOpcodes_incDecHL(t *testing.T) {
	cpu, bus, _ := newTestCPU()
	cpu.setHL(0xC000)
	bus.mem[0xC000] = 0xFF

	cycles := step(t, cpu, bus, 0x34) // INC (HL)
	assert.Equal(t, 12, cycles)
	assert.Equal(t, uint8(0x00), bus.mem[0xC000])
	assert.True(t, cpu.isSetFlag(zeroFlag))

	cycles = step(t, cpu, bus, 0x35) // DEC (HL)
	assert.Equal(t, 12, cycles)
	assert.Equal(t, uint8(0xFF), bus.mem[0xC000])
}

func TestOpcodes_allDefined(t *testing.T) {
	for i, fn := range opcodes {
		assert.NotNil(t, fn, "opcode 0x%02X has no implementation", i)
	}
	for i, fn := range opcodesCB {
		assert.NotNil(t, fn, "CB opcode 0x%02X has no implementation", i)
	}
}

func TestOpcodeName(t *testing.T) {
	cpu, _, _ := newTestCPU(0x3E, 0x42)
	assert.Contains(t, cpu.OpcodeName(), "LD A, n")
	assert.Contains(t, cpu.OpcodeName(), "0x42")

	cpu, _, _ = newTestCPU(0xCB, 0x37)
	assert.Contains(t, cpu.OpcodeName(), "SWAP A")
}
