// Package cpu implements the LR35902 core: fetch, decode, execute,
// interrupt dispatch and the HALT quirks, with documented per-opcode cycle
// costs. It is the sole driver of wall-clock progress; everything else
// advances off the cycle counts it returns.
package cpu

import (
	"github.com/valdr/dotmatrix/dmg/bit"
	"github.com/valdr/dotmatrix/dmg/interrupt"
)

// Bus is the memory access capability the CPU executes against.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// Flag is one of the four flags in the F register. The lower four bits of F
// always read as zero.
type Flag uint8

const (
	zeroFlag      Flag = 0x80
	subFlag       Flag = 0x40
	halfCarryFlag Flag = 0x20
	carryFlag     Flag = 0x10
)

// haltCycles is what one idle step costs while halted, stopped or locked.
const haltCycles = 4

// interruptCycles is the cost of dispatching an interrupt: two idle
// M-cycles, two pushing PC, one jumping to the vector.
const interruptCycles = 20

// CPU holds the full register file and execution state.
type CPU struct {
	a, f uint8
	b, c uint8
	d, e uint8
	h, l uint8
	sp   uint16
	pc   uint16

	ime       bool // master interrupt enable
	eiPending bool // EI takes effect after the following instruction
	halted    bool
	stopped   bool
	locked    bool // an undefined opcode was executed; the core is wedged

	// haltBug marks that the next instruction executes with the HALT bug:
	// the opcode byte is fetched without advancing PC, so it is read again
	// (operand reads still advance PC). Entered by executing HALT with IME
	// clear while an enabled interrupt is already pending.
	haltBug bool

	currentOpcode uint16
	cycles        uint64

	bus Bus
	ic  *interrupt.Controller
}

// New returns a CPU in the documented post-boot register state, wired to
// the bus and the interrupt controller.
func New(bus Bus, ic *interrupt.Controller) *CPU {
	cpu := &CPU{
		bus: bus,
		ic:  ic,
	}

	cpu.setAF(0x01B0)
	cpu.setBC(0x0013)
	cpu.setDE(0x00D8)
	cpu.setHL(0x014D)
	cpu.sp = 0xFFFE
	cpu.pc = 0x0100

	return cpu
}

// Step runs the CPU for one logical step and returns the T-cycles it
// consumed: one idle cycle batch while halted with nothing pending, an
// interrupt dispatch, or a single instruction.
func (c *CPU) Step() int {
	// EI enables IME only after the instruction that follows it; capture
	// the pending enable now and apply it after this step's instruction.
	// A DI in the delay slot clears eiPending, cancelling the enable.
	enableIME := c.eiPending

	if c.locked {
		return haltCycles
	}

	if c.halted {
		// HALT exits on any enabled+requested interrupt even with IME
		// clear; with IME set the wake goes through dispatch below.
		if !c.ic.AnyPending() {
			return haltCycles
		}
		c.halted = false
	}

	if c.stopped {
		if !c.ic.AnyPending() {
			return haltCycles
		}
		c.stopped = false
	}

	if c.ime {
		if kind, ok := c.ic.HighestPending(); ok {
			c.eiPending = false
			return c.dispatch(kind)
		}
	}

	instruction := decode(c)

	// Under the halt bug the first PC increment is skipped, so the opcode
	// byte gets fetched twice.
	skipFirstInc := c.haltBug
	if !skipFirstInc {
		c.pc++
	}
	if bit.High(c.currentOpcode) == 0xCB {
		c.pc++
	}

	cycles := instruction(c)
	c.cycles += uint64(cycles)

	if skipFirstInc {
		c.haltBug = false
	}

	if enableIME && c.eiPending {
		c.eiPending = false
		c.ime = true
	}

	return cycles
}

// dispatch services an interrupt: acknowledge, push PC, jump to the fixed
// vector, clear the master enable.
func (c *CPU) dispatch(kind interrupt.Kind) int {
	c.ic.Acknowledge(kind)
	c.ime = false
	c.pushStack(c.pc)
	c.pc = kind.Vector()
	c.cycles += interruptCycles
	return interruptCycles
}

// halt executes the HALT instruction, including the bug region: entering
// HALT with IME clear while an enabled interrupt is pending does not halt
// at all, it corrupts the next fetch instead.
func (c *CPU) halt() {
	if !c.ime && c.ic.AnyPending() {
		c.haltBug = true
		return
	}
	c.halted = true
}

// peekImmediate returns the byte at PC ('n' in mnemonics).
func (c *CPU) peekImmediate() uint8 {
	return c.bus.Read(c.pc)
}

// peekImmediateWord returns the word at PC, little endian ('nn').
func (c *CPU) peekImmediateWord() uint16 {
	low := c.bus.Read(c.pc)
	high := c.bus.Read(c.pc + 1)
	return bit.Combine(high, low)
}

// readImmediate reads 'n' and advances PC. Under the halt bug the first
// operand read hits the opcode byte again, but PC still advances.
func (c *CPU) readImmediate() uint8 {
	n := c.bus.Read(c.pc)
	c.pc++
	return n
}

// readImmediateWord reads 'nn' and advances PC twice.
func (c *CPU) readImmediateWord() uint16 {
	low := c.bus.Read(c.pc)
	high := c.bus.Read(c.pc + 1)
	c.pc += 2
	return bit.Combine(high, low)
}

// readSignedImmediate reads the signed displacement ('e') and advances PC.
func (c *CPU) readSignedImmediate() int8 {
	return int8(c.readImmediate())
}

func (c *CPU) setFlag(flag Flag) {
	c.f |= uint8(flag)
}

func (c *CPU) resetFlag(flag Flag) {
	c.f &= ^uint8(flag)
}

func (c *CPU) isSetFlag(flag Flag) bool {
	return c.f&uint8(flag) != 0
}

// flagToBit returns 1 if the flag is set, 0 otherwise.
func (c *CPU) flagToBit(flag Flag) uint8 {
	if c.isSetFlag(flag) {
		return 1
	}
	return 0
}

func (c *CPU) setFlagToCondition(flag Flag, condition bool) {
	if condition {
		c.setFlag(flag)
		return
	}
	c.resetFlag(flag)
}

func (c *CPU) setBC(value uint16) {
	c.b = bit.High(value)
	c.c = bit.Low(value)
}

func (c *CPU) getBC() uint16 {
	return bit.Combine(c.b, c.c)
}

func (c *CPU) setDE(value uint16) {
	c.d = bit.High(value)
	c.e = bit.Low(value)
}

func (c *CPU) getDE() uint16 {
	return bit.Combine(c.d, c.e)
}

func (c *CPU) setHL(value uint16) {
	c.h = bit.High(value)
	c.l = bit.Low(value)
}

func (c *CPU) getHL() uint16 {
	return bit.Combine(c.h, c.l)
}

func (c *CPU) setAF(value uint16) {
	c.a = bit.High(value)
	// the low nibble of F does not exist in silicon
	c.f = bit.Low(value) & 0xF0
}

func (c *CPU) getAF() uint16 {
	return bit.Combine(c.a, c.f)
}

// Register getters for debug tooling and tests.
func (c *CPU) A() uint8       { return c.a }
func (c *CPU) F() uint8       { return c.f }
func (c *CPU) B() uint8       { return c.b }
func (c *CPU) C() uint8       { return c.c }
func (c *CPU) D() uint8       { return c.d }
func (c *CPU) E() uint8       { return c.e }
func (c *CPU) H() uint8       { return c.h }
func (c *CPU) L() uint8       { return c.l }
func (c *CPU) SP() uint16     { return c.sp }
func (c *CPU) PC() uint16     { return c.pc }
func (c *CPU) IME() bool      { return c.ime }
func (c *CPU) Halted() bool   { return c.halted }
func (c *CPU) Locked() bool   { return c.locked }
func (c *CPU) Cycles() uint64 { return c.cycles }

// FlagString renders the F register as "ZNHC" with dashes for clear flags.
func (c *CPU) FlagString() string {
	names := [4]byte{'Z', 'N', 'H', 'C'}
	flags := [4]Flag{zeroFlag, subFlag, halfCarryFlag, carryFlag}
	out := []byte("----")
	for i, flag := range flags {
		if c.isSetFlag(flag) {
			out[i] = names[i]
		}
	}
	return string(out)
}

// State is the serializable snapshot of the CPU.
type State struct {
	A, F, B, C, D, E, H, L uint8
	SP, PC                 uint16

	IME       bool
	EIPending bool
	Halted    bool
	Stopped   bool
	Locked    bool
	HaltBug   bool

	Cycles uint64
}

// Save captures the CPU state.
func (c *CPU) Save() State {
	return State{
		A: c.a, F: c.f, B: c.b, C: c.c, D: c.d, E: c.e, H: c.h, L: c.l,
		SP: c.sp, PC: c.pc,
		IME:       c.ime,
		EIPending: c.eiPending,
		Halted:    c.halted,
		Stopped:   c.stopped,
		Locked:    c.locked,
		HaltBug:   c.haltBug,
		Cycles:    c.cycles,
	}
}

// Restore replaces the CPU state.
func (c *CPU) Restore(s State) {
	c.a, c.f, c.b, c.c = s.A, s.F&0xF0, s.B, s.C
	c.d, c.e, c.h, c.l = s.D, s.E, s.H, s.L
	c.sp, c.pc = s.SP, s.PC
	c.ime = s.IME
	c.eiPending = s.EIPending
	c.halted = s.Halted
	c.stopped = s.Stopped
	c.locked = s.Locked
	c.haltBug = s.HaltBug
	c.cycles = s.Cycles
}
