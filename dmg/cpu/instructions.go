package cpu

import "github.com/valdr/dotmatrix/dmg/bit"

// Shared instruction bodies. Each opcode function delegates here; flag
// behavior follows the documented per-instruction truth tables.

func (c *CPU) pushStack(value uint16) {
	c.sp--
	c.bus.Write(c.sp, bit.High(value))
	c.sp--
	c.bus.Write(c.sp, bit.Low(value))
}

func (c *CPU) popStack() uint16 {
	low := c.bus.Read(c.sp)
	c.sp++
	high := c.bus.Read(c.sp)
	c.sp++
	return bit.Combine(high, low)
}

func (c *CPU) inc(r *uint8) {
	*r++
	value := *r

	c.setFlagToCondition(zeroFlag, value == 0)
	c.setFlagToCondition(halfCarryFlag, value&0xF == 0)
	c.resetFlag(subFlag)
}

func (c *CPU) dec(r *uint8) {
	*r--
	value := *r

	c.setFlagToCondition(zeroFlag, value == 0)
	c.setFlagToCondition(halfCarryFlag, value&0xF == 0xF)
	c.setFlag(subFlag)
}

// rlc rotates left through bit 7 into carry. Sets Z; the RLCA form resets
// Z afterwards.
func (c *CPU) rlc(r *uint8) {
	value := *r
	carry := value >> 7

	value = value<<1 | carry
	*r = value

	c.setFlagToCondition(zeroFlag, value == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, carry == 1)
}

// rl rotates left through the carry flag.
func (c *CPU) rl(r *uint8) {
	value := *r
	oldCarry := c.flagToBit(carryFlag)
	newCarry := value >> 7

	value = value<<1 | oldCarry
	*r = value

	c.setFlagToCondition(zeroFlag, value == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, newCarry == 1)
}

// rrc rotates right through bit 0 into carry.
func (c *CPU) rrc(r *uint8) {
	value := *r
	carry := value & 1

	value = value>>1 | carry<<7
	*r = value

	c.setFlagToCondition(zeroFlag, value == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, carry == 1)
}

// rr rotates right through the carry flag.
func (c *CPU) rr(r *uint8) {
	value := *r
	oldCarry := c.flagToBit(carryFlag)
	newCarry := value & 1

	value = value>>1 | oldCarry<<7
	*r = value

	c.setFlagToCondition(zeroFlag, value == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, newCarry == 1)
}

// sla shifts left arithmetic; bit 0 becomes 0.
func (c *CPU) sla(r *uint8) {
	value := *r
	carry := value >> 7

	value <<= 1
	*r = value

	c.setFlagToCondition(zeroFlag, value == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, carry == 1)
}

// sra shifts right arithmetic; bit 7 keeps its value.
func (c *CPU) sra(r *uint8) {
	value := *r
	carry := value & 1

	value = value>>1 | value&0x80
	*r = value

	c.setFlagToCondition(zeroFlag, value == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, carry == 1)
}

// srl shifts right logical; bit 7 becomes 0.
func (c *CPU) srl(r *uint8) {
	value := *r
	carry := value & 1

	value >>= 1
	*r = value

	c.setFlagToCondition(zeroFlag, value == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, carry == 1)
}

// swap exchanges the nibbles.
func (c *CPU) swap(r *uint8) {
	value := *r<<4 | *r>>4
	*r = value

	c.setFlagToCondition(zeroFlag, value == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.resetFlag(carryFlag)
}

// bitTest sets Z from the complement of the tested bit; carry is untouched.
func (c *CPU) bitTest(index uint8, value uint8) {
	c.setFlagToCondition(zeroFlag, !bit.IsSet(index, value))
	c.resetFlag(subFlag)
	c.setFlag(halfCarryFlag)
}

func (c *CPU) addToA(value uint8) {
	a := c.a
	result := a + value

	c.setFlagToCondition(zeroFlag, result == 0)
	c.resetFlag(subFlag)
	c.setFlagToCondition(halfCarryFlag, (a&0xF)+(value&0xF) > 0xF)
	c.setFlagToCondition(carryFlag, uint16(a)+uint16(value) > 0xFF)

	c.a = result
}

func (c *CPU) adcToA(value uint8) {
	a := c.a
	carry := c.flagToBit(carryFlag)
	result := a + value + carry

	c.setFlagToCondition(zeroFlag, result == 0)
	c.resetFlag(subFlag)
	c.setFlagToCondition(halfCarryFlag, (a&0xF)+(value&0xF)+carry > 0xF)
	c.setFlagToCondition(carryFlag, uint16(a)+uint16(value)+uint16(carry) > 0xFF)

	c.a = result
}

func (c *CPU) subFromA(value uint8) {
	c.a = c.compare(value)
}

func (c *CPU) sbcFromA(value uint8) {
	a := c.a
	carry := c.flagToBit(carryFlag)
	result := a - value - carry

	c.setFlagToCondition(zeroFlag, result == 0)
	c.setFlag(subFlag)
	c.setFlagToCondition(halfCarryFlag, int(a&0xF)-int(value&0xF)-int(carry) < 0)
	c.setFlagToCondition(carryFlag, int(a)-int(value)-int(carry) < 0)

	c.a = result
}

// compare is SUB without the store; CP uses it directly.
func (c *CPU) compare(value uint8) uint8 {
	a := c.a
	result := a - value

	c.setFlagToCondition(zeroFlag, result == 0)
	c.setFlag(subFlag)
	c.setFlagToCondition(halfCarryFlag, a&0xF < value&0xF)
	c.setFlagToCondition(carryFlag, a < value)

	return result
}

func (c *CPU) andWithA(value uint8) {
	c.a &= value

	c.setFlagToCondition(zeroFlag, c.a == 0)
	c.resetFlag(subFlag)
	c.setFlag(halfCarryFlag)
	c.resetFlag(carryFlag)
}

func (c *CPU) orWithA(value uint8) {
	c.a |= value

	c.setFlagToCondition(zeroFlag, c.a == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.resetFlag(carryFlag)
}

func (c *CPU) xorWithA(value uint8) {
	c.a ^= value

	c.setFlagToCondition(zeroFlag, c.a == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.resetFlag(carryFlag)
}

// addToHL adds a 16-bit value into HL. Z is untouched.
func (c *CPU) addToHL(value uint16) {
	hl := c.getHL()

	c.resetFlag(subFlag)
	c.setFlagToCondition(halfCarryFlag, (hl&0xFFF)+(value&0xFFF) > 0xFFF)
	c.setFlagToCondition(carryFlag, uint32(hl)+uint32(value) > 0xFFFF)

	c.setHL(hl + value)
}

// addSPSigned computes SP plus a signed displacement, setting H and C from
// the low-byte addition as hardware does; Z and N are always reset. Both
// ADD SP,e and LD HL,SP+e share this rule.
func (c *CPU) addSPSigned(displacement int8) uint16 {
	sp := c.sp
	d := uint16(displacement)

	c.resetFlag(zeroFlag)
	c.resetFlag(subFlag)
	c.setFlagToCondition(halfCarryFlag, (sp&0xF)+(d&0xF) > 0xF)
	c.setFlagToCondition(carryFlag, (sp&0xFF)+(d&0xFF) > 0xFF)

	return sp + d
}

// daa adjusts A back to packed BCD after an arithmetic op, driven by the N,
// H and C flags the op left behind.
func (c *CPU) daa() {
	a := c.a

	if !c.isSetFlag(subFlag) {
		if c.isSetFlag(carryFlag) || a > 0x99 {
			a += 0x60
			c.setFlag(carryFlag)
		}
		if c.isSetFlag(halfCarryFlag) || a&0xF > 0x9 {
			a += 0x06
		}
	} else {
		if c.isSetFlag(carryFlag) {
			a -= 0x60
		}
		if c.isSetFlag(halfCarryFlag) {
			a -= 0x06
		}
	}

	c.setFlagToCondition(zeroFlag, a == 0)
	c.resetFlag(halfCarryFlag)
	c.a = a
}

// jr applies a relative jump from the address after the displacement byte.
func (c *CPU) jr() {
	displacement := c.readSignedImmediate()
	c.pc = uint16(int32(c.pc) + int32(displacement))
}

// jrIf consumes the displacement either way; the jump costs one extra
// M-cycle when taken.
func (c *CPU) jrIf(condition bool) int {
	if condition {
		c.jr()
		return 12
	}
	c.pc++
	return 8
}

func (c *CPU) jp() {
	c.pc = c.readImmediateWord()
}

func (c *CPU) jpIf(condition bool) int {
	if condition {
		c.jp()
		return 16
	}
	c.pc += 2
	return 12
}

func (c *CPU) call() {
	target := c.readImmediateWord()
	c.pushStack(c.pc)
	c.pc = target
}

func (c *CPU) callIf(condition bool) int {
	if condition {
		c.call()
		return 24
	}
	c.pc += 2
	return 12
}

func (c *CPU) ret() {
	c.pc = c.popStack()
}

func (c *CPU) retIf(condition bool) int {
	if condition {
		c.ret()
		return 20
	}
	return 8
}

// rst pushes PC and jumps to one of the fixed restart vectors.
func (c *CPU) rst(vector uint16) {
	c.pushStack(c.pc)
	c.pc = vector
}

// readHL reads the byte HL points at.
func (c *CPU) readHL() uint8 {
	return c.bus.Read(c.getHL())
}

// writeHL writes the byte HL points at.
func (c *CPU) writeHL(value uint8) {
	c.bus.Write(c.getHL(), value)
}

// lock wedges the core. Undefined opcodes hang real hardware until power
// cycle; locking is the deterministic behavior this core picks for them.
func (c *CPU) lock() {
	c.locked = true
}
