package cpu

import "github.com/valdr/dotmatrix/dmg/bit"

// Base opcode page. One function per opcode; each returns its T-cycle cost,
// with conditional control flow returning the taken/not-taken cost itself.

// 0x00: NOP
func opcode0x00(_ *CPU) int {
	return 4
}

// 0x01: LD BC, nn
func opcode0x01(cpu *CPU) int {
	cpu.setBC(cpu.readImmediateWord())
	return 12
}

// 0x02: LD (BC), A
func opcode0x02(cpu *CPU) int {
	cpu.bus.Write(cpu.getBC(), cpu.a)
	return 8
}

// 0x03: INC BC
func opcode0x03(cpu *CPU) int {
	cpu.setBC(cpu.getBC() + 1)
	return 8
}

// 0x04: INC B
func opcode0x04(cpu *CPU) int {
	cpu.inc(&cpu.b)
	return 4
}

// 0x05: DEC B
func opcode0x05(cpu *CPU) int {
	cpu.dec(&cpu.b)
	return 4
}

// 0x06: LD B, n
func opcode0x06(cpu *CPU) int {
	cpu.b = cpu.readImmediate()
	return 8
}

// 0x07: RLCA
func opcode0x07(cpu *CPU) int {
	cpu.rlc(&cpu.a)
	cpu.resetFlag(zeroFlag)
	return 4
}

// 0x08: LD (nn), SP
func opcode0x08(cpu *CPU) int {
	target := cpu.readImmediateWord()
	cpu.bus.Write(target, bit.Low(cpu.sp))
	cpu.bus.Write(target+1, bit.High(cpu.sp))
	return 20
}

// 0x09: ADD HL, BC
func opcode0x09(cpu *CPU) int {
	cpu.addToHL(cpu.getBC())
	return 8
}

// 0x0A: LD A, (BC)
func opcode0x0A(cpu *CPU) int {
	cpu.a = cpu.bus.Read(cpu.getBC())
	return 8
}

// 0x0B: DEC BC
func opcode0x0B(cpu *CPU) int {
	cpu.setBC(cpu.getBC() - 1)
	return 8
}

// 0x0C: INC C
func opcode0x0C(cpu *CPU) int {
	cpu.inc(&cpu.c)
	return 4
}

// 0x0D: DEC C
func opcode0x0D(cpu *CPU) int {
	cpu.dec(&cpu.c)
	return 4
}

// 0x0E: LD C, n
func opcode0x0E(cpu *CPU) int {
	cpu.c = cpu.readImmediate()
	return 8
}

// 0x0F: RRCA
func opcode0x0F(cpu *CPU) int {
	cpu.rrc(&cpu.a)
	cpu.resetFlag(zeroFlag)
	return 4
}

// 0x10: STOP
func opcode0x10(cpu *CPU) int {
	cpu.stopped = true
	cpu.pc++ // padding byte
	return 4
}

// 0x11: LD DE, nn
func opcode0x11(cpu *CPU) int {
	cpu.setDE(cpu.readImmediateWord())
	return 12
}

// 0x12: LD (DE), A
func opcode0x12(cpu *CPU) int {
	cpu.bus.Write(cpu.getDE(), cpu.a)
	return 8
}

// 0x13: INC DE
func opcode0x13(cpu *CPU) int {
	cpu.setDE(cpu.getDE() + 1)
	return 8
}

// 0x14: INC D
func opcode0x14(cpu *CPU) int {
	cpu.inc(&cpu.d)
	return 4
}

// 0x15: DEC D
func opcode0x15(cpu *CPU) int {
	cpu.dec(&cpu.d)
	return 4
}

// 0x16: LD D, n
func opcode0x16(cpu *CPU) int {
	cpu.d = cpu.readImmediate()
	return 8
}

// 0x17: RLA
func opcode0x17(cpu *CPU) int {
	cpu.rl(&cpu.a)
	cpu.resetFlag(zeroFlag)
	return 4
}

// 0x18: JR e
func opcode0x18(cpu *CPU) int {
	cpu.jr()
	return 12
}

// 0x19: ADD HL, DE
func opcode0x19(cpu *CPU) int {
	cpu.addToHL(cpu.getDE())
	return 8
}

// 0x1A: LD A, (DE)
func opcode0x1A(cpu *CPU) int {
	cpu.a = cpu.bus.Read(cpu.getDE())
	return 8
}

// 0x1B: DEC DE
func opcode0x1B(cpu *CPU) int {
	cpu.setDE(cpu.getDE() - 1)
	return 8
}

// 0x1C: INC E
func opcode0x1C(cpu *CPU) int {
	cpu.inc(&cpu.e)
	return 4
}

// 0x1D: DEC E
func opcode0x1D(cpu *CPU) int {
	cpu.dec(&cpu.e)
	return 4
}

// 0x1E: LD E, n
func opcode0x1E(cpu *CPU) int {
	cpu.e = cpu.readImmediate()
	return 8
}

// 0x1F: RRA
func opcode0x1F(cpu *CPU) int {
	cpu.rr(&cpu.a)
	cpu.resetFlag(zeroFlag)
	return 4
}

// 0x20: JR NZ, e
func opcode0x20(cpu *CPU) int {
	return cpu.jrIf(!cpu.isSetFlag(zeroFlag))
}

// 0x21: LD HL, nn
func opcode0x21(cpu *CPU) int {
	cpu.setHL(cpu.readImmediateWord())
	return 12
}

// 0x22: LD (HL+), A
func opcode0x22(cpu *CPU) int {
	cpu.writeHL(cpu.a)
	cpu.setHL(cpu.getHL() + 1)
	return 8
}

// 0x23: INC HL
func opcode0x23(cpu *CPU) int {
	cpu.setHL(cpu.getHL() + 1)
	return 8
}

// 0x24: INC H
func opcode0x24(cpu *CPU) int {
	cpu.inc(&cpu.h)
	return 4
}

// 0x25: DEC H
func opcode0x25(cpu *CPU) int {
	cpu.dec(&cpu.h)
	return 4
}

// 0x26: LD H, n
func opcode0x26(cpu *CPU) int {
	cpu.h = cpu.readImmediate()
	return 8
}

// 0x27: DAA
func opcode0x27(cpu *CPU) int {
	cpu.daa()
	return 4
}

// 0x28: JR Z, e
func opcode0x28(cpu *CPU) int {
	return cpu.jrIf(cpu.isSetFlag(zeroFlag))
}

// 0x29: ADD HL, HL
func opcode0x29(cpu *CPU) int {
	cpu.addToHL(cpu.getHL())
	return 8
}

// 0x2A: LD A, (HL+)
func opcode0x2A(cpu *CPU) int {
	cpu.a = cpu.readHL()
	cpu.setHL(cpu.getHL() + 1)
	return 8
}

// 0x2B: DEC HL
func opcode0x2B(cpu *CPU) int {
	cpu.setHL(cpu.getHL() - 1)
	return 8
}

// 0x2C: INC L
func opcode0x2C(cpu *CPU) int {
	cpu.inc(&cpu.l)
	return 4
}

// 0x2D: DEC L
func opcode0x2D(cpu *CPU) int {
	cpu.dec(&cpu.l)
	return 4
}

// 0x2E: LD L, n
func opcode0x2E(cpu *CPU) int {
	cpu.l = cpu.readImmediate()
	return 8
}

// 0x2F: CPL
func opcode0x2F(cpu *CPU) int {
	cpu.a = ^cpu.a
	cpu.setFlag(subFlag)
	cpu.setFlag(halfCarryFlag)
	return 4
}

// 0x30: JR NC, e
func opcode0x30(cpu *CPU) int {
	return cpu.jrIf(!cpu.isSetFlag(carryFlag))
}

// 0x31: LD SP, nn
func opcode0x31(cpu *CPU) int {
	cpu.sp = cpu.readImmediateWord()
	return 12
}

// 0x32: LD (HL-), A
func opcode0x32(cpu *CPU) int {
	cpu.writeHL(cpu.a)
	cpu.setHL(cpu.getHL() - 1)
	return 8
}

// 0x33: INC SP
func opcode0x33(cpu *CPU) int {
	cpu.sp++
	return 8
}

// 0x34: INC (HL)
func opcode0x34(cpu *CPU) int {
	value := cpu.readHL()
	cpu.inc(&value)
	cpu.writeHL(value)
	return 12
}

// 0x35: DEC (HL)
func opcode0x35(cpu *CPU) int {
	value := cpu.readHL()
	cpu.dec(&value)
	cpu.writeHL(value)
	return 12
}

// 0x36: LD (HL), n
func opcode0x36(cpu *CPU) int {
	cpu.writeHL(cpu.readImmediate())
	return 12
}

// 0x37: SCF
func opcode0x37(cpu *CPU) int {
	cpu.resetFlag(subFlag)
	cpu.resetFlag(halfCarryFlag)
	cpu.setFlag(carryFlag)
	return 4
}

// 0x38: JR C, e
func opcode0x38(cpu *CPU) int {
	return cpu.jrIf(cpu.isSetFlag(carryFlag))
}

// 0x39: ADD HL, SP
func opcode0x39(cpu *CPU) int {
	cpu.addToHL(cpu.sp)
	return 8
}

// 0x3A: LD A, (HL-)
func opcode0x3A(cpu *CPU) int {
	cpu.a = cpu.readHL()
	cpu.setHL(cpu.getHL() - 1)
	return 8
}

// 0x3B: DEC SP
func opcode0x3B(cpu *CPU) int {
	cpu.sp--
	return 8
}

// 0x3C: INC A
func opcode0x3C(cpu *CPU) int {
	cpu.inc(&cpu.a)
	return 4
}

// 0x3D: DEC A
func opcode0x3D(cpu *CPU) int {
	cpu.dec(&cpu.a)
	return 4
}

// 0x3E: LD A, n
func opcode0x3E(cpu *CPU) int {
	cpu.a = cpu.readImmediate()
	return 8
}

// 0x3F: CCF
func opcode0x3F(cpu *CPU) int {
	cpu.resetFlag(subFlag)
	cpu.resetFlag(halfCarryFlag)
	cpu.setFlagToCondition(carryFlag, !cpu.isSetFlag(carryFlag))
	return 4
}

// 0x40: LD B, B
func opcode0x40(cpu *CPU) int {
	cpu.b = cpu.b
	return 4
}

// 0x41: LD B, C
func opcode0x41(cpu *CPU) int {
	cpu.b = cpu.c
	return 4
}

// 0x42: LD B, D
func opcode0x42(cpu *CPU) int {
	cpu.b = cpu.d
	return 4
}

// 0x43: LD B, E
func opcode0x43(cpu *CPU) int {
	cpu.b = cpu.e
	return 4
}

// 0x44: LD B, H
func opcode0x44(cpu *CPU) int {
	cpu.b = cpu.h
	return 4
}

// 0x45: LD B, L
func opcode0x45(cpu *CPU) int {
	cpu.b = cpu.l
	return 4
}

// 0x46: LD B, (HL)
func opcode0x46(cpu *CPU) int {
	cpu.b = cpu.readHL()
	return 8
}

// 0x47: LD B, A
func opcode0x47(cpu *CPU) int {
	cpu.b = cpu.a
	return 4
}

// 0x48: LD C, B
func opcode0x48(cpu *CPU) int {
	cpu.c = cpu.b
	return 4
}

// 0x49: LD C, C
func opcode0x49(cpu *CPU) int {
	cpu.c = cpu.c
	return 4
}

// 0x4A: LD C, D
func opcode0x4A(cpu *CPU) int {
	cpu.c = cpu.d
	return 4
}

// 0x4B: LD C, E
func opcode0x4B(cpu *CPU) int {
	cpu.c = cpu.e
	return 4
}

// 0x4C: LD C, H
func opcode0x4C(cpu *CPU) int {
	cpu.c = cpu.h
	return 4
}

// 0x4D: LD C, L
func opcode0x4D(cpu *CPU) int {
	cpu.c = cpu.l
	return 4
}

// 0x4E: LD C, (HL)
func opcode0x4E(cpu *CPU) int {
	cpu.c = cpu.readHL()
	return 8
}

// 0x4F: LD C, A
func opcode0x4F(cpu *CPU) int {
	cpu.c = cpu.a
	return 4
}

// 0x50: LD D, B
func opcode0x50(cpu *CPU) int {
	cpu.d = cpu.b
	return 4
}

// 0x51: LD D, C
func opcode0x51(cpu *CPU) int {
	cpu.d = cpu.c
	return 4
}

// 0x52: LD D, D
func opcode0x52(cpu *CPU) int {
	cpu.d = cpu.d
	return 4
}

// 0x53: LD D, E
func opcode0x53(cpu *CPU) int {
	cpu.d = cpu.e
	return 4
}

// 0x54: LD D, H
func opcode0x54(cpu *CPU) int {
	cpu.d = cpu.h
	return 4
}

// 0x55: LD D, L
func opcode0x55(cpu *CPU) int {
	cpu.d = cpu.l
	return 4
}

// 0x56: LD D, (HL)
func opcode0x56(cpu *CPU) int {
	cpu.d = cpu.readHL()
	return 8
}

// 0x57: LD D, A
func opcode0x57(cpu *CPU) int {
	cpu.d = cpu.a
	return 4
}

// 0x58: LD E, B
func opcode0x58(cpu *CPU) int {
	cpu.e = cpu.b
	return 4
}

// 0x59: LD E, C
func opcode0x59(cpu *CPU) int {
	cpu.e = cpu.c
	return 4
}

// 0x5A: LD E, D
func opcode0x5A(cpu *CPU) int {
	cpu.e = cpu.d
	return 4
}

// 0x5B: LD E, E
func opcode0x5B(cpu *CPU) int {
	cpu.e = cpu.e
	return 4
}

// 0x5C: LD E, H
func opcode0x5C(cpu *CPU) int {
	cpu.e = cpu.h
	return 4
}

// 0x5D: LD E, L
func opcode0x5D(cpu *CPU) int {
	cpu.e = cpu.l
	return 4
}

// 0x5E: LD E, (HL)
func opcode0x5E(cpu *CPU) int {
	cpu.e = cpu.readHL()
	return 8
}

// 0x5F: LD E, A
func opcode0x5F(cpu *CPU) int {
	cpu.e = cpu.a
	return 4
}

// 0x60: LD H, B
func opcode0x60(cpu *CPU) int {
	cpu.h = cpu.b
	return 4
}

// 0x61: LD H, C
func opcode0x61(cpu *CPU) int {
	cpu.h = cpu.c
	return 4
}

// 0x62: LD H, D
func opcode0x62(cpu *CPU) int {
	cpu.h = cpu.d
	return 4
}

// 0x63: LD H, E
func opcode0x63(cpu *CPU) int {
	cpu.h = cpu.e
	return 4
}

// 0x64: LD H, H
func opcode0x64(cpu *CPU) int {
	cpu.h = cpu.h
	return 4
}

// 0x65: LD H, L
func opcode0x65(cpu *CPU) int {
	cpu.h = cpu.l
	return 4
}

// 0x66: LD H, (HL)
func opcode0x66(cpu *CPU) int {
	cpu.h = cpu.readHL()
	return 8
}

// 0x67: LD H, A
func opcode0x67(cpu *CPU) int {
	cpu.h = cpu.a
	return 4
}

// 0x68: LD L, B
func opcode0x68(cpu *CPU) int {
	cpu.l = cpu.b
	return 4
}

// 0x69: LD L, C
func opcode0x69(cpu *CPU) int {
	cpu.l = cpu.c
	return 4
}

// 0x6A: LD L, D
func opcode0x6A(cpu *CPU) int {
	cpu.l = cpu.d
	return 4
}

// 0x6B: LD L, E
func opcode0x6B(cpu *CPU) int {
	cpu.l = cpu.e
	return 4
}

// 0x6C: LD L, H
func opcode0x6C(cpu *CPU) int {
	cpu.l = cpu.h
	return 4
}

// 0x6D: LD L, L
func opcode0x6D(cpu *CPU) int {
	cpu.l = cpu.l
	return 4
}

// 0x6E: LD L, (HL)
func opcode0x6E(cpu *CPU) int {
	cpu.l = cpu.readHL()
	return 8
}

// 0x6F: LD L, A
func opcode0x6F(cpu *CPU) int {
	cpu.l = cpu.a
	return 4
}

// 0x70: LD (HL), B
func opcode0x70(cpu *CPU) int {
	cpu.writeHL(cpu.b)
	return 8
}

// 0x71: LD (HL), C
func opcode0x71(cpu *CPU) int {
	cpu.writeHL(cpu.c)
	return 8
}

// 0x72: LD (HL), D
func opcode0x72(cpu *CPU) int {
	cpu.writeHL(cpu.d)
	return 8
}

// 0x73: LD (HL), E
func opcode0x73(cpu *CPU) int {
	cpu.writeHL(cpu.e)
	return 8
}

// 0x74: LD (HL), H
func opcode0x74(cpu *CPU) int {
	cpu.writeHL(cpu.h)
	return 8
}

// 0x75: LD (HL), L
func opcode0x75(cpu *CPU) int {
	cpu.writeHL(cpu.l)
	return 8
}

// 0x76: HALT
func opcode0x76(cpu *CPU) int {
	cpu.halt()
	return 4
}

// 0x77: LD (HL), A
func opcode0x77(cpu *CPU) int {
	cpu.writeHL(cpu.a)
	return 8
}

// 0x78: LD A, B
func opcode0x78(cpu *CPU) int {
	cpu.a = cpu.b
	return 4
}

// 0x79: LD A, C
func opcode0x79(cpu *CPU) int {
	cpu.a = cpu.c
	return 4
}

// 0x7A: LD A, D
func opcode0x7A(cpu *CPU) int {
	cpu.a = cpu.d
	return 4
}

// 0x7B: LD A, E
func opcode0x7B(cpu *CPU) int {
	cpu.a = cpu.e
	return 4
}

// 0x7C: LD A, H
func opcode0x7C(cpu *CPU) int {
	cpu.a = cpu.h
	return 4
}

// 0x7D: LD A, L
func opcode0x7D(cpu *CPU) int {
	cpu.a = cpu.l
	return 4
}

// 0x7E: LD A, (HL)
func opcode0x7E(cpu *CPU) int {
	cpu.a = cpu.readHL()
	return 8
}

// 0x7F: LD A, A
func opcode0x7F(cpu *CPU) int {
	cpu.a = cpu.a
	return 4
}

// 0x80: ADD A, B
func opcode0x80(cpu *CPU) int {
	cpu.addToA(cpu.b)
	return 4
}

// 0x81: ADD A, C
func opcode0x81(cpu *CPU) int {
	cpu.addToA(cpu.c)
	return 4
}

// 0x82: ADD A, D
func opcode0x82(cpu *CPU) int {
	cpu.addToA(cpu.d)
	return 4
}

// 0x83: ADD A, E
func opcode0x83(cpu *CPU) int {
	cpu.addToA(cpu.e)
	return 4
}

// 0x84: ADD A, H
func opcode0x84(cpu *CPU) int {
	cpu.addToA(cpu.h)
	return 4
}

// 0x85: ADD A, L
func opcode0x85(cpu *CPU) int {
	cpu.addToA(cpu.l)
	return 4
}

// 0x86: ADD A, (HL)
func opcode0x86(cpu *CPU) int {
	cpu.addToA(cpu.readHL())
	return 8
}

// 0x87: ADD A, A
func opcode0x87(cpu *CPU) int {
	cpu.addToA(cpu.a)
	return 4
}

// 0x88: ADC A, B
func opcode0x88(cpu *CPU) int {
	cpu.adcToA(cpu.b)
	return 4
}

// 0x89: ADC A, C
func opcode0x89(cpu *CPU) int {
	cpu.adcToA(cpu.c)
	return 4
}

// 0x8A: ADC A, D
func opcode0x8A(cpu *CPU) int {
	cpu.adcToA(cpu.d)
	return 4
}

// 0x8B: ADC A, E
func opcode0x8B(cpu *CPU) int {
	cpu.adcToA(cpu.e)
	return 4
}

// 0x8C: ADC A, H
func opcode0x8C(cpu *CPU) int {
	cpu.adcToA(cpu.h)
	return 4
}

// 0x8D: ADC A, L
func opcode0x8D(cpu *CPU) int {
	cpu.adcToA(cpu.l)
	return 4
}

// 0x8E: ADC A, (HL)
func opcode0x8E(cpu *CPU) int {
	cpu.adcToA(cpu.readHL())
	return 8
}

// 0x8F: ADC A, A
func opcode0x8F(cpu *CPU) int {
	cpu.adcToA(cpu.a)
	return 4
}

// 0x90: SUB B
func opcode0x90(cpu *CPU) int {
	cpu.subFromA(cpu.b)
	return 4
}

// 0x91: SUB C
func opcode0x91(cpu *CPU) int {
	cpu.subFromA(cpu.c)
	return 4
}

// 0x92: SUB D
func opcode0x92(cpu *CPU) int {
	cpu.subFromA(cpu.d)
	return 4
}

// 0x93: SUB E
func opcode0x93(cpu *CPU) int {
	cpu.subFromA(cpu.e)
	return 4
}

// 0x94: SUB H
func opcode0x94(cpu *CPU) int {
	cpu.subFromA(cpu.h)
	return 4
}

// 0x95: SUB L
func opcode0x95(cpu *CPU) int {
	cpu.subFromA(cpu.l)
	return 4
}

// 0x96: SUB (HL)
func opcode0x96(cpu *CPU) int {
	cpu.subFromA(cpu.readHL())
	return 8
}

// 0x97: SUB A
func opcode0x97(cpu *CPU) int {
	cpu.subFromA(cpu.a)
	return 4
}

// 0x98: SBC A, B
func opcode0x98(cpu *CPU) int {
	cpu.sbcFromA(cpu.b)
	return 4
}

// 0x99: SBC A, C
func opcode0x99(cpu *CPU) int {
	cpu.sbcFromA(cpu.c)
	return 4
}

// 0x9A: SBC A, D
func opcode0x9A(cpu *CPU) int {
	cpu.sbcFromA(cpu.d)
	return 4
}

// 0x9B: SBC A, E
func opcode0x9B(cpu *CPU) int {
	cpu.sbcFromA(cpu.e)
	return 4
}

// 0x9C: SBC A, H
func opcode0x9C(cpu *CPU) int {
	cpu.sbcFromA(cpu.h)
	return 4
}

// 0x9D: SBC A, L
func opcode0x9D(cpu *CPU) int {
	cpu.sbcFromA(cpu.l)
	return 4
}

// 0x9E: SBC A, (HL)
func opcode0x9E(cpu *CPU) int {
	cpu.sbcFromA(cpu.readHL())
	return 8
}

// 0x9F: SBC A, A
func opcode0x9F(cpu *CPU) int {
	cpu.sbcFromA(cpu.a)
	return 4
}

// 0xA0: AND B
func opcode0xA0(cpu *CPU) int {
	cpu.andWithA(cpu.b)
	return 4
}

// 0xA1: AND C
func opcode0xA1(cpu *CPU) int {
	cpu.andWithA(cpu.c)
	return 4
}

// 0xA2: AND D
func opcode0xA2(cpu *CPU) int {
	cpu.andWithA(cpu.d)
	return 4
}

// 0xA3: AND E
func opcode0xA3(cpu *CPU) int {
	cpu.andWithA(cpu.e)
	return 4
}

// 0xA4: AND H
func opcode0xA4(cpu *CPU) int {
	cpu.andWithA(cpu.h)
	return 4
}

// 0xA5: AND L
func opcode0xA5(cpu *CPU) int {
	cpu.andWithA(cpu.l)
	return 4
}

// 0xA6: AND (HL)
func opcode0xA6(cpu *CPU) int {
	cpu.andWithA(cpu.readHL())
	return 8
}

// 0xA7: AND A
func opcode0xA7(cpu *CPU) int {
	cpu.andWithA(cpu.a)
	return 4
}

// 0xA8: XOR B
func opcode0xA8(cpu *CPU) int {
	cpu.xorWithA(cpu.b)
	return 4
}

// 0xA9: XOR C
func opcode0xA9(cpu *CPU) int {
	cpu.xorWithA(cpu.c)
	return 4
}

// 0xAA: XOR D
func opcode0xAA(cpu *CPU) int {
	cpu.xorWithA(cpu.d)
	return 4
}

// 0xAB: XOR E
func opcode0xAB(cpu *CPU) int {
	cpu.xorWithA(cpu.e)
	return 4
}

// 0xAC: XOR H
func opcode0xAC(cpu *CPU) int {
	cpu.xorWithA(cpu.h)
	return 4
}

// 0xAD: XOR L
func opcode0xAD(cpu *CPU) int {
	cpu.xorWithA(cpu.l)
	return 4
}

// 0xAE: XOR (HL)
func opcode0xAE(cpu *CPU) int {
	cpu.xorWithA(cpu.readHL())
	return 8
}

// 0xAF: XOR A
func opcode0xAF(cpu *CPU) int {
	cpu.xorWithA(cpu.a)
	return 4
}

// 0xB0: OR B
func opcode0xB0(cpu *CPU) int {
	cpu.orWithA(cpu.b)
	return 4
}

// 0xB1: OR C
func opcode0xB1(cpu *CPU) int {
	cpu.orWithA(cpu.c)
	return 4
}

// 0xB2: OR D
func opcode0xB2(cpu *CPU) int {
	cpu.orWithA(cpu.d)
	return 4
}

// 0xB3: OR E
func opcode0xB3(cpu *CPU) int {
	cpu.orWithA(cpu.e)
	return 4
}

// 0xB4: OR H
func opcode0xB4(cpu *CPU) int {
	cpu.orWithA(cpu.h)
	return 4
}

// 0xB5: OR L
func opcode0xB5(cpu *CPU) int {
	cpu.orWithA(cpu.l)
	return 4
}

// 0xB6: OR (HL)
func opcode0xB6(cpu *CPU) int {
	cpu.orWithA(cpu.readHL())
	return 8
}

// 0xB7: OR A
func opcode0xB7(cpu *CPU) int {
	cpu.orWithA(cpu.a)
	return 4
}

// 0xB8: CP B
func opcode0xB8(cpu *CPU) int {
	cpu.compare(cpu.b)
	return 4
}

// 0xB9: CP C
func opcode0xB9(cpu *CPU) int {
	cpu.compare(cpu.c)
	return 4
}

// 0xBA: CP D
func opcode0xBA(cpu *CPU) int {
	cpu.compare(cpu.d)
	return 4
}

// 0xBB: CP E
func opcode0xBB(cpu *CPU) int {
	cpu.compare(cpu.e)
	return 4
}

// 0xBC: CP H
func opcode0xBC(cpu *CPU) int {
	cpu.compare(cpu.h)
	return 4
}

// 0xBD: CP L
func opcode0xBD(cpu *CPU) int {
	cpu.compare(cpu.l)
	return 4
}

// 0xBE: CP (HL)
func opcode0xBE(cpu *CPU) int {
	cpu.compare(cpu.readHL())
	return 8
}

// 0xBF: CP A
func opcode0xBF(cpu *CPU) int {
	cpu.compare(cpu.a)
	return 4
}

// 0xC0: RET NZ
func opcode0xC0(cpu *CPU) int {
	return cpu.retIf(!cpu.isSetFlag(zeroFlag))
}

// 0xC1: POP BC
func opcode0xC1(cpu *CPU) int {
	cpu.setBC(cpu.popStack())
	return 12
}

// 0xC2: JP NZ, nn
func opcode0xC2(cpu *CPU) int {
	return cpu.jpIf(!cpu.isSetFlag(zeroFlag))
}

// 0xC3: JP nn
func opcode0xC3(cpu *CPU) int {
	cpu.jp()
	return 16
}

// 0xC4: CALL NZ, nn
func opcode0xC4(cpu *CPU) int {
	return cpu.callIf(!cpu.isSetFlag(zeroFlag))
}

// 0xC5: PUSH BC
func opcode0xC5(cpu *CPU) int {
	cpu.pushStack(cpu.getBC())
	return 16
}

// 0xC6: ADD A, n
func opcode0xC6(cpu *CPU) int {
	cpu.addToA(cpu.readImmediate())
	return 8
}

// 0xC7: RST 0x00
func opcode0xC7(cpu *CPU) int {
	cpu.rst(0x00)
	return 16
}

// 0xC8: RET Z
func opcode0xC8(cpu *CPU) int {
	return cpu.retIf(cpu.isSetFlag(zeroFlag))
}

// 0xC9: RET
func opcode0xC9(cpu *CPU) int {
	cpu.ret()
	return 16
}

// 0xCA: JP Z, nn
func opcode0xCA(cpu *CPU) int {
	return cpu.jpIf(cpu.isSetFlag(zeroFlag))
}

// 0xCB: PREFIX CB
func opcode0xCB(_ *CPU) int {
	// never dispatched: decode routes 0xCB to the CB page
	return 4
}

// 0xCC: CALL Z, nn
func opcode0xCC(cpu *CPU) int {
	return cpu.callIf(cpu.isSetFlag(zeroFlag))
}

// 0xCD: CALL nn
func opcode0xCD(cpu *CPU) int {
	cpu.call()
	return 24
}

// 0xCE: ADC A, n
func opcode0xCE(cpu *CPU) int {
	cpu.adcToA(cpu.readImmediate())
	return 8
}

// 0xCF: RST 0x08
func opcode0xCF(cpu *CPU) int {
	cpu.rst(0x08)
	return 16
}

// 0xD0: RET NC
func opcode0xD0(cpu *CPU) int {
	return cpu.retIf(!cpu.isSetFlag(carryFlag))
}

// 0xD1: POP DE
func opcode0xD1(cpu *CPU) int {
	cpu.setDE(cpu.popStack())
	return 12
}

// 0xD2: JP NC, nn
func opcode0xD2(cpu *CPU) int {
	return cpu.jpIf(!cpu.isSetFlag(carryFlag))
}

// 0xD3: undefined
func opcode0xD3(cpu *CPU) int {
	cpu.lock()
	return 4
}

// 0xD4: CALL NC, nn
func opcode0xD4(cpu *CPU) int {
	return cpu.callIf(!cpu.isSetFlag(carryFlag))
}

// 0xD5: PUSH DE
func opcode0xD5(cpu *CPU) int {
	cpu.pushStack(cpu.getDE())
	return 16
}

// 0xD6: SUB n
func opcode0xD6(cpu *CPU) int {
	cpu.subFromA(cpu.readImmediate())
	return 8
}

// 0xD7: RST 0x10
func opcode0xD7(cpu *CPU) int {
	cpu.rst(0x10)
	return 16
}

// 0xD8: RET C
func opcode0xD8(cpu *CPU) int {
	return cpu.retIf(cpu.isSetFlag(carryFlag))
}

// 0xD9: RETI
func opcode0xD9(cpu *CPU) int {
	cpu.ret()
	cpu.ime = true
	return 16
}

// 0xDA: JP C, nn
func opcode0xDA(cpu *CPU) int {
	return cpu.jpIf(cpu.isSetFlag(carryFlag))
}

// 0xDB: undefined
func opcode0xDB(cpu *CPU) int {
	cpu.lock()
	return 4
}

// 0xDC: CALL C, nn
func opcode0xDC(cpu *CPU) int {
	return cpu.callIf(cpu.isSetFlag(carryFlag))
}

// 0xDD: undefined
func opcode0xDD(cpu *CPU) int {
	cpu.lock()
	return 4
}

// 0xDE: SBC A, n
func opcode0xDE(cpu *CPU) int {
	cpu.sbcFromA(cpu.readImmediate())
	return 8
}

// 0xDF: RST 0x18
func opcode0xDF(cpu *CPU) int {
	cpu.rst(0x18)
	return 16
}

// 0xE0: LDH (n), A
func opcode0xE0(cpu *CPU) int {
	cpu.bus.Write(0xFF00+uint16(cpu.readImmediate()), cpu.a)
	return 12
}

// 0xE1: POP HL
func opcode0xE1(cpu *CPU) int {
	cpu.setHL(cpu.popStack())
	return 12
}

// 0xE2: LD (0xFF00+C), A
func opcode0xE2(cpu *CPU) int {
	cpu.bus.Write(0xFF00+uint16(cpu.c), cpu.a)
	return 8
}

// 0xE3: undefined
func opcode0xE3(cpu *CPU) int {
	cpu.lock()
	return 4
}

// 0xE4: undefined
func opcode0xE4(cpu *CPU) int {
	cpu.lock()
	return 4
}

// 0xE5: PUSH HL
func opcode0xE5(cpu *CPU) int {
	cpu.pushStack(cpu.getHL())
	return 16
}

// 0xE6: AND n
func opcode0xE6(cpu *CPU) int {
	cpu.andWithA(cpu.readImmediate())
	return 8
}

// 0xE7: RST 0x20
func opcode0xE7(cpu *CPU) int {
	cpu.rst(0x20)
	return 16
}

// 0xE8: ADD SP, e
func opcode0xE8(cpu *CPU) int {
	cpu.sp = cpu.addSPSigned(cpu.readSignedImmediate())
	return 16
}

// 0xE9: JP HL
func opcode0xE9(cpu *CPU) int {
	cpu.pc = cpu.getHL()
	return 4
}

// 0xEA: LD (nn), A
func opcode0xEA(cpu *CPU) int {
	cpu.bus.Write(cpu.readImmediateWord(), cpu.a)
	return 16
}

// 0xEB: undefined
func opcode0xEB(cpu *CPU) int {
	cpu.lock()
	return 4
}

// 0xEC: undefined
func opcode0xEC(cpu *CPU) int {
	cpu.lock()
	return 4
}

// 0xED: undefined
func opcode0xED(cpu *CPU) int {
	cpu.lock()
	return 4
}

// 0xEE: XOR n
func opcode0xEE(cpu *CPU) int {
	cpu.xorWithA(cpu.readImmediate())
	return 8
}

// 0xEF: RST 0x28
func opcode0xEF(cpu *CPU) int {
	cpu.rst(0x28)
	return 16
}

// 0xF0: LDH A, (n)
func opcode0xF0(cpu *CPU) int {
	cpu.a = cpu.bus.Read(0xFF00 + uint16(cpu.readImmediate()))
	return 12
}

// 0xF1: POP AF
func opcode0xF1(cpu *CPU) int {
	cpu.setAF(cpu.popStack())
	return 12
}

// 0xF2: LD A, (0xFF00+C)
func opcode0xF2(cpu *CPU) int {
	cpu.a = cpu.bus.Read(0xFF00 + uint16(cpu.c))
	return 8
}

// 0xF3: DI
func opcode0xF3(cpu *CPU) int {
	cpu.ime = false
	cpu.eiPending = false
	return 4
}

// 0xF4: undefined
func opcode0xF4(cpu *CPU) int {
	cpu.lock()
	return 4
}

// 0xF5: PUSH AF
func opcode0xF5(cpu *CPU) int {
	cpu.pushStack(cpu.getAF())
	return 16
}

// 0xF6: OR n
func opcode0xF6(cpu *CPU) int {
	cpu.orWithA(cpu.readImmediate())
	return 8
}

// 0xF7: RST 0x30
func opcode0xF7(cpu *CPU) int {
	cpu.rst(0x30)
	return 16
}

// 0xF8: LD HL, SP+e
func opcode0xF8(cpu *CPU) int {
	cpu.setHL(cpu.addSPSigned(cpu.readSignedImmediate()))
	return 12
}

// 0xF9: LD SP, HL
func opcode0xF9(cpu *CPU) int {
	cpu.sp = cpu.getHL()
	return 8
}

// 0xFA: LD A, (nn)
func opcode0xFA(cpu *CPU) int {
	cpu.a = cpu.bus.Read(cpu.readImmediateWord())
	return 16
}

// 0xFB: EI
func opcode0xFB(cpu *CPU) int {
	cpu.eiPending = true
	return 4
}

// 0xFC: undefined
func opcode0xFC(cpu *CPU) int {
	cpu.lock()
	return 4
}

// 0xFD: undefined
func opcode0xFD(cpu *CPU) int {
	cpu.lock()
	return 4
}

// 0xFE: CP n
func opcode0xFE(cpu *CPU) int {
	cpu.compare(cpu.readImmediate())
	return 8
}

// 0xFF: RST 0x38
func opcode0xFF(cpu *CPU) int {
	cpu.rst(0x38)
	return 16
}
