package cpu

import "github.com/valdr/dotmatrix/dmg/bit"

// CB-prefixed opcode page: rotates, shifts, swaps and single-bit operations.

// 0xCB00: RLC B
func opcode0xCB00(cpu *CPU) int {
	cpu.rlc(&cpu.b)
	return 8
}

// 0xCB01: RLC C
func opcode0xCB01(cpu *CPU) int {
	cpu.rlc(&cpu.c)
	return 8
}

// 0xCB02: RLC D
func opcode0xCB02(cpu *CPU) int {
	cpu.rlc(&cpu.d)
	return 8
}

// 0xCB03: RLC E
func opcode0xCB03(cpu *CPU) int {
	cpu.rlc(&cpu.e)
	return 8
}

// 0xCB04: RLC H
func opcode0xCB04(cpu *CPU) int {
	cpu.rlc(&cpu.h)
	return 8
}

// 0xCB05: RLC L
func opcode0xCB05(cpu *CPU) int {
	cpu.rlc(&cpu.l)
	return 8
}

// 0xCB06: RLC (HL)
func opcode0xCB06(cpu *CPU) int {
	value := cpu.readHL()
	cpu.rlc(&value)
	cpu.writeHL(value)
	return 16
}

// 0xCB07: RLC A
func opcode0xCB07(cpu *CPU) int {
	cpu.rlc(&cpu.a)
	return 8
}

// 0xCB08: RRC B
func opcode0xCB08(cpu *CPU) int {
	cpu.rrc(&cpu.b)
	return 8
}

// 0xCB09: RRC C
func opcode0xCB09(cpu *CPU) int {
	cpu.rrc(&cpu.c)
	return 8
}

// 0xCB0A: RRC D
func opcode0xCB0A(cpu *CPU) int {
	cpu.rrc(&cpu.d)
	return 8
}

// 0xCB0B: RRC E
func opcode0xCB0B(cpu *CPU) int {
	cpu.rrc(&cpu.e)
	return 8
}

// 0xCB0C: RRC H
func opcode0xCB0C(cpu *CPU) int {
	cpu.rrc(&cpu.h)
	return 8
}

// 0xCB0D: RRC L
func opcode0xCB0D(cpu *CPU) int {
	cpu.rrc(&cpu.l)
	return 8
}

// 0xCB0E: RRC (HL)
func opcode0xCB0E(cpu *CPU) int {
	value := cpu.readHL()
	cpu.rrc(&value)
	cpu.writeHL(value)
	return 16
}

// 0xCB0F: RRC A
func opcode0xCB0F(cpu *CPU) int {
	cpu.rrc(&cpu.a)
	return 8
}

// 0xCB10: RL B
func opcode0xCB10(cpu *CPU) int {
	cpu.rl(&cpu.b)
	return 8
}

// 0xCB11: RL C
func opcode0xCB11(cpu *CPU) int {
	cpu.rl(&cpu.c)
	return 8
}

// 0xCB12: RL D
func opcode0xCB12(cpu *CPU) int {
	cpu.rl(&cpu.d)
	return 8
}

// 0xCB13: RL E
func opcode0xCB13(cpu *CPU) int {
	cpu.rl(&cpu.e)
	return 8
}

// 0xCB14: RL H
func opcode0xCB14(cpu *CPU) int {
	cpu.rl(&cpu.h)
	return 8
}

// 0xCB15: RL L
func opcode0xCB15(cpu *CPU) int {
	cpu.rl(&cpu.l)
	return 8
}

// 0xCB16: RL (HL)
func opcode0xCB16(cpu *CPU) int {
	value := cpu.readHL()
	cpu.rl(&value)
	cpu.writeHL(value)
	return 16
}

// 0xCB17: RL A
func opcode0xCB17(cpu *CPU) int {
	cpu.rl(&cpu.a)
	return 8
}

// 0xCB18: RR B
func opcode0xCB18(cpu *CPU) int {
	cpu.rr(&cpu.b)
	return 8
}

// 0xCB19: RR C
func opcode0xCB19(cpu *CPU) int {
	cpu.rr(&cpu.c)
	return 8
}

// 0xCB1A: RR D
func opcode0xCB1A(cpu *CPU) int {
	cpu.rr(&cpu.d)
	return 8
}

// 0xCB1B: RR E
func opcode0xCB1B(cpu *CPU) int {
	cpu.rr(&cpu.e)
	return 8
}

// 0xCB1C: RR H
func opcode0xCB1C(cpu *CPU) int {
	cpu.rr(&cpu.h)
	return 8
}

// 0xCB1D: RR L
func opcode0xCB1D(cpu *CPU) int {
	cpu.rr(&cpu.l)
	return 8
}

// 0xCB1E: RR (HL)
func opcode0xCB1E(cpu *CPU) int {
	value := cpu.readHL()
	cpu.rr(&value)
	cpu.writeHL(value)
	return 16
}

// 0xCB1F: RR A
func opcode0xCB1F(cpu *CPU) int {
	cpu.rr(&cpu.a)
	return 8
}

// 0xCB20: SLA B
func opcode0xCB20(cpu *CPU) int {
	cpu.sla(&cpu.b)
	return 8
}

// 0xCB21: SLA C
func opcode0xCB21(cpu *CPU) int {
	cpu.sla(&cpu.c)
	return 8
}

// 0xCB22: SLA D
func opcode0xCB22(cpu *CPU) int {
	cpu.sla(&cpu.d)
	return 8
}

// 0xCB23: SLA E
func opcode0xCB23(cpu *CPU) int {
	cpu.sla(&cpu.e)
	return 8
}

// 0xCB24: SLA H
func opcode0xCB24(cpu *CPU) int {
	cpu.sla(&cpu.h)
	return 8
}

// 0xCB25: SLA L
func opcode0xCB25(cpu *CPU) int {
	cpu.sla(&cpu.l)
	return 8
}

// 0xCB26: SLA (HL)
func opcode0xCB26(cpu *CPU) int {
	value := cpu.readHL()
	cpu.sla(&value)
	cpu.writeHL(value)
	return 16
}

// 0xCB27: SLA A
func opcode0xCB27(cpu *CPU) int {
	cpu.sla(&cpu.a)
	return 8
}

// 0xCB28: SRA B
func opcode0xCB28(cpu *CPU) int {
	cpu.sra(&cpu.b)
	return 8
}

// 0xCB29: SRA C
func opcode0xCB29(cpu *CPU) int {
	cpu.sra(&cpu.c)
	return 8
}

// 0xCB2A: SRA D
func opcode0xCB2A(cpu *CPU) int {
	cpu.sra(&cpu.d)
	return 8
}

// 0xCB2B: SRA E
func opcode0xCB2B(cpu *CPU) int {
	cpu.sra(&cpu.e)
	return 8
}

// 0xCB2C: SRA H
func opcode0xCB2C(cpu *CPU) int {
	cpu.sra(&cpu.h)
	return 8
}

// 0xCB2D: SRA L
func opcode0xCB2D(cpu *CPU) int {
	cpu.sra(&cpu.l)
	return 8
}

// 0xCB2E: SRA (HL)
func opcode0xCB2E(cpu *CPU) int {
	value := cpu.readHL()
	cpu.sra(&value)
	cpu.writeHL(value)
	return 16
}

// 0xCB2F: SRA A
func opcode0xCB2F(cpu *CPU) int {
	cpu.sra(&cpu.a)
	return 8
}

// 0xCB30: SWAP B
func opcode0xCB30(cpu *CPU) int {
	cpu.swap(&cpu.b)
	return 8
}

// 0xCB31: SWAP C
func opcode0xCB31(cpu *CPU) int {
	cpu.swap(&cpu.c)
	return 8
}

// 0xCB32: SWAP D
func opcode0xCB32(cpu *CPU) int {
	cpu.swap(&cpu.d)
	return 8
}

// 0xCB33: SWAP E
func opcode0xCB33(cpu *CPU) int {
	cpu.swap(&cpu.e)
	return 8
}

// 0xCB34: SWAP H
func opcode0xCB34(cpu *CPU) int {
	cpu.swap(&cpu.h)
	return 8
}

// 0xCB35: SWAP L
func opcode0xCB35(cpu *CPU) int {
	cpu.swap(&cpu.l)
	return 8
}

// 0xCB36: SWAP (HL)
func opcode0xCB36(cpu *CPU) int {
	value := cpu.readHL()
	cpu.swap(&value)
	cpu.writeHL(value)
	return 16
}

// 0xCB37: SWAP A
func opcode0xCB37(cpu *CPU) int {
	cpu.swap(&cpu.a)
	return 8
}

// 0xCB38: SRL B
func opcode0xCB38(cpu *CPU) int {
	cpu.srl(&cpu.b)
	return 8
}

// 0xCB39: SRL C
func opcode0xCB39(cpu *CPU) int {
	cpu.srl(&cpu.c)
	return 8
}

// 0xCB3A: SRL D
func opcode0xCB3A(cpu *CPU) int {
	cpu.srl(&cpu.d)
	return 8
}

// 0xCB3B: SRL E
func opcode0xCB3B(cpu *CPU) int {
	cpu.srl(&cpu.e)
	return 8
}

// 0xCB3C: SRL H
func opcode0xCB3C(cpu *CPU) int {
	cpu.srl(&cpu.h)
	return 8
}

// 0xCB3D: SRL L
func opcode0xCB3D(cpu *CPU) int {
	cpu.srl(&cpu.l)
	return 8
}

// 0xCB3E: SRL (HL)
func opcode0xCB3E(cpu *CPU) int {
	value := cpu.readHL()
	cpu.srl(&value)
	cpu.writeHL(value)
	return 16
}

// 0xCB3F: SRL A
func opcode0xCB3F(cpu *CPU) int {
	cpu.srl(&cpu.a)
	return 8
}

// 0xCB40: BIT 0, B
func opcode0xCB40(cpu *CPU) int {
	cpu.bitTest(0, cpu.b)
	return 8
}

// 0xCB41: BIT 0, C
func opcode0xCB41(cpu *CPU) int {
	cpu.bitTest(0, cpu.c)
	return 8
}

// 0xCB42: BIT 0, D
func opcode0xCB42(cpu *CPU) int {
	cpu.bitTest(0, cpu.d)
	return 8
}

// 0xCB43: BIT 0, E
func opcode0xCB43(cpu *CPU) int {
	cpu.bitTest(0, cpu.e)
	return 8
}

// 0xCB44: BIT 0, H
func opcode0xCB44(cpu *CPU) int {
	cpu.bitTest(0, cpu.h)
	return 8
}

// 0xCB45: BIT 0, L
func opcode0xCB45(cpu *CPU) int {
	cpu.bitTest(0, cpu.l)
	return 8
}

// 0xCB46: BIT 0, (HL)
func opcode0xCB46(cpu *CPU) int {
	cpu.bitTest(0, cpu.readHL())
	return 12
}

// 0xCB47: BIT 0, A
func opcode0xCB47(cpu *CPU) int {
	cpu.bitTest(0, cpu.a)
	return 8
}

// 0xCB48: BIT 1, B
func opcode0xCB48(cpu *CPU) int {
	cpu.bitTest(1, cpu.b)
	return 8
}

// 0xCB49: BIT 1, C
func opcode0xCB49(cpu *CPU) int {
	cpu.bitTest(1, cpu.c)
	return 8
}

// 0xCB4A: BIT 1, D
func opcode0xCB4A(cpu *CPU) int {
	cpu.bitTest(1, cpu.d)
	return 8
}

// 0xCB4B: BIT 1, E
func opcode0xCB4B(cpu *CPU) int {
	cpu.bitTest(1, cpu.e)
	return 8
}

// 0xCB4C: BIT 1, H
func opcode0xCB4C(cpu *CPU) int {
	cpu.bitTest(1, cpu.h)
	return 8
}

// 0xCB4D: BIT 1, L
func opcode0xCB4D(cpu *CPU) int {
	cpu.bitTest(1, cpu.l)
	return 8
}

// 0xCB4E: BIT 1, (HL)
func opcode0xCB4E(cpu *CPU) int {
	cpu.bitTest(1, cpu.readHL())
	return 12
}

// 0xCB4F: BIT 1, A
func opcode0xCB4F(cpu *CPU) int {
	cpu.bitTest(1, cpu.a)
	return 8
}

// 0xCB50: BIT 2, B
func opcode0xCB50(cpu *CPU) int {
	cpu.bitTest(2, cpu.b)
	return 8
}

// 0xCB51: BIT 2, C
func opcode0xCB51(cpu *CPU) int {
	cpu.bitTest(2, cpu.c)
	return 8
}

// 0xCB52: BIT 2, D
func opcode0xCB52(cpu *CPU) int {
	cpu.bitTest(2, cpu.d)
	return 8
}

// 0xCB53: BIT 2, E
func opcode0xCB53(cpu *CPU) int {
	cpu.bitTest(2, cpu.e)
	return 8
}

// 0xCB54: BIT 2, H
func opcode0xCB54(cpu *CPU) int {
	cpu.bitTest(2, cpu.h)
	return 8
}

// 0xCB55: BIT 2, L
func opcode0xCB55(cpu *CPU) int {
	cpu.bitTest(2, cpu.l)
	return 8
}

// 0xCB56: BIT 2, (HL)
func opcode0xCB56(cpu *CPU) int {
	cpu.bitTest(2, cpu.readHL())
	return 12
}

// 0xCB57: BIT 2, A
func opcode0xCB57(cpu *CPU) int {
	cpu.bitTest(2, cpu.a)
	return 8
}

// 0xCB58: BIT 3, B
func opcode0xCB58(cpu *CPU) int {
	cpu.bitTest(3, cpu.b)
	return 8
}

// 0xCB59: BIT 3, C
func opcode0xCB59(cpu *CPU) int {
	cpu.bitTest(3, cpu.c)
	return 8
}

// 0xCB5A: BIT 3, D
func opcode0xCB5A(cpu *CPU) int {
	cpu.bitTest(3, cpu.d)
	return 8
}

// 0xCB5B: BIT 3, E
func opcode0xCB5B(cpu *CPU) int {
	cpu.bitTest(3, cpu.e)
	return 8
}

// 0xCB5C: BIT 3, H
func opcode0xCB5C(cpu *CPU) int {
	cpu.bitTest(3, cpu.h)
	return 8
}

// 0xCB5D: BIT 3, L
func opcode0xCB5D(cpu *CPU) int {
	cpu.bitTest(3, cpu.l)
	return 8
}

// 0xCB5E: BIT 3, (HL)
func opcode0xCB5E(cpu *CPU) int {
	cpu.bitTest(3, cpu.readHL())
	return 12
}

// 0xCB5F: BIT 3, A
func opcode0xCB5F(cpu *CPU) int {
	cpu.bitTest(3, cpu.a)
	return 8
}

// 0xCB60: BIT 4, B
func opcode0xCB60(cpu *CPU) int {
	cpu.bitTest(4, cpu.b)
	return 8
}

// 0xCB61: BIT 4, C
func opcode0xCB61(cpu *CPU) int {
	cpu.bitTest(4, cpu.c)
	return 8
}

// 0xCB62: BIT 4, D
func opcode0xCB62(cpu *CPU) int {
	cpu.bitTest(4, cpu.d)
	return 8
}

// 0xCB63: BIT 4, E
func opcode0xCB63(cpu *CPU) int {
	cpu.bitTest(4, cpu.e)
	return 8
}

// 0xCB64: BIT 4, H
func opcode0xCB64(cpu *CPU) int {
	cpu.bitTest(4, cpu.h)
	return 8
}

// 0xCB65: BIT 4, L
func opcode0xCB65(cpu *CPU) int {
	cpu.bitTest(4, cpu.l)
	return 8
}

// 0xCB66: BIT 4, (HL)
func opcode0xCB66(cpu *CPU) int {
	cpu.bitTest(4, cpu.readHL())
	return 12
}

// 0xCB67: BIT 4, A
func opcode0xCB67(cpu *CPU) int {
	cpu.bitTest(4, cpu.a)
	return 8
}

// 0xCB68: BIT 5, B
func opcode0xCB68(cpu *CPU) int {
	cpu.bitTest(5, cpu.b)
	return 8
}

// 0xCB69: BIT 5, C
func opcode0xCB69(cpu *CPU) int {
	cpu.bitTest(5, cpu.c)
	return 8
}

// 0xCB6A: BIT 5, D
func opcode0xCB6A(cpu *CPU) int {
	cpu.bitTest(5, cpu.d)
	return 8
}

// 0xCB6B: BIT 5, E
func opcode0xCB6B(cpu *CPU) int {
	cpu.bitTest(5, cpu.e)
	return 8
}

// 0xCB6C: BIT 5, H
func opcode0xCB6C(cpu *CPU) int {
	cpu.bitTest(5, cpu.h)
	return 8
}

// 0xCB6D: BIT 5, L
func opcode0xCB6D(cpu *CPU) int {
	cpu.bitTest(5, cpu.l)
	return 8
}

// 0xCB6E: BIT 5, (HL)
func opcode0xCB6E(cpu *CPU) int {
	cpu.bitTest(5, cpu.readHL())
	return 12
}

// 0xCB6F: BIT 5, A
func opcode0xCB6F(cpu *CPU) int {
	cpu.bitTest(5, cpu.a)
	return 8
}

// 0xCB70: BIT 6, B
func opcode0xCB70(cpu *CPU) int {
	cpu.bitTest(6, cpu.b)
	return 8
}

// 0xCB71: BIT 6, C
func opcode0xCB71(cpu *CPU) int {
	cpu.bitTest(6, cpu.c)
	return 8
}

// 0xCB72: BIT 6, D
func opcode0xCB72(cpu *CPU) int {
	cpu.bitTest(6, cpu.d)
	return 8
}

// 0xCB73: BIT 6, E
func opcode0xCB73(cpu *CPU) int {
	cpu.bitTest(6, cpu.e)
	return 8
}

// 0xCB74: BIT 6, H
func opcode0xCB74(cpu *CPU) int {
	cpu.bitTest(6, cpu.h)
	return 8
}

// 0xCB75: BIT 6, L
func opcode0xCB75(cpu *CPU) int {
	cpu.bitTest(6, cpu.l)
	return 8
}

// 0xCB76: BIT 6, (HL)
func opcode0xCB76(cpu *CPU) int {
	cpu.bitTest(6, cpu.readHL())
	return 12
}

// 0xCB77: BIT 6, A
func opcode0xCB77(cpu *CPU) int {
	cpu.bitTest(6, cpu.a)
	return 8
}

// 0xCB78: BIT 7, B
func opcode0xCB78(cpu *CPU) int {
	cpu.bitTest(7, cpu.b)
	return 8
}

// 0xCB79: BIT 7, C
func opcode0xCB79(cpu *CPU) int {
	cpu.bitTest(7, cpu.c)
	return 8
}

// 0xCB7A: BIT 7, D
func opcode0xCB7A(cpu *CPU) int {
	cpu.bitTest(7, cpu.d)
	return 8
}

// 0xCB7B: BIT 7, E
func opcode0xCB7B(cpu *CPU) int {
	cpu.bitTest(7, cpu.e)
	return 8
}

// 0xCB7C: BIT 7, H
func opcode0xCB7C(cpu *CPU) int {
	cpu.bitTest(7, cpu.h)
	return 8
}

// 0xCB7D: BIT 7, L
func opcode0xCB7D(cpu *CPU) int {
	cpu.bitTest(7, cpu.l)
	return 8
}

// 0xCB7E: BIT 7, (HL)
func opcode0xCB7E(cpu *CPU) int {
	cpu.bitTest(7, cpu.readHL())
	return 12
}

// 0xCB7F: BIT 7, A
func opcode0xCB7F(cpu *CPU) int {
	cpu.bitTest(7, cpu.a)
	return 8
}

// 0xCB80: RES 0, B
func opcode0xCB80(cpu *CPU) int {
	cpu.b = bit.Clear(0, cpu.b)
	return 8
}

// 0xCB81: RES 0, C
func opcode0xCB81(cpu *CPU) int {
	cpu.c = bit.Clear(0, cpu.c)
	return 8
}

// 0xCB82: RES 0, D
func opcode0xCB82(cpu *CPU) int {
	cpu.d = bit.Clear(0, cpu.d)
	return 8
}

// 0xCB83: RES 0, E
func opcode0xCB83(cpu *CPU) int {
	cpu.e = bit.Clear(0, cpu.e)
	return 8
}

// 0xCB84: RES 0, H
func opcode0xCB84(cpu *CPU) int {
	cpu.h = bit.Clear(0, cpu.h)
	return 8
}

// 0xCB85: RES 0, L
func opcode0xCB85(cpu *CPU) int {
	cpu.l = bit.Clear(0, cpu.l)
	return 8
}

// 0xCB86: RES 0, (HL)
func opcode0xCB86(cpu *CPU) int {
	cpu.writeHL(bit.Clear(0, cpu.readHL()))
	return 16
}

// 0xCB87: RES 0, A
func opcode0xCB87(cpu *CPU) int {
	cpu.a = bit.Clear(0, cpu.a)
	return 8
}

// 0xCB88: RES 1, B
func opcode0xCB88(cpu *CPU) int {
	cpu.b = bit.Clear(1, cpu.b)
	return 8
}

// 0xCB89: RES 1, C
func opcode0xCB89(cpu *CPU) int {
	cpu.c = bit.Clear(1, cpu.c)
	return 8
}

// 0xCB8A: RES 1, D
func opcode0xCB8A(cpu *CPU) int {
	cpu.d = bit.Clear(1, cpu.d)
	return 8
}

// 0xCB8B: RES 1, E
func opcode0xCB8B(cpu *CPU) int {
	cpu.e = bit.Clear(1, cpu.e)
	return 8
}

// 0xCB8C: RES 1, H
func opcode0xCB8C(cpu *CPU) int {
	cpu.h = bit.Clear(1, cpu.h)
	return 8
}

// 0xCB8D: RES 1, L
func opcode0xCB8D(cpu *CPU) int {
	cpu.l = bit.Clear(1, cpu.l)
	return 8
}

// 0xCB8E: RES 1, (HL)
func opcode0xCB8E(cpu *CPU) int {
	cpu.writeHL(bit.Clear(1, cpu.readHL()))
	return 16
}

// 0xCB8F: RES 1, A
func opcode0xCB8F(cpu *CPU) int {
	cpu.a = bit.Clear(1, cpu.a)
	return 8
}

// 0xCB90: RES 2, B
func opcode0xCB90(cpu *CPU) int {
	cpu.b = bit.Clear(2, cpu.b)
	return 8
}

// 0xCB91: RES 2, C
func opcode0xCB91(cpu *CPU) int {
	cpu.c = bit.Clear(2, cpu.c)
	return 8
}

// 0xCB92: RES 2, D
func opcode0xCB92(cpu *CPU) int {
	cpu.d = bit.Clear(2, cpu.d)
	return 8
}

// 0xCB93: RES 2, E
func opcode0xCB93(cpu *CPU) int {
	cpu.e = bit.Clear(2, cpu.e)
	return 8
}

// 0xCB94: RES 2, H
func opcode0xCB94(cpu *CPU) int {
	cpu.h = bit.Clear(2, cpu.h)
	return 8
}

// 0xCB95: RES 2, L
func opcode0xCB95(cpu *CPU) int {
	cpu.l = bit.Clear(2, cpu.l)
	return 8
}

// 0xCB96: RES 2, (HL)
func opcode0xCB96(cpu *CPU) int {
	cpu.writeHL(bit.Clear(2, cpu.readHL()))
	return 16
}

// 0xCB97: RES 2, A
func opcode0xCB97(cpu *CPU) int {
	cpu.a = bit.Clear(2, cpu.a)
	return 8
}

// 0xCB98: RES 3, B
func opcode0xCB98(cpu *CPU) int {
	cpu.b = bit.Clear(3, cpu.b)
	return 8
}

// 0xCB99: RES 3, C
func opcode0xCB99(cpu *CPU) int {
	cpu.c = bit.Clear(3, cpu.c)
	return 8
}

// 0xCB9A: RES 3, D
func opcode0xCB9A(cpu *CPU) int {
	cpu.d = bit.Clear(3, cpu.d)
	return 8
}

// 0xCB9B: RES 3, E
func opcode0xCB9B(cpu *CPU) int {
	cpu.e = bit.Clear(3, cpu.e)
	return 8
}

// 0xCB9C: RES 3, H
func opcode0xCB9C(cpu *CPU) int {
	cpu.h = bit.Clear(3, cpu.h)
	return 8
}

// 0xCB9D: RES 3, L
func opcode0xCB9D(cpu *CPU) int {
	cpu.l = bit.Clear(3, cpu.l)
	return 8
}

// 0xCB9E: RES 3, (HL)
func opcode0xCB9E(cpu *CPU) int {
	cpu.writeHL(bit.Clear(3, cpu.readHL()))
	return 16
}

// 0xCB9F: RES 3, A
func opcode0xCB9F(cpu *CPU) int {
	cpu.a = bit.Clear(3, cpu.a)
	return 8
}

// 0xCBA0: RES 4, B
func opcode0xCBA0(cpu *CPU) int {
	cpu.b = bit.Clear(4, cpu.b)
	return 8
}

// 0xCBA1: RES 4, C
func opcode0xCBA1(cpu *CPU) int {
	cpu.c = bit.Clear(4, cpu.c)
	return 8
}

// 0xCBA2: RES 4, D
func opcode0xCBA2(cpu *CPU) int {
	cpu.d = bit.Clear(4, cpu.d)
	return 8
}

// 0xCBA3: RES 4, E
func opcode0xCBA3(cpu *CPU) int {
	cpu.e = bit.Clear(4, cpu.e)
	return 8
}

// 0xCBA4: RES 4, H
func opcode0xCBA4(cpu *CPU) int {
	cpu.h = bit.Clear(4, cpu.h)
	return 8
}

// 0xCBA5: RES 4, L
func opcode0xCBA5(cpu *CPU) int {
	cpu.l = bit.Clear(4, cpu.l)
	return 8
}

// 0xCBA6: RES 4, (HL)
func opcode0xCBA6(cpu *CPU) int {
	cpu.writeHL(bit.Clear(4, cpu.readHL()))
	return 16
}

// 0xCBA7: RES 4, A
func opcode0xCBA7(cpu *CPU) int {
	cpu.a = bit.Clear(4, cpu.a)
	return 8
}

// 0xCBA8: RES 5, B
func opcode0xCBA8(cpu *CPU) int {
	cpu.b = bit.Clear(5, cpu.b)
	return 8
}

// 0xCBA9: RES 5, C
func opcode0xCBA9(cpu *CPU) int {
	cpu.c = bit.Clear(5, cpu.c)
	return 8
}

// 0xCBAA: RES 5, D
func opcode0xCBAA(cpu *CPU) int {
	cpu.d = bit.Clear(5, cpu.d)
	return 8
}

// 0xCBAB: RES 5, E
func opcode0xCBAB(cpu *CPU) int {
	cpu.e = bit.Clear(5, cpu.e)
	return 8
}

// 0xCBAC: RES 5, H
func opcode0xCBAC(cpu *CPU) int {
	cpu.h = bit.Clear(5, cpu.h)
	return 8
}

// 0xCBAD: RES 5, L
func opcode0xCBAD(cpu *CPU) int {
	cpu.l = bit.Clear(5, cpu.l)
	return 8
}

// 0xCBAE: RES 5, (HL)
func opcode0xCBAE(cpu *CPU) int {
	cpu.writeHL(bit.Clear(5, cpu.readHL()))
	return 16
}

// 0xCBAF: RES 5, A
func opcode0xCBAF(cpu *CPU) int {
	cpu.a = bit.Clear(5, cpu.a)
	return 8
}

// 0xCBB0: RES 6, B
func opcode0xCBB0(cpu *CPU) int {
	cpu.b = bit.Clear(6, cpu.b)
	return 8
}

// 0xCBB1: RES 6, C
func opcode0xCBB1(cpu *CPU) int {
	cpu.c = bit.Clear(6, cpu.c)
	return 8
}

// 0xCBB2: RES 6, D
func opcode0xCBB2(cpu *CPU) int {
	cpu.d = bit.Clear(6, cpu.d)
	return 8
}

// 0xCBB3: RES 6, E
func opcode0xCBB3(cpu *CPU) int {
	cpu.e = bit.Clear(6, cpu.e)
	return 8
}

// 0xCBB4: RES 6, H
func opcode0xCBB4(cpu *CPU) int {
	cpu.h = bit.Clear(6, cpu.h)
	return 8
}

// 0xCBB5: RES 6, L
func opcode0xCBB5(cpu *CPU) int {
	cpu.l = bit.Clear(6, cpu.l)
	return 8
}

// 0xCBB6: RES 6, (HL)
func opcode0xCBB6(cpu *CPU) int {
	cpu.writeHL(bit.Clear(6, cpu.readHL()))
	return 16
}

// 0xCBB7: RES 6, A
func opcode0xCBB7(cpu *CPU) int {
	cpu.a = bit.Clear(6, cpu.a)
	return 8
}

// 0xCBB8: RES 7, B
func opcode0xCBB8(cpu *CPU) int {
	cpu.b = bit.Clear(7, cpu.b)
	return 8
}

// 0xCBB9: RES 7, C
func opcode0xCBB9(cpu *CPU) int {
	cpu.c = bit.Clear(7, cpu.c)
	return 8
}

// 0xCBBA: RES 7, D
func opcode0xCBBA(cpu *CPU) int {
	cpu.d = bit.Clear(7, cpu.d)
	return 8
}

// 0xCBBB: RES 7, E
func opcode0xCBBB(cpu *CPU) int {
	cpu.e = bit.Clear(7, cpu.e)
	return 8
}

// 0xCBBC: RES 7, H
func opcode0xCBBC(cpu *CPU) int {
	cpu.h = bit.Clear(7, cpu.h)
	return 8
}

// 0xCBBD: RES 7, L
func opcode0xCBBD(cpu *CPU) int {
	cpu.l = bit.Clear(7, cpu.l)
	return 8
}

// 0xCBBE: RES 7, (HL)
func opcode0xCBBE(cpu *CPU) int {
	cpu.writeHL(bit.Clear(7, cpu.readHL()))
	return 16
}

// 0xCBBF: RES 7, A
func opcode0xCBBF(cpu *CPU) int {
	cpu.a = bit.Clear(7, cpu.a)
	return 8
}

// 0xCBC0: SET 0, B
func opcode0xCBC0(cpu *CPU) int {
	cpu.b = bit.Set(0, cpu.b)
	return 8
}

// 0xCBC1: SET 0, C
func opcode0xCBC1(cpu *CPU) int {
	cpu.c = bit.Set(0, cpu.c)
	return 8
}

// 0xCBC2: SET 0, D
func opcode0xCBC2(cpu *CPU) int {
	cpu.d = bit.Set(0, cpu.d)
	return 8
}

// 0xCBC3: SET 0, E
func opcode0xCBC3(cpu *CPU) int {
	cpu.e = bit.Set(0, cpu.e)
	return 8
}

// 0xCBC4: SET 0, H
func opcode0xCBC4(cpu *CPU) int {
	cpu.h = bit.Set(0, cpu.h)
	return 8
}

// 0xCBC5: SET 0, L
func opcode0xCBC5(cpu *CPU) int {
	cpu.l = bit.Set(0, cpu.l)
	return 8
}

// 0xCBC6: SET 0, (HL)
func opcode0xCBC6(cpu *CPU) int {
	cpu.writeHL(bit.Set(0, cpu.readHL()))
	return 16
}

// 0xCBC7: SET 0, A
func opcode0xCBC7(cpu *CPU) int {
	cpu.a = bit.Set(0, cpu.a)
	return 8
}

// 0xCBC8: SET 1, B
func opcode0xCBC8(cpu *CPU) int {
	cpu.b = bit.Set(1, cpu.b)
	return 8
}

// 0xCBC9: SET 1, C
func opcode0xCBC9(cpu *CPU) int {
	cpu.c = bit.Set(1, cpu.c)
	return 8
}

// 0xCBCA: SET 1, D
func opcode0xCBCA(cpu *CPU) int {
	cpu.d = bit.Set(1, cpu.d)
	return 8
}

// 0xCBCB: SET 1, E
func opcode0xCBCB(cpu *CPU) int {
	cpu.e = bit.Set(1, cpu.e)
	return 8
}

// 0xCBCC: SET 1, H
func opcode0xCBCC(cpu *CPU) int {
	cpu.h = bit.Set(1, cpu.h)
	return 8
}

// 0xCBCD: SET 1, L
func opcode0xCBCD(cpu *CPU) int {
	cpu.l = bit.Set(1, cpu.l)
	return 8
}

// 0xCBCE: SET 1, (HL)
func opcode0xCBCE(cpu *CPU) int {
	cpu.writeHL(bit.Set(1, cpu.readHL()))
	return 16
}

// 0xCBCF: SET 1, A
func opcode0xCBCF(cpu *CPU) int {
	cpu.a = bit.Set(1, cpu.a)
	return 8
}

// 0xCBD0: SET 2, B
func opcode0xCBD0(cpu *CPU) int {
	cpu.b = bit.Set(2, cpu.b)
	return 8
}

// 0xCBD1: SET 2, C
func opcode0xCBD1(cpu *CPU) int {
	cpu.c = bit.Set(2, cpu.c)
	return 8
}

// 0xCBD2: SET 2, D
func opcode0xCBD2(cpu *CPU) int {
	cpu.d = bit.Set(2, cpu.d)
	return 8
}

// 0xCBD3: SET 2, E
func opcode0xCBD3(cpu *CPU) int {
	cpu.e = bit.Set(2, cpu.e)
	return 8
}

// 0xCBD4: SET 2, H
func opcode0xCBD4(cpu *CPU) int {
	cpu.h = bit.Set(2, cpu.h)
	return 8
}

// 0xCBD5: SET 2, L
func opcode0xCBD5(cpu *CPU) int {
	cpu.l = bit.Set(2, cpu.l)
	return 8
}

// 0xCBD6: SET 2, (HL)
func opcode0xCBD6(cpu *CPU) int {
	cpu.writeHL(bit.Set(2, cpu.readHL()))
	return 16
}

// 0xCBD7: SET 2, A
func opcode0xCBD7(cpu *CPU) int {
	cpu.a = bit.Set(2, cpu.a)
	return 8
}

// 0xCBD8: SET 3, B
func opcode0xCBD8(cpu *CPU) int {
	cpu.b = bit.Set(3, cpu.b)
	return 8
}

// 0xCBD9: SET 3, C
func opcode0xCBD9(cpu *CPU) int {
	cpu.c = bit.Set(3, cpu.c)
	return 8
}

// 0xCBDA: SET 3, D
func opcode0xCBDA(cpu *CPU) int {
	cpu.d = bit.Set(3, cpu.d)
	return 8
}

// 0xCBDB: SET 3, E
func opcode0xCBDB(cpu *CPU) int {
	cpu.e = bit.Set(3, cpu.e)
	return 8
}

// 0xCBDC: SET 3, H
func opcode0xCBDC(cpu *CPU) int {
	cpu.h = bit.Set(3, cpu.h)
	return 8
}

// 0xCBDD: SET 3, L
func opcode0xCBDD(cpu *CPU) int {
	cpu.l = bit.Set(3, cpu.l)
	return 8
}

// 0xCBDE: SET 3, (HL)
func opcode0xCBDE(cpu *CPU) int {
	cpu.writeHL(bit.Set(3, cpu.readHL()))
	return 16
}

// 0xCBDF: SET 3, A
func opcode0xCBDF(cpu *CPU) int {
	cpu.a = bit.Set(3, cpu.a)
	return 8
}

// 0xCBE0: SET 4, B
func opcode0xCBE0(cpu *CPU) int {
	cpu.b = bit.Set(4, cpu.b)
	return 8
}

// 0xCBE1: SET 4, C
func opcode0xCBE1(cpu *CPU) int {
	cpu.c = bit.Set(4, cpu.c)
	return 8
}

// 0xCBE2: SET 4, D
func opcode0xCBE2(cpu *CPU) int {
	cpu.d = bit.Set(4, cpu.d)
	return 8
}

// 0xCBE3: SET 4, E
func opcode0xCBE3(cpu *CPU) int {
	cpu.e = bit.Set(4, cpu.e)
	return 8
}

// 0xCBE4: SET 4, H
func opcode0xCBE4(cpu *CPU) int {
	cpu.h = bit.Set(4, cpu.h)
	return 8
}

// 0xCBE5: SET 4, L
func opcode0xCBE5(cpu *CPU) int {
	cpu.l = bit.Set(4, cpu.l)
	return 8
}

// 0xCBE6: SET 4, (HL)
func opcode0xCBE6(cpu *CPU) int {
	cpu.writeHL(bit.Set(4, cpu.readHL()))
	return 16
}

// 0xCBE7: SET 4, A
func opcode0xCBE7(cpu *CPU) int {
	cpu.a = bit.Set(4, cpu.a)
	return 8
}

// 0xCBE8: SET 5, B
func opcode0xCBE8(cpu *CPU) int {
	cpu.b = bit.Set(5, cpu.b)
	return 8
}

// 0xCBE9: SET 5, C
func opcode0xCBE9(cpu *CPU) int {
	cpu.c = bit.Set(5, cpu.c)
	return 8
}

// 0xCBEA: SET 5, D
func opcode0xCBEA(cpu *CPU) int {
	cpu.d = bit.Set(5, cpu.d)
	return 8
}

// 0xCBEB: SET 5, E
func opcode0xCBEB(cpu *CPU) int {
	cpu.e = bit.Set(5, cpu.e)
	return 8
}

// 0xCBEC: SET 5, H
func opcode0xCBEC(cpu *CPU) int {
	cpu.h = bit.Set(5, cpu.h)
	return 8
}

// 0xCBED: SET 5, L
func opcode0xCBED(cpu *CPU) int {
	cpu.l = bit.Set(5, cpu.l)
	return 8
}

// 0xCBEE: SET 5, (HL)
func opcode0xCBEE(cpu *CPU) int {
	cpu.writeHL(bit.Set(5, cpu.readHL()))
	return 16
}

// 0xCBEF: SET 5, A
func opcode0xCBEF(cpu *CPU) int {
	cpu.a = bit.Set(5, cpu.a)
	return 8
}

// 0xCBF0: SET 6, B
func opcode0xCBF0(cpu *CPU) int {
	cpu.b = bit.Set(6, cpu.b)
	return 8
}

// 0xCBF1: SET 6, C
func opcode0xCBF1(cpu *CPU) int {
	cpu.c = bit.Set(6, cpu.c)
	return 8
}

// 0xCBF2: SET 6, D
func opcode0xCBF2(cpu *CPU) int {
	cpu.d = bit.Set(6, cpu.d)
	return 8
}

// 0xCBF3: SET 6, E
func opcode0xCBF3(cpu *CPU) int {
	cpu.e = bit.Set(6, cpu.e)
	return 8
}

// 0xCBF4: SET 6, H
func opcode0xCBF4(cpu *CPU) int {
	cpu.h = bit.Set(6, cpu.h)
	return 8
}

// 0xCBF5: SET 6, L
func opcode0xCBF5(cpu *CPU) int {
	cpu.l = bit.Set(6, cpu.l)
	return 8
}

// 0xCBF6: SET 6, (HL)
func opcode0xCBF6(cpu *CPU) int {
	cpu.writeHL(bit.Set(6, cpu.readHL()))
	return 16
}

// 0xCBF7: SET 6, A
func opcode0xCBF7(cpu *CPU) int {
	cpu.a = bit.Set(6, cpu.a)
	return 8
}

// 0xCBF8: SET 7, B
func opcode0xCBF8(cpu *CPU) int {
	cpu.b = bit.Set(7, cpu.b)
	return 8
}

// 0xCBF9: SET 7, C
func opcode0xCBF9(cpu *CPU) int {
	cpu.c = bit.Set(7, cpu.c)
	return 8
}

// 0xCBFA: SET 7, D
func opcode0xCBFA(cpu *CPU) int {
	cpu.d = bit.Set(7, cpu.d)
	return 8
}

// 0xCBFB: SET 7, E
func opcode0xCBFB(cpu *CPU) int {
	cpu.e = bit.Set(7, cpu.e)
	return 8
}

// 0xCBFC: SET 7, H
func opcode0xCBFC(cpu *CPU) int {
	cpu.h = bit.Set(7, cpu.h)
	return 8
}

// 0xCBFD: SET 7, L
func opcode0xCBFD(cpu *CPU) int {
	cpu.l = bit.Set(7, cpu.l)
	return 8
}

// 0xCBFE: SET 7, (HL)
func opcode0xCBFE(cpu *CPU) int {
	cpu.writeHL(bit.Set(7, cpu.readHL()))
	return 16
}

// 0xCBFF: SET 7, A
func opcode0xCBFF(cpu *CPU) int {
	cpu.a = bit.Set(7, cpu.a)
	return 8
}
