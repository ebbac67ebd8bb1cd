// Package opcode contains the NMOS 6502 instruction set including the illegal opcodes.
package opcode

import "fmt"

// Opcode is a single entry of the 256 entry opcode table.
type Opcode struct {
	Value       byte
	Instruction *Instruction
	Addressing  AddressingMode
	Legal       bool // documented by the manufacturer
	Cycles      byte // 0 for opcodes that halt the CPU
}

// Size returns the complete size of the instruction including the opcode byte.
func (o Opcode) Size() int {
	return 1 + o.Addressing.OperandSize()
}

func (o Opcode) String() string {
	return fmt.Sprintf("$%02X %s %s", o.Value, o.Instruction.Name, o.Addressing)
}

// Opcodes maps every byte value to its opcode.
var Opcodes = [256]Opcode{
	0x00: {Instruction: Brk, Addressing: ImpliedAddressing, Legal: true, Cycles: 7},
	0x01: {Instruction: Ora, Addressing: IndirectXAddressing, Legal: true, Cycles: 6},
	0x02: {Instruction: Kil, Addressing: ImpliedAddressing, Legal: false, Cycles: 0},
	0x03: {Instruction: Slo, Addressing: IndirectXAddressing, Legal: false, Cycles: 8},
	0x04: {Instruction: Nop, Addressing: ZeroPageAddressing, Legal: false, Cycles: 3},
	0x05: {Instruction: Ora, Addressing: ZeroPageAddressing, Legal: true, Cycles: 3},
	0x06: {Instruction: Asl, Addressing: ZeroPageAddressing, Legal: true, Cycles: 5},
	0x07: {Instruction: Slo, Addressing: ZeroPageAddressing, Legal: false, Cycles: 5},
	0x08: {Instruction: Php, Addressing: ImpliedAddressing, Legal: true, Cycles: 3},
	0x09: {Instruction: Ora, Addressing: ImmediateAddressing, Legal: true, Cycles: 2},
	0x0A: {Instruction: Asl, Addressing: ImpliedAddressing, Legal: true, Cycles: 2},
	0x0B: {Instruction: Anc, Addressing: ImmediateAddressing, Legal: false, Cycles: 2},
	0x0C: {Instruction: Nop, Addressing: AbsoluteAddressing, Legal: false, Cycles: 4},
	0x0D: {Instruction: Ora, Addressing: AbsoluteAddressing, Legal: true, Cycles: 4},
	0x0E: {Instruction: Asl, Addressing: AbsoluteAddressing, Legal: true, Cycles: 6},
	0x0F: {Instruction: Slo, Addressing: AbsoluteAddressing, Legal: false, Cycles: 6},
	0x10: {Instruction: Bpl, Addressing: RelativeAddressing, Legal: true, Cycles: 2},
	0x11: {Instruction: Ora, Addressing: IndirectYAddressing, Legal: true, Cycles: 5},
	0x12: {Instruction: Kil, Addressing: ImpliedAddressing, Legal: false, Cycles: 0},
	0x13: {Instruction: Slo, Addressing: IndirectYAddressing, Legal: false, Cycles: 8},
	0x14: {Instruction: Nop, Addressing: ZeroPageXAddressing, Legal: false, Cycles: 4},
	0x15: {Instruction: Ora, Addressing: ZeroPageXAddressing, Legal: true, Cycles: 4},
	0x16: {Instruction: Asl, Addressing: ZeroPageXAddressing, Legal: true, Cycles: 6},
	0x17: {Instruction: Slo, Addressing: ZeroPageXAddressing, Legal: false, Cycles: 6},
	0x18: {Instruction: Clc, Addressing: ImpliedAddressing, Legal: true, Cycles: 2},
	0x19: {Instruction: Ora, Addressing: AbsoluteYAddressing, Legal: true, Cycles: 4},
	0x1A: {Instruction: Nop, Addressing: ImpliedAddressing, Legal: false, Cycles: 2},
	0x1B: {Instruction: Slo, Addressing: AbsoluteYAddressing, Legal: false, Cycles: 7},
	0x1C: {Instruction: Nop, Addressing: AbsoluteXAddressing, Legal: false, Cycles: 4},
	0x1D: {Instruction: Ora, Addressing: AbsoluteXAddressing, Legal: true, Cycles: 4},
	0x1E: {Instruction: Asl, Addressing: AbsoluteXAddressing, Legal: true, Cycles: 7},
	0x1F: {Instruction: Slo, Addressing: AbsoluteXAddressing, Legal: false, Cycles: 7},
	0x20: {Instruction: Jsr, Addressing: AbsoluteAddressing, Legal: true, Cycles: 6},
	0x21: {Instruction: And, Addressing: IndirectXAddressing, Legal: true, Cycles: 6},
	0x22: {Instruction: Kil, Addressing: ImpliedAddressing, Legal: false, Cycles: 0},
	0x23: {Instruction: Rla, Addressing: IndirectXAddressing, Legal: false, Cycles: 8},
	0x24: {Instruction: Bit, Addressing: ZeroPageAddressing, Legal: true, Cycles: 3},
	0x25: {Instruction: And, Addressing: ZeroPageAddressing, Legal: true, Cycles: 3},
	0x26: {Instruction: Rol, Addressing: ZeroPageAddressing, Legal: true, Cycles: 5},
	0x27: {Instruction: Rla, Addressing: ZeroPageAddressing, Legal: false, Cycles: 5},
	0x28: {Instruction: Plp, Addressing: ImpliedAddressing, Legal: true, Cycles: 4},
	0x29: {Instruction: And, Addressing: ImmediateAddressing, Legal: true, Cycles: 2},
	0x2A: {Instruction: Rol, Addressing: ImpliedAddressing, Legal: true, Cycles: 2},
	0x2B: {Instruction: Anc, Addressing: ImmediateAddressing, Legal: false, Cycles: 2},
	0x2C: {Instruction: Bit, Addressing: AbsoluteAddressing, Legal: true, Cycles: 4},
	0x2D: {Instruction: And, Addressing: AbsoluteAddressing, Legal: true, Cycles: 4},
	0x2E: {Instruction: Rol, Addressing: AbsoluteAddressing, Legal: true, Cycles: 6},
	0x2F: {Instruction: Rla, Addressing: AbsoluteAddressing, Legal: false, Cycles: 6},
	0x30: {Instruction: Bmi, Addressing: RelativeAddressing, Legal: true, Cycles: 2},
	0x31: {Instruction: And, Addressing: IndirectYAddressing, Legal: true, Cycles: 5},
	0x32: {Instruction: Kil, Addressing: ImpliedAddressing, Legal: false, Cycles: 0},
	0x33: {Instruction: Rla, Addressing: IndirectYAddressing, Legal: false, Cycles: 8},
	0x34: {Instruction: Nop, Addressing: ZeroPageXAddressing, Legal: false, Cycles: 4},
	0x35: {Instruction: And, Addressing: ZeroPageXAddressing, Legal: true, Cycles: 4},
	0x36: {Instruction: Rol, Addressing: ZeroPageXAddressing, Legal: true, Cycles: 6},
	0x37: {Instruction: Rla, Addressing: ZeroPageXAddressing, Legal: false, Cycles: 6},
	0x38: {Instruction: Sec, Addressing: ImpliedAddressing, Legal: true, Cycles: 2},
	0x39: {Instruction: And, Addressing: AbsoluteYAddressing, Legal: true, Cycles: 4},
	0x3A: {Instruction: Nop, Addressing: ImpliedAddressing, Legal: false, Cycles: 2},
	0x3B: {Instruction: Rla, Addressing: AbsoluteYAddressing, Legal: false, Cycles: 7},
	0x3C: {Instruction: Nop, Addressing: AbsoluteXAddressing, Legal: false, Cycles: 4},
	0x3D: {Instruction: And, Addressing: AbsoluteXAddressing, Legal: true, Cycles: 4},
	0x3E: {Instruction: Rol, Addressing: AbsoluteXAddressing, Legal: true, Cycles: 7},
	0x3F: {Instruction: Rla, Addressing: AbsoluteXAddressing, Legal: false, Cycles: 7},
	0x40: {Instruction: Rti, Addressing: ImpliedAddressing, Legal: true, Cycles: 6},
	0x41: {Instruction: Eor, Addressing: IndirectXAddressing, Legal: true, Cycles: 6},
	0x42: {Instruction: Kil, Addressing: ImpliedAddressing, Legal: false, Cycles: 0},
	0x43: {Instruction: Sre, Addressing: IndirectXAddressing, Legal: false, Cycles: 8},
	0x44: {Instruction: Nop, Addressing: ZeroPageAddressing, Legal: false, Cycles: 3},
	0x45: {Instruction: Eor, Addressing: ZeroPageAddressing, Legal: true, Cycles: 3},
	0x46: {Instruction: Lsr, Addressing: ZeroPageAddressing, Legal: true, Cycles: 5},
	0x47: {Instruction: Sre, Addressing: ZeroPageAddressing, Legal: false, Cycles: 5},
	0x48: {Instruction: Pha, Addressing: ImpliedAddressing, Legal: true, Cycles: 3},
	0x49: {Instruction: Eor, Addressing: ImmediateAddressing, Legal: true, Cycles: 2},
	0x4A: {Instruction: Lsr, Addressing: ImpliedAddressing, Legal: true, Cycles: 2},
	0x4B: {Instruction: Alr, Addressing: ImmediateAddressing, Legal: false, Cycles: 2},
	0x4C: {Instruction: Jmp, Addressing: AbsoluteAddressing, Legal: true, Cycles: 3},
	0x4D: {Instruction: Eor, Addressing: AbsoluteAddressing, Legal: true, Cycles: 4},
	0x4E: {Instruction: Lsr, Addressing: AbsoluteAddressing, Legal: true, Cycles: 6},
	0x4F: {Instruction: Sre, Addressing: AbsoluteAddressing, Legal: false, Cycles: 6},
	0x50: {Instruction: Bvc, Addressing: RelativeAddressing, Legal: true, Cycles: 2},
	0x51: {Instruction: Eor, Addressing: IndirectYAddressing, Legal: true, Cycles: 5},
	0x52: {Instruction: Kil, Addressing: ImpliedAddressing, Legal: false, Cycles: 0},
	0x53: {Instruction: Sre, Addressing: IndirectYAddressing, Legal: false, Cycles: 8},
	0x54: {Instruction: Nop, Addressing: ZeroPageXAddressing, Legal: false, Cycles: 4},
	0x55: {Instruction: Eor, Addressing: ZeroPageXAddressing, Legal: true, Cycles: 4},
	0x56: {Instruction: Lsr, Addressing: ZeroPageXAddressing, Legal: true, Cycles: 6},
	0x57: {Instruction: Sre, Addressing: ZeroPageXAddressing, Legal: false, Cycles: 6},
	0x58: {Instruction: Cli, Addressing: ImpliedAddressing, Legal: true, Cycles: 2},
	0x59: {Instruction: Eor, Addressing: AbsoluteYAddressing, Legal: true, Cycles: 4},
	0x5A: {Instruction: Nop, Addressing: ImpliedAddressing, Legal: false, Cycles: 2},
	0x5B: {Instruction: Sre, Addressing: AbsoluteYAddressing, Legal: false, Cycles: 7},
	0x5C: {Instruction: Nop, Addressing: AbsoluteXAddressing, Legal: false, Cycles: 4},
	0x5D: {Instruction: Eor, Addressing: AbsoluteXAddressing, Legal: true, Cycles: 4},
	0x5E: {Instruction: Lsr, Addressing: AbsoluteXAddressing, Legal: true, Cycles: 7},
	0x5F: {Instruction: Sre, Addressing: AbsoluteXAddressing, Legal: false, Cycles: 7},
	0x60: {Instruction: Rts, Addressing: ImpliedAddressing, Legal: true, Cycles: 6},
	0x61: {Instruction: Adc, Addressing: IndirectXAddressing, Legal: true, Cycles: 6},
	0x62: {Instruction: Kil, Addressing: ImpliedAddressing, Legal: false, Cycles: 0},
	0x63: {Instruction: Rra, Addressing: IndirectXAddressing, Legal: false, Cycles: 8},
	0x64: {Instruction: Nop, Addressing: ZeroPageAddressing, Legal: false, Cycles: 3},
	0x65: {Instruction: Adc, Addressing: ZeroPageAddressing, Legal: true, Cycles: 3},
	0x66: {Instruction: Ror, Addressing: ZeroPageAddressing, Legal: true, Cycles: 5},
	0x67: {Instruction: Rra, Addressing: ZeroPageAddressing, Legal: false, Cycles: 5},
	0x68: {Instruction: Pla, Addressing: ImpliedAddressing, Legal: true, Cycles: 4},
	0x69: {Instruction: Adc, Addressing: ImmediateAddressing, Legal: true, Cycles: 2},
	0x6A: {Instruction: Ror, Addressing: ImpliedAddressing, Legal: true, Cycles: 2},
	0x6B: {Instruction: Arr, Addressing: ImmediateAddressing, Legal: false, Cycles: 2},
	0x6C: {Instruction: Jmp, Addressing: IndirectAddressing, Legal: true, Cycles: 5},
	0x6D: {Instruction: Adc, Addressing: AbsoluteAddressing, Legal: true, Cycles: 4},
	0x6E: {Instruction: Ror, Addressing: AbsoluteAddressing, Legal: true, Cycles: 6},
	0x6F: {Instruction: Rra, Addressing: AbsoluteAddressing, Legal: false, Cycles: 6},
	0x70: {Instruction: Bvs, Addressing: RelativeAddressing, Legal: true, Cycles: 2},
	0x71: {Instruction: Adc, Addressing: IndirectYAddressing, Legal: true, Cycles: 5},
	0x72: {Instruction: Kil, Addressing: ImpliedAddressing, Legal: false, Cycles: 0},
	0x73: {Instruction: Rra, Addressing: IndirectYAddressing, Legal: false, Cycles: 8},
	0x74: {Instruction: Nop, Addressing: ZeroPageXAddressing, Legal: false, Cycles: 4},
	0x75: {Instruction: Adc, Addressing: ZeroPageXAddressing, Legal: true, Cycles: 4},
	0x76: {Instruction: Ror, Addressing: ZeroPageXAddressing, Legal: true, Cycles: 6},
	0x77: {Instruction: Rra, Addressing: ZeroPageXAddressing, Legal: false, Cycles: 6},
	0x78: {Instruction: Sei, Addressing: ImpliedAddressing, Legal: true, Cycles: 2},
	0x79: {Instruction: Adc, Addressing: AbsoluteYAddressing, Legal: true, Cycles: 4},
	0x7A: {Instruction: Nop, Addressing: ImpliedAddressing, Legal: false, Cycles: 2},
	0x7B: {Instruction: Rra, Addressing: AbsoluteYAddressing, Legal: false, Cycles: 7},
	0x7C: {Instruction: Nop, Addressing: AbsoluteXAddressing, Legal: false, Cycles: 4},
	0x7D: {Instruction: Adc, Addressing: AbsoluteXAddressing, Legal: true, Cycles: 4},
	0x7E: {Instruction: Ror, Addressing: AbsoluteXAddressing, Legal: true, Cycles: 7},
	0x7F: {Instruction: Rra, Addressing: AbsoluteXAddressing, Legal: false, Cycles: 7},
	0x80: {Instruction: Nop, Addressing: ImmediateAddressing, Legal: false, Cycles: 2},
	0x81: {Instruction: Sta, Addressing: IndirectXAddressing, Legal: true, Cycles: 6},
	0x82: {Instruction: Nop, Addressing: ImmediateAddressing, Legal: false, Cycles: 2},
	0x83: {Instruction: Sax, Addressing: IndirectXAddressing, Legal: false, Cycles: 6},
	0x84: {Instruction: Sty, Addressing: ZeroPageAddressing, Legal: true, Cycles: 3},
	0x85: {Instruction: Sta, Addressing: ZeroPageAddressing, Legal: true, Cycles: 3},
	0x86: {Instruction: Stx, Addressing: ZeroPageAddressing, Legal: true, Cycles: 3},
	0x87: {Instruction: Sax, Addressing: ZeroPageAddressing, Legal: false, Cycles: 3},
	0x88: {Instruction: Dey, Addressing: ImpliedAddressing, Legal: true, Cycles: 2},
	0x89: {Instruction: Nop, Addressing: ImmediateAddressing, Legal: false, Cycles: 2},
	0x8A: {Instruction: Txa, Addressing: ImpliedAddressing, Legal: true, Cycles: 2},
	0x8B: {Instruction: Xaa, Addressing: ImmediateAddressing, Legal: false, Cycles: 2},
	0x8C: {Instruction: Sty, Addressing: AbsoluteAddressing, Legal: true, Cycles: 4},
	0x8D: {Instruction: Sta, Addressing: AbsoluteAddressing, Legal: true, Cycles: 4},
	0x8E: {Instruction: Stx, Addressing: AbsoluteAddressing, Legal: true, Cycles: 4},
	0x8F: {Instruction: Sax, Addressing: AbsoluteAddressing, Legal: false, Cycles: 4},
	0x90: {Instruction: Bcc, Addressing: RelativeAddressing, Legal: true, Cycles: 2},
	0x91: {Instruction: Sta, Addressing: IndirectYAddressing, Legal: true, Cycles: 6},
	0x92: {Instruction: Kil, Addressing: ImpliedAddressing, Legal: false, Cycles: 0},
	0x93: {Instruction: Ahx, Addressing: IndirectYAddressing, Legal: false, Cycles: 6},
	0x94: {Instruction: Sty, Addressing: ZeroPageXAddressing, Legal: true, Cycles: 4},
	0x95: {Instruction: Sta, Addressing: ZeroPageXAddressing, Legal: true, Cycles: 4},
	0x96: {Instruction: Stx, Addressing: ZeroPageYAddressing, Legal: true, Cycles: 4},
	0x97: {Instruction: Sax, Addressing: ZeroPageYAddressing, Legal: false, Cycles: 4},
	0x98: {Instruction: Tya, Addressing: ImpliedAddressing, Legal: true, Cycles: 2},
	0x99: {Instruction: Sta, Addressing: AbsoluteYAddressing, Legal: true, Cycles: 5},
	0x9A: {Instruction: Txs, Addressing: ImpliedAddressing, Legal: true, Cycles: 2},
	0x9B: {Instruction: Tas, Addressing: AbsoluteYAddressing, Legal: false, Cycles: 5},
	0x9C: {Instruction: Shy, Addressing: AbsoluteXAddressing, Legal: false, Cycles: 5},
	0x9D: {Instruction: Sta, Addressing: AbsoluteXAddressing, Legal: true, Cycles: 5},
	0x9E: {Instruction: Shx, Addressing: AbsoluteYAddressing, Legal: false, Cycles: 5},
	0x9F: {Instruction: Ahx, Addressing: AbsoluteYAddressing, Legal: false, Cycles: 5},
	0xA0: {Instruction: Ldy, Addressing: ImmediateAddressing, Legal: true, Cycles: 2},
	0xA1: {Instruction: Lda, Addressing: IndirectXAddressing, Legal: true, Cycles: 6},
	0xA2: {Instruction: Ldx, Addressing: ImmediateAddressing, Legal: true, Cycles: 2},
	0xA3: {Instruction: Lax, Addressing: IndirectXAddressing, Legal: false, Cycles: 6},
	0xA4: {Instruction: Ldy, Addressing: ZeroPageAddressing, Legal: true, Cycles: 3},
	0xA5: {Instruction: Lda, Addressing: ZeroPageAddressing, Legal: true, Cycles: 3},
	0xA6: {Instruction: Ldx, Addressing: ZeroPageAddressing, Legal: true, Cycles: 3},
	0xA7: {Instruction: Lax, Addressing: ZeroPageAddressing, Legal: false, Cycles: 3},
	0xA8: {Instruction: Tay, Addressing: ImpliedAddressing, Legal: true, Cycles: 2},
	0xA9: {Instruction: Lda, Addressing: ImmediateAddressing, Legal: true, Cycles: 2},
	0xAA: {Instruction: Tax, Addressing: ImpliedAddressing, Legal: true, Cycles: 2},
	0xAB: {Instruction: Lax, Addressing: ImmediateAddressing, Legal: false, Cycles: 2},
	0xAC: {Instruction: Ldy, Addressing: AbsoluteAddressing, Legal: true, Cycles: 4},
	0xAD: {Instruction: Lda, Addressing: AbsoluteAddressing, Legal: true, Cycles: 4},
	0xAE: {Instruction: Ldx, Addressing: AbsoluteAddressing, Legal: true, Cycles: 4},
	0xAF: {Instruction: Lax, Addressing: AbsoluteAddressing, Legal: false, Cycles: 4},
	0xB0: {Instruction: Bcs, Addressing: RelativeAddressing, Legal: true, Cycles: 2},
	0xB1: {Instruction: Lda, Addressing: IndirectYAddressing, Legal: true, Cycles: 5},
	0xB2: {Instruction: Kil, Addressing: ImpliedAddressing, Legal: false, Cycles: 0},
	0xB3: {Instruction: Lax, Addressing: IndirectYAddressing, Legal: false, Cycles: 5},
	0xB4: {Instruction: Ldy, Addressing: ZeroPageXAddressing, Legal: true, Cycles: 4},
	0xB5: {Instruction: Lda, Addressing: ZeroPageXAddressing, Legal: true, Cycles: 4},
	0xB6: {Instruction: Ldx, Addressing: ZeroPageYAddressing, Legal: true, Cycles: 4},
	0xB7: {Instruction: Lax, Addressing: ZeroPageYAddressing, Legal: false, Cycles: 4},
	0xB8: {Instruction: Clv, Addressing: ImpliedAddressing, Legal: true, Cycles: 2},
	0xB9: {Instruction: Lda, Addressing: AbsoluteYAddressing, Legal: true, Cycles: 4},
	0xBA: {Instruction: Tsx, Addressing: ImpliedAddressing, Legal: true, Cycles: 2},
	0xBB: {Instruction: Las, Addressing: AbsoluteYAddressing, Legal: false, Cycles: 4},
	0xBC: {Instruction: Ldy, Addressing: AbsoluteXAddressing, Legal: true, Cycles: 4},
	0xBD: {Instruction: Lda, Addressing: AbsoluteXAddressing, Legal: true, Cycles: 4},
	0xBE: {Instruction: Ldx, Addressing: AbsoluteYAddressing, Legal: true, Cycles: 4},
	0xBF: {Instruction: Lax, Addressing: AbsoluteYAddressing, Legal: false, Cycles: 4},
	0xC0: {Instruction: Cpy, Addressing: ImmediateAddressing, Legal: true, Cycles: 2},
	0xC1: {Instruction: Cmp, Addressing: IndirectXAddressing, Legal: true, Cycles: 6},
	0xC2: {Instruction: Nop, Addressing: ImmediateAddressing, Legal: false, Cycles: 2},
	0xC3: {Instruction: Dcp, Addressing: IndirectXAddressing, Legal: false, Cycles: 8},
	0xC4: {Instruction: Cpy, Addressing: ZeroPageAddressing, Legal: true, Cycles: 3},
	0xC5: {Instruction: Cmp, Addressing: ZeroPageAddressing, Legal: true, Cycles: 3},
	0xC6: {Instruction: Dec, Addressing: ZeroPageAddressing, Legal: true, Cycles: 5},
	0xC7: {Instruction: Dcp, Addressing: ZeroPageAddressing, Legal: false, Cycles: 5},
	0xC8: {Instruction: Iny, Addressing: ImpliedAddressing, Legal: true, Cycles: 2},
	0xC9: {Instruction: Cmp, Addressing: ImmediateAddressing, Legal: true, Cycles: 2},
	0xCA: {Instruction: Dex, Addressing: ImpliedAddressing, Legal: true, Cycles: 2},
	0xCB: {Instruction: Axs, Addressing: ImmediateAddressing, Legal: false, Cycles: 2},
	0xCC: {Instruction: Cpy, Addressing: AbsoluteAddressing, Legal: true, Cycles: 4},
	0xCD: {Instruction: Cmp, Addressing: AbsoluteAddressing, Legal: true, Cycles: 4},
	0xCE: {Instruction: Dec, Addressing: AbsoluteAddressing, Legal: true, Cycles: 6},
	0xCF: {Instruction: Dcp, Addressing: AbsoluteAddressing, Legal: false, Cycles: 6},
	0xD0: {Instruction: Bne, Addressing: RelativeAddressing, Legal: true, Cycles: 2},
	0xD1: {Instruction: Cmp, Addressing: IndirectYAddressing, Legal: true, Cycles: 5},
	0xD2: {Instruction: Kil, Addressing: ImpliedAddressing, Legal: false, Cycles: 0},
	0xD3: {Instruction: Dcp, Addressing: IndirectYAddressing, Legal: false, Cycles: 8},
	0xD4: {Instruction: Nop, Addressing: ZeroPageXAddressing, Legal: false, Cycles: 4},
	0xD5: {Instruction: Cmp, Addressing: ZeroPageXAddressing, Legal: true, Cycles: 4},
	0xD6: {Instruction: Dec, Addressing: ZeroPageXAddressing, Legal: true, Cycles: 6},
	0xD7: {Instruction: Dcp, Addressing: ZeroPageXAddressing, Legal: false, Cycles: 6},
	0xD8: {Instruction: Cld, Addressing: ImpliedAddressing, Legal: true, Cycles: 2},
	0xD9: {Instruction: Cmp, Addressing: AbsoluteYAddressing, Legal: true, Cycles: 4},
	0xDA: {Instruction: Nop, Addressing: ImpliedAddressing, Legal: false, Cycles: 2},
	0xDB: {Instruction: Dcp, Addressing: AbsoluteYAddressing, Legal: false, Cycles: 7},
	0xDC: {Instruction: Nop, Addressing: AbsoluteXAddressing, Legal: false, Cycles: 4},
	0xDD: {Instruction: Cmp, Addressing: AbsoluteXAddressing, Legal: true, Cycles: 4},
	0xDE: {Instruction: Dec, Addressing: AbsoluteXAddressing, Legal: true, Cycles: 7},
	0xDF: {Instruction: Dcp, Addressing: AbsoluteXAddressing, Legal: false, Cycles: 7},
	0xE0: {Instruction: Cpx, Addressing: ImmediateAddressing, Legal: true, Cycles: 2},
	0xE1: {Instruction: Sbc, Addressing: IndirectXAddressing, Legal: true, Cycles: 6},
	0xE2: {Instruction: Nop, Addressing: ImmediateAddressing, Legal: false, Cycles: 2},
	0xE3: {Instruction: Isc, Addressing: IndirectXAddressing, Legal: false, Cycles: 8},
	0xE4: {Instruction: Cpx, Addressing: ZeroPageAddressing, Legal: true, Cycles: 3},
	0xE5: {Instruction: Sbc, Addressing: ZeroPageAddressing, Legal: true, Cycles: 3},
	0xE6: {Instruction: Inc, Addressing: ZeroPageAddressing, Legal: true, Cycles: 5},
	0xE7: {Instruction: Isc, Addressing: ZeroPageAddressing, Legal: false, Cycles: 5},
	0xE8: {Instruction: Inx, Addressing: ImpliedAddressing, Legal: true, Cycles: 2},
	0xE9: {Instruction: Sbc, Addressing: ImmediateAddressing, Legal: true, Cycles: 2},
	0xEA: {Instruction: Nop, Addressing: ImpliedAddressing, Legal: true, Cycles: 2},
	0xEB: {Instruction: Sbc, Addressing: ImmediateAddressing, Legal: false, Cycles: 2},
	0xEC: {Instruction: Cpx, Addressing: AbsoluteAddressing, Legal: true, Cycles: 4},
	0xED: {Instruction: Sbc, Addressing: AbsoluteAddressing, Legal: true, Cycles: 4},
	0xEE: {Instruction: Inc, Addressing: AbsoluteAddressing, Legal: true, Cycles: 6},
	0xEF: {Instruction: Isc, Addressing: AbsoluteAddressing, Legal: false, Cycles: 6},
	0xF0: {Instruction: Beq, Addressing: RelativeAddressing, Legal: true, Cycles: 2},
	0xF1: {Instruction: Sbc, Addressing: IndirectYAddressing, Legal: true, Cycles: 5},
	0xF2: {Instruction: Kil, Addressing: ImpliedAddressing, Legal: false, Cycles: 0},
	0xF3: {Instruction: Isc, Addressing: IndirectYAddressing, Legal: false, Cycles: 8},
	0xF4: {Instruction: Nop, Addressing: ZeroPageXAddressing, Legal: false, Cycles: 4},
	0xF5: {Instruction: Sbc, Addressing: ZeroPageXAddressing, Legal: true, Cycles: 4},
	0xF6: {Instruction: Inc, Addressing: ZeroPageXAddressing, Legal: true, Cycles: 6},
	0xF7: {Instruction: Isc, Addressing: ZeroPageXAddressing, Legal: false, Cycles: 6},
	0xF8: {Instruction: Sed, Addressing: ImpliedAddressing, Legal: true, Cycles: 2},
	0xF9: {Instruction: Sbc, Addressing: AbsoluteYAddressing, Legal: true, Cycles: 4},
	0xFA: {Instruction: Nop, Addressing: ImpliedAddressing, Legal: false, Cycles: 2},
	0xFB: {Instruction: Isc, Addressing: AbsoluteYAddressing, Legal: false, Cycles: 7},
	0xFC: {Instruction: Nop, Addressing: AbsoluteXAddressing, Legal: false, Cycles: 4},
	0xFD: {Instruction: Sbc, Addressing: AbsoluteXAddressing, Legal: true, Cycles: 4},
	0xFE: {Instruction: Inc, Addressing: AbsoluteXAddressing, Legal: true, Cycles: 7},
	0xFF: {Instruction: Isc, Addressing: AbsoluteXAddressing, Legal: false, Cycles: 7},
}

func init() {
	for i := range Opcodes {
		Opcodes[i].Value = byte(i)
	}
}

// Decode returns the opcode for the given byte, every byte value is defined.
func Decode(b byte) Opcode {
	return Opcodes[b]
}
