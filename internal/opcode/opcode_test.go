package opcode

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecodeTotality(t *testing.T) {
	for i := range 256 {
		op := Decode(byte(i))
		assert.Equal(t, byte(i), op.Value)
		assert.True(t, op.Instruction != nil)
		size := op.Addressing.OperandSize()
		assert.True(t, size >= 0 && size <= 2)
	}
}

func TestLegalOpcodeCount(t *testing.T) {
	var legal int
	for _, op := range Opcodes {
		if op.Legal {
			legal++
		}
	}
	assert.Equal(t, 151, legal)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		value  byte
		ins    *Instruction
		mode   AddressingMode
		legal  bool
		cycles byte
	}{
		{0x00, Brk, ImpliedAddressing, true, 7},
		{0x20, Jsr, AbsoluteAddressing, true, 6},
		{0x2C, Bit, AbsoluteAddressing, true, 4},
		{0x2F, Rla, AbsoluteAddressing, false, 6},
		{0x31, And, IndirectYAddressing, true, 5},
		{0x4C, Jmp, AbsoluteAddressing, true, 3},
		{0x6C, Jmp, IndirectAddressing, true, 5},
		{0x70, Bvs, RelativeAddressing, true, 2},
		{0x87, Sax, ZeroPageAddressing, false, 3},
		{0x97, Sax, ZeroPageYAddressing, false, 4},
		{0xA9, Lda, ImmediateAddressing, true, 2},
		{0xD0, Bne, RelativeAddressing, true, 2},
		{0xEA, Nop, ImpliedAddressing, true, 2},
		{0xF1, Sbc, IndirectYAddressing, true, 5},
		{0xF2, Kil, ImpliedAddressing, false, 0},
	}

	for _, tt := range tests {
		op := Decode(tt.value)
		assert.Equal(t, tt.ins, op.Instruction)
		assert.Equal(t, tt.mode, op.Addressing)
		assert.Equal(t, tt.legal, op.Legal)
		assert.Equal(t, tt.cycles, op.Cycles)
	}
}

func TestInstructionFlow(t *testing.T) {
	assert.True(t, Rts.End)
	assert.True(t, Rti.End)
	assert.True(t, Brk.End)
	assert.True(t, Jmp.End)
	assert.True(t, Jmp.Jump)
	assert.True(t, Jsr.Jump)
	assert.False(t, Jsr.End)
	assert.False(t, Lda.Jump)
}
