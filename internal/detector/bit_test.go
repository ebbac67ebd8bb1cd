package detector

import (
	"testing"

	"github.com/retroenv/c64reasm/internal/codetype"
	"github.com/retroenv/c64reasm/internal/command"
	"github.com/retroenv/c64reasm/internal/opcode"
	"github.com/retroenv/c64reasm/internal/tokenizer"
	"github.com/retroenv/retrogolib/assert"
)

func TestBitSkipIdiom(t *testing.T) {
	buf := newTokenized(t, 0x2C, 0xEA, 0xEA, 0x60)
	buf.AddCodeReference(3, 0x0801)

	b := &Bit{}
	assert.True(t, b.Detect(buf))
	assert.Equal(t, codetype.Bit, buf.Type(0))
	assert.Equal(t, codetype.Opcode, buf.Type(1))
	assert.Equal(t, codetype.Unknown, buf.Type(2))

	tokenizer.Tokenize(buf)
	_, ok := commandAt(t, buf, 0).(*command.BitCommand)
	assert.True(t, ok)
	nop, ok := commandAt(t, buf, 1).(*command.OpcodeCommand)
	assert.True(t, ok)
	assert.True(t, nop.Is(opcode.Nop))
}

func TestBitHiddenTwoByteInstruction(t *testing.T) {
	// BIT $01A9; RTS with a jump to LDA #$01 at $0801
	buf := newTokenized(t, 0x2C, 0xA9, 0x01, 0x60)
	buf.AddCodeReference(3, 0x0801)

	b := &Bit{}
	assert.True(t, b.Detect(buf))
	assert.Equal(t, []codetype.Type{codetype.Bit, codetype.Opcode, codetype.Code, codetype.Unknown}, buf.Types())
	assert.False(t, b.Detect(buf))
}

func TestBitIgnored(t *testing.T) {
	tests := []struct {
		name      string
		code      []byte
		reference uint16
	}{
		{name: "no label", code: []byte{0x2C, 0xEA, 0xEA, 0x60}},
		{name: "label on second operand byte", code: []byte{0x2C, 0xEA, 0xEA, 0x60}, reference: 0x0802},
		{name: "illegal hidden opcode", code: []byte{0x2C, 0x02, 0xEA, 0x60}, reference: 0x0801},
		{name: "hidden instruction too large", code: []byte{0x2C, 0x4C, 0xEA, 0x60}, reference: 0x0801},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := newTokenized(t, tt.code...)
			if tt.reference != 0 {
				buf.AddCodeReference(3, tt.reference)
			}

			b := &Bit{}
			assert.False(t, b.Detect(buf))
			assert.Equal(t, codetype.Unknown, buf.Type(0))
		})
	}
}
