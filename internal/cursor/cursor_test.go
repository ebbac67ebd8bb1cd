package cursor

import (
	"testing"

	"github.com/retroenv/c64reasm/internal/opcode"
	"github.com/retroenv/retrogolib/assert"
)

func TestCursor(t *testing.T) {
	c := New(0x0800, []byte{0xA9, 0x01, 0x8D, 0x00, 0x02, 0x60})
	assert.Equal(t, -1, c.OpcodeIndex())
	assert.True(t, c.Has(6))
	assert.False(t, c.Has(7))

	op := c.ReadOpcode()
	assert.Equal(t, opcode.Lda, op.Instruction)
	assert.Equal(t, uint16(0x01), c.ReadOperand(op.Addressing.OperandSize()))

	op = c.ReadOpcode()
	assert.Equal(t, opcode.Sta, op.Instruction)
	assert.Equal(t, 2, c.OpcodeIndex())
	assert.Equal(t, uint16(0x0802), c.OpcodeAddress())
	assert.Equal(t, uint16(0x0200), c.ReadWord())

	assert.Equal(t, 5, c.Index())
	assert.Equal(t, uint16(0x0805), c.Address())
	assert.True(t, c.Has(1))
	assert.Equal(t, byte(0x60), c.ReadByte())
	assert.False(t, c.Has(1))
	assert.True(t, c.Has(0))
}

func TestCursorBacktrack(t *testing.T) {
	c := New(0x1000, []byte{0x02, 0xEA})
	op := c.ReadOpcode()
	assert.False(t, op.Legal)

	c.SetIndex(0)
	assert.Equal(t, []byte{0x02}, c.Read(1))
	assert.Equal(t, 1, c.Index())
}

func TestCursorSetIndexPanics(t *testing.T) {
	defer func() {
		assert.True(t, recover() != nil)
	}()
	New(0x1000, []byte{0xEA}).SetIndex(2)
}
