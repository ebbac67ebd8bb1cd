// Package cursor implements a read cursor over a fixed code buffer.
package cursor

import (
	"fmt"

	"github.com/retroenv/c64reasm/internal/opcode"
)

// Cursor reads opcodes and their operands from a code buffer that is
// located at a start address.
type Cursor struct {
	start       uint16
	code        []byte
	position    int
	opcodeIndex int
}

// New returns a cursor positioned at the first byte of code.
func New(start uint16, code []byte) *Cursor {
	return &Cursor{
		start:       start,
		code:        code,
		opcodeIndex: -1,
	}
}

// Has returns whether at least n more bytes can be read.
func (c *Cursor) Has(n int) bool {
	return c.position+n <= len(c.code)
}

// Index returns the index of the next byte to read.
func (c *Cursor) Index() int {
	return c.position
}

// SetIndex moves the cursor to the given index.
func (c *Cursor) SetIndex(index int) {
	if index < 0 || index > len(c.code) {
		panic(fmt.Sprintf("cursor index %d out of range 0..%d", index, len(c.code)))
	}
	c.position = index
}

// OpcodeIndex returns the index of the last opcode read, -1 if none has been read yet.
func (c *Cursor) OpcodeIndex() int {
	return c.opcodeIndex
}

// OpcodeAddress returns the address of the last opcode read.
func (c *Cursor) OpcodeAddress() uint16 {
	return c.start + uint16(c.opcodeIndex)
}

// Address returns the address of the next byte to read.
func (c *Cursor) Address() uint16 {
	return c.start + uint16(c.position)
}

// ReadOpcode reads a byte, remembers its position and decodes it.
func (c *Cursor) ReadOpcode() opcode.Opcode {
	c.opcodeIndex = c.position
	return opcode.Decode(c.ReadByte())
}

// ReadByte reads a single byte.
func (c *Cursor) ReadByte() byte {
	b := c.code[c.position]
	c.position++
	return b
}

// ReadWord reads a little endian 16 bit value.
func (c *Cursor) ReadWord() uint16 {
	lo := c.ReadByte()
	hi := c.ReadByte()
	return uint16(hi)<<8 | uint16(lo)
}

// ReadOperand reads size operand bytes as a little endian value, size is 0, 1 or 2.
func (c *Cursor) ReadOperand(size int) uint16 {
	switch size {
	case 0:
		return 0
	case 1:
		return uint16(c.ReadByte())
	default:
		return c.ReadWord()
	}
}

// Read returns the next n bytes.
func (c *Cursor) Read(n int) []byte {
	b := c.code[c.position : c.position+n]
	c.position += n
	return b
}
