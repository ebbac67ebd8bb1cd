// Package tokenizer rebuilds the commands of a buffer from its bytes and their classification.
package tokenizer

import (
	"github.com/retroenv/c64reasm/internal/codetype"
	"github.com/retroenv/c64reasm/internal/command"
	"github.com/retroenv/c64reasm/internal/cursor"
	"github.com/retroenv/c64reasm/internal/opcode"
)

// Tokenize clears the buffer and decodes all bytes into commands, recording
// the references of every decoded instruction. The result only depends on the
// bytes, the classification and the segments of the buffer.
func Tokenize(buf *command.Buffer) {
	buf.Clear()

	code := cursor.New(buf.StartAddress(), buf.Code())
	for code.Has(1) {
		index := code.Index()

		var cmd command.Command
		switch buf.Type(index) {
		case codetype.Bit:
			cmd = tokenizeBit(code)
		case codetype.Address:
			cmd = tokenizeAddress(buf, code)
		case codetype.Data:
			cmd = command.NewData(code.ReadByte())
		default:
			cmd = tokenizeOpcode(buf, code)
		}

		buf.PutCommand(index, cmd)
		code.SetIndex(index + cmd.Size())

		switch c := cmd.(type) {
		case *command.OpcodeCommand:
			if c.HasTarget() {
				buf.AddReference(c.Opcode.Instruction.Jump, index, c.Target())
			}
		case *command.AddressCommand:
			buf.AddCodeReference(index, c.Target)
		}
	}
}

// tokenizeBit decodes a BIT instruction that only covers its opcode byte, the
// operand bytes are decoded afterwards as the skipped instruction.
func tokenizeBit(code *cursor.Cursor) command.Command {
	index := code.Index()
	op := code.ReadOpcode()
	size := op.Addressing.OperandSize()
	if op.Instruction == opcode.Bit && size > 0 && code.Has(size) {
		return command.NewBit(op, code.ReadOperand(size))
	}

	code.SetIndex(index)
	return command.NewData(code.ReadByte())
}

func tokenizeAddress(buf *command.Buffer, code *cursor.Cursor) command.Command {
	if !code.Has(2) {
		return command.NewData(code.ReadByte())
	}

	index := code.Index()
	address := code.ReadWord()
	if buf.HasAddress(address) {
		return command.NewAddress(address)
	}

	code.SetIndex(index)
	return command.NewData(code.Read(2)...)
}

// tokenizeOpcode decodes an instruction. Illegal opcodes are only accepted if
// the byte is explicitly classified as opcode.
func tokenizeOpcode(buf *command.Buffer, code *cursor.Cursor) command.Command {
	index := code.Index()
	op := code.ReadOpcode()
	size := op.Addressing.OperandSize()
	if code.Has(size) && (op.Legal || buf.Type(index) == codetype.Opcode) {
		return command.NewOpcode(op, code.ReadOperand(size))
	}

	code.SetIndex(index)
	return command.NewData(code.ReadByte())
}
