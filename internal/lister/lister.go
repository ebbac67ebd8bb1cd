// Package lister prints plain linear views of a program without any analysis:
// a disassembly that decodes every byte as instruction, a hex dump and the
// listing of a tokenized BASIC program.
package lister

import (
	"bufio"
	"fmt"
	"io"

	"github.com/retroenv/c64reasm/internal/cursor"
)

// BasicStart is the address of the BASIC program area, a program loaded
// there starts with a BASIC listing.
const BasicStart = 0x0801

const dumpWidth = 16

// Disassemble decodes the code linearly. A program located at the BASIC start
// gets its BASIC lines listed first. Illegal opcodes and instructions that
// exceed the code are printed as ???.
func Disassemble(w io.Writer, start uint16, code []byte) error {
	out := bufio.NewWriter(w)
	c := cursor.New(start, code)
	if start == BasicStart {
		listBasic(out, c)
	}

	for c.Has(1) {
		op := c.ReadOpcode()
		fmt.Fprintf(out, "%04X  %02X", c.OpcodeAddress(), op.Value)

		size := op.Addressing.OperandSize()
		if !op.Legal || !c.Has(size) {
			fmt.Fprintln(out, "        ???")
			continue
		}

		operand := c.ReadOperand(size)
		switch size {
		case 0:
			fmt.Fprintf(out, "        %s\n", op.Instruction.Name)
		case 1:
			fmt.Fprintf(out, " %02X     %s %s\n", operand, op.Instruction.Name,
				op.Addressing.Format(c.OpcodeAddress(), operand))
		default:
			fmt.Fprintf(out, " %02X %02X  %s %s\n", byte(operand), byte(operand>>8), op.Instruction.Name,
				op.Addressing.Format(c.OpcodeAddress(), operand))
		}
	}

	if err := out.Flush(); err != nil {
		return fmt.Errorf("writing disassembly: %w", err)
	}
	return nil
}

// Dump prints the code as hex bytes followed by the characters of the bytes.
func Dump(w io.Writer, start uint16, code []byte) error {
	out := bufio.NewWriter(w)
	for offset := 0; offset < len(code); offset += dumpWidth {
		line := code[offset:min(offset+dumpWidth, len(code))]
		fmt.Fprintf(out, "%04X  ", start+uint16(offset))

		chars := make([]rune, 0, dumpWidth)
		for i := range dumpWidth {
			if i >= len(line) {
				fmt.Fprint(out, "   ")
				continue
			}
			fmt.Fprintf(out, "%02X ", line[i])
			chars = append(chars, printable(line[i]))
		}
		fmt.Fprintf(out, "  %s\n", string(chars))
	}

	if err := out.Flush(); err != nil {
		return fmt.Errorf("writing dump: %w", err)
	}
	return nil
}

// printable returns the character of the byte or '.' if it has no visible glyph.
func printable(b byte) rune {
	if r := petscii(b); r != 0 {
		return r
	}
	return '.'
}
