package writer

import (
	"fmt"
	"strings"

	"github.com/retroenv/c64reasm/internal/command"
	"github.com/retroenv/c64reasm/internal/opcode"
)

const fillThreshold = 8

// Text returns the assembly text of the command. Operands that point at a
// label are expressed by the label name.
func Text(buf *command.Buffer, cmd command.Command) string {
	switch c := cmd.(type) {
	case *command.OpcodeCommand:
		return opcodeText(buf, c)
	case *command.DataCommand:
		return dataText(c.Data)
	case *command.AddressCommand:
		if l, ok := buf.Label(c.Target); ok {
			return "!WORD " + l.Name()
		}
		return fmt.Sprintf("!WORD $%04X", c.Target)
	case *command.BitCommand:
		return fmt.Sprintf("!BYTE $%02X ; %s %s", c.Opcode.Value, c.Opcode.Instruction.Name,
			c.Opcode.Addressing.Format(c.Address(), c.Operand))
	default:
		panic(fmt.Sprintf("unsupported command type %T", cmd))
	}
}

// sourceText returns the text of the command for assembling. Illegal opcodes
// are written as bytes, absolute operands below $100 force 16 bit addressing.
func sourceText(buf *command.Buffer, cmd command.Command) string {
	c, ok := cmd.(*command.OpcodeCommand)
	if !ok {
		return Text(buf, cmd)
	}
	if !c.Opcode.Legal {
		return dataText(c.Bytes()) + " ; " + opcodeText(buf, c)
	}
	text := opcodeText(buf, c)
	if forceAbsolute(c) {
		text = strings.Replace(text, " ", "+2 ", 1)
	}
	return text
}

func opcodeText(buf *command.Buffer, c *command.OpcodeCommand) string {
	mode := c.Opcode.Addressing
	name := c.Opcode.Instruction.Name
	if mode.OperandSize() == 0 {
		return name
	}

	if mode.IsAddress() {
		if l, ok := buf.Label(c.Target()); ok {
			return name + " " + mode.FormatSymbol(l.Name())
		}
	}
	return name + " " + mode.Format(c.Address(), c.Operand)
}

func forceAbsolute(c *command.OpcodeCommand) bool {
	switch c.Opcode.Addressing {
	case opcode.AbsoluteAddressing, opcode.AbsoluteXAddressing, opcode.AbsoluteYAddressing:
		return c.Operand < 0x100
	default:
		return false
	}
}

// dataText renders bytes as byte list, runs of more than fillThreshold
// identical bytes as fill directive.
func dataText(data []byte) string {
	if len(data) > fillThreshold && sameByte(data) {
		return fmt.Sprintf("!FILL %d, $%02X", len(data), data[0])
	}

	var sb strings.Builder
	sb.WriteString("!BYTE ")
	for i, b := range data {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "$%02X", b)
	}
	return sb.String()
}

func sameByte(data []byte) bool {
	for _, b := range data[1:] {
		if b != data[0] {
			return false
		}
	}
	return true
}
