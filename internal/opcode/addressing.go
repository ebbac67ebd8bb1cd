package opcode

import "fmt"

// AddressingMode defines how the operand bytes of an instruction are interpreted.
type AddressingMode int

// addressing modes.
const (
	ImpliedAddressing   AddressingMode = iota // no operand or accumulator
	ImmediateAddressing                       // #$00
	ZeroPageAddressing                        // $00
	ZeroPageXAddressing                       // $00,X
	ZeroPageYAddressing                       // $00,Y
	IndirectXAddressing                       // ($00,X)
	IndirectYAddressing                       // ($00),Y
	AbsoluteAddressing                        // $0000
	AbsoluteXAddressing                       // $0000,X
	AbsoluteYAddressing                       // $0000,Y
	IndirectAddressing                        // ($0000)
	RelativeAddressing                        // branch offset relative to the program counter
)

var modeNames = [...]string{
	ImpliedAddressing:   "implied",
	ImmediateAddressing: "immediate",
	ZeroPageAddressing:  "zeropage",
	ZeroPageXAddressing: "zeropage,x",
	ZeroPageYAddressing: "zeropage,y",
	IndirectXAddressing: "(indirect,x)",
	IndirectYAddressing: "(indirect),y",
	AbsoluteAddressing:  "absolute",
	AbsoluteXAddressing: "absolute,x",
	AbsoluteYAddressing: "absolute,y",
	IndirectAddressing:  "(indirect)",
	RelativeAddressing:  "relative",
}

func (m AddressingMode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("AddressingMode(%d)", int(m))
	}
	return modeNames[m]
}

// OperandSize returns the number of operand bytes following the opcode, 0, 1 or 2.
func (m AddressingMode) OperandSize() int {
	switch m {
	case ImpliedAddressing:
		return 0
	case AbsoluteAddressing, AbsoluteXAddressing, AbsoluteYAddressing, IndirectAddressing:
		return 2
	default:
		return 1
	}
}

// IsAddress returns whether the operand denotes a memory address.
func (m AddressingMode) IsAddress() bool {
	return m != ImpliedAddressing && m != ImmediateAddressing
}

// Address returns the absolute address that the operand refers to.
// pc is the address of the opcode. Relative branches wrap around at $FFFF
// the same way the CPU does.
// It panics for modes that do not denote an address.
func (m AddressingMode) Address(pc uint16, operand uint16) uint16 {
	if !m.IsAddress() {
		panic(fmt.Sprintf("addressing mode %s does not denote an address", m))
	}
	if m == RelativeAddressing {
		return uint16(int(pc) + 2 + int(int8(operand)))
	}
	return operand
}

// Format renders the operand numerically.
func (m AddressingMode) Format(pc uint16, operand uint16) string {
	switch {
	case m == ImpliedAddressing:
		return ""
	case m == RelativeAddressing:
		return m.FormatSymbol(fmt.Sprintf("$%04X", m.Address(pc, operand)))
	case m.OperandSize() == 1:
		return m.FormatSymbol(fmt.Sprintf("$%02X", operand))
	default:
		return m.FormatSymbol(fmt.Sprintf("$%04X", operand))
	}
}

// FormatSymbol renders the operand using the given symbol as argument.
func (m AddressingMode) FormatSymbol(symbol string) string {
	switch m {
	case ImpliedAddressing:
		return ""
	case ImmediateAddressing:
		return "#" + symbol
	case ZeroPageXAddressing, AbsoluteXAddressing:
		return symbol + ",X"
	case ZeroPageYAddressing, AbsoluteYAddressing:
		return symbol + ",Y"
	case IndirectXAddressing:
		return "(" + symbol + ",X)"
	case IndirectYAddressing:
		return "(" + symbol + "),Y"
	case IndirectAddressing:
		return "(" + symbol + ")"
	default:
		return symbol
	}
}
