// Package command contains the decoded commands and the analysis buffer that holds them.
package command

import (
	"fmt"
	"slices"

	"github.com/retroenv/c64reasm/internal/opcode"
)

// maxDataBytes is the size up to which data commands with different bytes get merged.
const maxDataBytes = 8

// Command is a decoded unit of the buffer. The implementations are
// *OpcodeCommand, *DataCommand, *AddressCommand and *BitCommand.
type Command interface {
	// Address returns the absolute address of the first byte of the command.
	Address() uint16
	// Size returns the number of bytes that the command covers.
	Size() int
	// Bytes returns the bytes of the command as stored in the buffer.
	Bytes() []byte
	// IsEnd returns whether execution does not continue with the following command.
	IsEnd() bool
	// Reachable returns whether the command can be reached by the control flow.
	Reachable() bool
	// SetReachable marks the command as reachable or not.
	SetReachable(reachable bool)

	setAddress(address uint16)
}

type base struct {
	address    uint16
	hasAddress bool
	reachable  bool
}

func (b *base) Address() uint16 {
	if !b.hasAddress {
		panic("command has no address assigned")
	}
	return b.address
}

func (b *base) setAddress(address uint16) {
	if b.hasAddress {
		panic(fmt.Sprintf("command address already assigned to $%04X", b.address))
	}
	b.address = address
	b.hasAddress = true
}

func (b *base) Reachable() bool {
	return b.reachable
}

func (b *base) SetReachable(reachable bool) {
	b.reachable = reachable
}

// OpcodeCommand is a decoded instruction.
type OpcodeCommand struct {
	base

	Opcode  opcode.Opcode
	Operand uint16
}

// NewOpcode returns a new reachable opcode command.
func NewOpcode(op opcode.Opcode, operand uint16) *OpcodeCommand {
	return &OpcodeCommand{
		base:    base{reachable: true},
		Opcode:  op,
		Operand: operand,
	}
}

// Size returns the size of the instruction including its operand.
func (c *OpcodeCommand) Size() int {
	return c.Opcode.Size()
}

// Bytes returns the opcode byte followed by the little endian operand.
func (c *OpcodeCommand) Bytes() []byte {
	switch c.Opcode.Addressing.OperandSize() {
	case 0:
		return []byte{c.Opcode.Value}
	case 1:
		return []byte{c.Opcode.Value, byte(c.Operand)}
	default:
		return []byte{c.Opcode.Value, byte(c.Operand), byte(c.Operand >> 8)}
	}
}

// IsEnd returns whether the instruction is an unconditional terminator like RTS or JMP.
func (c *OpcodeCommand) IsEnd() bool {
	return c.Opcode.Instruction.End
}

// Is returns whether the command executes the given instruction.
func (c *OpcodeCommand) Is(ins *opcode.Instruction) bool {
	return c.Opcode.Instruction == ins
}

// HasTarget returns whether the operand denotes an address.
func (c *OpcodeCommand) HasTarget() bool {
	return c.Opcode.Addressing.IsAddress()
}

// Target returns the absolute address that the operand refers to.
func (c *OpcodeCommand) Target() uint16 {
	return c.Opcode.Addressing.Address(c.Address(), c.Operand)
}

// DataCommand is a sequence of bytes that are not executed.
type DataCommand struct {
	base

	Data []byte
}

// NewData returns a new unreachable data command.
func NewData(data ...byte) *DataCommand {
	return &DataCommand{Data: slices.Clone(data)}
}

// Size returns the number of data bytes.
func (c *DataCommand) Size() int {
	return len(c.Data)
}

// Bytes returns the data bytes.
func (c *DataCommand) Bytes() []byte {
	return c.Data
}

// IsEnd returns true, data is never executed.
func (c *DataCommand) IsEnd() bool {
	return true
}

// IsSameByte returns whether all data bytes are identical.
func (c *DataCommand) IsSameByte() bool {
	for _, b := range c.Data[1:] {
		if b != c.Data[0] {
			return false
		}
	}
	return true
}

// Merge appends the bytes of the other data command if both can be combined.
// Beyond maxDataBytes only runs of the same byte keep growing.
func (c *DataCommand) Merge(other *DataCommand) bool {
	if len(c.Data) >= maxDataBytes &&
		(!c.IsSameByte() || !other.IsSameByte() || c.Data[0] != other.Data[0]) {
		return false
	}
	c.Data = append(c.Data, other.Data...)
	return true
}

// AddressCommand is an absolute code address stored as data, like an entry of a jump table.
type AddressCommand struct {
	base

	Target uint16
}

// NewAddress returns a new unreachable address command.
func NewAddress(target uint16) *AddressCommand {
	return &AddressCommand{Target: target}
}

// Size returns 2.
func (c *AddressCommand) Size() int {
	return 2
}

// Bytes returns the little endian address.
func (c *AddressCommand) Bytes() []byte {
	return []byte{byte(c.Target), byte(c.Target >> 8)}
}

// IsEnd returns true, the address is never executed.
func (c *AddressCommand) IsEnd() bool {
	return true
}

// BitCommand is the opcode byte of a BIT instruction whose operand is used to
// hide another instruction. Only the opcode byte is covered by the command.
type BitCommand struct {
	base

	Opcode  opcode.Opcode
	Operand uint16
}

// NewBit returns a new reachable bit command.
func NewBit(op opcode.Opcode, operand uint16) *BitCommand {
	return &BitCommand{
		base:    base{reachable: true},
		Opcode:  op,
		Operand: operand,
	}
}

// Size returns 1.
func (c *BitCommand) Size() int {
	return 1
}

// Bytes returns the BIT opcode byte.
func (c *BitCommand) Bytes() []byte {
	return []byte{c.Opcode.Value}
}

// IsEnd returns false, execution continues with the skipped instruction.
func (c *BitCommand) IsEnd() bool {
	return false
}

// endCommand is the unreachable command located behind the end of the buffer.
type endCommand struct {
	base
}

func (c *endCommand) Size() int     { return 0 }
func (c *endCommand) Bytes() []byte { return nil }
func (c *endCommand) IsEnd() bool   { return true }

// End returns a command that represents the end of the buffer, it is never reachable.
func End() Command {
	return &endCommand{}
}
