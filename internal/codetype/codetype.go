// Package codetype defines the classification of single bytes of a code buffer.
package codetype

import (
	"errors"
	"fmt"
	"strings"
)

// Type is the classification of a single byte.
type Type uint8

// code types.
const (
	Unknown Type = iota // not classified yet
	Opcode              // an instruction starts here
	Code                // part of an instruction, but not its first byte
	Data                // not executed
	Bit                 // BIT opcode that is used to skip the next instruction
	Address             // absolute address of code, stored as data
)

// ErrUnknownType is returned when parsing a name that is not a code type.
var ErrUnknownType = errors.New("unknown code type")

var types = [...]struct {
	id   string
	name string
}{
	Unknown: {"U", "unknown"},
	Opcode:  {"O", "opcode"},
	Code:    {"C", "code"},
	Data:    {"D", "data"},
	Bit:     {"B", "bit"},
	Address: {"A", "address"},
}

// ID returns the single letter identifier of the type.
func (t Type) ID() string {
	if int(t) >= len(types) {
		return "?"
	}
	return types[t].id
}

func (t Type) String() string {
	if int(t) >= len(types) {
		return fmt.Sprintf("Type(%d)", t)
	}
	return types[t].name
}

// IsUnknown returns whether the byte has not been classified yet.
func (t Type) IsUnknown() bool {
	return t == Unknown
}

// IsCode returns whether the byte is known to be executed.
func (t Type) IsCode() bool {
	return t == Opcode || t == Code
}

// IsData returns whether the byte is known to not be executed.
func (t Type) IsData() bool {
	return t == Data || t == Address
}

// Parse returns the type for the given name or single letter identifier.
func Parse(s string) (Type, error) {
	for i, typ := range types {
		if strings.EqualFold(s, typ.name) || strings.EqualFold(s, typ.id) {
			return Type(i), nil
		}
	}
	return Unknown, fmt.Errorf("%w: '%s'", ErrUnknownType, s)
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	if int(t) >= len(types) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, t)
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(text []byte) error {
	typ, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = typ
	return nil
}
