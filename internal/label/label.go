// Package label implements the labels that are generated for referenced addresses.
package label

import "fmt"

// Kind defines what a label points to.
type Kind uint8

// label kinds.
const (
	Code     Kind = iota // jump or branch target inside the buffer
	Data                 // data access target inside the buffer
	External             // address outside the buffer
)

const (
	codePrefix     = "L"
	dataPrefix     = "l"
	zeroPagePrefix = "Z"
	externalPrefix = "X"
)

func (k Kind) String() string {
	switch k {
	case Code:
		return "code"
	case Data:
		return "data"
	case External:
		return "external"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Label names an address.
type Label struct {
	Address uint16
	Kind    Kind
}

// New returns a new label.
func New(address uint16, kind Kind) Label {
	return Label{Address: address, Kind: kind}
}

// Name returns the name of the label, like L_0810 or Z_FB.
func (l Label) Name() string {
	prefix := codePrefix
	switch l.Kind {
	case Data:
		prefix = dataPrefix
	case External:
		if l.Address < 0x100 {
			prefix = zeroPagePrefix
		} else {
			prefix = externalPrefix
		}
	}

	if l.Address < 0x100 {
		return fmt.Sprintf("%s_%02X", prefix, l.Address)
	}
	return fmt.Sprintf("%s_%04X", prefix, l.Address)
}

func (l Label) String() string {
	return l.Name()
}
