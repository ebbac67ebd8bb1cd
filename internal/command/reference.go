package command

import (
	"fmt"
	"slices"

	"github.com/retroenv/c64reasm/internal/label"
)

// HasCodeLabel returns whether a code label exists at the address.
func (b *Buffer) HasCodeLabel(address uint16) bool {
	return b.labels[label.Code].Has(address)
}

// HasDataLabel returns whether a data label exists at the address.
func (b *Buffer) HasDataLabel(address uint16) bool {
	return b.labels[label.Data].Has(address)
}

// HasLabel returns whether a code or data label exists at the address.
func (b *Buffer) HasLabel(address uint16) bool {
	return b.HasCodeLabel(address) || b.HasDataLabel(address)
}

// Label returns the label for the address, code labels take precedence over
// data labels and those over external labels.
func (b *Buffer) Label(address uint16) (label.Label, bool) {
	for _, kind := range []label.Kind{label.Code, label.Data, label.External} {
		if l, ok := b.labels[kind].Get(address); ok {
			return l, true
		}
	}
	return label.Label{}, false
}

// Labels returns all labels of the given kind sorted by address.
func (b *Buffer) Labels(kind label.Kind) []label.Label {
	return b.labels[kind].Sorted()
}

// AddReference records a reference from the command at the index to the address.
// Addresses outside of the buffer create an external reference, otherwise a code
// reference is created for jumps and a data reference for everything else.
func (b *Buffer) AddReference(jump bool, from int, to uint16) {
	switch {
	case !b.HasAddress(to):
		b.AddExternalReference(from, to)
	case jump:
		b.AddCodeReference(from, to)
	default:
		b.AddDataReference(from, to)
	}
}

// AddCodeReference records a jump from the index to an address inside the buffer.
func (b *Buffer) AddCodeReference(from int, to uint16) {
	b.mustHaveAddress(to)
	b.addReference(label.Code, from, to)
}

// AddDataReference records a data access from the index to an address inside the buffer.
func (b *Buffer) AddDataReference(from int, to uint16) {
	b.mustHaveAddress(to)
	b.addReference(label.Data, from, to)
}

// AddExternalReference records a reference from the index to an address outside the buffer.
func (b *Buffer) AddExternalReference(from int, to uint16) {
	if b.HasAddress(to) {
		panic(fmt.Sprintf("address $%04X is inside the buffer", to))
	}
	b.addReference(label.External, from, to)
}

func (b *Buffer) mustHaveAddress(address uint16) {
	if !b.HasAddress(address) {
		panic(fmt.Sprintf("address $%04X is outside the buffer", address))
	}
}

func (b *Buffer) addReference(kind label.Kind, from int, to uint16) {
	b.mustHaveIndex(from)

	targets := b.references[kind][from]
	if !slices.Contains(targets, to) {
		b.references[kind][from] = append(targets, to)
	}
	if !b.labels[kind].Has(to) {
		b.labels[kind].Set(to, label.New(to, kind))
	}
}

// References returns the target addresses of all references of the given kind
// that originate at the index.
func (b *Buffer) References(kind label.Kind, from int) []uint16 {
	return slices.Clone(b.references[kind][from])
}

// Referrers returns the sorted indexes of all code and data references that target the address.
func (b *Buffer) Referrers(address uint16) []int {
	var result []int
	for _, kind := range []label.Kind{label.Code, label.Data} {
		for from, targets := range b.references[kind] {
			if slices.Contains(targets, address) && !slices.Contains(result, from) {
				result = append(result, from)
			}
		}
	}
	slices.Sort(result)
	return result
}

// RemoveReferences removes all references that originate at the index.
// Labels that are not targeted by any remaining reference are removed as well,
// the return value reports whether any label has been removed.
func (b *Buffer) RemoveReferences(from int) bool {
	b.mustHaveIndex(from)

	var removed bool
	for kind, refs := range b.references {
		targets, ok := refs[from]
		if !ok {
			continue
		}
		delete(refs, from)

		for _, target := range targets {
			if isReferenced(refs, target) {
				continue
			}
			if !b.labels[kind].Delete(target) {
				panic(fmt.Sprintf("missing %s label for referenced address $%04X", label.Kind(kind), target))
			}
			removed = true
		}
	}
	return removed
}

func isReferenced(refs map[int][]uint16, address uint16) bool {
	for _, targets := range refs {
		if slices.Contains(targets, address) {
			return true
		}
	}
	return false
}
