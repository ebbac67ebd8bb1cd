package command

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/retroenv/c64reasm/internal/codetype"
	"github.com/retroenv/c64reasm/internal/label"
	"github.com/retroenv/c64reasm/internal/symbols"
)

const addressSpace = 0x10000

var (
	// ErrAddressRange is returned when code would be located outside of the 64K address space.
	ErrAddressRange = errors.New("address out of range")
	// ErrInvalidIndex is returned for an index that is not part of the buffer.
	ErrInvalidIndex = errors.New("invalid index")
	// ErrDuplicateRebase is returned when rebasing an index that already starts a segment.
	ErrDuplicateRebase = errors.New("index already rebased")
	// ErrDuplicateSubroutine is returned when registering a subroutine address twice.
	ErrDuplicateSubroutine = errors.New("subroutine already registered")
)

// Segment starts a range of indexes that share a base address.
// The address of an index is Base + index.
type Segment struct {
	Index int
	Base  int
}

// Subroutine describes that calls of the subroutine at Address are followed by
// Arguments bytes of the given type. Zero arguments denote a zero terminated argument.
type Subroutine struct {
	Address   uint16
	Arguments int
	Type      codetype.Type
}

// Entry is a command together with its index.
type Entry struct {
	Index   int
	Command Command
}

// Buffer is the analysis state of a code buffer: the bytes, their classification,
// the decoded commands, labels and the references that created them.
// It is not safe for concurrent use.
type Buffer struct {
	// persistent state
	code        []byte
	types       []codetype.Type
	segments    []Segment
	subroutines map[uint16]Subroutine

	// derived state, rebuilt by every tokenization
	commands   map[int]Command
	indexes    []int
	references [3]map[int][]uint16 // per label kind: origin index -> target addresses
	labels     [3]*symbols.Manager[label.Label]
}

// New returns a buffer for code located at the start address.
func New(start uint16, code []byte) (*Buffer, error) {
	if int(start)+len(code) > addressSpace {
		return nil, fmt.Errorf("%w: %d bytes at $%04X", ErrAddressRange, len(code), start)
	}

	b := &Buffer{
		code:  code,
		types: make([]codetype.Type, len(code)),
		segments: []Segment{
			{Index: 0, Base: int(start)},
			{Index: len(code), Base: int(start)},
		},
		subroutines: make(map[uint16]Subroutine),
		commands:    make(map[int]Command),
	}
	for i := range b.references {
		b.references[i] = make(map[int][]uint16)
		b.labels[i] = symbols.New[label.Label]()
	}
	return b, nil
}

// Code returns the bytes of the buffer.
func (b *Buffer) Code() []byte {
	return b.code
}

// Len returns the number of bytes of the buffer.
func (b *Buffer) Len() int {
	return len(b.code)
}

// HasIndex returns whether the index addresses a byte of the buffer.
func (b *Buffer) HasIndex(index int) bool {
	return index >= 0 && index < len(b.code)
}

// HasEndIndex returns whether the index is a valid exclusive end index.
func (b *Buffer) HasEndIndex(index int) bool {
	return index >= 0 && index <= len(b.code)
}

func (b *Buffer) mustHaveIndex(index int) {
	if !b.HasIndex(index) {
		panic(fmt.Sprintf("%s %d, buffer length is %d", ErrInvalidIndex, index, len(b.code)))
	}
}

// StartAddress returns the address of the first byte.
func (b *Buffer) StartAddress() uint16 {
	return uint16(b.segments[0].Base)
}

// Segments returns a copy of the segment table including the end sentinel.
func (b *Buffer) Segments() []Segment {
	return slices.Clone(b.segments)
}

// AddressForIndex returns the absolute address of the byte at the index.
func (b *Buffer) AddressForIndex(index int) uint16 {
	b.mustHaveIndex(index)
	i, _ := slices.BinarySearchFunc(b.segments, index, func(s Segment, index int) int {
		return s.Index - index
	})
	if i == len(b.segments) || b.segments[i].Index != index {
		i--
	}
	return uint16(b.segments[i].Base + index)
}

// IndexForAddress returns the index of the byte that is located at the address.
func (b *Buffer) IndexForAddress(address uint16) (int, bool) {
	addr := int(address)
	for i := range len(b.segments) - 1 {
		segment, next := b.segments[i], b.segments[i+1]
		if addr >= segment.Base+segment.Index && addr < segment.Base+next.Index {
			return addr - segment.Base, true
		}
	}
	return 0, false
}

// HasAddress returns whether the address is located inside the buffer.
func (b *Buffer) HasAddress(address uint16) bool {
	_, ok := b.IndexForAddress(address)
	return ok
}

// Rebase starts a new segment at the index whose base address is base,
// the index is then located at base + index.
func (b *Buffer) Rebase(index int, base int) error {
	if !b.HasIndex(index) {
		return fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}
	i, found := slices.BinarySearchFunc(b.segments, index, func(s Segment, index int) int {
		return s.Index - index
	})
	if found {
		return fmt.Errorf("%w: %d", ErrDuplicateRebase, index)
	}

	next := b.segments[i].Index
	if base+index < 0 || base+next > addressSpace {
		return fmt.Errorf("%w: index %d based at $%X", ErrAddressRange, index, base+index)
	}
	b.segments = slices.Insert(b.segments, i, Segment{Index: index, Base: base})
	return nil
}

// Base starts a new segment at the index so that the index is located at the address.
func (b *Buffer) Base(index int, address uint16) error {
	return b.Rebase(index, int(address)-index)
}

// AddSubroutine registers a subroutine signature.
func (b *Buffer) AddSubroutine(subroutine Subroutine) error {
	if _, ok := b.subroutines[subroutine.Address]; ok {
		return fmt.Errorf("%w: $%04X", ErrDuplicateSubroutine, subroutine.Address)
	}
	b.subroutines[subroutine.Address] = subroutine
	return nil
}

// Subroutine returns the subroutine signature registered for the address.
func (b *Buffer) Subroutine(address uint16) (Subroutine, bool) {
	s, ok := b.subroutines[address]
	return s, ok
}

// Subroutines returns all registered subroutine signatures sorted by address.
func (b *Buffer) Subroutines() []Subroutine {
	result := make([]Subroutine, 0, len(b.subroutines))
	for _, address := range slices.Sorted(maps.Keys(b.subroutines)) {
		result = append(result, b.subroutines[address])
	}
	return result
}

// Type returns the classification of the byte at the index.
func (b *Buffer) Type(index int) codetype.Type {
	b.mustHaveIndex(index)
	return b.types[index]
}

// Types returns a copy of the classification of all bytes.
func (b *Buffer) Types() []codetype.Type {
	return slices.Clone(b.types)
}

// SetType sets the classification of the byte at the index and returns whether it changed.
func (b *Buffer) SetType(index int, typ codetype.Type) bool {
	b.mustHaveIndex(index)
	changed := b.types[index] != typ
	b.types[index] = typ
	return changed
}

// SetTypes sets the classification of the bytes from start up to the exclusive end
// and returns whether any of them changed.
func (b *Buffer) SetTypes(start, end int, typ codetype.Type) bool {
	b.mustHaveIndex(start)
	if !b.HasEndIndex(end) || end < start {
		panic(fmt.Sprintf("%s end %d for start %d", ErrInvalidIndex, end, start))
	}

	var changed bool
	for i := start; i < end; i++ {
		changed = b.SetType(i, typ) || changed
	}
	return changed
}

// Clear removes all commands, references and labels. The bytes, their classification,
// the segments and the subroutines are kept.
func (b *Buffer) Clear() {
	clear(b.commands)
	b.indexes = b.indexes[:0]
	for i := range b.references {
		clear(b.references[i])
		b.labels[i].Clear()
	}
}

// PutCommand stores the command at the index and assigns its address.
func (b *Buffer) PutCommand(index int, cmd Command) {
	b.mustHaveIndex(index)
	if index+cmd.Size() > len(b.code) {
		panic(fmt.Sprintf("command of size %d at index %d exceeds buffer", cmd.Size(), index))
	}
	if _, ok := b.commands[index]; ok {
		panic(fmt.Sprintf("command at index %d already set", index))
	}

	cmd.setAddress(b.AddressForIndex(index))
	b.commands[index] = cmd

	if n := len(b.indexes); n == 0 || b.indexes[n-1] < index {
		b.indexes = append(b.indexes, index)
		return
	}
	i, _ := slices.BinarySearch(b.indexes, index)
	b.indexes = slices.Insert(b.indexes, i, index)
}

// Command returns the command that starts at the index.
func (b *Buffer) Command(index int) (Command, bool) {
	b.mustHaveIndex(index)
	cmd, ok := b.commands[index]
	return cmd, ok
}

// RemoveCommand removes the command that starts at the index.
func (b *Buffer) RemoveCommand(index int) {
	if _, ok := b.commands[index]; !ok {
		panic(fmt.Sprintf("no command at index %d", index))
	}
	delete(b.commands, index)
	i, _ := slices.BinarySearch(b.indexes, index)
	b.indexes = slices.Delete(b.indexes, i, i+1)
}

// Entries returns all commands in ascending index order.
func (b *Buffer) Entries() []Entry {
	entries := make([]Entry, 0, len(b.indexes))
	for _, index := range b.indexes {
		entries = append(entries, Entry{Index: index, Command: b.commands[index]})
	}
	return entries
}
