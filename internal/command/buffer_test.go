package command

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/retroenv/c64reasm/internal/codetype"
	"github.com/retroenv/c64reasm/internal/label"
	"github.com/retroenv/c64reasm/internal/opcode"
	"github.com/retroenv/retrogolib/assert"
)

func newTestBuffer(t *testing.T, start uint16, code ...byte) *Buffer {
	t.Helper()
	b, err := New(start, code)
	assert.NoError(t, err)
	return b
}

func TestNewOutOfAddressSpace(t *testing.T) {
	_, err := New(0xFFFF, []byte{0xEA, 0xEA})
	assert.True(t, errors.Is(err, ErrAddressRange))
}

func TestAddressMapping(t *testing.T) {
	b := newTestBuffer(t, 0x0800, make([]byte, 0x100)...)
	assert.NoError(t, b.Base(0x40, 0xC000))
	assert.NoError(t, b.Rebase(0x80, 0x2000))

	assert.Equal(t, uint16(0x0800), b.StartAddress())
	assert.Equal(t, uint16(0x0800), b.AddressForIndex(0))
	assert.Equal(t, uint16(0x083F), b.AddressForIndex(0x3F))
	assert.Equal(t, uint16(0xC000), b.AddressForIndex(0x40))
	assert.Equal(t, uint16(0xC03F), b.AddressForIndex(0x7F))
	assert.Equal(t, uint16(0x2080), b.AddressForIndex(0x80))

	for i := range b.Len() {
		index, ok := b.IndexForAddress(b.AddressForIndex(i))
		assert.True(t, ok)
		assert.Equal(t, i, index)
	}

	assert.False(t, b.HasAddress(0x0840))
	assert.False(t, b.HasAddress(0xC040))
	assert.False(t, b.HasAddress(0x07FF))
	assert.True(t, b.HasAddress(0x20FF))
	assert.False(t, b.HasAddress(0x2100))

	segments := b.Segments()
	assert.Equal(t, 4, len(segments))
	assert.Equal(t, Segment{Index: 0x100, Base: 0x0800}, segments[3])
}

func TestRebaseErrors(t *testing.T) {
	b := newTestBuffer(t, 0x0800, make([]byte, 0x10)...)

	assert.True(t, errors.Is(b.Rebase(0, 0x1000), ErrDuplicateRebase))
	assert.True(t, errors.Is(b.Rebase(0x10, 0x1000), ErrInvalidIndex))
	assert.True(t, errors.Is(b.Rebase(-1, 0x1000), ErrInvalidIndex))
	assert.True(t, errors.Is(b.Base(0x08, 0xFFFC), ErrAddressRange))

	assert.NoError(t, b.Base(0x08, 0x1000))
	assert.True(t, errors.Is(b.Base(0x08, 0x2000), ErrDuplicateRebase))
}

func TestSetTypes(t *testing.T) {
	b := newTestBuffer(t, 0x0800, 0xEA, 0xEA, 0xEA, 0xEA)

	assert.True(t, b.SetTypes(1, 3, codetype.Data))
	assert.False(t, b.SetTypes(1, 3, codetype.Data))
	assert.True(t, b.SetType(3, codetype.Opcode))
	assert.False(t, b.SetType(3, codetype.Opcode))
	assert.Equal(t, []codetype.Type{codetype.Unknown, codetype.Data, codetype.Data, codetype.Opcode}, b.Types())
}

func TestSubroutines(t *testing.T) {
	b := newTestBuffer(t, 0x0800, 0x60)

	assert.NoError(t, b.AddSubroutine(Subroutine{Address: 0xAB1E, Arguments: 0, Type: codetype.Data}))
	assert.NoError(t, b.AddSubroutine(Subroutine{Address: 0x1000, Arguments: 2, Type: codetype.Address}))
	assert.True(t, errors.Is(b.AddSubroutine(Subroutine{Address: 0x1000, Arguments: 1}), ErrDuplicateSubroutine))

	s, ok := b.Subroutine(0x1000)
	assert.True(t, ok)
	assert.Equal(t, 2, s.Arguments)

	subroutines := b.Subroutines()
	assert.Equal(t, 2, len(subroutines))
	assert.Equal(t, uint16(0x1000), subroutines[0].Address)
}

func TestCommands(t *testing.T) {
	b := newTestBuffer(t, 0x0800, 0xA9, 0x01, 0x60, 0x00)

	lda := NewOpcode(opcode.Decode(0xA9), 0x01)
	b.PutCommand(0, lda)
	b.PutCommand(3, NewData(0x00))
	b.PutCommand(2, NewOpcode(opcode.Decode(0x60), 0))

	assert.Equal(t, uint16(0x0800), lda.Address())
	entries := b.Entries()
	assert.Equal(t, 3, len(entries))
	assert.Equal(t, 0, entries[0].Index)
	assert.Equal(t, 2, entries[1].Index)
	assert.Equal(t, 3, entries[2].Index)

	_, ok := b.Command(1)
	assert.False(t, ok)

	b.RemoveCommand(3)
	assert.Equal(t, 2, len(b.Entries()))

	b.Clear()
	assert.Equal(t, 0, len(b.Entries()))
}

func TestCommandAddressAssignedOnce(t *testing.T) {
	b := newTestBuffer(t, 0x0800, 0xEA, 0xEA)
	nop := NewOpcode(opcode.Decode(0xEA), 0)
	b.PutCommand(0, nop)

	defer func() {
		assert.True(t, recover() != nil)
	}()
	b.PutCommand(1, nop)
}

func TestReferences(t *testing.T) {
	b := newTestBuffer(t, 0x0800, make([]byte, 8)...)

	b.AddReference(true, 0, 0x0804)
	b.AddReference(true, 2, 0x0804)
	b.AddReference(false, 4, 0x0806)
	b.AddReference(false, 6, 0xFFD2)
	b.AddReference(true, 6, 0x00FB)

	assert.True(t, b.HasCodeLabel(0x0804))
	assert.True(t, b.HasDataLabel(0x0806))
	assert.True(t, b.HasLabel(0x0806))
	assert.Equal(t, []int{0, 2}, b.Referrers(0x0804))
	assert.Equal(t, []uint16{0xFFD2, 0x00FB}, b.References(label.External, 6))

	l, ok := b.Label(0xFFD2)
	assert.True(t, ok)
	assert.Equal(t, "X_FFD2", l.Name())
	externals := b.Labels(label.External)
	assert.Equal(t, 2, len(externals))
	assert.Equal(t, "Z_FB", externals[0].Name())

	assert.False(t, b.RemoveReferences(0))
	assert.True(t, b.HasCodeLabel(0x0804))
	assert.True(t, b.RemoveReferences(2))
	assert.False(t, b.HasCodeLabel(0x0804))
	assert.True(t, b.RemoveReferences(6))
	assert.Equal(t, 0, len(b.Labels(label.External)))
	assert.False(t, b.RemoveReferences(7))
}

func TestLabelReferenceInvariant(t *testing.T) {
	const size = 32
	b := newTestBuffer(t, 0x1000, make([]byte, size)...)
	rng := rand.New(rand.NewPCG(1, 2))

	for range 2000 {
		from := rng.IntN(size)
		if rng.IntN(3) == 0 {
			b.RemoveReferences(from)
		} else {
			to := uint16(0x0FF0 + rng.IntN(size+32))
			b.AddReference(rng.IntN(2) == 0, from, to)
		}

		for _, kind := range []label.Kind{label.Code, label.Data, label.External} {
			var targeted []uint16
			for from := range size {
				for _, to := range b.References(kind, from) {
					if !slices.Contains(targeted, to) {
						targeted = append(targeted, to)
					}
				}
			}
			slices.Sort(targeted)

			var labelled []uint16
			for _, l := range b.Labels(kind) {
				labelled = append(labelled, l.Address)
			}
			assert.Equal(t, targeted, labelled)
		}
	}
}
