package detector

import (
	"math/rand/v2"
	"testing"

	"github.com/retroenv/c64reasm/internal/codetype"
	"github.com/retroenv/c64reasm/internal/command"
	"github.com/retroenv/c64reasm/internal/label"
	"github.com/retroenv/c64reasm/internal/tokenizer"
	"github.com/retroenv/retrogolib/assert"
)

func TestReachabilityDeadCodeAfterRts(t *testing.T) {
	buf := newTokenized(t, 0x60, 0xEA)

	r := &Reachability{}
	assert.False(t, r.Detect(buf))
	assert.True(t, commandAt(t, buf, 0).Reachable())
	assert.False(t, commandAt(t, buf, 1).Reachable())
}

func TestReachabilityRemovesLabel(t *testing.T) {
	buf := newTokenized(t, 0xD0, 0xFE)
	assert.True(t, buf.HasCodeLabel(0x0800))

	r := &Reachability{}
	r.Detect(buf)
	assert.False(t, commandAt(t, buf, 0).Reachable())
	assert.False(t, buf.HasCodeLabel(0x0800))
	assert.Equal(t, 0, len(buf.Referrers(0x0800)))
}

func TestReachabilityFallThrough(t *testing.T) {
	tests := []struct {
		name      string
		code      []byte
		types     map[int]codetype.Type
		strict    bool
		reachable []bool
	}{
		{
			name:      "chain into data",
			code:      []byte{0xA9, 0x01, 0xEA, 0x02},
			reachable: []bool{false, false, false},
		},
		{
			name:      "jsr is kept",
			code:      []byte{0xEA, 0x20, 0xD2, 0xFF},
			reachable: []bool{true, true},
		},
		{
			name:      "code classification is kept",
			code:      []byte{0xEA, 0xEA},
			types:     map[int]codetype.Type{1: codetype.Opcode},
			reachable: []bool{true, true},
		},
		{
			name:      "end after data is kept",
			code:      []byte{0x60, 0x02, 0x60},
			reachable: []bool{true, false, true},
		},
		{
			name:      "code after jump is kept",
			code:      []byte{0x4C, 0x04, 0x08, 0xEA, 0x60},
			reachable: []bool{true, true, true},
		},
		{
			name:      "strict code after jump",
			code:      []byte{0x4C, 0x04, 0x08, 0xEA, 0x60},
			strict:    true,
			reachable: []bool{true, false, true},
		},
		{
			name:      "strict chain after end",
			code:      []byte{0x60, 0x00, 0x00},
			strict:    true,
			reachable: []bool{true, false, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := command.New(0x0800, tt.code)
			assert.NoError(t, err)
			for index, typ := range tt.types {
				buf.SetType(index, typ)
			}
			tokenizer.Tokenize(buf)

			r := &Reachability{Strict: tt.strict}
			assert.False(t, r.Detect(buf))

			entries := buf.Entries()
			assert.Equal(t, len(tt.reachable), len(entries))
			for i, entry := range entries {
				assert.Equal(t, tt.reachable[i], entry.Command.Reachable())
			}
		})
	}
}

func TestReachabilityStrictRemovesLabels(t *testing.T) {
	// JMP $0806; LDA $0807; RTS; .byte $42
	buf := newTokenized(t, 0x4C, 0x06, 0x08, 0xAD, 0x07, 0x08, 0x60, 0x42)
	assert.True(t, buf.HasDataLabel(0x0807))

	r := &Reachability{Strict: true}
	r.Detect(buf)
	assert.False(t, commandAt(t, buf, 3).Reachable())
	assert.False(t, buf.HasDataLabel(0x0807))
	assert.True(t, commandAt(t, buf, 6).Reachable())
	assert.True(t, buf.HasCodeLabel(0x0806))
}

func TestReachabilityIdempotence(t *testing.T) {
	rng := rand.New(rand.NewPCG(64, 128))
	types := []codetype.Type{codetype.Unknown, codetype.Unknown, codetype.Opcode, codetype.Data}

	for _, strict := range []bool{false, true} {
		for range 100 {
			code := make([]byte, 1+rng.IntN(48))
			for i := range code {
				code[i] = byte(rng.IntN(256))
			}
			buf, err := command.New(0x0800, code)
			assert.NoError(t, err)
			for i := range code {
				buf.SetType(i, types[rng.IntN(len(types))])
			}
			tokenizer.Tokenize(buf)

			r := &Reachability{Strict: strict}
			r.Detect(buf)
			first := snapshot(buf)
			assert.False(t, r.Detect(buf))
			assert.Equal(t, first, snapshot(buf))
		}
	}
}

type reachabilitySnapshot struct {
	reachable []bool
	code      []label.Label
	data      []label.Label
}

func snapshot(buf *command.Buffer) reachabilitySnapshot {
	var s reachabilitySnapshot
	for _, entry := range buf.Entries() {
		s.reachable = append(s.reachable, entry.Command.Reachable())
	}
	s.code = buf.Labels(label.Code)
	s.data = buf.Labels(label.Data)
	return s
}
