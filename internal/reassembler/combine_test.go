package reassembler

import (
	"math/rand/v2"
	"testing"

	"github.com/retroenv/c64reasm/internal/codetype"
	"github.com/retroenv/c64reasm/internal/command"
	"github.com/retroenv/c64reasm/internal/options"
	"github.com/retroenv/c64reasm/internal/tokenizer"
	"github.com/retroenv/retrogolib/assert"
)

func TestCombine(t *testing.T) {
	tests := []struct {
		name  string
		code  []byte
		data  [2]int // classified as data, start and exclusive end
		sizes []int
	}{
		{
			name:  "fill run and byte list",
			code:  []byte{0x60, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 2, 3},
			data:  [2]int{1, 16},
			sizes: []int{1, 12, 3},
		},
		{
			name:  "byte list limit",
			code:  []byte{0x60, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			data:  [2]int{1, 11},
			sizes: []int{1, 8, 2},
		},
		{
			name:  "label splits data",
			code:  []byte{0xAD, 0x05, 0x08, 0x60, 0x01, 0x02, 0x03},
			data:  [2]int{4, 7},
			sizes: []int{3, 1, 1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := command.New(0x0800, tt.code)
			assert.NoError(t, err)
			buf.SetTypes(tt.data[0], tt.data[1], codetype.Data)
			tokenizer.Tokenize(buf)
			Combine(buf)

			var sizes []int
			for _, entry := range buf.Entries() {
				sizes = append(sizes, entry.Command.Size())
			}
			assert.Equal(t, tt.sizes, sizes)
		})
	}
}

func TestCombineIsLossless(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 6510))
	types := []codetype.Type{codetype.Unknown, codetype.Data, codetype.Data, codetype.Address, codetype.Bit}

	for range 100 {
		code := make([]byte, 1+rng.IntN(96))
		for i := range code {
			if rng.IntN(4) == 0 {
				code[i] = 0
			} else {
				code[i] = byte(rng.IntN(256))
			}
		}
		buf, err := command.New(0xC000, code)
		assert.NoError(t, err)
		for i := range code {
			buf.SetType(i, types[rng.IntN(len(types))])
		}

		r := newReassembler(options.NewAnalyzer())
		_, err = r.Analyze(t.Context(), buf)
		assert.NoError(t, err)

		next := 0
		var data []byte
		for _, entry := range buf.Entries() {
			assert.Equal(t, next, entry.Index)
			next += entry.Command.Size()
			data = append(data, entry.Command.Bytes()...)
		}
		assert.Equal(t, code, data)
	}
}
