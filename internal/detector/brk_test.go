package detector

import (
	"testing"

	"github.com/retroenv/c64reasm/internal/codetype"
	"github.com/retroenv/retrogolib/assert"
)

func TestBrkUnreachable(t *testing.T) {
	buf := newTokenized(t, 0x60, 0x00, 0x00)
	commandAt(t, buf, 2).SetReachable(false)

	b := &Brk{}
	assert.True(t, b.Detect(buf))
	assert.Equal(t, codetype.Unknown, buf.Type(1))
	assert.Equal(t, codetype.Data, buf.Type(2))
	assert.False(t, b.Detect(buf))
}

func TestBrkAfterStrictReachability(t *testing.T) {
	buf := newTokenized(t, 0x60, 0x00, 0x00)

	r := &Reachability{Strict: true}
	r.Detect(buf)
	b := &Brk{}
	assert.True(t, b.Detect(buf))
	assert.Equal(t, []codetype.Type{codetype.Unknown, codetype.Data, codetype.Data}, buf.Types())
}
