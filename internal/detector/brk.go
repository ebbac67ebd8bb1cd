package detector

import (
	"github.com/retroenv/c64reasm/internal/codetype"
	"github.com/retroenv/c64reasm/internal/command"
	"github.com/retroenv/c64reasm/internal/opcode"
)

// Brk classifies unreachable BRK instructions as data, they are most likely
// zero bytes of a data block.
type Brk struct{}

// Name returns the name of the detector.
func (b *Brk) Name() string {
	return "brk"
}

// Detect marks the opcode byte of every unreachable BRK as data.
func (b *Brk) Detect(buf *command.Buffer) bool {
	var changed bool
	for _, entry := range buf.Entries() {
		op, ok := entry.Command.(*command.OpcodeCommand)
		if !ok || !op.Is(opcode.Brk) || op.Reachable() {
			continue
		}
		changed = buf.SetType(entry.Index, codetype.Data) || changed
	}
	return changed
}
