package detector

import (
	"github.com/retroenv/c64reasm/internal/codetype"
	"github.com/retroenv/c64reasm/internal/command"
)

// Label classifies the bytes that labels point at. A code label marks the start
// of an instruction. A data label at an unreachable command that has not been
// classified yet marks the start of data.
type Label struct{}

// Name returns the name of the detector.
func (l *Label) Name() string {
	return "label"
}

// Detect applies the label rules to all commands.
func (l *Label) Detect(buf *command.Buffer) bool {
	var changed bool
	for _, entry := range buf.Entries() {
		address := entry.Command.Address()
		switch {
		case buf.HasCodeLabel(address):
			changed = buf.SetType(entry.Index, codetype.Opcode) || changed
		case buf.HasDataLabel(address) && !entry.Command.Reachable() && buf.Type(entry.Index).IsUnknown():
			changed = buf.SetType(entry.Index, codetype.Data) || changed
		}
	}
	return changed
}
