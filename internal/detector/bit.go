package detector

import (
	"github.com/retroenv/c64reasm/internal/codetype"
	"github.com/retroenv/c64reasm/internal/command"
	"github.com/retroenv/c64reasm/internal/opcode"
)

// Bit detects the BIT trick: the operand of a BIT instruction hides another
// instruction that is the target of a jump. The BIT opcode byte is classified
// as bit, the hidden instruction as opcode followed by its operand bytes.
type Bit struct{}

// Name returns the name of the detector.
func (b *Bit) Name() string {
	return "bit"
}

// Detect classifies all reachable BIT instructions with a code label inside the
// operand, if the operand decodes to a legal instruction that fits into it.
func (b *Bit) Detect(buf *command.Buffer) bool {
	var changed bool
	for _, entry := range buf.Entries() {
		op, ok := entry.Command.(*command.OpcodeCommand)
		if !ok || !op.Is(opcode.Bit) || !op.Reachable() || op.Size() < 2 {
			continue
		}

		hidden := entry.Index + 1
		if !buf.HasCodeLabel(buf.AddressForIndex(hidden)) {
			continue
		}
		skipped := opcode.Decode(buf.Code()[hidden])
		if !skipped.Legal || skipped.Size() > op.Size()-1 {
			continue
		}

		changed = buf.SetType(entry.Index, codetype.Bit) || changed
		changed = buf.SetType(hidden, codetype.Opcode) || changed
		if skipped.Size() > 1 {
			changed = buf.SetTypes(hidden+1, hidden+skipped.Size(), codetype.Code) || changed
		}
	}
	return changed
}
