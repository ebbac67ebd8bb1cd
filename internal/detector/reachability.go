package detector

import (
	"github.com/retroenv/c64reasm/internal/command"
	"github.com/retroenv/c64reasm/internal/opcode"
)

// Reachability marks commands as unreachable that can not be reached by the
// control flow. Opcode and bit commands start out reachable. A command is
// unreachable if it falls through into an unreachable command and it is neither
// an end command, a JSR nor classified as code. The references of unreachable
// commands are removed.
//
// In strict mode a command following an unreachable or end command is also
// unreachable, unless a code label points at it.
//
// The detector never changes the classification of a byte.
type Reachability struct {
	Strict bool
}

// Name returns the name of the detector.
func (r *Reachability) Name() string {
	return "reachability"
}

// Detect runs the reachability rules until nothing changes anymore.
func (r *Reachability) Detect(buf *command.Buffer) bool {
	entries := buf.Entries()
	for _, entry := range entries {
		switch entry.Command.(type) {
		case *command.OpcodeCommand, *command.BitCommand:
			entry.Command.SetReachable(true)
		default:
			entry.Command.SetReachable(false)
		}
	}

	for {
		changed := r.backward(buf, entries)
		if r.Strict {
			changed = r.forward(buf, entries) || changed
		}
		if !changed {
			return false
		}
	}
}

// backward walks from the end of the buffer to the start, so that a chain of
// commands falling into an unreachable command is resolved in a single walk.
func (r *Reachability) backward(buf *command.Buffer, entries []command.Entry) bool {
	var changed bool
	last := command.End()
	for i := len(entries) - 1; i >= 0; i-- {
		entry := entries[i]
		cmd := entry.Command
		if !last.Reachable() && cmd.Reachable() && !cmd.IsEnd() && !isJsr(cmd) &&
			!buf.Type(entry.Index).IsCode() {

			markUnreachable(buf, entry)
			changed = true
		}
		last = cmd
	}
	return changed
}

func (r *Reachability) forward(buf *command.Buffer, entries []command.Entry) bool {
	var changed bool
	for i := 1; i < len(entries); i++ {
		previous := entries[i-1].Command
		entry := entries[i]
		cmd := entry.Command
		if (!previous.Reachable() || previous.IsEnd()) && cmd.Reachable() &&
			!buf.HasCodeLabel(cmd.Address()) && !buf.Type(entry.Index).IsCode() {

			markUnreachable(buf, entry)
			changed = true
		}
	}
	return changed
}

func markUnreachable(buf *command.Buffer, entry command.Entry) {
	entry.Command.SetReachable(false)
	buf.RemoveReferences(entry.Index)
}

func isJsr(cmd command.Command) bool {
	op, ok := cmd.(*command.OpcodeCommand)
	return ok && op.Is(opcode.Jsr)
}
