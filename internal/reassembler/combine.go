package reassembler

import (
	"github.com/retroenv/c64reasm/internal/command"
)

// Combine merges adjacent data commands. A command that starts at a label is
// never merged into its predecessor. The bytes of the buffer are not changed.
func Combine(buf *command.Buffer) {
	var last *command.DataCommand
	for _, entry := range buf.Entries() {
		data, ok := entry.Command.(*command.DataCommand)
		if !ok {
			last = nil
			continue
		}

		if last != nil && !buf.HasLabel(data.Address()) && last.Merge(data) {
			buf.RemoveCommand(entry.Index)
			continue
		}
		last = data
	}
}
