package writer

import (
	"fmt"

	"github.com/retroenv/c64reasm/internal/command"
)

const indent = "        "

// WriteSource writes assembler source that recreates the bytes of the buffer.
// Labels are written on their own line, labels that point inside of a command
// are defined relative to the program counter. Rebased segments are wrapped
// in pseudo program counter blocks.
func (w Writer) WriteSource() error {
	if err := w.writeHeader(); err != nil {
		return err
	}

	segments := w.buf.Segments()
	segment := 0
	inBlock := false

	for _, entry := range w.buf.Entries() {
		for segment+1 < len(segments)-1 && entry.Index >= segments[segment+1].Index {
			segment++
			if err := w.openBlock(inBlock, w.buf.AddressForIndex(segments[segment].Index)); err != nil {
				return err
			}
			inBlock = true
		}

		if err := w.writeSourceCommand(entry); err != nil {
			return err
		}
	}

	if inBlock {
		if _, err := fmt.Fprintln(w.writer, "}"); err != nil {
			return fmt.Errorf("writing block end: %w", err)
		}
	}
	return nil
}

func (w Writer) openBlock(closePrevious bool, address uint16) error {
	if closePrevious {
		if _, err := fmt.Fprintln(w.writer, "}"); err != nil {
			return fmt.Errorf("writing block end: %w", err)
		}
	}
	if _, err := fmt.Fprintf(w.writer, "!PSEUDOPC $%04X {\n", address); err != nil {
		return fmt.Errorf("writing block start: %w", err)
	}
	return nil
}

func (w Writer) writeSourceCommand(entry command.Entry) error {
	cmd := entry.Command

	if l, ok := w.commandLabel(cmd); ok {
		if _, err := fmt.Fprintf(w.writer, "\n%s\n", l.Name()); err != nil {
			return fmt.Errorf("writing label: %w", err)
		}
	}
	for _, l := range w.innerLabels(entry) {
		offset := int(l.Address) - int(cmd.Address())
		if _, err := fmt.Fprintf(w.writer, "%s = * + %d\n", l.Name(), offset); err != nil {
			return fmt.Errorf("writing inner label: %w", err)
		}
	}

	if _, err := fmt.Fprintf(w.writer, "%s%s\n", indent, sourceText(w.buf, cmd)); err != nil {
		return fmt.Errorf("writing source line: %w", err)
	}
	return nil
}
