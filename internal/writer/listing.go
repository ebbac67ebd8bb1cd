package writer

import (
	"fmt"
	"strings"

	"github.com/retroenv/c64reasm/internal/command"
	"github.com/retroenv/c64reasm/internal/label"
)

// column positions of the listing
const (
	flagsWidth   = 5
	bytesColumn  = 24
	labelColumn  = 44
	listingBytes = 3
)

// WriteListing writes the analysis listing. Every command is written as one
// line containing its flags, address, classified bytes, label and text.
// The flags mark unreachable commands with U and labels that point inside of
// the command with C or D.
func (w Writer) WriteListing() error {
	if err := w.writeHeader(); err != nil {
		return err
	}

	for _, entry := range w.buf.Entries() {
		if _, err := fmt.Fprintln(w.writer, w.listingLine(entry)); err != nil {
			return fmt.Errorf("writing listing line: %w", err)
		}
	}
	return nil
}

func (w Writer) listingLine(entry command.Entry) string {
	cmd := entry.Command
	line := &strings.Builder{}

	if !cmd.Reachable() {
		line.WriteString("U")
	}
	for _, l := range w.innerLabels(entry) {
		if l.Kind == label.Code {
			line.WriteString("C")
		} else {
			line.WriteString("D")
		}
	}
	fill(line, flagsWidth)
	line.WriteString(" | ")

	fmt.Fprintf(line, "%04X", cmd.Address())
	data := cmd.Bytes()
	for i := 0; i < len(data) && i < listingBytes; i++ {
		typ := w.buf.Type(entry.Index + i)
		fmt.Fprintf(line, " %s%02X", strings.ToLower(typ.ID()), data[i])
	}
	fill(line, bytesColumn)
	if len(data) > listingBytes {
		line.WriteString("...")
	} else {
		line.WriteString("   ")
	}
	line.WriteString(" | ")

	if l, ok := w.commandLabel(cmd); ok {
		line.WriteString(l.Name() + ":")
	}
	fill(line, labelColumn)
	line.WriteString(Text(w.buf, cmd))
	return line.String()
}

func fill(sb *strings.Builder, width int) {
	for sb.Len() < width {
		sb.WriteByte(' ')
	}
}
