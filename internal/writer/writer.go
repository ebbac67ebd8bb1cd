// Package writer renders the commands of an analyzed buffer as assembly text.
package writer

import (
	"fmt"
	"io"
	"slices"

	"github.com/retroenv/c64reasm/internal/command"
	"github.com/retroenv/c64reasm/internal/label"
	"github.com/retroenv/c64reasm/internal/options"
)

// Writer renders an analyzed buffer.
type Writer struct {
	buf    *command.Buffer
	writer io.Writer
}

// New creates a new writer.
func New(buf *command.Buffer, writer io.Writer) *Writer {
	return &Writer{
		buf:    buf,
		writer: writer,
	}
}

// Write renders the buffer in the given output format.
func (w Writer) Write(format string) error {
	switch format {
	case options.FormatListing, "":
		return w.WriteListing()
	case options.FormatSource:
		return w.WriteSource()
	default:
		return fmt.Errorf("unsupported output format '%s'", format)
	}
}

// OutputAliasMap outputs an alias map, for external addresses.
func (w Writer) OutputAliasMap(aliases map[string]uint16) error {
	if len(aliases) == 0 {
		return nil
	}

	// sort the aliases by name before outputting to avoid random map order
	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		if _, err := fmt.Fprintf(w.writer, "%s = $%04X\n", name, aliases[name]); err != nil {
			return fmt.Errorf("writing alias: %w", err)
		}
	}

	if _, err := fmt.Fprintln(w.writer); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}

// writeHeader writes the start address and the definitions of all external labels.
func (w Writer) writeHeader() error {
	if _, err := fmt.Fprintf(w.writer, "*=$%04X\n\n", w.buf.StartAddress()); err != nil {
		return fmt.Errorf("writing start address: %w", err)
	}

	externals := w.buf.Labels(label.External)
	aliases := make(map[string]uint16, len(externals))
	for _, l := range externals {
		aliases[l.Name()] = l.Address
	}
	return w.OutputAliasMap(aliases)
}

// commandLabel returns the label of the command if any label points at its address.
func (w Writer) commandLabel(cmd command.Command) (label.Label, bool) {
	address := cmd.Address()
	if !w.buf.HasLabel(address) {
		return label.Label{}, false
	}
	return w.buf.Label(address)
}

// innerLabels returns the code and data labels that point inside of the command.
func (w Writer) innerLabels(entry command.Entry) []label.Label {
	var labels []label.Label
	for i := 1; i < entry.Command.Size(); i++ {
		address := w.buf.AddressForIndex(entry.Index + i)
		if w.buf.HasCodeLabel(address) {
			labels = append(labels, label.New(address, label.Code))
		}
		if w.buf.HasDataLabel(address) {
			labels = append(labels, label.New(address, label.Data))
		}
	}
	return labels
}
