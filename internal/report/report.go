// Package report summarizes the result of an analysis as markdown and renders
// it for terminals.
package report

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/retroenv/c64reasm/internal/command"
	"github.com/retroenv/c64reasm/internal/label"
	"github.com/retroenv/c64reasm/internal/reassembler"
)

// DefaultWidth is the word wrap width used when the terminal width is unknown.
const DefaultWidth = 80

// maxTargets is the number of code labels listed as most referenced.
const maxTargets = 10

type commandStats struct {
	count int
	bytes int
}

// Markdown returns the analysis summary of the buffer as markdown document.
func Markdown(name string, buf *command.Buffer, result reassembler.Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", name)

	sb.WriteString("| Property | Value |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Start | `$%04X` |\n", buf.StartAddress())
	fmt.Fprintf(&sb, "| Size | %d bytes |\n", buf.Len())
	fmt.Fprintf(&sb, "| Segments | %d |\n", len(buf.Segments())-1)
	fmt.Fprintf(&sb, "| Iterations | %d |\n", result.Iterations)
	fmt.Fprintf(&sb, "| Converged | %t |\n", result.Converged)
	fmt.Fprintf(&sb, "| Duration | %s |\n\n", result.Duration)

	sb.WriteString("## Commands\n\n| Kind | Count | Bytes |\n|---|---|---|\n")
	stats := commandStatistics(buf)
	for _, kind := range []string{"opcode", "data", "address", "bit"} {
		fmt.Fprintf(&sb, "| %s | %d | %d |\n", kind, stats[kind].count, stats[kind].bytes)
	}
	sb.WriteString("\n")

	sb.WriteString("## Labels\n\n| Kind | Count |\n|---|---|\n")
	for _, kind := range []label.Kind{label.Code, label.Data, label.External} {
		fmt.Fprintf(&sb, "| %s | %d |\n", kind, len(buf.Labels(kind)))
	}
	sb.WriteString("\n")

	if targets := mostReferenced(buf); len(targets) > 0 {
		sb.WriteString("## Most referenced code\n\n| Label | References |\n|---|---|\n")
		for _, target := range targets {
			fmt.Fprintf(&sb, "| %s | %d |\n", target.label.Name(), target.references)
		}
		sb.WriteString("\n")
	}

	if len(result.Changes) > 0 {
		sb.WriteString("## Detectors\n\n| Detector | Changing iterations |\n|---|---|\n")
		for _, name := range slices.Sorted(maps.Keys(result.Changes)) {
			fmt.Fprintf(&sb, "| %s | %d |\n", name, result.Changes[name])
		}
		sb.WriteString("\n")
	}

	if subroutines := buf.Subroutines(); len(subroutines) > 0 {
		sb.WriteString("## Subroutines\n\n")
		for _, s := range subroutines {
			fmt.Fprintf(&sb, "- `$%04X` %s\n", s.Address, describeArguments(s))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

type target struct {
	label      label.Label
	references int
}

// mostReferenced returns the code labels with the most referring commands,
// ordered by descending reference count and ascending address.
func mostReferenced(buf *command.Buffer) []target {
	labels := buf.Labels(label.Code)
	targets := make([]target, 0, len(labels))
	for _, l := range labels {
		targets = append(targets, target{label: l, references: len(buf.Referrers(l.Address))})
	}
	slices.SortStableFunc(targets, func(a, b target) int {
		return b.references - a.references
	})
	if len(targets) > maxTargets {
		targets = targets[:maxTargets]
	}
	return targets
}

func describeArguments(s command.Subroutine) string {
	switch {
	case s.Arguments < 0:
		return "without arguments"
	case s.Arguments == 0:
		return fmt.Sprintf("zero terminated %s", s.Type)
	default:
		return fmt.Sprintf("%d bytes %s", s.Arguments, s.Type)
	}
}

func commandStatistics(buf *command.Buffer) map[string]commandStats {
	stats := make(map[string]commandStats)
	for _, entry := range buf.Entries() {
		var kind string
		switch entry.Command.(type) {
		case *command.OpcodeCommand:
			kind = "opcode"
		case *command.DataCommand:
			kind = "data"
		case *command.AddressCommand:
			kind = "address"
		case *command.BitCommand:
			kind = "bit"
		}
		s := stats[kind]
		s.count++
		s.bytes += entry.Command.Size()
		stats[kind] = s
	}
	return stats
}

// Render writes the markdown document formatted for a terminal of the given width.
func Render(w io.Writer, markdown string, width int) error {
	if width <= 0 {
		width = DefaultWidth
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(markdownStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fmt.Errorf("creating markdown renderer: %w", err)
	}

	out, err := r.Render(markdown)
	if err != nil {
		return fmt.Errorf("rendering markdown: %w", err)
	}
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
