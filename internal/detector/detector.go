// Package detector implements the analysis passes that refine the classification
// of the bytes of a buffer between two tokenizations.
package detector

import (
	"github.com/charmbracelet/log"
	"github.com/retroenv/c64reasm/internal/command"
	"github.com/retroenv/c64reasm/internal/options"
)

// Detector is a single analysis pass. Detect returns whether the classification
// of any byte changed and a new tokenization is required.
type Detector interface {
	Name() string
	Detect(buf *command.Buffer) bool
}

// Defaults returns the detectors in the order in which they are run.
func Defaults(logger *log.Logger, opts options.Analyzer) []Detector {
	return []Detector{
		&Reachability{Strict: opts.StrictReachability},
		&Label{},
		&Brk{},
		&Bit{},
		NewJsr(logger, opts),
	}
}
