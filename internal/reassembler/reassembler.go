// Package reassembler runs the analysis of a buffer until its classification
// reaches a fixed point.
package reassembler

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/retroenv/c64reasm/internal/command"
	"github.com/retroenv/c64reasm/internal/detector"
	"github.com/retroenv/c64reasm/internal/options"
	"github.com/retroenv/c64reasm/internal/tokenizer"
)

// Result describes the course of an analysis.
type Result struct {
	Iterations int            // number of tokenize and detect iterations
	Converged  bool           // false if the iteration cap was reached
	Changes    map[string]int // number of iterations in which a detector changed the classification
	Duration   time.Duration
}

// Reassembler drives the tokenizer and the detectors.
type Reassembler struct {
	logger    *log.Logger
	options   options.Analyzer
	detectors []detector.Detector
}

// New returns a new reassembler that uses the default detectors.
func New(logger *log.Logger, opts options.Analyzer) *Reassembler {
	return &Reassembler{
		logger:    logger,
		options:   opts,
		detectors: detector.Defaults(logger, opts),
	}
}

// Add appends a detector that is run after the default detectors.
func (r *Reassembler) Add(d detector.Detector) {
	r.detectors = append(r.detectors, d)
}

// Analyze tokenizes the buffer and runs all detectors until none of them changes
// the classification or the iteration cap is reached, then combines the data
// commands. Reaching the cap is not an error, the last state is kept.
// The context is only checked between iterations.
func (r *Reassembler) Analyze(ctx context.Context, buf *command.Buffer) (Result, error) {
	start := time.Now()
	result := Result{
		Changes: make(map[string]int, len(r.detectors)),
	}

	for result.Iterations < r.options.MaxIterations {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("analyzing: %w", err)
		}
		result.Iterations++

		tokenizer.Tokenize(buf)
		if !r.detect(buf, result.Changes) {
			result.Converged = true
			break
		}
	}

	if !result.Converged {
		r.logger.Warn("Analysis did not converge", "iterations", result.Iterations)
	}

	Combine(buf)
	result.Duration = time.Since(start)
	r.logger.Debug("Analysis finished",
		"iterations", result.Iterations,
		"converged", result.Converged,
		"duration", result.Duration)
	return result, nil
}

func (r *Reassembler) detect(buf *command.Buffer, changes map[string]int) bool {
	var changed bool
	for _, d := range r.detectors {
		if !d.Detect(buf) {
			continue
		}
		r.logger.Debug("Classification changed", "detector", d.Name())
		changes[d.Name()]++
		changed = true
	}
	return changed
}
