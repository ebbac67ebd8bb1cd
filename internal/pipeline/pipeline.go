// Package pipeline orchestrates the reassembly workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/retroenv/c64reasm/internal/colorize"
	"github.com/retroenv/c64reasm/internal/command"
	"github.com/retroenv/c64reasm/internal/loader"
	"github.com/retroenv/c64reasm/internal/options"
	"github.com/retroenv/c64reasm/internal/project"
	"github.com/retroenv/c64reasm/internal/reassembler"
	"github.com/retroenv/c64reasm/internal/verification"
	"github.com/retroenv/c64reasm/internal/writer"
)

// Pipeline orchestrates the complete reassembly workflow.
type Pipeline struct {
	logger   *log.Logger
	loader   *loader.Loader
	analyzer options.Analyzer
}

// New creates a new reassembly pipeline.
func New(logger *log.Logger, analyzer options.Analyzer) *Pipeline {
	return &Pipeline{
		logger:   logger,
		loader:   loader.New(),
		analyzer: analyzer,
	}
}

// Execute loads the input and runs the complete reassembly pipeline.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, w io.Writer) (*command.Buffer, reassembler.Result, error) {
	buf, err := p.loader.Load(opts)
	if err != nil {
		return nil, reassembler.Result{}, fmt.Errorf("loading input: %w", err)
	}

	result, err := p.ExecuteWithBuffer(ctx, buf, opts, w)
	if err != nil {
		return nil, result, err
	}
	return buf, result, nil
}

// ExecuteWithBuffer runs the reassembly pipeline with a pre-loaded buffer.
// This is useful for testing and programmatic usage where the buffer is already in memory.
func (p *Pipeline) ExecuteWithBuffer(ctx context.Context, buf *command.Buffer, opts options.Program,
	w io.Writer) (reassembler.Result, error) {

	if err := project.ApplySeed(buf, opts.Seed); err != nil {
		return reassembler.Result{}, fmt.Errorf("applying seed: %w", err)
	}

	p.printInfo(opts, buf)

	result, err := reassembler.New(p.logger, p.analyzer).Analyze(ctx, buf)
	if err != nil {
		return result, fmt.Errorf("reassembling: %w", err)
	}

	if err := p.render(buf, opts, w); err != nil {
		return result, fmt.Errorf("rendering: %w", err)
	}

	if opts.SaveProject != "" {
		if err := p.saveProject(buf, opts.SaveProject); err != nil {
			return result, err
		}
	}

	if opts.Verify {
		if err := verification.VerifyOutput(ctx, p.logger, opts, buf); err != nil {
			return result, fmt.Errorf("verification failed: %w", err)
		}
		p.logger.Info("Verification successful")
	}

	return result, nil
}

// render writes the buffer in the output format, highlighted if requested.
func (p *Pipeline) render(buf *command.Buffer, opts options.Program, w io.Writer) error {
	if !opts.Color {
		if err := writer.New(buf, w).Write(opts.Format); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	}

	var sb strings.Builder
	if err := writer.New(buf, &sb).Write(opts.Format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	text, err := colorize.Assembly(sb.String(), true)
	if err != nil {
		p.logger.Warn("Highlighting output failed", "err", err)
	}
	if _, err := io.WriteString(w, text); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func (p *Pipeline) saveProject(buf *command.Buffer, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating project file '%s': %w", path, err)
	}

	err = project.FromBuffer(buf).Save(file)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("saving project file '%s': %w", path, err)
	}

	p.logger.Debug("Project saved", "file", path)
	return nil
}

// printInfo prints information about the program being processed.
func (p *Pipeline) printInfo(opts options.Program, buf *command.Buffer) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Processing program",
		"file", opts.Input,
		"start", fmt.Sprintf("$%04X", buf.StartAddress()),
		"size", buf.Len(),
		"segments", len(buf.Segments())-1,
	)
}
