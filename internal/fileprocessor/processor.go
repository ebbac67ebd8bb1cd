// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/term"
	"github.com/retroenv/c64reasm/internal/options"
	"github.com/retroenv/c64reasm/internal/pipeline"
	"github.com/retroenv/c64reasm/internal/report"
	"github.com/retroenv/retrogolib/buildinfo"
)

// Streams are the console streams used for output that is not written to a file.
type Streams struct {
	Out io.Writer // receives the output if no output file is set
	Err io.Writer // receives the banner and the analysis report
}

// ProcessFile handles the complete file processing workflow
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program, analyzer options.Analyzer,
	streams Streams) error {

	writer, err := createWriter(opts, streams.Out)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	defer func() {
		if closer, ok := writer.(io.Closer); ok {
			_ = closer.Close()
		}
	}()

	pipe := pipeline.New(logger, analyzer)
	buf, result, err := pipe.Execute(ctx, opts, writer)
	if err != nil {
		return fmt.Errorf("processing file: %w", err)
	}

	if opts.Report {
		name := filepath.Base(opts.Input)
		if opts.Input == "" {
			name = filepath.Base(opts.Project)
		}
		markdown := report.Markdown(name, buf, result)
		if err := report.Render(streams.Err, markdown, terminalWidth(streams.Err)); err != nil {
			return fmt.Errorf("printing report: %w", err)
		}
	}
	return nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		return matches, nil
	}
	if opts.Input == "" && opts.Project != "" {
		return []string{opts.Project}, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates output filename for a given input file
func GenerateOutputFilename(inputFile string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + ".asm"
}

func createWriter(opts options.Program, console io.Writer) (io.Writer, error) {
	if opts.Output == "" {
		return console, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

// terminalWidth returns the width of the terminal that w writes to, 0 if unknown.
func terminalWidth(w io.Writer) int {
	file, ok := w.(*os.File)
	if !ok || !term.IsTerminal(file.Fd()) {
		return 0
	}
	width, _, err := term.GetSize(file.Fd())
	if err != nil {
		return 0
	}
	return width
}

// PrintBanner prints application version information
func PrintBanner(w io.Writer, logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	versionString := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		versionString += fmt.Sprintf(" (%s)", commit)
	}
	_, _ = fmt.Fprintln(w, report.Banner("c64reasm", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Debug("Build", "version", buildinfo.Version(version, commit, date))
	}
}
