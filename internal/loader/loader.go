// Package loader handles input file loading operations.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/c64reasm/internal/command"
	"github.com/retroenv/c64reasm/internal/options"
	"github.com/retroenv/c64reasm/internal/project"
)

// DefaultStart is the start address of raw input files without explicit start address,
// the start of the BASIC area of the C64.
const DefaultStart = 0x0801

// ErrEmptyInput is returned for input files that contain no bytes to analyze.
var ErrEmptyInput = errors.New("empty input")

// Loader handles loading input files from disk.
type Loader struct{}

// New creates a new input loader.
func New() *Loader {
	return &Loader{}
}

// Load loads the input file and creates the buffer to analyze.
// It supports project files, .prg files that start with their load address
// and raw binary files that are located at the start address option.
func (l *Loader) Load(opts options.Program) (*command.Buffer, error) {
	path := opts.Input
	isProject := opts.Project != ""
	if isProject {
		path = opts.Project
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	if isProject || strings.EqualFold(filepath.Ext(path), ".json") {
		return l.LoadProject(data)
	}
	isPRG := !opts.Raw && strings.EqualFold(filepath.Ext(path), ".prg")
	return l.LoadFromBytes(data, isPRG, opts.Start)
}

// LoadFromBytes creates the buffer from program data. A .prg file starts with
// its little endian load address, raw data is located at the start address
// which defaults to DefaultStart if empty.
func (l *Loader) LoadFromBytes(data []byte, isPRG bool, start string) (*command.Buffer, error) {
	address := uint16(DefaultStart)
	if start != "" {
		var err error
		address, err = project.ParseAddress(start)
		if err != nil {
			return nil, fmt.Errorf("parsing start address: %w", err)
		}
	}

	if isPRG {
		if len(data) < 2 {
			return nil, fmt.Errorf("%w: missing load address", ErrEmptyInput)
		}
		address = uint16(data[0]) | uint16(data[1])<<8
		data = data[2:]
	}
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	buf, err := command.New(address, data)
	if err != nil {
		return nil, fmt.Errorf("creating buffer: %w", err)
	}
	return buf, nil
}

// LoadProject creates the buffer from a project file.
func (l *Loader) LoadProject(data []byte) (*command.Buffer, error) {
	state, err := project.Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("loading project: %w", err)
	}
	buf, err := state.Buffer()
	if err != nil {
		return nil, fmt.Errorf("restoring project: %w", err)
	}
	return buf, nil
}
