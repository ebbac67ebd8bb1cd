// Package project persists the analysis state of a buffer: the bytes, the
// segments, the subroutine signatures and the run length encoded classification.
// Loading a project and running the analysis reproduces the same commands.
package project

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/invopop/jsonschema"
	"github.com/retroenv/c64reasm/internal/codetype"
	"github.com/retroenv/c64reasm/internal/command"
)

// Version of the project file format.
const Version = 1

var (
	// ErrInvalidCode is returned for a code field that is not a hex string.
	ErrInvalidCode = errors.New("invalid code")
	// ErrInvalidSegments is returned for a segment table that does not match the code.
	ErrInvalidSegments = errors.New("invalid segments")
	// ErrInvalidTypeRange is returned for a classification range outside of the code.
	ErrInvalidTypeRange = errors.New("invalid type range")
	// ErrUnsupportedVersion is returned for project files of an unknown format version.
	ErrUnsupportedVersion = errors.New("unsupported project version")
)

// State is the persisted analysis state.
type State struct {
	Version     int          `json:"version" jsonschema:"description=Project file format version,enum=1"`
	Code        string       `json:"code" jsonschema:"description=Bytes of the buffer as hex string,pattern=^([0-9a-fA-F]{2})+$"`
	Segments    []Segment    `json:"segments" jsonschema:"description=Segment table including the end sentinel,minItems=2"`
	Subroutines []Subroutine `json:"subroutines,omitempty" jsonschema:"description=Subroutine signatures"`
	Types       []TypeRange  `json:"types,omitempty" jsonschema:"description=Classification of all bytes that are not unknown"`
}

// Segment starts a range of indexes that are located at base + index.
type Segment struct {
	Index int `json:"index" jsonschema:"minimum=0"`
	Base  int `json:"base"`
}

// Subroutine describes the inline arguments that follow calls of a subroutine.
type Subroutine struct {
	Address   uint16 `json:"address"`
	Arguments int    `json:"arguments" jsonschema:"description=Argument bytes or 0 for zero terminated or negative for none"`
	Type      string `json:"type" jsonschema:"enum=unknown,enum=opcode,enum=code,enum=data,enum=bit,enum=address"`
}

// TypeRange classifies the bytes from index up to the exclusive end.
type TypeRange struct {
	Index int    `json:"index" jsonschema:"minimum=0"`
	End   int    `json:"end,omitempty" jsonschema:"description=Exclusive end index that defaults to index + 1"`
	Type  string `json:"type" jsonschema:"enum=opcode,enum=code,enum=data,enum=bit,enum=address"`
}

// FromBuffer captures the persistent state of the buffer.
func FromBuffer(buf *command.Buffer) *State {
	s := &State{
		Version: Version,
		Code:    hex.EncodeToString(buf.Code()),
	}

	for _, segment := range buf.Segments() {
		s.Segments = append(s.Segments, Segment{Index: segment.Index, Base: segment.Base})
	}
	for _, subroutine := range buf.Subroutines() {
		s.Subroutines = append(s.Subroutines, Subroutine{
			Address:   subroutine.Address,
			Arguments: subroutine.Arguments,
			Type:      subroutine.Type.String(),
		})
	}
	s.Types = encodeTypes(buf.Types())
	return s
}

// encodeTypes returns the minimal run length encoding of all classifications
// that are not unknown.
func encodeTypes(types []codetype.Type) []TypeRange {
	var ranges []TypeRange
	for index := 0; index < len(types); {
		start := index
		typ := types[index]
		for index < len(types) && types[index] == typ {
			index++
		}
		if typ.IsUnknown() {
			continue
		}

		r := TypeRange{Index: start, Type: typ.String()}
		if index-start > 1 {
			r.End = index
		}
		ranges = append(ranges, r)
	}
	return ranges
}

// Buffer validates the state and creates the buffer that it describes.
func (s *State) Buffer() (*command.Buffer, error) {
	if s.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, s.Version)
	}

	code, err := hex.DecodeString(s.Code)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCode, err)
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("%w: no bytes", ErrInvalidCode)
	}

	if err := s.validateSegments(len(code)); err != nil {
		return nil, err
	}
	start := s.Segments[0].Base
	if start < 0 || start > 0xFFFF {
		return nil, fmt.Errorf("%w: start address %d", ErrInvalidSegments, start)
	}

	buf, err := command.New(uint16(start), code)
	if err != nil {
		return nil, fmt.Errorf("creating buffer: %w", err)
	}
	for _, segment := range s.Segments[1 : len(s.Segments)-1] {
		if err := buf.Rebase(segment.Index, segment.Base); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSegments, err)
		}
	}

	for _, subroutine := range s.Subroutines {
		typ, err := codetype.Parse(subroutine.Type)
		if err != nil {
			return nil, fmt.Errorf("subroutine $%04X: %w", subroutine.Address, err)
		}
		err = buf.AddSubroutine(command.Subroutine{
			Address:   subroutine.Address,
			Arguments: subroutine.Arguments,
			Type:      typ,
		})
		if err != nil {
			return nil, fmt.Errorf("adding subroutine: %w", err)
		}
	}

	for _, r := range s.Types {
		if err := applyTypeRange(buf, r); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

func (s *State) validateSegments(length int) error {
	if len(s.Segments) < 2 {
		return fmt.Errorf("%w: start and end segment required", ErrInvalidSegments)
	}
	first, last := s.Segments[0], s.Segments[len(s.Segments)-1]
	if first.Index != 0 {
		return fmt.Errorf("%w: first segment starts at index %d", ErrInvalidSegments, first.Index)
	}
	if last.Index != length {
		return fmt.Errorf("%w: end segment index %d does not match code length %d",
			ErrInvalidSegments, last.Index, length)
	}
	if last.Base != first.Base {
		return fmt.Errorf("%w: end segment base %d does not match start base %d",
			ErrInvalidSegments, last.Base, first.Base)
	}
	return nil
}

func applyTypeRange(buf *command.Buffer, r TypeRange) error {
	typ, err := codetype.Parse(r.Type)
	if err != nil {
		return fmt.Errorf("type range at index %d: %w", r.Index, err)
	}
	end := r.End
	if end == 0 {
		end = r.Index + 1
	}
	if !buf.HasIndex(r.Index) || !buf.HasEndIndex(end) || end <= r.Index {
		return fmt.Errorf("%w: %d-%d", ErrInvalidTypeRange, r.Index, end)
	}
	buf.SetTypes(r.Index, end, typ)
	return nil
}

// Load reads a project file.
func Load(r io.Reader) (*State, error) {
	var s State
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding project: %w", err)
	}
	return &s, nil
}

// Save writes the project file.
func (s *State) Save(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(s); err != nil {
		return fmt.Errorf("encoding project: %w", err)
	}
	return nil
}

// Schema returns the JSON schema of the project file.
func Schema() ([]byte, error) {
	reflector := &jsonschema.Reflector{
		DoNotReference: true,
	}
	schema := reflector.Reflect(&State{})
	schema.Title = "c64reasm project"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling schema: %w", err)
	}
	return data, nil
}
