package project

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/retroenv/c64reasm/internal/codetype"
	"github.com/retroenv/c64reasm/internal/command"
	"github.com/retroenv/c64reasm/internal/options"
)

// ErrInvalidSeed is returned for a seed option that can not be parsed.
var ErrInvalidSeed = errors.New("invalid seed")

// ApplySeed applies the analyst supplied hints to the buffer.
func ApplySeed(buf *command.Buffer, seed options.Seed) error {
	for _, s := range seed.Rebases {
		index, address, err := parseRebase(s)
		if err != nil {
			return err
		}
		if err := buf.Base(index, address); err != nil {
			return fmt.Errorf("rebase '%s': %w", s, err)
		}
	}

	for _, s := range seed.Subroutines {
		subroutine, err := parseSubroutine(s)
		if err != nil {
			return err
		}
		if err := buf.AddSubroutine(subroutine); err != nil {
			return fmt.Errorf("subroutine '%s': %w", s, err)
		}
	}

	for _, s := range seed.Types {
		start, end, typ, err := parseTypes(s)
		if err != nil {
			return err
		}
		if !buf.HasIndex(start) || !buf.HasIndex(end) {
			return fmt.Errorf("%w: type range '%s' outside of input", ErrInvalidSeed, s)
		}
		buf.SetTypes(start, end+1, typ)
	}
	return nil
}

// parseSubroutine parses address:arguments[:type].
func parseSubroutine(s string) (command.Subroutine, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return command.Subroutine{}, fmt.Errorf("%w: subroutine '%s' is not address:arguments[:type]", ErrInvalidSeed, s)
	}

	address, err := parseHex(parts[0], 16)
	if err != nil {
		return command.Subroutine{}, fmt.Errorf("%w: subroutine address '%s': %w", ErrInvalidSeed, parts[0], err)
	}
	arguments, err := strconv.Atoi(parts[1])
	if err != nil {
		return command.Subroutine{}, fmt.Errorf("%w: subroutine arguments '%s': %w", ErrInvalidSeed, parts[1], err)
	}

	typ := codetype.Data
	if len(parts) == 3 {
		typ, err = codetype.Parse(parts[2])
		if err != nil {
			return command.Subroutine{}, fmt.Errorf("%w: subroutine '%s': %w", ErrInvalidSeed, s, err)
		}
	}

	return command.Subroutine{
		Address:   uint16(address),
		Arguments: arguments,
		Type:      typ,
	}, nil
}

// parseTypes parses start-end:type with an inclusive end.
func parseTypes(s string) (int, int, codetype.Type, error) {
	indexes, name, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, codetype.Unknown, fmt.Errorf("%w: type range '%s' is not start-end:type", ErrInvalidSeed, s)
	}
	typ, err := codetype.Parse(name)
	if err != nil {
		return 0, 0, codetype.Unknown, fmt.Errorf("%w: type range '%s': %w", ErrInvalidSeed, s, err)
	}

	first, last, found := strings.Cut(indexes, "-")
	start, err := parseHex(first, 32)
	if err != nil {
		return 0, 0, codetype.Unknown, fmt.Errorf("%w: type range start '%s': %w", ErrInvalidSeed, first, err)
	}
	end := start
	if found {
		end, err = parseHex(last, 32)
		if err != nil {
			return 0, 0, codetype.Unknown, fmt.Errorf("%w: type range end '%s': %w", ErrInvalidSeed, last, err)
		}
	}
	if end < start {
		return 0, 0, codetype.Unknown, fmt.Errorf("%w: type range '%s' ends before its start", ErrInvalidSeed, s)
	}
	return int(start), int(end), typ, nil
}

// parseRebase parses index:address.
func parseRebase(s string) (int, uint16, error) {
	first, second, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("%w: rebase '%s' is not index:address", ErrInvalidSeed, s)
	}
	index, err := parseHex(first, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: rebase index '%s': %w", ErrInvalidSeed, first, err)
	}
	address, err := parseHex(second, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: rebase address '%s': %w", ErrInvalidSeed, second, err)
	}
	return int(index), uint16(address), nil
}

// parseHex parses a hex number with an optional $ or 0x prefix.
func parseHex(s string, bitSize int) (uint64, error) {
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	value, err := strconv.ParseUint(s, 16, bitSize)
	if err != nil {
		return 0, fmt.Errorf("parsing hex number: %w", err)
	}
	return value, nil
}

// ParseAddress parses a hex address with an optional $ or 0x prefix.
func ParseAddress(s string) (uint16, error) {
	value, err := parseHex(s, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid address '%s': %w", s, err)
	}
	return uint16(value), nil
}
