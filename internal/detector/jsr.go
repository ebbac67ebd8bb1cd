package detector

import (
	"fmt"
	"maps"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/retroenv/c64reasm/internal/codetype"
	"github.com/retroenv/c64reasm/internal/command"
	"github.com/retroenv/c64reasm/internal/opcode"
	"github.com/retroenv/c64reasm/internal/options"
)

const jsrSize = 3

// Jsr detects subroutine calls that are followed by inline arguments. The
// argument bytes are classified by the signature of the called subroutine and
// the code after the arguments gets a reference from the call.
//
// Signatures are taken from the subroutine table of the buffer first. Calls of
// subroutines without a signature are used to detect one statistically, a
// detected signature is added to the subroutine table. Calls that still have
// no signature fall back to a zero terminated argument if the following
// command is unreachable.
type Jsr struct {
	logger *log.Logger

	autoDetect       bool
	zeroTerminated   bool
	minMatches       int
	unreachableRatio float64
	matchRatio       float64
	maxLength        int
}

// NewJsr returns a new JSR detector configured by the analyzer options.
func NewJsr(logger *log.Logger, opts options.Analyzer) *Jsr {
	return &Jsr{
		logger:           logger,
		autoDetect:       opts.DetectSubroutines,
		zeroTerminated:   opts.ZeroTerminatedCalls,
		minMatches:       opts.MinMatches,
		unreachableRatio: opts.UnreachableRatio,
		matchRatio:       opts.MatchRatio,
		maxLength:        opts.MaxArgumentLength,
	}
}

// Name returns the name of the detector.
func (d *Jsr) Name() string {
	return "jsr"
}

// Detect classifies the arguments of all reachable subroutine calls.
func (d *Jsr) Detect(buf *command.Buffer) bool {
	var changed bool
	calls := crossReference(buf)

	for _, address := range slices.Sorted(maps.Keys(calls)) {
		indexes := calls[address]

		subroutine, ok := buf.Subroutine(address)
		if !ok && d.autoDetect {
			subroutine, ok = d.detect(buf, address, indexes)
		}
		if !ok {
			if d.zeroTerminated {
				changed = d.markZeroTerminated(buf, indexes) || changed
			}
			continue
		}

		for _, index := range indexes {
			changed = d.markCall(buf, index, subroutine) || changed
		}
	}
	return changed
}

// crossReference returns the indexes of all reachable absolute JSR instructions
// that are followed by at least one byte, grouped by the called address.
func crossReference(buf *command.Buffer) map[uint16][]int {
	result := map[uint16][]int{}
	for _, entry := range buf.Entries() {
		op, ok := entry.Command.(*command.OpcodeCommand)
		if !ok || !op.Is(opcode.Jsr) || op.Opcode.Addressing != opcode.AbsoluteAddressing || !op.Reachable() {
			continue
		}
		if !buf.HasIndex(entry.Index + jsrSize) {
			continue
		}
		result[op.Operand] = append(result[op.Operand], entry.Index)
	}
	return result
}

func (d *Jsr) markCall(buf *command.Buffer, index int, subroutine command.Subroutine) bool {
	switch {
	case subroutine.Arguments == 0:
		end, ok := d.search0(buf, index+jsrSize, false, false)
		if !ok {
			return false
		}
		return markJSR(buf, index, end, subroutine.Type)

	case subroutine.Arguments > 0:
		return markJSR(buf, index, index+jsrSize+subroutine.Arguments, subroutine.Type)

	default:
		return false
	}
}

// markZeroTerminated handles calls without a signature whose following command
// is unreachable and that are followed by a zero terminated argument.
func (d *Jsr) markZeroTerminated(buf *command.Buffer, indexes []int) bool {
	var changed bool
	for _, index := range indexes {
		next, ok := buf.Command(index + jsrSize)
		if !ok || next.Reachable() {
			continue
		}
		end, ok := d.search0(buf, index+jsrSize, true, false)
		if !ok {
			continue
		}
		d.logger.Debug("Zero terminated call argument",
			"index", fmt.Sprintf("$%04X", index),
			"length", end-index-jsrSize)
		changed = markJSR(buf, index, end, codetype.Data) || changed
	}
	return changed
}

// detect tries to detect a zero terminated or an address argument for all
// calls of the subroutine and registers a detected signature.
func (d *Jsr) detect(buf *command.Buffer, address uint16, indexes []int) (command.Subroutine, bool) {
	if subroutine, ok := d.detectZero(buf, address, indexes); ok {
		return subroutine, true
	}
	return d.detectAddress(buf, address, indexes)
}

func (d *Jsr) detectZero(buf *command.Buffer, address uint16, indexes []int) (command.Subroutine, bool) {
	var matches, unreachable int
	for _, index := range indexes {
		if _, ok := d.search0(buf, index+jsrSize, true, true); !ok {
			continue
		}
		matches++
		if !isReachable(buf, index+jsrSize) {
			unreachable++
		}
	}

	subroutine := command.Subroutine{Address: address, Arguments: 0, Type: codetype.Data}
	return d.register(buf, "zero terminated argument", subroutine, matches, unreachable, len(indexes), true)
}

func (d *Jsr) detectAddress(buf *command.Buffer, address uint16, indexes []int) (command.Subroutine, bool) {
	code := buf.Code()
	var matches, unreachable int
	for _, index := range indexes {
		argument := index + jsrSize
		if !buf.HasIndex(argument + 1) {
			continue
		}
		if !buf.HasAddress(uint16(code[argument]) | uint16(code[argument+1])<<8) {
			continue
		}
		matches++
		if !isReachable(buf, argument) {
			unreachable++
		}
	}

	// the ratio of unreachable arguments is not checked, a valid address
	// often decodes to a valid instruction
	subroutine := command.Subroutine{Address: address, Arguments: 2, Type: codetype.Address}
	return d.register(buf, "address argument", subroutine, matches, unreachable, len(indexes), false)
}

func (d *Jsr) register(buf *command.Buffer, kind string, subroutine command.Subroutine,
	matches, unreachable, calls int, checkUnreachable bool) (command.Subroutine, bool) {

	if matches == 0 {
		return command.Subroutine{}, false
	}

	unreachableRatio := float64(unreachable) / float64(calls)
	matchRatio := float64(matches) / float64(calls)
	if matches < d.minMatches ||
		(checkUnreachable && unreachableRatio < d.unreachableRatio) ||
		matchRatio < d.matchRatio {

		d.logger.Debug("Potential subroutine",
			"kind", kind,
			"address", fmt.Sprintf("$%04X", subroutine.Address),
			"matches", matches,
			"unreachable", unreachable,
			"calls", calls)
		return command.Subroutine{}, false
	}

	if err := buf.AddSubroutine(subroutine); err != nil {
		d.logger.Warn("Registering subroutine failed", "err", err)
		return command.Subroutine{}, false
	}
	d.logger.Debug("Detected subroutine",
		"kind", kind,
		"address", fmt.Sprintf("$%04X", subroutine.Address),
		"matches", matches,
		"unreachable", unreachable,
		"calls", calls)
	return subroutine, true
}

// search0 returns the index following the first zero byte at or after start.
// The search is limited to the maximum argument length and optionally stops at
// labels and at bytes that are already classified as code.
func (d *Jsr) search0(buf *command.Buffer, start int, stopAtLabel, stopAtCode bool) (int, bool) {
	code := buf.Code()
	for index := start; buf.HasIndex(index) && index-start < d.maxLength; index++ {
		if stopAtLabel && buf.HasLabel(buf.AddressForIndex(index)) {
			return 0, false
		}
		if stopAtCode {
			if typ := buf.Type(index); !typ.IsUnknown() && !typ.IsData() {
				return 0, false
			}
		}
		if code[index] == 0 {
			return index + 1, true
		}
	}
	return 0, false
}

// markJSR classifies the call at the index as opcode, the argument bytes up to
// the end index with the given type and the byte at the end index as opcode.
// A code reference from the call to the end index makes the following code
// reachable. It returns whether any classification changed.
func markJSR(buf *command.Buffer, index, end int, typ codetype.Type) bool {
	if !buf.HasIndex(end) {
		return false
	}

	buf.AddCodeReference(index, buf.AddressForIndex(end))

	changed := buf.SetType(index, codetype.Opcode)
	if end > index+jsrSize {
		changed = buf.SetTypes(index+jsrSize, end, typ) || changed
	}
	changed = buf.SetType(end, codetype.Opcode) || changed
	return changed
}

func isReachable(buf *command.Buffer, index int) bool {
	cmd, ok := buf.Command(index)
	return ok && cmd.Reachable()
}
