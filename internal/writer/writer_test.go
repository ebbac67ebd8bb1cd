package writer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/retroenv/c64reasm/internal/codetype"
	"github.com/retroenv/c64reasm/internal/command"
	"github.com/retroenv/c64reasm/internal/options"
	"github.com/retroenv/c64reasm/internal/reassembler"
	"github.com/retroenv/retrogolib/assert"
)

func analyzed(t *testing.T, start uint16, code ...byte) *command.Buffer {
	t.Helper()
	buf, err := command.New(start, code)
	assert.NoError(t, err)

	r := reassembler.New(log.New(io.Discard), options.NewAnalyzer())
	_, err = r.Analyze(context.Background(), buf)
	assert.NoError(t, err)
	return buf
}

func listingLine(flags, data, more, label, text string) string {
	return fmt.Sprintf("%-5s | %-16s%s | %-14s%s", flags, data, more, label, text)
}

func TestWriteListing(t *testing.T) {
	buf := analyzed(t, 0x0800, 0xA9, 0x01, 0x8D, 0x00, 0x02, 0x60)

	var out bytes.Buffer
	w := New(buf, &out)
	assert.NoError(t, w.Write(options.FormatListing))

	expected := strings.Join([]string{
		"*=$0800",
		"",
		"X_0200 = $0200",
		"",
		listingLine("", "0800 uA9 u01", "   ", "", "LDA #$01"),
		listingLine("", "0802 u8D u00 u02", "   ", "", "STA X_0200"),
		listingLine("", "0805 u60", "   ", "", "RTS"),
		"",
	}, "\n")
	assert.Equal(t, expected, out.String())
}

func TestWriteListingMarkers(t *testing.T) {
	// JMP $0804; LDA #$EA; RTS; .byte 1,2,3,4
	buf, err := command.New(0x0800, []byte{0x4C, 0x04, 0x08, 0xA9, 0xEA, 0x60, 1, 2, 3, 4})
	assert.NoError(t, err)
	buf.SetTypes(6, 10, codetype.Data)
	r := reassembler.New(log.New(io.Discard), options.NewAnalyzer())
	_, err = r.Analyze(context.Background(), buf)
	assert.NoError(t, err)

	var out bytes.Buffer
	assert.NoError(t, New(buf, &out).WriteListing())

	lines := strings.Split(out.String(), "\n")
	assert.Equal(t, listingLine("", "0800 u4C u04 u08", "   ", "", "JMP L_0804"), lines[2])
	assert.Equal(t, listingLine("C", "0803 uA9 uEA", "   ", "", "LDA #$EA"), lines[3])
	assert.Equal(t, listingLine("U", "0806 d01 d02 d03", "...", "", "!BYTE $01, $02, $03, $04"), lines[5])
}

func TestWriteSource(t *testing.T) {
	// JMP $0804; BIT $EAEA; RTS
	buf := analyzed(t, 0x0800, 0x4C, 0x04, 0x08, 0x2C, 0xEA, 0xEA, 0x60)

	var out bytes.Buffer
	assert.NoError(t, New(buf, &out).Write(options.FormatSource))

	expected := strings.Join([]string{
		"*=$0800",
		"",
		"        JMP L_0804",
		"        !BYTE $2C ; BIT $EAEA",
		"",
		"L_0804",
		"        NOP",
		"        NOP",
		"        RTS",
		"",
	}, "\n")
	assert.Equal(t, expected, out.String())
}

func TestWriteSourceInnerLabel(t *testing.T) {
	buf := analyzed(t, 0x0800, 0x4C, 0x04, 0x08, 0xA9, 0xEA, 0x60)

	var out bytes.Buffer
	assert.NoError(t, New(buf, &out).WriteSource())

	expected := strings.Join([]string{
		"*=$0800",
		"",
		"        JMP L_0804",
		"L_0804 = * + 1",
		"        LDA #$EA",
		"        RTS",
		"",
	}, "\n")
	assert.Equal(t, expected, out.String())
}

func TestWriteSourcePseudoPC(t *testing.T) {
	buf, err := command.New(0x0800, []byte{0xEA, 0x4C, 0x04, 0x08, 0xEA, 0x60})
	assert.NoError(t, err)
	assert.NoError(t, buf.Base(4, 0xC000))
	r := reassembler.New(log.New(io.Discard), options.NewAnalyzer())
	_, err = r.Analyze(context.Background(), buf)
	assert.NoError(t, err)

	var out bytes.Buffer
	assert.NoError(t, New(buf, &out).WriteSource())

	expected := strings.Join([]string{
		"*=$0800",
		"",
		"X_0804 = $0804",
		"",
		"        NOP",
		"        JMP X_0804",
		"!PSEUDOPC $C000 {",
		"        NOP",
		"        RTS",
		"}",
		"",
	}, "\n")
	assert.Equal(t, expected, out.String())
}

func TestText(t *testing.T) {
	buf, err := command.New(0x0800, make([]byte, 16))
	assert.NoError(t, err)

	tests := []struct {
		name string
		cmd  command.Command
		text string
	}{
		{name: "fill", cmd: command.NewData(0, 0, 0, 0, 0, 0, 0, 0, 0), text: "!FILL 9, $00"},
		{name: "same bytes up to threshold", cmd: command.NewData(0, 0, 0, 0, 0, 0, 0, 0), text: "!BYTE $00, $00, $00, $00, $00, $00, $00, $00"},
		{name: "address outside", cmd: command.NewAddress(0xFFD2), text: "!WORD $FFD2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.text, Text(buf, tt.cmd))
		})
	}
}

func TestWriteUnsupportedFormat(t *testing.T) {
	buf := analyzed(t, 0x0800, 0x60)
	assert.Error(t, New(buf, io.Discard).Write("html"))
}
