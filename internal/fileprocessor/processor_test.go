package fileprocessor

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/retroenv/c64reasm/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func createTestCode() []byte {
	// Simple 6502 program with load address: LDA #$00, STA $0200, RTS
	return []byte{
		0x00, 0xC0,
		0xA9, 0x00,
		0x8D, 0x00, 0x02,
		0x60,
	}
}

func createTempFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return path
}

func TestProcessFileConsole(t *testing.T) {
	input := createTempFile(t, t.TempDir(), "test.prg", createTestCode())

	var opts options.Program
	opts.Input = input
	opts.Format = options.FormatSource
	opts.Quiet = true
	opts.Report = true

	var out, errOut bytes.Buffer
	err := ProcessFile(context.Background(), log.New(io.Discard), opts, options.NewAnalyzer(),
		Streams{Out: &out, Err: &errOut})
	assert.NoError(t, err)

	output := out.String()
	assert.True(t, strings.HasPrefix(output, "*=$C000\n"))
	assert.True(t, strings.Contains(output, "STA X_0200"))
	assert.True(t, strings.Contains(errOut.String(), "test.prg"))
}

func TestProcessFileOutputFile(t *testing.T) {
	dir := t.TempDir()
	input := createTempFile(t, dir, "test.prg", createTestCode())

	var opts options.Program
	opts.Input = input
	opts.Output = GenerateOutputFilename(input)
	opts.Quiet = true

	var out bytes.Buffer
	err := ProcessFile(context.Background(), log.New(io.Discard), opts, options.NewAnalyzer(),
		Streams{Out: &out, Err: io.Discard})
	assert.NoError(t, err)
	assert.Equal(t, 0, out.Len())

	data, err := os.ReadFile(filepath.Join(dir, "test.asm"))
	assert.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "LDA #$00"))
}

func TestGetFilesToProcess(t *testing.T) {
	dir := t.TempDir()
	createTempFile(t, dir, "a.prg", createTestCode())
	createTempFile(t, dir, "b.prg", createTestCode())
	createTempFile(t, dir, "c.bin", createTestCode())

	var opts options.Program
	opts.Batch = filepath.Join(dir, "*.prg")
	files, err := GetFilesToProcess(&opts)
	assert.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.prg"), filepath.Join(dir, "b.prg")}, files)

	opts = options.Program{}
	opts.Project = "state.json"
	files, err = GetFilesToProcess(&opts)
	assert.NoError(t, err)
	assert.Equal(t, []string{"state.json"}, files)

	opts = options.Program{}
	opts.Batch = "["
	_, err = GetFilesToProcess(&opts)
	assert.Error(t, err)
}

func TestGenerateOutputFilename(t *testing.T) {
	assert.Equal(t, "game.asm", GenerateOutputFilename("game.prg"))
	assert.Equal(t, "dir/game.asm", GenerateOutputFilename("dir/game"))
}

func TestPrintBanner(t *testing.T) {
	var opts options.Program
	var out bytes.Buffer
	PrintBanner(&out, log.New(io.Discard), opts, "v1.2.3", "0123456789", "2026-10-15")
	assert.True(t, strings.Contains(out.String(), "v1.2.3 (0123456)"))

	out.Reset()
	opts.Quiet = true
	PrintBanner(&out, log.New(io.Discard), opts, "v1.2.3", "", "")
	assert.Equal(t, 0, out.Len())
}
