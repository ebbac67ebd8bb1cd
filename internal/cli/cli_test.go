package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/c64reasm/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

// LDA #$00, STA $D020, RTS loaded at $C000
var testProgram = []byte{0x00, 0xC0, 0xA9, 0x00, 0x8D, 0x20, 0xD0, 0x60}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand(BuildInfo{Version: "test"})
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func createTempFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return path
}

func TestValidateOptions(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		batch       string
		project     string
		format      string
		expectError bool
	}{
		{name: "input", input: "a.prg", format: options.FormatListing},
		{name: "project", project: "a.json", format: options.FormatSource},
		{name: "batch", batch: "*.prg", format: options.FormatListing},
		{name: "missing input", format: options.FormatListing, expectError: true},
		{name: "batch and input", input: "a.prg", batch: "*.prg", format: options.FormatListing, expectError: true},
		{name: "unsupported format", input: "a.prg", format: "html", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts options.Program
			opts.Input = tt.input
			opts.Batch = tt.batch
			opts.Project = tt.project
			opts.Format = tt.format

			err := validateOptions(&opts)
			if tt.expectError {
				assert.True(t, err != nil)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAnalyzeCommand(t *testing.T) {
	dir := t.TempDir()
	input := createTempFile(t, dir, "test.prg", testProgram)
	output := filepath.Join(dir, "out.asm")
	state := filepath.Join(dir, "state.json")

	stdout, err := execute(t, "-q", "analyze", "--format", "source", "-o", output,
		"--save-project", state, "--subroutine", "ffd2:-1", input)
	assert.NoError(t, err)
	assert.Equal(t, "", stdout)

	data, err := os.ReadFile(output)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "*=$C000\n"))
	assert.True(t, strings.Contains(string(data), "STA X_D020"))

	stdout, err = execute(t, "-q", "analyze", "--project", state)
	assert.NoError(t, err)
	assert.True(t, strings.Contains(stdout, "LDA #$00"))
}

func TestAnalyzeCommandBatch(t *testing.T) {
	dir := t.TempDir()
	createTempFile(t, dir, "a.prg", testProgram)
	createTempFile(t, dir, "b.prg", testProgram)

	_, err := execute(t, "-q", "analyze", "--batch", filepath.Join(dir, "*.prg"))
	assert.NoError(t, err)
	for _, name := range []string{"a.asm", "b.asm"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err)
	}

	createTempFile(t, dir, "c.prg", []byte{0x00})
	_, err = execute(t, "-q", "analyze", "--batch", filepath.Join(dir, "*.prg"))
	assert.True(t, errors.Is(err, errBatchFailed))
}

func TestAnalyzeCommandMissingInput(t *testing.T) {
	_, err := execute(t, "-q", "analyze")
	assert.True(t, errors.Is(err, errMissingInput))
}

func TestDisasmCommand(t *testing.T) {
	input := createTempFile(t, t.TempDir(), "test.prg", testProgram)

	stdout, err := execute(t, "disasm", input)
	assert.NoError(t, err)
	assert.Equal(t, "C000  A9 00     LDA #$00\nC002  8D 20 D0  STA $D020\nC005  60        RTS\n", stdout)

	stdout, err = execute(t, "disasm", "--raw", "--start", "1000", input)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "1000  00        BRK\n"))
}

func TestDumpCommand(t *testing.T) {
	input := createTempFile(t, t.TempDir(), "test.bin", []byte{0x41, 0x42})

	stdout, err := execute(t, "dump", "--start", "$0400", input)
	assert.NoError(t, err)
	assert.Equal(t, "0400  41 42 "+strings.Repeat("   ", 14)+"  ab\n", stdout)
}

func TestSchemaCommand(t *testing.T) {
	stdout, err := execute(t, "schema")
	assert.NoError(t, err)
	assert.True(t, strings.Contains(stdout, `"segments"`))
}
