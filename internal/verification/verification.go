// Package verification verifies that the generated source recreates the input.
package verification

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/retroenv/c64reasm/internal/assembler/acme"
	"github.com/retroenv/c64reasm/internal/command"
	"github.com/retroenv/c64reasm/internal/options"
	"github.com/retroenv/c64reasm/internal/writer"
)

// debugSourceFile is the file that keeps the verified source in debug mode.
const debugSourceFile = "debug.asm"

// VerifyOutput renders the buffer as source, assembles it and checks that the
// assembled bytes equal the bytes of the buffer.
func VerifyOutput(ctx context.Context, logger *log.Logger, opts options.Program, buf *command.Buffer) error {
	var (
		err        error
		sourceFile *os.File
	)

	if opts.Debug {
		sourceFile, err = os.Create(debugSourceFile)
		if err != nil {
			return fmt.Errorf("creating file '%s': %w", debugSourceFile, err)
		}
	} else {
		sourceFile, err = os.CreateTemp("", "c64reasm.*.asm")
		if err != nil {
			return fmt.Errorf("creating temp file: %w", err)
		}
		defer func() {
			_ = os.Remove(sourceFile.Name())
		}()
	}

	err = writer.New(buf, sourceFile).Write(options.FormatSource)
	if closeErr := sourceFile.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("writing source file: %w", err)
	}

	outputFile, err := os.CreateTemp("", "c64reasm.*.bin")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	_ = outputFile.Close()
	defer func() {
		_ = os.Remove(outputFile.Name())
	}()

	if err := acme.AssembleUsingExternalApp(ctx, sourceFile.Name(), outputFile.Name()); err != nil {
		return fmt.Errorf("reassembling using acme failed: %w", err)
	}

	destination, err := os.ReadFile(outputFile.Name())
	if err != nil {
		return fmt.Errorf("reading destination file for comparison: %w", err)
	}

	if err := checkBufferEqual(logger, buf, destination); err != nil {
		return fmt.Errorf("comparing output: %w", err)
	}
	logger.Debug("Output verified", "bytes", len(destination))
	return nil
}

func checkBufferEqual(logger *log.Logger, buf *command.Buffer, output []byte) error {
	input := buf.Code()
	if len(input) != len(output) {
		return fmt.Errorf("mismatched lengths, %d != %d", len(input), len(output))
	}

	var diffs uint64
	for i := range input {
		if input[i] == output[i] {
			continue
		}

		diffs++
		if diffs < 10 {
			logger.Error("Address mismatch",
				"index", i,
				"address", fmt.Sprintf("$%04X", buf.AddressForIndex(i)),
				"expected", fmt.Sprintf("$%02X", input[i]),
				"got", fmt.Sprintf("$%02X", output[i]))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%d address mismatches", diffs)
}
