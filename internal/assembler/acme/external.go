// Package acme provides helpers to assemble the generated source using the ACME cross assembler.
package acme

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/retroenv/c64reasm/internal/assembler"
)

// Arguments returns the command line arguments that assemble the asm file
// into a plain binary without load address.
func Arguments(asmFile, outputFile string) []string {
	return []string{"--format", "plain", "-o", outputFile, asmFile}
}

// Installed returns whether the assembler can be found in the path.
func Installed() bool {
	_, err := exec.LookPath(executable())
	return err == nil
}

// AssembleUsingExternalApp calls the external assembler to generate a plain
// binary from the given asm file.
func AssembleUsingExternalApp(ctx context.Context, asmFile, outputFile string) error {
	name := executable()
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("%s is not installed", name)
	}

	cmd := exec.CommandContext(ctx, name, Arguments(asmFile, outputFile)...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("assembling file: %s: %w", strings.TrimSpace(string(out)), err)
	}
	return nil
}

func executable() string {
	if runtime.GOOS == "windows" {
		return assembler.Acme + ".exe"
	}
	return assembler.Acme
}
