// Package cli handles command line interface logic
package cli

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
)

// BuildInfo contains the version information that is set at build time.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalFlags are the flags shared by all commands.
type globalFlags struct {
	debug bool
	quiet bool
}

// NewRootCommand creates the root command including all sub commands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var global globalFlags

	rootCmd := &cobra.Command{
		Use:   "c64reasm",
		Short: "Reassembler for C64 programs",
		Long: `c64reasm analyzes 6502/6510 programs, separates code from data and
generates reassemblable source code for the ACME cross assembler.`,
		Example: `
# Print a listing of a program
c64reasm analyze game.prg

# Generate ACME source and verify that it reassembles to the input
c64reasm analyze --format source --verify -o game.asm game.prg

# Save the analysis state to refine it later
c64reasm analyze --subroutine ab1e:0 --save-project game.json game.prg
  `,
		Version:       info.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&global.debug, "debug", "d", false, "enable debugging options for extended logging")
	rootCmd.PersistentFlags().BoolVarP(&global.quiet, "quiet", "q", false, "perform operations quietly")

	rootCmd.AddCommand(
		newAnalyzeCommand(&global, info),
		newDisasmCommand(),
		newDumpCommand(),
		newSchemaCommand(),
	)
	return rootCmd
}

// Execute runs the command line interface. Output to a terminal uses fang
// for styled help and errors, piped output uses cobra directly.
func Execute(ctx context.Context, info BuildInfo) error {
	rootCmd := NewRootCommand(info)

	if !term.IsTerminal(os.Stdout.Fd()) {
		rootCmd.SilenceErrors = false
		return rootCmd.ExecuteContext(ctx) //nolint:wrapcheck // cobra errors are printed as is
	}

	return fang.Execute( //nolint:wrapcheck // fang errors are printed as is
		ctx,
		rootCmd,
		fang.WithVersion(info.Version),
		fang.WithCommit(info.Commit),
		fang.WithNotifySignal(os.Interrupt),
	)
}
