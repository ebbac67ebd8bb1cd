package cli

import (
	"fmt"
	"io"

	"github.com/retroenv/c64reasm/internal/lister"
	"github.com/retroenv/c64reasm/internal/loader"
	"github.com/retroenv/c64reasm/internal/options"
	"github.com/spf13/cobra"
)

type listFunc func(w io.Writer, start uint16, code []byte) error

func newDisasmCommand() *cobra.Command {
	return newListCommand("disasm <file>", "Disassemble a program linearly without analysis", lister.Disassemble)
}

func newDumpCommand() *cobra.Command {
	return newListCommand("dump <file>", "Print a hex dump of a program", lister.Dump)
}

func newListCommand(use, short string, list listFunc) *cobra.Command {
	var opts options.Program

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input = args[0]
			buf, err := loader.New().Load(opts)
			if err != nil {
				return fmt.Errorf("loading input: %w", err)
			}
			return list(cmd.OutOrStdout(), buf.StartAddress(), buf.Code())
		},
	}

	cmd.Flags().StringVarP(&opts.Start, "start", "s", "", "start address of raw input files, hex (default 0801)")
	cmd.Flags().BoolVar(&opts.Raw, "raw", false, "read .prg files as raw binary without load address")
	return cmd
}
