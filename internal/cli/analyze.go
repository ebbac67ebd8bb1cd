package cli

import (
	"errors"
	"fmt"

	"github.com/retroenv/c64reasm/internal/config"
	"github.com/retroenv/c64reasm/internal/fileprocessor"
	"github.com/retroenv/c64reasm/internal/options"
	"github.com/spf13/cobra"
)

var (
	errMissingInput = errors.New("no input file, batch pattern or project given")
	errBatchFailed  = errors.New("processing of batch files failed")
)

func newAnalyzeCommand(global *globalFlags, info BuildInfo) *cobra.Command {
	var opts options.Program
	analyzer := options.NewAnalyzer()

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Analyze a program and output a listing or source code",
		Long: `Analyze separates code from data by repeatedly decoding the program and
running the detectors until the classification does not change anymore.
Input files are raw binaries, .prg files or project files.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Input = args[0]
			}
			opts.Debug = global.debug
			opts.Quiet = global.quiet
			if err := validateOptions(&opts); err != nil {
				return err
			}

			logger := config.CreateLogger(opts.Debug, opts.Quiet)
			fileprocessor.PrintBanner(cmd.ErrOrStderr(), logger, opts, info.Version, info.Commit, info.Date)

			files, err := fileprocessor.GetFilesToProcess(&opts)
			if err != nil {
				return fmt.Errorf("getting files to process: %w", err)
			}

			streams := fileprocessor.Streams{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
			if len(files) == 1 && opts.Batch == "" {
				return fileprocessor.ProcessFile(cmd.Context(), logger, opts, analyzer, streams) //nolint:wrapcheck
			}

			var failed int
			for _, file := range files {
				fileOpts := opts
				fileOpts.Input = file
				fileOpts.Output = fileprocessor.GenerateOutputFilename(file)
				if err := fileprocessor.ProcessFile(cmd.Context(), logger, fileOpts, analyzer, streams); err != nil {
					if cmd.Context().Err() != nil {
						return fmt.Errorf("processing %s: %w", file, err)
					}
					logger.Error("Reassembling failed", "file", file, "err", err)
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", errBatchFailed, failed, len(files))
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.Output, "output", "o", "", "name of the output .asm file, printed on console if no name given")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of files matching the pattern with automatic .asm file naming, for example *.prg")
	flags.StringVarP(&opts.Project, "project", "p", "", "project file to load the analysis state from")
	flags.StringVar(&opts.SaveProject, "save-project", "", "project file to save the analysis state to")
	flags.StringVarP(&opts.Start, "start", "s", "", "start address of raw input files, hex (default 0801)")
	flags.BoolVar(&opts.Raw, "raw", false, "read .prg files as raw binary without load address")
	flags.BoolVar(&opts.Verify, "verify", false, "verify the generated output by assembling it with acme and check if it matches the input")
	flags.StringVarP(&opts.Format, "format", "f", options.FormatListing, "output format (listing, source)")
	flags.BoolVar(&opts.Color, "color", false, "highlight the output")
	flags.BoolVar(&opts.Report, "report", false, "print a report of the analysis")

	flags.StringArrayVar(&opts.Subroutines, "subroutine", nil, "subroutine with inline arguments, address:arguments[:type], 0 arguments for zero terminated, -1 for none")
	flags.StringArrayVar(&opts.Types, "type", nil, "classify input bytes, start-end:type with hex indexes, type is one of opcode, code, data, bit, address")
	flags.StringArrayVar(&opts.Rebases, "rebase", nil, "code that runs at a different address, index:address in hex")

	flags.IntVar(&analyzer.MaxIterations, "max-iterations", analyzer.MaxIterations, "maximum number of analysis iterations")
	flags.BoolVar(&analyzer.StrictReachability, "strict", analyzer.StrictReachability, "code following an end instruction needs a label to be reachable")
	flags.BoolVar(&analyzer.DetectSubroutines, "detect-subroutines", analyzer.DetectSubroutines, "detect subroutines with inline arguments")
	flags.BoolVar(&analyzer.ZeroTerminatedCalls, "zero-terminated", analyzer.ZeroTerminatedCalls, "treat zero terminated bytes after unknown calls as arguments")

	return cmd
}

// validateOptions checks the option combinations.
func validateOptions(opts *options.Program) error {
	if opts.Input == "" && opts.Batch == "" && opts.Project == "" {
		return errMissingInput
	}
	if opts.Batch != "" && (opts.Input != "" || opts.Project != "" || opts.SaveProject != "") {
		return errors.New("batch mode can not be combined with an input file or project files")
	}
	switch opts.Format {
	case options.FormatListing, options.FormatSource:
	default:
		return fmt.Errorf("unsupported output format '%s', valid options: %s, %s",
			opts.Format, options.FormatListing, options.FormatSource)
	}
	return nil
}
