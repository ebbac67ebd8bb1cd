// Package options contains the program options.
package options

// Output formats of the analyze command.
const (
	FormatListing = "listing"
	FormatSource  = "source"
)

// Parameters contains file path options.
type Parameters struct {
	Input       string // input file, raw binary, .prg file or project file
	Output      string // output .asm file, printed on console if empty
	Batch       string // glob pattern of files to process
	Project     string // project file to load the analysis state from
	SaveProject string // project file to save the analysis state to
}

// Flags contains behavior options.
type Flags struct {
	Start  string // start address of raw input files, hex
	Raw    bool   // treat .prg files as raw binary without load address
	Verify bool   // verify the output by reassembling it
	Debug  bool
	Quiet  bool
}

// Seed contains the analyst supplied hints that are applied before the analysis.
type Seed struct {
	Subroutines []string // address:arguments[:type]
	Types       []string // start-end:type, inclusive hex indexes into the input
	Rebases     []string // index:address, the index is located at the address
}

// OutputFlags contains output formatting options.
type OutputFlags struct {
	Format string // listing or source
	Color  bool   // highlight console output
	Report bool   // print an analysis report
}

// Program options of the reassembler.
type Program struct {
	Parameters
	Flags
	Seed
	OutputFlags
}

// Analyzer defines options to control the analysis.
type Analyzer struct {
	MaxIterations      int  // cap of tokenize and detect iterations
	StrictReachability bool // code after an end command needs a label to be reachable

	DetectSubroutines   bool // detect subroutines with inline arguments from their calls
	ZeroTerminatedCalls bool // treat zero terminated bytes after single calls as argument
	MinMatches          int
	UnreachableRatio    float64
	MatchRatio          float64
	MaxArgumentLength   int
}

// NewAnalyzer returns a new options instance with default options.
func NewAnalyzer() Analyzer {
	return Analyzer{
		MaxIterations: 100,

		DetectSubroutines:   true,
		ZeroTerminatedCalls: true,
		MinMatches:          2,
		UnreachableRatio:    0.2,
		MatchRatio:          0.8,
		MaxArgumentLength:   256,
	}
}
