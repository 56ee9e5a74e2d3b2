// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"annonex2embl/internal/version"
)

// Terminal-stop policies for coding features.
const (
	StopWarn   = "warn"
	StopReject = "reject"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Inputs
	NexusFile string
	CSVFile   string

	// Output
	OutFile string // "" or "-" = stdout
	Format  string // embl | gb

	// Conversion parameters
	Label         string // CSV column holding sequence names
	TranslTable   int
	OnMissingStop string // warn | reject
	Strict        bool   // missing qualifier row aborts the run

	// Performance
	Threads int

	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: convert an annotated NEXUS alignment to EMBL/GenBank records

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(flag.CommandLine, nil) }

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Inputs
	fs.StringVar(&opt.NexusFile, "nexus", "", "NEXUS alignment with a SETS charset block [*]")
	fs.StringVar(&opt.CSVFile, "csv", "", "CSV qualifier table [*]")

	// Output
	fs.StringVar(&opt.OutFile, "output", "", "output file ('' or '-' = stdout)")
	fs.StringVar(&opt.Format, "format", "embl", "output format: embl | gb [embl]")

	// Conversion parameters
	fs.StringVar(&opt.Label, "label", "isolate", "CSV column with the sequence names [isolate]")
	fs.IntVar(&opt.TranslTable, "table", 11, "NCBI translation table for coding regions [11]")
	fs.StringVar(&opt.OnMissingStop, "on-missing-stop", StopWarn, "coding feature lacks a terminal stop: warn | reject [warn]")
	fs.BoolVar(&opt.Strict, "strict", false, "abort when a sequence has no qualifier row [false]")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 0, "number of record workers (0 = all CPUs) [0]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	// Validation
	if opt.NexusFile == "" {
		return opt, errors.New("--nexus is required")
	}
	if opt.CSVFile == "" {
		return opt, errors.New("--csv is required")
	}
	if opt.Format != "embl" && opt.Format != "gb" {
		return opt, fmt.Errorf("invalid --format %q", opt.Format)
	}
	if opt.Label == "" {
		return opt, errors.New("--label must not be empty")
	}
	if opt.OnMissingStop != StopWarn && opt.OnMissingStop != StopReject {
		return opt, fmt.Errorf("invalid --on-missing-stop %q", opt.OnMissingStop)
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	return opt, nil
}
