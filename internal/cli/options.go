// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/RPINerd/SimpleCoverage/internal/config"
	"github.com/RPINerd/SimpleCoverage/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	QueryFile   string
	TargetFiles []string

	// Matching
	Mismatches int
	Revcomp    bool

	// Performance
	Threads int

	// Output
	Output  string
	Pretty  bool
	Columns int
	Sort    bool
	Header  bool // true unless --no-header

	// Misc
	Quiet   bool
	Version bool
}

// NewFlagSet returns a FlagSet that leaves all help/error printing to the
// caller (pflag's own output is discarded; see Usage).
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	return fs
}

// Usage writes the full help text to w.
func Usage(w io.Writer, name string, fs *pflag.FlagSet) {
	fmt.Fprintf(w,
		`%s: primer/probe coverage of target sequences

Computes, for each target, the fraction of positions spanned by at least one
matching query, plus a length-weighted overall percentage.

Version: %s

Usage:
  %s -i queries.fa -t targets.fa [targets2.fa ...] [flags]

Flags:
%s`, name, version.Version, name, fs.FlagUsages())
}

// ParseArgs registers and parses all flags, seeding defaults from the config
// layer, and returns a validated Options struct. Positional arguments are
// treated as additional target files.
func ParseArgs(fs *pflag.FlagSet, argv []string, def config.Defaults) (Options, error) {
	var opt Options

	fs.StringVarP(&opt.QueryFile, "input", "i", "", "query FASTA (primers/probes) [*]")
	fs.StringArrayVarP(&opt.TargetFiles, "targets", "t", nil, "target FASTA file(s) (repeatable, or '-' for stdin) [*]")

	fs.IntVarP(&opt.Mismatches, "mismatches", "m", def.Mismatches, "max mismatches per query")
	fs.BoolVar(&opt.Revcomp, "revcomp", false, "also match reverse complements of the queries")

	fs.IntVar(&opt.Threads, "threads", def.Threads, "worker threads (0 = all CPUs)")

	fs.StringVarP(&opt.Output, "output", "o", def.Output, "output format: text | json | jsonl")
	fs.BoolVar(&opt.Pretty, "pretty", false, "append ASCII coverage map blocks (text output)")
	fs.IntVar(&opt.Columns, "columns", def.Columns, "coverage map width for --pretty")
	fs.BoolVar(&opt.Sort, "sort", false, "sort per-target rows by target ID (default: input order)")
	noHeader := fs.Bool("no-header", false, "suppress header line in text output")

	fs.BoolVarP(&opt.Quiet, "quiet", "q", false, "suppress non-essential warnings")
	fs.BoolVarP(&opt.Version, "version", "v", false, "print version and exit")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	opt.Header = !*noHeader
	if opt.Version {
		return opt, nil
	}
	opt.TargetFiles = append(opt.TargetFiles, fs.Args()...)

	// Validation
	if opt.QueryFile == "" {
		return opt, errors.New("--input is required")
	}
	if len(opt.TargetFiles) == 0 {
		return opt, errors.New("at least one --targets file is required")
	}
	if opt.Mismatches < 0 {
		return opt, errors.New("--mismatches must be >= 0")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be >= 0")
	}
	if opt.Columns < 1 {
		return opt, errors.New("--columns must be >= 1")
	}
	switch opt.Output {
	case "text", "json", "jsonl":
	default:
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}
