// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sort"

	"github.com/spf13/pflag"

	"github.com/RPINerd/SimpleCoverage/core/cover"
	"github.com/RPINerd/SimpleCoverage/core/engine"
	"github.com/RPINerd/SimpleCoverage/core/fasta"
	"github.com/RPINerd/SimpleCoverage/core/seq"
	"github.com/RPINerd/SimpleCoverage/internal/cli"
	"github.com/RPINerd/SimpleCoverage/internal/config"
	"github.com/RPINerd/SimpleCoverage/internal/pipeline"
	"github.com/RPINerd/SimpleCoverage/internal/pretty"
	"github.com/RPINerd/SimpleCoverage/internal/version"
	"github.com/RPINerd/SimpleCoverage/internal/writers"
)

// RunContext is the whole application: parse, load, scan, score, write.
// Exit codes: 0 success, 2 usage/input error, 3 runtime error, 130 cancelled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("scov")

	defaults, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, nil, defaults) // registers flags so usage can list them
		cli.Usage(outw, "scov", fs)
		return flushCode(outw, stderr, 0)
	}

	opts, err := cli.ParseArgs(fs, argv, defaults)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			cli.Usage(outw, "scov", fs)
			return flushCode(outw, stderr, 0)
		}
		fmt.Fprintln(stderr, err)
		cli.Usage(stderr, "scov", fs)
		return 2
	}

	if opts.Version {
		fmt.Fprintf(outw, "scov version %s\n", version.Version)
		return flushCode(outw, stderr, 0)
	}

	queries, err := loadSequences(parent, "query", opts.QueryFile)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	targets, err := loadSequences(parent, "target", opts.TargetFiles...)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if len(targets) == 0 {
		fmt.Fprintf(stderr, "%v: no target sequences in input\n", engine.ErrConfig)
		return 2
	}

	scanner, err := engine.NewScanner(engine.Config{
		MaxMismatches: opts.Mismatches,
		Revcomp:       opts.Revcomp,
	}, queries)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	if !opts.Quiet && opts.Mismatches > 0 {
		for _, q := range queries {
			if q.Len() <= opts.Mismatches {
				fmt.Fprintf(stderr, "warning: query %s (%d bp) is within the mismatch tolerance; every window of every target matches it\n",
					q.ID, q.Len())
			}
		}
	}

	thr := opts.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}
	needMap := opts.Pretty && opts.Output == "text"

	results, err := pipeline.Run(parent, pipeline.Config{
		Threads:     thr,
		KeepMatches: needMap,
	}, scanner, targets)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, err)
		return 3
	}

	if opts.Sort {
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Coverage.TargetID < results[j].Coverage.TargetID
		})
	}

	perTarget := make([]cover.TargetCoverage, len(results))
	for i, r := range results {
		perTarget[i] = r.Coverage
	}
	res, err := cover.Aggregate(perTarget)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}

	wo := writers.Options{Format: opts.Output, Header: opts.Header}
	if needMap {
		wo.Render = mapRenderer(queries, results, opts.Columns)
	}
	if err := writers.Write(outw, res, wo); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 3
	}
	return flushCode(outw, stderr, 0)
}

// Run is the signal-free convenience wrapper used by tests.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func loadSequences(ctx context.Context, role string, paths ...string) ([]seq.Sequence, error) {
	recs, err := fasta.ReadAllCtx(ctx, paths...)
	if err != nil {
		return nil, err
	}
	out := make([]seq.Sequence, len(recs))
	for i, r := range recs {
		out[i] = seq.New(r.ID, r.Seq)
	}
	if err := seq.ValidateAll(out, role); err != nil {
		return nil, err
	}
	return out, nil
}

// mapRenderer renders the coverage map block for the result at a given row
// index. Rows and results share an order, so indexing keeps each map with
// its own target even when IDs repeat in the input.
func mapRenderer(queries []seq.Sequence, results []pipeline.TargetResult, columns int) func(int, cover.TargetCoverage) string {
	qmap := make(map[string][]byte, len(queries))
	for _, q := range queries {
		qmap[q.ID] = q.Seq
	}
	return func(i int, _ cover.TargetCoverage) string {
		if i < 0 || i >= len(results) {
			return ""
		}
		r := results[i]
		return pretty.RenderMap(r.Target, qmap, r.Matches, columns)
	}
}

func flushCode(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}
