// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"github.com/RPINerd/SimpleCoverage/core/cover"
	"github.com/RPINerd/SimpleCoverage/core/engine"
	"github.com/RPINerd/SimpleCoverage/core/seq"
)

// Config controls the scanning pipeline.
type Config struct {
	Threads     int  // number of worker goroutines (>=1)
	KeepMatches bool // retain per-target matches (needed for coverage maps)
}

// TargetResult pairs one target with its coverage slice. Matches is nil
// unless Config.KeepMatches was set.
type TargetResult struct {
	Target   seq.Sequence
	Coverage cover.TargetCoverage
	Matches  []engine.Match
}

// Run scans every target with the shared Scanner and scores its coverage,
// fanning targets out across cfg.Threads workers. The Scanner is read-only
// after construction and each worker writes only its own result slot, so no
// locking is needed beyond the job channel. Results come back in input
// order. The first error (including context cancellation) aborts the run.
func Run(ctx context.Context, cfg Config, sc *engine.Scanner, targets []seq.Sequence) ([]TargetResult, error) {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]TargetResult, len(targets))
	jobs := make(chan int)

	var (
		wg      sync.WaitGroup
		errOnce sync.Once
		runErr  error
	)
	fail := func(err error) {
		errOnce.Do(func() {
			runErr = err
			cancel()
		})
	}

	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for idx := range jobs {
				t := targets[idx]
				matches, err := sc.Scan(t)
				if err != nil {
					fail(err)
					return
				}
				tc, err := cover.Score(t.ID, t.Len(), matches)
				if err != nil {
					fail(err)
					return
				}
				res := TargetResult{Target: t, Coverage: tc}
				if cfg.KeepMatches {
					res.Matches = matches
				}
				results[idx] = res
			}
		}()
	}

feed:
	for i := range targets {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if runErr != nil {
		return nil, runErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
