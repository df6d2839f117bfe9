// core/cover/report.go
package cover

import (
	"fmt"
	"math"

	"github.com/RPINerd/SimpleCoverage/core/engine"
	"github.com/RPINerd/SimpleCoverage/core/seq"
)

// TargetCoverage is the per-target slice of a coverage run.
type TargetCoverage struct {
	TargetID  string
	Length    int
	Covered   int
	Percent   float64 // Covered/Length, see Percent for rounding
	MeanDepth float64
}

// Result aggregates all targets. Percent is length-weighted: total covered
// bases over total target bases, so short targets cannot skew the figure.
type Result struct {
	Targets []TargetCoverage
	Length  int
	Covered int
	Percent float64
}

// Percent returns 100*covered/length rounded to two decimals,
// half away from zero. Callers must guarantee length > 0.
func Percent(covered, length int) float64 {
	return math.Round(10000*float64(covered)/float64(length)) / 100
}

// Score folds one target's matches into its coverage slice. A zero-length
// target is an input error, never a silent 0% or NaN.
func Score(targetID string, targetLen int, matches []engine.Match) (TargetCoverage, error) {
	if targetLen <= 0 {
		return TargetCoverage{}, fmt.Errorf("%w: %s: zero-length target", seq.ErrInvalidSequence, targetID)
	}
	covered := Covered(Merge(matches))
	return TargetCoverage{
		TargetID:  targetID,
		Length:    targetLen,
		Covered:   covered,
		Percent:   Percent(covered, targetLen),
		MeanDepth: MeanDepth(Depth(targetLen, matches)),
	}, nil
}

// Aggregate combines per-target slices into the overall result.
func Aggregate(targets []TargetCoverage) (Result, error) {
	r := Result{Targets: targets}
	for _, tc := range targets {
		r.Length += tc.Length
		r.Covered += tc.Covered
	}
	if r.Length <= 0 {
		return Result{}, fmt.Errorf("%w: no target bases to aggregate", engine.ErrConfig)
	}
	r.Percent = Percent(r.Covered, r.Length)
	return r, nil
}
