// core/cover/interval.go
package cover

import (
	"sort"

	"github.com/RPINerd/SimpleCoverage/core/engine"
)

// Interval is a half-open [Start, End) range of covered target positions.
type Interval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Merge converts matches on one target into the minimal set of disjoint,
// maximal intervals whose union equals the union of all match spans.
// Intervals are sorted by start (ties by end); touching intervals merge,
// since coverage is defined over the union. The input slice is not modified.
func Merge(matches []engine.Match) []Interval {
	if len(matches) == 0 {
		return nil
	}
	ivs := make([]Interval, len(matches))
	for i, m := range matches {
		ivs[i] = Interval{Start: m.Pos, End: m.End()}
	}
	sort.Slice(ivs, func(i, j int) bool {
		if ivs[i].Start != ivs[j].Start {
			return ivs[i].Start < ivs[j].Start
		}
		return ivs[i].End < ivs[j].End
	})

	out := ivs[:1]
	for _, iv := range ivs[1:] {
		last := &out[len(out)-1]
		if iv.Start <= last.End {
			if iv.End > last.End {
				last.End = iv.End
			}
			continue
		}
		out = append(out, iv)
	}
	return out
}

// Covered sums interval lengths. On Merge output this is the covered base
// count without double-counting overlaps.
func Covered(ivs []Interval) int {
	n := 0
	for _, iv := range ivs {
		n += iv.End - iv.Start
	}
	return n
}

// Depth counts, per target position, how many matches span it.
func Depth(targetLen int, matches []engine.Match) []int {
	d := make([]int, targetLen)
	for _, m := range matches {
		end := m.End()
		if end > targetLen {
			end = targetLen
		}
		for i := m.Pos; i < end; i++ {
			d[i]++
		}
	}
	return d
}

// MeanDepth is the average per-position match depth.
func MeanDepth(depth []int) float64 {
	if len(depth) == 0 {
		return 0
	}
	sum := 0
	for _, d := range depth {
		sum += d
	}
	return float64(sum) / float64(len(depth))
}
