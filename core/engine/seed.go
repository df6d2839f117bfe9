// core/engine/seed.go
package engine

// A seed is one exact piece of a scan pattern. Patterns are partitioned into
// maxMM+1 contiguous seeds: a window within Hamming distance maxMM of the
// pattern must contain at least one seed exactly, so verifying the full
// pattern at every seed-implied start offset finds every match.
type seed struct {
	patIdx int    // which scan pattern the seed came from
	offset int    // start of the seed within the pattern
	pat    []byte
}

// buildSeeds partitions each pattern into pieces seeds, as evenly as the
// pattern length allows. Patterns shorter than pieces get no seeds; callers
// handle those windows directly (every placement is within budget anyway).
func buildSeeds(patterns [][]byte, pieces int) []seed {
	if pieces < 1 {
		pieces = 1
	}
	seeds := make([]seed, 0, pieces*len(patterns))
	for pi, pat := range patterns {
		n := len(pat)
		if n < pieces {
			continue
		}
		base := n / pieces
		extra := n % pieces
		off := 0
		for k := 0; k < pieces; k++ {
			l := base
			if k < extra {
				l++
			}
			seeds = append(seeds, seed{patIdx: pi, offset: off, pat: pat[off : off+l]})
			off += l
		}
	}
	return seeds
}
