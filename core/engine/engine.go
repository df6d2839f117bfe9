// core/engine/engine.go
package engine

import (
	"errors"
	"fmt"
	"sort"

	"github.com/RPINerd/SimpleCoverage/core/seq"
)

// Config holds the matching parameters.
type Config struct {
	MaxMismatches int  // Hamming budget per query; 0 = exact matching
	Revcomp       bool // also scan reverse complements of the queries
}

// ErrConfig wraps every configuration rejection (negative tolerance, empty
// collections, tolerance no query can survive).
var ErrConfig = errors.New("configuration error")

// pattern is one scan unit: a query on a given strand.
type pattern struct {
	queryIdx int
	strand   byte // '+' or '-'
	pat      []byte
}

// Scanner finds all occurrences of a fixed query set within targets.
// The automaton is built once at construction; Scan holds no mutable state,
// so a single Scanner may be shared across worker goroutines.
type Scanner struct {
	cfg      Config
	queries  []seq.Sequence
	patterns []pattern
	seeds    []seed
	nodes    []acNode
	trivial  []int // pattern indices with len(pat) <= MaxMismatches
}

// NewScanner validates cfg and queries and builds the seed automaton.
func NewScanner(cfg Config, queries []seq.Sequence) (*Scanner, error) {
	if cfg.MaxMismatches < 0 {
		return nil, fmt.Errorf("%w: negative mismatch tolerance %d", ErrConfig, cfg.MaxMismatches)
	}
	if len(queries) == 0 {
		return nil, fmt.Errorf("%w: no query sequences", ErrConfig)
	}
	if err := seq.ValidateAll(queries, "query"); err != nil {
		return nil, err
	}
	if cfg.MaxMismatches > 0 {
		all := true
		for _, q := range queries {
			if q.Len() > cfg.MaxMismatches {
				all = false
				break
			}
		}
		if all {
			return nil, fmt.Errorf("%w: mismatch tolerance %d is at or above every query length",
				ErrConfig, cfg.MaxMismatches)
		}
	}

	s := &Scanner{cfg: cfg, queries: queries}
	for qi, q := range queries {
		s.patterns = append(s.patterns, pattern{queryIdx: qi, strand: '+', pat: q.Seq})
		if cfg.Revcomp {
			s.patterns = append(s.patterns, pattern{queryIdx: qi, strand: '-', pat: seq.RevComp(q.Seq)})
		}
	}

	pats := make([][]byte, len(s.patterns))
	for i, p := range s.patterns {
		pats[i] = p.pat
	}
	s.seeds = buildSeeds(pats, cfg.MaxMismatches+1)
	s.nodes = buildAC(s.seeds)
	for i, p := range s.patterns {
		if len(p.pat) <= cfg.MaxMismatches {
			s.trivial = append(s.trivial, i)
		}
	}
	return s, nil
}

// Scan returns every match of every query within target, all overlapping
// occurrences included, sorted by (Pos, End, QueryID, Strand) for
// reproducibility.
func (s *Scanner) Scan(target seq.Sequence) ([]Match, error) {
	if err := seq.Validate(target); err != nil {
		return nil, fmt.Errorf("target: %w", err)
	}

	type cand struct{ pi, start int }
	seen := make(map[cand]struct{})
	var out []Match

	hits := scanAC(target.Seq, s.nodes, s.seeds)
	for _, h := range hits {
		sd := s.seeds[h.SeedIdx]
		start := h.Pos - sd.offset
		key := cand{pi: sd.patIdx, start: start}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		p := s.patterns[sd.patIdx]
		if mm, ok := hammingAt(target.Seq, p.pat, start, s.cfg.MaxMismatches); ok {
			out = append(out, s.match(target.ID, p, start, mm))
		}
	}

	// Patterns too short to seed: every placement is within budget.
	for _, pi := range s.trivial {
		p := s.patterns[pi]
		for start := 0; start+len(p.pat) <= target.Len(); start++ {
			mm, _ := hammingAt(target.Seq, p.pat, start, s.cfg.MaxMismatches)
			out = append(out, s.match(target.ID, p, start, mm))
		}
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Pos != b.Pos {
			return a.Pos < b.Pos
		}
		if a.End() != b.End() {
			return a.End() < b.End()
		}
		if a.QueryID != b.QueryID {
			return a.QueryID < b.QueryID
		}
		return a.Strand < b.Strand
	})
	return out, nil
}

func (s *Scanner) match(targetID string, p pattern, start, mm int) Match {
	return Match{
		QueryID:    s.queries[p.queryIdx].ID,
		TargetID:   targetID,
		Pos:        start,
		Length:     len(p.pat),
		Mismatches: mm,
		Strand:     p.strand,
	}
}
