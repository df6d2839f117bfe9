// core/engine/match.go
package engine

import "bytes"

// Match is one located occurrence of a query within a target.
// Pos/Length are target coordinates ([Pos, Pos+Length) half-open);
// Strand is '+' for the query as given, '-' for its reverse complement.
type Match struct {
	QueryID    string
	TargetID   string
	Pos        int
	Length     int
	Mismatches int
	Strand     byte
}

// End returns the exclusive end coordinate of the match on the target.
func (m Match) End() int { return m.Pos + m.Length }

// FindMatches reports every window of target within Hamming distance maxMM
// of pat, including overlapping occurrences. Only Pos/Length/Mismatches are
// filled; the caller attaches identifiers and strand.
func FindMatches(target, pat []byte, maxMM int) []Match {
	pl := len(pat)
	if pl == 0 || len(target) < pl {
		return nil
	}

	// Exact-match fast path: bytes.Index jump scanning.
	if maxMM <= 0 {
		out := make([]Match, 0, 8)
		for i := 0; ; {
			j := bytes.Index(target[i:], pat)
			if j < 0 {
				break
			}
			pos := i + j
			out = append(out, Match{Pos: pos, Length: pl})
			i = pos + 1
		}
		return out
	}

	end := len(target) - pl
	out := make([]Match, 0, 8)
window:
	for pos := 0; pos <= end; pos++ {
		mm := 0
		for j := 0; j < pl; j++ {
			if target[pos+j] != pat[j] {
				mm++
				if mm > maxMM {
					continue window
				}
			}
		}
		out = append(out, Match{Pos: pos, Length: pl, Mismatches: mm})
	}
	return out
}

// hammingAt re-checks pat against target[start:] with a mismatch budget.
// Used to verify candidate starts implied by seed hits.
func hammingAt(target, pat []byte, start, maxMM int) (int, bool) {
	n := len(pat)
	if start < 0 || start+n > len(target) {
		return 0, false
	}
	mm := 0
	for j := 0; j < n; j++ {
		if target[start+j] != pat[j] {
			mm++
			if mm > maxMM {
				return 0, false
			}
		}
	}
	return mm, true
}
