// core/seq/seq.go
package seq

import (
	"errors"
	"fmt"
)

// Sequence is a validated nucleotide sequence with its FASTA identifier.
// Queries and targets share this representation; the Seq bytes are treated
// as immutable once loaded.
type Sequence struct {
	ID  string
	Seq []byte
}

// Len returns the number of bases.
func (s Sequence) Len() int { return len(s.Seq) }

// ErrInvalidSequence wraps every sequence-level rejection (empty ID, empty
// sequence, byte outside the A/C/G/T alphabet).
var ErrInvalidSequence = errors.New("invalid sequence")

var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement['T'] = 'A'
}

// IsACGT reports whether b is one of the four standard bases (uppercase).
func IsACGT(b byte) bool {
	return b == 'A' || b == 'C' || b == 'G' || b == 'T'
}

// Normalize uppercases bases and strips ASCII whitespace. It returns a new
// slice and never modifies the input.
func Normalize(raw []byte) []byte {
	out := make([]byte, 0, len(raw))
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		if b >= 'a' && b <= 'z' {
			b -= 'a' - 'A'
		}
		out = append(out, b)
	}
	return out
}

// New builds a Sequence from a raw FASTA record, normalizing the bases.
// Validation is separate so callers can report all inputs, not just the first.
func New(id string, raw []byte) Sequence {
	return Sequence{ID: id, Seq: Normalize(raw)}
}

// Validate enforces the core input invariants: non-empty identifier,
// non-empty sequence, bases restricted to A/C/G/T.
func Validate(s Sequence) error {
	if s.ID == "" {
		return fmt.Errorf("%w: empty identifier", ErrInvalidSequence)
	}
	if len(s.Seq) == 0 {
		return fmt.Errorf("%w: %s: empty sequence", ErrInvalidSequence, s.ID)
	}
	for i, b := range s.Seq {
		if !IsACGT(b) {
			return fmt.Errorf("%w: %s: base %q at position %d (allowed: A C G T)",
				ErrInvalidSequence, s.ID, b, i+1)
		}
	}
	return nil
}

// ValidateAll validates every sequence in list; role ("query"/"target") is
// prefixed onto the first error for context.
func ValidateAll(list []Sequence, role string) error {
	for _, s := range list {
		if err := Validate(s); err != nil {
			return fmt.Errorf("%s: %w", role, err)
		}
	}
	return nil
}

// RevComp returns the reverse complement of an A/C/G/T sequence.
func RevComp(s []byte) []byte {
	n := len(s)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = complement[s[n-1-i]]
	}
	return out
}
