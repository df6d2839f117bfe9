// core/engine/match_test.go
package engine

import "testing"

func TestFindMatchesExact(t *testing.T) {
	tests := []struct {
		target string
		pat    string
		want   []int
	}{
		{"ACGTACGT", "ACGT", []int{0, 4}},
		{"AAAAAA", "AAAA", []int{0, 1, 2}}, // overlapping occurrences
		{"AAAAAAAA", "CCCC", nil},
		{"ACG", "ACGT", nil}, // query longer than target
	}
	for _, tc := range tests {
		got := FindMatches([]byte(tc.target), []byte(tc.pat), 0)
		if len(got) != len(tc.want) {
			t.Errorf("FindMatches(%q,%q): got %d matches, want %d",
				tc.target, tc.pat, len(got), len(tc.want))
			continue
		}
		for i, m := range got {
			if m.Pos != tc.want[i] {
				t.Errorf("FindMatches(%q,%q)[%d].Pos = %d, want %d",
					tc.target, tc.pat, i, m.Pos, tc.want[i])
			}
			if m.Length != len(tc.pat) || m.Mismatches != 0 {
				t.Errorf("unexpected match fields: %+v", m)
			}
		}
	}
}

func TestFindMatchesTolerant(t *testing.T) {
	// ACGA differs from target[0:4] = ACGT by one base.
	got := FindMatches([]byte("ACGTACGT"), []byte("ACGA"), 1)
	found := false
	for _, m := range got {
		if m.Pos == 0 && m.Mismatches == 1 {
			found = true
		}
		if m.Mismatches > 1 {
			t.Errorf("match exceeds budget: %+v", m)
		}
	}
	if !found {
		t.Fatalf("expected a 1-mismatch match at 0, got %+v", got)
	}

	// t=0 must not admit it.
	if got := FindMatches([]byte("ACGTACGT"), []byte("ACGA"), 0); len(got) != 0 {
		t.Errorf("expected no exact matches, got %+v", got)
	}
}

func TestHammingAtBounds(t *testing.T) {
	tgt := []byte("ACGT")
	if _, ok := hammingAt(tgt, []byte("ACGT"), 1, 0); ok {
		t.Error("out-of-bounds window accepted")
	}
	if _, ok := hammingAt(tgt, []byte("ACGT"), -1, 0); ok {
		t.Error("negative start accepted")
	}
	if mm, ok := hammingAt(tgt, []byte("ACTT"), 0, 1); !ok || mm != 1 {
		t.Errorf("hammingAt = (%d,%v), want (1,true)", mm, ok)
	}
}
