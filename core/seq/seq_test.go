// core/seq/seq_test.go
package seq

import (
	"bytes"
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"acgt", "ACGT"},
		{"AC GT", "ACGT"},
		{"ac\tgt\n", "ACGT"},
		{"ACGT", "ACGT"},
	}
	for _, tc := range tests {
		got := Normalize([]byte(tc.in))
		if string(got) != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		s    Sequence
		ok   bool
	}{
		{"good", New("q1", []byte("ACGT")), true},
		{"lowercase normalized", New("q2", []byte("acgt")), true},
		{"ambiguity code", New("q3", []byte("ACGN")), false},
		{"gap char", New("q4", []byte("AC-T")), false},
		{"empty sequence", New("q5", nil), false},
		{"empty id", New("", []byte("ACGT")), false},
	}
	for _, tc := range tests {
		err := Validate(tc.s)
		if tc.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
		if !tc.ok {
			if err == nil {
				t.Errorf("%s: expected error", tc.name)
			} else if !errors.Is(err, ErrInvalidSequence) {
				t.Errorf("%s: error %v does not wrap ErrInvalidSequence", tc.name, err)
			}
		}
	}
}

func TestValidateAllRole(t *testing.T) {
	list := []Sequence{New("ok", []byte("ACGT")), New("bad", []byte("ACGTN"))}
	err := ValidateAll(list, "query")
	if err == nil {
		t.Fatal("expected error for N base")
	}
	if !errors.Is(err, ErrInvalidSequence) {
		t.Errorf("error %v does not wrap ErrInvalidSequence", err)
	}
}

func TestRevComp(t *testing.T) {
	got := RevComp([]byte("ACGT"))
	if string(got) != "ACGT" { // ACGT is its own reverse complement
		t.Errorf("RevComp(ACGT) = %q", got)
	}
	got = RevComp([]byte("AACG"))
	if string(got) != "CGTT" {
		t.Errorf("RevComp(AACG) = %q, want CGTT", got)
	}
	if RevComp(nil) != nil {
		t.Error("RevComp(nil) should be nil")
	}
	// round trip
	in := []byte("GATTACA")
	if !bytes.Equal(RevComp(RevComp(in)), in) {
		t.Error("double RevComp is not identity")
	}
}
