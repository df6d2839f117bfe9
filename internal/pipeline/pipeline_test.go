// internal/pipeline/pipeline_test.go
package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RPINerd/SimpleCoverage/core/engine"
	"github.com/RPINerd/SimpleCoverage/core/seq"
)

func scanner(t *testing.T, queries ...string) *engine.Scanner {
	t.Helper()
	var qs []seq.Sequence
	for i, q := range queries {
		qs = append(qs, seq.New("q"+string(rune('1'+i)), []byte(q)))
	}
	sc, err := engine.NewScanner(engine.Config{}, qs)
	require.NoError(t, err)
	return sc
}

func TestRunOrderedResults(t *testing.T) {
	sc := scanner(t, "ACGT")
	targets := []seq.Sequence{
		seq.New("t1", []byte("ACGTACGT")), // fully covered
		seq.New("t2", []byte("AAAAAAAA")), // no matches
		seq.New("t3", []byte("TTACGTTT")), // partially covered
	}

	res, err := Run(context.Background(), Config{Threads: 2}, sc, targets)
	require.NoError(t, err)
	require.Len(t, res, 3)

	assert.Equal(t, "t1", res[0].Coverage.TargetID)
	assert.Equal(t, 100.00, res[0].Coverage.Percent)
	assert.Equal(t, "t2", res[1].Coverage.TargetID)
	assert.Equal(t, 0, res[1].Coverage.Covered)
	assert.Equal(t, "t3", res[2].Coverage.TargetID)
	assert.Equal(t, 4, res[2].Coverage.Covered)

	// matches dropped unless requested
	assert.Nil(t, res[0].Matches)
}

func TestRunKeepMatches(t *testing.T) {
	sc := scanner(t, "ACGT")
	targets := []seq.Sequence{seq.New("t1", []byte("ACGTACGT"))}

	res, err := Run(context.Background(), Config{Threads: 1, KeepMatches: true}, sc, targets)
	require.NoError(t, err)
	require.Len(t, res[0].Matches, 2)
}

func TestRunPropagatesScanError(t *testing.T) {
	sc := scanner(t, "ACGT")
	targets := []seq.Sequence{
		seq.New("good", []byte("ACGT")),
		seq.New("bad", []byte("ACGTN")),
	}

	_, err := Run(context.Background(), Config{Threads: 2}, sc, targets)
	require.Error(t, err)
	assert.ErrorIs(t, err, seq.ErrInvalidSequence)
}

func TestRunCancelled(t *testing.T) {
	sc := scanner(t, "ACGT")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Config{Threads: 2}, sc, []seq.Sequence{seq.New("t1", []byte("ACGT"))})
	assert.ErrorIs(t, err, context.Canceled)
}
