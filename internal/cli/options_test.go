// internal/cli/options_test.go
package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RPINerd/SimpleCoverage/internal/config"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("scov")
	return ParseArgs(fs, argv, config.Defaults{Output: "text", Columns: 80})
}

func TestParseMinimal(t *testing.T) {
	opt, err := parse(t, "-i", "q.fa", "-t", "t.fa")
	require.NoError(t, err)
	assert.Equal(t, "q.fa", opt.QueryFile)
	assert.Equal(t, []string{"t.fa"}, opt.TargetFiles)
	assert.Equal(t, 0, opt.Mismatches)
	assert.Equal(t, "text", opt.Output)
	assert.True(t, opt.Header)
}

func TestParseRepeatableTargetsAndPositionals(t *testing.T) {
	opt, err := parse(t, "-i", "q.fa", "-t", "a.fa", "-t", "b.fa", "c.fa")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.fa", "b.fa", "c.fa"}, opt.TargetFiles)
}

func TestParseFlags(t *testing.T) {
	opt, err := parse(t, "-i", "q.fa", "-t", "t.fa",
		"-m", "2", "--revcomp", "--threads", "4", "-o", "json",
		"--pretty", "--columns", "60", "--sort", "--no-header", "-q")
	require.NoError(t, err)
	assert.Equal(t, 2, opt.Mismatches)
	assert.True(t, opt.Revcomp)
	assert.Equal(t, 4, opt.Threads)
	assert.Equal(t, "json", opt.Output)
	assert.True(t, opt.Pretty)
	assert.Equal(t, 60, opt.Columns)
	assert.True(t, opt.Sort)
	assert.False(t, opt.Header)
	assert.True(t, opt.Quiet)
}

func TestParseDefaultsFromConfig(t *testing.T) {
	fs := NewFlagSet("scov")
	opt, err := ParseArgs(fs, []string{"-i", "q.fa", "-t", "t.fa"},
		config.Defaults{Mismatches: 3, Threads: 2, Output: "jsonl", Columns: 40})
	require.NoError(t, err)
	assert.Equal(t, 3, opt.Mismatches)
	assert.Equal(t, 2, opt.Threads)
	assert.Equal(t, "jsonl", opt.Output)
	assert.Equal(t, 40, opt.Columns)
}

func TestParseErrors(t *testing.T) {
	cases := map[string][]string{
		"missing input":      {"-t", "t.fa"},
		"missing targets":    {"-i", "q.fa"},
		"negative mismatch":  {"-i", "q.fa", "-t", "t.fa", "-m", "-1"},
		"negative threads":   {"-i", "q.fa", "-t", "t.fa", "--threads", "-2"},
		"bad output":         {"-i", "q.fa", "-t", "t.fa", "-o", "xml"},
		"columns under one":  {"-i", "q.fa", "-t", "t.fa", "--columns", "0"},
	}
	for name, argv := range cases {
		_, err := parse(t, argv...)
		assert.Error(t, err, name)
	}
}

func TestParseErrorMessagesAreASCII(t *testing.T) {
	_, err := parse(t, "-i", "q.fa", "-t", "t.fa", "-m", "-1")
	require.EqualError(t, err, "--mismatches must be >= 0")
}

func TestParseVersionShortCircuits(t *testing.T) {
	opt, err := parse(t, "--version")
	require.NoError(t, err)
	assert.True(t, opt.Version)
}
