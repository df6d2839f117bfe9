// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	d, err := load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 0, d.Mismatches)
	assert.Equal(t, 0, d.Threads)
	assert.Equal(t, "text", d.Output)
	assert.Equal(t, 80, d.Columns)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "mismatches: 2\noutput: json\ncolumns: 60\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scov.yaml"), []byte(yaml), 0o644))

	d, err := load(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Mismatches)
	assert.Equal(t, "json", d.Output)
	assert.Equal(t, 60, d.Columns)
	assert.Equal(t, 0, d.Threads) // untouched default
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scov.yaml"), []byte("mismatches: [oops\n"), 0o644))

	_, err := load(dir)
	assert.Error(t, err)
}
