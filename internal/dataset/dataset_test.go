package dataset

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []float64
	}{
		{"flow sequence", "[500, 500, 500, 500]", []float64{500, 500, 500, 500}},
		{"block sequence", "- 0.1\n- 0.2\n", []float64{0.1, 0.2}},
		{"data mapping", "data:\n  - 12.5\n  - 40\n", []float64{12.5, 40}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "[]", "data: []", "other: [1]"} {
		_, err := Parse([]byte(in))
		assert.ErrorIs(t, err, ErrNoValues, in)
	}

	_, err := Parse([]byte("42"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoValues)

	_, err = Parse([]byte("[1, two]"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "values.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data: [1, 2, 3]\n"), 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, got)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	_, err = Load(empty)
	assert.ErrorIs(t, err, ErrNoValues)
	assert.Contains(t, err.Error(), "empty.yaml")

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for range 100 {
		values := Random(rng)
		require.GreaterOrEqual(t, len(values), 2)
		require.LessOrEqual(t, len(values), 6)
		for _, v := range values {
			assert.GreaterOrEqual(t, v, 1.0)
			assert.LessOrEqual(t, v, 1000.0)
		}
	}
}
