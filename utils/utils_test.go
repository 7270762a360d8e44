package utils

import (
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDegRad(t *testing.T) {
	assert.InDelta(t, 180, Deg(math.Pi), 1e-9)
	assert.InDelta(t, math.Pi/2, Rad(90), 1e-9)
}

func TestRound(t *testing.T) {
	assert.Equal(t, 1.23, Round(1.2349, 2))
	assert.Equal(t, -1.24, Round(-1.2351, 2))

	r := Round(-0.00001, 4)
	assert.Equal(t, 0.0, r)
	assert.False(t, math.Signbit(r))
}

func TestNormalizeDeg(t *testing.T) {
	examples := []struct {
		in  float64
		out float64
	}{
		{0, 0},
		{90, 90},
		{360, 0},
		{-90, 270},
		{450, 90},
		{-720, 0},
	}

	for _, ex := range examples {
		assert.InDelta(t, ex.out, NormalizeDeg(ex.in), 1e-9, "%v", ex.in)
	}
}

func dirNames(t *testing.T, dir string) []string {
	t.Helper()

	ents, err := os.ReadDir(dir)
	require.NoError(t, err)

	out := []string{}
	for _, e := range ents {
		out = append(out, e.Name())
	}

	return out
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(fn, []byte("old"), 0644))
	require.NoError(t, WriteFileAtomic(fn, []byte("new")))

	data, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
	assert.Equal(t, []string{"out.txt"}, dirNames(t, dir))

	err = WriteFileAtomic(filepath.Join(t.TempDir(), "missing", "out.txt"), []byte("x"))
	assert.Error(t, err)
}

func TestWriteAtomicFailure(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(fn, []byte("old"), 0644))

	boom := errors.New("boom")
	err := WriteAtomic(fn, func(w io.Writer) error {
		io.WriteString(w, "half")
		return boom
	})
	assert.ErrorIs(t, err, boom)

	data, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))
	assert.Equal(t, []string{"out.txt"}, dirNames(t, dir))
}
