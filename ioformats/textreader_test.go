package ioformats

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, writeString(path, content))
	return path
}

func TestReadTextFileParsesHeaderAndElevations(t *testing.T) {
	path := writeFile(t, "2 2 1.5 2.5 0 10\n1 2 3 4\n")

	hm, scale, err := ReadTextFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, hm.Width())
	assert.Equal(t, 2, hm.Height())
	assert.InDelta(t, 1.5, scale.XResolution, 1e-9)
	assert.InDelta(t, 2.5, scale.YResolution, 1e-9)
	assert.InDelta(t, 1, hm.ElevationAt(0, 0), 1e-9)
	assert.InDelta(t, 2, hm.ElevationAt(1, 0), 1e-9)
	assert.InDelta(t, 3, hm.ElevationAt(0, 1), 1e-9)
	assert.InDelta(t, 4, hm.ElevationAt(1, 1), 1e-9)
}

func TestReadTextFileRejectsTooFewTokens(t *testing.T) {
	path := writeFile(t, "2 2 1 1 0")
	_, _, err := ReadTextFile(path)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestReadTextFileRejectsCountMismatch(t *testing.T) {
	path := writeFile(t, "2 2 1 1 0 10\n1 2 3\n")
	_, _, err := ReadTextFile(path)
	assert.ErrorIs(t, err, ErrCountMismatch)
}

func TestReadTextFileRejectsNonNumericElevation(t *testing.T) {
	path := writeFile(t, "2 2 1 1 0 10\n1 2 x 4\n")
	_, _, err := ReadTextFile(path)
	assert.ErrorIs(t, err, ErrSyntax)
}
