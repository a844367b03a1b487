package ioformats

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEsriFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grid.asc")
	require.NoError(t, writeString(path, content))
	return path
}

func TestReadEsriGridParsesHeaderAndRows(t *testing.T) {
	path := writeEsriFile(t, "ncols 2\nnrows 2\nxllcorner 0\nyllcorner 0\ncellsize 5\nNODATA_value -9999\n1 2\n3 4\n")

	hm, scale, err := ReadEsriGrid(path)
	require.NoError(t, err)
	assert.Equal(t, 2, hm.Width())
	assert.Equal(t, 2, hm.Height())
	assert.InDelta(t, 5, scale.XResolution, 1e-9)
	assert.InDelta(t, 1, hm.ElevationAt(0, 0), 1e-9)
	assert.InDelta(t, 2, hm.ElevationAt(1, 0), 1e-9)
	assert.InDelta(t, 3, hm.ElevationAt(0, 1), 1e-9)
	assert.InDelta(t, 4, hm.ElevationAt(1, 1), 1e-9)
}

func TestReadEsriGridMarksNodataAsNaN(t *testing.T) {
	path := writeEsriFile(t, "ncols 2\nnrows 1\ncellsize 1\nnodata_value -9999\n1 -9999\n")

	hm, _, err := ReadEsriGrid(path)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(hm.ElevationAt(1, 0)))
	assert.InDelta(t, 1, hm.ElevationAt(0, 0), 1e-9)
}

func TestReadEsriGridAcceptsCommaDecimalFallback(t *testing.T) {
	path := writeEsriFile(t, "ncols 1\nnrows 1\ncellsize 1,5\nnodata_value -9999\n2,5\n")

	hm, scale, err := ReadEsriGrid(path)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, scale.XResolution, 1e-9)
	assert.InDelta(t, 2.5, hm.ElevationAt(0, 0), 1e-9)
}

func TestReadEsriGridRejectsMissingHeaderKey(t *testing.T) {
	path := writeEsriFile(t, "ncols 1\nnrows 1\ncellsize 1\n1\n")
	_, _, err := ReadEsriGrid(path)
	assert.ErrorIs(t, err, ErrMissingHeaderKey)
}
