package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLessOrdersByHeightThenXThenY(t *testing.T) {
	a := Point{X: 5, Y: 5, H: 1}
	b := Point{X: 0, Y: 0, H: 2}
	assert.True(t, Less(a, b))
	assert.False(t, Less(b, a))

	c := Point{X: 1, Y: 9, H: 1}
	d := Point{X: 2, Y: 0, H: 1}
	assert.True(t, Less(c, d))
}

func TestLessBreaksHeightTiesByXThenY(t *testing.T) {
	a := Point{X: 1, Y: 1, H: 3}
	b := Point{X: 1, Y: 2, H: 3}
	assert.True(t, Less(a, b))
	assert.False(t, Less(b, a))
}

func TestLessTreatsNaNAsPositiveInfinity(t *testing.T) {
	nodata := Point{X: 0, Y: 0, H: math.NaN()}
	finite := Point{X: 100, Y: 100, H: 1e9}
	assert.True(t, Less(finite, nodata))
	assert.False(t, Less(nodata, finite))
}

func TestNoTwoDistinctPointsCompareEqual(t *testing.T) {
	a := Point{X: 1, Y: 1, H: 5}
	b := Point{X: 1, Y: 1, H: 5}
	assert.False(t, Less(a, b))
	assert.False(t, Less(b, a))

	c := Point{X: 2, Y: 1, H: 5}
	assert.NotEqual(t, Less(a, c), Less(c, a))
}

func TestMidpointBetweenRoundsTowardNegativeInfinity(t *testing.T) {
	assert.Equal(t, Coordinate{X: -2, Y: 2}, MidpointBetween(Coordinate{X: -3, Y: 3}, Coordinate{X: 0, Y: 2}))
	assert.Equal(t, Coordinate{X: 2, Y: 2}, MidpointBetween(Coordinate{X: 1, Y: 1}, Coordinate{X: 3, Y: 3}))
}

func TestSamePositionIgnoresHeight(t *testing.T) {
	a := Point{X: 4, Y: 4, H: 1}
	b := Point{X: 4, Y: 4, H: 99}
	assert.True(t, a.SamePosition(b))
}
