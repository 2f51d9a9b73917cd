package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testEpsilon = 1e-9

func TestBoxContains(t *testing.T) {
	b := Box{Width: 1, Height: 1}
	assert.True(t, b.Contains(Point{0.5, 0.5}, testEpsilon))
	assert.True(t, b.Contains(Point{0, 0}, testEpsilon))
	assert.False(t, b.Contains(Point{1.5, 0.5}, testEpsilon))
}

func TestBoxClampFullyInside(t *testing.T) {
	b := Box{Width: 1, Height: 1}
	s := Segment{Point{0.2, 0.2}, Point{0.8, 0.8}}
	clamped, ok := b.Clamp(s, testEpsilon)
	assert.True(t, ok)
	assert.Equal(t, s, clamped)
}

func TestBoxClampCrossingBoundary(t *testing.T) {
	b := Box{Width: 1, Height: 1}
	// Vertical line through the centre, extended far past the box in both
	// directions; should clip to x=0.5 from y=0 to y=1.
	s := Segment{Point{0.5, -10}, Point{0.5, 10}}
	clamped, ok := b.Clamp(s, testEpsilon)
	assert.True(t, ok)
	assert.InDelta(t, 0.5, clamped.A.X, testEpsilon)
	assert.InDelta(t, 0.5, clamped.B.X, testEpsilon)
	assert.InDelta(t, 0, minFloat(clamped.A.Y, clamped.B.Y), testEpsilon)
	assert.InDelta(t, 1, maxFloat(clamped.A.Y, clamped.B.Y), testEpsilon)
}

func TestBoxClampEntirelyOutside(t *testing.T) {
	b := Box{Width: 1, Height: 1}
	s := Segment{Point{2, 2}, Point{3, 3}}
	_, ok := b.Clamp(s, testEpsilon)
	assert.False(t, ok)
}

func TestBoxClampDegenerateResultDropped(t *testing.T) {
	b := Box{Width: 1, Height: 1}
	// Runs up the line x=1 and touches the box only at its corner (1,0).
	s := Segment{Point{1, -1}, Point{1, 0}}
	_, ok := b.Clamp(s, testEpsilon)
	assert.False(t, ok)
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
