package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPerpendicularBisectorPassesThroughMidpoint(t *testing.T) {
	a := Point{0, 0}
	b := Point{4, 0}
	l := PerpendicularBisector(a, b)
	assert.Equal(t, Point{2, 0}, l.Point)
	assert.Equal(t, 0.0, l.Direction.X)
}

func TestLineIntersect(t *testing.T) {
	horizontal := Line{Point: Point{0, 1}, Direction: Point{1, 0}}
	vertical := Line{Point: Point{1, 0}, Direction: Point{0, 1}}
	p, ok := horizontal.Intersect(vertical, testEpsilon)
	assert.True(t, ok)
	assert.Equal(t, Point{1, 1}, p)
}

func TestLineIntersectParallel(t *testing.T) {
	l1 := Line{Point: Point{0, 0}, Direction: Point{1, 0}}
	l2 := Line{Point: Point{0, 1}, Direction: Point{1, 0}}
	_, ok := l1.Intersect(l2, testEpsilon)
	assert.False(t, ok)
}

func TestCircumcenterEquilateralTriangle(t *testing.T) {
	a := Point{0.5, 0.8}
	b := Point{0.1, 0.2}
	c := Point{0.9, 0.2}
	centre, ok := Circumcenter(a, b, c, testEpsilon)
	assert.True(t, ok)
	assert.InDelta(t, centre.DistanceTo(a), centre.DistanceTo(b), 1e-9)
	assert.InDelta(t, centre.DistanceTo(b), centre.DistanceTo(c), 1e-9)
}

func TestCircumcenterCollinearPoints(t *testing.T) {
	a := Point{0, 0}
	b := Point{1, 0}
	c := Point{2, 0}
	_, ok := Circumcenter(a, b, c, testEpsilon)
	assert.False(t, ok)
}
