package engine

import (
	"math"

	"github.com/wesleyclements/voronoi/internal/geometry"
	"github.com/wesleyclements/voronoi/numeric"
)

// breakpointX returns the x coordinate where the parabolic arcs traced by
// left and right (foci at their site positions) meet at the current
// sweepY, per spec §4.2: solved from the directrix equation as a quadratic
// in x, except when either focus sits on the directrix (within epsilon),
// where the arc has zero height, or when both foci share the same y (within
// epsilon), where the two parabolas are congruent and cross only once. In
// both of those cases the breakpoint is the midpoint of the two foci.
func breakpointX(left, right geometry.Point, sweepY, epsilon float64) float64 {
	if numeric.FloatEquals(left.Y, sweepY, epsilon) || numeric.FloatEquals(right.Y, sweepY, epsilon) ||
		numeric.FloatEquals(left.Y, right.Y, epsilon) {
		return (left.X + right.X) / 2
	}

	dpL := 2 * (left.Y - sweepY)
	a1 := 1 / dpL
	b1 := -2 * left.X / dpL
	c1 := sweepY + dpL/4 + left.X*left.X/dpL

	dpR := 2 * (right.Y - sweepY)
	a2 := 1 / dpR
	b2 := -2 * right.X / dpR
	c2 := sweepY + dpR/4 + right.X*right.X/dpR

	a := a1 - a2
	b := b1 - b2
	c := c1 - c2

	disc := b*b - 4*a*c
	if disc < 0 {
		disc = 0
	}
	sqrtDisc := math.Sqrt(disc)
	x1 := (-b + sqrtDisc) / (2 * a)
	x2 := (-b - sqrtDisc) / (2 * a)

	if left.Y < right.Y {
		return math.Max(x1, x2)
	}
	return math.Min(x1, x2)
}
