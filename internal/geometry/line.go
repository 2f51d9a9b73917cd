package geometry

import "math"

// Line is a parametric line through Point plus t*Direction, for all real t.
type Line struct {
	Point     Point
	Direction Point
}

// PerpendicularBisector returns the line equidistant from a and b: it
// passes through their midpoint, perpendicular to the segment ab.
func PerpendicularBisector(a, b Point) Line {
	mid := a.Midpoint(b)
	d := b.Sub(a)
	return Line{Point: mid, Direction: Point{-d.Y, d.X}}
}

// Intersect returns the point where l and other cross, or false if they are
// parallel (within epsilon).
func (l Line) Intersect(other Line, epsilon float64) (Point, bool) {
	denom := l.Direction.CrossProduct(other.Direction)
	if math.Abs(denom) <= epsilon {
		return Point{}, false
	}
	diff := other.Point.Sub(l.Point)
	t := diff.CrossProduct(other.Direction) / denom
	return Point{l.Point.X + t*l.Direction.X, l.Point.Y + t*l.Direction.Y}, true
}

// Circumcenter returns the centre of the circle through a, b, and c, or
// false if the three points are collinear (within epsilon), in which case
// no finite circumcenter exists.
func Circumcenter(a, b, c Point, epsilon float64) (Point, bool) {
	bisectorAB := PerpendicularBisector(a, b)
	bisectorBC := PerpendicularBisector(b, c)
	return bisectorAB.Intersect(bisectorBC, epsilon)
}
