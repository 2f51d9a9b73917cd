// Package geometry provides the minimal 2D primitives the sweepline engine
// and finishing pass share: points, an axis-aligned box with segment
// clipping, and the perpendicular-bisector line used to locate circle-event
// centres and edge directions. Containment, parallelism, equality, and
// degeneracy tests take an epsilon; Box.Clamp's check for a segment
// parallel to a slab (a zero direction component) is exact.
package geometry

import "math"

// Point is a location in the plane. Sites, vertices, and breakpoints are all
// represented as Points; nothing in this package distinguishes them.
type Point struct {
	X, Y float64
}

// Add returns the sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p minus q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns p scaled by factor.
func (p Point) Scale(factor float64) Point {
	return Point{p.X * factor, p.Y * factor}
}

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point {
	return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2}
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return math.Sqrt(p.DistanceSquaredTo(q))
}

// DistanceSquaredTo returns the squared Euclidean distance between p and q,
// avoiding the square root when only comparisons are needed.
func (p Point) DistanceSquaredTo(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// CrossProduct returns the cross product of the vectors from the origin to
// p and q. Its sign indicates the turn from p to q: positive for
// counterclockwise, negative for clockwise, zero for collinear.
func (p Point) CrossProduct(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// DotProduct returns the dot product of the vectors from the origin to p
// and q. Used by the finishing pass to test whether a vector points with
// or against a reference direction.
func (p Point) DotProduct(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Length returns the Euclidean norm of p, treated as a vector from the
// origin.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Equals reports whether p and q are the same point within epsilon.
func (p Point) Equals(q Point, epsilon float64) bool {
	return math.Abs(p.X-q.X) <= epsilon && math.Abs(p.Y-q.Y) <= epsilon
}
