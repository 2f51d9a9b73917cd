package voronoi

// Point is a location in the plane, used both for input sites and for
// Vertex coordinates.
type Point struct {
	X, Y float64
}
