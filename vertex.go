package voronoi

// Vertex is a point produced by the algorithm: a circle-event centre or a
// point where a dangling edge was clipped to the bounding box. Vertices
// are compared by reference — two vertices at the same coordinates are
// still distinct values unless they are literally the same edge endpoint.
type Vertex struct {
	Point Point
}
