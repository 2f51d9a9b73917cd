package voronoi

// Site is one input point together with its position in the input slice
// passed to [Compute]; Diagram.Cells is indexed the same way.
type Site struct {
	ID    int
	Point Point
}
