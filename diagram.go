package voronoi

import "time"

// Diagram is the result of [Compute]: the finished edges and cells of a
// Voronoi subdivision, plus the deduplicated vertices they reference.
type Diagram struct {
	Edges    []*Edge
	Cells    []*Cell
	Vertices []*Vertex
	ExecTime time.Duration
}
