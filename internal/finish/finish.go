// Package finish implements the post-sweep finishing pass (spec §4.6):
// extending and clipping edges the sweep left dangling, assembling each
// site's half-edges into an angle-sorted cell, and closing every cell
// against the bounding box by tracing synthetic boundary edges through
// whichever corners a gap between two consecutive half-edges crosses.
package finish

import (
	"github.com/wesleyclements/voronoi/internal/geometry"
	"github.com/wesleyclements/voronoi/internal/model"
)

// Run completes graph against box, returning the finished diagram. graph's
// edges are mutated in place (their endpoints reassigned to the clipped
// points); edges that clip to nothing are dropped from the result.
func Run(graph *model.Graph, box geometry.Box, epsilon float64) (*model.Diagram, error) {
	live := make([]*model.Edge, 0, len(graph.Edges))
	for _, e := range graph.Edges {
		if clipEdge(e, box, epsilon) {
			live = append(live, e)
		}
	}

	cells := make([]*model.Cell, len(graph.Sites))
	for _, s := range graph.Sites {
		cells[s.ID] = &model.Cell{Site: s}
	}
	for _, e := range live {
		addHalfEdges(cells, e)
	}

	for _, cell := range cells {
		sortHalfEdges(cell)
		if err := closeCell(cell, box, epsilon); err != nil {
			return nil, err
		}
	}

	return &model.Diagram{
		Sites:    graph.Sites,
		Edges:    live,
		Vertices: collectVertices(live),
		Cells:    cells,
	}, nil
}

// clipEdge extends e along the perpendicular bisector of its two sites
// where an endpoint is still missing, then clamps the resulting segment to
// box. It reports whether any part of e survives. Endpoints already inside
// the box keep their original Vertex identity; only endpoints that move
// (extension, or clipping to the box edge) get a fresh Vertex.
func clipEdge(e *model.Edge, box geometry.Box, epsilon float64) bool {
	bisector := geometry.PerpendicularBisector(e.Left.Point, e.Right.Point)
	dirLen := bisector.Direction.Length()
	unit := bisector.Direction.Scale(1 / dirLen)
	far := unit.Scale(2*(box.Width+box.Height) + dirLen)

	var a, b geometry.Point
	switch {
	case e.A != nil && e.B != nil:
		a, b = e.A.Point, e.B.Point
	case e.A != nil:
		a = e.A.Point
		b = a.Add(far)
	case e.B != nil:
		b = e.B.Point
		a = b.Sub(far)
	default:
		a = bisector.Point.Sub(far)
		b = bisector.Point.Add(far)
	}

	clamped, ok := box.Clamp(geometry.Segment{A: a, B: b}, epsilon)
	if !ok {
		return false
	}

	va := e.A
	if va == nil || !clamped.A.Equals(a, epsilon) {
		va = &model.Vertex{Point: clamped.A}
	}
	vb := e.B
	if vb == nil || !clamped.B.Equals(b, epsilon) {
		vb = &model.Vertex{Point: clamped.B}
	}

	// The orientation convention (spec §4.5) fixes Left to the left of the
	// edge's A->B walk; bisector.Direction always points that way (see
	// PerpendicularBisector's construction from Left, Right), but the
	// endpoints above were assigned in whatever order the sweep happened
	// to resolve them, so the walk may need reversing here.
	if vb.Point.Sub(va.Point).DotProduct(bisector.Direction) < 0 {
		va, vb = vb, va
	}

	e.A, e.B = va, vb
	return true
}

// collectVertices returns the deduplicated (by identity) set of endpoints
// referenced by edges, in first-seen order.
func collectVertices(edges []*model.Edge) []*model.Vertex {
	seen := make(map[*model.Vertex]bool, len(edges)*2)
	var out []*model.Vertex
	for _, e := range edges {
		for _, v := range [2]*model.Vertex{e.A, e.B} {
			if v != nil && !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}
