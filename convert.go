package voronoi

import (
	"time"

	"github.com/wesleyclements/voronoi/internal/model"
)

// newDiagram converts the internal, pointer-graph Diagram the finishing
// pass produced into this package's own public types, preserving vertex
// and site identity (same internal pointer -> same public pointer) so
// cell polygons and edge endpoints stay consistent with each other.
func newDiagram(d *model.Diagram, execTime time.Duration) *Diagram {
	sites := make(map[*model.Site]*Site, len(d.Sites))
	for _, s := range d.Sites {
		sites[s] = &Site{ID: s.ID, Point: Point{X: s.Point.X, Y: s.Point.Y}}
	}

	vertices := make(map[*model.Vertex]*Vertex)
	vertex := func(v *model.Vertex) *Vertex {
		if v == nil {
			return nil
		}
		if existing, ok := vertices[v]; ok {
			return existing
		}
		nv := &Vertex{Point: Point{X: v.Point.X, Y: v.Point.Y}}
		vertices[v] = nv
		return nv
	}

	edges := make(map[*model.Edge]*Edge, len(d.Edges))
	outEdges := make([]*Edge, len(d.Edges))
	for i, e := range d.Edges {
		oe := &Edge{
			Left:  sites[e.Left],
			Right: sites[e.Right],
			A:     vertex(e.A),
			B:     vertex(e.B),
		}
		edges[e] = oe
		outEdges[i] = oe
	}

	outCells := make([]*Cell, len(d.Cells))
	for i, c := range d.Cells {
		halfEdges := make([]*CellEdge, len(c.HalfEdges))
		for j, he := range c.HalfEdges {
			halfEdges[j] = &CellEdge{
				Edge:  edges[he.Edge],
				Start: vertex(he.Start),
				End:   vertex(he.End),
				Angle: he.Angle,
			}
		}
		outCells[i] = &Cell{
			Site:      sites[c.Site],
			HalfEdges: halfEdges,
			OnEdge:    c.OnEdge,
		}
	}

	outVertices := make([]*Vertex, len(d.Vertices))
	for i, v := range d.Vertices {
		outVertices[i] = vertex(v)
	}

	return &Diagram{
		Edges:    outEdges,
		Cells:    outCells,
		Vertices: outVertices,
		ExecTime: execTime,
	}
}
