// Package model holds the pointer-based working graph the sweepline
// engine builds and the finishing pass completes: sites, the edges
// between them, the vertices that terminate those edges, and the cells
// assembled from each site's half-edges. It is the graph described by
// Design Notes: an edge/site/cell ownership structure that would be
// cyclic if walked by embedding values directly, kept acyclic-in-spirit
// by referencing through pointers owned entirely by a single Graph/Diagram
// value for the lifetime of one compute call. The public voronoi package
// converts this into its own Diagram once finishing completes; that Diagram
// is pointer-addressed too, with each internal site and vertex mapped to
// exactly one public value so identity carries over.
package model

import (
	"fmt"

	"github.com/wesleyclements/voronoi/internal/geometry"
)

// Site is an input point together with its input-order identity.
type Site struct {
	ID    int
	Point geometry.Point
}

// Vertex is a point produced by the algorithm: a circle-event centre or a
// box-clip intersection.
type Vertex struct {
	Point geometry.Point
}

// Edge is shared by exactly two sites. A and B are its endpoints; either
// or both may be nil while the sweep is in progress ("dangling").
// Left and Right record which site lies to which side of the oriented
// edge A->B, per the orientation convention fixed at the edge's birth.
type Edge struct {
	Left, Right *Site
	A, B        *Vertex
}

// AssignEndpoint fills the first empty endpoint slot with v. An edge
// receives at most two endpoints over its lifetime (from circle events
// and/or finishing); a third call indicates a bug upstream.
func (e *Edge) AssignEndpoint(v *Vertex) error {
	switch {
	case e.A == nil:
		e.A = v
	case e.B == nil:
		e.B = v
	default:
		return fmt.Errorf("edge already has both endpoints assigned")
	}
	return nil
}

// Dangling reports whether e is still missing one or both endpoints.
func (e *Edge) Dangling() bool {
	return e.A == nil || e.B == nil
}

// CellEdge is one site's half of an Edge: the walk direction (Start->End)
// is chosen so the owning site's cell interior lies to its left, and Angle
// is the value cells sort their half-edges by during assembly.
type CellEdge struct {
	Edge  *Edge
	Start *Vertex
	End   *Vertex
	Angle float64
}

// Cell is one input site's polygon: its angle-sorted half-edges, and
// whether it touches the bounding box.
type Cell struct {
	Site      *Site
	HalfEdges []*CellEdge
	OnEdge    bool
}

// Graph is the sweepline engine's output: every site and every edge born
// during the sweep, some edges still dangling.
type Graph struct {
	Sites []*Site
	Edges []*Edge
}

// Diagram is the finishing pass's output: the same sites and edges with
// every edge clipped and closed, plus the assembled cells and the
// deduplicated set of vertices they reference.
type Diagram struct {
	Sites    []*Site
	Edges    []*Edge
	Vertices []*Vertex
	Cells    []*Cell
}
