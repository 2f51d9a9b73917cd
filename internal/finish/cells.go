package finish

import (
	"math"
	"sort"

	"github.com/wesleyclements/voronoi/internal/geometry"
	"github.com/wesleyclements/voronoi/internal/internalerror"
	"github.com/wesleyclements/voronoi/internal/model"
)

// addHalfEdges appends one CellEdge per site of e to the matching cell,
// oriented so each owning site's cell interior lies to the half-edge's
// left (spec §4.5/§4.6 step 2): Left walks A->B, Right walks B->A.
func addHalfEdges(cells []*model.Cell, e *model.Edge) {
	left := cells[e.Left.ID]
	left.HalfEdges = append(left.HalfEdges, &model.CellEdge{
		Edge:  e,
		Start: e.A,
		End:   e.B,
		Angle: math.Atan2(e.Right.Point.Y-e.Left.Point.Y, e.Right.Point.X-e.Left.Point.X),
	})

	right := cells[e.Right.ID]
	right.HalfEdges = append(right.HalfEdges, &model.CellEdge{
		Edge:  e,
		Start: e.B,
		End:   e.A,
		Angle: math.Atan2(e.Left.Point.Y-e.Right.Point.Y, e.Left.Point.X-e.Right.Point.X),
	})
}

// sortHalfEdges orders a cell's half-edges by the angle toward their other
// site, per spec §4.6 step 2.
func sortHalfEdges(cell *model.Cell) {
	sort.Slice(cell.HalfEdges, func(i, j int) bool {
		return cell.HalfEdges[i].Angle < cell.HalfEdges[j].Angle
	})
}

// closeCell walks cell's angle-sorted half-edges and inserts synthetic
// box-boundary half-edges between any two consecutive ones whose endpoints
// don't already coincide, per spec §4.6 step 3. A cell with no half-edges
// at all (only possible for a single-site diagram) is closed as the whole
// box.
func closeCell(cell *model.Cell, box geometry.Box, epsilon float64) error {
	if len(cell.HalfEdges) == 0 {
		cell.HalfEdges = boxBoundaryHalfEdges(box)
		cell.OnEdge = true
		return nil
	}

	n := len(cell.HalfEdges)
	closed := make([]*model.CellEdge, 0, n*2)
	for i, cur := range cell.HalfEdges {
		closed = append(closed, cur)
		next := cell.HalfEdges[(i+1)%n]
		if cur.End.Point.Equals(next.Start.Point, epsilon) {
			continue
		}

		corners, ok := cornersBetween(cur.End.Point, next.Start.Point, box, epsilon)
		if !ok {
			return internalerror.New("finish.closeCell",
				"cannot close cell for site %d: gap from (%g,%g) to (%g,%g) does not lie on the box boundary",
				cell.Site.ID, cur.End.Point.X, cur.End.Point.Y, next.Start.Point.X, next.Start.Point.Y)
		}

		from := cur.End
		for _, c := range corners {
			to := &model.Vertex{Point: c}
			closed = append(closed, boundaryCellEdge(from, to))
			from = to
		}
		closed = append(closed, boundaryCellEdge(from, next.Start))
		cell.OnEdge = true
	}
	cell.HalfEdges = closed
	return nil
}

// boundaryCellEdge builds a synthetic half-edge along the box boundary.
// It has no backing Edge (there is no "other site" across a box wall), so
// its angle comes from the oriented segment itself, per spec §4.6 step 2's
// fallback: atan2(alongEdgeX, -alongEdgeY), chosen so the cell interior
// lies to the half-edge's left, same as real half-edges.
func boundaryCellEdge(from, to *model.Vertex) *model.CellEdge {
	dx := to.Point.X - from.Point.X
	dy := to.Point.Y - from.Point.Y
	return &model.CellEdge{
		Start: from,
		End:   to,
		Angle: math.Atan2(dx, -dy),
	}
}

// boxBoundaryHalfEdges returns the box's four corners as a closed,
// counterclockwise loop of synthetic half-edges, for the degenerate case
// of a cell with no incident edges at all.
func boxBoundaryHalfEdges(box geometry.Box) []*model.CellEdge {
	corners := [4]geometry.Point{
		{X: 0, Y: 0},
		{X: box.Width, Y: 0},
		{X: box.Width, Y: box.Height},
		{X: 0, Y: box.Height},
	}
	vertices := make([]*model.Vertex, len(corners))
	for i, c := range corners {
		vertices[i] = &model.Vertex{Point: c}
	}

	edges := make([]*model.CellEdge, len(vertices))
	for i := range vertices {
		edges[i] = boundaryCellEdge(vertices[i], vertices[(i+1)%len(vertices)])
	}
	return edges
}
