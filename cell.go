package voronoi

// CellEdge is one site's half of an Edge, walked in the direction that
// keeps the owning cell's interior on its left. Edge is nil for the
// synthetic segments the finishing pass inserts along the bounding box to
// close a cell — those have no "other site" on their far side.
type CellEdge struct {
	Edge       *Edge
	Start, End *Vertex
	Angle      float64
}

// Cell is one input site's polygon: its half-edges in angular order,
// forming a closed loop (CellEdge[i].End coincides with CellEdge[i+1].Start,
// wrapping around), and whether that polygon touches the bounding box.
type Cell struct {
	Site      *Site
	HalfEdges []*CellEdge
	OnEdge    bool
}
