// Package engine drives Fortune's sweepline: it merges the site-event
// stream with the dynamically produced circle-event stream, maintaining
// the beachline of arcs and the edges born as arcs split and vanish.
package engine

import (
	"math"
	"sort"

	"github.com/wesleyclements/voronoi/internal/beachline"
	"github.com/wesleyclements/voronoi/internal/debuglog"
	"github.com/wesleyclements/voronoi/internal/events"
	"github.com/wesleyclements/voronoi/internal/geometry"
	"github.com/wesleyclements/voronoi/internal/internalerror"
	"github.com/wesleyclements/voronoi/internal/model"
	"github.com/wesleyclements/voronoi/numeric"
)

type sweep struct {
	epsilon float64
	sweepY  float64
	tree    *beachline.Tree[*arc]
	queue   *events.Queue[*circleEvent]
}

// Run executes the sweep over points (already validated by the caller) and
// returns the graph of sites and edges it built. Edges may still be
// dangling (missing one or both endpoints); the finishing pass completes
// them.
func Run(points []geometry.Point, epsilon float64) (*model.Graph, error) {
	sites := make([]*model.Site, len(points))
	for i, p := range points {
		sites[i] = &model.Site{ID: i, Point: p}
	}

	order := make([]*model.Site, len(sites))
	copy(order, sites)
	sort.Slice(order, func(i, j int) bool {
		if order[i].Point.Y != order[j].Point.Y {
			return order[i].Point.Y < order[j].Point.Y
		}
		return order[i].Point.X < order[j].Point.X
	})

	s := &sweep{
		epsilon: epsilon,
		tree:    beachline.New[*arc](),
		queue:   events.New[*circleEvent](),
	}

	var edges []*model.Edge
	nextSite := 0
	for nextSite < len(order) || !s.queue.IsEmpty() {
		if nextSite < len(order) && !s.circleEventPrecedes(order[nextSite]) {
			site := order[nextSite]
			nextSite++
			s.sweepY = site.Point.Y
			debuglog.Printf("site event: site=%d at (%g,%g)", site.ID, site.Point.X, site.Point.Y)
			edges = append(edges, s.handleSiteEvent(site)...)
			continue
		}

		_, ce, ok := s.queue.PopMin()
		if !ok {
			break
		}
		s.sweepY = ce.y
		debuglog.Printf("circle event: site=%d centre=(%g,%g) y=%g", ce.arc.site.ID, ce.centre.X, ce.centre.Y, ce.y)
		edge, err := s.handleCircleEvent(ce)
		if err != nil {
			return nil, err
		}
		if edge != nil {
			edges = append(edges, edge)
		}
	}

	return &model.Graph{Sites: sites, Edges: edges}, nil
}

// circleEventPrecedes reports whether the next pending circle event must
// be processed before site, per §4.4: the smaller of the two y values
// goes first, and an exact tie is won by the site event.
func (s *sweep) circleEventPrecedes(site *model.Site) bool {
	key, _, ok := s.queue.PeekMin()
	if !ok {
		return false
	}
	return numeric.FloatLessThan(key.Y, site.Point.Y, s.epsilon)
}

func (s *sweep) handleSiteEvent(site *model.Site) []*model.Edge {
	if s.tree.Len() == 0 {
		root := &arc{site: site}
		root.node = s.tree.InsertRoot(root)
		return nil
	}

	aboveNode := s.locateArcAbove(site.Point.X)
	above := aboveNode.Value
	s.invalidateCircleEvent(above)

	originalRightEdge := above.rightEdge

	// Edge orientation (§4.5): Left is whichever site sits to the left
	// along the beachline at the moment the edge is born. At a site
	// event that is always the pre-existing arc's site. Both new
	// breakpoints straddle the same pair of sites, so they share a single
	// Edge (§4.4 step 5) rather than each getting their own.
	edge := &model.Edge{Left: above.site, Right: site}

	above.rightEdge = edge

	newArc := &arc{site: site, rightEdge: edge}
	newNode := s.tree.InsertAfter(aboveNode, newArc)
	newArc.node = newNode

	rightCopy := &arc{site: above.site, rightEdge: originalRightEdge}
	rightNode := s.tree.InsertAfter(newNode, rightCopy)
	rightCopy.node = rightNode

	if leftLeftNode := aboveNode.Prev(); leftLeftNode != nil {
		s.detectCircleEvent(leftLeftNode, aboveNode, newNode)
	}
	if rightRightNode := rightNode.Next(); rightRightNode != nil {
		s.detectCircleEvent(newNode, rightNode, rightRightNode)
	}

	return []*model.Edge{edge}
}

func (s *sweep) handleCircleEvent(ce *circleEvent) (*model.Edge, error) {
	mNode := ce.arc.node
	prevNode := mNode.Prev()
	nextNode := mNode.Next()
	if prevNode == nil || nextNode == nil {
		return nil, internalerror.New("engine.handleCircleEvent",
			"arc for site %d has fewer than two neighbours at its circle event", ce.arc.site.ID)
	}

	vertex := &model.Vertex{Point: ce.centre}

	leftEdge := prevNode.Value.rightEdge
	rightEdge := mNode.Value.rightEdge
	if leftEdge == nil || rightEdge == nil {
		return nil, internalerror.New("engine.handleCircleEvent",
			"arc for site %d is missing an incident edge", ce.arc.site.ID)
	}
	if err := leftEdge.AssignEndpoint(vertex); err != nil {
		return nil, internalerror.New("engine.handleCircleEvent", "left edge for site %d: %v", ce.arc.site.ID, err)
	}
	if err := rightEdge.AssignEndpoint(vertex); err != nil {
		return nil, internalerror.New("engine.handleCircleEvent", "right edge for site %d: %v", ce.arc.site.ID, err)
	}

	s.invalidateCircleEvent(prevNode.Value)
	s.invalidateCircleEvent(nextNode.Value)
	mNode.Value.circle = nil

	s.tree.Remove(mNode)

	newEdge := &model.Edge{Left: prevNode.Value.site, Right: nextNode.Value.site}
	if err := newEdge.AssignEndpoint(vertex); err != nil {
		return nil, internalerror.New("engine.handleCircleEvent", "new edge at site %d: %v", ce.arc.site.ID, err)
	}
	prevNode.Value.rightEdge = newEdge

	if newLeftNode := prevNode.Prev(); newLeftNode != nil {
		s.detectCircleEvent(newLeftNode, prevNode, nextNode)
	}
	if newRightNode := nextNode.Next(); newRightNode != nil {
		s.detectCircleEvent(prevNode, nextNode, newRightNode)
	}

	return newEdge, nil
}

// detectCircleEvent implements §4.4's circle-event detection for the
// triple (L, M, R): reject same-focus triples and circumcentres that are
// collinear, reject events that wouldn't occur strictly ahead of the
// current sweep line, and reject triples that aren't a right turn (which
// would mean M never actually collapses before its neighbours cross).
func (s *sweep) detectCircleEvent(lNode, mNode, rNode *beachline.Node[*arc]) {
	l, m, r := lNode.Value, mNode.Value, rNode.Value

	if l.site == r.site {
		return
	}

	centre, ok := geometry.Circumcenter(l.site.Point, m.site.Point, r.site.Point, s.epsilon)
	if !ok {
		return
	}

	eventY := centre.Y + centre.DistanceTo(m.site.Point)
	if !numeric.FloatGreaterThan(eventY, s.sweepY, s.epsilon) {
		return
	}

	cross := (m.site.Point.X-l.site.Point.X)*(r.site.Point.Y-l.site.Point.Y) -
		(m.site.Point.Y-l.site.Point.Y)*(r.site.Point.X-l.site.Point.X)
	if !numeric.FloatLessThan(cross, 0, s.epsilon) {
		return
	}

	ce := &circleEvent{arc: m, centre: centre, y: eventY}
	ce.key = events.Key{Y: eventY, X: centre.X, Seq: s.queue.NextSeq()}
	m.circle = ce
	s.queue.Push(ce.key, ce)
}

func (s *sweep) invalidateCircleEvent(a *arc) {
	if a == nil || a.circle == nil {
		return
	}
	s.queue.Remove(a.circle.key)
	a.circle = nil
}

// locateArcAbove descends the beachline to find the arc whose parabola
// currently sits above x at the sweep line, per §4.2.
func (s *sweep) locateArcAbove(x float64) *beachline.Node[*arc] {
	return s.tree.Search(func(n *beachline.Node[*arc]) int {
		leftBP := math.Inf(-1)
		if prev := n.Prev(); prev != nil {
			leftBP = breakpointX(prev.Value.site.Point, n.Value.site.Point, s.sweepY, s.epsilon)
		}
		rightBP := math.Inf(1)
		if next := n.Next(); next != nil {
			rightBP = breakpointX(n.Value.site.Point, next.Value.site.Point, s.sweepY, s.epsilon)
		}

		if numeric.FloatLessThan(x, leftBP, s.epsilon) {
			return -1
		}
		if numeric.FloatGreaterThan(x, rightBP, s.epsilon) {
			return 1
		}
		return 0
	})
}
