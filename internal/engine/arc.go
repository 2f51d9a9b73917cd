package engine

import (
	"github.com/wesleyclements/voronoi/internal/beachline"
	"github.com/wesleyclements/voronoi/internal/events"
	"github.com/wesleyclements/voronoi/internal/geometry"
	"github.com/wesleyclements/voronoi/internal/model"
)

// arc is a beachline node value: the site it traces, the edge currently
// being built between it and its right neighbour, and the circle event
// (if any) that will eventually squeeze it out of existence. node is the
// arc's own position in the beachline, kept so handlers can reach its
// in-order neighbours in O(1).
type arc struct {
	site      *model.Site
	rightEdge *model.Edge
	circle    *circleEvent
	node      *beachline.Node[*arc]
}

// circleEvent is a scheduled vanishing of arc, keyed into the event queue
// by its sweep y (centre y plus radius), then the centre's x, then an
// insertion sequence number.
type circleEvent struct {
	arc    *arc
	centre geometry.Point
	y      float64
	key    events.Key
}
