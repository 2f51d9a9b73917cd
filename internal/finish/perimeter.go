package finish

import (
	"math"
	"sort"

	"github.com/wesleyclements/voronoi/internal/geometry"
	"github.com/wesleyclements/voronoi/numeric"
)

// The box perimeter is parameterised as a single scalar t in [0, L), L =
// 2*(Width+Height), increasing counterclockwise from the origin: t in
// [0,Width) is the bottom edge, [Width,Width+Height) the right edge, and so
// on. This turns "how many corners lie between p and q going
// counterclockwise" (spec §4.6 step 3) into simple arithmetic on t instead
// of a case analysis on which of four edges each point falls on.

// perimeterParam returns p's position along the box perimeter, or false if
// p does not lie on the boundary within epsilon. Each corner belongs to
// exactly one of the two edges it joins (the one beginning at that
// corner), so the mapping is a bijection onto [0, L).
func perimeterParam(p geometry.Point, box geometry.Box, epsilon float64) (float64, bool) {
	w, h := box.Width, box.Height
	switch {
	case numeric.FloatEquals(p.Y, 0, epsilon) && numeric.FloatLessThan(p.X, w, epsilon):
		return p.X, true
	case numeric.FloatEquals(p.X, w, epsilon) && numeric.FloatLessThan(p.Y, h, epsilon):
		return w + p.Y, true
	case numeric.FloatEquals(p.Y, h, epsilon) && numeric.FloatGreaterThan(p.X, 0, epsilon):
		return w + h + (w - p.X), true
	case numeric.FloatEquals(p.X, 0, epsilon) && numeric.FloatGreaterThan(p.Y, 0, epsilon):
		return 2*w + h + (h - p.Y), true
	default:
		return 0, false
	}
}

// pointAtParam is perimeterParam's inverse for t in [0, L).
func pointAtParam(t float64, box geometry.Box) geometry.Point {
	w, h := box.Width, box.Height
	switch {
	case t < w:
		return geometry.Point{X: t, Y: 0}
	case t < w+h:
		return geometry.Point{X: w, Y: t - w}
	case t < 2*w+h:
		return geometry.Point{X: 2*w + h - t, Y: h}
	default:
		return geometry.Point{X: 0, Y: 2*w + 2*h - t}
	}
}

// cornersBetween returns, in counterclockwise order, the box corners
// strictly between p and q along the perimeter walk from p to q. ok is
// false if either point does not lie on the boundary.
func cornersBetween(p, q geometry.Point, box geometry.Box, epsilon float64) ([]geometry.Point, bool) {
	tp, ok := perimeterParam(p, box, epsilon)
	if !ok {
		return nil, false
	}
	tq, ok := perimeterParam(q, box, epsilon)
	if !ok {
		return nil, false
	}

	length := 2 * (box.Width + box.Height)
	delta := math.Mod(tq-tp+length, length)

	thresholds := [4]float64{box.Width, box.Width + box.Height, 2*box.Width + box.Height, length}
	type hit struct {
		forward float64
		t       float64
	}
	var hits []hit
	for _, c := range thresholds {
		forward := math.Mod(c-tp+length, length)
		if forward > epsilon && forward < delta-epsilon {
			hits = append(hits, hit{forward: forward, t: math.Mod(c, length)})
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].forward < hits[j].forward })

	corners := make([]geometry.Point, len(hits))
	for i, h := range hits {
		corners[i] = pointAtParam(h.t, box)
	}
	return corners, true
}
