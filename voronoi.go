// Package voronoi computes the planar Voronoi diagram of a finite set of
// 2D sites clipped to a bounding rectangle, using Fortune's sweepline
// algorithm.
//
// # Coordinate system
//
// Sites are given as (x,y) pairs; the bounding box has corners (0,0) and
// (width,height). The package does not care whether y increases up or
// down — every operation (breakpoint ordering, circle-event detection,
// box clipping) is defined purely in terms of distance and orientation,
// which are invariant under that choice.
//
// # Precision
//
// All internal comparisons are epsilon-tolerant (see [options.WithEpsilon]
// to override the default). Two input sites closer than that epsilon are
// rejected as duplicates rather than silently collapsed.
//
// # Usage
//
//	diagram, err := voronoi.Compute(sites, width, height)
//	if err != nil {
//		// InvalidInputError: bad input, nothing computed.
//		// InternalInvariantError: an algorithm bug; see spec §7.
//	}
package voronoi

import (
	"github.com/wesleyclements/voronoi/internal/engine"
	"github.com/wesleyclements/voronoi/internal/finish"
	"github.com/wesleyclements/voronoi/internal/geometry"
	"github.com/wesleyclements/voronoi/options"
)

// Compute builds the Voronoi diagram of points clipped to the rectangle
// with corners (0,0) and (width,height). points must be finite and
// pairwise distinct within the epsilon in effect (see [options.WithEpsilon]);
// width and height must be positive. Returns an [InvalidInputError] if any
// of those requirements is violated, leaving no partial diagram behind.
func Compute(points []Point, width, height float64, opts ...options.ComputeOptionFunc) (*Diagram, error) {
	co := options.ApplyComputeOptions(opts...)

	if err := validateInput(points, width, height, co.Epsilon); err != nil {
		return nil, err
	}

	start := co.Now()

	internalPoints := make([]geometry.Point, len(points))
	for i, p := range points {
		internalPoints[i] = geometry.Point{X: p.X, Y: p.Y}
	}

	graph, err := engine.Run(internalPoints, co.Epsilon)
	if err != nil {
		return nil, err
	}

	box := geometry.Box{Width: width, Height: height}
	diagram, err := finish.Run(graph, box, co.Epsilon)
	if err != nil {
		return nil, err
	}

	return newDiagram(diagram, co.Now().Sub(start)), nil
}
