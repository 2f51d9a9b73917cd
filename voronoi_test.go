package voronoi_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wesleyclements/voronoi"
	"github.com/wesleyclements/voronoi/options"
)

func closedPolygon(t *testing.T, cell *voronoi.Cell) {
	t.Helper()
	require.NotEmpty(t, cell.HalfEdges)
	n := len(cell.HalfEdges)
	for i, he := range cell.HalfEdges {
		next := cell.HalfEdges[(i+1)%n]
		assert.InDelta(t, he.End.Point.X, next.Start.Point.X, 1e-6)
		assert.InDelta(t, he.End.Point.Y, next.Start.Point.Y, 1e-6)
	}
}

func TestComputeSingleSiteFillsBox(t *testing.T) {
	diagram, err := voronoi.Compute([]voronoi.Point{{X: 0.5, Y: 0.5}}, 1, 1)
	require.NoError(t, err)

	assert.Empty(t, diagram.Edges)
	require.Len(t, diagram.Cells, 1)
	assert.Equal(t, 0, diagram.Cells[0].Site.ID)
	assert.True(t, diagram.Cells[0].OnEdge)
	closedPolygon(t, diagram.Cells[0])
}

func TestComputeTwoSitesSplitBox(t *testing.T) {
	diagram, err := voronoi.Compute([]voronoi.Point{{X: 0.25, Y: 0.5}, {X: 0.75, Y: 0.5}}, 1, 1)
	require.NoError(t, err)

	require.Len(t, diagram.Edges, 1)
	e := diagram.Edges[0]
	assert.InDelta(t, 0.5, e.A.Point.X, 1e-9)
	assert.InDelta(t, 0.5, e.B.Point.X, 1e-9)

	require.Len(t, diagram.Cells, 2)
	for _, cell := range diagram.Cells {
		assert.True(t, cell.OnEdge)
	}
}

func TestComputeFourSitesSquare(t *testing.T) {
	diagram, err := voronoi.Compute([]voronoi.Point{
		{X: 0.25, Y: 0.25},
		{X: 0.75, Y: 0.25},
		{X: 0.25, Y: 0.75},
		{X: 0.75, Y: 0.75},
	}, 1, 1)
	require.NoError(t, err)

	require.Len(t, diagram.Edges, 4)
	require.Len(t, diagram.Cells, 4)
	for i, cell := range diagram.Cells {
		assert.Equal(t, i, cell.Site.ID)
		closedPolygon(t, cell)
	}
}

func TestComputeRejectsNonPositiveBox(t *testing.T) {
	_, err := voronoi.Compute([]voronoi.Point{{X: 0.5, Y: 0.5}}, 0, 1)
	var invalid *voronoi.InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}

func TestComputeRejectsEmptyInput(t *testing.T) {
	_, err := voronoi.Compute(nil, 1, 1)
	var invalid *voronoi.InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}

func TestComputeRejectsNonFiniteCoordinate(t *testing.T) {
	_, err := voronoi.Compute([]voronoi.Point{{X: math.NaN(), Y: 0.5}}, 1, 1)
	var invalid *voronoi.InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}

func TestComputeRejectsDuplicateSites(t *testing.T) {
	_, err := voronoi.Compute([]voronoi.Point{{X: 0.5, Y: 0.5}, {X: 0.5, Y: 0.5}}, 1, 1)
	var invalid *voronoi.InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}

func TestComputeIdempotent(t *testing.T) {
	sites := []voronoi.Point{{X: 0.5, Y: 0.8}, {X: 0.1, Y: 0.2}, {X: 0.9, Y: 0.2}}

	first, err := voronoi.Compute(sites, 1, 1)
	require.NoError(t, err)
	second, err := voronoi.Compute(sites, 1, 1)
	require.NoError(t, err)

	require.Equal(t, len(first.Edges), len(second.Edges))
	require.Equal(t, len(first.Cells), len(second.Cells))
	for i := range first.Cells {
		assert.Equal(t, first.Cells[i].Site.Point, second.Cells[i].Site.Point)
		assert.Equal(t, len(first.Cells[i].HalfEdges), len(second.Cells[i].HalfEdges))
	}
}

func TestComputeWithClockControlsExecTime(t *testing.T) {
	fixed := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	diagram, err := voronoi.Compute(
		[]voronoi.Point{{X: 0.5, Y: 0.5}}, 1, 1,
		options.WithClock(func() time.Time { return fixed }),
	)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), diagram.ExecTime)
}
