package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wesleyclements/voronoi/internal/geometry"
	"github.com/wesleyclements/voronoi/internal/model"
)

func TestEdgeAssignEndpoint(t *testing.T) {
	e := &model.Edge{}
	assert.True(t, e.Dangling())

	a := &model.Vertex{Point: geometry.Point{X: 0, Y: 0}}
	require.NoError(t, e.AssignEndpoint(a))
	assert.Same(t, a, e.A)
	assert.True(t, e.Dangling())

	b := &model.Vertex{Point: geometry.Point{X: 1, Y: 1}}
	require.NoError(t, e.AssignEndpoint(b))
	assert.Same(t, b, e.B)
	assert.False(t, e.Dangling())
}

func TestEdgeAssignEndpointRejectsThirdCall(t *testing.T) {
	e := &model.Edge{}
	require.NoError(t, e.AssignEndpoint(&model.Vertex{}))
	require.NoError(t, e.AssignEndpoint(&model.Vertex{}))

	err := e.AssignEndpoint(&model.Vertex{})
	assert.Error(t, err)
}
