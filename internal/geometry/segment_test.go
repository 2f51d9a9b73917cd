package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wesleyclements/voronoi/internal/geometry"
)

func TestSegmentLength(t *testing.T) {
	s := geometry.Segment{A: geometry.Point{X: 0, Y: 0}, B: geometry.Point{X: 3, Y: 4}}
	assert.InDelta(t, 5.0, s.Length(), 1e-9)
}

func TestSegmentIsDegenerate(t *testing.T) {
	tests := map[string]struct {
		segment geometry.Segment
		want    bool
	}{
		"identical endpoints": {
			segment: geometry.Segment{A: geometry.Point{X: 1, Y: 1}, B: geometry.Point{X: 1, Y: 1}},
			want:    true,
		},
		"within epsilon": {
			segment: geometry.Segment{A: geometry.Point{X: 1, Y: 1}, B: geometry.Point{X: 1 + 1e-12, Y: 1}},
			want:    true,
		},
		"distinct endpoints": {
			segment: geometry.Segment{A: geometry.Point{X: 0, Y: 0}, B: geometry.Point{X: 1, Y: 0}},
			want:    false,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.segment.IsDegenerate(1e-9))
		})
	}
}
