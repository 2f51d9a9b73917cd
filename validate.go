package voronoi

import (
	"fmt"
	"math"

	"github.com/wesleyclements/voronoi/internal/geometry"
)

// validateInput enforces the input contract of spec §6(a)/§7: at least one
// finite, pairwise-distinct site, and a positive box.
func validateInput(points []Point, width, height, epsilon float64) error {
	if width <= 0 || height <= 0 {
		return &InvalidInputError{Reason: fmt.Sprintf("box dimensions must be positive, got width=%g height=%g", width, height)}
	}
	if len(points) == 0 {
		return &InvalidInputError{Reason: "at least one site is required"}
	}

	for i, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return &InvalidInputError{Reason: fmt.Sprintf("site %d has a non-finite coordinate (%g,%g)", i, p.X, p.Y)}
		}
	}

	for i := range points {
		a := geometry.Point{X: points[i].X, Y: points[i].Y}
		for j := i + 1; j < len(points); j++ {
			b := geometry.Point{X: points[j].X, Y: points[j].Y}
			if a.Equals(b, epsilon) {
				return &InvalidInputError{Reason: fmt.Sprintf("sites %d and %d coincide within epsilon (%g,%g)", i, j, a.X, a.Y)}
			}
		}
	}

	return nil
}
