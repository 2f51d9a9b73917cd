package geometry

// Box is the axis-aligned bounding rectangle with corners (0,0) and
// (Width,Height) that every finished diagram is clipped to.
type Box struct {
	Width, Height float64
}

// Contains reports whether p lies within the box, within epsilon.
func (b Box) Contains(p Point, epsilon float64) bool {
	return p.X >= -epsilon && p.X <= b.Width+epsilon &&
		p.Y >= -epsilon && p.Y <= b.Height+epsilon
}

// ContainsSegment reports whether both endpoints of s lie within the box.
func (b Box) ContainsSegment(s Segment, epsilon float64) bool {
	return b.Contains(s.A, epsilon) && b.Contains(s.B, epsilon)
}

// Clamp clips s to the box using Liang-Barsky parametric clipping: it
// computes the entry parameter t0 and exit parameter t1 along s's direction
// against the box's four slab inequalities, then returns the subsegment
// parameterised from max(0,t0) to min(1,t1). The second return value is
// false if no part of s lies within the box.
func (b Box) Clamp(s Segment, epsilon float64) (Segment, bool) {
	dx := s.B.X - s.A.X
	dy := s.B.Y - s.A.Y

	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{s.A.X - 0, b.Width - s.A.X, s.A.Y - 0, b.Height - s.A.Y}

	t0, t1 := 0.0, 1.0
	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < -epsilon {
				return Segment{}, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t1 {
				t1 = t
			}
		}
	}

	if t0 > t1+epsilon {
		return Segment{}, false
	}

	clamped := Segment{
		A: Point{s.A.X + t0*dx, s.A.Y + t0*dy},
		B: Point{s.A.X + t1*dx, s.A.Y + t1*dy},
	}
	if clamped.IsDegenerate(epsilon) {
		return Segment{}, false
	}
	return clamped, true
}
