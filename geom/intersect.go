package geom

// Collision predicates follow the polygon/rectangle approach described at
// jeffreythompson.org/collision-detection/poly-rect.php.

// SegmentIntersect reports whether segment a1-a2 crosses segment b1-b2.
// Parallel, collinear and zero-length segments have a zero determinant and
// are reported as not intersecting.
func SegmentIntersect(a1, a2, b1, b2 Vector) bool {
	den := (b2.Y-b1.Y)*(a2.X-a1.X) - (b2.X-b1.X)*(a2.Y-a1.Y)
	if den == 0 {
		return false
	}

	ua := ((b2.X-b1.X)*(a1.Y-b1.Y) - (b2.Y-b1.Y)*(a1.X-b1.X)) / den
	ub := ((a2.X-a1.X)*(a1.Y-b1.Y) - (a2.Y-a1.Y)*(a1.X-b1.X)) / den

	// NaN fails both comparisons, so overflowed inputs never intersect.
	return ua >= 0 && ua <= 1 && ub >= 0 && ub <= 1
}

// SegmentIntersectsRect reports whether the segment crosses any edge of the
// rectangle with top-left pos and the given size.
func SegmentIntersectsRect(s1, s2, pos, size Vector) bool {
	tl := pos
	tr := Vector{pos.X + size.X, pos.Y}
	bl := Vector{pos.X, pos.Y + size.Y}
	br := Vector{pos.X + size.X, pos.Y + size.Y}

	return SegmentIntersect(s1, s2, tl, bl) || // left
		SegmentIntersect(s1, s2, tr, br) || // right
		SegmentIntersect(s1, s2, tl, tr) || // top
		SegmentIntersect(s1, s2, bl, br) // bottom
}

// PointInPolygon casts a ray from p toward +x and counts edge crossings.
// Points exactly on an edge may land on either side.
func PointInPolygon(vertices []Vector, p Vector) bool {
	inside := false
	for i := range vertices {
		vc := vertices[i]
		vn := vertices[(i+1)%len(vertices)]

		// The strict straddle test rules out horizontal edges before the
		// x-intercept division below can divide by zero.
		straddles := (vc.Y > p.Y && vn.Y < p.Y) || (vc.Y < p.Y && vn.Y > p.Y)
		if straddles && p.X < (vn.X-vc.X)*(p.Y-vc.Y)/(vn.Y-vc.Y)+vc.X {
			inside = !inside
		}
	}
	return inside
}
