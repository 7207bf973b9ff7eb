package geom

import "github.com/jakecoffman/cp"

type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectAround builds the square of side size centered on c.
func RectAround(c Vector, size float64) Rect {
	return Rect{X: c.X - size/2, Y: c.Y - size/2, Width: size, Height: size}
}

func (r Rect) Pos() Vector  { return Vector{r.X, r.Y} }
func (r Rect) Size() Vector { return Vector{r.Width, r.Height} }

func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// BB converts to a chipmunk bounding box. B holds the smaller y, which is
// the top edge in screen space.
func (r Rect) BB() cp.BB {
	return cp.BB{L: r.X, B: r.Y, R: r.X + r.Width, T: r.Y + r.Height}
}
