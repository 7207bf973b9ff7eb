package obj

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/geodash/geom"
)

// Spike is a deadly triangle. Pos is the midpoint of its base. An upright
// spike (Flip false) stands on the floor with its apex Size.Y above the
// base; a flipped spike hangs from the ceiling with its apex below.
type Spike struct {
	Pos  geom.Vector
	Size geom.Vector
	Flip bool
}

func NewSpike(x, y, w, h float64, flip bool) Spike {
	return Spike{Pos: geom.V(x, y), Size: geom.V(w, h), Flip: flip}
}

// Scroll moves the spike left by dx. Vertices are derived from Pos, so
// they always follow.
func (s *Spike) Scroll(dx float64) {
	s.Pos.X -= dx
}

func (s Spike) Apex() geom.Vector {
	if s.Flip {
		return geom.V(s.Pos.X, s.Pos.Y+s.Size.Y)
	}
	return geom.V(s.Pos.X, s.Pos.Y-s.Size.Y)
}

// Vertices returns the two base corners followed by the apex.
func (s Spike) Vertices() [3]geom.Vector {
	half := s.Size.X / 2
	return [3]geom.Vector{
		geom.V(s.Pos.X-half, s.Pos.Y),
		geom.V(s.Pos.X+half, s.Pos.Y),
		s.Apex(),
	}
}

func (s Spike) BB() cp.BB {
	half := s.Size.X / 2
	apex := s.Apex()
	return cp.BB{
		L: s.Pos.X - half,
		B: math.Min(s.Pos.Y, apex.Y),
		R: s.Pos.X + half,
		T: math.Max(s.Pos.Y, apex.Y),
	}
}

func (s Spike) TrailingEdge() float64 { return s.Pos.X + s.Size.X/2 }

func (s Spike) PastLeftEdge() bool { return s.TrailingEdge() <= 0 }

func (s Spike) OnScreen() bool { return ScreenBB.Intersects(s.BB()) }
