package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/geodash/geom"
)

// Orb launches the player when touched with jump held. It fires once.
type Orb struct {
	Pos       geom.Vector
	D         float64
	Activated bool
}

func NewOrb(x, y, d float64) Orb {
	return Orb{Pos: geom.V(x, y), D: d}
}

func (o *Orb) Scroll(dx float64) {
	o.Pos.X -= dx
}

func (o Orb) Radius() float64 { return o.D / 2 }

func (o Orb) BB() cp.BB { return cp.NewBBForCircle(o.Pos.CP(), o.Radius()) }

func (o Orb) TrailingEdge() float64 { return o.Pos.X + o.Radius() }

func (o Orb) PastLeftEdge() bool { return o.TrailingEdge() <= 0 }

func (o Orb) OnScreen() bool { return ScreenBB.Intersects(o.BB()) }
