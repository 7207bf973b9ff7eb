package obj

import "fmt"

// Surface is the result of a resting check: either the player is on a
// surface and should rest at Y, or it is not.
type Surface struct {
	y  float64
	on bool
}

func OnSurface(y float64) Surface { return Surface{y: y, on: true} }

func NotOnSurface() Surface { return Surface{} }

// Y returns the resting y-coordinate for the player's center and whether
// the player is on the surface at all.
func (s Surface) Y() (float64, bool) {
	return s.y, s.on
}

func (s Surface) String() string {
	if !s.on {
		return "NotOnSurface"
	}
	return fmt.Sprintf("OnSurface(%g)", s.y)
}
