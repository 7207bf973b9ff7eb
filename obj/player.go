package obj

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/geodash/common"
	"github.com/milk9111/geodash/geom"
)

// NoJump is the anchor of a player with no active jump arc.
var NoJump = geom.V(common.Far, common.Far)

// PlayerConfig carries the tunable physics for a new player.
type PlayerConfig struct {
	Size       float64
	Speed      float64
	Gravity    float64
	JumpOffset float64
	StartX     float64
}

// DefaultPlayerConfig returns the stock physics.
func DefaultPlayerConfig() PlayerConfig {
	return PlayerConfig{
		Size:       common.PlayerSize,
		Speed:      common.PlayerSpeed,
		Gravity:    common.Gravity,
		JumpOffset: common.JumpOffset,
		StartX:     common.PlayerStartX,
	}
}

// Player is the square the user steers. Its x stays fixed on screen; the
// world scrolls past at Vel.X instead.
type Player struct {
	Pos geom.Vector
	Vel geom.Vector
	Acc geom.Vector
	// Jump is the anchor of the current jump arc, NoJump while grounded.
	Jump geom.Vector

	Size       float64
	Angle      float64
	JumpOffset float64

	Grounded    bool
	GravityFlip bool
	Jumping     bool
	Crashed     bool
}

// NewPlayer places a player at rest on the floor.
func NewPlayer(cfg PlayerConfig) *Player {
	return &Player{
		Pos:        geom.V(cfg.StartX, common.GroundYNormal-cfg.Size/2),
		Vel:        geom.V(cfg.Speed, 0),
		Acc:        geom.V(0, cfg.Gravity),
		Jump:       NoJump,
		Size:       cfg.Size,
		JumpOffset: cfg.JumpOffset,
		Grounded:   true,
	}
}

func (p *Player) half() float64 { return p.Size / 2 }

func (p *Player) Top() float64    { return p.Pos.Y - p.half() }
func (p *Player) Bottom() float64 { return p.Pos.Y + p.half() }
func (p *Player) Left() float64   { return p.Pos.X - p.half() }
func (p *Player) Right() float64  { return p.Pos.X + p.half() }

// Hitbox is the player's square in screen space.
func (p *Player) Hitbox() geom.Rect { return geom.RectAround(p.Pos, p.Size) }

func (p *Player) BB() cp.BB { return p.Hitbox().BB() }

// GroundPlane returns the y of the floor gravity currently pulls toward.
func (p *Player) GroundPlane() float64 {
	if p.GravityFlip {
		return common.GroundYFlip
	}
	return common.GroundYNormal
}

// HasJumpAnchor reports whether a jump arc is active.
func (p *Player) HasJumpAnchor() bool { return p.Jump != NoJump }

// OnGround checks the leading edge against the ground plane.
func (p *Player) OnGround() Surface {
	if p.GravityFlip {
		if p.Top() <= common.GroundYFlip {
			return OnSurface(common.GroundYFlip + p.half())
		}
		return NotOnSurface()
	}
	if p.Bottom() >= common.GroundYNormal {
		return OnSurface(common.GroundYNormal - p.half())
	}
	return NotOnSurface()
}

// OnBlock reports whether the player has just sunk through the block's
// landing face. The band is strict on both sides so a player resting
// exactly on the face is not re-snapped.
func (p *Player) OnBlock(b Block) Surface {
	if p.Right() <= b.Left() || p.Left() >= b.Right() {
		return NotOnSurface()
	}

	if p.GravityFlip {
		if p.Top() < b.Bottom() && p.Bottom() > b.Bottom() {
			return OnSurface(b.Bottom() + p.half())
		}
		return NotOnSurface()
	}

	if p.Top() < b.Top() && p.Bottom() > b.Top() {
		return OnSurface(b.Top() - p.half())
	}
	return NotOnSurface()
}

// CheckBlockCrash marks the player crashed when it straddles the face
// opposite the landing face, which is what hitting a block from the side
// or from beneath looks like. Landing must be resolved first.
func (p *Player) CheckBlockCrash(b Block) bool {
	if p.Right() < b.Left() || p.Left() > b.Right() {
		return false
	}

	var hit bool
	if p.GravityFlip {
		hit = p.Bottom() >= b.Top() && p.Top() <= b.Top()
	} else {
		hit = p.Top() <= b.Bottom() && p.Bottom() >= b.Bottom()
	}
	if hit {
		p.Crashed = true
	}
	return hit
}

// CheckSpikeCrash marks the player crashed when the hitbox touches a spike
// edge or its top-left corner lies inside the triangle. Edges are tested
// in order and the first hit wins.
func (p *Player) CheckSpikeCrash(s Spike) bool {
	verts := s.Vertices()
	box := p.Hitbox()

	for i := range verts {
		if geom.SegmentIntersectsRect(verts[i], verts[(i+1)%len(verts)], box.Pos(), box.Size()) {
			p.Crashed = true
			return true
		}
	}
	if geom.PointInPolygon(verts[:], box.Pos()) {
		p.Crashed = true
		return true
	}
	return false
}

// CheckOrbCollide reports whether the hitbox overlaps the orb's circle.
func (p *Player) CheckOrbCollide(o Orb) bool {
	center := o.Pos.CP()
	closest := p.BB().ClampVect(&center)
	r := o.Radius()
	return closest.DistanceSq(center) <= r*r
}

// StartJump launches the player along a new arc anchored JumpOffset ahead.
// The impulse is the square of the per-tick gravity, pointed away from the
// current ground plane.
func (p *Player) StartJump() {
	p.Jump = geom.V(p.Pos.X+p.JumpOffset, p.Pos.Y)
	p.Grounded = false
	impulse := p.Acc.Y * p.Acc.Y
	if p.GravityFlip {
		p.Vel.Y = impulse
	} else {
		p.Vel.Y = -impulse
	}
}

// Land rests the player at y.
func (p *Player) Land(y float64) {
	p.Angle = 0
	p.Grounded = true
	p.Jump = NoJump
	p.Pos.Y = y
	p.Vel.Y = 0
}

// Fall takes the player off a surface without a jump. The anchor is parked
// far ahead at the current height so the player stays level while falling.
func (p *Player) Fall() {
	p.Grounded = false
	p.Jump = geom.V(common.Far, p.Pos.Y)
}

// FlipGravity reverses gravity and sends the player toward the other
// ground plane.
func (p *Player) FlipGravity() {
	p.GravityFlip = !p.GravityFlip
	p.Acc.Y = -p.Acc.Y
	p.Grounded = false
	p.Jump.Y = p.GroundPlane()
}

// ScrollAnchor moves the jump anchor with the world. Anchors parked far
// ahead stay put.
func (p *Player) ScrollAnchor(dx float64) {
	if p.Jump.X == common.Far {
		return
	}
	p.Jump.X -= dx
}

// UpdateAngle derives the presentation angle, in degrees, from the slope
// between the player and its jump anchor. A coincident anchor leaves the
// angle unchanged.
func (p *Player) UpdateAngle() {
	d := p.Pos.Dist(p.Jump)
	if d == 0 {
		return
	}

	var a float64
	if p.GravityFlip {
		a = -common.Degrees(math.Asin((p.Pos.Y - p.Jump.Y) / d))
	} else {
		a = common.Degrees(math.Asin((p.Jump.Y - p.Pos.Y) / d))
	}
	if math.IsNaN(a) {
		return
	}
	p.Angle = a
}
