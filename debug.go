package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/geodash/common"
)

var (
	debugHitbox = color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff}
	debugHazard = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xc8}
	debugOrb    = color.RGBA{R: 0x00, G: 0xc0, B: 0xff, A: 0xff}
	debugAnchor = color.RGBA{R: 0xd3, G: 0xd3, B: 0xd3, A: 0xff}
)

// debugDrawer outlines shapes given in cp vectors.
type debugDrawer struct {
	screen *ebiten.Image
}

func (d *debugDrawer) DrawCircle(pos cp.Vector, radius float64, c color.Color) {
	steps := 20
	prev := cp.Vector{X: pos.X + radius, Y: pos.Y}
	for i := 1; i <= steps; i++ {
		th := float64(i) * (2 * math.Pi / float64(steps))
		cur := cp.Vector{X: pos.X + math.Cos(th)*radius, Y: pos.Y + math.Sin(th)*radius}
		d.DrawSegment(prev, cur, c)
		prev = cur
	}
}

func (d *debugDrawer) DrawSegment(a, b cp.Vector, c color.Color) {
	vector.StrokeLine(d.screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, c, false)
}

func (d *debugDrawer) DrawPolygon(verts []cp.Vector, c color.Color) {
	for i := range verts {
		d.DrawSegment(verts[i], verts[(i+1)%len(verts)], c)
	}
}

func (d *debugDrawer) DrawBB(bb cp.BB, c color.Color) {
	d.DrawPolygon([]cp.Vector{{X: bb.L, Y: bb.B}, {X: bb.R, Y: bb.B}, {X: bb.R, Y: bb.T}, {X: bb.L, Y: bb.T}}, c)
}

// drawDebug overlays every collision shape, the jump anchor and the
// player's state.
func (g *Game) drawDebug(screen *ebiten.Image) {
	d := &debugDrawer{screen: screen}
	w := g.world

	for _, b := range w.Blocks {
		if b.OnScreen() {
			d.DrawBB(b.BB(), debugHazard)
		}
	}
	for _, s := range w.Spikes {
		if !s.OnScreen() {
			continue
		}
		v := s.Vertices()
		d.DrawPolygon([]cp.Vector{v[0].CP(), v[1].CP(), v[2].CP()}, debugHazard)
	}
	for _, o := range w.Orbs {
		if o.OnScreen() {
			d.DrawCircle(o.Pos.CP(), o.Radius(), debugOrb)
		}
	}

	p := w.Player
	if p == nil {
		return
	}
	d.DrawBB(p.BB(), debugHitbox)
	if p.HasJumpAnchor() && p.Jump.X != common.Far {
		d.DrawSegment(p.Pos.CP(), p.Jump.CP(), debugAnchor)
		d.DrawCircle(p.Jump.CP(), 4, debugAnchor)
	}

	state := fmt.Sprintf("tick %d  y %.1f  vel.y %.1f  angle %.1f  grounded %v  flip %v  jumping %v",
		w.Tick, p.Pos.Y, p.Vel.Y, p.Angle, p.Grounded, p.GravityFlip, p.Jumping)
	ebitenutil.DebugPrintAt(screen, state, 10, 28)
}
