package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/geodash/common"
	"github.com/milk9111/geodash/obj"
	"golang.org/x/image/font/basicfont"
)

var bannerFace = ebtext.NewGoXFace(basicfont.Face7x13)

// spriteCache keeps one image per spike size and colour.
type spriteCache struct {
	spikes map[spikeKey]*ebiten.Image
	player *ebiten.Image
}

type spikeKey struct {
	w, h int
	col  color.RGBA
}

func newSpriteCache() *spriteCache {
	return &spriteCache{spikes: make(map[spikeKey]*ebiten.Image)}
}

func (c *spriteCache) spike(w, h int, col color.Color) *ebiten.Image {
	r, g, b, a := col.RGBA()
	key := spikeKey{w: w, h: h, col: color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}}
	if img, ok := c.spikes[key]; ok {
		return img
	}
	img := triangleImage(w, h, key.col)
	c.spikes[key] = img
	return img
}

func (c *spriteCache) playerImage(size int, fill, outline color.Color) *ebiten.Image {
	if c.player != nil && c.player.Bounds().Dx() == size {
		return c.player
	}
	img := ebiten.NewImage(size, size)
	img.Fill(fill)
	vector.StrokeRect(img, 1, 1, float32(size-2), float32(size-2), 3, outline, false)
	c.player = img
	return img
}

// triangleImage builds an upward-pointing triangle with its base along the
// bottom row.
func triangleImage(w, h int, col color.RGBA) *ebiten.Image {
	w, h = max(w, 1), max(h, 1)
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	cx := float64(w) / 2
	for y := 0; y < h; y++ {
		progress := (float64(y) + 0.5) / float64(h)
		rowWidth := progress * float64(w)
		left := cx - rowWidth/2
		right := cx + rowWidth/2
		for x := 0; x < w; x++ {
			fx := float64(x) + 0.5
			if fx >= left && fx <= right {
				rgba.Set(x, y, col)
			}
		}
	}
	return ebiten.NewImageFromImage(rgba)
}

func mixColor(a, b color.Color, t float32) color.NRGBA {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	mix := func(x, y uint32) uint8 {
		return uint8(common.Lerp(float32(x>>8), float32(y>>8), t))
	}
	return color.NRGBA{R: mix(ar, br), G: mix(ag, bg), B: mix(ab, bb), A: mix(aa, ba)}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.palette.Background)

	g.drawGround(screen)
	g.drawOrbs(screen)
	g.drawBlocks(screen)
	g.drawSpikes(screen)
	g.drawPlayer(screen)

	if g.debug {
		g.drawDebug(screen)
	}
	g.drawHUD(screen)

	if g.paused() {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) drawGround(screen *ebiten.Image) {
	pal := g.palette
	floor := mixColor(pal.Ground, pal.GroundInactive, g.flipFade)
	ceiling := mixColor(pal.GroundInactive, pal.Ground, g.flipFade)

	vector.FillRect(screen, 0, common.GroundYNormal, common.BaseWidth, common.BaseHeight-common.GroundYNormal, floor, false)
	vector.FillRect(screen, 0, 0, common.BaseWidth, common.GroundYFlip, ceiling, false)
	vector.StrokeLine(screen, 0, common.GroundYNormal, common.BaseWidth, common.GroundYNormal, 2, pal.Text, false)
	vector.StrokeLine(screen, 0, common.GroundYFlip, common.BaseWidth, common.GroundYFlip, 2, pal.Text, false)
}

func (g *Game) drawBlocks(screen *ebiten.Image) {
	pal := g.palette
	for _, b := range g.world.Blocks {
		if !b.OnScreen() {
			continue
		}
		x, y := float32(b.Pos.X), float32(b.Pos.Y)
		w, h := float32(b.Size.X), float32(b.Size.Y)
		vector.FillRect(screen, x, y, w, h, pal.Block, false)
		vector.StrokeRect(screen, x, y, w, h, 2, pal.BlockOutline, false)
	}
}

func (g *Game) drawSpikes(screen *ebiten.Image) {
	pal := g.palette
	for _, s := range g.world.Spikes {
		if !s.OnScreen() {
			continue
		}
		img := g.sprites.spike(int(math.Round(s.Size.X)), int(math.Round(s.Size.Y)), pal.Spike)
		sx := s.Size.X / float64(img.Bounds().Dx())
		sy := s.Size.Y / float64(img.Bounds().Dy())

		op := &ebiten.DrawImageOptions{}
		if s.Flip {
			op.GeoM.Scale(sx, -sy)
			op.GeoM.Translate(s.Pos.X-s.Size.X/2, s.Pos.Y+s.Size.Y)
		} else {
			op.GeoM.Scale(sx, sy)
			op.GeoM.Translate(s.Pos.X-s.Size.X/2, s.Pos.Y-s.Size.Y)
		}
		screen.DrawImage(img, op)

		v := s.Vertices()
		for i := range v {
			a, b := v[i], v[(i+1)%len(v)]
			vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 2, pal.SpikeOutline, true)
		}
	}
}

func (g *Game) drawOrbs(screen *ebiten.Image) {
	pal := g.palette
	for _, o := range g.world.Orbs {
		if !o.OnScreen() {
			continue
		}
		col := pal.OrbIdle.Color
		if o.Activated {
			col = pal.OrbUsed.Color
		}
		x, y, r := float32(o.Pos.X), float32(o.Pos.Y), float32(o.Radius())
		vector.FillCircle(screen, x, y, r, col, true)
		vector.StrokeCircle(screen, x, y, r+4, 2, col, true)
	}
}

// playerRotation returns the draw rotation in radians. The sign follows
// which side of the anchor the player is on so the square leans into the
// arc on both halves of a jump.
func playerRotation(p *obj.Player) float64 {
	angle := p.Angle
	if p.Pos.X > p.Jump.X {
		angle = -angle
	}
	return common.Radians(angle)
}

func (g *Game) drawPlayer(screen *ebiten.Image) {
	p := g.world.Player
	if p == nil {
		return
	}
	pal := g.palette
	size := int(math.Round(p.Size))
	img := g.sprites.playerImage(size, pal.Player, pal.PlayerOutline)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(size)/2, -float64(size)/2)
	op.GeoM.Rotate(playerRotation(p))
	op.GeoM.Translate(p.Pos.X, p.Pos.Y)
	screen.DrawImage(img, op)

	if p.Crashed {
		box := p.Hitbox()
		vector.StrokeRect(screen, float32(box.X), float32(box.Y), float32(box.Width), float32(box.Height), 3, pal.Failure, false)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, g.status(), 10, 10)

	w := g.world
	switch {
	case w.Crashed():
		drawBanner(screen, "Failure", "press R to retry", g.palette.Failure)
	case w.Victory:
		drawBanner(screen, "Victory", "press R to play again", g.palette.Victory)
	}
}

func drawBanner(screen *ebiten.Image, title, hint string, col color.Color) {
	const scale = 8
	tw, th := ebtext.Measure(title, bannerFace, 0)
	op := &ebtext.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate((common.BaseWidth-tw*scale)/2, common.BaseHeight/2-th*scale)
	op.ColorScale.ScaleWithColor(col)
	ebtext.Draw(screen, title, bannerFace, op)

	const hintScale = 3
	hw, _ := ebtext.Measure(hint, bannerFace, 0)
	op = &ebtext.DrawOptions{}
	op.GeoM.Scale(hintScale, hintScale)
	op.GeoM.Translate((common.BaseWidth-hw*hintScale)/2, common.BaseHeight/2+20)
	op.ColorScale.ScaleWithColor(col)
	ebtext.Draw(screen, hint, bannerFace, op)
}
