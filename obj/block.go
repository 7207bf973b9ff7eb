package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/geodash/geom"
)

// Block is a solid axis-aligned rectangle. Pos is its top-left corner.
// The player may rest on the face that gravity points at and dies on any
// other contact.
type Block struct {
	Pos  geom.Vector
	Size geom.Vector
}

func NewBlock(x, y, w, h float64) Block {
	return Block{Pos: geom.V(x, y), Size: geom.V(w, h)}
}

func (b *Block) Scroll(dx float64) {
	b.Pos.X -= dx
}

func (b Block) Top() float64    { return b.Pos.Y }
func (b Block) Bottom() float64 { return b.Pos.Y + b.Size.Y }
func (b Block) Left() float64   { return b.Pos.X }
func (b Block) Right() float64  { return b.Pos.X + b.Size.X }

func (b Block) Rect() geom.Rect {
	return geom.Rect{X: b.Pos.X, Y: b.Pos.Y, Width: b.Size.X, Height: b.Size.Y}
}

func (b Block) BB() cp.BB { return b.Rect().BB() }

// TrailingEdge is the x of the block's right side.
func (b Block) TrailingEdge() float64 { return b.Right() }

func (b Block) PastLeftEdge() bool { return b.TrailingEdge() <= 0 }

func (b Block) OnScreen() bool { return ScreenBB.Intersects(b.BB()) }
