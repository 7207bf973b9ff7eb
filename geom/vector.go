package geom

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Vector is a 2D point or displacement in screen space (y grows downward).
type Vector struct {
	X, Y float64
}

func V(x, y float64) Vector { return Vector{X: x, Y: y} }

func FromCP(c cp.Vector) Vector { return Vector{X: c.X, Y: c.Y} }

func (v Vector) Add(o Vector) Vector { return Vector{v.X + o.X, v.Y + o.Y} }

func (v Vector) Sub(o Vector) Vector { return Vector{v.X - o.X, v.Y - o.Y} }

func (v Vector) Scale(f float64) Vector { return Vector{v.X * f, v.Y * f} }

func (v Vector) Magnitude() float64 { return math.Hypot(v.X, v.Y) }

// Dist is the Euclidean distance between two points.
func (v Vector) Dist(o Vector) float64 { return v.Sub(o).Magnitude() }

func (v Vector) CP() cp.Vector { return cp.Vector{X: v.X, Y: v.Y} }

// Normalize returns the unit vector in v's direction. The zero vector
// normalizes to itself.
func (v Vector) Normalize() Vector {
	m := v.Magnitude()
	if m == 0 {
		return Vector{}
	}
	return Vector{v.X / m, v.Y / m}
}
