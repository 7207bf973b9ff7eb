package obj

import (
	"testing"

	"github.com/milk9111/geodash/geom"
)

func TestSpikeVertices(t *testing.T) {
	up := NewSpike(600, 918, 100, 60, false)
	want := [3]geom.Vector{geom.V(550, 918), geom.V(650, 918), geom.V(600, 858)}
	if got := up.Vertices(); got != want {
		t.Fatalf("upright: expected %v, got %v", want, got)
	}

	down := NewSpike(600, 162, 100, 60, true)
	if got := down.Apex(); got != geom.V(600, 222) {
		t.Fatalf("flipped apex: got %v", got)
	}

	bb := down.BB()
	if bb.L != 550 || bb.R != 650 || bb.B != 162 || bb.T != 222 {
		t.Fatalf("flipped bounds: got %+v", bb)
	}
}

func TestSpikeScrollMovesVertices(t *testing.T) {
	s := NewSpike(600, 918, 100, 60, false)
	s.Scroll(25)
	v := s.Vertices()
	if v[0].X != 525 || v[1].X != 625 || v[2].X != 575 {
		t.Fatalf("vertices did not follow scroll: %v", v)
	}
	if v[0].Y != 918 || v[2].Y != 858 {
		t.Fatalf("scroll changed vertical geometry: %v", v)
	}
}

func TestPastLeftEdge(t *testing.T) {
	cases := []struct {
		name string
		past func(x float64) bool
		size float64
	}{
		{"block", func(x float64) bool { return NewBlock(x, 800, 100, 20).PastLeftEdge() }, 100},
		{"spike", func(x float64) bool { return NewSpike(x, 918, 100, 60, false).PastLeftEdge() }, 100},
		{"orb", func(x float64) bool { return NewOrb(x, 700, 60).PastLeftEdge() }, 60},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if !c.past(-c.size) {
				t.Fatalf("expected removal at x=%v", -c.size)
			}
			if c.past(10) {
				t.Fatalf("visible entity reported past the edge")
			}
		})
	}

	if NewBlock(-99, 800, 100, 20).PastLeftEdge() {
		t.Fatalf("block with 1px still visible reported past the edge")
	}
}

func TestOnScreen(t *testing.T) {
	cases := []struct {
		name string
		on   bool
		want bool
	}{
		{"block_visible", NewBlock(1900, 800, 100, 20).OnScreen(), true},
		{"block_ahead", NewBlock(2000, 800, 100, 20).OnScreen(), false},
		{"spike_visible", NewSpike(10, 918, 100, 60, false).OnScreen(), true},
		{"spike_behind", NewSpike(-100, 918, 100, 60, false).OnScreen(), false},
		{"orb_visible", NewOrb(960, 540, 60).OnScreen(), true},
		{"orb_ahead", NewOrb(3000, 540, 60).OnScreen(), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.on != c.want {
				t.Fatalf("expected %v, got %v", c.want, c.on)
			}
		})
	}
}

func TestSurfaceString(t *testing.T) {
	if got := OnSurface(775).String(); got != "OnSurface(775)" {
		t.Fatalf("unexpected %q", got)
	}
	if got := NotOnSurface().String(); got != "NotOnSurface" {
		t.Fatalf("unexpected %q", got)
	}
}
