package obj

import (
	"math"
	"testing"

	"github.com/milk9111/geodash/common"
	"github.com/milk9111/geodash/geom"
)

func newTestPlayer(x, y float64) *Player {
	p := NewPlayer(DefaultPlayerConfig())
	p.Pos = geom.V(x, y)
	return p
}

func flipped(p *Player) *Player {
	p.FlipGravity()
	return p
}

func wantSurface(t *testing.T, got Surface, wantY float64, wantOn bool) {
	t.Helper()
	y, on := got.Y()
	if on != wantOn {
		t.Fatalf("expected on=%v, got %v", wantOn, got)
	}
	if on && y != wantY {
		t.Fatalf("expected y=%v, got %v", wantY, y)
	}
}

func TestNewPlayerRestsOnFloor(t *testing.T) {
	p := NewPlayer(DefaultPlayerConfig())
	if p.Pos != geom.V(384, 893) {
		t.Fatalf("unexpected spawn %v", p.Pos)
	}
	if !p.Grounded || p.HasJumpAnchor() {
		t.Fatalf("new player should be grounded without an anchor")
	}
	if p.Vel.X != common.PlayerSpeed || p.Acc.Y != common.Gravity {
		t.Fatalf("unexpected kinematics vel=%v acc=%v", p.Vel, p.Acc)
	}
}

func TestOnGround(t *testing.T) {
	cases := []struct {
		name   string
		p      *Player
		wantY  float64
		wantOn bool
	}{
		{"above_floor", newTestPlayer(384, 880), 0, false},
		{"touching_floor", newTestPlayer(384, 893), 893, true},
		{"sunk_into_floor", newTestPlayer(384, 900), 893, true},
		{"flipped_below_ceiling", flipped(newTestPlayer(384, 200)), 0, false},
		{"flipped_touching_ceiling", flipped(newTestPlayer(384, 180)), 187, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			wantSurface(t, c.p.OnGround(), c.wantY, c.wantOn)
		})
	}
}

func TestOnGroundIdempotent(t *testing.T) {
	p := newTestPlayer(384, 900)
	for i := 0; i < 3; i++ {
		y, on := p.OnGround().Y()
		if !on {
			t.Fatalf("expected ground contact on pass %d", i)
		}
		p.Land(y)
		if p.Pos.Y != 893 {
			t.Fatalf("pass %d moved player to %v", i, p.Pos.Y)
		}
	}
}

func TestOnBlock(t *testing.T) {
	block := NewBlock(500, 800, 100, 20)

	cases := []struct {
		name   string
		p      *Player
		wantY  float64
		wantOn bool
	}{
		{"descending_onto_top", newTestPlayer(520, 790), 775, true},
		{"resting_on_top", newTestPlayer(520, 775), 0, false},
		{"left_of_block", newTestPlayer(460, 790), 0, false},
		{"touching_left_edge", newTestPlayer(475, 790), 0, false},
		{"right_of_block", newTestPlayer(630, 790), 0, false},
		{"flipped_rising_into_bottom", flipped(newTestPlayer(520, 830)), 845, true},
		{"flipped_ignores_top", flipped(newTestPlayer(520, 790)), 0, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			wantSurface(t, c.p.OnBlock(block), c.wantY, c.wantOn)
		})
	}
}

func TestOnBlockIdempotent(t *testing.T) {
	block := NewBlock(500, 800, 100, 20)
	p := newTestPlayer(520, 790)

	y, on := p.OnBlock(block).Y()
	if !on {
		t.Fatalf("expected landing")
	}
	p.Land(y)
	for i := 0; i < 3; i++ {
		if _, on := p.OnBlock(block).Y(); on {
			t.Fatalf("resting player re-triggered landing on pass %d", i)
		}
		if p.Pos.Y != 775 {
			t.Fatalf("resting player moved to %v", p.Pos.Y)
		}
	}
}

func TestCheckBlockCrash(t *testing.T) {
	block := NewBlock(500, 800, 100, 20)

	cases := []struct {
		name string
		p    *Player
		want bool
	}{
		{"side_hit", newTestPlayer(476, 810), true},
		{"side_touch_edge", newTestPlayer(475, 810), true},
		{"hit_from_below", newTestPlayer(550, 835), true},
		{"resting_on_top", newTestPlayer(550, 775), false},
		{"clear_left", newTestPlayer(470, 810), false},
		{"far_below", newTestPlayer(550, 893), false},
		{"flipped_side_hit", flipped(newTestPlayer(476, 790)), true},
		{"flipped_resting_under", flipped(newTestPlayer(550, 845)), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.p.CheckBlockCrash(block); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
			if c.p.Crashed != c.want {
				t.Fatalf("Crashed flag %v does not match result %v", c.p.Crashed, c.want)
			}
		})
	}
}

func TestCheckBlockCrashNeverClears(t *testing.T) {
	p := newTestPlayer(550, 893)
	p.Crashed = true
	if p.CheckBlockCrash(NewBlock(500, 800, 100, 20)) {
		t.Fatalf("expected no hit")
	}
	if !p.Crashed {
		t.Fatalf("crash flag was cleared")
	}
}

func TestCheckSpikeCrash(t *testing.T) {
	spike := NewSpike(600, 918, 100, 60, false)

	cases := []struct {
		name string
		p    *Player
		want bool
	}{
		{"over_apex", newTestPlayer(600, 850), true},
		{"into_slope", newTestPlayer(560, 893), true},
		{"above", newTestPlayer(600, 800), false},
		{"right", newTestPlayer(700, 893), false},
		{"left_on_floor", newTestPlayer(500, 893), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.p.CheckSpikeCrash(spike); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
			if c.p.Crashed != c.want {
				t.Fatalf("Crashed flag %v does not match result %v", c.p.Crashed, c.want)
			}
		})
	}
}

func TestCheckSpikeCrashCornerInside(t *testing.T) {
	// A tiny player fully inside a large spike touches no edge; only the
	// containment test catches it.
	p := NewPlayer(PlayerConfig{Size: 2, Speed: 1, Gravity: 1, JumpOffset: 1, StartX: 600})
	p.Pos = geom.V(600, 900)
	if !p.CheckSpikeCrash(NewSpike(600, 918, 200, 120, false)) {
		t.Fatalf("expected containment crash")
	}
}

func TestCheckOrbCollide(t *testing.T) {
	orb := NewOrb(600, 700, 60)

	cases := []struct {
		name string
		p    *Player
		want bool
	}{
		{"side_overlap", newTestPlayer(560, 700), true},
		{"side_gap", newTestPlayer(540, 700), false},
		{"corner_overlap", newTestPlayer(555, 655), true},
		{"corner_gap_inside_bounds", newTestPlayer(550, 650), false},
		{"centered", newTestPlayer(600, 700), true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.p.CheckOrbCollide(orb); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestStartJump(t *testing.T) {
	p := NewPlayer(DefaultPlayerConfig())
	p.StartJump()
	if p.Grounded {
		t.Fatalf("jump should leave the ground")
	}
	if p.Jump != geom.V(634, 893) {
		t.Fatalf("unexpected anchor %v", p.Jump)
	}
	if want := -common.Gravity * common.Gravity; p.Vel.Y != want {
		t.Fatalf("expected vel.y %v, got %v", want, p.Vel.Y)
	}

	f := flipped(NewPlayer(DefaultPlayerConfig()))
	f.StartJump()
	if want := common.Gravity * common.Gravity; f.Vel.Y != want {
		t.Fatalf("flipped: expected vel.y %v, got %v", want, f.Vel.Y)
	}
}

func TestUpdateAngle(t *testing.T) {
	p := newTestPlayer(384, 843)
	p.Jump = geom.V(634, 893)
	p.UpdateAngle()
	want := common.Degrees(math.Asin(50 / math.Hypot(250, 50)))
	if math.Abs(p.Angle-want) > 1e-9 {
		t.Fatalf("expected %v, got %v", want, p.Angle)
	}

	p.GravityFlip = true
	p.UpdateAngle()
	if math.Abs(p.Angle-want) > 1e-9 {
		t.Fatalf("flipped: expected %v, got %v", want, p.Angle)
	}

	p.Jump = p.Pos
	p.Angle = 12
	p.UpdateAngle()
	if p.Angle != 12 {
		t.Fatalf("coincident anchor changed angle to %v", p.Angle)
	}
}

func TestFallStaysLevel(t *testing.T) {
	p := NewPlayer(DefaultPlayerConfig())
	p.Fall()
	if p.Grounded || !p.HasJumpAnchor() {
		t.Fatalf("falling player must be airborne with an anchor")
	}
	p.Pos.Y += 40
	p.UpdateAngle()
	if math.Abs(p.Angle) > 1e-9 {
		t.Fatalf("expected level angle, got %v", p.Angle)
	}
}

func TestFlipGravity(t *testing.T) {
	p := NewPlayer(DefaultPlayerConfig())
	p.FlipGravity()
	if !p.GravityFlip || p.Acc.Y != -common.Gravity {
		t.Fatalf("gravity not flipped: flip=%v acc=%v", p.GravityFlip, p.Acc)
	}
	if p.Grounded || !p.HasJumpAnchor() {
		t.Fatalf("flipped player must be airborne with an anchor")
	}
	if p.Jump.Y != common.GroundYFlip {
		t.Fatalf("anchor should target the ceiling, got %v", p.Jump)
	}
	if p.GroundPlane() != common.GroundYFlip {
		t.Fatalf("unexpected ground plane %v", p.GroundPlane())
	}
}

func TestScrollAnchor(t *testing.T) {
	p := NewPlayer(DefaultPlayerConfig())
	p.ScrollAnchor(10)
	if p.Jump != NoJump {
		t.Fatalf("sentinel anchor moved to %v", p.Jump)
	}
	p.StartJump()
	p.ScrollAnchor(10)
	if p.Jump.X != 624 {
		t.Fatalf("expected anchor x 624, got %v", p.Jump.X)
	}
}
