package system

import (
	"fmt"

	"github.com/milk9111/geodash/geom"
	"github.com/milk9111/geodash/levels"
	"github.com/milk9111/geodash/obj"
	"github.com/milk9111/geodash/prefabs"
)

// LevelSource resolves a level name to its obstacles.
type LevelSource interface {
	Load(name string) (*levels.Layout, error)
}

// World owns the player, the obstacle collections and the run state of
// one level. It is driven by Update from a single goroutine.
type World struct {
	Player *obj.Player
	Blocks []obj.Block
	Spikes []obj.Spike
	Orbs   []obj.Orb

	// Attempts counts successful level initialisations.
	Attempts int
	Victory  bool
	// Frozen halts Update. Set on load, on victory and by pause.
	Frozen bool
	Tick   int
	// Distance is how far the world has scrolled since the level loaded.
	Distance float64

	src    LevelSource
	tuning prefabs.PhysicsSpec
	level  string
	events EventQueue
}

func NewWorld(src LevelSource, tuning prefabs.PhysicsSpec) *World {
	return &World{
		src:    src,
		tuning: tuning.WithDefaults(),
	}
}

// InitializeLevel loads name and resets the run. On error the world is
// left as it was.
func (w *World) InitializeLevel(name string) error {
	if w == nil || w.src == nil {
		return fmt.Errorf("system: world has no level source")
	}
	lay, err := w.src.Load(name)
	if err != nil {
		return fmt.Errorf("system: load level %s: %w", name, err)
	}

	w.Player = obj.NewPlayer(w.tuning.PlayerConfig())
	w.spawn(lay)
	w.level = name
	w.Frozen = true
	w.Victory = false
	w.Attempts++
	w.Tick = 0
	w.Distance = 0
	w.emit(EventLevelLoaded, w.Player.Pos)
	return nil
}

// Restart reloads the current level.
func (w *World) Restart() error {
	return w.InitializeLevel(w.level)
}

// Level returns the name of the loaded level.
func (w *World) Level() string { return w.level }

func (w *World) Events() *EventQueue { return &w.events }

// Crashed reports whether the run ended on an obstacle.
func (w *World) Crashed() bool {
	return w.Player != nil && w.Player.Crashed
}

// SetJumping records whether jump is held. Ignored while frozen.
func (w *World) SetJumping(held bool) {
	if w.Player == nil || w.Frozen {
		return
	}
	w.Player.Jumping = held
}

// ToggleGravity flips gravity unless the world is frozen or crashed.
func (w *World) ToggleGravity() bool {
	if w.Player == nil || w.Frozen || w.Player.Crashed {
		return false
	}
	w.Player.FlipGravity()
	w.emit(EventGravity, w.Player.Pos)
	return true
}

// TogglePause freezes or resumes the run. A crashed or won run stays
// frozen until it is restarted.
func (w *World) TogglePause() bool {
	if w.Player == nil || w.Player.Crashed || w.Victory {
		return false
	}
	w.Frozen = !w.Frozen
	return true
}

// Update advances the simulation by dt seconds.
func (w *World) Update(dt float64) {
	if w == nil || w.Player == nil || w.Frozen || w.Player.Crashed {
		return
	}
	w.Tick++
	p := w.Player
	wasGrounded := p.Grounded

	p.Vel.Y += p.Acc.Y
	p.Pos.Y += p.Vel.Y * dt

	travel := p.Vel.X * dt
	w.Distance += travel
	p.ScrollAnchor(travel)

	if !p.Grounded {
		p.UpdateAngle()
	}

	supported := false
	if y, ok := p.OnGround().Y(); ok {
		w.land(y)
		supported = true
	}

	orbFired := w.updateOrbs(travel)

	if w.updateSpikes(travel) {
		return
	}

	landed, crashed := w.updateBlocks(travel, !orbFired)
	if crashed {
		return
	}
	supported = supported || landed

	if wasGrounded && !supported && p.Grounded {
		p.Fall()
	}

	if p.Grounded && p.Jumping && !orbFired {
		p.StartJump()
		w.emit(EventJumped, p.Pos)
	}

	if len(w.Blocks) == 0 && len(w.Spikes) == 0 && len(w.Orbs) == 0 {
		w.Victory = true
		w.Frozen = true
		w.emit(EventVictory, p.Pos)
	}
}

func (w *World) land(y float64) {
	airborne := !w.Player.Grounded
	w.Player.Land(y)
	if airborne {
		w.emit(EventLanded, w.Player.Pos)
	}
}

func (w *World) emit(kind EventKind, pos geom.Vector) {
	w.events.Push(Event{Kind: kind, Tick: w.Tick, Pos: pos})
}
