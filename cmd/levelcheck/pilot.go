package main

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/milk9111/geodash/obj"
	"github.com/milk9111/geodash/system"
)

// pilot decides each tick whether jump is held.
type pilot func(w *system.World) bool

func newPilot(mode string, lookahead float64) (pilot, error) {
	switch mode {
	case "auto":
		return autoPilot(lookahead), nil
	case "hold":
		return func(*system.World) bool { return true }, nil
	case "idle":
		return func(*system.World) bool { return false }, nil
	}
	return nil, fmt.Errorf("levelcheck: unknown mode %q (want auto, hold or idle)", mode)
}

// autoPilot holds jump while a spike or a block face sits within lookahead
// pixels in front of the player at a height it could hit, or while an
// unused orb overlaps the player.
func autoPilot(lookahead float64) pilot {
	return func(w *system.World) bool {
		p := w.Player
		for _, o := range w.Orbs {
			if !o.Activated && p.CheckOrbCollide(o) {
				return true
			}
		}
		for _, s := range w.Spikes {
			apex := s.Apex().Y
			if threat(p, s.Pos.X-s.Size.X/2, math.Min(s.Pos.Y, apex), math.Max(s.Pos.Y, apex), lookahead) {
				return true
			}
		}
		for _, b := range w.Blocks {
			if threat(p, b.Left(), b.Top(), b.Bottom(), lookahead) {
				return true
			}
		}
		return false
	}
}

func threat(p *obj.Player, left, top, bottom, lookahead float64) bool {
	gap := left - p.Right()
	if gap < 0 || gap > lookahead {
		return false
	}
	return top < p.Bottom() && bottom > p.Top()
}

type result struct {
	Ticks    int
	Outcome  string
	Distance float64
	Events   map[system.EventKind]int
}

// run plays the loaded level until it ends or maxTicks pass. Gravity is
// flipped just before each tick listed in flipAt (ticks count from 1).
func run(w *system.World, jump pilot, flipAt []int, dt float64, maxTicks int, onEvent func(system.Event)) result {
	res := result{Events: make(map[system.EventKind]int)}
	if w.Frozen {
		w.TogglePause()
	}
	for res.Ticks < maxTicks {
		if slices.Contains(flipAt, res.Ticks+1) {
			w.ToggleGravity()
		}
		w.SetJumping(jump(w))
		w.Update(dt)
		res.Ticks++
		for _, evt := range w.Events().Drain() {
			res.Events[evt.Kind]++
			if onEvent != nil {
				onEvent(evt)
			}
		}
		if w.Crashed() || w.Victory {
			break
		}
	}

	switch {
	case w.Victory:
		res.Outcome = "victory"
	case w.Crashed():
		res.Outcome = "crashed"
	default:
		res.Outcome = "timeout"
	}
	res.Distance = w.Distance
	return res
}

// parseTicks reads a comma separated list of tick numbers.
func parseTicks(s string) ([]int, error) {
	var ticks []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("levelcheck: bad tick %q", f)
		}
		ticks = append(ticks, n)
	}
	return ticks, nil
}
