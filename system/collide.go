package system

// The passes below scroll each obstacle, drop the ones that left the
// screen and resolve contact with the player. Collections are compacted
// in place so order is preserved. A crash stops the pass and keeps the
// remaining obstacles as they were.

// updateOrbs reports whether an orb launched the player this tick. At most
// one orb fires per tick.
func (w *World) updateOrbs(dx float64) bool {
	p := w.Player
	fired := false
	kept := w.Orbs[:0]
	for i := range w.Orbs {
		o := w.Orbs[i]
		o.Scroll(dx)
		if o.PastLeftEdge() {
			w.emit(EventDespawned, o.Pos)
			continue
		}
		if !fired && p.Jumping && !o.Activated && p.CheckOrbCollide(o) {
			o.Activated = true
			p.StartJump()
			fired = true
			w.emit(EventOrb, o.Pos)
		}
		kept = append(kept, o)
	}
	w.Orbs = kept
	return fired
}

func (w *World) updateSpikes(dx float64) bool {
	kept := w.Spikes[:0]
	for i := range w.Spikes {
		s := w.Spikes[i]
		s.Scroll(dx)
		if s.PastLeftEdge() {
			w.emit(EventDespawned, s.Pos)
			continue
		}
		kept = append(kept, s)
		if w.Player.CheckSpikeCrash(s) {
			w.Spikes = append(kept, w.Spikes[i+1:]...)
			w.emit(EventCrashed, w.Player.Pos)
			return true
		}
	}
	w.Spikes = kept
	return false
}

// updateBlocks lands the player on block faces unless canLand is false,
// which happens on the tick an orb fired.
func (w *World) updateBlocks(dx float64, canLand bool) (landed, crashed bool) {
	p := w.Player
	kept := w.Blocks[:0]
	for i := range w.Blocks {
		b := w.Blocks[i]
		b.Scroll(dx)
		if b.PastLeftEdge() {
			w.emit(EventDespawned, b.Pos)
			continue
		}
		kept = append(kept, b)
		if canLand {
			if y, ok := p.OnBlock(b).Y(); ok {
				w.land(y)
				landed = true
			}
		}
		if p.CheckBlockCrash(b) {
			w.Blocks = append(kept, w.Blocks[i+1:]...)
			w.emit(EventCrashed, p.Pos)
			return landed, true
		}
	}
	w.Blocks = kept
	return landed, false
}
