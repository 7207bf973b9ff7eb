package system

import (
	"github.com/milk9111/geodash/levels"
	"github.com/milk9111/geodash/obj"
)

// spawn copies the layout into the world so a restart starts from the
// untouched level.
func (w *World) spawn(lay *levels.Layout) {
	if lay == nil {
		lay = &levels.Layout{}
	}
	w.Blocks = append(make([]obj.Block, 0, len(lay.Blocks)), lay.Blocks...)
	w.Spikes = append(make([]obj.Spike, 0, len(lay.Spikes)), lay.Spikes...)
	w.Orbs = append(make([]obj.Orb, 0, len(lay.Orbs)), lay.Orbs...)
}
