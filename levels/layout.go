package levels

import "github.com/milk9111/geodash/obj"

// Layout is the obstacle set of a level, in file order.
type Layout struct {
	Blocks []obj.Block
	Spikes []obj.Spike
	Orbs   []obj.Orb
}

// Len returns the total number of obstacles.
func (l *Layout) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Blocks) + len(l.Spikes) + len(l.Orbs)
}
