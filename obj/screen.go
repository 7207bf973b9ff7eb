package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/geodash/common"
)

// ScreenBB is the visible playfield. Entities whose bounds miss it are
// culled from drawing.
var ScreenBB = cp.BB{L: 0, B: 0, R: common.BaseWidth, T: common.BaseHeight}
