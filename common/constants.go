package common

import "math"

const (
	BaseWidth  = 1920
	BaseHeight = 1080

	TPS = 60
)

// Ground planes sit 15% in from the bottom and top of the screen.
const (
	GroundYNormal = BaseHeight - BaseHeight*0.15
	GroundYFlip   = BaseHeight * 0.15
)

const (
	PlayerSize = 50
	// PlayerSpeed is horizontal world scroll in pixels per second.
	PlayerSpeed = 10.386 * TPS
	// Gravity is added to vertical velocity once per tick.
	Gravity = 0.575 * TPS
	// JumpOffset places a new jump anchor this far ahead of the player.
	JumpOffset = 250
	// PlayerStartX is the fixed on-screen x of the player.
	PlayerStartX = BaseWidth * 0.2
)

const DefaultLevel = "level_1"

// Far is used for anchors that should never tilt the player.
const Far = math.MaxFloat64
