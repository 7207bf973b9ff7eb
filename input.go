package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the intents polled once per tick.
type Input struct {
	// JumpHeld is true while any jump button is down. Holding keeps
	// jumping on every landing and fires orbs on contact.
	JumpHeld bool
	// GravityPressed is true on the frame the gravity button was pressed.
	GravityPressed bool
	// PausePressed is true on the frame the pause key was pressed.
	PausePressed bool
	// RestartPressed is true on the frame the restart key was pressed.
	RestartPressed bool
	// DebugPressed toggles the hitbox overlay.
	DebugPressed bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls keyboard, mouse and the first gamepad.
func (i *Input) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		os.Exit(0)
	}

	var gpJumpHeld, gpGravityJustPressed, gpPauseJustPressed, gpRestartJustPressed bool
	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		gid := ids[0]
		// A / cross jumps, B / circle flips gravity.
		gpJumpHeld = ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		gpGravityJustPressed = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightRight)
		gpPauseJustPressed = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight)
		gpRestartJustPressed = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterLeft)
	}

	i.JumpHeld = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		ebiten.IsKeyPressed(ebiten.KeySpace) ||
		ebiten.IsKeyPressed(ebiten.KeyUp) ||
		gpJumpHeld

	i.GravityPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) ||
		inpututil.IsKeyJustPressed(ebiten.KeyG) ||
		gpGravityJustPressed

	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape) || gpPauseJustPressed
	i.RestartPressed = inpututil.IsKeyJustPressed(ebiten.KeyR) || gpRestartJustPressed
	i.DebugPressed = inpututil.IsKeyJustPressed(ebiten.KeyF3)
}
