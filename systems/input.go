package systems

import (
	"math"

	"github.com/automoto/downpour/components"
	cfg "github.com/automoto/downpour/config"
	"github.com/automoto/downpour/shared/gamemath"
	"github.com/yohamta/donburi"
)

// UpdatePlayerInput decodes the frame's input snapshot into the player's
// movement scalar and jump trigger.
// Must run AFTER UpdateStatusEffects and BEFORE UpdatePhysics.
func UpdatePlayerInput(w donburi.World) {
	in := currentInput(w)
	components.Player.Each(w, func(e *donburi.Entry) {
		p := components.Player.Get(e)
		effects := components.StatusEffects.Get(e)

		multiplier := effects.Speed.Multiplier
		if !p.IsOnGround {
			multiplier = effects.Speed.AirMultiplier
		}
		p.Movement = DecodeMovement(in, p.ControlsInverted) * multiplier

		decodeJump(p, in.Jump || in.Up)
	})
}

// DecodeMovement turns raw input into a horizontal direction in [-1, 1].
// Stick deflections inside the dead zone are ignored; a held direction key
// overrides the stick at full speed, left taking precedence.
func DecodeMovement(in components.InputSnapshot, inverted bool) float64 {
	movement := gamemath.Clamp(in.AxisX*cfg.Input.StickScale, -1, 1)
	if math.Abs(movement) < cfg.Input.AnalogDeadzone {
		movement = 0
	}

	switch {
	case in.Left:
		movement = -1
	case in.Right:
		movement = 1
	}

	if inverted {
		movement = -movement
	}
	return movement
}

// decodeJump raises IsJumping on a fresh press only. Holding the button
// never retriggers; it is released and pressed again first.
func decodeJump(p *components.PlayerData, held bool) {
	p.IsJumping = false
	p.JumpHeld = held
	if !p.WasJumping && !p.JumpPressed {
		p.IsJumping = held
		p.JumpPressed = held
		return
	}
	p.JumpPressed = held
}
