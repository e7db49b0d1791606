package systems

import (
	"github.com/automoto/downpour/components"
	"github.com/automoto/downpour/shared/gamemath"
	"github.com/yohamta/donburi"
)

// UpdatePhysics integrates the player's velocity and position for one
// update. Positions are quantized to whole pixels; collision runs next.
func UpdatePhysics(w donburi.World) {
	dt := deltaTime(w)
	components.Player.Each(w, func(e *donburi.Entry) {
		p := components.Player.Get(e)
		t := components.Tuning.Get(e)
		effects := components.StatusEffects.Get(e)

		p.FrameStart = p.Position

		p.Velocity.X += p.Movement * t.MoveAcceleration * dt
		p.Velocity.Y = gamemath.Clamp(p.Velocity.Y+t.GravityAcceleration*dt, t.JumpLaunchVelocity, t.MaxFallSpeed)

		var started bool
		p.Velocity.Y, started = DoJump(p, t, effects.Jump.Multiplier, p.Velocity.Y, dt)
		if started {
			Emit(w, components.Event{Kind: components.EventJump})
		}

		p.Velocity.X = gamemath.ApplyDrag(p.Velocity.X, p.IsOnGround, t.GroundDragFactor, t.AirDragFactor)
		p.Velocity.X = gamemath.ClampSpeed(p.Velocity.X, t.MaxMoveSpeed)

		p.Position.X = gamemath.QuantizePosition(p.Position.X + p.Velocity.X*dt)
		p.Position.Y = gamemath.QuantizePosition(p.Position.Y + p.Velocity.Y*dt)
	})
}

// DoJump runs the jump phase machine and returns the vertical velocity for
// this update, and whether a new jump left the ground.
//
// A jump starts on a fresh press while grounded. During the ascent the
// vertical velocity is replaced by the launch curve, scaled by the jump
// boost. The ascent lasts MaxJumpTime while the button is held and ends
// early on release or when collision cancels it.
func DoJump(p *components.PlayerData, t *components.TuningData, boost, vy, dt float64) (float64, bool) {
	if !p.IsJumping && !p.WasJumping {
		p.JumpTime = 0
		p.JumpPhase = components.JumpIdle
		return vy, false
	}

	started := false
	if p.IsJumping && p.IsOnGround && p.JumpPhase != components.JumpAscending {
		p.JumpPhase = components.JumpAscending
		p.JumpTime = 0
		started = true
	}

	if p.JumpPhase == components.JumpAscending {
		if t.MaxJumpTime > 0 && p.JumpTime < t.MaxJumpTime {
			vy = gamemath.JumpCurve(t.JumpLaunchVelocity, p.JumpTime, t.MaxJumpTime, t.JumpControlPower) * boost
			p.JumpTime += dt
		} else {
			p.JumpPhase = components.JumpApex
			p.JumpTime = 0
		}
	}

	p.WasJumping = p.IsJumping || (p.JumpPhase == components.JumpAscending && p.JumpHeld)
	return vy, started && p.JumpPhase == components.JumpAscending
}
