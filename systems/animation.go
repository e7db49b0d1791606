package systems

import (
	"math"

	"github.com/automoto/downpour/components"
	cfg "github.com/automoto/downpour/config"
	"github.com/yohamta/donburi"
)

// UpdateAnimation picks the player's animation selector and raises
// footstep events at a fixed stride while running on the ground.
func UpdateAnimation(w donburi.World) {
	components.Animation.Each(w, func(e *donburi.Entry) {
		p := components.Player.Get(e)
		life := components.Life.Get(e)
		anim := components.Animation.Get(e)

		anim.Selector = SelectAnimation(p, life, components.StatusEffects.Get(e))
		if p.Velocity.X > 0 {
			anim.Facing = 1
		} else if p.Velocity.X < 0 {
			anim.Facing = -1
		}

		if !anim.Selector.Moving || !p.IsOnGround || !life.IsAlive {
			anim.StrideDistance = 0
			return
		}
		anim.StrideDistance += math.Abs(p.Position.X - p.FrameStart.X)
		if anim.StrideDistance >= cfg.Animation.FootstepStride {
			anim.StrideDistance -= cfg.Animation.FootstepStride
			Emit(w, components.Event{Kind: components.EventFootstep})
		}
	})
}

// SelectAnimation returns the selector for the player's current state.
func SelectAnimation(p *components.PlayerData, life *components.LifeData, effects *components.StatusEffectsData) components.AnimationSelector {
	return components.AnimationSelector{
		Moving:       life.IsAlive && math.Abs(p.Velocity.X) > cfg.Animation.MoveThreshold,
		Suited:       life.ShieldLife > 0 || p.HasSuit,
		Invulnerable: effects.Invulnerable(),
	}
}
