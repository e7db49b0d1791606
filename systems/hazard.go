package systems

import (
	"github.com/automoto/downpour/components"
	cfg "github.com/automoto/downpour/config"
	"github.com/automoto/downpour/logger"
	"github.com/yohamta/donburi"
)

// UpdateHazards applies the damage of the hazards touched during collision.
// Must run AFTER UpdateCollisions.
func UpdateHazards(w donburi.World) {
	level := CurrentLevel(w)
	if level == nil {
		return
	}
	components.Player.Each(w, func(e *donburi.Entry) {
		p := components.Player.Get(e)
		life := components.Life.Get(e)
		if !life.IsAlive {
			return
		}
		if components.StatusEffects.Get(e).Invulnerable() || cfg.Debug.Invulnerable {
			return
		}

		h := components.Tuning.Get(e).Hazard
		damage := HazardDamage(h, p.Hazards.Rain, p.Hazards.Water, p.HasSuit, level.Rain.Level)
		if damage <= 0 {
			return
		}
		if ApplyDamage(life, damage) {
			KillPlayer(w, e, "hazard")
		}
	})
}

// HazardDamage is the damage for one update: rain scales with the rain
// level and water is ignored while wearing the suit.
func HazardDamage(h cfg.HazardConfig, rain, water, suited bool, rainLevel int) float64 {
	damage := 0.0
	if rain {
		damage += float64(rainLevel) * h.RainDamage
	}
	if water && !suited {
		damage += h.WaterDamage
	}
	return damage
}

// ApplyDamage takes damage from the shield first. Damage beyond what the
// shield holds spills into life and the shield stays at zero. It reports
// whether life ran out.
func ApplyDamage(life *components.LifeData, damage float64) bool {
	if life.ShieldLife > 0 {
		life.ShieldLife -= damage
		if life.ShieldLife < 0 {
			life.Life += life.ShieldLife
			life.ShieldLife = 0
		}
	} else {
		life.Life -= damage
	}
	return life.Life <= 0
}

// KillPlayer marks the player dead. It does nothing for a player that is
// already dead, so death is reported once.
func KillPlayer(w donburi.World, e *donburi.Entry, cause string) {
	life := components.Life.Get(e)
	if !life.IsAlive {
		return
	}
	life.IsAlive = false

	p := components.Player.Get(e)
	p.Movement = 0
	p.IsJumping = false
	p.JumpHeld = false

	Emit(w, components.Event{Kind: components.EventDeath})
	logger.Log.Infow("player died", "cause", cause, "life", life.Life)
}
