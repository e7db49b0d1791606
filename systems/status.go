package systems

import (
	"github.com/automoto/downpour/components"
	"github.com/yohamta/donburi"
)

// UpdateStatusEffects advances the active power-up timers. An effect that
// has run for its full duration is switched off and its multipliers return
// to 1.
func UpdateStatusEffects(w donburi.World) {
	dt := deltaTime(w)
	components.StatusEffects.Each(w, func(e *donburi.Entry) {
		s := components.StatusEffects.Get(e)
		advanceEffect(&s.Speed, dt)
		advanceEffect(&s.Jump, dt)
		advanceEffect(&s.Invulnerability, dt)
	})
}

func advanceEffect(s *components.StatusEffect, dt float64) {
	if !s.Active {
		return
	}
	s.Elapsed += dt
	if s.Elapsed >= s.Duration {
		s.Reset()
	}
}
