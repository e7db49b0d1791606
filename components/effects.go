package components

import "github.com/yohamta/donburi"

// StatusEffect is a timed modifier. Multipliers are 1 while inactive.
type StatusEffect struct {
	Active        bool
	Elapsed       float64 // seconds since the effect was last (re)started
	Duration      float64 // seconds
	Multiplier    float64
	AirMultiplier float64 // speed boost only
}

// Start activates the effect and restarts its timer.
func (s *StatusEffect) Start(duration float64) {
	s.Active = true
	s.Elapsed = 0
	s.Duration = duration
}

// Reset deactivates the effect and returns its multipliers to 1.
func (s *StatusEffect) Reset() {
	*s = StatusEffect{Multiplier: 1, AirMultiplier: 1}
}

// StatusEffectsData holds the player's timed power-up effects.
type StatusEffectsData struct {
	Speed           StatusEffect
	Jump            StatusEffect
	Invulnerability StatusEffect
}

// NewStatusEffects returns a set of inactive effects.
func NewStatusEffects() StatusEffectsData {
	var s StatusEffectsData
	s.Speed.Reset()
	s.Jump.Reset()
	s.Invulnerability.Reset()
	return s
}

func (s *StatusEffectsData) Invulnerable() bool {
	return s.Invulnerability.Active
}

var StatusEffects = donburi.NewComponentType[StatusEffectsData]()
