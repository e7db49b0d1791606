package factory

import (
	"github.com/automoto/downpour/archetypes"
	"github.com/automoto/downpour/components"
	cfg "github.com/automoto/downpour/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the player with full life at pos (bottom centre).
func CreatePlayer(w donburi.World, pos math.Vec2) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	components.Player.SetValue(player, components.PlayerData{
		Position:       pos,
		FrameStart:     pos,
		PreviousBottom: pos.Y,
	})
	components.Life.SetValue(player, components.LifeData{
		Life:    cfg.Player.Life,
		MaxLife: cfg.Player.MaxLife,
		IsAlive: true,
	})
	components.StatusEffects.SetValue(player, components.NewStatusEffects())
	components.Tuning.SetValue(player, components.NewTuning())
	components.Animation.SetValue(player, components.AnimationData{Facing: 1})

	return player
}

// ResetPlayer places an existing player at pos for a fresh attempt. Life is
// kept; kinematic state, shield, suit, inverted controls and status effects
// are cleared.
func ResetPlayer(player *donburi.Entry, pos math.Vec2) {
	p := components.Player.Get(player)
	*p = components.PlayerData{
		Position:       pos,
		FrameStart:     pos,
		PreviousBottom: pos.Y,
	}

	life := components.Life.Get(player)
	life.ShieldLife = 0
	life.IsAlive = true

	components.StatusEffects.SetValue(player, components.NewStatusEffects())
	components.Animation.SetValue(player, components.AnimationData{Facing: 1})
}
