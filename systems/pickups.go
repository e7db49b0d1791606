package systems

import (
	"sort"

	"github.com/automoto/downpour/components"
	cfg "github.com/automoto/downpour/config"
	"github.com/automoto/downpour/logger"
	"github.com/automoto/downpour/shared/gamemath"
	"github.com/automoto/downpour/shared/tilegrid"
	"github.com/automoto/downpour/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// UpdatePickups collects every pickup and fire piece whose circle touches
// the player's box. A collected entity leaves the space and the world in
// the same update, so it can't be collected twice.
func UpdatePickups(w donburi.World) {
	playerEntry, ok := PlayerEntry(w)
	if !ok || !components.Life.Get(playerEntry).IsAlive {
		return
	}
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry).Space
	bounds := components.Player.Get(playerEntry).Bounds()

	// Broad phase: a box shaped like the player picks candidates from the
	// space's cells.
	query := resolv.NewObject(float64(bounds.Min.X), float64(bounds.Min.Y), float64(bounds.Dx()), float64(bounds.Dy()))
	space.Add(query)
	defer space.Remove(query)

	check := query.Check(0, 0, tags.ResolvPickup, tags.ResolvFirePiece)
	if check == nil {
		return
	}

	var hits []*donburi.Entry
	for _, obj := range check.Objects {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		pickup := components.Pickup.Get(entry)
		if pickup.Consumed {
			continue
		}
		if gamemath.CircleIntersectsRect(pickup.Position.X, pickup.Position.Y, pickup.Radius, bounds) {
			hits = append(hits, entry)
		}
	}

	// Cells are visited in space order; apply effects in level order.
	sort.Slice(hits, func(i, j int) bool {
		a, b := components.Pickup.Get(hits[i]).Cell, components.Pickup.Get(hits[j]).Cell
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})

	for _, entry := range hits {
		pickup := components.Pickup.Get(entry)
		pickup.Consumed = true
		space.Remove(components.Object.Get(entry).Object)

		ApplyPickup(w, playerEntry, pickup.Kind)
		Emit(w, components.Event{Kind: components.EventPickup, Pickup: pickup.Kind})
		logger.Log.Debugw("pickup collected", "kind", pickup.Kind.String(), "cell", pickup.Cell)

		w.Remove(entry.Entity())
	}
}

// ApplyPickup applies the effect of one pickup kind to the player.
func ApplyPickup(w donburi.World, player *donburi.Entry, kind tilegrid.Pickup) {
	p := components.Player.Get(player)
	life := components.Life.Get(player)
	effects := components.StatusEffects.Get(player)
	tuning := components.Tuning.Get(player)

	switch kind {
	case tilegrid.PickupSpeed:
		effects.Speed.Multiplier += tuning.GroundSpeedMultiplierStep
		effects.Speed.AirMultiplier += tuning.AirSpeedMultiplierStep
		effects.Speed.Start(cfg.Status.SpeedBoostDuration)
	case tilegrid.PickupJumpBoost:
		effects.Jump.Multiplier += cfg.Status.JumpBoostStep
		effects.Jump.Start(cfg.Status.JumpBoostDuration)
	case tilegrid.PickupInvulnerability:
		effects.Invulnerability.Start(cfg.Status.InvulnerabilityDuration)
	case tilegrid.PickupHealth:
		life.Life = min(life.Life+cfg.Pickup.HealthBonus, life.MaxLife)
	case tilegrid.PickupShield:
		life.ShieldLife = cfg.Player.ShieldMax
	case tilegrid.PickupControlInvert:
		p.ControlsInverted = !p.ControlsInverted
	case tilegrid.PickupSuit:
		p.HasSuit = true
	case tilegrid.PickupFirePiece:
		if level := CurrentLevel(w); level != nil {
			level.FirePiecesCollected++
		}
	default:
		panic("systems: unknown pickup kind " + kind.String())
	}
}

// UpdatePickupTweens advances the bob of every remaining pickup.
func UpdatePickupTweens(w donburi.World) {
	dt := float32(deltaTime(w))
	components.Tween.Each(w, func(e *donburi.Entry) {
		tw := components.Tween.Get(e)
		if tw.Sequence == nil {
			return
		}
		offset, _, done := tw.Update(dt)
		if done {
			tw.Reset()
		}
		components.Pickup.Get(e).BobOffset = float64(offset)
	})
}
