package systems

import (
	"testing"

	"github.com/automoto/downpour/components"
	cfg "github.com/automoto/downpour/config"
	"github.com/automoto/downpour/shared/tilegrid"
	"github.com/yohamta/donburi"
)

func TestSpeedBoostExpires(t *testing.T) {
	prev := cfg.Status.SpeedBoostDuration
	cfg.Status.SpeedBoostDuration = 5
	defer func() { cfg.Status.SpeedBoostDuration = prev }()

	grid := buildGrid(t, nil, "S..X", "####")
	w, player := newTestWorld(t, grid)
	ApplyPickup(w, player, tilegrid.PickupSpeed)

	effects := components.StatusEffects.Get(player)
	boostStep := components.Tuning.Get(player).GroundSpeedMultiplierStep
	if !effects.Speed.Active || effects.Speed.Multiplier != 1+boostStep {
		t.Fatalf("Expected an active boost of %v, got %+v", 1+boostStep, effects.Speed)
	}

	// 0.25s steps land exactly on the 5s duration.
	const dt = 0.25
	for i := 1; i < 20; i++ {
		runStatus(w, dt)
		if !effects.Speed.Active || effects.Speed.Multiplier != 1+boostStep {
			t.Fatalf("Expected the boost to hold at %vs, got %+v", float64(i)*dt, effects.Speed)
		}
	}
	runStatus(w, dt)
	if effects.Speed.Active || effects.Speed.Multiplier != 1 || effects.Speed.AirMultiplier != 1 {
		t.Errorf("Expected the boost to end at 5s, got %+v", effects.Speed)
	}
}

func TestRecollectRestartsTimer(t *testing.T) {
	grid := buildGrid(t, nil, "S..X", "####")
	w, player := newTestWorld(t, grid)
	effects := components.StatusEffects.Get(player)

	ApplyPickup(w, player, tilegrid.PickupJumpBoost)
	runStatus(w, cfg.Status.JumpBoostDuration-0.5)
	ApplyPickup(w, player, tilegrid.PickupJumpBoost)
	runStatus(w, 1)

	if !effects.Jump.Active {
		t.Fatal("Expected the second pickup to restart the timer")
	}
	if want := 1 + 2*cfg.Status.JumpBoostStep; effects.Jump.Multiplier != want {
		t.Errorf("Expected stacked multiplier %v, got %v", want, effects.Jump.Multiplier)
	}
}

func TestEffectsExpireIndependently(t *testing.T) {
	grid := buildGrid(t, nil, "S..X", "####")
	w, player := newTestWorld(t, grid)
	effects := components.StatusEffects.Get(player)
	effects.Invulnerability.Start(1)
	effects.Speed.Start(2)

	runStatus(w, 1)
	if effects.Invulnerable() {
		t.Error("Expected invulnerability to end after 1s")
	}
	if !effects.Speed.Active {
		t.Error("Expected speed to still be active")
	}
}

func runStatus(w donburi.World, dt float64) {
	step(w, dt, components.InputSnapshot{}, UpdateStatusEffects)
}
