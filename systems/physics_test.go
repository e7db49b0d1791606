package systems

import (
	"testing"

	"github.com/automoto/downpour/components"
	cfg "github.com/automoto/downpour/config"
)

func jumpTuning(maxJumpTime, launch float64) *components.TuningData {
	t := components.NewTuning()
	t.MaxJumpTime = maxJumpTime
	t.JumpLaunchVelocity = launch
	t.JumpControlPower = 0.14
	return &t
}

func TestDoJumpAscent(t *testing.T) {
	tuning := jumpTuning(3.5, -900)
	p := &components.PlayerData{IsOnGround: true, IsJumping: true, JumpHeld: true}

	vy, started := DoJump(p, tuning, 1, 0, 0.5)
	if !started {
		t.Fatal("Expected the jump to start")
	}
	if vy != -900*3 {
		t.Fatalf("Expected launch velocity %v, got %v", -900*3.0, vy)
	}
	if p.JumpPhase != components.JumpAscending {
		t.Fatalf("Expected ascending, got %v", p.JumpPhase)
	}

	p.IsJumping = false
	p.IsOnGround = false
	prev := vy
	for i := 1; i < 7; i++ {
		vy, started = DoJump(p, tuning, 1, 0, 0.5)
		if started {
			t.Fatalf("Update %d: expected no second start", i)
		}
		if vy >= 0 || vy <= prev {
			t.Fatalf("Update %d: expected upward speed easing toward zero, got %v after %v", i, vy, prev)
		}
		prev = vy
	}
	if p.JumpTime != 3.5 {
		t.Fatalf("Expected jump time 3.5, got %v", p.JumpTime)
	}

	vy, _ = DoJump(p, tuning, 1, 123, 0.5)
	if vy != 123 {
		t.Errorf("Expected gravity velocity to be kept at the apex, got %v", vy)
	}
	if p.JumpTime != 0 || p.JumpPhase != components.JumpApex {
		t.Errorf("Expected apex with jump time reset, got %v at %v", p.JumpPhase, p.JumpTime)
	}
}

func TestDoJumpBoost(t *testing.T) {
	tuning := jumpTuning(3.5, -900)
	p := &components.PlayerData{IsOnGround: true, IsJumping: true}
	vy, _ := DoJump(p, tuning, 1.25, 0, testDt)
	if vy != -900*3*1.25 {
		t.Errorf("Expected boosted launch %v, got %v", -900*3*1.25, vy)
	}
}

func TestDoJumpNeedsGround(t *testing.T) {
	tuning := jumpTuning(3.5, -900)
	p := &components.PlayerData{IsJumping: true, JumpHeld: true}
	vy, started := DoJump(p, tuning, 1, 40, testDt)
	if started || vy != 40 {
		t.Errorf("Expected no airborne jump, got started=%v vy=%v", started, vy)
	}
}

func TestDoJumpZeroMaxTime(t *testing.T) {
	tuning := jumpTuning(0, -900)
	p := &components.PlayerData{IsOnGround: true, IsJumping: true, JumpHeld: true}
	vy, started := DoJump(p, tuning, 1, 40, testDt)
	if started || vy != 40 {
		t.Errorf("Expected an immediate apex, got started=%v vy=%v", started, vy)
	}
	if p.JumpPhase != components.JumpApex {
		t.Errorf("Expected apex, got %v", p.JumpPhase)
	}
}

func TestDoJumpReleaseEndsAscent(t *testing.T) {
	tuning := jumpTuning(3.5, -900)
	p := &components.PlayerData{IsOnGround: true, IsJumping: true, JumpHeld: true}
	DoJump(p, tuning, 1, 0, testDt)

	p.IsJumping = false
	p.JumpHeld = false
	DoJump(p, tuning, 1, 0, testDt)
	if p.WasJumping {
		t.Fatal("Expected release to stop the jump")
	}
	DoJump(p, tuning, 1, 0, testDt)
	if p.JumpPhase != components.JumpIdle || p.JumpTime != 0 {
		t.Errorf("Expected idle, got %v at %v", p.JumpPhase, p.JumpTime)
	}
}

// jumpHeight plays one jump on flat ground with the button held for the
// given number of updates and returns the highest rise in pixels.
func jumpHeight(t *testing.T, holdFrames int) float64 {
	grid := buildGrid(t, nil,
		"......",
		"......",
		"......",
		"......",
		"......",
		"......",
		"......",
		"......",
		"S....X",
		"######",
	)
	w, player := newTestWorld(t, grid)
	p := components.Player.Get(player)

	step(w, testDt, components.InputSnapshot{}, gameplay...)
	if !p.IsOnGround {
		t.Fatal("Expected the player to settle on the ground")
	}
	ground := p.Position.Y
	top := ground
	for i := 0; i < 120; i++ {
		step(w, testDt, components.InputSnapshot{Jump: i < holdFrames}, gameplay...)
		top = min(top, p.Position.Y)
	}
	if !p.IsOnGround || p.Position.Y != ground {
		t.Fatalf("Expected to land back on the ground at %v, got %v", ground, p.Position.Y)
	}
	return ground - top
}

func TestJumpHeightGrowsWithHold(t *testing.T) {
	tap := jumpHeight(t, 1)
	half := jumpHeight(t, 8)
	full := jumpHeight(t, 30)
	if tap <= 0 {
		t.Fatalf("Expected a tap to leave the ground, got %v", tap)
	}
	if !(tap < half && half < full) {
		t.Errorf("Expected height to grow with hold time, got tap=%v half=%v full=%v", tap, half, full)
	}
	if full < float64(cfg.Level.TileSize)*3 {
		t.Errorf("Expected a full jump to clear three tiles, got %v", full)
	}
}

func TestPhysicsIntegratesAndQuantizes(t *testing.T) {
	grid := buildGrid(t, nil,
		"......",
		"......",
		"S....X",
	)
	w, player := newTestWorld(t, grid)
	p := components.Player.Get(player)
	p.Position.X, p.Position.Y = 64, 20
	p.Velocity.X = 100

	step(w, testDt, components.InputSnapshot{}, UpdatePhysics)

	tuning := components.Tuning.Get(player)
	wantVX := 100 * tuning.AirDragFactor
	if p.Velocity.X != wantVX {
		t.Errorf("Expected air drag to give %v, got %v", wantVX, p.Velocity.X)
	}
	if p.Position.X != 65 {
		t.Errorf("Expected position rounded to 65, got %v", p.Position.X)
	}
	if p.FrameStart.X != 64 || p.FrameStart.Y != 20 {
		t.Errorf("Expected frame start (64, 20), got %v", p.FrameStart)
	}
	if p.Velocity.Y != tuning.GravityAcceleration*testDt {
		t.Errorf("Expected gravity to add %v, got %v", tuning.GravityAcceleration*testDt, p.Velocity.Y)
	}
}

func TestPhysicsClampsFallSpeed(t *testing.T) {
	grid := buildGrid(t, nil, "S.X")
	w, player := newTestWorld(t, grid)
	p := components.Player.Get(player)
	p.Velocity.Y = 10000
	step(w, testDt, components.InputSnapshot{}, UpdatePhysics)
	if maxFall := components.Tuning.Get(player).MaxFallSpeed; p.Velocity.Y != maxFall {
		t.Errorf("Expected fall speed clamped to %v, got %v", maxFall, p.Velocity.Y)
	}
}
