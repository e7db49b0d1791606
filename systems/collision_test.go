package systems

import (
	"testing"

	"github.com/automoto/downpour/components"
	"github.com/automoto/downpour/shared/tilegrid"
	"github.com/yohamta/donburi/features/math"
)

func TestHandleCollisions(t *testing.T) {
	floor := []string{
		"....",
		"....",
		"S..X",
		"####",
	}
	wall := []string{
		"......",
		"...#..",
		"S..#.X",
		"######",
	}
	platform := []string{
		"...",
		".-.",
		"S.X",
	}

	tests := []struct {
		name           string
		rows           []string
		pos            math.Vec2
		previousBottom float64
		wantPos        math.Vec2
		wantGround     bool
	}{
		{
			name:           "landing snaps to the tile top",
			rows:           floor,
			pos:            math.NewVec2(48, 101),
			previousBottom: 94,
			wantPos:        math.NewVec2(48, 96),
			wantGround:     true,
		},
		{
			name:           "wall pushes back horizontally",
			rows:           wall,
			pos:            math.NewVec2(88, 96),
			previousBottom: 96,
			wantPos:        math.NewVec2(85, 96),
			wantGround:     true,
		},
		{
			name:           "platform lets the player rise through",
			rows:           platform,
			pos:            math.NewVec2(48, 40),
			previousBottom: 50,
			wantPos:        math.NewVec2(48, 40),
			wantGround:     false,
		},
		{
			name:           "platform holds a falling player",
			rows:           platform,
			pos:            math.NewVec2(48, 36),
			previousBottom: 30,
			wantPos:        math.NewVec2(48, 32),
			wantGround:     true,
		},
		{
			name:           "open air",
			rows:           floor,
			pos:            math.NewVec2(48, 60),
			previousBottom: 55,
			wantPos:        math.NewVec2(48, 60),
			wantGround:     false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := buildGrid(t, nil, tt.rows...)
			p := &components.PlayerData{Position: tt.pos, PreviousBottom: tt.previousBottom}
			HandleCollisions(grid, p)
			if p.Position != tt.wantPos {
				t.Errorf("Expected position %v, got %v", tt.wantPos, p.Position)
			}
			if p.IsOnGround != tt.wantGround {
				t.Errorf("Expected grounded %v, got %v", tt.wantGround, p.IsOnGround)
			}
			if want := float64(p.Bounds().Max.Y); p.PreviousBottom != want {
				t.Errorf("Expected previous bottom %v, got %v", want, p.PreviousBottom)
			}
		})
	}
}

func TestHandleCollisionsIdempotent(t *testing.T) {
	grid := buildGrid(t, nil,
		"....",
		"....",
		"S..X",
		"####",
	)
	starts := []components.PlayerData{
		{Position: math.NewVec2(48, 101), PreviousBottom: 94},
		{Position: math.NewVec2(48, 96), PreviousBottom: 96},
		{Position: math.NewVec2(48, 60), PreviousBottom: 55},
		{Position: math.NewVec2(10, 96), PreviousBottom: 90},
	}
	for _, start := range starts {
		p := start
		HandleCollisions(grid, &p)
		pos, ground := p.Position, p.IsOnGround
		HandleCollisions(grid, &p)
		if p.Position != pos || p.IsOnGround != ground {
			t.Errorf("From %v: expected (%v, %v) again, got (%v, %v)", start.Position, pos, ground, p.Position, p.IsOnGround)
		}
	}
}

func TestHandleCollisionsCancelsJump(t *testing.T) {
	grid := buildGrid(t, nil,
		"....",
		"####",
		"....",
		"S..X",
	)
	// Head 4px into the ceiling.
	p := &components.PlayerData{
		Position:       math.NewVec2(48, 98),
		PreviousBottom: 110,
		IsJumping:      true,
		WasJumping:     true,
	}
	HandleCollisions(grid, p)
	if p.IsJumping || p.WasJumping {
		t.Error("Expected the ceiling to cancel the jump")
	}
	if p.Position.Y != 102 {
		t.Errorf("Expected to be pushed down to 102, got %v", p.Position.Y)
	}
}

func TestHandleCollisionsLevelEdges(t *testing.T) {
	grid := buildGrid(t, nil,
		"....",
		"S..X",
		"####",
	)
	// Past the left edge: columns outside the grid are walls.
	p := &components.PlayerData{Position: math.NewVec2(5, 64), PreviousBottom: 64}
	HandleCollisions(grid, p)
	if p.Bounds().Min.X != 0 {
		t.Errorf("Expected to be pushed back inside the level, got bounds %v", p.Bounds())
	}

	// Below the grid nothing blocks.
	p = &components.PlayerData{Position: math.NewVec2(48, 200), PreviousBottom: 190}
	HandleCollisions(grid, p)
	if p.Position.Y != 200 || p.IsOnGround {
		t.Errorf("Expected free fall below the level, got %v grounded=%v", p.Position, p.IsOnGround)
	}
}

func TestHandleCollisionsHazards(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want tilegrid.Hazard
	}{
		{"dry", []string{"....", "S..X", "####"}, tilegrid.Hazard{}},
		{"rain", []string{"rrrr", "s..X", "####"}, tilegrid.Hazard{Rain: true}},
		{"water", []string{"....", "Sw.X", "####"}, tilegrid.Hazard{Water: true}},
		{"rain on a solid tile", []string{"....", "S..X", "RRRR"}, tilegrid.Hazard{Rain: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := buildGrid(t, nil, tt.rows...)
			// Feet 1px into the floor, body over columns 0 and 1.
			p := &components.PlayerData{Position: math.NewVec2(32, 65), PreviousBottom: 64}
			if got := HandleCollisions(grid, p); got != tt.want {
				t.Errorf("Expected hazards %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestGroundedAfterFalling(t *testing.T) {
	grid := buildGrid(t, nil,
		"......",
		"......",
		"......",
		"......",
		"S....X",
		"######",
	)
	w, player := newTestWorld(t, grid)
	p := components.Player.Get(player)
	p.Position.Y = 40
	p.PreviousBottom = 40

	for i := 0; i < 60; i++ {
		step(w, testDt, components.InputSnapshot{}, UpdatePhysics, UpdateCollisions)
	}
	if !p.IsOnGround {
		t.Fatal("Expected the player to land")
	}
	if p.Position.Y != 160 {
		t.Errorf("Expected feet on the floor at 160, got %v", p.Position.Y)
	}
	if p.Velocity.Y != 0 {
		t.Errorf("Expected vertical velocity zeroed on the floor, got %v", p.Velocity.Y)
	}
}

func TestCollisionZeroesVelocityOfStillAxes(t *testing.T) {
	grid := buildGrid(t, nil,
		"......",
		"......",
		"S....X",
	)
	w, player := newTestWorld(t, grid)
	p := components.Player.Get(player)
	p.Position = math.NewVec2(80, 40)
	p.FrameStart = p.Position
	p.PreviousBottom = 40
	p.Velocity = math.NewVec2(7, -3)

	step(w, testDt, components.InputSnapshot{}, UpdateCollisions)
	if p.Velocity.X != 0 || p.Velocity.Y != 0 {
		t.Errorf("Expected both axes zeroed, got %v", p.Velocity)
	}
}
