package systems

import (
	"image"
	"testing"

	"github.com/automoto/downpour/components"
	"github.com/automoto/downpour/shared/tilegrid"
	"github.com/automoto/downpour/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

const testDt = 1.0 / 60.0

var tileCodes = map[rune]tilegrid.Kind{
	'.': tilegrid.KindClear,
	'r': tilegrid.KindRain,
	'#': tilegrid.KindBlock,
	'R': tilegrid.KindRainBlock,
	'-': tilegrid.KindFloatingPlatform,
	'=': tilegrid.KindPlatformBlock,
	'S': tilegrid.KindStart,
	's': tilegrid.KindStartRain,
	'X': tilegrid.KindExit,
	'w': tilegrid.KindWater,
	'W': tilegrid.KindWaterRain,
}

// buildGrid builds a grid from one string per row.
func buildGrid(t *testing.T, pickups map[image.Point]tilegrid.Pickup, rows ...string) *tilegrid.TileGrid {
	t.Helper()
	width, height := len(rows[0]), len(rows)
	terrain := make([]int, 0, width*height)
	for _, row := range rows {
		for _, c := range row {
			kind, ok := tileCodes[c]
			if !ok {
				t.Fatalf("unknown tile %q", c)
			}
			terrain = append(terrain, int(kind))
		}
	}
	var layer []int
	if len(pickups) > 0 {
		layer = make([]int, width*height)
		for cell, kind := range pickups {
			layer[cell.Y*width+cell.X] = int(kind)
		}
	}
	grid, err := tilegrid.Load(width, height, terrain, layer)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	return grid
}

// newTestWorld builds a world with the frame, level, camera and a player at
// the start position.
func newTestWorld(t *testing.T, grid *tilegrid.TileGrid) (donburi.World, *donburi.Entry) {
	t.Helper()
	w := donburi.NewWorld()
	factory.CreateFrame(w)
	factory.CreateCamera(w)
	factory.CreateLevel(w, "test", 0, grid)
	x, y := grid.StartPosition()
	player := factory.CreatePlayer(w, math.NewVec2(x, y))
	return w, player
}

// gameplay is the alive pipeline in update order.
var gameplay = []func(donburi.World){
	UpdateAutopilot,
	UpdateStatusEffects,
	UpdatePlayerInput,
	UpdatePhysics,
	UpdateCollisions,
	UpdateHazards,
	UpdateRain,
	UpdateAnimation,
	UpdatePickups,
	UpdatePickupTweens,
	UpdateLevelState,
	UpdateCamera,
}

// step runs one update of the given systems with in as the input.
func step(w donburi.World, dt float64, in components.InputSnapshot, systems ...func(donburi.World)) {
	fe := frame(w)
	f := components.Frame.Get(fe)
	f.Dt = dt
	f.Count++
	components.Input.Get(fe).Current = in
	for _, s := range systems {
		s(w)
	}
}

func drainEvents(w donburi.World) []components.Event {
	return components.EventQueue.Get(frame(w)).Drain()
}

func countEvents(events []components.Event, kind components.EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
