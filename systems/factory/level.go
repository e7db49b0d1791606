package factory

import (
	"math/rand"

	"github.com/automoto/downpour/archetypes"
	"github.com/automoto/downpour/components"
	cfg "github.com/automoto/downpour/config"
	"github.com/automoto/downpour/shared/tilegrid"
	"github.com/yohamta/donburi"
)

// CreateLevel spawns the level entity for a built grid together with its
// pickup space and pickups. The level starts in the Playing state.
func CreateLevel(w donburi.World, name string, index int, grid *tilegrid.TileGrid) *donburi.Entry {
	level := archetypes.Level.Spawn(w)

	components.Level.SetValue(level, components.LevelData{
		Name:               name,
		Index:              index,
		Grid:               grid,
		State:              components.LevelPlaying,
		FirePiecesRequired: grid.FirePieces(),
		Rain: components.RainData{
			Level: cfg.Rain.StartLevel,
			RNG:   rand.New(rand.NewSource(cfg.Rain.Seed)),
		},
	})

	ts := cfg.Level.TileSize
	spaceEntry := CreateSpace(w, grid.PixelWidth(), grid.PixelHeight(), ts, ts)
	space := components.Space.Get(spaceEntry).Space
	for _, spawn := range grid.Spawns() {
		CreatePickup(w, space, spawn)
	}

	return level
}
