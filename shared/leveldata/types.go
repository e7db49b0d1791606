// Package leveldata decodes level files (Tiled TMX, Tiled-style JSON and the
// plain character grid format) into layers of integer tile codes.
// It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

import (
	"fmt"

	"github.com/automoto/downpour/shared/tilegrid"
)

// Layer indices within LevelData.Layers.
const (
	TerrainLayer = 0
	PickupLayer  = 1
)

// LevelData is a decoded level: row-major layers of tile codes. Layer 0 is
// terrain and layer 1, when present, is pickups.
type LevelData struct {
	Name   string  `json:"name"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Layers [][]int `json:"layers"`
}

// Terrain returns the terrain layer, or nil if the level has none.
func (d *LevelData) Terrain() []int {
	if len(d.Layers) <= TerrainLayer {
		return nil
	}
	return d.Layers[TerrainLayer]
}

// Pickups returns the pickup layer, or nil if the level has none.
func (d *LevelData) Pickups() []int {
	if len(d.Layers) <= PickupLayer {
		return nil
	}
	return d.Layers[PickupLayer]
}

// Grid builds the tile grid for the level.
func (d *LevelData) Grid() (*tilegrid.TileGrid, error) {
	if d.Terrain() == nil {
		return nil, fmt.Errorf("level %q: %w: no terrain layer", d.Name, tilegrid.ErrMalformedLevel)
	}
	g, err := tilegrid.Load(d.Width, d.Height, d.Terrain(), d.Pickups())
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", d.Name, err)
	}
	return g, nil
}
