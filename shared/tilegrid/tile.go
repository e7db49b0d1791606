// Package tilegrid holds the immutable terrain of a level: collision classes,
// hazard flags, the start and exit markers and the pickup spawn layer.
// It has no dependencies on ebitengine, donburi, or resolv.
package tilegrid

// TileSize is the width and height of one cell in world pixels.
const TileSize = 32

// Collision is the collision class of a tile.
type Collision int

const (
	Passable Collision = iota
	Impassable
	// Platform only blocks from above.
	Platform
)

func (c Collision) String() string {
	switch c {
	case Passable:
		return "passable"
	case Impassable:
		return "impassable"
	case Platform:
		return "platform"
	}
	return "unknown"
}

// Kind is the terrain code a tile was loaded from. The simulation never
// looks at it; renderers use it to pick visuals.
type Kind int

const (
	KindClear Kind = iota
	KindRain
	KindBlock
	KindRainBlock
	KindFloatingPlatform
	KindPlatformBlock
	KindPassableBlock
	KindStart
	KindStartRain
	KindExit
	KindWater
	KindWaterRain
	kindCount
)

// Hazard flags for a tile.
type Hazard struct {
	Rain  bool
	Water bool
}

// Any reports whether either hazard is set.
func (h Hazard) Any() bool {
	return h.Rain || h.Water
}

// Tile is one cell of the grid.
type Tile struct {
	Kind      Kind
	Collision Collision
	Hazard    Hazard
}

var tileTypes = [kindCount]Tile{
	KindClear:            {Kind: KindClear, Collision: Passable},
	KindRain:             {Kind: KindRain, Collision: Passable, Hazard: Hazard{Rain: true}},
	KindBlock:            {Kind: KindBlock, Collision: Impassable},
	KindRainBlock:        {Kind: KindRainBlock, Collision: Impassable, Hazard: Hazard{Rain: true}},
	KindFloatingPlatform: {Kind: KindFloatingPlatform, Collision: Platform},
	KindPlatformBlock:    {Kind: KindPlatformBlock, Collision: Platform},
	KindPassableBlock:    {Kind: KindPassableBlock, Collision: Passable},
	KindStart:            {Kind: KindStart, Collision: Passable},
	KindStartRain:        {Kind: KindStartRain, Collision: Passable, Hazard: Hazard{Rain: true}},
	KindExit:             {Kind: KindExit, Collision: Passable},
	KindWater:            {Kind: KindWater, Collision: Passable, Hazard: Hazard{Water: true}},
	KindWaterRain:        {Kind: KindWaterRain, Collision: Passable, Hazard: Hazard{Rain: true, Water: true}},
}

// IsStart reports whether the kind marks the player start.
func (k Kind) IsStart() bool {
	return k == KindStart || k == KindStartRain
}
