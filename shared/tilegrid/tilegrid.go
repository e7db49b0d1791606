package tilegrid

import (
	"errors"
	"fmt"
	"image"

	"github.com/automoto/downpour/shared/gamemath"
)

// ErrMalformedLevel is returned (wrapped) by Load for any structural problem
// in the level data.
var ErrMalformedLevel = errors.New("malformed level")

var invalidCell = image.Pt(-1, -1)

// TileGrid is a fixed-size grid of tiles indexed [x, y]. It is read-only
// after Load and safe to share.
type TileGrid struct {
	width  int
	height int
	tiles  []Tile
	start  image.Point
	exit   image.Point
	spawns []Spawn
}

// Load builds a grid from row-major terrain codes and an optional pickup
// layer of the same size. It fails with ErrMalformedLevel on a bad size,
// an unknown code, or a missing or duplicated start or exit.
func Load(width, height int, terrain, pickups []int) (*TileGrid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrMalformedLevel, width, height)
	}
	if len(terrain) != width*height {
		return nil, fmt.Errorf("%w: terrain layer has %d cells, want %d", ErrMalformedLevel, len(terrain), width*height)
	}
	if pickups != nil && len(pickups) != width*height {
		return nil, fmt.Errorf("%w: pickup layer has %d cells, want %d", ErrMalformedLevel, len(pickups), width*height)
	}

	g := &TileGrid{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
		start:  invalidCell,
		exit:   invalidCell,
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			code := terrain[y*width+x]
			if code < 0 || code >= int(kindCount) {
				return nil, fmt.Errorf("%w: unknown terrain code %d at %d,%d", ErrMalformedLevel, code, x, y)
			}
			tile := tileTypes[code]
			g.tiles[g.index(x, y)] = tile

			switch {
			case tile.Kind.IsStart():
				if g.start != invalidCell {
					return nil, fmt.Errorf("%w: second start at %d,%d (first at %d,%d)", ErrMalformedLevel, x, y, g.start.X, g.start.Y)
				}
				g.start = image.Pt(x, y)
			case tile.Kind == KindExit:
				if g.exit != invalidCell {
					return nil, fmt.Errorf("%w: second exit at %d,%d (first at %d,%d)", ErrMalformedLevel, x, y, g.exit.X, g.exit.Y)
				}
				g.exit = image.Pt(x, y)
			}

			if pickups == nil {
				continue
			}
			kind := pickups[y*width+x]
			if kind < 0 || kind >= int(pickupCount) {
				return nil, fmt.Errorf("%w: unknown pickup code %d at %d,%d", ErrMalformedLevel, kind, x, y)
			}
			if Pickup(kind) != PickupNone {
				g.spawns = append(g.spawns, Spawn{Kind: Pickup(kind), Cell: image.Pt(x, y)})
			}
		}
	}

	if g.start == invalidCell {
		return nil, fmt.Errorf("%w: no start", ErrMalformedLevel)
	}
	if g.exit == invalidCell {
		return nil, fmt.Errorf("%w: no exit", ErrMalformedLevel)
	}
	return g, nil
}

func (g *TileGrid) index(x, y int) int {
	return x*g.height + y
}

// Width in tiles.
func (g *TileGrid) Width() int { return g.width }

// Height in tiles.
func (g *TileGrid) Height() int { return g.height }

// PixelWidth is the width of the level in world pixels.
func (g *TileGrid) PixelWidth() int { return g.width * TileSize }

// PixelHeight is the height of the level in world pixels.
func (g *TileGrid) PixelHeight() int { return g.height * TileSize }

// InBounds reports whether (x, y) is a cell of the grid.
func (g *TileGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// TileAt returns the tile at (x, y). It panics outside the grid; use
// CollisionAt and HazardAt for queries that may fall outside.
func (g *TileGrid) TileAt(x, y int) Tile {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("tilegrid: cell %d,%d outside %dx%d grid", x, y, g.width, g.height))
	}
	return g.tiles[g.index(x, y)]
}

// CollisionAt returns the collision class at (x, y). Columns outside the
// grid are walls so the player can't leave sideways; rows above and below
// are open so the player can jump past the top and fall out the bottom.
func (g *TileGrid) CollisionAt(x, y int) Collision {
	if x < 0 || x >= g.width {
		return Impassable
	}
	if y < 0 || y >= g.height {
		return Passable
	}
	return g.tiles[g.index(x, y)].Collision
}

// HazardAt returns the hazard flags at (x, y); nothing outside the grid is
// hazardous.
func (g *TileGrid) HazardAt(x, y int) Hazard {
	if !g.InBounds(x, y) {
		return Hazard{}
	}
	return g.tiles[g.index(x, y)].Hazard
}

// BoundsOf returns the world rectangle covered by cell (x, y).
func (g *TileGrid) BoundsOf(x, y int) image.Rectangle {
	return image.Rect(x*TileSize, y*TileSize, (x+1)*TileSize, (y+1)*TileSize)
}

// StartCell returns the cell of the start marker.
func (g *TileGrid) StartCell() image.Point { return g.start }

// ExitCell returns the cell of the exit marker.
func (g *TileGrid) ExitCell() image.Point { return g.exit }

// StartPosition returns the bottom-centre of the start tile, where the
// player's feet are placed.
func (g *TileGrid) StartPosition() (x, y float64) {
	return gamemath.BottomCenter(g.BoundsOf(g.start.X, g.start.Y))
}

// ExitPoint returns the centre of the exit tile.
func (g *TileGrid) ExitPoint() image.Point {
	return gamemath.Center(g.BoundsOf(g.exit.X, g.exit.Y))
}

// Spawns returns the pickup spawns in row-major order.
func (g *TileGrid) Spawns() []Spawn {
	out := make([]Spawn, len(g.spawns))
	copy(out, g.spawns)
	return out
}

// FirePieces returns how many fire pieces the pickup layer places.
func (g *TileGrid) FirePieces() int {
	n := 0
	for _, s := range g.spawns {
		if s.Kind == PickupFirePiece {
			n++
		}
	}
	return n
}
