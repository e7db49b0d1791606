package systems

import (
	"image"
	"math"

	"github.com/automoto/downpour/components"
	"github.com/automoto/downpour/shared/gamemath"
	"github.com/automoto/downpour/shared/tilegrid"
	"github.com/yohamta/donburi"
)

// UpdateCollisions separates the player from the level's tiles and records
// the hazards it touched. An axis whose position ended where the update
// started has its velocity zeroed, even when the collision was on the other
// axis; gameplay is tuned around that.
func UpdateCollisions(w donburi.World) {
	level := CurrentLevel(w)
	if level == nil || level.Grid == nil {
		return
	}
	components.Player.Each(w, func(e *donburi.Entry) {
		p := components.Player.Get(e)
		p.Hazards = HandleCollisions(level.Grid, p)

		if p.Position.X == p.FrameStart.X {
			p.Velocity.X = 0
		}
		if p.Position.Y == p.FrameStart.Y {
			p.Velocity.Y = 0
		}
	})
}

// HandleCollisions resolves the player's box against every tile it
// overlaps, one tile at a time, and returns the hazards of those tiles.
// It updates IsOnGround and PreviousBottom and cancels any jump when a solid
// tile is in range.
func HandleCollisions(grid *tilegrid.TileGrid, p *components.PlayerData) tilegrid.Hazard {
	bounds := p.Bounds()
	ts := float64(tilegrid.TileSize)
	leftTile := int(math.Floor(float64(bounds.Min.X) / ts))
	rightTile := int(math.Ceil(float64(bounds.Max.X)/ts)) - 1
	topTile := int(math.Floor(float64(bounds.Min.Y) / ts))
	bottomTile := int(math.Ceil(float64(bounds.Max.Y)/ts)) - 1

	p.IsOnGround = false
	var hazards tilegrid.Hazard

	for y := topTile; y <= bottomTile; y++ {
		for x := leftTile; x <= rightTile; x++ {
			h := grid.HazardAt(x, y)
			hazards.Rain = hazards.Rain || h.Rain
			hazards.Water = hazards.Water || h.Water

			collision := grid.CollisionAt(x, y)
			if collision == tilegrid.Passable {
				continue
			}
			p.IsJumping = false
			p.WasJumping = false

			tile := grid.BoundsOf(x, y)
			dx, dy := gamemath.IntersectionDepth(bounds, tile)
			if dx == 0 && dy == 0 {
				continue
			}

			if math.Abs(dy) < math.Abs(dx) || collision == tilegrid.Platform {
				if p.PreviousBottom <= float64(tile.Min.Y) {
					p.IsOnGround = true
				}
				// Platforms only hold a player coming down onto them.
				if collision == tilegrid.Impassable || p.IsOnGround {
					p.Position.Y += dy
					bounds = p.Bounds()
				}
			} else if collision == tilegrid.Impassable {
				p.Position.X += dx
				bounds = p.Bounds()
			}
		}
	}

	if !p.IsOnGround && restingOnTile(grid, bounds, p.PreviousBottom) {
		p.IsOnGround = true
	}

	p.PreviousBottom = float64(bounds.Max.Y)
	return hazards
}

// restingOnTile reports whether the box sits exactly on top of a solid or
// platform tile it did not start the update below. Such a box touches the
// tile without overlapping it, so the scan above never sees it.
func restingOnTile(grid *tilegrid.TileGrid, bounds image.Rectangle, previousBottom float64) bool {
	ts := tilegrid.TileSize
	if bounds.Max.Y%ts != 0 || previousBottom > float64(bounds.Max.Y) {
		return false
	}
	y := bounds.Max.Y / ts
	leftTile := int(math.Floor(float64(bounds.Min.X) / float64(ts)))
	rightTile := int(math.Ceil(float64(bounds.Max.X)/float64(ts))) - 1
	for x := leftTile; x <= rightTile; x++ {
		if grid.InBounds(x, y) && grid.CollisionAt(x, y) != tilegrid.Passable {
			return true
		}
	}
	return false
}
