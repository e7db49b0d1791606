package systems

import (
	"image"
	"math"

	"github.com/automoto/downpour/components"
	cfg "github.com/automoto/downpour/config"
	"github.com/automoto/downpour/shared/tilegrid"
	"github.com/automoto/downpour/tags"
	"github.com/yohamta/donburi"
)

// UpdateAutopilot writes the frame's input from the scripted driver when
// one is attached to the frame entity. It walks toward the nearest fire
// piece still in play, then toward the exit, jumping over walls, pits and
// water.
// Must run BEFORE UpdatePlayerInput to override the host's input.
func UpdateAutopilot(w donburi.World) {
	fe := frame(w)
	if !fe.HasComponent(components.Autopilot) {
		return
	}
	ap := components.Autopilot.Get(fe)
	input := components.Input.Get(fe)
	input.Current = components.InputSnapshot{}

	playerEntry, ok := PlayerEntry(w)
	level := CurrentLevel(w)
	if !ok || level == nil || level.Grid == nil || !components.Life.Get(playerEntry).IsAlive {
		return
	}
	p := components.Player.Get(playerEntry)

	// Decrement cooldowns
	jump := ap.JumpHold > 0
	if ap.JumpHold > 0 {
		ap.JumpHold--
		if ap.JumpHold == 0 {
			ap.JumpCooldown = 2
		}
	} else if ap.JumpCooldown > 0 {
		ap.JumpCooldown--
	}
	if ap.TurnTimer > 0 {
		ap.TurnTimer--
	}

	if ap.DecisionTimer > 0 {
		ap.DecisionTimer--
	} else {
		ap.DecisionTimer = cfg.Autopilot.ReactionDelay
		decideAutopilot(w, ap, p, level.Grid)
	}

	updateStuck(ap, p)

	left, right := ap.Direction < 0, ap.Direction > 0
	if p.ControlsInverted {
		left, right = right, left
	}
	input.Current = components.InputSnapshot{Left: left, Right: right, Jump: jump}
}

func decideAutopilot(w donburi.World, ap *components.AutopilotData, p *components.PlayerData, grid *tilegrid.TileGrid) {
	targetX, targetY := autopilotTarget(w, grid, p)

	dir := 0.0
	if dx := targetX - p.Position.X; math.Abs(dx) > float64(tilegrid.TileSize)/4 {
		dir = math.Copysign(1, dx)
	}
	if ap.TurnTimer > 0 && ap.Direction != 0 {
		dir = ap.Direction
	}
	ap.Direction = dir

	if !p.IsOnGround || ap.JumpHold > 0 || ap.JumpCooldown > 0 {
		return
	}
	bounds := p.Bounds()
	targetAbove := targetY < float64(bounds.Min.Y) && math.Abs(targetX-p.Position.X) < float64(tilegrid.TileSize)*2
	if targetAbove || (dir != 0 && obstacleAhead(grid, bounds, dir, p.HasSuit)) {
		ap.JumpHold = cfg.Autopilot.JumpHoldFrames
	}
}

// autopilotTarget returns the nearest fire piece still in play, or the
// exit once they are all collected.
func autopilotTarget(w donburi.World, grid *tilegrid.TileGrid, p *components.PlayerData) (x, y float64) {
	best := math.Inf(1)
	tags.FirePiece.Each(w, func(e *donburi.Entry) {
		pickup := components.Pickup.Get(e)
		if pickup.Consumed {
			return
		}
		if d := math.Abs(pickup.Position.X - p.Position.X); d < best {
			best = d
			x, y = pickup.Position.X, pickup.Position.Y
		}
	})
	if !math.IsInf(best, 1) {
		return x, y
	}
	exit := grid.ExitPoint()
	return float64(exit.X), float64(exit.Y)
}

// obstacleAhead scans the next few columns inside the level for a wall at
// body height, a missing floor or water the player would wade into.
func obstacleAhead(grid *tilegrid.TileGrid, bounds image.Rectangle, dir float64, suited bool) bool {
	ts := tilegrid.TileSize
	edge := bounds.Max.X
	if dir < 0 {
		edge = bounds.Min.X - 1
	}
	col := floorDiv(edge, ts)
	top := floorDiv(bounds.Min.Y, ts)
	feet := floorDiv(bounds.Max.Y-1, ts)

	for k := 1; k <= cfg.Autopilot.LookaheadTiles; k++ {
		x := col + int(dir)*k
		if x < 0 || x >= grid.Width() {
			break
		}
		for y := top; y <= feet; y++ {
			if grid.CollisionAt(x, y) == tilegrid.Impassable {
				return true
			}
			if !suited && grid.HazardAt(x, y).Water {
				return true
			}
		}
		if grid.CollisionAt(x, feet+1) == tilegrid.Passable && grid.CollisionAt(x, feet+2) == tilegrid.Passable {
			return true
		}
		if !suited && grid.HazardAt(x, feet+1).Water {
			return true
		}
	}
	return false
}

// updateStuck turns the driver around for a while when it has pushed in
// one direction without moving.
func updateStuck(ap *components.AutopilotData, p *components.PlayerData) {
	if ap.Direction != 0 && math.Abs(p.Position.X-ap.LastX) < 1 {
		ap.StuckTimer++
		if ap.StuckTimer >= cfg.Autopilot.StuckFrames {
			ap.StuckTimer = 0
			ap.TurnTimer = cfg.Autopilot.StuckFrames / 2
			ap.Direction = -ap.Direction
		}
	} else {
		ap.StuckTimer = 0
	}
	ap.LastX = p.Position.X
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
