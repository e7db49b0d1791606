package systems

import (
	"github.com/automoto/downpour/components"
	"github.com/automoto/downpour/logger"
	"github.com/yohamta/donburi"
)

// UpdateLevelState checks the win and lose conditions. Must run last in
// the gameplay pipeline so grounded state and pickups are fresh.
func UpdateLevelState(w donburi.World) {
	level := CurrentLevel(w)
	if level == nil || level.State != components.LevelPlaying {
		return
	}
	playerEntry, ok := PlayerEntry(w)
	if !ok {
		return
	}
	p := components.Player.Get(playerEntry)
	life := components.Life.Get(playerEntry)

	level.Elapsed += deltaTime(w)
	level.Frames++

	bounds := p.Bounds()
	if life.IsAlive && bounds.Min.Y >= level.Grid.PixelHeight() {
		level.FellOut = true
		KillPlayer(w, playerEntry, "fell")
	}

	if !life.IsAlive {
		level.State = components.LevelDied
		logger.Log.Infow("level failed", "level", level.Name, "elapsed", level.Elapsed)
		return
	}

	if p.IsOnGround && level.Grid.ExitPoint().In(bounds) && level.ExitUnlocked() {
		level.ReachedExit = true
		level.State = components.LevelWon
		Emit(w, components.Event{Kind: components.EventLevelWon})
		logger.Log.Infow("level won",
			"level", level.Name,
			"elapsed", level.Elapsed,
			"life", life.Life,
			"fire_pieces", level.FirePiecesCollected,
		)
	}
}
