package systems

import (
	"github.com/automoto/downpour/components"
	"github.com/automoto/downpour/config"
	"github.com/automoto/downpour/shared/gamemath"
	"github.com/yohamta/donburi"
)

// UpdateCamera scrolls the view horizontally once the player leaves the
// dead zone in the middle of the screen.
func UpdateCamera(w donburi.World) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	playerEntry, ok := PlayerEntry(w)
	if !ok {
		return
	}
	level := CurrentLevel(w)
	if level == nil || level.Grid == nil {
		return
	}

	camera := components.Camera.Get(cameraEntry)
	playerX := components.Player.Get(playerEntry).Position.X
	camera.Position.X = ScrollCamera(camera.Position.X, playerX, float64(config.C.Width), float64(level.Grid.PixelWidth()))
}

// ScrollCamera returns the camera offset that keeps playerX inside the
// margins of a viewport of the given width, clamped to the level.
func ScrollCamera(cameraX, playerX, viewportWidth, levelWidth float64) float64 {
	margin := viewportWidth * config.Camera.ViewMargin
	left := cameraX + margin
	right := cameraX + viewportWidth - margin

	move := 0.0
	if playerX < left {
		move = playerX - left
	} else if playerX > right {
		move = playerX - right
	}

	maxX := max(0, levelWidth-viewportWidth)
	return gamemath.Clamp(cameraX+move, 0, maxX)
}
