package scenes

import (
	"github.com/automoto/downpour/config"
	"github.com/automoto/downpour/render"
	"github.com/automoto/downpour/shared/leveldata"
	"github.com/automoto/downpour/storage"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene Scene)
}

// Host is what every scene shares with the game: devices, content and
// optional services. Store and Tuning may be nil.
type Host struct {
	Input  *render.Input
	Audio  *render.Audio
	Levels []*leveldata.LevelData
	Store  *storage.Store
	Tuning <-chan config.Tuning

	// Autopilot plays the levels without the player's input.
	Autopilot bool
}
