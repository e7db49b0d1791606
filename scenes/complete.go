package scenes

import (
	cfg "github.com/automoto/downpour/config"
	"github.com/automoto/downpour/fonts"
	"github.com/automoto/downpour/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// CompleteScene is shown once every level has been won.
type CompleteScene struct {
	host         *Host
	sceneChanger SceneChanger
	cleared      bool
}

func NewCompleteScene(sc SceneChanger, host *Host) *CompleteScene {
	return &CompleteScene{sceneChanger: sc, host: host}
}

func (cs *CompleteScene) Update() error {
	if !cs.cleared {
		cs.cleared = true
		cs.host.Audio.StopRain()
		_ = systems.ClearGameProgress()
	}
	in := cs.host.Input
	if in.JustPressed(cfg.ActionContinue) || in.JustPressed(cfg.ActionQuit) {
		cs.sceneChanger.ChangeScene(NewMenuScene(cs.sceneChanger, cs.host))
	}
	return nil
}

func (cs *CompleteScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Screen.BackgroundColor)
	drawCentered(screen, cfg.Screen.Title, fonts.Title.Get(), cfg.Screen.TitleY, cfg.Screen.TitleColor)
	drawCentered(screen, cfg.Screen.CompleteText, fonts.HUD.Get(), cfg.Screen.MessageY, cfg.Screen.TextColor)
	drawCentered(screen, cfg.Screen.ContinueHint, fonts.HUD.Get(), cfg.Screen.HintY, cfg.Screen.TextColor)
}
