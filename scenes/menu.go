package scenes

import (
	"image/color"

	cfg "github.com/automoto/downpour/config"
	"github.com/automoto/downpour/fonts"
	"github.com/automoto/downpour/logger"
	"github.com/automoto/downpour/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// MenuScene is the title screen. It resumes saved progress when there is
// some.
type MenuScene struct {
	host         *Host
	sceneChanger SceneChanger
	resumeLevel  int
	resumeLife   float64
	hasSave      bool
	loaded       bool
}

func NewMenuScene(sc SceneChanger, host *Host) *MenuScene {
	return &MenuScene{sceneChanger: sc, host: host}
}

func (ms *MenuScene) load() {
	ms.loaded = true
	ms.host.Audio.StopRain()
	if !systems.HasSaveGame() {
		return
	}
	p, err := systems.LoadGameProgress()
	if err != nil || p == nil || p.LevelIndex >= len(ms.host.Levels) {
		return
	}
	ms.hasSave = true
	ms.resumeLevel = p.LevelIndex
	ms.resumeLife = p.Life
}

func (ms *MenuScene) Update() error {
	if !ms.loaded {
		ms.load()
	}
	in := ms.host.Input
	if in.JustPressed(cfg.ActionQuit) {
		return ebiten.Termination
	}
	if !in.JustPressed(cfg.ActionContinue) {
		return nil
	}

	start := cfg.Debug.StartLevel
	life := 0.0
	if ms.hasSave && start == 0 {
		start, life = ms.resumeLevel, ms.resumeLife
		logger.Log.Infow("resuming saved game", "level", start, "life", life)
	}
	scene, err := NewPlatformerScene(ms.sceneChanger, ms.host, start, life)
	if err != nil {
		return err
	}
	ms.sceneChanger.ChangeScene(scene)
	return nil
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Screen.BackgroundColor)

	drawCentered(screen, cfg.Screen.Title, fonts.Title.Get(), cfg.Screen.TitleY, cfg.Screen.TitleColor)
	drawCentered(screen, cfg.Screen.Subtitle, fonts.HUD.Get(), cfg.Screen.MessageY, cfg.Screen.TextColor)
	hint := cfg.Screen.StartHint
	if ms.hasSave {
		hint += " (continue)"
	}
	drawCentered(screen, hint, fonts.HUD.Get(), cfg.Screen.HintY, cfg.Screen.TextColor)
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, y float64, c color.Color) {
	b := text.BoundString(face, s)
	x := (screen.Bounds().Dx() - b.Dx()) / 2
	text.Draw(screen, s, face, x, int(y), c)
}
