package main

import (
	cfg "github.com/automoto/downpour/config"
	"github.com/automoto/downpour/fonts"
	"github.com/automoto/downpour/logger"
	"github.com/automoto/downpour/render"
	"github.com/automoto/downpour/scenes"
	"github.com/automoto/downpour/storage"
	"github.com/automoto/downpour/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/spf13/cobra"
)

var (
	flagPlayAutopilot bool
	flagSkipMenu      bool
	flagStartLevel    int
	flagShowTuning    bool
	flagShowBounds    bool
	flagInvulnerable  bool
	flagNoRecords     bool
)

var playCmd = &cobra.Command{
	Use:   "play [files...]",
	Short: "Play in a window",
	Long: `Open the game window. With no files the shipped levels are played.

Controls:
  A/D or arrows   move
  Space or W      jump
  Enter           continue after winning or dying
  F1              tuning overlay (Tab selects, PageUp/PageDown adjusts)
  Escape          back to the title screen / quit`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagPlayAutopilot, "autopilot", false, "Let the scripted driver play")
	playCmd.Flags().BoolVar(&flagSkipMenu, "skip-menu", false, "Skip the title screen")
	playCmd.Flags().IntVar(&flagStartLevel, "start-level", 0, "Level index to start at")
	playCmd.Flags().BoolVar(&flagShowTuning, "show-tuning", false, "Show the tuning overlay")
	playCmd.Flags().BoolVar(&flagShowBounds, "bounds", false, "Draw collision boxes")
	playCmd.Flags().BoolVar(&flagInvulnerable, "invulnerable", false, "Take no damage")
	playCmd.Flags().BoolVar(&flagNoRecords, "no-records", false, "Don't save runs to the database")
}

// Game hosts the current scene.
type Game struct {
	host  *scenes.Host
	scene scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

func (g *Game) Update() error {
	g.host.Input.Poll()
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg.Debug.SkipMenu = flagSkipMenu
	cfg.Debug.StartLevel = flagStartLevel
	cfg.Debug.ShowTuning = flagShowTuning
	cfg.Debug.ShowBounds = flagShowBounds
	cfg.Debug.Invulnerable = flagInvulnerable

	levels, err := loadLevels(args)
	if err != nil {
		return err
	}
	if err := fonts.LoadDefaults(cfg.UI.HUDFontSize, cfg.UI.TitleFontSize); err != nil {
		return err
	}

	// Persistence failures only cost the save game.
	warnOnError("save game disabled", systems.InitPersistence("downpour"))

	audioCtx := audio.NewContext(cfg.Audio.SampleRate)
	host := &scenes.Host{
		Input:     &render.Input{},
		Audio:     render.NewAudio(audioCtx),
		Levels:    levels,
		Autopilot: flagPlayAutopilot,
	}
	host.Audio.Preload()

	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		host.Audio.SetVolume(saved.SFXVolume)
		host.Audio.SetMuted(saved.Muted)
	}

	if !flagNoRecords {
		store, err := storage.Open(expandHome(flagDBPath))
		if err != nil {
			logger.Log.Warnw("run records disabled", "error", err)
		} else {
			defer store.Close()
			host.Store = store
		}
	}

	if flagTuning != "" {
		watcher, err := cfg.WatchTuning(flagTuning)
		if err != nil {
			logger.Log.Warnw("tuning hot reload disabled", "error", err)
		} else {
			defer watcher.Close()
			host.Tuning = watcher.Updates
			go func() {
				for err := range watcher.Errors {
					logger.Log.Warnw("tuning reload failed", "error", err)
				}
			}()
		}
	}

	g := &Game{host: host}
	if cfg.Debug.SkipMenu {
		scene, err := scenes.NewPlatformerScene(g, host, cfg.Debug.StartLevel, 0)
		if err != nil {
			return err
		}
		g.scene = scene
	} else {
		g.scene = scenes.NewMenuScene(g, host)
	}

	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle(cfg.Screen.Title)
	ebiten.SetTPS(cfg.C.TPS)

	err = ebiten.RunGame(g)
	warnOnError("save settings failed", systems.SaveSettings(&systems.SavedSettings{
		SFXVolume:  host.Audio.Volume(),
		Muted:      host.Audio.Muted(),
		ShowTuning: cfg.Debug.ShowTuning,
	}))
	return err
}
