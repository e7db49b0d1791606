package scenes

import (
	"github.com/automoto/downpour/components"
	cfg "github.com/automoto/downpour/config"
	"github.com/automoto/downpour/fonts"
	"github.com/automoto/downpour/logger"
	"github.com/automoto/downpour/render"
	"github.com/automoto/downpour/session"
	"github.com/automoto/downpour/storage"
	"github.com/automoto/downpour/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PlatformerScene plays the levels through a session.
type PlatformerScene struct {
	host         *Host
	sceneChanger SceneChanger
	session      *session.Session
	renderer     *render.Renderer
	overlay      render.TuningOverlay
	dt           float64
}

func NewPlatformerScene(sc SceneChanger, host *Host, startLevel int, life float64) (*PlatformerScene, error) {
	ps := &PlatformerScene{
		host:         host,
		sceneChanger: sc,
		renderer:     render.NewRenderer(),
		overlay:      render.TuningOverlay{Visible: cfg.Debug.ShowTuning},
		dt:           1 / float64(cfg.C.TPS),
	}

	opts := []session.Option{
		session.WithStartLevel(startLevel),
		session.WithLife(life),
		session.OnLevelWon(ps.levelWon),
	}
	if host.Autopilot {
		opts = append(opts, session.WithAutopilot())
	}
	ps.session = session.New(host.Levels, opts...)
	if err := ps.session.Start(); err != nil {
		return nil, err
	}
	return ps, nil
}

// levelWon records the run and saves progress at the next level.
func (ps *PlatformerScene) levelWon(r session.LevelResult) {
	if ps.host.Store != nil {
		_, err := ps.host.Store.SaveRun(storage.LevelRun{
			Level:      r.Name,
			LevelIndex: r.Index,
			Elapsed:    r.Elapsed,
			Frames:     r.Frames,
			Life:       r.Life,
			FirePieces: r.FirePieces,
			Deaths:     r.Deaths,
			Autopilot:  ps.host.Autopilot,
		})
		if err != nil {
			logger.Log.Warnw("could not record run", "level", r.Name, "error", err)
		}
	}

	progress := systems.SavedGameProgress{
		LevelIndex: r.Index + 1,
		Life:       r.Life,
		Completed:  r.Index+1 >= ps.session.LevelCount(),
	}
	_ = systems.SaveGameProgress(progress)
}

func (ps *PlatformerScene) Update() error {
	in := ps.host.Input
	if in.JustPressed(cfg.ActionQuit) {
		ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger, ps.host))
		return nil
	}

	ps.applyTuningUpdates()
	ps.updateOverlay()

	switch ps.session.State() {
	case components.LevelWon, components.LevelDied:
		if in.JustPressed(cfg.ActionContinue) {
			if err := ps.session.Continue(); err != nil {
				return err
			}
			if ps.session.Completed() {
				ps.sceneChanger.ChangeScene(NewCompleteScene(ps.sceneChanger, ps.host))
				return nil
			}
		}
	}

	ps.session.Update(ps.dt, in.Snapshot())
	ps.host.Audio.HandleEvents(ps.session.Events())
	if level := ps.session.Level(); level != nil {
		ps.host.Audio.SetRainLevel(level.Data().Rain.Level)
	}
	ps.renderer.Update(ps.session.World(), ps.dt)
	return nil
}

// applyTuningUpdates takes hot-reloaded tunables between frames.
func (ps *PlatformerScene) applyTuningUpdates() {
	if ps.host.Tuning == nil {
		return
	}
	for {
		select {
		case t, ok := <-ps.host.Tuning:
			if !ok {
				ps.host.Tuning = nil
				return
			}
			ps.session.ApplyTuning(t)
			logger.Log.Infow("tuning reloaded")
		default:
			return
		}
	}
}

func (ps *PlatformerScene) updateOverlay() {
	in := ps.host.Input
	if in.JustPressed(cfg.ActionToggleTuning) {
		ps.overlay.Visible = !ps.overlay.Visible
	}
	if !ps.overlay.Visible {
		return
	}
	tuning := components.Tuning.Get(ps.session.Player())
	switch {
	case in.JustPressed(cfg.ActionTuneNext):
		ps.overlay.Select(1)
	case in.JustPressed(cfg.ActionTuneUp):
		ps.overlay.Adjust(tuning, 1)
	case in.JustPressed(cfg.ActionTuneDown):
		ps.overlay.Adjust(tuning, -1)
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	w := ps.session.World()
	ps.renderer.Draw(screen, w)
	ps.overlay.Draw(screen, components.Tuning.Get(ps.session.Player()))

	var title string
	switch ps.session.State() {
	case components.LevelWon:
		title = cfg.Screen.WonTitle
	case components.LevelDied:
		title = cfg.Screen.DiedTitle
	default:
		return
	}
	bounds := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), cfg.Screen.OverlayColor, false)
	drawCentered(screen, title, fonts.Title.Get(), cfg.Screen.TitleY, cfg.Screen.TitleColor)
	drawCentered(screen, cfg.Screen.ContinueHint, fonts.HUD.Get(), cfg.Screen.HintY, cfg.Screen.TextColor)
}
