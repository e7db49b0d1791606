// Package session drives a run through a list of levels. It owns the world
// and the single player entity, which carries its life from one level to
// the next.
package session

import (
	"errors"
	"fmt"
	stdmath "math"

	"github.com/automoto/downpour/components"
	cfg "github.com/automoto/downpour/config"
	"github.com/automoto/downpour/logger"
	"github.com/automoto/downpour/shared/leveldata"
	"github.com/automoto/downpour/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

var (
	ErrNoLevels       = errors.New("session has no levels")
	ErrAlreadyStarted = errors.New("session already started")
	ErrNotStarted     = errors.New("session not started")
	ErrCompleted      = errors.New("session completed")
)

// LevelResult summarizes a won level for hooks.
type LevelResult struct {
	Index      int
	Name       string
	Elapsed    float64 // seconds
	Frames     int
	Life       float64
	FirePieces int
	Deaths     int // deaths on this level before it was won
}

type Option func(*Session)

// WithAutopilot lets the scripted driver play instead of the host's input.
func WithAutopilot() Option {
	return func(s *Session) {
		s.autopilot = true
	}
}

// WithStartLevel starts the run at level index i.
func WithStartLevel(i int) Option {
	return func(s *Session) {
		s.index = i
	}
}

// WithLife starts the player with life instead of config.Player.Life,
// e.g. when resuming saved progress.
func WithLife(life float64) Option {
	return func(s *Session) {
		s.startLife = life
	}
}

// WithTuning overlays t on the player's tunables when the session starts.
func WithTuning(t cfg.Tuning) Option {
	return func(s *Session) {
		s.tuning = &t
	}
}

// OnLevelWon registers fn to be called once each time a level is won.
func OnLevelWon(fn func(LevelResult)) Option {
	return func(s *Session) {
		s.onWon = append(s.onWon, fn)
	}
}

type Session struct {
	levels []*leveldata.LevelData
	w      donburi.World
	frame  *donburi.Entry
	player *donburi.Entry
	level  *Level

	index     int
	deaths    int // deaths on the current level
	started   bool
	completed bool

	autopilot bool
	startLife float64
	tuning    *cfg.Tuning
	onWon     []func(LevelResult)
}

func New(levels []*leveldata.LevelData, opts ...Option) *Session {
	s := &Session{levels: levels}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start builds the world and loads the first level. A session can only be
// started once.
func (s *Session) Start() error {
	if s.started {
		return ErrAlreadyStarted
	}
	if len(s.levels) == 0 {
		return ErrNoLevels
	}
	if s.index < 0 || s.index >= len(s.levels) {
		return fmt.Errorf("start level %d: out of range [0, %d)", s.index, len(s.levels))
	}

	w := donburi.NewWorld()
	s.frame = factory.CreateFrame(w)
	factory.CreateCamera(w)
	if s.autopilot {
		s.frame.AddComponent(components.Autopilot)
	}

	level, err := LoadLevel(w, s.levels[s.index], s.index)
	if err != nil {
		return err
	}

	x, y := level.Data().Grid.StartPosition()
	s.player = factory.CreatePlayer(w, math.NewVec2(x, y))
	if s.startLife > 0 {
		life := components.Life.Get(s.player)
		life.Life = stdmath.Min(s.startLife, life.MaxLife)
	}
	if s.tuning != nil {
		applyTuning(*s.tuning, components.Tuning.Get(s.player))
	}

	s.w = w
	s.level = level
	s.started = true
	return nil
}

// Update advances the current level by one frame. A won level is frozen
// until Continue; a dead player keeps falling.
func (s *Session) Update(dt float64, input components.InputSnapshot) {
	if !s.started || s.completed {
		return
	}
	before := s.level.State()
	if before == components.LevelWon {
		return
	}

	s.level.Update(dt, input)

	after := s.level.State()
	if before != components.LevelPlaying || after == before {
		return
	}
	switch after {
	case components.LevelDied:
		s.deaths++
	case components.LevelWon:
		s.levelWon()
	}
}

func (s *Session) levelWon() {
	data := s.level.Data()
	result := LevelResult{
		Index:      data.Index,
		Name:       data.Name,
		Elapsed:    data.Elapsed,
		Frames:     data.Frames,
		Life:       components.Life.Get(s.player).Life,
		FirePieces: data.FirePiecesCollected,
		Deaths:     s.deaths,
	}
	for _, fn := range s.onWon {
		fn(result)
	}
}

// Continue moves on from the current level: a won level advances to the
// next one (completing the session after the last), any other state
// reloads the current level.
//
// Life persists across reloads. A player who ran out of life restarts with
// config.Player.RespawnLife; shield, suit, inverted controls and status
// effects are cleared.
func (s *Session) Continue() error {
	if !s.started {
		return ErrNotStarted
	}
	if s.completed {
		return ErrCompleted
	}

	next := s.index
	if s.level.State() == components.LevelWon {
		next++
		s.deaths = 0
	}
	if next >= len(s.levels) {
		s.completed = true
		logger.Log.Infow("session completed", "levels", len(s.levels))
		return nil
	}
	return s.load(next)
}

func (s *Session) load(index int) error {
	// Build first so a malformed level leaves the current one in place.
	grid, err := s.levels[index].Grid()
	if err != nil {
		return err
	}
	s.level.Unload()

	level, err := LoadLevel(s.w, s.levels[index], index)
	if err != nil {
		return err
	}
	s.level = level
	s.index = index

	x, y := grid.StartPosition()
	factory.ResetPlayer(s.player, math.NewVec2(x, y))
	life := components.Life.Get(s.player)
	if life.Life <= 0 {
		life.Life = stdmath.Min(cfg.Player.RespawnLife, life.MaxLife)
	}

	if s.frame.HasComponent(components.Autopilot) {
		components.Autopilot.SetValue(s.frame, components.AutopilotData{})
	}
	components.Camera.Each(s.w, func(e *donburi.Entry) {
		components.Camera.Get(e).Position = math.Vec2{}
	})
	return nil
}

// ApplyTuning overlays t on the player's tunables and hazard damage. The
// global configuration is left alone. Call it between frames.
func (s *Session) ApplyTuning(t cfg.Tuning) {
	if s.player == nil {
		s.tuning = &t
		return
	}
	applyTuning(t, components.Tuning.Get(s.player))
}

func applyTuning(t cfg.Tuning, td *components.TuningData) {
	t.ApplyPlayer(&td.PlayerConfig)
	t.ApplyHazard(&td.Hazard)
}

// Events drains the events raised since the last call.
func (s *Session) Events() []components.Event {
	if s.frame == nil {
		return nil
	}
	return components.EventQueue.Get(s.frame).Drain()
}

// State is the state of the current level, or Loading before Start.
func (s *Session) State() components.LevelState {
	if s.level == nil {
		return components.LevelLoading
	}
	return s.level.State()
}

func (s *Session) Completed() bool      { return s.completed }
func (s *Session) LevelIndex() int      { return s.index }
func (s *Session) LevelCount() int      { return len(s.levels) }
func (s *Session) Deaths() int          { return s.deaths }
func (s *Session) World() donburi.World { return s.w }

// Level returns the level being played, or nil before Start.
func (s *Session) Level() *Level { return s.level }

// Player returns the player entity, or nil before Start.
func (s *Session) Player() *donburi.Entry { return s.player }
