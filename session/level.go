package session

import (
	"fmt"

	"github.com/automoto/downpour/components"
	"github.com/automoto/downpour/logger"
	"github.com/automoto/downpour/shared/leveldata"
	"github.com/automoto/downpour/systems/factory"
	"github.com/automoto/downpour/tags"
	"github.com/yohamta/donburi"
)

// Level is one loaded level inside a session's world. It owns the level,
// space and pickup entities; the player belongs to the session.
type Level struct {
	w         donburi.World
	entry     *donburi.Entry
	frame     *donburi.Entry
	scheduler *Scheduler
}

// LoadLevel builds data into w. w must already hold a frame entity.
func LoadLevel(w donburi.World, data *leveldata.LevelData, index int) (*Level, error) {
	grid, err := data.Grid()
	if err != nil {
		return nil, err
	}
	fe, ok := components.Frame.First(w)
	if !ok {
		return nil, fmt.Errorf("load level %q: world has no frame", data.Name)
	}

	entry := factory.CreateLevel(w, data.Name, index, grid)
	logger.Log.Infow("level loaded",
		"level", data.Name,
		"index", index,
		"width", data.Width,
		"height", data.Height,
		"fire_pieces", grid.FirePieces(),
	)

	return &Level{
		w:         w,
		entry:     entry,
		frame:     fe,
		scheduler: NewPipeline(),
	}, nil
}

// Update advances the level by one frame of dt seconds.
func (l *Level) Update(dt float64, input components.InputSnapshot) {
	f := components.Frame.Get(l.frame)
	f.Dt = dt
	f.Count++
	components.Input.Get(l.frame).Current = input

	l.scheduler.Update(l.w)
}

func (l *Level) Data() *components.LevelData {
	return components.Level.Get(l.entry)
}

func (l *Level) State() components.LevelState {
	return l.Data().State
}

// Unload removes the level's entities from the world.
func (l *Level) Unload() {
	var doomed []donburi.Entity
	collect := func(e *donburi.Entry) {
		doomed = append(doomed, e.Entity())
	}
	tags.Pickup.Each(l.w, collect)
	tags.FirePiece.Each(l.w, collect)
	components.Space.Each(l.w, collect)
	doomed = append(doomed, l.entry.Entity())

	for _, e := range doomed {
		l.w.Remove(e)
	}
}
