package session

import (
	"context"
	"time"

	"github.com/automoto/downpour/components"
	"github.com/automoto/downpour/logger"
)

// InputSource supplies the input for frame n.
type InputSource func(n int) components.InputSnapshot

// RunStats summarizes a headless run.
type RunStats struct {
	Frames    int
	Deaths    int
	LevelsWon int
	Completed bool
	Events    map[components.EventKind]int
}

// Runner steps a session at a fixed tick rate without a window. Won levels
// advance immediately and dead players restart after RespawnDelay frames.
type Runner struct {
	session  *Session
	tickRate int
	input    InputSource

	// RespawnDelay is the number of frames a corpse is simulated before the
	// level is reloaded.
	RespawnDelay int
}

func NewRunner(s *Session, tickRate int, input InputSource) *Runner {
	if input == nil {
		input = func(int) components.InputSnapshot { return components.InputSnapshot{} }
	}
	return &Runner{
		session:      s,
		tickRate:     tickRate,
		input:        input,
		RespawnDelay: tickRate,
	}
}

// Run steps the session until it completes, maxFrames frames have run
// (0 means no limit) or ctx is done. With realtime set it paces frames with
// a ticker; otherwise it runs as fast as it can.
func (r *Runner) Run(ctx context.Context, maxFrames int, realtime bool) (RunStats, error) {
	stats := RunStats{Events: make(map[components.EventKind]int)}
	if !r.session.started {
		if err := r.session.Start(); err != nil {
			return stats, err
		}
	}

	var tick <-chan time.Time
	if realtime {
		ticker := time.NewTicker(time.Second / time.Duration(r.tickRate))
		defer ticker.Stop()
		tick = ticker.C
	}

	logger.Log.Infow("run started", "tick_rate", r.tickRate, "max_frames", maxFrames, "realtime", realtime)

	dt := 1 / float64(r.tickRate)
	deadFrames := 0
	for maxFrames <= 0 || stats.Frames < maxFrames {
		if tick != nil {
			select {
			case <-ctx.Done():
				return stats, ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return stats, err
		}

		r.session.Update(dt, r.input(stats.Frames))
		stats.Frames++
		for _, e := range r.session.Events() {
			stats.Events[e.Kind]++
		}

		switch r.session.State() {
		case components.LevelWon:
			stats.LevelsWon++
			if err := r.session.Continue(); err != nil {
				return stats, err
			}
		case components.LevelDied:
			deadFrames++
			if deadFrames < r.RespawnDelay {
				continue
			}
			deadFrames = 0
			stats.Deaths++
			if err := r.session.Continue(); err != nil {
				return stats, err
			}
		}

		if r.session.Completed() {
			stats.Completed = true
			break
		}
	}

	logger.Log.Infow("run finished",
		"frames", stats.Frames,
		"levels_won", stats.LevelsWon,
		"deaths", stats.Deaths,
		"completed", stats.Completed,
	)
	return stats, nil
}
