package systems

import (
	"testing"

	"github.com/automoto/downpour/components"
	cfg "github.com/automoto/downpour/config"
)

func TestNextRainLevel(t *testing.T) {
	tests := []struct {
		current int
		up      bool
		want    int
	}{
		{2, true, 3},
		{2, false, 1},
		{3, true, 2},
		{3, false, 2},
		{1, true, 2},
		{1, false, 1},
	}
	for _, tt := range tests {
		if got := NextRainLevel(tt.current, tt.up); got != tt.want {
			t.Errorf("NextRainLevel(%d, %v): expected %d, got %d", tt.current, tt.up, tt.want, got)
		}
	}
}

func TestRainChangesAfterInterval(t *testing.T) {
	grid := buildGrid(t, nil, "S..X", "####")
	w, _ := newTestWorld(t, grid)
	level := CurrentLevel(w)
	start := level.Rain.Level

	for i := 0; i < cfg.Rain.ChangeInterval; i++ {
		step(w, testDt, components.InputSnapshot{}, UpdateRain)
	}
	if level.Rain.Level != start || len(drainEvents(w)) != 0 {
		t.Fatalf("Expected no change during the first %d updates", cfg.Rain.ChangeInterval)
	}

	step(w, testDt, components.InputSnapshot{}, UpdateRain)
	events := drainEvents(w)
	if level.Rain.Level == start || len(events) != 1 {
		t.Fatalf("Expected one rain change, got level %d and %d events", level.Rain.Level, len(events))
	}
	e := events[0]
	if e.Kind != components.EventRainChanged || e.RainLevel != level.Rain.Level || e.Rising != (level.Rain.Level > start) {
		t.Errorf("Unexpected event %+v for level %d", e, level.Rain.Level)
	}
}

func TestRainIsDeterministic(t *testing.T) {
	run := func() []int {
		grid := buildGrid(t, nil, "S..X", "####")
		w, _ := newTestWorld(t, grid)
		level := CurrentLevel(w)
		var levels []int
		for i := 0; i < 2000; i++ {
			step(w, testDt, components.InputSnapshot{}, UpdateRain)
			levels = append(levels, level.Rain.Level)
		}
		return levels
	}
	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Runs diverged at update %d: %d vs %d", i, a[i], b[i])
		}
		if a[i] < cfg.Rain.MinLevel || a[i] > cfg.Rain.MaxLevel {
			t.Fatalf("Rain level %d out of range at update %d", a[i], i)
		}
	}
}
