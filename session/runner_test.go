package session

import (
	"context"
	"errors"
	"testing"

	"github.com/automoto/downpour/components"
	"github.com/automoto/downpour/shared/leveldata"
)

func TestRunnerAutopilotCompletes(t *testing.T) {
	s := New([]*leveldata.LevelData{corridor(t, "a"), corridor(t, "b")}, WithAutopilot())
	stats, err := NewRunner(s, 60, nil).Run(context.Background(), 2000, false)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if !stats.Completed || stats.LevelsWon != 2 {
		t.Errorf("Expected both levels won, got %+v", stats)
	}
	if stats.Events[components.EventLevelWon] != 2 {
		t.Errorf("Expected 2 level-won events, got %d", stats.Events[components.EventLevelWon])
	}
}

func TestRunnerRespawns(t *testing.T) {
	pit := textLevel(t, "pit",
		"1...X",
		"#...#",
	)
	s := New([]*leveldata.LevelData{pit})
	r := NewRunner(s, 60, func(int) components.InputSnapshot { return right })
	r.RespawnDelay = 10

	stats, err := r.Run(context.Background(), 300, false)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if stats.Frames != 300 || stats.Completed {
		t.Errorf("Expected 300 frames without completing, got %+v", stats)
	}
	if stats.Deaths == 0 || stats.Events[components.EventDeath] == 0 {
		t.Errorf("Expected the player to die and respawn, got %+v", stats)
	}
}

func TestRunnerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New([]*leveldata.LevelData{corridor(t, "a")})
	_, err := NewRunner(s, 60, nil).Run(ctx, 0, false)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestRunnerStartError(t *testing.T) {
	_, err := NewRunner(New(nil), 60, nil).Run(context.Background(), 10, false)
	if !errors.Is(err, ErrNoLevels) {
		t.Errorf("Expected ErrNoLevels, got %v", err)
	}
}
