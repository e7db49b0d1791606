package session

import (
	"strings"
	"testing"

	"github.com/automoto/downpour/shared/leveldata"
)

const testDt = 1.0 / 60.0

// textLevel decodes a level from one string per row.
func textLevel(t *testing.T, name string, rows ...string) *leveldata.LevelData {
	t.Helper()
	data, err := leveldata.DecodeText(strings.NewReader(strings.Join(rows, "\n")), name)
	if err != nil {
		t.Fatalf("DecodeText() failed: %v", err)
	}
	return data
}

// corridor is a flat walk from the start to the exit.
func corridor(t *testing.T, name string) *leveldata.LevelData {
	return textLevel(t, name,
		"......",
		"1....X",
		"######",
	)
}

func startSession(t *testing.T, levels []*leveldata.LevelData, opts ...Option) *Session {
	t.Helper()
	s := New(levels, opts...)
	if err := s.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	return s
}
