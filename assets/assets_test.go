package assets

import (
	"bytes"
	"io/fs"
	"testing"
)

func TestShippedLevelsBuild(t *testing.T) {
	levels, err := LoadLevels()
	if err != nil {
		t.Fatalf("LoadLevels() failed: %v", err)
	}
	if len(levels) < 2 {
		t.Fatalf("Expected at least 2 shipped levels, got %d", len(levels))
	}

	for _, lvl := range levels {
		t.Run(lvl.Name, func(t *testing.T) {
			grid, err := lvl.Grid()
			if err != nil {
				t.Fatalf("Grid() failed: %v", err)
			}
			if grid.Width() != lvl.Width || grid.Height() != lvl.Height {
				t.Errorf("Expected %dx%d grid, got %dx%d", lvl.Width, lvl.Height, grid.Width(), grid.Height())
			}
		})
	}
}

func TestLevelsFS(t *testing.T) {
	matches, err := fs.Glob(Levels(), "*.txt")
	if err != nil {
		t.Fatalf("Glob() failed: %v", err)
	}
	if len(matches) == 0 {
		t.Error("Expected text levels at the root of Levels()")
	}
}

func TestReadAudio(t *testing.T) {
	data, err := ReadAudio("audio/sfx/jump.wav")
	if err != nil {
		t.Fatalf("ReadAudio() failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("RIFF")) {
		t.Error("Expected a RIFF header")
	}

	if _, err := ReadAudio("audio/sfx/missing.wav"); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
