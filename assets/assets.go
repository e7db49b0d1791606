package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/downpour/shared/leveldata"
)

const levelDir = "levels"

var (
	//go:embed all:levels
	levelFS embed.FS
)

// Levels returns the embedded level directory as a file system rooted at
// the level files.
func Levels() fs.FS {
	sub, err := fs.Sub(levelFS, levelDir)
	if err != nil {
		panic(fmt.Sprintf("assets: embedded level directory missing: %v", err))
	}
	return sub
}

// LoadLevels decodes every shipped level in play order.
func LoadLevels() ([]*leveldata.LevelData, error) {
	levels, err := leveldata.LoadAll(levelFS, levelDir)
	if err != nil {
		return nil, fmt.Errorf("load embedded levels: %w", err)
	}
	return levels, nil
}
