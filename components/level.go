package components

import (
	"math/rand"

	"github.com/automoto/downpour/shared/tilegrid"
	"github.com/yohamta/donburi"
)

// LevelState is the lifecycle state of a level.
type LevelState int

const (
	LevelLoading LevelState = iota
	LevelPlaying
	LevelWon
	LevelDied
)

func (s LevelState) String() string {
	switch s {
	case LevelPlaying:
		return "playing"
	case LevelWon:
		return "won"
	case LevelDied:
		return "died"
	default:
		return "loading"
	}
}

// RainData is the level's current rain intensity and its random walk.
type RainData struct {
	Level   int
	Counter int
	RNG     *rand.Rand
}

type LevelData struct {
	Name  string
	Index int
	Grid  *tilegrid.TileGrid
	State LevelState

	ReachedExit bool
	FellOut     bool

	FirePiecesRequired  int
	FirePiecesCollected int

	Rain RainData

	Elapsed float64 // seconds of play
	Frames  int
}

// ExitUnlocked reports whether every fire piece has been collected.
func (l *LevelData) ExitUnlocked() bool {
	return l.FirePiecesCollected >= l.FirePiecesRequired
}

var Level = donburi.NewComponentType[LevelData]()
