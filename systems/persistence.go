package systems

import (
	"encoding/json"

	"github.com/automoto/downpour/logger"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SFXVolume  float64 `json:"sfxVolume"`
	Muted      bool    `json:"muted"`
	Fullscreen bool    `json:"fullscreen"`
	ScaleIndex int     `json:"scaleIndex"`
	ShowTuning bool    `json:"showTuning"`
}

// SavedGameProgress is where a player can resume: the next level to play
// and the life carried into it.
type SavedGameProgress struct {
	LevelIndex int     `json:"levelIndex"`
	Life       float64 `json:"life"`
	Completed  bool    `json:"completed"`
}

const (
	settingsKey = "settings"
	progressKey = "progress"
)

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings and progress
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		logger.Log.Warnw("could not initialize persistence", "error", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

func loadItem(key string, v any) (bool, error) {
	if !gdataInitialized || gdataManager == nil {
		return false, nil
	}

	data, err := gdataManager.LoadItem(key)
	if err != nil {
		logger.Log.Warnw("could not load item", "key", key, "error", err)
		return false, nil
	}
	if len(data) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		logger.Log.Warnw("could not parse saved item", "key", key, "error", err)
		return false, err
	}
	return true, nil
}

func saveItem(key string, v any) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		logger.Log.Warnw("could not serialize item", "key", key, "error", err)
		return err
	}

	if err := gdataManager.SaveItem(key, data); err != nil {
		logger.Log.Warnw("could not save item", "key", key, "error", err)
		return err
	}
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing was
// saved yet.
func LoadSettings() (*SavedSettings, error) {
	var s SavedSettings
	ok, err := loadItem(settingsKey, &s)
	if !ok {
		return nil, err
	}
	return &s, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	return saveItem(settingsKey, s)
}

// LoadGameProgress returns the saved progress, or nil.
func LoadGameProgress() (*SavedGameProgress, error) {
	var p SavedGameProgress
	ok, err := loadItem(progressKey, &p)
	if !ok {
		return nil, err
	}
	return &p, nil
}

func SaveGameProgress(p SavedGameProgress) error {
	return saveItem(progressKey, p)
}

// HasSaveGame returns true if a saved game progress exists
func HasSaveGame() bool {
	p, err := LoadGameProgress()
	return err == nil && p != nil && !p.Completed
}

// ClearGameProgress removes any saved game progress
func ClearGameProgress() error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	if err := gdataManager.SaveItem(progressKey, nil); err != nil {
		logger.Log.Warnw("could not clear game progress", "error", err)
		return err
	}
	return nil
}
