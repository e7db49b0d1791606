package components

import (
	cfg "github.com/automoto/downpour/config"
	"github.com/yohamta/donburi"
)

// TuningData is the player's own copy of the movement tunables and the
// hazard damage it takes. It starts from config.Player and config.Hazard
// and can be adjusted while the game runs.
type TuningData struct {
	cfg.PlayerConfig
	Hazard cfg.HazardConfig
}

// NewTuning copies the current global player and hazard configuration.
func NewTuning() TuningData {
	return TuningData{PlayerConfig: cfg.Player, Hazard: cfg.Hazard}
}

var Tuning = donburi.NewComponentType[TuningData]()
