package config

// ActionID represents a logical game action. Device bindings live with the
// host that polls the devices.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionJump
	ActionContinue
	ActionToggleTuning
	ActionTuneNext
	ActionTuneUp
	ActionTuneDown
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:         "none",
	ActionMoveLeft:     "left",
	ActionMoveRight:    "right",
	ActionMoveUp:       "up",
	ActionJump:         "jump",
	ActionContinue:     "continue",
	ActionToggleTuning: "toggle-tuning",
	ActionTuneNext:     "tune-next",
	ActionTuneUp:       "tune-up",
	ActionTuneDown:     "tune-down",
	ActionQuit:         "quit",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}
