package config

// AutopilotConfig tunes the scripted driver used by headless simulation.
type AutopilotConfig struct {
	ReactionDelay  int // updates between decisions
	LookaheadTiles int // tiles scanned ahead for walls, gaps and water
	JumpHoldFrames int // updates the jump button stays held
	StuckFrames    int // updates without progress before the driver turns around
}

// Autopilot holds the simulation driver configuration
var Autopilot AutopilotConfig

func init() {
	Autopilot = AutopilotConfig{
		ReactionDelay:  2,
		LookaheadTiles: 2,
		JumpHoldFrames: 18,
		StuckFrames:    90,
	}
}
