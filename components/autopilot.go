package components

import "github.com/yohamta/donburi"

// AutopilotData is the state of the scripted driver that plays the level
// when no human is at the controls.
type AutopilotData struct {
	Direction     float64 // -1, 0 or 1
	DecisionTimer int
	JumpHold      int // updates the jump button stays down
	JumpCooldown  int // updates the jump button stays up
	StuckTimer    int
	TurnTimer     int
	LastX         float64
}

var Autopilot = donburi.NewComponentType[AutopilotData]()
