package components

import "github.com/yohamta/donburi"

// InputSnapshot is the raw player input for one update, already polled
// from whatever device the host uses.
type InputSnapshot struct {
	AxisX float64 // analog stick, -1..1
	Left  bool
	Right bool
	Up    bool
	Jump  bool
}

// InputData holds the snapshot consumed by the current update.
type InputData struct {
	Current InputSnapshot
}

var Input = donburi.NewComponentType[InputData]()
