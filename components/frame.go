package components

import "github.com/yohamta/donburi"

// FrameData is the timing of the update in progress.
type FrameData struct {
	Dt    float64 // seconds
	Count int
}

var Frame = donburi.NewComponentType[FrameData]()
