package factory

import (
	"github.com/automoto/downpour/archetypes"
	"github.com/automoto/downpour/components"
	"github.com/yohamta/donburi"
)

func CreateCamera(w donburi.World) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.Set(camera, &components.CameraData{})
	return camera
}

// CreateFrame spawns the per-update singleton holding timing, input and
// the event queue.
func CreateFrame(w donburi.World) *donburi.Entry {
	frame := archetypes.Frame.Spawn(w)
	components.Frame.Set(frame, &components.FrameData{})
	components.Input.Set(frame, &components.InputData{})
	components.EventQueue.Set(frame, &components.EventQueueData{})
	return frame
}
