package systems

import (
	"github.com/automoto/downpour/components"
	"github.com/automoto/downpour/tags"
	"github.com/yohamta/donburi"
)

// frame returns the per-update singleton. Every world driven by these
// systems has one; a missing frame is a wiring bug.
func frame(w donburi.World) *donburi.Entry {
	e, ok := components.Frame.First(w)
	if !ok {
		panic("systems: world has no frame entity")
	}
	return e
}

func deltaTime(w donburi.World) float64 {
	return components.Frame.Get(frame(w)).Dt
}

func currentInput(w donburi.World) components.InputSnapshot {
	return components.Input.Get(frame(w)).Current
}

// Emit queues an event for the host.
func Emit(w donburi.World, e components.Event) {
	components.EventQueue.Get(frame(w)).Push(e)
}

// CurrentLevel returns the level being played, or nil.
func CurrentLevel(w donburi.World) *components.LevelData {
	e, ok := components.Level.First(w)
	if !ok {
		return nil
	}
	return components.Level.Get(e)
}

// PlayerEntry returns the player entity, if any.
func PlayerEntry(w donburi.World) (*donburi.Entry, bool) {
	return tags.Player.First(w)
}
