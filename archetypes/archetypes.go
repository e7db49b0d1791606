package archetypes

import (
	"github.com/automoto/downpour/components"
	"github.com/automoto/downpour/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Life,
		components.StatusEffects,
		components.Tuning,
		components.Animation,
	)
	Pickup = newArchetype(
		tags.Pickup,
		components.Pickup,
		components.Object,
		components.Tween,
	)
	FirePiece = newArchetype(
		tags.FirePiece,
		components.Pickup,
		components.Object,
		components.Tween,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	// Frame carries per-update state: timing, input and the event queue.
	Frame = newArchetype(
		components.Frame,
		components.Input,
		components.EventQueue,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
