package components

import (
	"image"

	"github.com/automoto/downpour/shared/tilegrid"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PickupData is a collectible power-up or fire piece.
type PickupData struct {
	Kind     tilegrid.Pickup
	Cell     image.Point
	Position math.Vec2 // centre of the collision circle
	Radius   float64
	Consumed bool

	// BobOffset is the current visual offset from the tween. It never
	// affects collision.
	BobOffset float64
}

var Pickup = donburi.NewComponentType[PickupData]()

// TweenData drives a looping visual tween.
type TweenData struct {
	*gween.Sequence
}

var Tween = donburi.NewComponentType[TweenData]()
