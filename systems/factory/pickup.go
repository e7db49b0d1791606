package factory

import (
	"github.com/automoto/downpour/archetypes"
	"github.com/automoto/downpour/components"
	cfg "github.com/automoto/downpour/config"
	"github.com/automoto/downpour/shared/tilegrid"
	"github.com/automoto/downpour/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreatePickup spawns a pickup or fire piece at the centre of its cell and
// registers its bounding square in the broad phase space.
func CreatePickup(w donburi.World, space *resolv.Space, spawn tilegrid.Spawn) *donburi.Entry {
	var pickup *donburi.Entry
	tag := tags.ResolvPickup
	if spawn.Kind == tilegrid.PickupFirePiece {
		pickup = archetypes.FirePiece.Spawn(w)
		tag = tags.ResolvFirePiece
	} else {
		pickup = archetypes.Pickup.Spawn(w)
	}

	cx, cy := spawn.Center()
	r := cfg.PickupRadius()
	components.Pickup.SetValue(pickup, components.PickupData{
		Kind:     spawn.Kind,
		Cell:     spawn.Cell,
		Position: math.NewVec2(cx, cy),
		Radius:   r,
	})

	obj := resolv.NewObject(cx-r, cy-r, 2*r, 2*r, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, 2*r, 2*r))
	obj.Data = pickup
	space.Add(obj)
	components.Object.SetValue(pickup, components.ObjectData{Object: obj})

	// Pickups bob up and down; the offset is visual only.
	h := float32(cfg.Pickup.BobHeight)
	d := cfg.Pickup.BobDuration
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, -h, d, ease.InOutSine),
		gween.New(-h, 0, d, ease.InOutSine),
	)
	components.Tween.SetValue(pickup, components.TweenData{Sequence: tw})

	return pickup
}
