package components

import "github.com/yohamta/donburi"

// AnimationSelector picks one of the eight player animations.
type AnimationSelector struct {
	Moving       bool
	Suited       bool
	Invulnerable bool
}

// Index returns a stable index in [0, 8).
func (s AnimationSelector) Index() int {
	i := 0
	if s.Moving {
		i |= 1
	}
	if s.Suited {
		i |= 2
	}
	if s.Invulnerable {
		i |= 4
	}
	return i
}

func (s AnimationSelector) String() string {
	name := "idle"
	if s.Moving {
		name = "run"
	}
	if s.Suited {
		name += "-suited"
	}
	if s.Invulnerable {
		name += "-invulnerable"
	}
	return name
}

type AnimationData struct {
	Selector AnimationSelector
	Facing   float64 // -1 or 1, last non-zero direction of travel

	// StrideDistance is the ground distance covered since the last footstep.
	StrideDistance float64
}

var Animation = donburi.NewComponentType[AnimationData]()
