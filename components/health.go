package components

import "github.com/yohamta/donburi"

// LifeData holds the player's life and umbrella shield.
type LifeData struct {
	Life       float64
	MaxLife    float64
	ShieldLife float64
	IsAlive    bool
}

var Life = donburi.NewComponentType[LifeData]()
