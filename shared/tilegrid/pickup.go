package tilegrid

import "image"

// Pickup is the kind of collectible spawned from the pickup layer.
type Pickup int

const (
	PickupNone Pickup = iota
	PickupSpeed
	PickupJumpBoost
	PickupInvulnerability
	PickupHealth
	PickupShield
	PickupControlInvert
	PickupSuit
	PickupFirePiece
	pickupCount
)

var pickupNames = [pickupCount]string{
	PickupNone:            "none",
	PickupSpeed:           "speed",
	PickupJumpBoost:       "jump-boost",
	PickupInvulnerability: "invulnerability",
	PickupHealth:          "health",
	PickupShield:          "shield",
	PickupControlInvert:   "control-invert",
	PickupSuit:            "suit",
	PickupFirePiece:       "fire-piece",
}

func (p Pickup) String() string {
	if p < 0 || p >= pickupCount {
		return "unknown"
	}
	return pickupNames[p]
}

// Spawn is a pickup placed on a grid cell.
type Spawn struct {
	Kind Pickup
	Cell image.Point
}

// Center returns the spawn position in world pixels (the centre of its cell).
func (s Spawn) Center() (x, y float64) {
	return float64(s.Cell.X*TileSize) + TileSize/2, float64(s.Cell.Y*TileSize) + TileSize/2
}
