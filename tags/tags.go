package tags

import "github.com/yohamta/donburi"

var (
	Player    = donburi.NewTag().SetName("Player")
	Pickup    = donburi.NewTag().SetName("Pickup")
	FirePiece = donburi.NewTag().SetName("FirePiece")
)

// Resolv tags for the pickup broad phase
const (
	ResolvPickup    = "pickup"
	ResolvFirePiece = "firepiece"
)
