package components

import (
	"image"
	stdmath "math"

	cfg "github.com/automoto/downpour/config"
	"github.com/automoto/downpour/shared/tilegrid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// JumpPhase tracks where the player is in a jump.
type JumpPhase int

const (
	JumpIdle JumpPhase = iota
	JumpAscending
	JumpApex
)

func (p JumpPhase) String() string {
	switch p {
	case JumpAscending:
		return "ascending"
	case JumpApex:
		return "apex"
	default:
		return "idle"
	}
}

// PlayerData is the kinematic state of the player character.
type PlayerData struct {
	Position math.Vec2 // bottom centre of the collision box
	Velocity math.Vec2
	Movement float64 // decoded horizontal input in [-multiplier, multiplier]

	PreviousBottom float64
	IsOnGround     bool

	IsJumping   bool // a jump was triggered this update
	WasJumping  bool
	JumpPressed bool // raw jump button state of the previous update
	JumpHeld    bool // raw jump button state of this update
	JumpTime    float64
	JumpPhase   JumpPhase

	ControlsInverted bool
	HasSuit          bool

	// Hazards touched by the last collision pass.
	Hazards tilegrid.Hazard

	// FrameStart is the position before this update's integration.
	FrameStart math.Vec2
}

var Player = donburi.NewComponentType[PlayerData]()

// Bounds returns the player's collision rectangle.
func (p *PlayerData) Bounds() image.Rectangle {
	return PlayerBounds(p.Position)
}

// PlayerBounds returns the collision rectangle for a player whose bottom
// centre is at pos.
func PlayerBounds(pos math.Vec2) image.Rectangle {
	w, h := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	left := int(stdmath.Round(pos.X - float64(w)/2))
	top := int(stdmath.Round(pos.Y)) - h
	return image.Rect(left, top, left+w, top+h)
}
