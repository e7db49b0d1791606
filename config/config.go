package config

import (
	"image/color"

	"github.com/automoto/downpour/shared/tilegrid"
)

// PlayerConfig contains the player's movement tunables and resources.
// Every movement field can be overridden at runtime through Tuning.
type PlayerConfig struct {
	// Horizontal movement
	MoveAcceleration float64 // pixels/s^2 at full input
	MaxMoveSpeed     float64 // pixels/s
	GroundDragFactor float64
	AirDragFactor    float64

	// Vertical movement
	MaxJumpTime         float64 // seconds of ascent
	JumpLaunchVelocity  float64 // pixels/s, negative is up
	GravityAcceleration float64 // pixels/s^2
	MaxFallSpeed        float64 // pixels/s
	JumpControlPower    float64 // exponent of the ascent curve

	// Speed boost steps added to the ground and air multipliers per pickup
	GroundSpeedMultiplierStep float64
	AirSpeedMultiplierStep    float64

	// Resources
	Life        float64
	MaxLife     float64
	ShieldMax   float64
	RespawnLife float64 // life floor applied when a level restarts with life exhausted

	// Dimensions of the collision box; the position is its bottom centre
	CollisionWidth  int
	CollisionHeight int
}

// InputConfig controls how raw input is decoded into movement.
type InputConfig struct {
	AnalogDeadzone float64 // |axis| below this is ignored
	StickScale     float64
}

// StatusConfig contains timed status effect values
type StatusConfig struct {
	SpeedBoostDuration      float64 // seconds
	JumpBoostDuration       float64 // seconds
	JumpBoostStep           float64
	InvulnerabilityDuration float64 // seconds
}

// HazardConfig contains per-frame hazard damage
type HazardConfig struct {
	RainDamage  float64 // multiplied by the rain level
	WaterDamage float64 // ignored while wearing the suit
}

// RainConfig controls the rain level random walk
type RainConfig struct {
	ChangeInterval int // updates between changes
	MinLevel       int
	MaxLevel       int
	StartLevel     int
	Seed           int64
}

// PickupConfig contains pickup tunables
type PickupConfig struct {
	RadiusFraction float64 // collision radius as a fraction of the tile size
	HealthBonus    float64
	BobHeight      float64 // pixels, visual only
	BobDuration    float32 // seconds for one half cycle
}

// LevelConfig contains tile grid constants
type LevelConfig struct {
	TileSize int
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	ViewMargin float64 // dead zone margin as a fraction of the viewport width
}

// AnimationConfig contains animation selector values
type AnimationConfig struct {
	MoveThreshold  float64 // |v.x| above this counts as moving
	FootstepStride float64 // pixels travelled on the ground between footsteps
	RunFrameTime   float64 // seconds per run cycle frame
	RunFrames      int
}

// UIConfig contains HUD values
type UIConfig struct {
	LifeBarWidth   float64
	LifeBarHeight  float64
	ShieldBarWidth float64
	Margin         float64

	LifeColor   color.RGBA
	ShieldColor color.RGBA
	BarBgColor  color.RGBA
	TextColor   color.RGBA

	HUDFontSize   float64
	TitleFontSize float64
}

// ScreenConfig contains overlay screen text and colors
type ScreenConfig struct {
	BackgroundColor color.RGBA
	OverlayColor    color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	TitleY          float64
	MessageY        float64
	HintY           float64

	Title        string
	Subtitle     string
	StartHint    string
	WonTitle     string
	DiedTitle    string
	CompleteText string
	ContinueHint string
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu     bool // Skip the title screen
	ShowTuning   bool // Show the tuning overlay
	ShowBounds   bool // Draw collision boxes
	StartLevel   int
	Invulnerable bool
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Input InputConfig
var Status StatusConfig
var Hazard HazardConfig
var Rain RainConfig
var Pickup PickupConfig
var Level LevelConfig
var Camera CameraConfig
var Animation AnimationConfig
var UI UIConfig
var Screen ScreenConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 480,
		TPS:    60,
	}

	// Player Config
	Player = PlayerConfig{
		MoveAcceleration: 11500.0,
		MaxMoveSpeed:     500.0,
		GroundDragFactor: 0.60,
		AirDragFactor:    0.50,

		MaxJumpTime:         0.35,
		JumpLaunchVelocity:  -300.0,
		GravityAcceleration: 3000.0,
		MaxFallSpeed:        600.0,
		JumpControlPower:    0.9,

		GroundSpeedMultiplierStep: 1.0,
		AirSpeedMultiplierStep:    0.5,

		Life:        2000,
		MaxLife:     2000,
		ShieldMax:   100,
		RespawnLife: 500,

		CollisionWidth:  22,
		CollisionHeight: 38,
	}

	Input = InputConfig{
		AnalogDeadzone: 0.5,
		StickScale:     1.0,
	}

	Status = StatusConfig{
		SpeedBoostDuration:      5.0,
		JumpBoostDuration:       5.0,
		JumpBoostStep:           0.25,
		InvulnerabilityDuration: 3.0,
	}

	Hazard = HazardConfig{
		RainDamage:  1.0,
		WaterDamage: 2.0,
	}

	Rain = RainConfig{
		ChangeInterval: 50,
		MinLevel:       1,
		MaxLevel:       3,
		StartLevel:     2,
		Seed:           354668,
	}

	Level = LevelConfig{
		TileSize: tilegrid.TileSize,
	}

	Pickup = PickupConfig{
		RadiusFraction: 1.0 / 3.0,
		HealthBonus:    500,
		BobHeight:      4,
		BobDuration:    0.6,
	}

	Camera = CameraConfig{
		ViewMargin: 0.35,
	}

	Animation = AnimationConfig{
		MoveThreshold:  0.02,
		FootstepStride: 48,
		RunFrameTime:   0.08,
		RunFrames:      4,
	}

	UI = UIConfig{
		LifeBarWidth:   200,
		LifeBarHeight:  10,
		ShieldBarWidth: 100,
		Margin:         12,
		LifeColor:      color.RGBA{R: 220, G: 80, B: 60, A: 255},
		ShieldColor:    LightBlue,
		BarBgColor:     color.RGBA{R: 30, G: 30, B: 40, A: 200},
		TextColor:      White,
		HUDFontSize:    14,
		TitleFontSize:  36,
	}

	Screen = ScreenConfig{
		BackgroundColor: color.RGBA{R: 15, G: 25, B: 50, A: 255},
		OverlayColor:    BlackOverlay,
		TitleColor:      BrightOrange,
		TextColor:       White,
		TitleY:          140,
		MessageY:        210,
		HintY:           320,
		Title:           "DOWNPOUR",
		Subtitle:        "Keep the fire alive through the storm",
		StartHint:       "Press SPACE to start",
		WonTitle:        "Level Complete!",
		DiedTitle:       "You Died",
		CompleteText:    "The storm has passed. Thanks for playing!",
		ContinueHint:    "Press SPACE to continue",
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{}
}

// PickupRadius returns the pickup collision radius in pixels.
func PickupRadius() float64 {
	return float64(Level.TileSize) * Pickup.RadiusFraction
}
