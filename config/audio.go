package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Movement sounds
	SoundFootstep
	SoundJump
	SoundDeath
	// Pickup sounds
	SoundPowerUp
	SoundInvulnerability
	SoundFirePiece
	// Weather and level sounds
	SoundThunder
	SoundRain
	SoundLevelWon
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	RainLoopVol   float64 // per rain level
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
		RainLoopVol:   0.15,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundFootstep:        "audio/sfx/footstep.wav",
			SoundJump:            "audio/sfx/jump.wav",
			SoundDeath:           "audio/sfx/death.wav",
			SoundPowerUp:         "audio/sfx/powerup.wav",
			SoundInvulnerability: "audio/sfx/invulnerability.wav",
			SoundFirePiece:       "audio/sfx/fire_piece.wav",
			SoundThunder:         "audio/sfx/thunder.wav",
			SoundRain:            "audio/sfx/rain.wav",
			SoundLevelWon:        "audio/sfx/level_won.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundFootstep: 0.5,
			SoundThunder:  1.5,
		},
	}
}
