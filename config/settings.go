package config

import "math"

// SettingsConfig contains the options offered for window scale and volume
type SettingsConfig struct {
	WindowScales      []float64
	DefaultScaleIndex int
	VolumeSteps       []float64
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		WindowScales:      []float64{1, 1.5, 2},
		DefaultScaleIndex: 0,
		VolumeSteps:       []float64{0, 0.25, 0.5, 0.75, 1.0},
	}
}

// ClampVolume snaps v to the nearest configured volume step.
func ClampVolume(v float64) float64 {
	steps := Settings.VolumeSteps
	if len(steps) == 0 {
		return v
	}
	best := steps[0]
	for _, s := range steps[1:] {
		if math.Abs(s-v) < math.Abs(best-v) {
			best = s
		}
	}
	return best
}
