package gamemath

import "math"

// ApplyDrag scales speed by the drag factor for the current footing.
func ApplyDrag(speedX float64, onGround bool, groundDrag, airDrag float64) float64 {
	if onGround {
		return speedX * groundDrag
	}
	return speedX * airDrag
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	return Clamp(speed, -max, max)
}

// Clamp restricts v to [lo, hi]. The lower bound wins if the range is inverted.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// QuantizePosition rounds a coordinate to whole pixels, ties to even.
func QuantizePosition(v float64) float64 {
	return math.RoundToEven(v)
}

// JumpCurve returns the vertical launch speed at jumpTime into a jump of
// maxJumpTime seconds. The curve starts at launch*3 and eases toward zero as
// the jump approaches its apex. A non-positive maxJumpTime has no ascent.
func JumpCurve(launch, jumpTime, maxJumpTime, controlPower float64) float64 {
	if maxJumpTime <= 0 {
		return 0
	}
	return launch * 3 * (1 - math.Pow(jumpTime/maxJumpTime, controlPower))
}
