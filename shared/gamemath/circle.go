package gamemath

import "image"

// CircleIntersectsRect reports whether the circle at (cx, cy) with radius r
// touches the rectangle. Touching edges count as an intersection.
func CircleIntersectsRect(cx, cy, r float64, rect image.Rectangle) bool {
	nearX := Clamp(cx, float64(rect.Min.X), float64(rect.Max.X))
	nearY := Clamp(cy, float64(rect.Min.Y), float64(rect.Max.Y))
	dx := cx - nearX
	dy := cy - nearY
	return dx*dx+dy*dy <= r*r
}
