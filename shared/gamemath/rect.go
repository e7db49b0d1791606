package gamemath

import (
	"image"
	"math"
)

// IntersectionDepth returns the signed penetration of a into b along each
// axis. Adding the result to a's position separates the two rectangles.
// Both components are zero when the rectangles do not overlap.
func IntersectionDepth(a, b image.Rectangle) (dx, dy float64) {
	halfWA := float64(a.Dx()) / 2
	halfHA := float64(a.Dy()) / 2
	halfWB := float64(b.Dx()) / 2
	halfHB := float64(b.Dy()) / 2

	distX := (float64(a.Min.X) + halfWA) - (float64(b.Min.X) + halfWB)
	distY := (float64(a.Min.Y) + halfHA) - (float64(b.Min.Y) + halfHB)
	minX := halfWA + halfWB
	minY := halfHA + halfHB

	if math.Abs(distX) >= minX || math.Abs(distY) >= minY {
		return 0, 0
	}

	if distX > 0 {
		dx = minX - distX
	} else {
		dx = -minX - distX
	}
	if distY > 0 {
		dy = minY - distY
	} else {
		dy = -minY - distY
	}
	return dx, dy
}

// BottomCenter returns the middle of r's bottom edge.
func BottomCenter(r image.Rectangle) (x, y float64) {
	return float64(r.Min.X) + float64(r.Dx())/2, float64(r.Max.Y)
}

// Center returns r's integer centre, matching how tile centres are stored.
func Center(r image.Rectangle) image.Point {
	return image.Pt(r.Min.X+r.Dx()/2, r.Min.Y+r.Dy()/2)
}
