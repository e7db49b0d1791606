package gamemath

import (
	"image"
	"testing"
)

func TestIntersectionDepth(t *testing.T) {
	tile := image.Rect(32, 32, 64, 64)

	tests := []struct {
		name   string
		a      image.Rectangle
		dx, dy float64
	}{
		{"separate", image.Rect(0, 0, 10, 10), 0, 0},
		{"touching edge", image.Rect(10, 0, 32, 40), 0, 0},
		{"sinking into top", image.Rect(40, 0, 62, 38), 24, -6},
		{"pushing into left", image.Rect(22, 40, 44, 78), -12, 24},
		{"overlap from right", image.Rect(60, 36, 82, 74), 4, 28},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dx, dy := IntersectionDepth(tt.a, tile)
			if dx != tt.dx || dy != tt.dy {
				t.Errorf("IntersectionDepth() = (%v, %v), want (%v, %v)", dx, dy, tt.dx, tt.dy)
			}
		})
	}
}

func TestCircleIntersectsRect(t *testing.T) {
	rect := image.Rect(0, 0, 20, 40)

	tests := []struct {
		name   string
		x, y   float64
		radius float64
		want   bool
	}{
		{"inside", 10, 10, 2, true},
		{"touching side", 25, 20, 5, true},
		{"just outside side", 26, 20, 5, false},
		{"near corner", 23, 44, 5, true},
		{"outside corner", 24, 44, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CircleIntersectsRect(tt.x, tt.y, tt.radius, rect); got != tt.want {
				t.Errorf("CircleIntersectsRect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQuantizePosition(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{1.4, 1},
		{1.5, 2},
		{2.5, 2},
		{-0.5, 0},
		{-1.5, -2},
		{3.6, 4},
	}

	for _, tt := range tests {
		if got := QuantizePosition(tt.in); got != tt.want {
			t.Errorf("QuantizePosition(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestJumpCurve(t *testing.T) {
	if v := JumpCurve(-900, 0, 3.5, 0.14); v != -2700 {
		t.Errorf("Expected launch speed -2700 at t=0, got %v", v)
	}
	if v := JumpCurve(-900, 3.5, 3.5, 0.14); v != 0 {
		t.Errorf("Expected zero speed at apex, got %v", v)
	}
	if v := JumpCurve(-900, 1, 0, 0.14); v != 0 {
		t.Errorf("Expected zero speed for zero max jump time, got %v", v)
	}
}

func TestClampAndDrag(t *testing.T) {
	if v := ClampSpeed(700, 500); v != 500 {
		t.Errorf("ClampSpeed(700, 500) = %v", v)
	}
	if v := ClampSpeed(-700, 500); v != -500 {
		t.Errorf("ClampSpeed(-700, 500) = %v", v)
	}
	if v := Clamp(-2000, -1100, 600); v != -1100 {
		t.Errorf("Clamp(-2000, -1100, 600) = %v", v)
	}
	if v := ApplyDrag(100, true, 0.6, 0.5); v != 60 {
		t.Errorf("ground drag = %v, want 60", v)
	}
	if v := ApplyDrag(100, false, 0.6, 0.5); v != 50 {
		t.Errorf("air drag = %v, want 50", v)
	}
}
