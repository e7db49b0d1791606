package render

import (
	"image/color"

	"github.com/automoto/downpour/shared/tilegrid"
)

var (
	skyClear   = color.RGBA{R: 120, G: 170, B: 220, A: 255}
	blockColor = color.RGBA{R: 110, G: 84, B: 60, A: 255}
	platColor  = color.RGBA{R: 150, G: 120, B: 80, A: 255}
	passColor  = color.RGBA{R: 90, G: 70, B: 55, A: 255}
	waterColor = color.RGBA{R: 40, G: 90, B: 200, A: 255}
	exitColor  = color.RGBA{R: 250, G: 210, B: 90, A: 255}
)

// TileColor returns the fill for a tile of kind k while it rains at
// rainLevel. Tiles that take rain darken as the storm grows; the rest keep
// their colour. A zero alpha means nothing is drawn.
func TileColor(k tilegrid.Kind, rainLevel int) color.RGBA {
	var c color.RGBA
	rainy := false
	switch k {
	case tilegrid.KindClear, tilegrid.KindStart:
		return color.RGBA{}
	case tilegrid.KindRain, tilegrid.KindStartRain:
		c, rainy = skyClear, true
		c.A = 70
	case tilegrid.KindBlock:
		c = blockColor
	case tilegrid.KindRainBlock:
		c, rainy = blockColor, true
	case tilegrid.KindFloatingPlatform, tilegrid.KindPlatformBlock:
		c = platColor
	case tilegrid.KindPassableBlock:
		c = passColor
	case tilegrid.KindExit:
		c = exitColor
	case tilegrid.KindWater:
		c = waterColor
	case tilegrid.KindWaterRain:
		c, rainy = waterColor, true
	default:
		return color.RGBA{R: 255, A: 255}
	}
	if rainy {
		c = darken(c, rainLevel)
	}
	return c
}

// darken scales the colour down by 15% per rain level.
func darken(c color.RGBA, level int) color.RGBA {
	if level < 0 {
		level = 0
	}
	f := 1 - 0.15*float64(level)
	if f < 0.2 {
		f = 0.2
	}
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}

// PickupColor is the fill for a pickup of kind p.
func PickupColor(p tilegrid.Pickup) color.RGBA {
	switch p {
	case tilegrid.PickupSpeed:
		return color.RGBA{R: 80, G: 220, B: 90, A: 255}
	case tilegrid.PickupJumpBoost:
		return color.RGBA{R: 240, G: 240, B: 80, A: 255}
	case tilegrid.PickupInvulnerability:
		return color.RGBA{R: 200, G: 90, B: 240, A: 255}
	case tilegrid.PickupHealth:
		return color.RGBA{R: 230, G: 60, B: 70, A: 255}
	case tilegrid.PickupShield:
		return color.RGBA{R: 100, G: 180, B: 255, A: 255}
	case tilegrid.PickupControlInvert:
		return color.RGBA{R: 255, G: 140, B: 200, A: 255}
	case tilegrid.PickupSuit:
		return color.RGBA{R: 255, G: 200, B: 60, A: 255}
	case tilegrid.PickupFirePiece:
		return color.RGBA{R: 255, G: 110, B: 20, A: 255}
	}
	return color.RGBA{A: 255}
}
