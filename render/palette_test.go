package render

import (
	"testing"

	"github.com/automoto/downpour/shared/tilegrid"
)

func TestTileColor(t *testing.T) {
	if c := TileColor(tilegrid.KindClear, 3); c.A != 0 {
		t.Errorf("Expected clear air to be invisible, got %v", c)
	}
	if TileColor(tilegrid.KindBlock, 1) != TileColor(tilegrid.KindBlock, 3) {
		t.Error("Expected dry blocks to ignore the rain")
	}

	// Rain tiles darken as the rain grows.
	for _, k := range []tilegrid.Kind{tilegrid.KindRainBlock, tilegrid.KindWaterRain, tilegrid.KindRain} {
		light, dark := TileColor(k, 1), TileColor(k, 3)
		if int(dark.R)+int(dark.G)+int(dark.B) >= int(light.R)+int(light.G)+int(light.B) {
			t.Errorf("Expected kind %d to darken, got %v then %v", k, light, dark)
		}
		if dark.A != light.A {
			t.Errorf("Expected alpha to stay %d, got %d", light.A, dark.A)
		}
	}
}

func TestTileColorIsPure(t *testing.T) {
	for k := tilegrid.KindClear; k <= tilegrid.KindWaterRain; k++ {
		if TileColor(k, 2) != TileColor(k, 2) {
			t.Errorf("Expected stable colour for kind %d", k)
		}
	}
}
