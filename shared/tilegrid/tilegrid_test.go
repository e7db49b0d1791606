package tilegrid

import (
	"errors"
	"image"
	"testing"
)

var testCodes = map[rune]int{
	'.': int(KindClear),
	'r': int(KindRain),
	'#': int(KindBlock),
	'R': int(KindRainBlock),
	'-': int(KindFloatingPlatform),
	'~': int(KindPlatformBlock),
	':': int(KindPassableBlock),
	'1': int(KindStart),
	'2': int(KindStartRain),
	'X': int(KindExit),
	'w': int(KindWater),
	'W': int(KindWaterRain),
}

func codes(t *testing.T, rows ...string) (int, int, []int) {
	t.Helper()
	w, h := len(rows[0]), len(rows)
	out := make([]int, 0, w*h)
	for _, row := range rows {
		for _, c := range row {
			code, ok := testCodes[c]
			if !ok {
				t.Fatalf("no code for %q", c)
			}
			out = append(out, code)
		}
	}
	return w, h, out
}

func mustLoad(t *testing.T, rows ...string) *TileGrid {
	t.Helper()
	w, h, terrain := codes(t, rows...)
	g, err := Load(w, h, terrain, nil)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	return g
}

func TestLoadMarkers(t *testing.T) {
	g := mustLoad(t,
		"....",
		".1.X",
		"####",
	)

	if g.Width() != 4 || g.Height() != 3 {
		t.Fatalf("Expected 4x3 grid, got %dx%d", g.Width(), g.Height())
	}
	if g.StartCell() != image.Pt(1, 1) {
		t.Errorf("Expected start at 1,1, got %v", g.StartCell())
	}
	if g.ExitCell() != image.Pt(3, 1) {
		t.Errorf("Expected exit at 3,1, got %v", g.ExitCell())
	}
	x, y := g.StartPosition()
	if x != 48 || y != 64 {
		t.Errorf("Expected start position (48, 64), got (%v, %v)", x, y)
	}
	if p := g.ExitPoint(); p != image.Pt(112, 48) {
		t.Errorf("Expected exit point (112, 48), got %v", p)
	}
	if g.PixelWidth() != 128 || g.PixelHeight() != 96 {
		t.Errorf("Expected 128x96 pixels, got %dx%d", g.PixelWidth(), g.PixelHeight())
	}
}

func TestLoadMalformed(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		terrain []int
		pickups []int
	}{
		{"no exit", 3, 1, []int{7, 0, 0}, nil},
		{"no start", 3, 1, []int{0, 0, 9}, nil},
		{"two exits", 3, 1, []int{7, 9, 9}, nil},
		{"two starts", 3, 1, []int{7, 8, 9}, nil},
		{"unknown terrain", 3, 1, []int{7, 42, 9}, nil},
		{"negative terrain", 3, 1, []int{7, -1, 9}, nil},
		{"short row", 3, 2, []int{7, 0, 9, 0, 0}, nil},
		{"zero size", 0, 0, []int{}, nil},
		{"unknown pickup", 3, 1, []int{7, 0, 9}, []int{0, 99, 0}},
		{"pickup size", 3, 1, []int{7, 0, 9}, []int{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Load(tt.width, tt.height, tt.terrain, tt.pickups)
			if err == nil {
				t.Fatalf("Expected error, got grid %v", g)
			}
			if !errors.Is(err, ErrMalformedLevel) {
				t.Errorf("Expected ErrMalformedLevel, got %v", err)
			}
		})
	}
}

func TestLoadDeterministic(t *testing.T) {
	w, h, terrain := codes(t,
		"r.-~",
		"1:wX",
		"#RW#",
	)
	pickups := []int{0, 1, 0, 8, 0, 0, 5, 0, 0, 0, 0, 0}

	a, err := Load(w, h, terrain, pickups)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	b, err := Load(w, h, terrain, pickups)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if a.TileAt(x, y) != b.TileAt(x, y) {
				t.Errorf("Tile %d,%d differs between loads", x, y)
			}
		}
	}
	sa, sb := a.Spawns(), b.Spawns()
	if len(sa) != 3 || len(sb) != 3 {
		t.Fatalf("Expected 3 spawns, got %d and %d", len(sa), len(sb))
	}
	for i := range sa {
		if sa[i] != sb[i] {
			t.Errorf("Spawn %d differs: %v vs %v", i, sa[i], sb[i])
		}
	}
	if a.FirePieces() != 1 {
		t.Errorf("Expected 1 fire piece, got %d", a.FirePieces())
	}
}

func TestCollisionBoundaryLaw(t *testing.T) {
	grids := []*TileGrid{
		mustLoad(t, "1X"),
		mustLoad(t, "####", "#1X#", "####"),
		mustLoad(t, "----", "1..X", "~~~~"),
	}

	for _, g := range grids {
		for y := -3; y < g.Height()+3; y++ {
			for _, x := range []int{-5, -1, g.Width(), g.Width() + 4} {
				if c := g.CollisionAt(x, y); c != Impassable {
					t.Errorf("CollisionAt(%d, %d) = %v, want impassable", x, y, c)
				}
			}
		}
		for x := 0; x < g.Width(); x++ {
			for _, y := range []int{-5, -1, g.Height(), g.Height() + 4} {
				if c := g.CollisionAt(x, y); c != Passable {
					t.Errorf("CollisionAt(%d, %d) = %v, want passable", x, y, c)
				}
				if h := g.HazardAt(x, y); h.Any() {
					t.Errorf("HazardAt(%d, %d) = %+v, want none", x, y, h)
				}
			}
		}
	}
}

func TestTileClasses(t *testing.T) {
	g := mustLoad(t, "r#R-~:1X", "rwW.....")

	tests := []struct {
		x, y      int
		collision Collision
		hazard    Hazard
	}{
		{0, 0, Passable, Hazard{Rain: true}},
		{1, 0, Impassable, Hazard{}},
		{2, 0, Impassable, Hazard{Rain: true}},
		{3, 0, Platform, Hazard{}},
		{4, 0, Platform, Hazard{}},
		{5, 0, Passable, Hazard{}},
		{6, 0, Passable, Hazard{}},
		{7, 0, Passable, Hazard{}},
		{1, 1, Passable, Hazard{Water: true}},
		{2, 1, Passable, Hazard{Rain: true, Water: true}},
	}

	for _, tt := range tests {
		if c := g.CollisionAt(tt.x, tt.y); c != tt.collision {
			t.Errorf("CollisionAt(%d, %d) = %v, want %v", tt.x, tt.y, c, tt.collision)
		}
		if h := g.HazardAt(tt.x, tt.y); h != tt.hazard {
			t.Errorf("HazardAt(%d, %d) = %+v, want %+v", tt.x, tt.y, h, tt.hazard)
		}
	}
}

func TestBoundsOf(t *testing.T) {
	g := mustLoad(t, "1X")
	if b := g.BoundsOf(3, -2); b != image.Rect(96, -64, 128, -32) {
		t.Errorf("Unexpected bounds %v", b)
	}
}

func TestTileAtPanicsOutside(t *testing.T) {
	g := mustLoad(t, "1X")
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for out-of-range TileAt")
		}
	}()
	g.TileAt(2, 0)
}
