package leveldata

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/downpour/shared/tilegrid"
	"github.com/lafriks/go-tiled"
)

// Layer names looked up in TMX and JSON files. Unnamed files fall back to
// layer order.
const (
	terrainLayerName = "terrain"
	pickupLayerName  = "pickups"
)

// TextCodes maps the characters of the plain level format to terrain codes.
var TextCodes = map[rune]int{
	'.': int(tilegrid.KindClear),
	'r': int(tilegrid.KindRain),
	'#': int(tilegrid.KindBlock),
	'R': int(tilegrid.KindRainBlock),
	'-': int(tilegrid.KindFloatingPlatform),
	'~': int(tilegrid.KindPlatformBlock),
	':': int(tilegrid.KindPassableBlock),
	'1': int(tilegrid.KindStart),
	'2': int(tilegrid.KindStartRain),
	'X': int(tilegrid.KindExit),
	'w': int(tilegrid.KindWater),
	'W': int(tilegrid.KindWaterRain),
}

// TextPickups maps pickup characters of the plain level format. A pickup
// character places the pickup over a tile of the given terrain code.
var TextPickups = map[rune]struct {
	Terrain int
	Pickup  tilegrid.Pickup
}{
	's': {int(tilegrid.KindRain), tilegrid.PickupSpeed},
	'j': {int(tilegrid.KindRain), tilegrid.PickupJumpBoost},
	'i': {int(tilegrid.KindRain), tilegrid.PickupInvulnerability},
	'h': {int(tilegrid.KindRain), tilegrid.PickupHealth},
	'u': {int(tilegrid.KindRain), tilegrid.PickupShield},
	'c': {int(tilegrid.KindRain), tilegrid.PickupControlInvert},
	'k': {int(tilegrid.KindRain), tilegrid.PickupSuit},
	'f': {int(tilegrid.KindRain), tilegrid.PickupFirePiece},
	'S': {int(tilegrid.KindClear), tilegrid.PickupSpeed},
	'J': {int(tilegrid.KindClear), tilegrid.PickupJumpBoost},
	'I': {int(tilegrid.KindClear), tilegrid.PickupInvulnerability},
	'H': {int(tilegrid.KindClear), tilegrid.PickupHealth},
	'U': {int(tilegrid.KindClear), tilegrid.PickupShield},
	'C': {int(tilegrid.KindClear), tilegrid.PickupControlInvert},
	'K': {int(tilegrid.KindClear), tilegrid.PickupSuit},
	'F': {int(tilegrid.KindClear), tilegrid.PickupFirePiece},
}

// Load decodes the level at p in fsys, choosing the format by extension.
func Load(fsys fs.FS, p string) (*LevelData, error) {
	switch strings.ToLower(path.Ext(p)) {
	case ".tmx":
		return LoadTMX(fsys, p)
	case ".json":
		f, err := fsys.Open(p)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", p, err)
		}
		defer f.Close()
		return DecodeJSON(f, stem(p))
	case ".txt":
		f, err := fsys.Open(p)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", p, err)
		}
		defer f.Close()
		return DecodeText(f, stem(p))
	}
	return nil, fmt.Errorf("load %s: unsupported level format", p)
}

// LoadAll loads every level file in dir, sorted by file name.
func LoadAll(fsys fs.FS, dir string) ([]*LevelData, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(path.Ext(e.Name())) {
		case ".tmx", ".json", ".txt":
			paths = append(paths, path.Join(dir, e.Name()))
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no level files found in %s", dir)
	}
	sort.Strings(paths)

	levels := make([]*LevelData, 0, len(paths))
	for _, p := range paths {
		data, err := Load(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", p, err)
		}
		levels = append(levels, data)
	}
	return levels, nil
}

// LoadTMX parses a Tiled map. Terrain tiles use their tileset-local ID as the
// terrain code and pickup tiles use ID+1, unless the tileset tile carries an
// integer "code" property.
func LoadTMX(fsys fs.FS, tmxPath string) (*LevelData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &LevelData{
		Name:   stem(tmxPath),
		Width:  levelMap.Width,
		Height: levelMap.Height,
	}

	var terrain, pickups *tiled.Layer
	for _, layer := range levelMap.Layers {
		switch layer.Name {
		case terrainLayerName:
			terrain = layer
		case pickupLayerName:
			pickups = layer
		}
	}
	if terrain == nil && len(levelMap.Layers) > 0 {
		terrain = levelMap.Layers[0]
	}
	if pickups == nil && len(levelMap.Layers) > 1 && levelMap.Layers[1] != terrain {
		pickups = levelMap.Layers[1]
	}
	if terrain == nil {
		return nil, fmt.Errorf("load TMX %s: %w: no tile layers", tmxPath, tilegrid.ErrMalformedLevel)
	}

	data.Layers = append(data.Layers, tmxCodes(terrain, 0))
	if pickups != nil {
		data.Layers = append(data.Layers, tmxCodes(pickups, 1))
	}
	return data, nil
}

func tmxCodes(layer *tiled.Layer, offset int) []int {
	codes := make([]int, len(layer.Tiles))
	for i, tile := range layer.Tiles {
		if tile == nil || tile.IsNil() {
			continue
		}
		code := int(tile.ID) + offset
		if tile.Tileset != nil {
			if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
				if c := tilesetTile.Properties.GetInt("code"); c != 0 {
					code = c
				}
			}
		}
		codes[i] = code
	}
	return codes
}

type jsonLevel struct {
	Name   string      `json:"name"`
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Layers []jsonLayer `json:"layers"`
}

type jsonLayer struct {
	Name string `json:"name"`
	Data []int  `json:"data"`
}

// DecodeJSON reads a Tiled-style JSON level whose layer data holds terrain
// and pickup codes directly.
func DecodeJSON(r io.Reader, name string) (*LevelData, error) {
	var raw jsonLevel
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode level %s: %w", name, err)
	}

	data := &LevelData{
		Name:   raw.Name,
		Width:  raw.Width,
		Height: raw.Height,
	}
	if data.Name == "" {
		data.Name = name
	}

	var terrain, pickups []int
	for i, layer := range raw.Layers {
		switch {
		case layer.Name == terrainLayerName, layer.Name == "" && i == 0:
			terrain = layer.Data
		case layer.Name == pickupLayerName, layer.Name == "" && i == 1:
			pickups = layer.Data
		}
	}
	if terrain == nil {
		return nil, fmt.Errorf("decode level %s: %w: no terrain layer", name, tilegrid.ErrMalformedLevel)
	}
	data.Layers = append(data.Layers, terrain)
	if pickups != nil {
		data.Layers = append(data.Layers, pickups)
	}
	return data, nil
}

// DecodeText reads the plain character grid format: one line per row, one
// character per tile. Every line must have the same length; only trailing
// blank lines are ignored.
func DecodeText(r io.Reader, name string) (*LevelData, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read level %s: %w", name, err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("read level %s: %w: empty", name, tilegrid.ErrMalformedLevel)
	}

	width := len([]rune(lines[0]))
	data := &LevelData{Name: name, Width: width, Height: len(lines)}
	terrain := make([]int, 0, width*len(lines))
	pickups := make([]int, 0, width*len(lines))
	hasPickups := false

	for y, line := range lines {
		row := []rune(line)
		if len(row) != width {
			return nil, fmt.Errorf("read level %s: %w: line %d has length %d, want %d",
				name, tilegrid.ErrMalformedLevel, y+1, len(row), width)
		}
		for x, c := range row {
			if code, ok := TextCodes[c]; ok {
				terrain = append(terrain, code)
				pickups = append(pickups, int(tilegrid.PickupNone))
				continue
			}
			if p, ok := TextPickups[c]; ok {
				terrain = append(terrain, p.Terrain)
				pickups = append(pickups, int(p.Pickup))
				hasPickups = true
				continue
			}
			return nil, fmt.Errorf("read level %s: %w: unsupported tile character %q at %d,%d",
				name, tilegrid.ErrMalformedLevel, c, x, y)
		}
	}

	data.Layers = append(data.Layers, terrain)
	if hasPickups {
		data.Layers = append(data.Layers, pickups)
	}
	return data, nil
}

func stem(p string) string {
	return strings.TrimSuffix(path.Base(p), path.Ext(p))
}
