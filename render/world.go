package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/downpour/assets/animations"
	"github.com/automoto/downpour/components"
	cfg "github.com/automoto/downpour/config"
	"github.com/automoto/downpour/fonts"
	"github.com/automoto/downpour/shared/tilegrid"
	"github.com/automoto/downpour/systems"
	"github.com/automoto/downpour/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
)

var (
	playerColor   = color.RGBA{R: 230, G: 120, B: 40, A: 255}
	suitedColor   = color.RGBA{R: 250, G: 200, B: 60, A: 255}
	deadColor     = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	boundsColor   = color.RGBA{R: 255, G: 0, B: 0, A: 200}
	streakColor   = color.RGBA{R: 200, G: 220, B: 255, A: 160}
	umbrellaColor = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

// Renderer draws a session's world. Tiles and the player are flat shapes;
// the run cycle only drives a leg offset.
type Renderer struct {
	run *animations.Animation
}

func NewRenderer() *Renderer {
	return &Renderer{
		run: animations.NewAnimation(0, cfg.Animation.RunFrames-1, cfg.Animation.RunFrameTime, true),
	}
}

// Update advances presentation-only state by dt seconds.
func (r *Renderer) Update(w donburi.World, dt float64) {
	e, ok := systems.PlayerEntry(w)
	if !ok {
		return
	}
	if components.Animation.Get(e).Selector.Moving {
		r.run.Update(dt)
	} else {
		r.run.Restart()
	}
}

// Draw renders the level, pickups, player and HUD.
func (r *Renderer) Draw(screen *ebiten.Image, w donburi.World) {
	screen.Fill(cfg.Screen.BackgroundColor)
	level := systems.CurrentLevel(w)
	if level == nil {
		return
	}
	camX := cameraX(w)
	frame := 0
	if fe, ok := components.Frame.First(w); ok {
		frame = components.Frame.Get(fe).Count
	}

	drawTiles(screen, level, camX, frame)
	drawPickups(screen, w, camX)
	r.drawPlayer(screen, w, camX, frame)
	drawHUD(screen, w, level)
}

func cameraX(w donburi.World) float64 {
	e, ok := components.Camera.First(w)
	if !ok {
		return 0
	}
	return components.Camera.Get(e).Position.X
}

func drawTiles(screen *ebiten.Image, level *components.LevelData, camX float64, frame int) {
	grid := level.Grid
	ts := tilegrid.TileSize
	first := int(camX) / ts
	last := first + cfg.C.Width/ts + 1

	for x := first; x <= last && x < grid.Width(); x++ {
		for y := 0; y < grid.Height(); y++ {
			tile := grid.TileAt(x, y)
			sx := float32(float64(x*ts) - camX)
			sy := float32(y * ts)

			if c := TileColor(tile.Kind, level.Rain.Level); c.A > 0 {
				vector.DrawFilledRect(screen, sx, sy, float32(ts), float32(ts), c, false)
			}
			if tile.Hazard.Rain {
				drawStreaks(screen, sx, sy, level.Rain.Level, frame, x+y)
			}
		}
	}
}

// drawStreaks draws rain falling through one tile, more of it the heavier
// the rain.
func drawStreaks(screen *ebiten.Image, sx, sy float32, rainLevel, frame, seed int) {
	ts := tilegrid.TileSize
	for i := 0; i < rainLevel*2; i++ {
		ox := float32((seed*13 + i*11) % ts)
		oy := float32((frame*6 + seed*7 + i*17) % ts)
		vector.StrokeLine(screen, sx+ox, sy+oy, sx+ox-2, sy+oy+6, 1, streakColor, false)
	}
}

func drawPickups(screen *ebiten.Image, w donburi.World, camX float64) {
	draw := func(e *donburi.Entry) {
		p := components.Pickup.Get(e)
		if p.Consumed {
			return
		}
		cx := float32(p.Position.X - camX)
		cy := float32(p.Position.Y + p.BobOffset)
		vector.DrawFilledCircle(screen, cx, cy, float32(p.Radius), PickupColor(p.Kind), true)
	}
	tags.Pickup.Each(w, draw)
	tags.FirePiece.Each(w, draw)
}

func (r *Renderer) drawPlayer(screen *ebiten.Image, w donburi.World, camX float64, frame int) {
	e, ok := systems.PlayerEntry(w)
	if !ok {
		return
	}
	p := components.Player.Get(e)
	life := components.Life.Get(e)
	anim := components.Animation.Get(e)
	b := p.Bounds()

	c := playerColor
	switch {
	case !life.IsAlive:
		c = deadColor
	case anim.Selector.Suited:
		c = suitedColor
	}
	// Invulnerable players flash
	if anim.Selector.Invulnerable && (frame/4)%2 == 0 {
		c.A = 90
	}

	x := float32(float64(b.Min.X) - camX)
	y := float32(b.Min.Y)
	bw, bh := float32(b.Dx()), float32(b.Dy())

	legs := float32(0)
	if anim.Selector.Moving && p.IsOnGround {
		legs = float32(r.run.Index()%2) * 2
	}
	vector.DrawFilledRect(screen, x, y, bw, bh-legs, c, false)

	// Eye on the facing side
	eyeX := x + bw*0.65
	if anim.Facing < 0 {
		eyeX = x + bw*0.2
	}
	vector.DrawFilledRect(screen, eyeX, y+6, 4, 4, color.Black, false)

	if life.ShieldLife > 0 {
		vector.StrokeLine(screen, x-4, y-4, x+bw+4, y-4, 3, umbrellaColor, false)
	}
	if cfg.Debug.ShowBounds {
		vector.StrokeRect(screen, x, y, bw, bh, 1, boundsColor, false)
	}
}

func drawHUD(screen *ebiten.Image, w donburi.World, level *components.LevelData) {
	e, ok := systems.PlayerEntry(w)
	if !ok {
		return
	}
	life := components.Life.Get(e)
	m := float32(cfg.UI.Margin)

	// Life bar
	barW, barH := float32(cfg.UI.LifeBarWidth), float32(cfg.UI.LifeBarHeight)
	vector.DrawFilledRect(screen, m, m, barW, barH, cfg.UI.BarBgColor, false)
	if life.MaxLife > 0 && life.Life > 0 {
		ratio := float32(life.Life / life.MaxLife)
		if ratio > 1 {
			ratio = 1
		}
		vector.DrawFilledRect(screen, m, m, barW*ratio, barH, cfg.UI.LifeColor, false)
	}

	// Shield bar
	if life.ShieldLife > 0 {
		shieldW := float32(cfg.UI.ShieldBarWidth)
		ratio := float32(life.ShieldLife / cfg.Player.ShieldMax)
		vector.DrawFilledRect(screen, m, m+barH+4, shieldW, barH/2, cfg.UI.BarBgColor, false)
		vector.DrawFilledRect(screen, m, m+barH+4, shieldW*ratio, barH/2, cfg.UI.ShieldColor, false)
	}

	face := fonts.HUD.Get()
	status := fmt.Sprintf("%s   rain %d", level.Name, level.Rain.Level)
	if level.FirePiecesRequired > 0 {
		status += fmt.Sprintf("   fire %d/%d", level.FirePiecesCollected, level.FirePiecesRequired)
	}
	text.Draw(screen, status, face, int(m)+int(barW)+16, int(m+barH), cfg.UI.TextColor)
	text.Draw(screen, fmt.Sprintf("%.1fs", level.Elapsed), face, cfg.C.Width-70, int(m+barH), cfg.UI.TextColor)
}
