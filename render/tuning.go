package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/downpour/components"
	cfg "github.com/automoto/downpour/config"
	"github.com/automoto/downpour/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// tunable is one adjustable movement value.
type tunable struct {
	name  string
	field func(t *components.TuningData) *float64
	step  float64
}

var tunables = []tunable{
	{"move acceleration", func(t *components.TuningData) *float64 { return &t.MoveAcceleration }, 500},
	{"max move speed", func(t *components.TuningData) *float64 { return &t.MaxMoveSpeed }, 25},
	{"ground drag", func(t *components.TuningData) *float64 { return &t.GroundDragFactor }, 0.05},
	{"air drag", func(t *components.TuningData) *float64 { return &t.AirDragFactor }, 0.05},
	{"max jump time", func(t *components.TuningData) *float64 { return &t.MaxJumpTime }, 0.05},
	{"jump launch velocity", func(t *components.TuningData) *float64 { return &t.JumpLaunchVelocity }, 25},
	{"gravity", func(t *components.TuningData) *float64 { return &t.GravityAcceleration }, 100},
	{"max fall speed", func(t *components.TuningData) *float64 { return &t.MaxFallSpeed }, 25},
	{"jump control power", func(t *components.TuningData) *float64 { return &t.JumpControlPower }, 0.05},
}

// TuningOverlay lists the player's movement tunables and lets the host
// nudge the selected one while playing.
type TuningOverlay struct {
	Visible  bool
	Selected int
}

// Select moves the selection by delta, wrapping around.
func (o *TuningOverlay) Select(delta int) {
	n := len(tunables)
	o.Selected = ((o.Selected+delta)%n + n) % n
}

// Adjust changes the selected tunable by dir steps.
func (o *TuningOverlay) Adjust(t *components.TuningData, dir float64) {
	tn := tunables[o.Selected]
	f := tn.field(t)
	*f += dir * tn.step
}

func (o *TuningOverlay) Draw(screen *ebiten.Image, t *components.TuningData) {
	if !o.Visible {
		return
	}
	const lineH = 16
	x, y := float32(cfg.C.Width-260), float32(40)
	vector.DrawFilledRect(screen, x-8, y-14, 250, float32(len(tunables)*lineH+12), cfg.BlackOverlay, false)

	face := fonts.Small.Get()
	for i, tn := range tunables {
		c := color.Color(cfg.White)
		if i == o.Selected {
			c = cfg.Yellow
		}
		line := fmt.Sprintf("%-22s %8.2f", tn.name, *tn.field(t))
		text.Draw(screen, line, face, int(x), int(y)+i*lineH, c)
	}
}
