package systems

import (
	"github.com/automoto/downpour/components"
	cfg "github.com/automoto/downpour/config"
	"github.com/automoto/downpour/logger"
	"github.com/yohamta/donburi"
)

// UpdateRain moves the rain level one step up or down after every
// ChangeInterval quiet updates. At the top of the range the level always
// drops; at the bottom a downward roll leaves it unchanged.
func UpdateRain(w donburi.World) {
	level := CurrentLevel(w)
	if level == nil {
		return
	}
	r := &level.Rain
	if r.Counter < cfg.Rain.ChangeInterval {
		r.Counter++
		return
	}
	r.Counter = 0

	prev := r.Level
	r.Level = NextRainLevel(r.Level, r.RNG.Intn(2) == 1)
	if r.Level == prev {
		return
	}

	Emit(w, components.Event{
		Kind:      components.EventRainChanged,
		RainLevel: r.Level,
		Rising:    r.Level > prev,
	})
	logger.Log.Debugw("rain level changed", "from", prev, "to", r.Level)
}

// NextRainLevel applies one roll of the rain walk.
func NextRainLevel(current int, up bool) int {
	if up && current < cfg.Rain.MaxLevel {
		return current + 1
	}
	if current > cfg.Rain.MinLevel {
		return current - 1
	}
	return current
}
