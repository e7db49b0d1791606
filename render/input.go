package render

import (
	"github.com/automoto/downpour/components"
	cfg "github.com/automoto/downpour/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Binding maps one action to keys and standard gamepad buttons.
type Binding struct {
	Keys    []ebiten.Key
	Buttons []ebiten.StandardGamepadButton
}

// Bindings is the default device mapping.
var Bindings = map[cfg.ActionID]Binding{
	cfg.ActionMoveLeft: {
		Keys:    []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	cfg.ActionMoveRight: {
		Keys:    []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	cfg.ActionMoveUp: {
		Keys:    []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
	},
	cfg.ActionJump: {
		Keys:    []ebiten.Key{ebiten.KeySpace},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	cfg.ActionContinue: {
		Keys:    []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	cfg.ActionToggleTuning: {
		Keys: []ebiten.Key{ebiten.KeyF1},
	},
	cfg.ActionTuneNext: {
		Keys: []ebiten.Key{ebiten.KeyTab},
	},
	cfg.ActionTuneUp: {
		Keys: []ebiten.Key{ebiten.KeyPageUp},
	},
	cfg.ActionTuneDown: {
		Keys: []ebiten.Key{ebiten.KeyPageDown},
	},
	cfg.ActionQuit: {
		Keys:    []ebiten.Key{ebiten.KeyEscape},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
	},
}

// Input polls keyboard and gamepads once per tick.
type Input struct {
	current  [cfg.ActionCount]bool
	previous [cfg.ActionCount]bool
	axisX    float64

	// Reusable slice for gamepad IDs to avoid allocations
	gamepadIDs []ebiten.GamepadID
}

// Poll reads the devices. Must run once per tick before any query.
func (in *Input) Poll() {
	// Swap buffers: current becomes previous, then zero out current
	in.previous = in.current
	in.current = [cfg.ActionCount]bool{}
	in.axisX = 0

	in.gamepadIDs = ebiten.AppendGamepadIDs(in.gamepadIDs[:0])

	for action, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				in.current[action] = true
			}
		}
		for _, id := range in.gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(id) {
				continue
			}
			for _, btn := range binding.Buttons {
				if ebiten.IsStandardGamepadButtonPressed(id, btn) {
					in.current[action] = true
				}
			}
		}
	}

	// The stick goes to the core raw; dead zone and scaling happen there.
	for _, id := range in.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		if x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal); x != 0 {
			in.axisX = x
			break
		}
	}
}

func (in *Input) Pressed(a cfg.ActionID) bool {
	return in.current[a]
}

func (in *Input) JustPressed(a cfg.ActionID) bool {
	return in.current[a] && !in.previous[a]
}

// Snapshot is the gameplay input for this tick.
func (in *Input) Snapshot() components.InputSnapshot {
	return components.InputSnapshot{
		AxisX: in.axisX,
		Left:  in.current[cfg.ActionMoveLeft],
		Right: in.current[cfg.ActionMoveRight],
		Up:    in.current[cfg.ActionMoveUp],
		Jump:  in.current[cfg.ActionJump],
	}
}
