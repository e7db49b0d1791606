package session

import (
	"github.com/automoto/downpour/components"
	"github.com/automoto/downpour/systems"
	"github.com/yohamta/donburi"
)

// System is one step of the per-frame pipeline.
type System func(w donburi.World)

// Scheduler runs systems in the order they were added.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(w donburi.World) {
	for _, system := range s.systems {
		system(w)
	}
}

func (s *Scheduler) Len() int {
	return len(s.systems)
}

// WhileAlive wraps a system so it is skipped once the player has died.
func WhileAlive(system System) System {
	return func(w donburi.World) {
		e, ok := systems.PlayerEntry(w)
		if !ok || !components.Life.Get(e).IsAlive {
			return
		}
		system(w)
	}
}

// NewPipeline returns the per-frame pipeline in its load-bearing order:
// status timers, input, physics, collision, hazards, then the gameplay
// checks. A dead player still falls and collides with the level.
func NewPipeline() *Scheduler {
	s := NewScheduler()

	// Must run before input decoding to override the host's input
	s.Add(systems.UpdateAutopilot)

	s.Add(WhileAlive(systems.UpdateStatusEffects))
	s.Add(WhileAlive(systems.UpdatePlayerInput))

	// Corpses obey gravity and collision too
	s.Add(systems.UpdatePhysics)
	s.Add(systems.UpdateCollisions)

	s.Add(WhileAlive(systems.UpdateHazards))
	s.Add(WhileAlive(systems.UpdateRain))
	s.Add(systems.UpdateAnimation)
	s.Add(WhileAlive(systems.UpdatePickups))
	s.Add(systems.UpdatePickupTweens)

	// Win and lose checks need fresh grounded state and pickups
	s.Add(systems.UpdateLevelState)
	s.Add(systems.UpdateCamera)
	return s
}
