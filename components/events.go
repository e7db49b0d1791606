package components

import (
	cfg "github.com/automoto/downpour/config"
	"github.com/automoto/downpour/shared/tilegrid"
	"github.com/yohamta/donburi"
)

// EventKind identifies something the host may want to react to.
type EventKind int

const (
	EventFootstep EventKind = iota
	EventJump
	EventDeath
	EventPickup
	EventRainChanged
	EventLevelWon
)

func (k EventKind) String() string {
	switch k {
	case EventFootstep:
		return "footstep"
	case EventJump:
		return "jump"
	case EventDeath:
		return "death"
	case EventPickup:
		return "pickup"
	case EventRainChanged:
		return "rain-level-changed"
	case EventLevelWon:
		return "level-won"
	}
	return "unknown"
}

type Event struct {
	Kind      EventKind
	Pickup    tilegrid.Pickup // EventPickup only
	RainLevel int             // EventRainChanged only
	Rising    bool            // EventRainChanged only
}

// Sound maps the event to its sound effect.
func (e Event) Sound() cfg.SoundID {
	switch e.Kind {
	case EventFootstep:
		return cfg.SoundFootstep
	case EventJump:
		return cfg.SoundJump
	case EventDeath:
		return cfg.SoundDeath
	case EventLevelWon:
		return cfg.SoundLevelWon
	case EventRainChanged:
		if e.Rising {
			return cfg.SoundThunder
		}
		return cfg.SoundNone
	case EventPickup:
		switch e.Pickup {
		case tilegrid.PickupFirePiece:
			return cfg.SoundFirePiece
		case tilegrid.PickupInvulnerability:
			return cfg.SoundInvulnerability
		default:
			return cfg.SoundPowerUp
		}
	}
	return cfg.SoundNone
}

// EventQueueData collects the events raised during updates until the host
// drains them.
type EventQueueData struct {
	Events []Event
}

func (q *EventQueueData) Push(e Event) {
	q.Events = append(q.Events, e)
}

// Drain returns the queued events and empties the queue.
func (q *EventQueueData) Drain() []Event {
	events := q.Events
	q.Events = nil
	return events
}

var EventQueue = donburi.NewComponentType[EventQueueData]()
