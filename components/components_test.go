package components

import (
	"image"
	"testing"

	cfg "github.com/automoto/downpour/config"
	"github.com/automoto/downpour/shared/tilegrid"
	"github.com/yohamta/donburi/features/math"
)

func TestPlayerBounds(t *testing.T) {
	got := PlayerBounds(math.NewVec2(100, 200))
	want := image.Rect(89, 162, 111, 200)
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestAnimationSelectorIndex(t *testing.T) {
	seen := map[int]string{}
	for _, moving := range []bool{false, true} {
		for _, suited := range []bool{false, true} {
			for _, invulnerable := range []bool{false, true} {
				s := AnimationSelector{Moving: moving, Suited: suited, Invulnerable: invulnerable}
				i := s.Index()
				if i < 0 || i >= 8 {
					t.Fatalf("Index() out of range: %d", i)
				}
				if prev, ok := seen[i]; ok {
					t.Fatalf("Index %d shared by %s and %s", i, prev, s)
				}
				seen[i] = s.String()
			}
		}
	}
}

func TestStatusEffectReset(t *testing.T) {
	s := NewStatusEffects()
	s.Speed.Multiplier = 3
	s.Speed.AirMultiplier = 2
	s.Speed.Start(5)
	if !s.Speed.Active || s.Speed.Duration != 5 {
		t.Fatalf("Expected active effect with duration 5, got %+v", s.Speed)
	}
	s.Speed.Reset()
	if s.Speed.Active || s.Speed.Multiplier != 1 || s.Speed.AirMultiplier != 1 {
		t.Errorf("Expected reset effect, got %+v", s.Speed)
	}
}

func TestEventSound(t *testing.T) {
	tests := []struct {
		event Event
		want  cfg.SoundID
	}{
		{Event{Kind: EventFootstep}, cfg.SoundFootstep},
		{Event{Kind: EventPickup, Pickup: tilegrid.PickupFirePiece}, cfg.SoundFirePiece},
		{Event{Kind: EventPickup, Pickup: tilegrid.PickupSpeed}, cfg.SoundPowerUp},
		{Event{Kind: EventRainChanged, Rising: true}, cfg.SoundThunder},
		{Event{Kind: EventRainChanged}, cfg.SoundNone},
	}
	for _, tt := range tests {
		t.Run(tt.event.Kind.String(), func(t *testing.T) {
			if got := tt.event.Sound(); got != tt.want {
				t.Errorf("Expected sound %v, got %v", tt.want, got)
			}
		})
	}
}

func TestEventQueueDrain(t *testing.T) {
	var q EventQueueData
	q.Push(Event{Kind: EventJump})
	q.Push(Event{Kind: EventDeath})
	events := q.Drain()
	if len(events) != 2 || events[1].Kind != EventDeath {
		t.Fatalf("Expected 2 events ending in death, got %v", events)
	}
	if len(q.Drain()) != 0 {
		t.Error("Expected empty queue after drain")
	}
}
