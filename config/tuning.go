package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// Tuning is a partial override of the movement and hazard tunables read
// from YAML. Nil fields keep their current value.
type Tuning struct {
	MoveAcceleration          *float64 `yaml:"move_acceleration"`
	MaxMoveSpeed              *float64 `yaml:"max_move_speed"`
	GroundDragFactor          *float64 `yaml:"ground_drag_factor"`
	AirDragFactor             *float64 `yaml:"air_drag_factor"`
	MaxJumpTime               *float64 `yaml:"max_jump_time"`
	JumpLaunchVelocity        *float64 `yaml:"jump_launch_velocity"`
	GravityAcceleration       *float64 `yaml:"gravity_acceleration"`
	MaxFallSpeed              *float64 `yaml:"max_fall_speed"`
	JumpControlPower          *float64 `yaml:"jump_control_power"`
	GroundSpeedMultiplierStep *float64 `yaml:"ground_speed_multiplier_step"`
	AirSpeedMultiplierStep    *float64 `yaml:"air_speed_multiplier_step"`

	RainDamage  *float64 `yaml:"rain_damage"`
	WaterDamage *float64 `yaml:"water_damage"`
}

// ParseTuning decodes a YAML tuning document. Unknown keys are rejected so
// typos surface instead of silently doing nothing. An empty document is a
// valid, empty override.
func ParseTuning(data []byte) (Tuning, error) {
	var t Tuning
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return Tuning{}, fmt.Errorf("parse tuning: %w", err)
	}
	return t, nil
}

// LoadTuning reads and parses the tuning file at path.
func LoadTuning(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("read tuning %s: %w", path, err)
	}
	return ParseTuning(data)
}

// ApplyPlayer overlays the movement fields onto p.
func (t Tuning) ApplyPlayer(p *PlayerConfig) {
	set(&p.MoveAcceleration, t.MoveAcceleration)
	set(&p.MaxMoveSpeed, t.MaxMoveSpeed)
	set(&p.GroundDragFactor, t.GroundDragFactor)
	set(&p.AirDragFactor, t.AirDragFactor)
	set(&p.MaxJumpTime, t.MaxJumpTime)
	set(&p.JumpLaunchVelocity, t.JumpLaunchVelocity)
	set(&p.GravityAcceleration, t.GravityAcceleration)
	set(&p.MaxFallSpeed, t.MaxFallSpeed)
	set(&p.JumpControlPower, t.JumpControlPower)
	set(&p.GroundSpeedMultiplierStep, t.GroundSpeedMultiplierStep)
	set(&p.AirSpeedMultiplierStep, t.AirSpeedMultiplierStep)
}

// ApplyHazard overlays the damage fields onto h.
func (t Tuning) ApplyHazard(h *HazardConfig) {
	set(&h.RainDamage, t.RainDamage)
	set(&h.WaterDamage, t.WaterDamage)
}

// Apply overlays the tuning onto the global configuration.
func (t Tuning) Apply() {
	t.ApplyPlayer(&Player)
	t.ApplyHazard(&Hazard)
}

func set(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

// TuningWatcher re-reads a tuning file whenever it changes on disk and
// delivers the parsed result on Updates. Parse failures go to Errors and the
// previous tuning stays in effect.
type TuningWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	Updates chan Tuning
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
	done    chan struct{}
}

// WatchTuning starts watching path. The directory is watched rather than the
// file so editors that replace the file on save are still seen.
func WatchTuning(path string) (*TuningWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch tuning %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch tuning %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch tuning %s: %w", path, err)
	}

	tw := &TuningWatcher{
		path:    abs,
		watcher: w,
		Updates: make(chan Tuning, 4),
		Errors:  make(chan error, 4),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go tw.run()
	return tw, nil
}

// Close stops the watcher. It is safe to call more than once.
func (tw *TuningWatcher) Close() error {
	var err error
	tw.once.Do(func() {
		close(tw.closeCh)
		err = tw.watcher.Close()
		<-tw.done
		close(tw.Updates)
		close(tw.Errors)
	})
	return err
}

func (tw *TuningWatcher) run() {
	defer close(tw.done)

	// Saves often arrive as several events; reload once they settle.
	const settle = 100 * time.Millisecond
	var timer *time.Timer
	var reload <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-tw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != tw.path {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(settle)
			} else {
				timer.Reset(settle)
			}
			reload = timer.C
		case <-reload:
			reload = nil
			t, err := LoadTuning(tw.path)
			if err != nil {
				tw.send(nil, err)
				continue
			}
			tw.send(&t, nil)
		case err, ok := <-tw.watcher.Errors:
			if !ok {
				return
			}
			tw.send(nil, err)
		case <-tw.closeCh:
			return
		}
	}
}

// send never blocks the watcher goroutine; a slow consumer only misses
// intermediate reloads.
func (tw *TuningWatcher) send(t *Tuning, err error) {
	if err != nil {
		select {
		case tw.Errors <- err:
		default:
		}
		return
	}
	select {
	case tw.Updates <- *t:
	default:
	}
}
