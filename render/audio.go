package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/automoto/downpour/assets"
	"github.com/automoto/downpour/components"
	cfg "github.com/automoto/downpour/config"
	"github.com/automoto/downpour/logger"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// Audio plays the sound cues for simulation events and keeps a rain loop
// whose volume follows the rain level.
type Audio struct {
	context  *audio.Context
	sfxCache map[string][]byte // decoded PCM per path
	rain     *audio.Player
	volume   float64
	muted    bool
}

func NewAudio(ctx *audio.Context) *Audio {
	return &Audio{
		context:  ctx,
		sfxCache: make(map[string][]byte),
		volume:   cfg.Audio.DefaultSFXVol,
	}
}

// Preload decodes every sound effect so the first play doesn't stall.
func (a *Audio) Preload() {
	for _, path := range cfg.Sound.SFXPaths {
		if _, err := a.decode(path); err != nil {
			logger.Log.Warnw("could not preload sound", "path", path, "error", err)
		}
	}
}

func (a *Audio) decode(path string) ([]byte, error) {
	if cached, ok := a.sfxCache[path]; ok {
		return cached, nil
	}
	data, err := assets.ReadAudio(path)
	if err != nil {
		return nil, err
	}
	stream, err := wav.DecodeWithSampleRate(a.context.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode wav %s: %w", path, err)
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}
	a.sfxCache[path] = decoded
	return decoded, nil
}

// Play starts a one-shot sound.
func (a *Audio) Play(id cfg.SoundID) {
	if a.muted || a.volume <= 0 || id == cfg.SoundNone {
		return
	}
	path, ok := cfg.Sound.SFXPaths[id]
	if !ok {
		return
	}
	decoded, err := a.decode(path)
	if err != nil {
		logger.Log.Warnw("could not play sound", "path", path, "error", err)
		return
	}

	player := a.context.NewPlayerFromBytes(decoded)
	volume := a.volume
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		volume *= mult
	}
	player.SetVolume(volume)
	player.Play()
}

// HandleEvents plays the cue of each event.
func (a *Audio) HandleEvents(events []components.Event) {
	for _, e := range events {
		a.Play(e.Sound())
	}
}

// SetRainLevel adjusts the rain loop, starting it on first use.
func (a *Audio) SetRainLevel(level int) {
	if a.rain == nil {
		decoded, err := a.decode(cfg.Sound.SFXPaths[cfg.SoundRain])
		if err != nil {
			logger.Log.Warnw("could not start rain loop", "error", err)
			return
		}
		loop := audio.NewInfiniteLoop(bytes.NewReader(decoded), int64(len(decoded)))
		player, err := a.context.NewPlayer(loop)
		if err != nil {
			logger.Log.Warnw("could not start rain loop", "error", err)
			return
		}
		a.rain = player
		a.rain.Play()
	}
	v := a.volume * cfg.Audio.RainLoopVol * float64(level)
	if a.muted {
		v = 0
	}
	a.rain.SetVolume(v)
}

func (a *Audio) SetVolume(v float64) { a.volume = cfg.ClampVolume(v) }
func (a *Audio) Volume() float64     { return a.volume }
func (a *Audio) SetMuted(m bool)     { a.muted = m }
func (a *Audio) Muted() bool         { return a.muted }

// StopRain silences the rain loop, e.g. on the title screen.
func (a *Audio) StopRain() {
	if a.rain != nil {
		_ = a.rain.Close()
		a.rain = nil
	}
}
