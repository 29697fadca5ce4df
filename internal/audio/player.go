// Package audio plays the background track on the sound device.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/heartclock/internal/config"
	"github.com/iburimskiy/heartclock/internal/logger"
	"github.com/iburimskiy/heartclock/internal/music"
)

// Player loops one track forever behind a pause control. It implements
// music.Player. Methods must be called from a single goroutine; the speaker's
// own goroutine is synchronised through speaker.Lock.
type Player struct {
	log    *logger.Logger
	volume float64

	track  *music.Track
	format beep.Format
	ctrl   *beep.Ctrl
	meter  *music.Meter

	initDone bool
}

// NewPlayer creates a player with nothing loaded. volume is linear in 0..1.
func NewPlayer(volume float64, log *logger.Logger) *Player {
	if log == nil {
		log = logger.Discard()
	}
	return &Player{
		log:    log.WithFields("component", "audio"),
		volume: volume,
	}
}

// Load replaces the current track with the file at path. The new track starts
// paused.
func (p *Player) Load(path string) error {
	track, err := music.Open(path)
	if err != nil {
		return err
	}

	meter := music.NewMeter(beep.Loop(-1, track.Streamer), config.MeterRingSize)
	ctrl := &beep.Ctrl{Streamer: p.withVolume(meter), Paused: true}

	bufferSize := track.Format.SampleRate.N(time.Second / 20)
	switch {
	case !p.initDone, p.format.SampleRate != track.Format.SampleRate:
		// Init stops the previous device, so nothing else is left playing.
		if err := speaker.Init(track.Format.SampleRate, bufferSize); err != nil {
			_ = track.Close()
			return fmt.Errorf("init speaker: %w", err)
		}
		p.initDone = true
	default:
		speaker.Clear()
	}

	if p.track != nil {
		if err := p.track.Close(); err != nil {
			p.log.Warn("closing previous track", "path", p.track.Path, "error", err)
		}
	}

	p.track = track
	p.format = track.Format
	p.ctrl = ctrl
	p.meter = meter

	speaker.Play(ctrl)
	p.log.Info("track loaded",
		"path", path,
		"sample_rate", int(track.Format.SampleRate),
		"length", track.Format.SampleRate.D(track.Streamer.Len()).String())
	return nil
}

func (p *Player) withVolume(s beep.Streamer) beep.Streamer {
	if p.volume >= 1 {
		return s
	}
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(math.Max(p.volume, 1e-6)),
		Silent:   p.volume <= 0,
	}
}

// Play resumes the loaded track.
func (p *Player) Play() error {
	if p.ctrl == nil {
		return music.ErrNoTrack
	}
	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
	return nil
}

// Pause stops the track where it is.
func (p *Player) Pause() {
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
}

// Paused reports whether the track is paused. With nothing loaded it is.
func (p *Player) Paused() bool {
	if p.ctrl == nil {
		return true
	}
	speaker.Lock()
	defer speaker.Unlock()
	return p.ctrl.Paused
}

// Loaded returns the path of the current track, or "" when nothing is loaded.
func (p *Player) Loaded() string {
	if p.track == nil {
		return ""
	}
	return p.track.Path
}

// Level returns the current loudness in 0..1, zero when silent or paused.
func (p *Player) Level() float64 {
	if p.meter == nil || p.Paused() {
		return 0
	}
	return p.meter.Level(config.MeterWindow)
}

// Close stops playback and releases the track.
func (p *Player) Close() error {
	if p.track == nil {
		return nil
	}
	speaker.Clear()
	err := p.track.Close()
	p.track, p.ctrl, p.meter = nil, nil, nil
	return err
}
