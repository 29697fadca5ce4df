package music

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// Meter wraps a beep.Streamer and records the last N samples into a ring buffer
// so the renderer can react to recently played audio.
type Meter struct {
	Source    beep.Streamer
	buffer    [][2]float64
	nextIndex int
	filled    int
	mu        sync.RWMutex
}

// NewMeter taps src with a ring of ringSize stereo samples.
func NewMeter(src beep.Streamer, ringSize int) *Meter {
	return &Meter{
		Source: src,
		buffer: make([][2]float64, ringSize),
	}
}

func (m *Meter) Stream(samples [][2]float64) (int, bool) {
	n, ok := m.Source.Stream(samples)
	if n > 0 {
		m.mu.Lock()
		for i := 0; i < n; i++ {
			m.buffer[m.nextIndex] = samples[i]
			m.nextIndex++
			if m.nextIndex >= len(m.buffer) {
				m.nextIndex = 0
			}
		}
		m.filled = min(len(m.buffer), m.filled+n)
		m.mu.Unlock()
	}
	return n, ok
}

func (m *Meter) Err() error { return m.Source.Err() }

// Snapshot returns up to the last n samples, oldest first.
func (m *Meter) Snapshot(n int) [][2]float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n = min(n, m.filled)
	out := make([][2]float64, n)
	idx := m.nextIndex - n
	if idx < 0 {
		idx += len(m.buffer)
	}
	for i := range out {
		out[i] = m.buffer[idx]
		idx++
		if idx >= len(m.buffer) {
			idx = 0
		}
	}
	return out
}

// Level returns the loudness of the last n samples in 0..1: the mono RMS with
// a strong power compression so quiet passages still register.
func (m *Meter) Level(n int) float64 {
	samples := m.Snapshot(n)
	if len(samples) == 0 {
		return 0
	}
	var sumSquares float64
	for _, s := range samples {
		mono := (s[0] + s[1]) * 0.5
		sumSquares += mono * mono
	}
	rms := math.Sqrt(sumSquares / float64(len(samples)))
	return min(1, math.Pow(rms, 0.3))
}

// Smooth blends a new level into prev with the given factor of the old value.
func Smooth(prev, level, factor float64) float64 {
	return factor*prev + (1-factor)*level
}
