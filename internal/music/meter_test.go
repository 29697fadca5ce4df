package music

import (
	"math"
	"testing"

	"github.com/faiface/beep"
)

// constant streams value on both channels forever.
func constant(value float64) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{value, value}
		}
		return len(samples), true
	})
}

// counting streams 1, 2, 3, ... on both channels.
func counting() beep.Streamer {
	next := 0.0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			next++
			samples[i] = [2]float64{next, next}
		}
		return len(samples), true
	})
}

func TestMeter_EmptyLevel(t *testing.T) {
	m := NewMeter(constant(0.5), 16)
	if got := m.Level(8); got != 0 {
		t.Errorf("Level() before streaming = %v, want 0", got)
	}
}

func TestMeter_Level(t *testing.T) {
	m := NewMeter(constant(0.5), 64)
	buf := make([][2]float64, 32)
	if n, ok := m.Stream(buf); n != 32 || !ok {
		t.Fatalf("Stream() = %d, %v", n, ok)
	}

	want := math.Pow(0.5, 0.3)
	if got := m.Level(32); math.Abs(got-want) > 1e-12 {
		t.Errorf("Level() = %v, want %v", got, want)
	}
}

func TestMeter_SnapshotWrapsOldestFirst(t *testing.T) {
	m := NewMeter(counting(), 4)
	m.Stream(make([][2]float64, 3))
	m.Stream(make([][2]float64, 3))

	got := m.Snapshot(4)
	want := []float64{3, 4, 5, 6}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i][0] != want[i] {
			t.Errorf("Snapshot()[%d] = %v, want %v", i, got[i][0], want[i])
		}
	}
}

func TestMeter_SnapshotShorterThanRing(t *testing.T) {
	m := NewMeter(counting(), 8)
	m.Stream(make([][2]float64, 2))

	got := m.Snapshot(8)
	if len(got) != 2 || got[0][0] != 1 || got[1][0] != 2 {
		t.Errorf("Snapshot() = %v, want [1 2]", got)
	}
}

func TestSmooth(t *testing.T) {
	if got := Smooth(1, 0, 0.6); math.Abs(got-0.6) > 1e-12 {
		t.Errorf("Smooth(1, 0, 0.6) = %v, want 0.6", got)
	}
	if got := Smooth(0, 1, 0.6); math.Abs(got-0.4) > 1e-12 {
		t.Errorf("Smooth(0, 1, 0.6) = %v, want 0.4", got)
	}
}
