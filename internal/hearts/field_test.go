package hearts

import (
	"math"
	"math/rand/v2"
	"testing"
)

func newTestField(max int) *Field {
	f := NewField(max, rand.New(rand.NewPCG(1, 2)))
	f.Resize(800, 600)
	return f
}

func TestField_SpawnsOnePerFrameUpToCap(t *testing.T) {
	f := newTestField(5)
	for i := 1; i <= 5; i++ {
		f.Step()
		if got := f.Len(); got != i {
			t.Fatalf("after %d steps Len() = %d, want %d", i, got, i)
		}
	}
	f.Step()
	if got := f.Len(); got > 5 {
		t.Errorf("Len() = %d, exceeds cap 5", got)
	}
}

func TestField_DefaultCap(t *testing.T) {
	f := NewField(0, rand.New(rand.NewPCG(3, 4)))
	f.Resize(1920, 1080)
	for i := 0; i < 500; i++ {
		f.Step()
		if f.Len() > DefaultMaxParticles {
			t.Fatalf("Len() = %d, exceeds default cap %d", f.Len(), DefaultMaxParticles)
		}
	}
}

func TestField_SpawnRanges(t *testing.T) {
	f := newTestField(1000)
	for i := 0; i < 1000; i++ {
		p := f.spawn()
		switch {
		case p.X < 0 || p.X >= 800:
			t.Fatalf("X = %v out of [0, 800)", p.X)
		case p.Y < 610 || p.Y >= 660:
			t.Fatalf("Y = %v out of [610, 660)", p.Y)
		case p.Size < 8 || p.Size >= 18:
			t.Fatalf("Size = %v out of [8, 18)", p.Size)
		case p.SpeedY < 1.8 || p.SpeedY >= 3.8:
			t.Fatalf("SpeedY = %v out of [1.8, 3.8)", p.SpeedY)
		case p.SpeedX < -1 || p.SpeedX >= 1:
			t.Fatalf("SpeedX = %v out of [-1, 1)", p.SpeedX)
		case p.Alpha < 0.5 || p.Alpha >= 0.95:
			t.Fatalf("Alpha = %v out of [0.5, 0.95)", p.Alpha)
		case p.Rotation < 0 || p.Rotation >= 2*math.Pi:
			t.Fatalf("Rotation = %v out of [0, 2pi)", p.Rotation)
		case p.RotationSpeed < -0.01 || p.RotationSpeed >= 0.01:
			t.Fatalf("RotationSpeed = %v out of [-0.01, 0.01)", p.RotationSpeed)
		}
	}
}

func TestParticle_Advance(t *testing.T) {
	p := Particle{X: 100, Y: 200, SpeedX: 0.5, SpeedY: 2, Alpha: 0.8, Rotation: 1, RotationSpeed: 0.01}
	p.advance()

	if p.Y != 198 {
		t.Errorf("Y = %v, want 198", p.Y)
	}
	if want := 100 + 0.5*math.Sin(198*0.01); math.Abs(p.X-want) > 1e-12 {
		t.Errorf("X = %v, want %v", p.X, want)
	}
	if math.Abs(p.Rotation-1.01) > 1e-12 {
		t.Errorf("Rotation = %v, want 1.01", p.Rotation)
	}
	if math.Abs(p.Alpha-0.7975) > 1e-12 {
		t.Errorf("Alpha = %v, want 0.7975", p.Alpha)
	}
}

func TestField_Culls(t *testing.T) {
	f := newTestField(3)
	f.particles = []Particle{
		{Y: -39, SpeedY: 2, Alpha: 0.9},    // leaves the top
		{Y: 300, SpeedY: 1, Alpha: 0.0025}, // fades out
		{Y: 300, SpeedY: 1, Alpha: 0.9},    // survives
	}
	f.max = 3

	f.Step()

	ps := f.Particles()
	if len(ps) != 1 {
		t.Fatalf("Len() = %d, want 1", len(ps))
	}
	if ps[0].Y != 299 {
		t.Errorf("survivor Y = %v, want 299", ps[0].Y)
	}
}

func TestField_EveryParticleEventuallyLeaves(t *testing.T) {
	f := newTestField(10)
	for i := 0; i < 10; i++ {
		f.Step()
	}
	f.max = 0
	// Alpha starts below 0.95 and fades by 0.0025 per frame.
	for i := 0; i < 400; i++ {
		f.Step()
	}
	if f.Len() != 0 {
		t.Errorf("Len() = %d after fade-out, want 0", f.Len())
	}
}

func TestField_Resize(t *testing.T) {
	f := NewField(1, nil)
	if !f.Resize(640, 480) {
		t.Error("first Resize should report a change")
	}
	if f.Resize(640, 480) {
		t.Error("Resize to the same size should not report a change")
	}
	if w, h := f.Size(); w != 640 || h != 480 {
		t.Errorf("Size() = %v x %v, want 640 x 480", w, h)
	}
}
