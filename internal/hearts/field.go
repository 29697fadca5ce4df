// Package hearts simulates the floating heart particles of the background.
//
// A Field owns its particles, viewport and random source. The render loop calls
// Step once per frame and draws whatever Particles returns.
package hearts

import (
	"math"
	"math/rand/v2"
)

const (
	// DefaultMaxParticles is the soft cap on live particles.
	DefaultMaxParticles = 80

	// FadePerFrame is the opacity lost by every particle each frame.
	FadePerFrame = 0.0025

	// CullAbove is how far above the top edge a particle may drift before removal.
	CullAbove = -40.0

	swayFrequency = 0.01
	shineChance   = 0.35
)

// Particle is a single heart.
type Particle struct {
	X, Y          float64
	Size          float64
	SpeedX        float64
	SpeedY        float64
	Alpha         float64
	Rotation      float64
	RotationSpeed float64
	Shine         bool
}

// Field is the working set of particles over a viewport.
type Field struct {
	particles []Particle
	width     float64
	height    float64
	max       int
	rng       *rand.Rand
}

// NewField creates an empty field. A non-positive maxParticles uses
// DefaultMaxParticles; a nil rng is seeded randomly.
func NewField(maxParticles int, rng *rand.Rand) *Field {
	if maxParticles <= 0 {
		maxParticles = DefaultMaxParticles
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Field{
		particles: make([]Particle, 0, maxParticles),
		max:       maxParticles,
		rng:       rng,
	}
}

// Resize sets the viewport size and reports whether it changed.
func (f *Field) Resize(width, height float64) bool {
	if width == f.width && height == f.height {
		return false
	}
	f.width, f.height = width, height
	return true
}

// Size returns the viewport size.
func (f *Field) Size() (width, height float64) {
	return f.width, f.height
}

// Particles returns the live particles. The slice is reused by the next Step.
func (f *Field) Particles() []Particle {
	return f.particles
}

// Len returns the number of live particles.
func (f *Field) Len() int {
	return len(f.particles)
}

// Step advances the field by one frame: spawn one particle while under the cap,
// move and fade every particle, and drop those that left the top or faded out.
func (f *Field) Step() {
	if len(f.particles) < f.max {
		f.particles = append(f.particles, f.spawn())
	}

	kept := f.particles[:0]
	for _, p := range f.particles {
		p.advance()
		if p.Y < CullAbove || p.Alpha <= 0 {
			continue
		}
		kept = append(kept, p)
	}
	f.particles = kept
}

func (p *Particle) advance() {
	p.Y -= p.SpeedY
	p.X += p.SpeedX * math.Sin(p.Y*swayFrequency)
	p.Rotation += p.RotationSpeed
	p.Alpha -= FadePerFrame
}

func (f *Field) spawn() Particle {
	return Particle{
		X:             f.uniform(0, f.width),
		Y:             f.height + f.uniform(10, 60),
		Size:          f.uniform(8, 18),
		SpeedY:        f.uniform(18, 38) / 10,
		SpeedX:        f.uniform(-10, 10) / 10,
		Alpha:         f.uniform(0.5, 0.95),
		Rotation:      f.uniform(0, 2*math.Pi),
		RotationSpeed: f.uniform(-0.01, 0.01),
		Shine:         f.rng.Float64() < shineChance,
	}
}

func (f *Field) uniform(lo, hi float64) float64 {
	return f.rng.Float64()*(hi-lo) + lo
}
