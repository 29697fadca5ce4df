package hearts

import "math"

// GlowAlpha is the peak opacity of the background glow without music.
const GlowAlpha = 0.05

// Ring is one filled circle of the layered background glow.
type Ring struct {
	X, Y   float64
	Radius float64
	Alpha  float64
}

// Glow approximates a radial gradient centred at 30% width and 20% height,
// fading from peak alpha at radius 10 to transparent at the larger viewport
// side. Rings are ordered outermost first; stacked, their opacities add up to
// peak at the centre.
func Glow(width, height, peak float64, steps int) []Ring {
	if steps <= 0 || width <= 0 || height <= 0 {
		return nil
	}
	const inner = 10.0
	outer := math.Max(math.Max(width, height), inner)
	cx, cy := width*0.3, height*0.2

	rings := make([]Ring, steps)
	step := (outer - inner) / float64(steps)
	for i := range rings {
		rings[i] = Ring{
			X:      cx,
			Y:      cy,
			Radius: outer - float64(i)*step,
			Alpha:  peak / float64(steps),
		}
	}
	return rings
}
