package hearts

import "math"

// Point is a 2D point in viewport pixels.
type Point struct {
	X, Y float64
}

// Curve is a cubic bezier segment continuing from the previous end point.
type Curve struct {
	C1, C2, To Point
}

// Outline returns the heart of the given size as a start point and four cubic
// segments, centred on the origin horizontally with its notch near the top.
func Outline(size float64) (Point, [4]Curve) {
	s := size / 15
	start := Point{0, 3 * s}
	return start, [4]Curve{
		{Point{0, -s}, Point{-5 * s, -s}, Point{-5 * s, 3 * s}},
		{Point{-5 * s, 7 * s}, Point{0, 10 * s}, Point{0, 14 * s}},
		{Point{0, 10 * s}, Point{5 * s, 7 * s}, Point{5 * s, 3 * s}},
		{Point{5 * s, -s}, Point{0, -s}, start},
	}
}

// Place rotates p by angle radians about the origin, then moves it to (x, y).
func (p Point) Place(angle, x, y float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{
		X: p.X*cos - p.Y*sin + x,
		Y: p.X*sin + p.Y*cos + y,
	}
}

// Scale multiplies both coordinates by k.
func (p Point) Scale(k float64) Point {
	return Point{p.X * k, p.Y * k}
}
