// Package layout holds the screen geometry of the window view.
package layout

import "math"

// MaxDeviceScale caps the drawing surface resolution relative to the window.
const MaxDeviceScale = 2.0

// Button dimensions in viewport pixels.
const (
	ButtonWidth  = 120
	ButtonHeight = 40
	ButtonMargin = 20
)

// Rect is an axis-aligned rectangle in viewport pixels.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Center returns the centre point of r.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// DeviceScale clamps a monitor scale factor into [1, MaxDeviceScale].
func DeviceScale(factor float64) float64 {
	if factor <= 0 || math.IsNaN(factor) {
		return 1
	}
	return math.Min(MaxDeviceScale, math.Max(1, factor))
}

// Surface returns the drawing surface size for a window of the given size.
func Surface(width, height int, scale float64) (int, int) {
	return int(math.Floor(float64(width) * scale)), int(math.Floor(float64(height) * scale))
}

// ToggleButton places the music toggle in the top-right corner.
func ToggleButton(viewWidth float64) Rect {
	return Rect{
		X: viewWidth - ButtonWidth - ButtonMargin,
		Y: ButtonMargin,
		W: ButtonWidth,
		H: ButtonHeight,
	}
}

// CounterCell is the box of the i-th of six counter fields, laid out in a row
// centred in the viewport. cellWidth is the width of one field.
func CounterCell(i int, viewWidth, viewHeight, cellWidth, cellHeight float64) Rect {
	const gap = 0.25
	total := 6*cellWidth + 5*gap*cellWidth
	x := (viewWidth-total)/2 + float64(i)*cellWidth*(1+gap)
	y := (viewHeight - cellHeight) / 2
	return Rect{X: x, Y: y, W: cellWidth, H: cellHeight}
}
