package hearts

import (
	"math"
	"testing"
)

func near(a, b Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestOutline_ClosedAndSymmetric(t *testing.T) {
	start, curves := Outline(15)

	if !near(start, Point{0, 3}) {
		t.Errorf("start = %v, want (0, 3)", start)
	}
	if !near(curves[3].To, start) {
		t.Errorf("outline ends at %v, want start %v", curves[3].To, start)
	}
	if !near(curves[1].To, Point{0, 14}) {
		t.Errorf("tip = %v, want (0, 14)", curves[1].To)
	}

	mirror := func(p Point) Point { return Point{-p.X, p.Y} }
	// Left lobe and right lobe are mirror images of each other.
	if !near(curves[0].To, mirror(curves[2].To)) {
		t.Errorf("lobes %v and %v are not mirrored", curves[0].To, curves[2].To)
	}
	if !near(curves[1].C1, mirror(curves[2].C2)) {
		t.Errorf("lower controls %v and %v are not mirrored", curves[1].C1, curves[2].C2)
	}
}

func TestOutline_ScalesWithSize(t *testing.T) {
	_, small := Outline(15)
	_, large := Outline(30)
	for i := range small {
		if !near(small[i].To.Scale(2), large[i].To) {
			t.Errorf("segment %d: %v doubled != %v", i, small[i].To, large[i].To)
		}
	}
}

func TestPoint_Place(t *testing.T) {
	got := Point{1, 0}.Place(math.Pi/2, 10, 20)
	if !near(got, Point{10, 21}) {
		t.Errorf("Place() = %v, want (10, 21)", got)
	}
}

func TestGlow(t *testing.T) {
	rings := Glow(1000, 500, GlowAlpha, 20)
	if len(rings) != 20 {
		t.Fatalf("len = %d, want 20", len(rings))
	}
	if rings[0].Radius != 1000 {
		t.Errorf("outer radius = %v, want 1000", rings[0].Radius)
	}
	var total float64
	for i, r := range rings {
		if r.X != 300 || r.Y != 100 {
			t.Fatalf("ring %d centre = (%v, %v), want (300, 100)", i, r.X, r.Y)
		}
		if i > 0 && r.Radius >= rings[i-1].Radius {
			t.Fatalf("ring %d radius %v not smaller than %v", i, r.Radius, rings[i-1].Radius)
		}
		total += r.Alpha
	}
	if math.Abs(total-GlowAlpha) > 1e-12 {
		t.Errorf("stacked alpha = %v, want %v", total, GlowAlpha)
	}

	if Glow(0, 500, GlowAlpha, 20) != nil {
		t.Error("Glow on an empty viewport should be nil")
	}
}
