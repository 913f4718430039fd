package stack

import (
	"math"
	"testing"
)

func TestPlacementsVerticalRise(t *testing.T) {
	const n, offset = 24, 2.0
	ps := Placements(n, offset, 0, DefaultTiltMultiplier)
	if len(ps) != n {
		t.Fatalf("got %d placements, want %d", len(ps), n)
	}
	for i, p := range ps {
		if p.Index != i {
			t.Errorf("placement %d has index %d", i, p.Index)
		}
		if want := -float64(i) * offset; p.DY != want {
			t.Errorf("layer %d: dy = %v, want %v", i, p.DY, want)
		}
		if p.DX != 0 {
			t.Errorf("layer %d: dx = %v without tilt, want 0", i, p.DX)
		}
	}
}

func TestPlacementsTilt(t *testing.T) {
	const n = 10
	ps := Placements(n, 1, 1, DefaultTiltMultiplier)

	if ps[0].DX != 0 {
		t.Errorf("bottom layer dx = %v, want 0", ps[0].DX)
	}
	if got := ps[n-1].DX; got != DefaultTiltMultiplier {
		t.Errorf("top layer dx at full tilt = %v, want %v", got, DefaultTiltMultiplier)
	}
	for i := 1; i < n; i++ {
		if ps[i].DX <= ps[i-1].DX {
			t.Fatalf("tilt shift not increasing up the stack: %v then %v", ps[i-1].DX, ps[i].DX)
		}
	}
}

func TestPlacementsTiltSymmetry(t *testing.T) {
	const n = 16
	left := Placements(n, 2, -0.7, DefaultTiltMultiplier)
	right := Placements(n, 2, 0.7, DefaultTiltMultiplier)
	for i := 0; i < n; i++ {
		if math.Abs(left[i].DX+right[i].DX) > 1e-9 {
			t.Errorf("layer %d: opposite tilts give dx %v and %v, want mirrored", i, left[i].DX, right[i].DX)
		}
		if left[i].DY != right[i].DY {
			t.Errorf("layer %d: tilt changed dy (%v vs %v)", i, left[i].DY, right[i].DY)
		}
	}
}

func TestPlacementsSingleLayer(t *testing.T) {
	ps := Placements(1, 3, 1, DefaultTiltMultiplier)
	if len(ps) != 1 {
		t.Fatalf("got %d placements, want 1", len(ps))
	}
	if ps[0].DX != 0 || ps[0].DY != 0 {
		t.Errorf("single layer displaced by (%v, %v), want origin", ps[0].DX, ps[0].DY)
	}
}

func TestClampTilt(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0}, {0.5, 0.5}, {1.5, 1}, {-3, -1},
	}
	for _, tt := range tests {
		if got := clampTilt(tt.in); got != tt.want {
			t.Errorf("clampTilt(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestQualityString(t *testing.T) {
	tests := []struct {
		q    Quality
		want string
	}{
		{QualityLow, "Low"},
		{QualityMedium, "Medium"},
		{QualityHigh, "High"},
	}
	for _, tt := range tests {
		if got := tt.q.String(); got != tt.want {
			t.Errorf("Quality(%d).String() = %q, want %q", tt.q, got, tt.want)
		}
	}
}
