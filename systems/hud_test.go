package systems

import (
	"math"
	"testing"
)

// The indicator orbits the screen center opposite the shadow direction: with
// the sun due north the stack shadows fall up-screen, so the dot sits at the
// bottom edge of the orbit.
func TestSunOrbitPositionOpposesShadowDirection(t *testing.T) {
	const w, h, margin = 640, 360, 140
	tests := []struct {
		horizontal float64
		x, y       float64
	}{
		{0, 320, 320},   // bottom center
		{90, 460, 180},  // right center
		{180, 320, 40},  // top center
		{270, 180, 180}, // left center
	}
	for _, tt := range tests {
		x, y := sunOrbitPosition(tt.horizontal, w, h, margin)
		if math.Abs(x-tt.x) > 1e-6 || math.Abs(y-tt.y) > 1e-6 {
			t.Errorf("sunOrbitPosition(%v) = (%v, %v), want (%v, %v)",
				tt.horizontal, x, y, tt.x, tt.y)
		}
	}
}

func TestSunOrbitPositionStaysOnOrbit(t *testing.T) {
	const w, h, margin = 640, 360, 140
	for horizontal := 0.0; horizontal < 360; horizontal += 15 {
		x, y := sunOrbitPosition(horizontal, w, h, margin)
		dist := math.Hypot(x-320, y-180)
		if math.Abs(dist-margin) > 1e-6 {
			t.Errorf("horizontal %v: distance from center = %v, want %v", horizontal, dist, margin)
		}
	}
}

func TestSunDotColorShiftsWithElevation(t *testing.T) {
	horizon := sunDotColor(0)
	if horizon.R != 255 || horizon.G != 140 {
		t.Errorf("horizon color = %v, want sunset orange", horizon)
	}
	noon := sunDotColor(1)
	if noon.G != 255 || noon.B <= horizon.B {
		t.Errorf("overhead color = %v, want brighter than horizon %v", noon, horizon)
	}
	// No discontinuity where the two ramps meet.
	lo, hi := sunDotColor(0.499), sunDotColor(0.501)
	if int(hi.G)-int(lo.G) > 2 || int(hi.B)-int(lo.B) > 2 {
		t.Errorf("color jumps at midpoint: %v vs %v", lo, hi)
	}

	clamped := sunDotColor(2)
	if clamped != sunDotColor(1) {
		t.Errorf("factor above 1 should clamp, got %v", clamped)
	}
}
