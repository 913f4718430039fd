package stack

import (
	"math"
	"testing"
)

func TestSunHorizontalWraps(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		delta float64
		want  float64
	}{
		{"wrap past 360", 350, 20, 10},
		{"wrap below 0", 10, -30, 340},
		{"full circle", 135, 360, 135},
		{"no wrap", 90, 45, 135},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSun(tt.start, 45)
			if got := s.AdjustHorizontal(tt.delta); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("AdjustHorizontal(%v) from %v = %v, want %v", tt.delta, tt.start, got, tt.want)
			}
		})
	}
}

func TestSunVerticalClamps(t *testing.T) {
	s := NewSun(0, 80)
	if got := s.AdjustVertical(100); got != 90 {
		t.Errorf("raised past zenith: got %v, want 90", got)
	}
	if got := s.AdjustVertical(-500); got != 0 {
		t.Errorf("lowered past horizon: got %v, want 0", got)
	}
	if got := NewSun(0, 120).VerticalAngle(); got != 90 {
		t.Errorf("constructor clamp: got %v, want 90", got)
	}
}

func TestSunDirection(t *testing.T) {
	tests := []struct {
		horizontal float64
		wantX      float64
		wantY      float64
	}{
		{0, 0, -1},   // sun north, shadow cast up-screen
		{90, -1, 0},  // sun east, shadow cast west
		{180, 0, 1},  // sun south, shadow cast down-screen
		{270, 1, 0},  // sun west, shadow cast east
	}
	for _, tt := range tests {
		s := NewSun(tt.horizontal, 45)
		dx, dy := s.Direction()
		if math.Abs(dx-tt.wantX) > 1e-9 || math.Abs(dy-tt.wantY) > 1e-9 {
			t.Errorf("Direction at %v deg = (%v, %v), want (%v, %v)", tt.horizontal, dx, dy, tt.wantX, tt.wantY)
		}
	}
}

func TestShadowLengthShrinksAsSunClimbs(t *testing.T) {
	const stackHeight, k = 56.0, 2.0
	prev := math.Inf(1)
	for v := 0.0; v <= 90; v += 15 {
		s := NewSun(135, v)
		l := s.ShadowLength(stackHeight, k)
		if l >= prev {
			t.Fatalf("shadow length not strictly decreasing: %v at elevation %v (prev %v)", l, v, prev)
		}
		prev = l
	}
	if got := NewSun(135, 90).ShadowLength(stackHeight, k); got != 0 {
		t.Errorf("overhead sun: length = %v, want 0", got)
	}
	if got := NewSun(135, 0).ShadowLength(stackHeight, k); got != stackHeight*k {
		t.Errorf("horizon sun: length = %v, want %v", got, stackHeight*k)
	}
}

func TestShadowAlphaFadesButNeverVanishes(t *testing.T) {
	const base, fade = uint8(200), 0.4
	prev := uint8(255)
	for v := 0.0; v <= 90; v += 10 {
		s := NewSun(0, v)
		a := s.ShadowAlpha(base, fade)
		if a > prev {
			t.Fatalf("alpha increased as sun climbed: %d at elevation %v (prev %d)", a, v, prev)
		}
		prev = a
	}
	if got := NewSun(0, 90).ShadowAlpha(base, fade); got == 0 {
		t.Error("alpha reached zero with fade factor below 1")
	}
	if got := NewSun(0, 0).ShadowAlpha(base, fade); got != base {
		t.Errorf("horizon alpha = %d, want %d", got, base)
	}
}
