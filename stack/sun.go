package stack

import "math"

// Sun is the shared light source every shadow computation reads. Angles use
// compass convention: horizontal 0 = north (up-screen), 90 = east, wrapping at
// 360; vertical 0 = horizon (longest shadows), 90 = directly overhead.
//
// One Sun instance is shared process-wide and mutated only by the main thread;
// it is passed explicitly to shadow computations so tests can inject a fixed
// one.
type Sun struct {
	horizontal     float64
	vertical       float64
	ShadowsEnabled bool
}

// NewSun creates a sun at the given angles, wrapped/clamped into range, with
// shadows enabled.
func NewSun(horizontal, vertical float64) *Sun {
	s := &Sun{ShadowsEnabled: true}
	s.AdjustHorizontal(horizontal)
	s.vertical = clampAngle(vertical, 0, 90)
	return s
}

// AdjustHorizontal rotates the sun around the compass; positive is clockwise.
// The result wraps into [0, 360).
func (s *Sun) AdjustHorizontal(delta float64) float64 {
	s.horizontal = math.Mod(s.horizontal+delta, 360)
	if s.horizontal < 0 {
		s.horizontal += 360
	}
	return s.horizontal
}

// AdjustVertical raises or lowers the sun; the result clamps to [0, 90].
func (s *Sun) AdjustVertical(delta float64) float64 {
	s.vertical = clampAngle(s.vertical+delta, 0, 90)
	return s.vertical
}

// HorizontalAngle returns the compass angle in [0, 360).
func (s *Sun) HorizontalAngle() float64 { return s.horizontal }

// VerticalAngle returns the elevation angle in [0, 90].
func (s *Sun) VerticalAngle() float64 { return s.vertical }

// VerticalFactor is the elevation normalized to [0, 1]; 1 means overhead.
func (s *Sun) VerticalFactor() float64 { return s.vertical / 90 }

// ShadowLength returns how far shadows stretch for a stack of the given
// visual height. lengthFactor is the per-asset-category tuning constant k.
func (s *Sun) ShadowLength(stackHeight, lengthFactor float64) float64 {
	return stackHeight * (1 - s.VerticalFactor()) * lengthFactor
}

// Direction returns the unit vector shadows are cast along, in screen
// coordinates: (-sin a, -cos a) for compass angle a, so the cast direction
// swings smoothly through all four quadrants as the sun circles.
func (s *Sun) Direction() (dx, dy float64) {
	rad := s.horizontal * math.Pi / 180
	return -math.Sin(rad), -math.Cos(rad)
}

// ShadowAlpha derives shadow opacity from the elevation. Shadows fade as the
// sun climbs but never fully disappear, keeping a grounding cue under the
// object.
func (s *Sun) ShadowAlpha(baseAlpha uint8, fadeFactor float64) uint8 {
	a := float64(baseAlpha) * (1 - s.VerticalFactor()*fadeFactor)
	if a < 0 {
		a = 0
	}
	return uint8(a)
}

func clampAngle(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
