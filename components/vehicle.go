package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// VehicleData is the driving model state. Rotation is the facing in compass
// degrees (0 = up-screen, clockwise positive); Speed is signed, negative
// while reversing.
type VehicleData struct {
	Speed    float64
	Rotation float64

	// Tilt in [-1, 1] is the visual lean applied to the sprite stack while
	// steering; it eases toward TiltTarget through TiltTween.
	Tilt       float64
	TiltTarget float64
	TiltTween  *gween.Tween

	// Ticks until the cannon can fire again.
	FireCooldown int
}

var Vehicle = donburi.NewComponentType[VehicleData]()
