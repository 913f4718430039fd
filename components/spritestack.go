package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/stackdrive/stack"
)

// SpriteStackData renders an entity as a layer stack. Rotation and Tilt come
// from the owning entity each frame (vehicles drive them from physics; static
// props leave them fixed).
type SpriteStackData struct {
	Renderer *stack.Renderer
	Rotation float64
	Tilt     float64
}

var SpriteStack = donburi.NewComponentType[SpriteStackData]()
