package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData wraps the collision object for an entity with a physical
// footprint: the vehicle, walls, solid props.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// SpaceData holds the shared collision space all Objects are added to.
type SpaceData struct {
	*resolv.Space
}

var Space = donburi.NewComponentType[SpaceData]()
