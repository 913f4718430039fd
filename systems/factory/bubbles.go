package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/stackdrive/archetypes"
)

func CreateBubbleTrail(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.BubbleTrail.Spawn(ecs)
}
