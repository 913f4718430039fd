package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/stackdrive/archetypes"
)

func CreateInput(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Input.Spawn(ecs)
}
