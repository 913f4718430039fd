package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/stackdrive/archetypes"
	"github.com/automoto/stackdrive/assets"
	"github.com/automoto/stackdrive/components"
)

func CreateLevel(ecs *ecs.ECS, level *assets.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{Level: level})
	return entry
}
