package factory

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/stackdrive/archetypes"
	"github.com/automoto/stackdrive/components"
)

func CreateCamera(ecs *ecs.ECS, x, y float64) {
	camera := archetypes.Camera.Spawn(ecs)
	cam := components.Camera.Get(camera)
	cam.Position.X = x
	cam.Position.Y = y
}
