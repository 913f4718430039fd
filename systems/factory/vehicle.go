package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/stackdrive/archetypes"
	"github.com/automoto/stackdrive/components"
	cfg "github.com/automoto/stackdrive/config"
	"github.com/automoto/stackdrive/tags"
)

// CreateVehicle spawns the player's car at a world position. x and y are the
// anchor (footprint center), matching how the stack renderer draws.
func CreateVehicle(ecs *ecs.ECS, x, y, rotation float64) *donburi.Entry {
	vehicle := archetypes.Vehicle.Spawn(ecs)

	w, h := cfg.Vehicle.CollisionWidth, cfg.Vehicle.CollisionHeight
	obj := resolv.NewObject(x-w/2, y-h/2, w, h, tags.ResolvVehicle)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = vehicle

	components.Object.SetValue(vehicle, components.ObjectData{Object: obj})
	components.Vehicle.SetValue(vehicle, components.VehicleData{Rotation: rotation})
	components.SpriteStack.SetValue(vehicle, components.SpriteStackData{
		Renderer: newStackRenderer("car"),
		Rotation: rotation,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return vehicle
}
