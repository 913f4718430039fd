package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/stackdrive/components"
	cfg "github.com/automoto/stackdrive/config"
	"github.com/automoto/stackdrive/tags"
)

var (
	Vehicle = newArchetype(
		tags.Vehicle,
		components.Vehicle,
		components.Object,
		components.SpriteStack,
	)
	Prop = newArchetype(
		tags.Prop,
		components.Object,
		components.SpriteStack,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
		components.SpriteStack,
	)
	BubbleTrail = newArchetype(
		components.BubbleTrail,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Sun = newArchetype(
		components.Sun,
	)
	Input = newArchetype(
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
