package factory

import (
	"github.com/aquilax/go-perlin"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/stackdrive/archetypes"
	"github.com/automoto/stackdrive/assets"
	"github.com/automoto/stackdrive/components"
	cfg "github.com/automoto/stackdrive/config"
	"github.com/automoto/stackdrive/tags"
)

// CreateProp spawns one static stacked prop. Solid props join the collision
// space; decorative ones only render.
func CreateProp(ecs *ecs.ECS, spawn assets.PropSpawn) *donburi.Entry {
	prop := archetypes.Prop.Spawn(ecs)

	renderer := newStackRenderer(spawn.Type)
	ls := renderer.LayerSet()
	w, h := float64(ls.Width()), float64(ls.Height())

	obj := resolv.NewObject(spawn.X-w/2, spawn.Y-h/2, w, h, tags.ResolvProp)
	if spawn.Solid {
		obj.AddTags(tags.ResolvSolid)
		obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	}
	obj.Data = prop

	components.Object.SetValue(prop, components.ObjectData{Object: obj})
	components.SpriteStack.SetValue(prop, components.SpriteStackData{
		Renderer: renderer,
		Rotation: spawn.Rotation,
	})

	if spawn.Solid {
		if spaceEntry, ok := components.Space.First(ecs.World); ok {
			components.Space.Get(spaceEntry).Add(obj)
		}
	}

	return prop
}

// CreateScatteredProps fills every scatter region of the level with
// noise-placed decorative props. Rotation varies with position so fields do
// not look stamped.
func CreateScatteredProps(ecs *ecs.ECS, level *assets.Level) {
	noise := perlin.NewPerlin(
		cfg.World.ScatterAlpha,
		cfg.World.ScatterBeta,
		cfg.World.ScatterOctaves,
		cfg.World.ScatterSeed,
	)
	for _, region := range level.Scatter {
		points := assets.ScatterPoints(region.Rect, noise,
			cfg.World.ScatterCellSize,
			cfg.World.ScatterThreshold,
			cfg.World.ScatterMaxPerGroup)
		for _, p := range points {
			CreateProp(ecs, assets.PropSpawn{
				X:        p.X,
				Y:        p.Y,
				Type:     region.Type,
				Rotation: float64(int(p.X+p.Y) % 360),
			})
		}
	}
}
