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

// CreateProjectile spawns a cannonball at a world position heading in the
// given compass direction. It joins the collision space so flight can be
// checked against solids, but carries no solid tag itself.
func CreateProjectile(ecs *ecs.ECS, x, y, rotation float64) *donburi.Entry {
	projectile := archetypes.Projectile.Spawn(ecs)

	renderer := newStackRenderer("cannonball")
	ls := renderer.LayerSet()
	w, h := float64(ls.Width()), float64(ls.Height())

	obj := resolv.NewObject(x-w/2, y-h/2, w, h, tags.ResolvProjectile)
	obj.Data = projectile

	components.Object.SetValue(projectile, components.ObjectData{Object: obj})
	components.Projectile.SetValue(projectile, components.ProjectileData{
		Speed:    cfg.Projectile.Speed,
		Rotation: rotation,
		TTL:      cfg.Projectile.Lifetime,
	})
	components.SpriteStack.SetValue(projectile, components.SpriteStackData{
		Renderer: renderer,
		Rotation: rotation,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return projectile
}
