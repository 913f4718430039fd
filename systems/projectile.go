package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/stackdrive/components"
	cfg "github.com/automoto/stackdrive/config"
	"github.com/automoto/stackdrive/systems/factory"
	"github.com/automoto/stackdrive/tags"
)

// UpdateProjectiles fires a cannonball while the fire action is held (rate
// limited by the cooldown) and advances every live one. A projectile despawns
// when its lifetime runs out or it hits something solid.
func UpdateProjectiles(ecs *ecs.ECS) {
	fireCannon(ecs)

	var toRemove []*donburi.Entry

	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		obj := components.Object.Get(e)

		p.TTL--
		dx, dy := headingVelocity(p.Rotation, p.Speed)
		if p.TTL <= 0 || obj.Check(dx, dy, tags.ResolvSolid) != nil {
			toRemove = append(toRemove, e)
			return
		}

		obj.X += dx
		obj.Y += dy
		obj.Update()
	})

	for _, e := range toRemove {
		destroyProjectile(ecs, e)
	}
}

func fireCannon(ecs *ecs.ECS) {
	vehicleEntry, ok := tags.Vehicle.First(ecs.World)
	if !ok {
		return
	}
	inputEntry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	v := components.Vehicle.Get(vehicleEntry)

	if v.FireCooldown > 0 {
		v.FireCooldown--
	}
	if !components.Input.Get(inputEntry).Current[cfg.ActionFire] || v.FireCooldown > 0 {
		return
	}

	// Spawn ahead of the hull so the shot clears the vehicle's own footprint.
	obj := components.Object.Get(vehicleEntry)
	mx, my := headingVelocity(v.Rotation, cfg.Projectile.MuzzleOffset)
	factory.CreateProjectile(ecs, obj.X+obj.W/2+mx, obj.Y+obj.H/2+my, v.Rotation)
	v.FireCooldown = cfg.Projectile.Cooldown
}

func destroyProjectile(ecs *ecs.ECS, entry *donburi.Entry) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		obj := components.Object.Get(entry)
		if obj != nil && obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	ecs.World.Remove(entry.Entity())
}
