package tags

import "github.com/yohamta/donburi"

var (
	Vehicle    = donburi.NewTag().SetName("Vehicle")
	Prop       = donburi.NewTag().SetName("Prop")
	Wall       = donburi.NewTag().SetName("Wall")
	Projectile = donburi.NewTag().SetName("Projectile")
)

// Resolv tags for physics collision
const (
	ResolvSolid      = "solid"
	ResolvVehicle    = "Vehicle"
	ResolvProp       = "prop"
	ResolvProjectile = "projectile"
)
