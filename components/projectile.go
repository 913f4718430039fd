package components

import "github.com/yohamta/donburi"

// ProjectileData is the state of one fired cannonball. Rotation is the
// travel direction in compass degrees; TTL counts ticks until despawn.
type ProjectileData struct {
	Speed    float64
	Rotation float64
	TTL      int
}

var Projectile = donburi.NewComponentType[ProjectileData]()
