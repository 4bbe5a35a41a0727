package tags

import "github.com/yohamta/donburi"

var (
	Cannon     = donburi.NewTag().SetName("Cannon")
	Projectile = donburi.NewTag().SetName("Projectile")
	Particle   = donburi.NewTag().SetName("Particle")
	Emitter    = donburi.NewTag().SetName("Emitter")
	Wall       = donburi.NewTag().SetName("Wall")
	Crate      = donburi.NewTag().SetName("Crate")
)

// Resolv tags for physics collision
const (
	ResolvSolid      = "solid"
	ResolvProjectile = "Projectile"
)
