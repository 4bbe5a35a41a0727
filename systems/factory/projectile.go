package factory

import (
	"time"

	"github.com/Vynokris/CannonWarfare2/archetypes"
	"github.com/Vynokris/CannonWarfare2/components"
	cfg "github.com/Vynokris/CannonWarfare2/config"
	"github.com/Vynokris/CannonWarfare2/gamemath"
	"github.com/Vynokris/CannonWarfare2/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile spawns a cannonball at the given position and velocity.
// The trajectory snapshot starts at the launch state; the resolv object is
// registered in the space when one exists.
func CreateProjectile(e *ecs.ECS, pos, vel gamemath.Vector2, groundY float64, showTrajectory bool) *donburi.Entry {
	entry := archetypes.Projectile.Spawn(e)

	components.Projectile.SetValue(entry, components.ProjectileData{
		Radius:          cfg.Projectile.Radius,
		Elasticity:      cfg.Projectile.Elasticity,
		GroundHeight:    groundY,
		Color:           cfg.Projectile.Color,
		DestroyDuration: cfg.Projectile.DestroyDuration,
		LaunchedAt:      time.Now(),
	})

	components.Transform.SetValue(entry, components.TransformData{
		Position:       pos,
		Velocity:       vel,
		Acceleration:   gamemath.Vector2{Y: cfg.Physics.Gravity},
		RotateForwards: true,
	})

	components.Trajectory.SetValue(entry, components.TrajectoryData{
		StartPos: pos,
		StartVel: vel,
		EndPos:   pos,
		EndVel:   vel,
		Show:     showTrajectory,
	})

	// No space means no solids to collide with, so skip the resolv object.
	if spaceEntry, ok := components.Space.First(e.World); ok {
		size := cfg.Projectile.Radius * cfg.Physics.PixelScale
		obj := resolv.NewObject(pos.X-size, pos.Y-size, size*2, size*2, tags.ResolvProjectile)
		obj.Data = entry
		components.Object.SetValue(entry, components.ObjectData{Object: obj})
		components.Space.Get(spaceEntry).Add(obj)
	}

	return entry
}
