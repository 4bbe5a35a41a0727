package systems

import (
	"time"

	"github.com/Vynokris/CannonWarfare2/components"
	cfg "github.com/Vynokris/CannonWarfare2/config"
	"github.com/Vynokris/CannonWarfare2/gamemath"
	"github.com/Vynokris/CannonWarfare2/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// The simulation runs at ebiten's fixed tick rate.
const frameTime = 1.0 / 60

// timeNow is swapped out in tests for deterministic air-time values.
var timeNow = time.Now

func UpdateProjectiles(e *ecs.ECS) {
	StepProjectiles(e, frameTime)
}

// StepProjectiles advances every cannonball by dt seconds: display fades,
// ballistic integration, ground bounce or settle, impact dust, and removal
// of balls whose destroy fade has finished.
func StepProjectiles(e *ecs.ECS, dt float64) {
	var finished []*donburi.Entry

	components.Projectile.Each(e.World, func(entry *donburi.Entry) {
		p := components.Projectile.Get(entry)
		tr := components.Transform.Get(entry)
		traj := components.Trajectory.Get(entry)

		stepTrajectoryAlpha(traj, dt)

		threshold := p.GroundHeight - p.Radius*cfg.Physics.PixelScale
		switch {
		case tr.Position.Y < threshold:
			// Airborne: integrate, then keep the flight-path snapshot
			// tracking the live state until first ground contact.
			tr.Integrate(dt)
			bounceOffSolids(e, entry, p, tr)
			if !p.Landed {
				snapshotTrajectory(p, tr, traj)
			}

		case tr.Position.Y > threshold:
			if !p.Landed {
				snapshotTrajectory(p, tr, traj)
				p.Landed = true
				recordAirTime(e, p.AirTime)
			}

			if speed := tr.Velocity.Length(); speed > cfg.Physics.RestSpeed {
				// Reflect off the ground, keeping a fraction of the speed.
				tr.Position.Y = threshold - 0.01
				tr.Velocity.Y *= -1
				tr.Velocity = tr.Velocity.WithLength(speed * p.Elasticity)
				recordBounce(e)
				TriggerShake(e, speed)
			} else {
				tr.Position.Y = threshold
				tr.Velocity = gamemath.Vector2{}
				tr.Acceleration = gamemath.Vector2{}
			}

			// Dust goes off on every ground-contact frame, bounces and
			// the settle frame alike.
			spawnImpactDust(e, tr.Position, p.Radius)
		}

		p.TickFade(dt)
		syncObject(entry, p, tr)

		if p.Finished() {
			finished = append(finished, entry)
		}
	})

	for _, entry := range finished {
		removeProjectile(e, entry)
	}
}

// stepTrajectoryAlpha eases the flight-path opacity toward its toggle at
// the configured rate, clamped to [0, 1].
func stepTrajectoryAlpha(traj *components.TrajectoryData, dt float64) {
	step := cfg.Trajectory.FadeRate * dt
	if traj.Show && traj.Alpha < 1 {
		traj.Alpha = gamemath.Clamp(traj.Alpha+step, 0, 1)
	} else if !traj.Show && traj.Alpha > 0 {
		traj.Alpha = gamemath.Clamp(traj.Alpha-step, 0, 1)
	}
}

// snapshotTrajectory refreshes the drawable flight path: elapsed air time,
// current end state, and the quadratic control point at the intersection of
// the launch ray with the reversed arrival ray.
func snapshotTrajectory(p *components.ProjectileData, tr *components.TransformData, traj *components.TrajectoryData) {
	p.AirTime = timeNow().Sub(p.LaunchedAt).Seconds()
	traj.EndPos = tr.Position
	traj.EndVel = tr.Velocity
	traj.ControlPoint = gamemath.LineIntersection(traj.StartPos, traj.StartVel, traj.EndPos, traj.EndVel.Neg())
}

// bounceOffSolids reflects the ball off walls and crates. The ground plane
// is handled separately by the threshold logic.
func bounceOffSolids(e *ecs.ECS, entry *donburi.Entry, p *components.ProjectileData, tr *components.TransformData) {
	obj := components.Object.Get(entry)
	if obj == nil || obj.Object == nil {
		return
	}

	size := p.Radius * cfg.Physics.PixelScale
	obj.X = tr.Position.X - size
	obj.Y = tr.Position.Y - size
	obj.Update()

	check := obj.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return
	}

	for _, solid := range check.Objects {
		// Reflect on the axis of least penetration.
		overlapX := min(obj.X+obj.W, solid.X+solid.W) - max(obj.X, solid.X)
		overlapY := min(obj.Y+obj.H, solid.Y+solid.H) - max(obj.Y, solid.Y)
		if overlapX <= 0 || overlapY <= 0 {
			continue
		}

		speed := tr.Velocity.Length()
		if overlapX < overlapY {
			if obj.X < solid.X {
				tr.Position.X -= overlapX
			} else {
				tr.Position.X += overlapX
			}
			tr.Velocity.X *= -1
		} else {
			if obj.Y < solid.Y {
				tr.Position.Y -= overlapY
			} else {
				tr.Position.Y += overlapY
			}
			tr.Velocity.Y *= -1
		}
		tr.Velocity = tr.Velocity.WithLength(speed * p.Elasticity)

		spawnImpactDust(e, tr.Position, p.Radius)
		recordBounce(e)

		obj.X = tr.Position.X - size
		obj.Y = tr.Position.Y - size
		obj.Update()
	}
}

func syncObject(entry *donburi.Entry, p *components.ProjectileData, tr *components.TransformData) {
	obj := components.Object.Get(entry)
	if obj == nil || obj.Object == nil {
		return
	}
	size := p.Radius * cfg.Physics.PixelScale
	obj.X = tr.Position.X - size
	obj.Y = tr.Position.Y - size
	obj.Update()
}

// DestroyAllProjectiles starts the fade-out on every live cannonball.
func DestroyAllProjectiles(e *ecs.ECS) {
	components.Projectile.Each(e.World, func(entry *donburi.Entry) {
		p := components.Projectile.Get(entry)
		if !p.Destroying() {
			p.Destroy()
		}
	})
}

func removeProjectile(e *ecs.ECS, entry *donburi.Entry) {
	if spaceEntry, ok := components.Space.First(e.World); ok {
		obj := components.Object.Get(entry)
		if obj != nil && obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	e.World.Remove(entry.Entity())
}

func recordBounce(e *ecs.ECS) {
	if entry, ok := components.Stats.First(e.World); ok {
		stats := components.Stats.Get(entry)
		stats.Bounces++
		stats.Dirty = true
	}
}

func recordAirTime(e *ecs.ECS, airTime float64) {
	if entry, ok := components.Stats.First(e.World); ok {
		stats := components.Stats.Get(entry)
		if airTime > stats.LongestAirTime {
			stats.LongestAirTime = airTime
			stats.Dirty = true
		}
	}
}
