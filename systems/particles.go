package systems

import (
	"math/rand"

	"github.com/Vynokris/CannonWarfare2/archetypes"
	"github.com/Vynokris/CannonWarfare2/components"
	cfg "github.com/Vynokris/CannonWarfare2/config"
	"github.com/Vynokris/CannonWarfare2/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateParticles(e *ecs.ECS) {
	StepParticles(e, frameTime)
}

// StepParticles runs the decorative particle pass: live emitters spawn
// their per-frame batch, particles drift and age out, spent entities are
// removed. A global cap keeps burst spam bounded.
func StepParticles(e *ecs.ECS, dt float64) {
	live := 0
	components.Particle.Each(e.World, func(entry *donburi.Entry) {
		live++
	})

	var spent []*donburi.Entry
	components.Emitter.Each(e.World, func(entry *donburi.Entry) {
		em := components.Emitter.Get(entry)

		origin := em.Origin
		if em.Attach != nil {
			origin = em.Attach.Position
		}

		for i := 0; i < em.Count && live < cfg.Particles.MaxParticles; i++ {
			spawnParticle(e, em, origin)
			live++
		}

		em.Remaining -= dt
		if em.Remaining <= 0 {
			spent = append(spent, entry)
		}
	})

	var dead []*donburi.Entry
	components.Particle.Each(e.World, func(entry *donburi.Entry) {
		pt := components.Particle.Get(entry)
		pt.Position = pt.Position.Add(pt.Velocity.Scale(dt))
		pt.Age += dt
		if pt.Age >= pt.Lifetime {
			dead = append(dead, entry)
		}
	})

	for _, entry := range spent {
		e.World.Remove(entry.Entity())
	}
	for _, entry := range dead {
		e.World.Remove(entry.Entity())
	}
}

func spawnParticle(e *ecs.ECS, em *components.EmitterData, origin gamemath.Vector2) {
	angle := randRange(em.MinAngle, em.MaxAngle)
	speed := randRange(em.MinSpeed, em.MaxSpeed)

	entry := archetypes.Particle.Spawn(e)
	components.Particle.SetValue(entry, components.ParticleData{
		Position: origin,
		Velocity: gamemath.FromAngle(angle).Scale(speed),
		Size:     randRange(em.MinSize, em.MaxSize),
		Lifetime: randRange(em.MinLifetime, em.MaxLifetime),
		Sides:    em.Sides,
		Color:    em.Color,
	})
}

func randRange(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + rand.Float64()*(max-min)
}

// CreateBurst spawns an emitter entity from a burst preset. A non-nil
// attach makes the spawn point follow that transform while the emitter
// lives; duration overrides the preset's when positive.
func CreateBurst(e *ecs.ECS, burst cfg.BurstConfig, origin gamemath.Vector2, attach *components.TransformData, duration float64) *donburi.Entry {
	if duration <= 0 {
		duration = burst.Duration
	}

	entry := archetypes.Emitter.Spawn(e)
	components.Emitter.SetValue(entry, components.EmitterData{
		Origin:      origin,
		Attach:      attach,
		Count:       burst.Count,
		Remaining:   duration,
		MinAngle:    burst.MinAngle,
		MaxAngle:    burst.MaxAngle,
		MinSpeed:    burst.MinSpeed,
		MaxSpeed:    burst.MaxSpeed,
		MinSize:     burst.MinSize,
		MaxSize:     burst.MaxSize,
		MinLifetime: burst.MinLifetime,
		MaxLifetime: burst.MaxLifetime,
		Sides:       burst.Sides,
		Color:       burst.Color,
	})
	return entry
}

// spawnImpactDust fires the white landing burst just under the ball.
func spawnImpactDust(e *ecs.ECS, pos gamemath.Vector2, radius float64) {
	origin := pos.Add(gamemath.Vector2{Y: radius * cfg.Physics.PixelScale * 1.5})
	CreateBurst(e, cfg.Particles.Impact, origin, nil, 0)
}
