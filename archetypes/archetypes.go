package archetypes

import (
	"github.com/Vynokris/CannonWarfare2/components"
	cfg "github.com/Vynokris/CannonWarfare2/config"
	"github.com/Vynokris/CannonWarfare2/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Cannon = newArchetype(
		tags.Cannon,
		components.Cannon,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Transform,
		components.Trajectory,
		components.Object,
	)
	Emitter = newArchetype(
		tags.Emitter,
		components.Emitter,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Crate = newArchetype(
		tags.Crate,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Stats = newArchetype(
		components.Stats,
	)
	Shake = newArchetype(
		components.Shake,
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
