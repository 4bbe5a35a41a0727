package factory

import (
	"github.com/Vynokris/CannonWarfare2/archetypes"
	"github.com/Vynokris/CannonWarfare2/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateStats(e *ecs.ECS) *donburi.Entry {
	entry := archetypes.Stats.Spawn(e)
	components.Stats.SetValue(entry, components.StatsData{})
	return entry
}

func CreateShake(e *ecs.ECS) *donburi.Entry {
	entry := archetypes.Shake.Spawn(e)
	components.Shake.SetValue(entry, components.ShakeData{})
	return entry
}
