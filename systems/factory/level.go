package factory

import (
	"github.com/Vynokris/CannonWarfare2/archetypes"
	"github.com/Vynokris/CannonWarfare2/assets"
	"github.com/Vynokris/CannonWarfare2/components"
	"github.com/Vynokris/CannonWarfare2/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads the first embedded range map.
func CreateLevel(e *ecs.ECS) *donburi.Entry {
	entry := archetypes.Level.Spawn(e)

	ranges := assets.NewRangeLoader().MustLoadRanges()
	components.Level.SetValue(entry, components.LevelData{
		Current: &ranges[0],
	})
	return entry
}

// CreateSpace builds the collision space sized to the range, and fills it
// with the solid wall and crate objects.
func CreateSpace(e *ecs.ECS, r *assets.Range) *donburi.Entry {
	entry := archetypes.Space.Spawn(e)
	space := resolv.NewSpace(r.Width, r.Height, 16, 16)
	components.Space.Set(entry, space)

	for _, w := range r.Walls {
		wallEntry := archetypes.Wall.Spawn(e)
		obj := resolv.NewObject(w.X, w.Y, w.W, w.H, tags.ResolvSolid)
		obj.Data = wallEntry
		components.Object.SetValue(wallEntry, components.ObjectData{Object: obj})
		space.Add(obj)
	}
	for _, c := range r.Crates {
		crateEntry := archetypes.Crate.Spawn(e)
		obj := resolv.NewObject(c.X, c.Y, c.W, c.H, tags.ResolvSolid)
		obj.Data = crateEntry
		components.Object.SetValue(crateEntry, components.ObjectData{Object: obj})
		space.Add(obj)
	}

	return entry
}
