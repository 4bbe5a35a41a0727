package factory

import (
	"github.com/Vynokris/CannonWarfare2/archetypes"
	"github.com/Vynokris/CannonWarfare2/components"
	cfg "github.com/Vynokris/CannonWarfare2/config"
	"github.com/Vynokris/CannonWarfare2/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCannon(e *ecs.ECS, pos gamemath.Vector2, showTrajectory bool) *donburi.Entry {
	entry := archetypes.Cannon.Spawn(e)
	components.Cannon.SetValue(entry, components.CannonData{
		Position:       pos,
		Angle:          gamemath.Clamp(-0.6, cfg.Cannon.MinAngle, cfg.Cannon.MaxAngle),
		Power:          cfg.Cannon.DefaultPower,
		ShowTrajectory: showTrajectory,
	})
	return entry
}

// NewRecoilSequence slides the barrel back and returns it, a quick kick
// with a slower recovery.
func NewRecoilSequence() *gween.Sequence {
	out := float32(cfg.Cannon.RecoilDistance)
	half := float32(cfg.Cannon.RecoilDuration) / 2
	return gween.NewSequence(
		gween.New(0, out, half/2, ease.OutQuad),
		gween.New(out, 0, half*1.5, ease.InOutQuad),
	)
}
