package systems

import (
	"math/rand"

	"github.com/Vynokris/CannonWarfare2/components"
	cfg "github.com/Vynokris/CannonWarfare2/config"
	"github.com/Vynokris/CannonWarfare2/gamemath"
	"github.com/yohamta/donburi/ecs"
)

func UpdateEffects(e *ecs.ECS) {
	StepEffects(e, frameTime)
}

// StepEffects decays the screen shake and picks this frame's jitter offset.
func StepEffects(e *ecs.ECS, dt float64) {
	entry, ok := components.Shake.First(e.World)
	if !ok {
		return
	}
	shake := components.Shake.Get(entry)

	if shake.Remaining <= 0 {
		shake.OffsetX, shake.OffsetY = 0, 0
		return
	}

	shake.Remaining -= dt
	falloff := gamemath.Clamp(shake.Remaining/shake.Duration, 0, 1)
	amp := shake.Intensity * falloff
	shake.OffsetX = (rand.Float64()*2 - 1) * amp
	shake.OffsetY = (rand.Float64()*2 - 1) * amp
}

// TriggerShake kicks the screen shake based on an impact speed. A weaker
// impact never overrides a stronger shake still in progress.
func TriggerShake(e *ecs.ECS, impactSpeed float64) {
	entry, ok := components.Shake.First(e.World)
	if !ok {
		return
	}
	shake := components.Shake.Get(entry)

	intensity := cfg.Shake.LandIntensity * gamemath.Clamp(impactSpeed/cfg.Shake.SpeedRef, 0, 1)
	if intensity < shake.Intensity*gamemath.Clamp(shake.Remaining/cfg.Shake.LandDuration, 0, 1) {
		return
	}
	shake.Intensity = intensity
	shake.Duration = cfg.Shake.LandDuration
	shake.Remaining = cfg.Shake.LandDuration
}

// shakeOffset is the draw offset renderers apply this frame.
func shakeOffset(e *ecs.ECS) (float64, float64) {
	entry, ok := components.Shake.First(e.World)
	if !ok {
		return 0, 0
	}
	shake := components.Shake.Get(entry)
	return shake.OffsetX, shake.OffsetY
}
