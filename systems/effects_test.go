package systems

import (
	"testing"

	"github.com/Vynokris/CannonWarfare2/components"
	cfg "github.com/Vynokris/CannonWarfare2/config"
	"github.com/Vynokris/CannonWarfare2/systems/factory"
)

func TestShakeKicksAndDecays(t *testing.T) {
	e := newTestECS()
	entry := factory.CreateShake(e)
	shake := components.Shake.Get(entry)

	TriggerShake(e, cfg.Shake.SpeedRef*2)
	if shake.Intensity != cfg.Shake.LandIntensity {
		t.Fatalf("intensity = %f, want max %f", shake.Intensity, cfg.Shake.LandIntensity)
	}
	if shake.Remaining != cfg.Shake.LandDuration {
		t.Fatalf("remaining = %f, want %f", shake.Remaining, cfg.Shake.LandDuration)
	}

	moved := false
	for i := 0; i < 600 && shake.Remaining > 0; i++ {
		StepEffects(e, testDt)
		if shake.OffsetX != 0 || shake.OffsetY != 0 {
			moved = true
		}
	}
	if !moved {
		t.Fatal("shake never produced an offset")
	}

	StepEffects(e, testDt)
	if shake.OffsetX != 0 || shake.OffsetY != 0 {
		t.Fatalf("offsets (%f, %f) after decay, want zero", shake.OffsetX, shake.OffsetY)
	}
}

func TestWeakerImpactDoesNotOverrideShake(t *testing.T) {
	e := newTestECS()
	entry := factory.CreateShake(e)
	shake := components.Shake.Get(entry)

	TriggerShake(e, cfg.Shake.SpeedRef*2)
	strong := shake.Intensity

	TriggerShake(e, cfg.Shake.SpeedRef*0.01)
	if shake.Intensity != strong {
		t.Fatalf("weak impact overrode shake: %f -> %f", strong, shake.Intensity)
	}
}
