package systems

import (
	"image/color"
	"testing"

	"github.com/Vynokris/CannonWarfare2/components"
	cfg "github.com/Vynokris/CannonWarfare2/config"
	"github.com/Vynokris/CannonWarfare2/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func countParticles(e *ecs.ECS) int {
	n := 0
	components.Particle.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func countLiveEmitters(e *ecs.ECS) int {
	n := 0
	components.Emitter.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func testBurst() cfg.BurstConfig {
	return cfg.BurstConfig{
		Count:       3,
		Duration:    0.1,
		MinAngle:    0,
		MaxAngle:    0,
		MinSpeed:    0,
		MaxSpeed:    0,
		MinSize:     10,
		MaxSize:     10,
		MinLifetime: 10,
		MaxLifetime: 10,
		Sides:       4,
		Color:       color.RGBA{255, 255, 255, 255},
	}
}

func TestBurstSpawnsPerFrameUntilSpent(t *testing.T) {
	e := newTestECS()
	CreateBurst(e, testBurst(), gamemath.Vector2{}, nil, 3.5*testDt)

	// The emitter fires its batch on each of its live frames.
	for i := 1; i <= 3; i++ {
		StepParticles(e, testDt)
		if got := countParticles(e); got != i*3 {
			t.Fatalf("step %d: %d particles, want %d", i, got, i*3)
		}
	}
	if countLiveEmitters(e) != 1 {
		t.Fatal("emitter removed too early")
	}

	StepParticles(e, testDt)
	if countLiveEmitters(e) != 0 {
		t.Fatal("spent emitter not removed")
	}
	if got := countParticles(e); got != 12 {
		t.Fatalf("%d particles after emitter expiry, want 12", got)
	}
}

func TestParticleCapBoundsSpawning(t *testing.T) {
	old := cfg.Particles.MaxParticles
	cfg.Particles.MaxParticles = 5
	defer func() { cfg.Particles.MaxParticles = old }()

	burst := testBurst()
	burst.Count = 100

	e := newTestECS()
	CreateBurst(e, burst, gamemath.Vector2{}, nil, 1)

	for i := 0; i < 3; i++ {
		StepParticles(e, testDt)
		if got := countParticles(e); got > 5 {
			t.Fatalf("step %d: %d particles, cap is 5", i, got)
		}
	}
	if got := countParticles(e); got != 5 {
		t.Fatalf("%d particles, want the cap of 5", got)
	}
}

func TestParticlesAgeOut(t *testing.T) {
	burst := testBurst()
	burst.MinLifetime = 0.05
	burst.MaxLifetime = 0.2

	e := newTestECS()
	CreateBurst(e, burst, gamemath.Vector2{}, nil, testDt)

	for i := 0; i < 60; i++ {
		StepParticles(e, testDt)
	}
	if got := countParticles(e); got != 0 {
		t.Fatalf("%d particles alive after a full second, want 0", got)
	}
}

func TestBurstDurationFallsBackToPreset(t *testing.T) {
	e := newTestECS()
	entry := CreateBurst(e, testBurst(), gamemath.Vector2{}, nil, 0)

	if got := components.Emitter.Get(entry).Remaining; got != 0.1 {
		t.Fatalf("emitter remaining = %f, want the preset 0.1", got)
	}
}

func TestAttachedEmitterFollowsTransform(t *testing.T) {
	attach := &components.TransformData{Position: gamemath.Vector2{X: 0, Y: 0}}

	e := newTestECS()
	CreateBurst(e, testBurst(), gamemath.Vector2{}, attach, 2.5*testDt)

	StepParticles(e, testDt)
	attach.Position = gamemath.Vector2{X: 100, Y: 0}
	StepParticles(e, testDt)

	// Speed is zero, so each particle still sits at its spawn origin.
	atOld, atNew := 0, 0
	components.Particle.Each(e.World, func(entry *donburi.Entry) {
		switch components.Particle.Get(entry).Position.X {
		case 0:
			atOld++
		case 100:
			atNew++
		}
	})
	if atOld != 3 || atNew != 3 {
		t.Fatalf("particles at origins: %d old, %d new, want 3 and 3", atOld, atNew)
	}
}
