package systems

import (
	"math"

	"github.com/Vynokris/CannonWarfare2/components"
	cfg "github.com/Vynokris/CannonWarfare2/config"
	"github.com/Vynokris/CannonWarfare2/gamemath"
	"github.com/Vynokris/CannonWarfare2/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCannons reads aim/fire input and steps the recoil animation.
func UpdateCannons(e *ecs.ECS) {
	components.Cannon.Each(e.World, func(entry *donburi.Entry) {
		c := components.Cannon.Get(entry)

		// Aim at the mouse, limited to the barrel's arc.
		mx, my := ebiten.CursorPosition()
		aim := gamemath.Vector2{X: float64(mx), Y: float64(my)}.Sub(c.Position)
		if aim.Length() > 1 {
			c.Angle = gamemath.Clamp(aim.Angle(), cfg.Cannon.MinAngle, cfg.Cannon.MaxAngle)
		}

		// Wheel adjusts muzzle speed.
		_, wheelY := ebiten.Wheel()
		if wheelY != 0 {
			c.Power = gamemath.Clamp(c.Power+wheelY*cfg.Cannon.PowerStep, cfg.Cannon.MinPower, cfg.Cannon.MaxPower)
		}

		if c.Cooldown > 0 {
			c.Cooldown--
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && c.Cooldown == 0 {
			FireCannon(e, c)
			c.Cooldown = cfg.Cannon.CooldownFrames
		}

		stepRecoil(c)
	})
}

// FireCannon launches a cannonball from the muzzle at the current aim and
// power, with the muzzle-smoke burst sized by the predicted flight time.
func FireCannon(e *ecs.ECS, c *components.CannonData) *donburi.Entry {
	groundY := groundHeight(e)
	muzzle := c.Muzzle(cfg.Cannon.BarrelLength)
	velocity := c.LaunchVelocity()

	predicted := gamemath.FlightTime(muzzle.Y, velocity.Y, cfg.Physics.Gravity, groundY-cfg.Projectile.Radius*cfg.Physics.PixelScale)
	ball := factory.CreateProjectile(e, muzzle, velocity, groundY, c.ShowTrajectory)

	// Muzzle smoke follows the ball for its whole predicted flight.
	tr := components.Transform.Get(ball)
	CreateBurst(e, cfg.Particles.Launch, muzzle, tr, predicted)

	c.Recoil = factory.NewRecoilSequence()
	recordShot(e)
	return ball
}

func stepRecoil(c *components.CannonData) {
	if c.Recoil == nil {
		return
	}
	offset, _, done := c.Recoil.Update(float32(frameTime))
	c.RecoilOffset = float64(offset)
	if done {
		c.Recoil = nil
		c.RecoilOffset = 0
	}
}

// groundHeight reads the ground plane from the loaded level, falling back
// to the bottom of the window.
func groundHeight(e *ecs.ECS) float64 {
	if entry, ok := components.Level.First(e.World); ok {
		return components.Level.Get(entry).Current.GroundY
	}
	return float64(cfg.C.Height)
}

func recordShot(e *ecs.ECS) {
	if entry, ok := components.Stats.First(e.World); ok {
		stats := components.Stats.Get(entry)
		stats.ShotsFired++
		stats.Dirty = true
	}
}

// DrawCannons renders the barrel, base, and the predicted impact mark.
func DrawCannons(e *ecs.ECS, screen *ebiten.Image) {
	ox, oy := shakeOffset(e)

	components.Cannon.Each(e.World, func(entry *donburi.Entry) {
		c := components.Cannon.Get(entry)

		// Barrel: a thick stroked line from pivot toward the muzzle.
		tip := c.Muzzle(cfg.Cannon.BarrelLength)
		vector.StrokeLine(screen,
			float32(c.Position.X+ox), float32(c.Position.Y+oy),
			float32(tip.X+ox), float32(tip.Y+oy),
			float32(cfg.Cannon.BarrelWidth), cfg.Cannon.Color, true)

		vector.DrawFilledCircle(screen,
			float32(c.Position.X+ox), float32(c.Position.Y+oy),
			float32(cfg.Cannon.BaseRadius), cfg.Cannon.Color, true)

		drawImpactMark(e, screen, c, ox, oy)
	})
}

// drawImpactMark shows where the current aim would first hit the ground.
func drawImpactMark(e *ecs.ECS, screen *ebiten.Image, c *components.CannonData, ox, oy float64) {
	if !c.ShowTrajectory {
		return
	}

	groundY := groundHeight(e)
	muzzle := c.Muzzle(cfg.Cannon.BarrelLength)
	velocity := c.LaunchVelocity()
	t := gamemath.FlightTime(muzzle.Y, velocity.Y, cfg.Physics.Gravity, groundY-cfg.Projectile.Radius*cfg.Physics.PixelScale)
	if t <= 0 || math.IsNaN(t) {
		return
	}

	hitX := muzzle.X + velocity.X*t
	vector.StrokeCircle(screen,
		float32(hitX+ox), float32(groundY+oy),
		6, 2, cfg.HUD.BarFill, true)
}
