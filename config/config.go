package config

import (
	"image/color"
	"math"

	"github.com/yohamta/donburi/ecs"
)

// Default is the render layer every renderer registers on.
const Default = ecs.LayerDefault

// PhysicsConfig contains world physics configuration values
type PhysicsConfig struct {
	Gravity         float64 // px/s^2, positive is downward
	AirDensity      float64 // kg/m^3, used by the drag helper
	SphereDragCoeff float64 // dimensionless drag coefficient of a sphere
	PixelScale      float64 // pixels per world unit
	RestSpeed       float64 // speed below which a grounded ball stops
}

// ProjectileConfig contains cannonball configuration values
type ProjectileConfig struct {
	Radius          float64 // world units
	Elasticity      float64 // coefficient of restitution, 0..1
	DestroyDuration float64 // seconds of fade-out after Destroy
	Color           color.RGBA
}

// CannonConfig contains cannon configuration values
type CannonConfig struct {
	BarrelLength float64
	BarrelWidth  float64
	BaseRadius   float64

	MinPower     float64 // px/s at the muzzle
	MaxPower     float64
	DefaultPower float64
	PowerStep    float64 // wheel increment

	MinAngle float64 // radians, aiming limits
	MaxAngle float64

	CooldownFrames int

	RecoilDistance float64
	RecoilDuration float64 // seconds, out and back

	Color color.RGBA
}

// BurstConfig describes one particle burst request.
type BurstConfig struct {
	Duration    float64 // seconds the spawner stays alive (launch burst overrides this)
	Count       int     // particles spawned per frame
	MinAngle    float64
	MaxAngle    float64
	MinSpeed    float64
	MaxSpeed    float64
	MinSize     float64
	MaxSize     float64
	MinLifetime float64
	MaxLifetime float64
	Sides       int // polygon sides, 0 = circle
	Color       color.RGBA
}

// ParticleConfig contains particle system configuration values
type ParticleConfig struct {
	MaxParticles int

	Launch BurstConfig // muzzle smoke, tracks the ball while airborne
	Impact BurstConfig // dust on ground contact
}

// TrajectoryConfig contains flight-path display configuration values
type TrajectoryConfig struct {
	FadeRate     float64 // alpha change per second when toggling display
	LineWidth    float32
	MarkerRadius float32
	MarkerSides  int
}

// HUDConfig contains HUD layout configuration values
type HUDConfig struct {
	Margin         float64
	PowerBarWidth  float64
	PowerBarHeight float64
	BarBackground  color.RGBA
	BarFill        color.RGBA
	TextColor      color.RGBA
	LabelFontSize  float64
}

// ShakeConfig contains screen shake configuration values
type ShakeConfig struct {
	LandIntensity float64 // px, scaled by impact speed
	LandDuration  float64 // seconds
	SpeedRef      float64 // impact speed mapped to full intensity
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Projectile ProjectileConfig
var Cannon CannonConfig
var Particles ParticleConfig
var Trajectory TrajectoryConfig
var HUD HUDConfig
var Shake ShakeConfig

func init() {
	C = &Config{
		Width:  1440,
		Height: 810,
		Title:  "Cannon Warfare",
	}

	Physics = PhysicsConfig{
		Gravity:         98,
		AirDensity:      1.204,
		SphereDragCoeff: 0.47,
		PixelScale:      10,
		RestSpeed:       10,
	}

	Projectile = ProjectileConfig{
		Radius:          1,
		Elasticity:      0.65,
		DestroyDuration: 1,
		Color:           color.RGBA{255, 255, 255, 255},
	}

	Cannon = CannonConfig{
		BarrelLength: 60,
		BarrelWidth:  22,
		BaseRadius:   26,

		MinPower:     150,
		MaxPower:     900,
		DefaultPower: 500,
		PowerStep:    25,

		MinAngle: -math.Pi / 2,
		MaxAngle: 0,

		CooldownFrames: 15,

		RecoilDistance: 12,
		RecoilDuration: 0.3,

		Color: color.RGBA{60, 60, 70, 255},
	}

	Particles = ParticleConfig{
		MaxParticles: 2048,

		Launch: BurstConfig{
			Count:       1,
			MinAngle:    -math.Pi,
			MaxAngle:    0,
			MinSpeed:    5,
			MaxSpeed:    20,
			MinSize:     20,
			MaxSize:     35,
			MinLifetime: 0.05,
			MaxLifetime: 0.2,
			Sides:       5,
			Color:       color.RGBA{255, 161, 0, 255},
		},

		Impact: BurstConfig{
			Duration:    0.1,
			Count:       1,
			MinAngle:    -math.Pi / 4,
			MaxAngle:    math.Pi + math.Pi/2,
			MinSpeed:    250,
			MaxSpeed:    500,
			MinSize:     20,
			MaxSize:     35,
			MinLifetime: 0.05,
			MaxLifetime: 0.2,
			Sides:       5,
			Color:       color.RGBA{255, 255, 255, 255},
		},
	}

	Trajectory = TrajectoryConfig{
		FadeRate:     1,
		LineWidth:    1,
		MarkerRadius: 12,
		MarkerSides:  3,
	}

	HUD = HUDConfig{
		Margin:         10,
		PowerBarWidth:  130,
		PowerBarHeight: 13,
		BarBackground:  color.RGBA{40, 40, 40, 255},
		BarFill:        color.RGBA{220, 160, 40, 255},
		TextColor:      color.RGBA{230, 230, 230, 255},
		LabelFontSize:  20,
	}

	Shake = ShakeConfig{
		LandIntensity: 6,
		LandDuration:  0.25,
		SpeedRef:      600,
	}
}
