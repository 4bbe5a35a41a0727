package components

import (
	"image/color"

	"github.com/Vynokris/CannonWarfare2/gamemath"
	"github.com/yohamta/donburi"
)

// EmitterData is one timed burst request. Every frame it lives it spawns
// Count particles randomized within the burst's ranges, then dies when
// Remaining runs out.
type EmitterData struct {
	Origin gamemath.Vector2

	// Attach keeps the spawn point tracking a live transform (muzzle smoke
	// follows the ball). Nil means emit from the fixed Origin.
	Attach *TransformData

	Count     int
	Remaining float64 // seconds

	MinAngle, MaxAngle       float64
	MinSpeed, MaxSpeed       float64
	MinSize, MaxSize         float64
	MinLifetime, MaxLifetime float64
	Sides                    int // polygon sides, 0 = filled circle
	Color                    color.RGBA
}

// ParticleData is one decorative particle. Purely visual; no collision.
type ParticleData struct {
	Position gamemath.Vector2
	Velocity gamemath.Vector2

	Size     float64
	Lifetime float64
	Age      float64

	Sides int
	Color color.RGBA
}

var Emitter = donburi.NewComponentType[EmitterData]()
var Particle = donburi.NewComponentType[ParticleData]()
