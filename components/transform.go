package components

import (
	"github.com/Vynokris/CannonWarfare2/gamemath"
	"github.com/yohamta/donburi"
)

// TransformData bundles the kinematic state advanced every frame.
type TransformData struct {
	Position     gamemath.Vector2
	Velocity     gamemath.Vector2
	Acceleration gamemath.Vector2

	// RotateForwards orients the sprite along the velocity vector.
	RotateForwards bool
}

// Integrate advances the transform by dt seconds using semi-implicit
// Euler: velocity first, then position with the new velocity.
func (t *TransformData) Integrate(dt float64) {
	t.Velocity = t.Velocity.Add(t.Acceleration.Scale(dt))
	t.Position = t.Position.Add(t.Velocity.Scale(dt))
}

var Transform = donburi.NewComponentType[TransformData]()
