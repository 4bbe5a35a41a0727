package components

import (
	"github.com/Vynokris/CannonWarfare2/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// CannonData is the player-controlled gun at the left of the range.
type CannonData struct {
	Position gamemath.Vector2 // pivot of the barrel
	Angle    float64          // radians, 0 = right, negative = up
	Power    float64          // muzzle speed in px/s

	Cooldown int // frames until the next shot

	// Recoil slides the barrel back along its axis and returns it.
	Recoil       *gween.Sequence
	RecoilOffset float64

	ShowTrajectory bool
}

// Muzzle returns the world position of the barrel tip.
func (c *CannonData) Muzzle(barrelLength float64) gamemath.Vector2 {
	return c.Position.Add(gamemath.FromAngle(c.Angle).Scale(barrelLength - c.RecoilOffset))
}

// LaunchVelocity returns the initial velocity of a shot at current aim.
func (c *CannonData) LaunchVelocity() gamemath.Vector2 {
	return gamemath.FromAngle(c.Angle).Scale(c.Power)
}

var Cannon = donburi.NewComponentType[CannonData]()
