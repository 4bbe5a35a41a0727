package components

import (
	"github.com/Vynokris/CannonWarfare2/gamemath"
	"github.com/yohamta/donburi"
)

// TrajectoryData is the recorded flight-path snapshot used only for
// drawing. While airborne the end state tracks the live transform; it
// freezes on first ground contact.
type TrajectoryData struct {
	StartPos gamemath.Vector2
	StartVel gamemath.Vector2
	EndPos   gamemath.Vector2
	EndVel   gamemath.Vector2

	// ControlPoint makes a quadratic curve approximate the parabolic arc:
	// the intersection of the launch ray with the reversed arrival ray.
	ControlPoint gamemath.Vector2

	Show  bool
	Alpha float64 // 0..1, eased toward Show at the configured rate
}

var Trajectory = donburi.NewComponentType[TrajectoryData]()
