package systems

import (
	"github.com/Vynokris/CannonWarfare2/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SetTrajectoryDisplay flips the flight-path display for the cannon and
// every live cannonball, and persists the preference.
func SetTrajectoryDisplay(e *ecs.ECS, show bool) {
	components.Cannon.Each(e.World, func(entry *donburi.Entry) {
		components.Cannon.Get(entry).ShowTrajectory = show
	})
	components.Trajectory.Each(e.World, func(entry *donburi.Entry) {
		components.Trajectory.Get(entry).Show = show
	})

	_ = SaveSettings(&SavedSettings{
		ShowTrajectory: show,
		Fullscreen:     ebiten.IsFullscreen(),
	})
}

// ToggleTrajectoryDisplay toggles off the cannon's current preference.
func ToggleTrajectoryDisplay(e *ecs.ECS) {
	show := true
	if entry, ok := components.Cannon.First(e.World); ok {
		show = !components.Cannon.Get(entry).ShowTrajectory
	}
	SetTrajectoryDisplay(e, show)
}
