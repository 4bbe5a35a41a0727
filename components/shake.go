package components

import "github.com/yohamta/donburi"

// ShakeData tracks the active screen shake applied as a draw offset.
type ShakeData struct {
	Intensity float64 // max offset in px
	Remaining float64 // seconds
	Duration  float64
	OffsetX   float64
	OffsetY   float64
}

var Shake = donburi.NewComponentType[ShakeData]()
