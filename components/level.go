package components

import (
	"github.com/Vynokris/CannonWarfare2/assets"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Current *assets.Range
}

var Level = donburi.NewComponentType[LevelData]()
