package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/stackdrive/assets"
)

type LevelData struct {
	Level *assets.Level
}

var Level = donburi.NewComponentType[LevelData]()
