package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/stackdrive/stack"
)

// SunData is the world's single light source plus the global render toggles
// the sun-control keys flip at runtime.
type SunData struct {
	Sun             *stack.Sun
	OutlinesEnabled bool
	Quality         stack.Quality
}

var Sun = donburi.NewComponentType[SunData]()
