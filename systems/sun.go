package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/stackdrive/components"
	cfg "github.com/automoto/stackdrive/config"
	"github.com/automoto/stackdrive/stack"
)

// UpdateSun moves the light source with the sun keys and flips the global
// render toggles.
func UpdateSun(e *ecs.ECS) {
	sunEntry, ok := components.Sun.First(e.World)
	if !ok {
		return
	}
	inputEntry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	sun := components.Sun.Get(sunEntry)
	input := components.Input.Get(inputEntry)

	if input.Current[cfg.ActionSunLeft] {
		sun.Sun.AdjustHorizontal(-cfg.Sun.AdjustSpeed)
	}
	if input.Current[cfg.ActionSunRight] {
		sun.Sun.AdjustHorizontal(cfg.Sun.AdjustSpeed)
	}
	if input.Current[cfg.ActionSunUp] {
		sun.Sun.AdjustVertical(cfg.Sun.AdjustSpeed)
	}
	if input.Current[cfg.ActionSunDown] {
		sun.Sun.AdjustVertical(-cfg.Sun.AdjustSpeed)
	}

	if input.Action(cfg.ActionToggleShadows).JustPressed {
		sun.Sun.ShadowsEnabled = !sun.Sun.ShadowsEnabled
	}
	if input.Action(cfg.ActionToggleOutlines).JustPressed {
		sun.OutlinesEnabled = !sun.OutlinesEnabled
	}
	if input.Action(cfg.ActionCycleQuality).JustPressed {
		sun.Quality = nextQuality(sun.Quality)
	}
}

func nextQuality(q stack.Quality) stack.Quality {
	switch q {
	case stack.QualityLow:
		return stack.QualityMedium
	case stack.QualityMedium:
		return stack.QualityHigh
	default:
		return stack.QualityLow
	}
}
