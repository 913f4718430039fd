package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/stackdrive/archetypes"
	"github.com/automoto/stackdrive/components"
	cfg "github.com/automoto/stackdrive/config"
	"github.com/automoto/stackdrive/stack"
)

func CreateSun(ecs *ecs.ECS) *donburi.Entry {
	sun := archetypes.Sun.Spawn(ecs)
	components.Sun.SetValue(sun, components.SunData{
		Sun:             stack.NewSun(cfg.Sun.HorizontalAngle, cfg.Sun.VerticalAngle),
		OutlinesEnabled: true,
		Quality:         stack.QualityMedium,
	})
	return sun
}
