package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/stackdrive/components"
	cfg "github.com/automoto/stackdrive/config"
	"github.com/automoto/stackdrive/fonts"
	"github.com/automoto/stackdrive/tags"
)

// DrawHUD renders the light and render-state readout in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	sunEntry, ok := components.Sun.First(ecs.World)
	if !ok {
		return
	}
	sun := components.Sun.Get(sunEntry)

	face := fonts.HUD.Get()
	x := int(cfg.HUD.Margin)
	y := int(cfg.HUD.Margin + cfg.HUD.LineGap)
	line := func(s string) {
		text.Draw(screen, s, face, x, y, cfg.HUD.TextColor)
		y += int(cfg.HUD.LineGap)
	}

	line(fmt.Sprintf("Sun %3.0f / %2.0f  (JL / IK)", sun.Sun.HorizontalAngle(), sun.Sun.VerticalAngle()))
	line(fmt.Sprintf("Shadows %s [1]  Outlines %s [2]", onOff(sun.Sun.ShadowsEnabled), onOff(sun.OutlinesEnabled)))
	line(fmt.Sprintf("Quality %s [3]", sun.Quality))

	if vehicleEntry, ok := tags.Vehicle.First(ecs.World); ok {
		v := components.Vehicle.Get(vehicleEntry)
		line(fmt.Sprintf("Speed %.1f  Heading %3.0f", v.Speed, v.Rotation))
	}

	drawSunIndicator(screen, sun.Sun.HorizontalAngle(), sun.Sun.VerticalFactor())
}

// drawSunIndicator marks the light's position with a dot orbiting the screen
// center, opposite the direction shadows fall.
func drawSunIndicator(screen *ebiten.Image, horizontal, verticalFactor float64) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	x, y := sunOrbitPosition(horizontal, w, h, cfg.HUD.SunOrbitMargin)
	vector.DrawFilledCircle(screen, float32(x), float32(y), cfg.HUD.SunDotRadius,
		sunDotColor(verticalFactor), true)
}

// sunOrbitPosition places the indicator on a circle around the screen center.
// The quarter-turn offset lines the dot up against the shadow direction, so
// shadows always point away from it.
func sunOrbitPosition(horizontal float64, w, h int, margin float64) (x, y float64) {
	rad := math.Mod(horizontal+270, 360) * math.Pi / 180
	x = float64(w)/2 + margin*math.Cos(rad)
	y = float64(h)/2 - margin*math.Sin(rad)
	return x, y
}

// sunDotColor shifts from sunset orange at the horizon toward white-yellow
// overhead.
func sunDotColor(verticalFactor float64) color.NRGBA {
	v := math.Max(0, math.Min(1, verticalFactor))
	if v < 0.5 {
		return color.NRGBA{R: 255, G: uint8(140 + 115*v*2), B: 40, A: 255}
	}
	return color.NRGBA{R: 255, G: 255, B: uint8(40 + 180*(v-0.5)*2), A: 255}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
