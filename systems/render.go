package systems

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/stackdrive/components"
	"github.com/automoto/stackdrive/stack"
)

var (
	levelDrawOp = &ebiten.DrawImageOptions{}

	// Reused between frames to avoid per-frame allocation of the sort slice.
	stackDrawList []stackDrawEntry
)

type stackDrawEntry struct {
	entry   *donburi.Entry
	anchorX float64
	anchorY float64
}

// DrawLevel blits the pre-rendered background shifted by the camera.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).Level
	if level == nil || level.Background == nil {
		return
	}

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	levelDrawOp.GeoM.Reset()
	levelDrawOp.GeoM.Translate(float64(width)/2-camera.Position.X, float64(height)/2-camera.Position.Y)
	screen.DrawImage(level.Background, levelDrawOp)
}

// DrawStacks renders every sprite-stacked entity back-to-front by anchor Y,
// so stacks lower on screen draw over the ones behind them.
func DrawStacks(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	var sun *stack.Sun
	var outlines bool
	quality := stack.QualityMedium
	if sunEntry, ok := components.Sun.First(ecs.World); ok {
		sunData := components.Sun.Get(sunEntry)
		sun = sunData.Sun
		outlines = sunData.OutlinesEnabled
		quality = sunData.Quality
	}

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	// Shadows and tall stacks extend well past the footprint, so cull wide.
	padding := 128.0
	minX := camera.Position.X - float64(width)/2 - padding
	maxX := camera.Position.X + float64(width)/2 + padding
	minY := camera.Position.Y - float64(height)/2 - padding
	maxY := camera.Position.Y + float64(height)/2 + padding

	stackDrawList = stackDrawList[:0]
	components.SpriteStack.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		ax := o.X + o.W/2
		ay := o.Y + o.H/2
		if ax < minX || ax > maxX || ay < minY || ay > maxY {
			return
		}
		stackDrawList = append(stackDrawList, stackDrawEntry{entry: e, anchorX: ax, anchorY: ay})
	})
	sort.Slice(stackDrawList, func(i, j int) bool {
		return stackDrawList[i].anchorY < stackDrawList[j].anchorY
	})

	camX := float64(width)/2 - camera.Position.X
	camY := float64(height)/2 - camera.Position.Y
	for _, d := range stackDrawList {
		s := components.SpriteStack.Get(d.entry)
		if s.Renderer == nil {
			continue
		}
		s.Renderer.Draw(screen, stack.RenderState{
			X:           d.anchorX + camX,
			Y:           d.anchorY + camY,
			Rotation:    s.Rotation,
			Tilt:        s.Tilt,
			DrawShadow:  sun != nil && sun.ShadowsEnabled,
			DrawOutline: outlines,
			Quality:     quality,
		}, sun)
	}
}
