package systems

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/stackdrive/components"
	cfg "github.com/automoto/stackdrive/config"
	"github.com/automoto/stackdrive/tags"
)

// UpdateBubbles emits trail particles behind the moving vehicle and advances
// the live ones. Particles drift away from the stern with a random wobble and
// fade out over their lifetime.
func UpdateBubbles(e *ecs.ECS) {
	trailEntry, ok := components.BubbleTrail.First(e.World)
	if !ok {
		return
	}
	trail := components.BubbleTrail.Get(trailEntry)

	trail.Bubbles = advanceBubbles(trail.Bubbles)

	if trail.Cooldown > 0 {
		trail.Cooldown--
	}

	vehicleEntry, ok := tags.Vehicle.First(e.World)
	if !ok {
		return
	}
	v := components.Vehicle.Get(vehicleEntry)
	if math.Abs(v.Speed) < cfg.Bubble.MinSpeed || trail.Cooldown > 0 {
		return
	}

	o := components.Object.Get(vehicleEntry)
	backward := wrapDegrees(v.Rotation + 180)
	sx, sy := headingVelocity(backward, cfg.Vehicle.CollisionHeight/2)

	trail.Bubbles = append(trail.Bubbles, components.Bubble{
		X:       o.X + o.W/2 + sx,
		Y:       o.Y + o.H/2 + sy,
		Size:    cfg.Bubble.MinSize + rand.Float64()*(cfg.Bubble.MaxSize-cfg.Bubble.MinSize),
		Life:    randLifetime(),
		MaxLife: cfg.Bubble.MaxLifetime,
		Speed:   cfg.Bubble.Speed,
		Angle:   wrapDegrees(backward + (rand.Float64()*2-1)*cfg.Bubble.SpreadDeg),
	})
	trail.Cooldown = cfg.Bubble.EmitInterval
}

func randLifetime() int {
	span := cfg.Bubble.MaxLifetime - cfg.Bubble.MinLifetime
	if span <= 0 {
		return cfg.Bubble.MaxLifetime
	}
	return cfg.Bubble.MinLifetime + rand.Intn(span)
}

// advanceBubbles moves and ages every particle in place, dropping the dead
// ones without reallocating the pool.
func advanceBubbles(bubbles []components.Bubble) []components.Bubble {
	live := bubbles[:0]
	for _, b := range bubbles {
		b.Life--
		if b.Life <= 0 {
			continue
		}
		dx, dy := headingVelocity(b.Angle, b.Speed)
		b.X += dx
		b.Y += dy
		live = append(live, b)
	}
	return live
}

// bubbleAlpha fades with remaining life but keeps a minimum visibility so
// particles never pop out abruptly.
func bubbleAlpha(life, maxLife int) uint8 {
	if maxLife <= 0 || life <= 0 {
		return 0
	}
	if life > maxLife {
		life = maxLife
	}
	return uint8(float64(life)/float64(maxLife)*200 + 55)
}

// DrawBubbles renders the trail under the sprite stacks so particles never
// cover the vehicle.
func DrawBubbles(ecs *ecs.ECS, screen *ebiten.Image) {
	trailEntry, ok := components.BubbleTrail.First(ecs.World)
	if !ok {
		return
	}
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX := float64(width)/2 - camera.Position.X
	camY := float64(height)/2 - camera.Position.Y

	for _, b := range components.BubbleTrail.Get(trailEntry).Bubbles {
		x := b.X + camX
		y := b.Y + camY
		if x < -8 || x > float64(width)+8 || y < -8 || y > float64(height)+8 {
			continue
		}
		a := bubbleAlpha(b.Life, b.MaxLife)
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(b.Size),
			color.NRGBA{R: 255, G: 255, B: 255, A: a}, false)
	}
}
