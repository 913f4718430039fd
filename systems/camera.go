package systems

import (
	"math"

	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/stackdrive/components"
	"github.com/automoto/stackdrive/config"
	"github.com/automoto/stackdrive/tags"
)

// UpdateCamera eases the viewport after the vehicle while keeping the level
// edges on or beyond the screen edges.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	vehicleEntry, ok := tags.Vehicle.First(e.World)
	if !ok {
		return
	}
	o := components.Object.Get(vehicleEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).Level
	if level == nil {
		return
	}

	targetX := o.X + o.W/2
	targetY := o.Y + o.H/2

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	levelWidth := float64(level.Width)
	levelHeight := float64(level.Height)

	// Camera bounds: ensure the level always fills the screen
	minCameraX := screenWidth / 2
	maxCameraX := levelWidth - screenWidth/2
	minCameraY := screenHeight / 2
	maxCameraY := levelHeight - screenHeight/2
	if maxCameraX < minCameraX {
		minCameraX = levelWidth / 2
		maxCameraX = minCameraX
	}
	if maxCameraY < minCameraY {
		minCameraY = levelHeight / 2
		maxCameraY = minCameraY
	}

	targetX = math.Max(minCameraX, math.Min(maxCameraX, targetX))
	targetY = math.Max(minCameraY, math.Min(maxCameraY, targetY))

	// Deadzone keeps the frame still while the vehicle idles in place.
	if math.Abs(targetX-camera.Position.X) < config.Camera.Deadzone &&
		math.Abs(targetY-camera.Position.Y) < config.Camera.Deadzone {
		return
	}

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}
