package systems

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/stackdrive/components"
	cfg "github.com/automoto/stackdrive/config"
	"github.com/automoto/stackdrive/tags"
)

const tickDelta = 1.0 / 60

// UpdateVehicle advances the driving model: throttle and brake change speed,
// steering turns the facing, and the resulting motion is resolved against
// solid geometry. The sprite stack mirrors the physics state afterwards.
func UpdateVehicle(e *ecs.ECS) {
	entry, ok := tags.Vehicle.First(e.World)
	if !ok {
		return
	}
	inputEntry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)
	v := components.Vehicle.Get(entry)
	o := components.Object.Get(entry)

	applyThrottle(v, input)
	applySteering(v, input.SteerAxis)
	updateTilt(v, input.SteerAxis)

	dx, dy := headingVelocity(v.Rotation, v.Speed)

	bounced := false
	if col := o.Check(dx, 0, tags.ResolvSolid); col != nil {
		dx = 0
		bounced = true
	}
	if col := o.Check(0, dy, tags.ResolvSolid); col != nil {
		dy = 0
		bounced = true
	}
	if bounced {
		v.Speed = -v.Speed * cfg.Vehicle.BounceDamping
	}

	o.X += dx
	o.Y += dy
	o.Update()

	stackData := components.SpriteStack.Get(entry)
	stackData.Rotation = v.Rotation
	stackData.Tilt = v.Tilt
}

func applyThrottle(v *components.VehicleData, input *components.InputData) {
	switch {
	case input.Current[cfg.ActionThrottle]:
		v.Speed += cfg.Vehicle.Acceleration
	case input.Current[cfg.ActionBrake]:
		v.Speed -= cfg.Vehicle.BrakePower
	default:
		// Coasting: bleed speed toward zero without crossing it.
		switch {
		case v.Speed > cfg.Vehicle.Friction:
			v.Speed -= cfg.Vehicle.Friction
		case v.Speed < -cfg.Vehicle.Friction:
			v.Speed += cfg.Vehicle.Friction
		default:
			v.Speed = 0
		}
	}
	v.Speed = math.Max(-cfg.Vehicle.MaxReverse, math.Min(cfg.Vehicle.MaxSpeed, v.Speed))
}

func applySteering(v *components.VehicleData, steer float64) {
	if steer == 0 || v.Speed == 0 {
		return
	}

	// Steering authority fades out at crawling speeds.
	speedFrac := math.Abs(v.Speed) / cfg.Vehicle.MaxSpeed
	authority := 1.0
	if cfg.Vehicle.MinTurnSpeedFrac > 0 && speedFrac < cfg.Vehicle.MinTurnSpeedFrac {
		authority = speedFrac / cfg.Vehicle.MinTurnSpeedFrac
	}

	// Reversing mirrors the steering like a real car backing up.
	direction := 1.0
	if v.Speed < 0 {
		direction = -1.0
	}

	v.Rotation = wrapDegrees(v.Rotation + steer*cfg.Vehicle.TurnSpeed*authority*direction)
}

// updateTilt eases the visual lean toward the current steering input. The
// stack leans away from the turn, like a body rolling on its suspension.
func updateTilt(v *components.VehicleData, steer float64) {
	speedFrac := math.Min(1, math.Abs(v.Speed)/cfg.Vehicle.MaxSpeed)
	target := -steer * speedFrac

	if math.Abs(target-v.TiltTarget) > 0.01 {
		duration := cfg.Vehicle.TiltRelease
		if math.Abs(target) > math.Abs(v.Tilt) {
			duration = cfg.Vehicle.TiltAttack
		}
		v.TiltTween = gween.New(float32(v.Tilt), float32(target), float32(duration), ease.OutQuad)
		v.TiltTarget = target
	}

	if v.TiltTween != nil {
		value, finished := v.TiltTween.Update(tickDelta)
		v.Tilt = float64(value)
		if finished {
			v.TiltTween = nil
		}
	}
}

// headingVelocity converts a compass facing (0 degrees drives up-screen,
// clockwise positive) and a signed speed into a per-tick displacement.
func headingVelocity(rotation, speed float64) (dx, dy float64) {
	rad := rotation * math.Pi / 180
	return math.Sin(rad) * speed, -math.Cos(rad) * speed
}

func wrapDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
