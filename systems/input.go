package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/stackdrive/components"
	cfg "github.com/automoto/stackdrive/config"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE UpdateVehicle in the system order.
func UpdateInput(e *ecs.ECS) {
	entry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	input := components.Input.Get(entry)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	input.SteerAxis = steerAxis(input)
}

// steerAxis merges digital steer keys with the analog stick; the stick wins
// when deflected past the deadzone so partial steering stays partial.
func steerAxis(input *components.InputData) float64 {
	axis := 0.0
	if input.Current[cfg.ActionSteerLeft] {
		axis -= 1
	}
	if input.Current[cfg.ActionSteerRight] {
		axis += 1
	}

	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(v) > cfg.Input.AnalogDeadzone {
			axis = v
			input.Current[cfg.ActionSteerLeft] = v < 0
			input.Current[cfg.ActionSteerRight] = v > 0
		}
	}

	return math.Max(-1, math.Min(1, axis))
}
