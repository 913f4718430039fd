package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/automoto/stackdrive/config"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions; JustPressed/JustReleased are computed by comparing frames.
// SteerAxis merges the analog stick with the steer keys into [-1, 1].
type InputData struct {
	Current   [cfg.ActionCount]bool
	Previous  [cfg.ActionCount]bool
	SteerAxis float64
}

var Input = donburi.NewComponentType[InputData]()

// Action returns the temporal state of one action.
func (d *InputData) Action(id cfg.ActionID) ActionState {
	cur, prev := d.Current[id], d.Previous[id]
	return ActionState{
		Pressed:      cur,
		JustPressed:  cur && !prev,
		JustReleased: !cur && prev,
	}
}
