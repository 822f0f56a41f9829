package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/automoto/kcc-testbed/config"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions. JustPressed/JustReleased are computed by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// Action returns the temporal state for one action id.
func (in *InputData) Action(id cfg.ActionID) ActionState {
	return ActionState{
		Pressed:      in.Current[id],
		JustPressed:  in.Current[id] && !in.Previous[id],
		JustReleased: !in.Current[id] && in.Previous[id],
	}
}

var Input = donburi.NewComponentType[InputData]()

// IntentData is the immutable per-tick movement intent handed to the
// character controller. The controller reads Move and Jump only; the fly
// flags are consumed by the camera layer.
type IntentData struct {
	Move [2]float64 // camera-relative, x right / y forward, length <= 1
	Jump bool       // edge-triggered

	FlyUp   bool
	FlyDown bool
}

var Intent = donburi.NewComponentType[IntentData]()
