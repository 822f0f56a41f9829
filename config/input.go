package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveForward
	ActionMoveBack
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionFlyUp
	ActionFlyDown
	ActionZoomIn
	ActionZoomOut
	ActionToggleFootprints
	ActionReset
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the key bindings for an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveForward: {Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyUp}},
			ActionMoveBack:    {Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyDown}},
			ActionMoveLeft:    {Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft}},
			ActionMoveRight:   {Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyRight}},
			ActionJump:        {Keys: []ebiten.Key{ebiten.KeySpace}},
			// Fly modifiers are read by the camera layer only, never by
			// the character controller.
			ActionFlyUp:            {Keys: []ebiten.Key{ebiten.KeyE}},
			ActionFlyDown:          {Keys: []ebiten.Key{ebiten.KeyQ}},
			ActionZoomIn:           {Keys: []ebiten.Key{ebiten.KeyEqual, ebiten.KeyKPAdd}},
			ActionZoomOut:          {Keys: []ebiten.Key{ebiten.KeyMinus, ebiten.KeyKPSubtract}},
			ActionToggleFootprints: {Keys: []ebiten.Key{ebiten.KeyF1}},
			ActionReset:            {Keys: []ebiten.Key{ebiten.KeyR}},
		},
	}
}
