package config

// MoveModeID identifies the character controller's movement mode. The
// controller is a small closed state machine over these three modes.
type MoveModeID int

const (
	ModeGrounded MoveModeID = iota
	ModeAirborne
	ModeSliding // supported by a surface steeper than the walkable limit
)

func (m MoveModeID) String() string {
	switch m {
	case ModeGrounded:
		return "grounded"
	case ModeAirborne:
		return "airborne"
	case ModeSliding:
		return "sliding"
	default:
		return "unknown"
	}
}
