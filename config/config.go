package config

import "math"

// GameConfig contains window and loop configuration
type GameConfig struct {
	Width    int
	Height   int
	Title    string
	TickRate float64 // fixed simulation ticks per second
}

// CharacterConfig contains all controller tuning values. These are policy
// constants, not derived at runtime; every sweep in the controller shares
// ContactEpsilon so contacts resolve consistently at the boundary.
type CharacterConfig struct {
	// Capsule dimensions
	Radius            float64
	CapsuleHalfHeight float64 // half the inner segment, hemispheres excluded

	// Movement
	MoveSpeed   float64
	GroundAccel float64
	AirAccel    float64
	Friction    float64
	JumpImpulse float64
	Gravity     float64

	// Contact resolution
	WalkableAngle   float64 // max ground angle from vertical, radians
	StepHeight      float64
	GroundProbe     float64 // downward probe distance past the capsule
	ContactEpsilon  float64 // skin kept between capsule and geometry
	SlideIterations int     // sweep-and-slide cap per tick
}

// CameraConfig contains the debug top-down view configuration
type CameraConfig struct {
	FollowSmoothing float64
	PixelsPerUnit   float64 // world-to-screen scale at zoom 1
	DefaultZoom     float64
	MinZoom         float64
	MaxZoom         float64
	ZoomStep        float64
	ZoomEaseTime    float64 // seconds per zoom transition
}

// DebugConfig contains overlay toggles
type DebugConfig struct {
	ShowFootprints bool
	ShowContacts   bool
}

var (
	C         GameConfig
	Character CharacterConfig
	Camera    CameraConfig
	Debug     DebugConfig
)

func init() {
	C = GameConfig{
		Width:    1280,
		Height:   720,
		Title:    "kcc testbed",
		TickRate: 60,
	}

	Character = CharacterConfig{
		Radius:            0.35,
		CapsuleHalfHeight: 0.5,
		MoveSpeed:         8.0,
		GroundAccel:       100.0,
		AirAccel:          40.0,
		Friction:          60.0,
		JumpImpulse:       6.0,
		Gravity:           20.0, // realistic gravity feels floaty in games
		WalkableAngle:     math.Pi / 4,
		StepHeight:        0.25,
		GroundProbe:       0.1,
		ContactEpsilon:    0.01,
		SlideIterations:   4,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.08,
		PixelsPerUnit:   6,
		DefaultZoom:     1.0,
		MinZoom:         0.5,
		MaxZoom:         3.0,
		ZoomStep:        0.25,
		ZoomEaseTime:    0.2,
	}

	Debug = DebugConfig{
		ShowFootprints: true,
		ShowContacts:   false,
	}
}
