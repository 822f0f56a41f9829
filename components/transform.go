package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// TransformData is a body's world position. For characters this is the
// capsule segment midpoint.
type TransformData struct {
	Position mgl64.Vec3
}

var Transform = donburi.NewComponentType[TransformData]()
