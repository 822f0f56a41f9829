package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/kcc-testbed/collision"
)

// ObjectData is a body's collision shape. The character never owns level
// colliders, only its own capsule; level geometry lives in the shared
// world arena.
type ObjectData struct {
	Shape collision.Capsule
}

var Object = donburi.NewComponentType[ObjectData]()
