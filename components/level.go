package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/kcc-testbed/level"
)

// LevelData holds the assembled level: instances plus the sealed collision
// world every controller queries.
type LevelData struct {
	Assembly *level.Assembly
}

var Level = donburi.NewComponentType[LevelData]()

// InstanceData marks one spawned level element entity.
type InstanceData struct {
	Instance *level.Instance
}

var Instance = donburi.NewComponentType[InstanceData]()
