package config

import "github.com/yohamta/donburi/ecs"

// Default is the single update/render layer of the testbed.
const Default = ecs.LayerID(0)
