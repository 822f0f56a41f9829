package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/kcc-testbed/components"
	cfg "github.com/automoto/kcc-testbed/config"
	"github.com/automoto/kcc-testbed/tags"
)

var (
	Character = newArchetype(
		tags.Character,
		components.Transform,
		components.Character,
		components.Object,
		components.Intent,
	)
	Geometry = newArchetype(
		tags.Geometry,
		components.Instance,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Input = newArchetype(
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
