package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/kcc-testbed/archetypes"
	"github.com/automoto/kcc-testbed/collision"
	"github.com/automoto/kcc-testbed/components"
	cfg "github.com/automoto/kcc-testbed/config"
	"github.com/automoto/kcc-testbed/level"
	"github.com/automoto/kcc-testbed/tags"
)

// SpawnLevel assembles the built-in element track and populates the world:
// one level entity holding the sealed collision world, one geometry entity
// per placed instance, the character at the spawn point, plus the camera
// and input singletons.
func SpawnLevel(e *ecs.ECS) {
	assembly := level.Assemble(level.BuiltinElements())

	levelEntry := archetypes.Level.Spawn(e)
	components.Level.SetValue(levelEntry, components.LevelData{Assembly: assembly})

	for _, inst := range assembly.Instances {
		geo := archetypes.Geometry.Spawn(e)
		components.Instance.SetValue(geo, components.InstanceData{Instance: inst})
	}

	spawnCharacter(e, assembly)

	cam := archetypes.Camera.Spawn(e)
	spawn := assembly.SpawnPoint()
	components.Camera.SetValue(cam, components.CameraData{
		X:          spawn.X(),
		Z:          spawn.Z(),
		Zoom:       cfg.Camera.DefaultZoom,
		TargetZoom: cfg.Camera.DefaultZoom,
	})

	archetypes.Input.Spawn(e)
}

func spawnCharacter(e *ecs.ECS, assembly *level.Assembly) *donburi.Entry {
	entry := archetypes.Character.Spawn(e)
	components.Transform.SetValue(entry, components.TransformData{
		Position: assembly.SpawnPoint(),
	})
	components.Character.SetValue(entry, components.CharacterData{
		Mode: cfg.ModeAirborne,
	})
	components.Object.SetValue(entry, components.ObjectData{
		Shape: collision.Capsule{
			Radius:     cfg.Character.Radius,
			HalfHeight: cfg.Character.CapsuleHalfHeight,
		},
	})
	return entry
}

// UpdateLevel handles the reset action: the character is moved back to the
// spawn point and dropped in fresh, as if the scene had just loaded.
func UpdateLevel(e *ecs.ECS) {
	inputEntry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	if !components.Input.Get(inputEntry).Action(cfg.ActionReset).JustPressed {
		return
	}

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	spawn := components.Level.Get(levelEntry).Assembly.SpawnPoint()

	tags.Character.Each(e.World, func(entry *donburi.Entry) {
		tr := components.Transform.Get(entry)
		ch := components.Character.Get(entry)
		tr.Position = spawn
		*ch = components.CharacterData{Mode: cfg.ModeAirborne}
	})
}
