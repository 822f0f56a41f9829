package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/kcc-testbed/components"
	cfg "github.com/automoto/kcc-testbed/config"
	"github.com/automoto/kcc-testbed/systems"
)

// SandboxScene is the single scene of the testbed: the generated element
// track with one controllable character and the top-down debug view.
type SandboxScene struct {
	ecs  *ecs.ECS
	once sync.Once
}

func NewSandboxScene() *SandboxScene {
	return &SandboxScene{}
}

func (s *SandboxScene) Update() {
	s.once.Do(s.configure)
	s.ecs.Update()
}

func (s *SandboxScene) Draw(screen *ebiten.Image) {
	// Always clear to prevent flashes from the OS window background.
	screen.Fill(color.Black)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

func (s *SandboxScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input must run first; the controller consumes this tick's intent.
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateLevel)
	ecs.AddSystem(systems.UpdateCharacters)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateSettings)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	s.ecs = ecs

	systems.SpawnLevel(s.ecs)

	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(s.ecs, saved)
	}

	// Snap the camera onto the spawn point so the view doesn't pan in
	// from the origin.
	if camEntry, ok := components.Camera.First(s.ecs.World); ok {
		if charEntry, ok := components.Transform.First(s.ecs.World); ok {
			cam := components.Camera.Get(camEntry)
			pos := components.Transform.Get(charEntry).Position
			cam.X = pos.X()
			cam.Z = pos.Z()
		}
	}
}
