package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/kcc-testbed/components"
	"github.com/automoto/kcc-testbed/tags"
)

// DrawHUD prints the controller state readout in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := tags.Character.First(e.World)
	if !ok {
		return
	}
	snap := components.SnapshotOf(entry)
	ch := components.Character.Get(entry)

	zoom := 1.0
	if camEntry, ok := components.Camera.First(e.World); ok {
		zoom = components.Camera.Get(camEntry).Zoom
	}

	msg := fmt.Sprintf(
		"mode: %s\npos:  %6.2f %6.2f %6.2f\nvel:  %6.2f %6.2f %6.2f  (%.2f u/s)\nair:  %d ticks  zoom: %.2fx\n\nwasd move  space jump  r reset\ne/q pan  +/- zoom  f1 footprints",
		snap.Mode,
		snap.Position.X(), snap.Position.Y(), snap.Position.Z(),
		snap.Velocity.X(), snap.Velocity.Y(), snap.Velocity.Z(),
		snap.Velocity.Len(),
		ch.AirTicks,
		zoom,
	)
	ebitenutil.DebugPrint(screen, msg)
}
