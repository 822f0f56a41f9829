package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"

	cfg "github.com/automoto/kcc-testbed/config"
)

// CharacterData is the controller's per-tick state. It is owned exclusively
// by the character system; everything else reads Snapshot copies.
type CharacterData struct {
	Velocity     mgl64.Vec3
	Mode         cfg.MoveModeID
	GroundNormal mgl64.Vec3 // zero unless Grounded or Sliding
	AirTicks     int        // ticks since last walkable contact
}

var Character = donburi.NewComponentType[CharacterData]()

// Snapshot is the read-only view exposed to the camera and HUD.
type Snapshot struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Mode     cfg.MoveModeID
	Grounded bool
}

// SnapshotOf copies the character state out of an entry. The entry must
// have Transform and Character components.
func SnapshotOf(entry *donburi.Entry) Snapshot {
	tr := Transform.Get(entry)
	ch := Character.Get(entry)
	return Snapshot{
		Position: tr.Position,
		Velocity: ch.Velocity,
		Mode:     ch.Mode,
		Grounded: ch.Mode == cfg.ModeGrounded,
	}
}
