package systems

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/kcc-testbed/archetypes"
	"github.com/automoto/kcc-testbed/collision"
	"github.com/automoto/kcc-testbed/components"
	cfg "github.com/automoto/kcc-testbed/config"
	"github.com/automoto/kcc-testbed/level"
)

// restHeight is the capsule center height when standing on a surface at
// y=0 with the contact skin in place.
var restHeight = cfg.Character.CapsuleHalfHeight + cfg.Character.Radius + cfg.Character.ContactEpsilon

func floor() collision.Box {
	return collision.Box{
		HalfExtents: mgl64.Vec3{20, 0.5, 20},
		Position:    mgl64.Vec3{0, -0.5, 0},
		Rotation:    mgl64.QuatIdent(),
	}
}

func newTestECS(t *testing.T, boxes ...collision.Box) (*ecs.ECS, *donburi.Entry, *collision.World) {
	t.Helper()
	world := collision.NewWorld()
	for _, b := range boxes {
		world.Add(b)
	}
	world.Seal()

	e := ecs.NewECS(donburi.NewWorld())
	asm := &level.Assembly{World: world}
	levelEntry := archetypes.Level.Spawn(e)
	components.Level.SetValue(levelEntry, components.LevelData{Assembly: asm})

	entry := spawnCharacter(e, asm)
	return e, entry, world
}

func placeGrounded(entry *donburi.Entry, pos mgl64.Vec3) {
	components.Transform.Get(entry).Position = pos
	*components.Character.Get(entry) = components.CharacterData{
		Mode:         cfg.ModeGrounded,
		GroundNormal: mgl64.Vec3{0, 1, 0},
	}
}

// tick runs one controller tick and fails the test if the capsule ended up
// embedded in geometry.
func tick(t *testing.T, e *ecs.ECS, entry *donburi.Entry, world *collision.World) {
	t.Helper()
	UpdateCharacters(e)
	tr := components.Transform.Get(entry)
	shape := components.Object.Get(entry).Shape
	if world.Overlaps(shape, tr.Position) {
		t.Fatalf("capsule embedded in geometry at %v", tr.Position)
	}
}

// settleMode drops the character until it stops being airborne and returns
// the mode it settled into.
func settleMode(t *testing.T, e *ecs.ECS, entry *donburi.Entry, world *collision.World, maxTicks int) cfg.MoveModeID {
	t.Helper()
	ch := components.Character.Get(entry)
	for i := 0; i < maxTicks; i++ {
		tick(t, e, entry, world)
		if ch.Mode != cfg.ModeAirborne {
			return ch.Mode
		}
	}
	t.Fatalf("character never landed, still at %v", components.Transform.Get(entry).Position)
	return cfg.ModeAirborne
}

func TestGroundedIdleStaysPut(t *testing.T) {
	e, entry, world := newTestECS(t, floor())
	start := mgl64.Vec3{0, restHeight, 0}
	placeGrounded(entry, start)

	for i := 0; i < 60; i++ {
		tick(t, e, entry, world)
	}

	tr := components.Transform.Get(entry)
	if tr.Position.Sub(start).Len() > 1e-6 {
		t.Errorf("idle character drifted from %v to %v", start, tr.Position)
	}
	if got := components.Character.Get(entry).Mode; got != cfg.ModeGrounded {
		t.Errorf("mode = %v, want grounded", got)
	}
}

func TestWalkReachesMoveSpeed(t *testing.T) {
	e, entry, world := newTestECS(t, floor())
	placeGrounded(entry, mgl64.Vec3{0, restHeight, 0})
	components.Intent.Get(entry).Move = [2]float64{0, 1} // forward = +Z

	for i := 0; i < 60; i++ {
		tick(t, e, entry, world)
	}

	ch := components.Character.Get(entry)
	if speed := ch.Velocity.Len(); speed < cfg.Character.MoveSpeed-0.5 || speed > cfg.Character.MoveSpeed+0.5 {
		t.Errorf("speed = %.3f, want about %.1f", speed, cfg.Character.MoveSpeed)
	}
	if ch.Mode != cfg.ModeGrounded {
		t.Errorf("mode = %v, want grounded", ch.Mode)
	}
	tr := components.Transform.Get(entry)
	if math.Abs(tr.Position.Y()-restHeight) > 0.02 {
		t.Errorf("height drifted to %.4f while walking on flat ground", tr.Position.Y())
	}
	if tr.Position.Z() < 3 {
		t.Errorf("barely moved, z = %.3f", tr.Position.Z())
	}
}

func slope(angle float64) collision.Box {
	return collision.Box{
		HalfExtents: mgl64.Vec3{5, 0.5, 5},
		Position:    mgl64.Vec3{0, 0, 0},
		Rotation:    mgl64.QuatRotate(angle, mgl64.Vec3{1, 0, 0}),
	}
}

func TestSlopeAtWalkableLimitIsGround(t *testing.T) {
	e, entry, world := newTestECS(t, slope(math.Pi/4))
	components.Transform.Get(entry).Position = mgl64.Vec3{0, 3, 0}
	*components.Character.Get(entry) = components.CharacterData{Mode: cfg.ModeAirborne}

	if mode := settleMode(t, e, entry, world, 300); mode != cfg.ModeGrounded {
		t.Fatalf("landed on 45 degree slope in mode %v, want grounded", mode)
	}

	// Grounded on a walkable slope means no gravity: it must come to rest.
	ch := components.Character.Get(entry)
	for i := 0; i < 120; i++ {
		tick(t, e, entry, world)
	}
	if ch.Mode != cfg.ModeGrounded {
		t.Errorf("mode = %v after settling, want grounded", ch.Mode)
	}
	if speed := ch.Velocity.Len(); speed > 0.05 {
		t.Errorf("still moving at %.3f u/s on walkable slope", speed)
	}
}

func TestSlopePastLimitSlides(t *testing.T) {
	e, entry, world := newTestECS(t, slope(46*math.Pi/180))
	components.Transform.Get(entry).Position = mgl64.Vec3{0, 3, 0}
	*components.Character.Get(entry) = components.CharacterData{Mode: cfg.ModeAirborne}

	if mode := settleMode(t, e, entry, world, 300); mode != cfg.ModeSliding {
		t.Fatalf("landed on 46 degree slope in mode %v, want sliding", mode)
	}

	// Gravity must keep it accelerating down the surface.
	ch := components.Character.Get(entry)
	tr := components.Transform.Get(entry)
	before := tr.Position
	for i := 0; i < 20 && ch.Mode == cfg.ModeSliding; i++ {
		tick(t, e, entry, world)
	}
	if tr.Position.Sub(before).Len() < 0.05 {
		t.Errorf("sliding character barely moved: %v to %v", before, tr.Position)
	}
}

func step(height float64) collision.Box {
	return collision.Box{
		HalfExtents: mgl64.Vec3{1, height / 2, 2},
		Position:    mgl64.Vec3{2, height / 2, 0},
		Rotation:    mgl64.QuatIdent(),
	}
}

func TestStepUpClimbsLowStep(t *testing.T) {
	e, entry, world := newTestECS(t, floor(), step(0.2))
	placeGrounded(entry, mgl64.Vec3{0, restHeight, 0})
	components.Intent.Get(entry).Move = [2]float64{1, 0} // right = +X

	for i := 0; i < 20; i++ {
		tick(t, e, entry, world)
	}

	tr := components.Transform.Get(entry)
	if tr.Position.X() < 1.2 {
		t.Fatalf("never reached the step, x = %.3f", tr.Position.X())
	}
	if math.Abs(tr.Position.Y()-(0.2+restHeight)) > 0.05 {
		t.Errorf("height = %.3f, want on top of 0.2 step (about %.3f)", tr.Position.Y(), 0.2+restHeight)
	}
	if got := components.Character.Get(entry).Mode; got != cfg.ModeGrounded {
		t.Errorf("mode = %v after stepping up, want grounded", got)
	}
}

func TestStepUpBlockedByHighStep(t *testing.T) {
	e, entry, world := newTestECS(t, floor(), step(0.4))
	placeGrounded(entry, mgl64.Vec3{0, restHeight, 0})
	components.Intent.Get(entry).Move = [2]float64{1, 0}

	for i := 0; i < 30; i++ {
		tick(t, e, entry, world)
	}

	tr := components.Transform.Get(entry)
	if tr.Position.X() > 1-cfg.Character.Radius {
		t.Errorf("walked into a 0.4 obstacle, x = %.3f", tr.Position.X())
	}
	if tr.Position.Y() > restHeight+0.05 {
		t.Errorf("climbed a step above the limit, y = %.3f", tr.Position.Y())
	}
}

func TestJumpAndLand(t *testing.T) {
	e, entry, world := newTestECS(t, floor())
	placeGrounded(entry, mgl64.Vec3{0, restHeight, 0})

	components.Intent.Get(entry).Jump = true
	tick(t, e, entry, world)
	components.Intent.Get(entry).Jump = false

	ch := components.Character.Get(entry)
	if ch.Mode != cfg.ModeAirborne {
		t.Fatalf("mode = %v right after jump, want airborne", ch.Mode)
	}
	if ch.Velocity.Y() < 1 {
		t.Fatalf("vertical velocity = %.3f after jump impulse", ch.Velocity.Y())
	}

	tr := components.Transform.Get(entry)
	apex := tr.Position.Y()
	landed := false
	for i := 0; i < 120; i++ {
		tick(t, e, entry, world)
		if y := tr.Position.Y(); y > apex {
			apex = y
		}
		if ch.Mode == cfg.ModeGrounded {
			landed = true
			break
		}
	}

	if !landed {
		t.Fatal("never landed after jumping")
	}
	if apex < restHeight+0.5 {
		t.Errorf("jump apex %.3f barely above rest height %.3f", apex, restHeight)
	}
	if math.Abs(tr.Position.Y()-restHeight) > 0.05 {
		t.Errorf("landed at height %.3f, want about %.3f", tr.Position.Y(), restHeight)
	}
}

func TestAirborneJumpIgnored(t *testing.T) {
	e, entry, world := newTestECS(t, floor())
	components.Transform.Get(entry).Position = mgl64.Vec3{0, 5, 0}
	*components.Character.Get(entry) = components.CharacterData{Mode: cfg.ModeAirborne}
	components.Intent.Get(entry).Jump = true

	ch := components.Character.Get(entry)
	tick(t, e, entry, world)
	if ch.Velocity.Y() > 0 {
		t.Errorf("jump applied while airborne, vy = %.3f", ch.Velocity.Y())
	}
}

func TestWalkOffLedgeGoesAirborne(t *testing.T) {
	// Floor covering only negative x; walking in +x runs off the edge.
	e, entry, world := newTestECS(t, collision.Box{
		HalfExtents: mgl64.Vec3{5, 0.5, 5},
		Position:    mgl64.Vec3{-5, -0.5, 0},
		Rotation:    mgl64.QuatIdent(),
	})
	placeGrounded(entry, mgl64.Vec3{-2, restHeight, 0})
	components.Intent.Get(entry).Move = [2]float64{1, 0}

	ch := components.Character.Get(entry)
	wentAirborne := false
	for i := 0; i < 60; i++ {
		tick(t, e, entry, world)
		if ch.Mode == cfg.ModeAirborne {
			wentAirborne = true
			break
		}
	}
	if !wentAirborne {
		t.Fatalf("never went airborne; x = %.3f", components.Transform.Get(entry).Position.X())
	}
	if ch.AirTicks == 0 {
		t.Error("airborne with zero air ticks")
	}
}

func TestWallSlidePreservesTangentMotion(t *testing.T) {
	// A wall along x; walking diagonally into it should keep the tangential
	// component instead of stopping dead.
	e, entry, world := newTestECS(t, floor(), collision.Box{
		HalfExtents: mgl64.Vec3{0.5, 2, 20},
		Position:    mgl64.Vec3{3, 2, 0},
		Rotation:    mgl64.QuatIdent(),
	})
	placeGrounded(entry, mgl64.Vec3{0, restHeight, 0})
	components.Intent.Get(entry).Move = [2]float64{1, 1}

	for i := 0; i < 60; i++ {
		tick(t, e, entry, world)
	}

	tr := components.Transform.Get(entry)
	if tr.Position.X() > 2.5-cfg.Character.Radius+0.05 {
		t.Errorf("pushed into the wall, x = %.3f", tr.Position.X())
	}
	if tr.Position.Z() < 2 {
		t.Errorf("no tangential slide along the wall, z = %.3f", tr.Position.Z())
	}
}
