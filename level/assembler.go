package level

import (
	"errors"
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"

	"github.com/automoto/kcc-testbed/collision"
	"github.com/automoto/kcc-testbed/params"
)

// Layout constants. Each element family gets its own lane along Z and its
// instances are packed left to right along X with a fixed gap, exactly in
// generation order, so the same declarations always produce the same level.
const (
	trackStartX = -90.0
	trackGap    = 5.0
	laneSpacing = 20.0

	groundHalfSize  = 200.0
	groundThickness = 1.0
)

// Footprint space bounds for the resolv broad phase. World coordinates are
// shifted into this positive-quadrant space.
const (
	spaceOriginX = -110.0
	spaceOriginZ = -30.0
	spaceWidth   = 512
	spaceHeight  = 256
	spaceCell    = 8
)

// Assembly is the assembled level: the spawned instances plus the sealed
// collision world they registered into.
type Assembly struct {
	Instances []*Instance
	World     *collision.World
	Ground    collision.ID
}

// Assemble expands every element spec into its permutations, builds each
// instance, places it on its family's lane, and registers all colliders
// into a fresh collision world. The world is sealed before returning.
//
// A spec with a malformed range is skipped with a warning; the rest of the
// level still assembles. Assemble is deterministic: identical specs yield
// identical placements and collider ids on every run.
func Assemble(specs []ElementSpec) *Assembly {
	world := collision.NewWorld()
	asm := &Assembly{World: world}

	asm.Ground = world.Add(collision.Box{
		HalfExtents: mgl64.Vec3{groundHalfSize, groundThickness / 2, groundHalfSize},
		Position:    mgl64.Vec3{0, -groundThickness / 2, 0},
		Rotation:    mgl64.QuatIdent(),
	})

	// 2D footprint space on the ground plane; resolv narrows overlap
	// candidates to shared cells, the exact rectangle test runs after.
	space := resolv.NewSpace(spaceWidth, spaceHeight, spaceCell, spaceCell)

	nextID := 1
	for row, spec := range specs {
		tuples, err := params.Permutations(spec.Axes)
		if err != nil {
			if errors.Is(err, params.ErrInvalidRange) {
				log.Printf("level: skipping element %q: %v", spec.Name, err)
				continue
			}
			log.Printf("level: element %q failed to expand: %v", spec.Name, err)
			continue
		}

		laneZ := float64(row) * laneSpacing
		cursor := trackStartX
		for _, tuple := range tuples {
			pieces, footprint := spec.Build(tuple)

			placement := mgl64.Vec3{cursor - footprint.Min.X(), 0, laneZ}
			cursor += footprint.Max.X() - footprint.Min.X() + trackGap

			inst := &Instance{
				ID:        nextID,
				Element:   spec.Name,
				Tuple:     tuple,
				Placement: placement,
				Footprint: footprint,
				Pieces:    pieces,
			}
			nextID++

			for _, p := range pieces {
				id := world.Add(collision.Box{
					HalfExtents: p.Size.Mul(0.5),
					Position:    placement.Add(p.Offset),
					Rotation:    p.Rotation,
				})
				inst.Colliders = append(inst.Colliders, id)
			}

			checkFootprintSpace(space, inst)
			asm.Instances = append(asm.Instances, inst)
		}
	}

	world.Seal()
	return asm
}

// checkFootprintSpace inserts the instance footprint into the 2D space and
// warns if it intersects an already placed one. Overlap here is a layout
// bug, not a runtime error; the level keeps assembling.
func checkFootprintSpace(space *resolv.Space, inst *Instance) {
	fp := inst.WorldFootprint()
	x := fp.Min.X() - spaceOriginX
	z := fp.Min.Z() - spaceOriginZ
	w := fp.Max.X() - fp.Min.X()
	d := fp.Max.Z() - fp.Min.Z()

	obj := resolv.NewObject(x, z, w, d, inst.Element)
	space.Add(obj)

	if check := obj.Check(0, 0); check != nil {
		for _, other := range check.Objects {
			if other == obj {
				continue
			}
			if rectsOverlap(obj, other) {
				log.Printf("level: footprint of %s overlaps a prior placement", inst.Name())
			}
		}
	}
}

// rectsOverlap is the exact test behind resolv's cell broad phase; shared
// edges from back-to-back packing do not count as overlap.
func rectsOverlap(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X &&
		a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// SpawnPoint is where a character drops into the assembled level: just
// before the first lane, one capsule height above the ground slab.
func (a *Assembly) SpawnPoint() mgl64.Vec3 {
	return mgl64.Vec3{trackStartX - trackGap, 1.0, 0}
}
