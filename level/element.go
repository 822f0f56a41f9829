// Package level declares the procedural element families, builds their
// geometry from parameter tuples, and lays the generated instances out into
// the static collision world.
package level

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/automoto/kcc-testbed/collision"
	"github.com/automoto/kcc-testbed/params"
)

// Piece is one oriented box of an element, in the element's local frame.
// The instance origin sits on the ground plane at the element's base center.
type Piece struct {
	Size     mgl64.Vec3 // full extents
	Offset   mgl64.Vec3 // center relative to instance origin
	Rotation mgl64.Quat
}

// ElementSpec is one named procedural element family: its ordered parameter
// axes and the factory that turns a tuple into geometry. Specs are defined
// once at startup and read-only afterwards.
type ElementSpec struct {
	Name string
	Axes []params.Axis

	// Build returns the element's pieces and its conservative local
	// footprint. Identical tuples must yield identical output.
	Build func(t params.Tuple) ([]Piece, collision.AABB)
}

// Instance is one spawned element: the tuple that produced it, the world
// placement assigned by the assembler, and the collider ids it registered
// in the shared world.
type Instance struct {
	ID        int
	Element   string
	Tuple     params.Tuple
	Placement mgl64.Vec3 // translation only; pieces carry their own rotation
	Footprint collision.AABB
	Pieces    []Piece
	Colliders []collision.ID
}

// Name returns a stable human-readable identifier for debugging.
func (in *Instance) Name() string {
	s := in.Tuple.String()
	if s == "" {
		return in.Element
	}
	return in.Element + "_" + s
}

// WorldFootprint is the instance footprint translated to world space.
func (in *Instance) WorldFootprint() collision.AABB {
	return collision.AABB{
		Min: in.Footprint.Min.Add(in.Placement),
		Max: in.Footprint.Max.Add(in.Placement),
	}
}

// PiecesBounds computes the exact local AABB of the pieces. The declared
// footprint must contain it; the factory test enforces that.
func PiecesBounds(pieces []Piece) collision.AABB {
	var bounds collision.AABB
	for i, p := range pieces {
		box := collision.Box{
			HalfExtents: p.Size.Mul(0.5),
			Position:    p.Offset,
			Rotation:    p.Rotation,
		}
		if i == 0 {
			bounds = box.Bounds()
		} else {
			bounds = bounds.Union(box.Bounds())
		}
	}
	return bounds
}
