package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ID identifies one collider in the world arena.
type ID int

// Hit is the first contact found along a sweep.
type Hit struct {
	Collider ID
	Fraction float64 // 0..1 along the from→to segment
	Distance float64 // world units traveled before contact
	Point    mgl64.Vec3
	Normal   mgl64.Vec3 // unit, pointing from the surface toward the capsule
}

// World is the shared static collision world. Single writer during level
// assembly, sealed before the first tick; queries afterwards are pure reads
// so concurrent controllers need no locking.
type World struct {
	boxes  []Box
	bounds []AABB
	sealed bool
}

func NewWorld() *World {
	return &World{}
}

// Add registers a collider and returns its id. Adding to a sealed world is
// a programming error.
func (w *World) Add(b Box) ID {
	if w.sealed {
		panic("collision: Add after Seal")
	}
	w.boxes = append(w.boxes, b)
	w.bounds = append(w.bounds, b.Bounds())
	return ID(len(w.boxes) - 1)
}

// Seal marks the end of assembly. The world is read-only from here on.
func (w *World) Seal() {
	w.sealed = true
}

func (w *World) Sealed() bool { return w.sealed }

func (w *World) Len() int { return len(w.boxes) }

// Box returns a copy of the collider with the given id.
func (w *World) Box(id ID) Box { return w.boxes[id] }

const (
	// hitThreshold is the separation at which a sweep reports contact.
	// Deliberately tighter than the controller's skin epsilon so a body
	// resting one skin above a surface can still slide parallel to it.
	hitThreshold = 1e-4

	// tieDistance is the window within which two contacts count as
	// simultaneous and the more walkable normal wins.
	tieDistance = 1e-2

	advanceIters = 32
)

// Sweep casts the capsule from `from` to `to` and returns the first
// contact, if any. Colliders already penetrated at the start of the sweep
// are ignored (the controller resolves those by staying put), and contacts
// with no derivable normal are treated as no contact rather than feeding
// NaNs into position state.
func (w *World) Sweep(c Capsule, from, to mgl64.Vec3) (Hit, bool) {
	delta := to.Sub(from)
	length := delta.Len()
	if length < 1e-12 || !isFiniteVec(delta) {
		return Hit{}, false
	}

	sweepBounds := c.Bounds(from).Union(c.Bounds(to)).Inflate(hitThreshold * 2)

	var best Hit
	found := false
	for i := range w.boxes {
		if !sweepBounds.Intersects(w.bounds[i]) {
			continue
		}
		hit, ok := w.sweepBox(c, from, delta, length, ID(i))
		if !ok {
			continue
		}
		switch {
		case !found:
			best, found = hit, true
		case hit.Distance < best.Distance-tieDistance:
			best = hit
		case hit.Distance <= best.Distance+tieDistance:
			// Simultaneous contacts: favor the surface whose normal is
			// closest to vertical.
			if hit.Normal.Y() > best.Normal.Y() {
				best = hit
			}
		}
	}
	return best, found
}

// sweepBox advances the capsule along delta by conservative advancement:
// each step moves by the current separation projected on the closing
// direction, which can never tunnel past the surface of a convex shape.
func (w *World) sweepBox(c Capsule, from, delta mgl64.Vec3, length float64, id ID) (Hit, bool) {
	box := &w.boxes[id]
	t := 0.0
	for i := 0; i < advanceIters; i++ {
		ct := capsuleBoxContact(c, from.Add(delta.Mul(t)), box)
		if !isFinite(ct.dist) || !isFinite(t) {
			return Hit{}, false
		}
		if i == 0 && ct.dist < 0 {
			// Already penetrating at the origin; not a sweep contact.
			return Hit{}, false
		}
		if ct.dist <= hitThreshold {
			// A zero-length normal means the closest features collapsed;
			// treat as no contact rather than propagate garbage.
			if !isFiniteVec(ct.normal) || ct.normal.Len() < 0.5 {
				return Hit{}, false
			}
			return Hit{
				Collider: id,
				Fraction: t,
				Distance: t * length,
				Point:    ct.point,
				Normal:   ct.normal,
			}, true
		}
		closing := delta.Dot(ct.normal) * -1
		if closing <= 1e-12 {
			// Moving parallel to or away from the closest feature.
			return Hit{}, false
		}
		t += ct.dist / closing
		if t > 1 {
			return Hit{}, false
		}
	}
	return Hit{}, false
}

// Overlaps reports whether the capsule at `at` penetrates any collider.
func (w *World) Overlaps(c Capsule, at mgl64.Vec3) bool {
	bounds := c.Bounds(at)
	for i := range w.boxes {
		if !bounds.Intersects(w.bounds[i]) {
			continue
		}
		if capsuleBoxContact(c, at, &w.boxes[i]).dist < 0 {
			return true
		}
	}
	return false
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func isFiniteVec(v mgl64.Vec3) bool {
	return isFinite(v.X()) && isFinite(v.Y()) && isFinite(v.Z())
}
