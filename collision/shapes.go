// Package collision holds the static query backend the character controller
// moves against: an immutable arena of oriented boxes supporting capsule
// sweep and overlap queries.
package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Capsule is a vertical-axis capsule. HalfHeight is half the length of the
// inner segment between the hemisphere centers; total height is
// 2*HalfHeight + 2*Radius. Positions passed to queries are the segment
// midpoint.
type Capsule struct {
	Radius     float64
	HalfHeight float64
}

// Box is an oriented box collider: half extents in its own frame plus a
// world transform. All level geometry reduces to boxes.
type Box struct {
	HalfExtents mgl64.Vec3
	Position    mgl64.Vec3
	Rotation    mgl64.Quat
}

// AABB is an axis-aligned bounds pair, used for the broad phase.
type AABB struct {
	Min, Max mgl64.Vec3
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X() <= b.Max.X() && a.Max.X() >= b.Min.X() &&
		a.Min.Y() <= b.Max.Y() && a.Max.Y() >= b.Min.Y() &&
		a.Min.Z() <= b.Max.Z() && a.Max.Z() >= b.Min.Z()
}

// Union returns the smallest AABB containing both inputs.
func (a AABB) Union(b AABB) AABB {
	return AABB{
		Min: mgl64.Vec3{
			math.Min(a.Min.X(), b.Min.X()),
			math.Min(a.Min.Y(), b.Min.Y()),
			math.Min(a.Min.Z(), b.Min.Z()),
		},
		Max: mgl64.Vec3{
			math.Max(a.Max.X(), b.Max.X()),
			math.Max(a.Max.Y(), b.Max.Y()),
			math.Max(a.Max.Z(), b.Max.Z()),
		},
	}
}

// Inflate grows the bounds by m on every side.
func (a AABB) Inflate(m float64) AABB {
	d := mgl64.Vec3{m, m, m}
	return AABB{Min: a.Min.Sub(d), Max: a.Max.Add(d)}
}

// Bounds returns the capsule's world AABB at position p.
func (c Capsule) Bounds(p mgl64.Vec3) AABB {
	ext := mgl64.Vec3{c.Radius, c.HalfHeight + c.Radius, c.Radius}
	return AABB{Min: p.Sub(ext), Max: p.Add(ext)}
}

// Bounds returns the box's world AABB, conservative for any rotation.
func (b Box) Bounds() AABB {
	ax := b.Rotation.Rotate(mgl64.Vec3{1, 0, 0})
	ay := b.Rotation.Rotate(mgl64.Vec3{0, 1, 0})
	az := b.Rotation.Rotate(mgl64.Vec3{0, 0, 1})
	ext := absVec(ax.Mul(b.HalfExtents.X())).
		Add(absVec(ay.Mul(b.HalfExtents.Y()))).
		Add(absVec(az.Mul(b.HalfExtents.Z())))
	return AABB{Min: b.Position.Sub(ext), Max: b.Position.Add(ext)}
}

func absVec(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Abs(v.X()), math.Abs(v.Y()), math.Abs(v.Z())}
}

// contact describes the separation between a capsule and a box.
type contact struct {
	dist   float64    // surface-to-surface distance, negative when penetrating
	normal mgl64.Vec3 // unit, from box surface toward capsule; zero when degenerate
	point  mgl64.Vec3 // closest point on the box, world frame
}

// contactSearchIters bounds the ternary search for the closest segment
// parameter. The distance-to-box function is convex along the segment, so
// the interval shrinks by 1/3 per iteration.
const contactSearchIters = 64

// capsuleBoxContact computes the closest contact between the capsule at
// midpoint `at` and the box. When the capsule axis passes through the box
// interior the normal cannot be derived from closest features; the contact
// is reported with a zero normal and the callers treat it as degenerate.
func capsuleBoxContact(c Capsule, at mgl64.Vec3, b *Box) contact {
	// The capsule axis is vertical in world space, so the whole segment is
	// transformed into the box frame, not offset afterwards.
	inv := b.Rotation.Conjugate()
	center := inv.Rotate(at.Sub(b.Position))
	up := inv.Rotate(mgl64.Vec3{0, c.HalfHeight, 0})
	la := center.Sub(up)
	lb := center.Add(up)

	s := closestSegmentParam(la, lb, b.HalfExtents)
	onAxis := la.Add(lb.Sub(la).Mul(s))
	onBox := clampToBox(onAxis, b.HalfExtents)
	delta := onAxis.Sub(onBox)
	segDist := delta.Len()

	ct := contact{
		dist:  segDist - c.Radius,
		point: b.Rotation.Rotate(onBox).Add(b.Position),
	}
	if segDist > 1e-12 {
		ct.normal = b.Rotation.Rotate(delta.Mul(1 / segDist))
	} else {
		// Axis inside the box: deeply penetrating, no defined normal.
		ct.dist = -c.Radius
	}
	return ct
}

// closestSegmentParam minimizes the point-to-box distance over the segment
// la..lb (box frame) by ternary search; the objective is convex in s.
func closestSegmentParam(la, lb, half mgl64.Vec3) float64 {
	lo, hi := 0.0, 1.0
	d := lb.Sub(la)
	for i := 0; i < contactSearchIters; i++ {
		m1 := lo + (hi-lo)/3
		m2 := hi - (hi-lo)/3
		if pointBoxDistSq(la.Add(d.Mul(m1)), half) <= pointBoxDistSq(la.Add(d.Mul(m2)), half) {
			hi = m2
		} else {
			lo = m1
		}
	}
	return (lo + hi) / 2
}

func clampToBox(p, half mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		mgl64.Clamp(p.X(), -half.X(), half.X()),
		mgl64.Clamp(p.Y(), -half.Y(), half.Y()),
		mgl64.Clamp(p.Z(), -half.Z(), half.Z()),
	}
}

func pointBoxDistSq(p, half mgl64.Vec3) float64 {
	d := p.Sub(clampToBox(p, half))
	return d.Dot(d)
}
