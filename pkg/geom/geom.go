// Package geom holds the overlap predicates used by movement and combat.
// Everything here is pure: no function mutates its arguments.
package geom

import "math"

// Vec2 is a point or a direction in world units.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Normalize returns v scaled to unit length, or the zero vector for a zero input.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Angle returns the direction of v in radians.
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// FromAngle returns the unit vector pointing at angle (radians).
func FromAngle(angle float64) Vec2 {
	return Vec2{math.Cos(angle), math.Sin(angle)}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec2) float64 { return b.Sub(a).Len() }

// OverlapsAABB reports whether two axis-aligned boxes, given by center and
// full size, intersect. Touching edges do not count.
func OverlapsAABB(centerA, sizeA, centerB, sizeB Vec2) bool {
	aMin, aMax := centerA.Sub(sizeA.Scale(0.5)), centerA.Add(sizeA.Scale(0.5))
	bMin, bMax := centerB.Sub(sizeB.Scale(0.5)), centerB.Add(sizeB.Scale(0.5))
	return aMin.X < bMax.X && aMax.X > bMin.X &&
		aMin.Y < bMax.Y && aMax.Y > bMin.Y
}

// PointInAABB reports whether p lies strictly inside the box.
func PointInAABB(p, center, size Vec2) bool {
	lo, hi := center.Sub(size.Scale(0.5)), center.Add(size.Scale(0.5))
	return p.X > lo.X && p.X < hi.X && p.Y > lo.Y && p.Y < hi.Y
}

// WithinRadius reports whether a and b are closer than radius.
func WithinRadius(a, b Vec2, radius float64) bool {
	return Distance(a, b) < radius
}
