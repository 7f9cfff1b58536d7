// Package catsim implements the cat behavior simulation: a finite-state
// controller for a wandering/hiding/fleeing cat agent plus the geometric
// primitives it depends on. It contains no external dependencies
// (especially no Bubble Tea) to keep the simulation pure and testable.
package catsim

import "math"

// Vec is a 2D point or vector in play-area coordinates (float64 cells).
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{v.X * s, v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// LenSq returns the squared length of v.
func (v Vec) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Dot returns the dot product of v and o.
func (v Vec) Dot(o Vec) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Norm returns v scaled to unit length. The zero vector is returned unchanged.
func (v Vec) Norm() Vec {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec{v.X / l, v.Y / l}
}

// Rect is an axis-aligned rectangle with float64 coordinates.
// Unlike core.Rect (integer screen cells) this is used for the continuous
// simulation space where the cat moves at sub-cell precision.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec {
	return Vec{r.X + r.W/2, r.Y + r.H/2}
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Intersects reports whether r overlaps o.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Inflate returns r grown by m on every side.
func (r Rect) Inflate(m float64) Rect {
	return Rect{r.X - m, r.Y - m, r.W + 2*m, r.H + 2*m}
}

// ClampPoint returns p clamped into the rectangle.
func (r Rect) ClampPoint(p Vec) Vec {
	return Vec{
		X: clampF(p.X, r.X, r.Right()),
		Y: clampF(p.Y, r.Y, r.Bottom()),
	}
}

// NearestPoint returns the point inside r closest to p. For p inside r this
// is p itself.
func (r Rect) NearestPoint(p Vec) Vec {
	return r.ClampPoint(p)
}

// separationEpsilon keeps a resolved circle just clear of the rectangle so
// floating point residue cannot re-trigger the same collision next frame.
const separationEpsilon = 0.01

// CircleRectOverlap reports whether the circle at c with the given radius
// overlaps rect. Touching at exactly radius distance counts as overlap.
func CircleRectOverlap(c Vec, radius float64, rect Rect) bool {
	d := c.Sub(rect.NearestPoint(c))
	return d.LenSq() <= radius*radius
}

// ResolveCircleRect pushes a penetrating circle out of rect along the
// outward normal from the rectangle's nearest point, and reflects the
// velocity about that normal. When the center coincides exactly with the
// nearest point (center inside the rect or on its boundary) the normal
// defaults to "up". Non-penetrating inputs are returned unchanged with
// resolved=false.
func ResolveCircleRect(c Vec, radius float64, rect Rect, vel Vec) (pos, v Vec, resolved bool) {
	nearest := rect.NearestPoint(c)
	offset := c.Sub(nearest)
	dist := offset.Len()

	if dist >= radius {
		return c, vel, false
	}

	var normal Vec
	if dist == 0 {
		normal = Vec{0, -1}
	} else {
		normal = offset.Scale(1 / dist)
	}

	depth := radius - dist
	pos = c.Add(normal.Scale(depth + separationEpsilon))

	// v' = v - 2(v.n)n
	v = vel.Sub(normal.Scale(2 * vel.Dot(normal)))
	return pos, v, true
}

func clampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
