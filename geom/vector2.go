// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides the double-precision 2D point, vector, and
// bounding-box primitives the path boolean engine is built on.
//
// It mirrors the construction/accessor idiom of the wider cogentcore
// math32 package (Vec2, Dim/SetDim, B2) at float64 instead of float32:
// curve-curve intersection and winding classification need IEEE-754
// double precision to stay numerically stable (see package ppath's
// CurveTimeEpsilon and WindingEpsilon), which float32 cannot provide.
package geom

import "math"

// Dim is an X or Y axis selector, for generic per-dimension access.
type Dim int32

const (
	X Dim = iota
	Y
)

// Vector2 is a 2D point or vector of float64 components.
type Vector2 struct {
	X, Y float64
}

// Vec2 returns a new Vector2 with the given x, y components.
func Vec2(x, y float64) Vector2 { return Vector2{x, y} }

// Vector2Scalar returns a new Vector2 with both components set to s.
func Vector2Scalar(s float64) Vector2 { return Vector2{s, s} }

// Dim returns the value on the given dimension.
func (v Vector2) Dim(d Dim) float64 {
	if d == X {
		return v.X
	}
	return v.Y
}

// SetDim sets the value on the given dimension.
func (v *Vector2) SetDim(d Dim, val float64) {
	if d == X {
		v.X = val
	} else {
		v.Y = val
	}
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 { return Vector2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 { return Vector2{v.X - o.X, v.Y - o.Y} }

// MulScalar returns v * s.
func (v Vector2) MulScalar(s float64) Vector2 { return Vector2{v.X * s, v.Y * s} }

// DivScalar returns v / s.
func (v Vector2) DivScalar(s float64) Vector2 { return Vector2{v.X / s, v.Y / s} }

// Negate returns -v.
func (v Vector2) Negate() Vector2 { return Vector2{-v.X, -v.Y} }

// Dot returns the dot product of v and o.
func (v Vector2) Dot(o Vector2) float64 { return v.X*o.X + v.Y*o.Y }

// Cross returns the z-component of the 3D cross product of v and o,
// i.e. the signed area of the parallelogram they span.
func (v Vector2) Cross(o Vector2) float64 { return v.X*o.Y - v.Y*o.X }

// Length returns the Euclidean length of v.
func (v Vector2) Length() float64 { return math.Hypot(v.X, v.Y) }

// LengthSquared returns the squared Euclidean length of v, avoiding a sqrt.
func (v Vector2) LengthSquared() float64 { return v.X*v.X + v.Y*v.Y }

// Normal returns v rotated 90 degrees counter-clockwise (in a y-down
// screen convention this points to the "right" of the direction of travel).
func (v Vector2) Normal() Vector2 { return Vector2{-v.Y, v.X} }

// Normalize returns v scaled to unit length; the zero vector is returned
// unchanged.
func (v Vector2) Normalize() Vector2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.DivScalar(l)
}

// Angle returns the angle of v from the positive X axis, in radians, in (-π, π].
func (v Vector2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// Lerp returns the linear interpolation between v and o at parameter t.
func (v Vector2) Lerp(o Vector2, t float64) Vector2 {
	return Vector2{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// DistanceTo returns the Euclidean distance between v and o.
func (v Vector2) DistanceTo(o Vector2) float64 { return v.Sub(o).Length() }

// IsClose reports whether v and o are within tol of each other on both axes.
func (v Vector2) IsClose(o Vector2, tol float64) bool {
	return math.Abs(v.X-o.X) <= tol && math.Abs(v.Y-o.Y) <= tol
}

// AngleBetween returns the unsigned angle between v and o, in [0, π].
func AngleBetween(v, o Vector2) float64 {
	d := v.Normalize().Dot(o.Normalize())
	if d > 1 {
		d = 1
	} else if d < -1 {
		d = -1
	}
	return math.Acos(d)
}
