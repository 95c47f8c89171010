// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// Box2 is an axis-aligned 2D bounding box.
type Box2 struct {
	Min, Max Vector2
}

// B2 returns a new Box2 from the given coordinates, normalizing min/max.
func B2(x0, y0, x1, y1 float64) Box2 {
	b := Box2{Vector2{x0, y0}, Vector2{x1, y1}}
	return b.Canon()
}

// BoxEmpty returns a box with no extent, suitable as a fold starting point
// for ExpandByPoint.
func BoxEmpty() Box2 {
	return Box2{
		Min: Vector2{math.Inf(1), math.Inf(1)},
		Max: Vector2{math.Inf(-1), math.Inf(-1)},
	}
}

// Canon returns b with Min and Max swapped per-axis as needed so that
// Min <= Max on both axes.
func (b Box2) Canon() Box2 {
	if b.Min.X > b.Max.X {
		b.Min.X, b.Max.X = b.Max.X, b.Min.X
	}
	if b.Min.Y > b.Max.Y {
		b.Min.Y, b.Max.Y = b.Max.Y, b.Min.Y
	}
	return b
}

// Size returns the width and height of b as a Vector2.
func (b Box2) Size() Vector2 { return b.Max.Sub(b.Min) }

// Center returns the center point of b.
func (b Box2) Center() Vector2 { return b.Min.Lerp(b.Max, 0.5) }

// Area returns the area of b (zero for a degenerate box).
func (b Box2) Area() float64 {
	s := b.Size()
	if s.X < 0 || s.Y < 0 {
		return 0
	}
	return s.X * s.Y
}

// ExpandByPoint returns b grown, if necessary, to contain pt.
func (b Box2) ExpandByPoint(pt Vector2) Box2 {
	return Box2{
		Min: Vector2{math.Min(b.Min.X, pt.X), math.Min(b.Min.Y, pt.Y)},
		Max: Vector2{math.Max(b.Max.X, pt.X), math.Max(b.Max.Y, pt.Y)},
	}
}

// Union returns the smallest box containing both b and o.
func (b Box2) Union(o Box2) Box2 {
	return b.ExpandByPoint(o.Min).ExpandByPoint(o.Max)
}

// ContainsPoint reports whether pt lies within b, inclusive of the boundary.
func (b Box2) ContainsPoint(pt Vector2) bool {
	return b.Min.X <= pt.X && pt.X <= b.Max.X && b.Min.Y <= pt.Y && pt.Y <= b.Max.Y
}

// Overlaps reports whether b and o share any area, inclusive of touching edges.
func (b Box2) Overlaps(o Box2) bool {
	return b.Min.X <= o.Max.X && o.Min.X <= b.Max.X && b.Min.Y <= o.Max.Y && o.Min.Y <= b.Max.Y
}

// Expand returns b grown by d on every side.
func (b Box2) Expand(d float64) Box2 {
	return Box2{
		Min: Vector2{b.Min.X - d, b.Min.Y - d},
		Max: Vector2{b.Max.X + d, b.Max.Y + d},
	}
}
