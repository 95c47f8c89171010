// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import "github.com/cogentcore/pathbool/geom"

// MonoCurve is one piece of a curve decomposed to be monotone in a
// chosen ordinate. Pieces from the same source path are linked into a
// circular list via previous/next so ray-casting can tell when it has
// crossed a path boundary.
type MonoCurve struct {
	Values  [4]geom.Vector2
	Winding int // +1 increasing, -1 decreasing, 0 horizontal/flat
	Path    *Path

	previous, next *MonoCurve
}

// monotoneSplit decomposes a single curve into 1-3 pieces monotone in
// the given ordinate (axis). Straight curves are returned unsplit: a
// line has no interior extremum to split at.
func monotoneSplit(c Curve, axis geom.Dim) [][4]geom.Vector2 {
	v := c.Values()
	if c.IsStraight() {
		return [][4]geom.Vector2{v}
	}
	y0, y1, y2, y3 := v[0].Dim(axis), v[1].Dim(axis), v[2].Dim(axis), v[3].Dim(axis)
	a := 3*(y1-y2) - y0 + y3
	b := 2 * (y0 + y2 - 2*y1)
	cc := y1 - y0
	var roots [2]float64
	n := SolveQuadratic(a, b, cc, &roots, curveTimeEpsilon, 1-curveTimeEpsilon)
	if n == 0 {
		return [][4]geom.Vector2{v}
	}
	if n == 2 && roots[0] > roots[1] {
		roots[0], roots[1] = roots[1], roots[0]
	}
	pieces := make([][4]geom.Vector2, 0, n+1)
	rest := v
	prevT := 0.0
	for i := 0; i < n; i++ {
		// rescale root onto the remaining [prevT,1] sub-curve
		t := (roots[i] - prevT) / (1 - prevT)
		left, right := subdivide(rest, t)
		pieces = append(pieces, left)
		rest = right
		prevT = roots[i]
	}
	pieces = append(pieces, rest)
	return pieces
}

// windingSign returns +1/-1/0 for whether values increases, decreases,
// or stays flat in axis from start to end.
func windingSign(v [4]geom.Vector2, axis geom.Dim) int {
	y0, y3 := v[0].Dim(axis), v[3].Dim(axis)
	switch {
	case y0 < y3:
		return 1
	case y0 > y3:
		return -1
	default:
		return 0
	}
}

// monotoneCurves decomposes every curve of p into monotone-in-axis
// pieces and links them into a single circular list per path.
func monotoneCurves(p *Path, axis geom.Dim) []*MonoCurve {
	var out []*MonoCurve
	for _, c := range p.Curves() {
		for _, v := range monotoneSplit(c, axis) {
			out = append(out, &MonoCurve{Values: v, Winding: windingSign(v, axis), Path: p})
		}
	}
	n := len(out)
	for i, mc := range out {
		mc.next = out[(i+1)%n]
		mc.previous = out[(i-1+n)%n]
	}
	return out
}

// globalMonotoneCurves decomposes every path into Y-monotone pieces
// and concatenates them, preserving each path's own circular linkage so
// path-boundary detection during ray casting still works.
func globalMonotoneCurves(paths []*Path) []*MonoCurve {
	var out []*MonoCurve
	for _, p := range paths {
		out = append(out, monotoneCurves(p, geom.Y)...)
	}
	return out
}
