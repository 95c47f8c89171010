// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"log/slog"

	"github.com/cogentcore/pathbool/geom"
)

// Tunable tolerances. The three roles are kept as distinct constants
// rather than collapsed into one: CurveTimeEpsilon guards
// parameter-space proximity, GeometricEpsilon guards geometric
// proximity in user units, and WindingEpsilon sizes the ray-cast
// abscissa band.
const (
	CurveTimeEpsilon = 1e-8
	GeometricEpsilon = 1e-7
	WindingEpsilon   = 1e-9
)

// curveTimeEpsilon is an unexported alias used by the files that
// predate CurveTimeEpsilon's introduction into this file.
const curveTimeEpsilon = CurveTimeEpsilon

// Operator selects which winding numbers survive tracing.
type Operator int

const (
	OpUnite Operator = iota
	OpIntersect
	OpSubtract
	OpExclude
	// opResolve is used internally by ResolveCrossings: it behaves like
	// unite's winding rule but operates on a single self-intersected
	// path rather than two operands.
	opResolve
)

// includes reports whether a segment with the given (post-mod-2)
// winding survives for op; for unite and resolve, a segment with
// winding 2 also survives when contour is set.
func (op Operator) includes(winding int, contour bool) bool {
	switch op {
	case OpUnite, opResolve:
		return winding == 1 || (winding == 2 && contour)
	case OpIntersect:
		return winding == 2
	case OpSubtract:
		return winding == 1
	case OpExclude:
		return winding == 1
	}
	return false
}

// alwaysSwitch reports whether op must switch branches at every
// crossing regardless of validity, as exclude does.
func (op Operator) alwaysSwitch() bool { return op == OpExclude }

// preparePath returns a freely mutable clone of item's constituent
// paths, baking in no transform (this package operates purely in the
// coordinate space its caller already placed the paths in). Input
// paths are never mutated; everything derived from the clone is
// discarded once the operation returns.
func preparePath(item PathItem) []*Path {
	var out []*Path
	for _, p := range item.paths() {
		out = append(out, p.Clone())
	}
	return out
}

// boolOp runs the full pipeline for a two-operand operation: divide at
// intersections, propagate winding, trace, and reorient.
func boolOp(op Operator, a, b PathItem) PathItem {
	pathsA := preparePath(a)
	var pathsB []*Path
	if b != nil {
		pathsB = preparePath(b)
	}
	all := append(append([]*Path{}, pathsA...), pathsB...)

	locs := getIntersections(pathsA, pathsB)
	divideLocations(locs)

	propagateWinding(all, pathsA, pathsB, op)

	result := tracePaths(all, op)
	reorient(result)
	return simplifyResult(result)
}

// Unite returns the union of a and b.
func Unite(a, b PathItem) PathItem { return boolOp(OpUnite, a, b) }

// Intersect returns the region common to both a and b.
func Intersect(a, b PathItem) PathItem { return boolOp(OpIntersect, a, b) }

// Subtract returns a with b's region removed.
func Subtract(a, b PathItem) PathItem { return boolOp(OpSubtract, a, b) }

// ExclusiveOr returns the symmetric difference of a and b.
func ExclusiveOr(a, b PathItem) PathItem { return boolOp(OpExclude, a, b) }

// Divide returns the compound of Subtract(a,b) and Intersect(a,b),
// splitting a and b into the pieces each operand contributes along
// their shared boundary.
func Divide(a, b PathItem) PathItem {
	diff := AsCompound(Subtract(a, b))
	inter := AsCompound(Intersect(a, b))
	return simplifyResult(&CompoundPath{
		Children: append(append([]*Path{}, diff.Children...), inter.Children...),
		Fill:     NonZero,
	})
}

// ResolveCrossings rewrites a's self-intersections into a clean,
// non-self-intersecting region. Applying it twice leaves the result
// unchanged.
func ResolveCrossings(a PathItem) PathItem {
	pathsA := preparePath(a)

	locs := getIntersections(pathsA, nil)
	divideLocations(locs)

	propagateWinding(pathsA, pathsA, nil, opResolve)

	result := tracePaths(pathsA, opResolve)
	reorient(result)
	return simplifyResult(result)
}

// GetCrossings returns the true crossings (tangencies excluded) among
// a's own curves, without mutating a.
func GetCrossings(a PathItem) []*CurveLocation {
	pathsA := preparePath(a)
	locs := getIntersections(pathsA, nil)
	var out []*CurveLocation
	seen := make(map[*CurveLocation]bool)
	for _, l := range locs {
		if seen[l] || seen[l.Other] {
			continue
		}
		seen[l] = true
		if l.IsCrossing() {
			out = append(out, l)
		}
	}
	return out
}

// Winding returns p's winding number at pt with respect to itself,
// for containment queries outside this engine.
func (p *Path) Winding(pt geom.Vector2, horizontal bool) int {
	w, _ := getWinding(pt, globalMonotoneCurves([]*Path{p}), horizontal)
	return w
}

// Winding returns cp's winding number at pt, mapped to 0 (outside),
// 1 (odd winding) or 2 (non-zero even winding); cp's fill rule is not
// applied, so callers applying EvenOdd should test oddness of the
// result themselves.
func (cp *CompoundPath) Winding(pt geom.Vector2, horizontal bool) int {
	w, _ := getWinding(pt, globalMonotoneCurves(cp.Children), horizontal)
	return w
}

func logOpenResult(area float64) {
	if area >= GeometricEpsilon {
		slog.Error("boolean operation produced an open path with non-negligible area", "area", area)
	}
}
