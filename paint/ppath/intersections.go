// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"github.com/cogentcore/pathbool/geom"
	"github.com/cogentcore/pathbool/paint/ppath/intersect"
)

// getIntersections returns all CurveLocation pairs between the curves
// of paths a and b (or the self-intersections of a's own curves, when
// b is nil), each pair already mutually linked via Other. Both entries
// of every pair are included, pre-expanded, so the result can be
// divided directly by divideLocations.
func getIntersections(a, b []*Path) []*CurveLocation {
	var out []*CurveLocation
	curvesA := allCurves(a)
	if b != nil {
		curvesB := allCurves(b)
		for _, ca := range curvesA {
			for _, cb := range curvesB {
				out = append(out, intersectPair(ca, cb)...)
			}
		}
		return out
	}
	for i := 0; i < len(curvesA); i++ {
		for j := i + 1; j < len(curvesA); j++ {
			ca, cb := curvesA[i], curvesA[j]
			if adjacent(ca, cb) {
				continue
			}
			out = append(out, intersectPair(ca, cb)...)
		}
	}
	return out
}

// adjacent reports whether two curves of the same path share an
// endpoint segment, in which case their trivial shared-point
// "intersection" is not a real self-intersection.
func adjacent(a, b Curve) bool {
	return a.Seg1 == b.Seg2 || a.Seg2 == b.Seg1 || a.Seg1 == b.Seg1 || a.Seg2 == b.Seg2
}

func allCurves(paths []*Path) []Curve {
	var out []Curve
	for _, p := range paths {
		out = append(out, p.Curves()...)
	}
	return out
}

// intersectPair runs the low-level curve-curve search and turns each
// result into a mutually-linked CurveLocation pair. An overlap produces
// two pairs, one for the run's start and one for its end, so the
// divider can split both curves there and leave the coincident
// sub-curve between them intact.
func intersectPair(ca, cb Curve) []*CurveLocation {
	pairs := intersect.Curves(intersect.Values(ca.Values()), intersect.Values(cb.Values()), GeometricEpsilon)
	var out []*CurveLocation
	newPair := func(ta, tb float64, pt geom.Vector2, overlap bool) {
		locA := &CurveLocation{Curve: ca, Time: ta, Point: pt, Overlap: overlap}
		locB := &CurveLocation{Curve: cb, Time: tb, Point: pt, Overlap: overlap}
		locA.Other = locB
		locB.Other = locA
		out = append(out, locA, locB)
	}
	for _, pr := range pairs {
		if pr.Overlap {
			newPair(pr.TA, pr.TB, pr.Point, true)
			newPair(pr.TA2, pr.TB2, ca.PointAtTime(pr.TA2), true)
			continue
		}
		newPair(pr.TA, pr.TB, pr.Point, false)
	}
	return out
}
