// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"math"

	"github.com/cogentcore/pathbool/geom"
)

// crossingState is a cached tri-state result of CurveLocation.IsCrossing.
type crossingState int

const (
	crossingUnknown crossingState = iota
	crossingYes
	crossingNo
)

// CurveLocation is a location on a curve of one of the two operands of
// a boolean operation: a parameter t together with the segment it has
// been resolved to. Two CurveLocations that mark the same point on two
// different curves are mutually linked via Other. Locations that
// coincide on the same segment (e.g. three curves crossing at one
// point) are chained through next/previous, forming the fan-out
// divideLocations builds.
type CurveLocation struct {
	Curve    Curve
	Time     float64
	Point    geom.Vector2
	Segment  *Segment
	Distance float64
	Overlap  bool

	Other *CurveLocation

	crossing crossingState

	next, previous *CurveLocation
}

// IsOverlap reports whether loc marks a positive-length coincident run
// rather than a point crossing.
func (loc *CurveLocation) IsOverlap() bool { return loc.Overlap }

// IsCrossing classifies loc as a true crossing (the curves exchange
// sides) as opposed to a tangency, using the four tangents at the
// intersection point: loc's incoming/outgoing pair of angles must
// separate loc.Other's incoming/outgoing pair in angular order around
// the shared point. Tangents are sampled at CurveTimeEpsilon /
// 1-CurveTimeEpsilon rather than the exact endpoints, since an exact
// endpoint tangent can vanish when a handle is zero.
func (loc *CurveLocation) IsCrossing() bool {
	if loc.Overlap {
		return false
	}
	if loc.crossing != crossingUnknown {
		return loc.crossing == crossingYes
	}
	other := loc.Other
	if other == nil {
		loc.crossing = crossingNo
		return false
	}
	a1 := tangentAngleAt(loc.Curve, loc.Time, -1)
	a2 := tangentAngleAt(loc.Curve, loc.Time, 1)
	b1 := tangentAngleAt(other.Curve, other.Time, -1)
	b2 := tangentAngleAt(other.Curve, other.Time, 1)
	cross := anglesSeparate(a1, a2, b1, b2)
	if cross {
		loc.crossing = crossingYes
	} else {
		loc.crossing = crossingNo
	}
	return cross
}

// tangentAngleAt returns the angle of the tangent of c at t, looking
// backward (dir<0) or forward (dir>0) from t by CurveTimeEpsilon, so a
// zero handle at an exact endpoint does not produce an undefined angle.
func tangentAngleAt(c Curve, t float64, dir float64) float64 {
	tt := t + dir*curveTimeEpsilon
	if tt < curveTimeEpsilon {
		tt = curveTimeEpsilon
	}
	if tt > 1-curveTimeEpsilon {
		tt = 1 - curveTimeEpsilon
	}
	tan := c.TangentAtTime(tt)
	if dir < 0 {
		tan = tan.Negate()
	}
	return math.Atan2(tan.Y, tan.X)
}

// anglesSeparate reports whether the pair (a1,a2) separates the pair
// (b1,b2) in angular order around a point: each pair of angles lies in
// exactly one of the two arcs defined by the other pair. This is the
// standard test for a true crossing vs. a tangential touch.
func anglesSeparate(a1, a2, b1, b2 float64) bool {
	// ccw is the counter-clockwise sweep from a1 to x, in [0, 2π).
	ccw := func(x float64) float64 {
		return math.Mod(x-a1+4*math.Pi, 2*math.Pi)
	}
	inArc := func(x float64) bool { return ccw(x) < ccw(a2) }
	return inArc(b1) != inArc(b2)
}

// Expand returns loc together with its partner loc.Other, so a flat
// list of intersection pairs can be sorted once by (curve, time) and
// contain independently-sortable entries for both sides.
func (loc *CurveLocation) Expand() []*CurveLocation {
	return []*CurveLocation{loc, loc.Other}
}

// linkIntersections splices the chains headed by from and to so that
// to becomes reachable by walking next from from, unless it already is
// (including the degenerate from==to case).
func linkIntersections(from, to *CurveLocation) {
	if from == to {
		return
	}
	for l := from; l != nil; l = l.next {
		if l == to {
			return
		}
	}
	end := from
	for end.next != nil {
		end = end.next
	}
	start := to
	for start.previous != nil {
		start = start.previous
	}
	if end == start {
		return
	}
	end.next = start
	start.previous = end
}
