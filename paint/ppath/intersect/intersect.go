// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package intersect provides low-level cubic Bézier curve-curve
// intersection: crossing points and coincident (overlapping) runs,
// found by recursive bounding-box subdivision rather than an algebraic
// resultant, so it degrades gracefully on near-tangent and
// near-parallel inputs. It keeps its own small bezier evaluate/split
// helpers independent of package ppath's Curve, so this low-level math
// has no dependency on the path-level package that consumes it.
package intersect

import (
	"math"
	"sort"

	"github.com/cogentcore/pathbool/geom"
)

// Values is the 4 control points of a cubic Bézier.
type Values [4]geom.Vector2

// Pair is one intersection between curve A and curve B: TA, TB are the
// parameters on each, Point is the (averaged) location, and Overlap
// marks a coincident run rather than a point crossing (in which case
// TA/TB mark the start of the run and TA2/TB2 its end).
type Pair struct {
	TA, TB   float64
	TA2, TB2 float64
	Point    geom.Vector2
	Overlap  bool
}

const (
	maxDepth    = 32
	fatLineTol  = 1e-9
	sameLineTol = 1e-7
)

func bounds(v Values) geom.Box2 {
	b := geom.BoxEmpty()
	for _, p := range v {
		b = b.ExpandByPoint(p)
	}
	return b
}

func evaluate(v Values, t float64) geom.Vector2 {
	u := 1 - t
	p01 := v[0].MulScalar(u).Add(v[1].MulScalar(t))
	p12 := v[1].MulScalar(u).Add(v[2].MulScalar(t))
	p23 := v[2].MulScalar(u).Add(v[3].MulScalar(t))
	p012 := p01.MulScalar(u).Add(p12.MulScalar(t))
	p123 := p12.MulScalar(u).Add(p23.MulScalar(t))
	return p012.MulScalar(u).Add(p123.MulScalar(t))
}

func split(v Values, t float64) (left, right Values) {
	u := 1 - t
	p01 := v[0].MulScalar(u).Add(v[1].MulScalar(t))
	p12 := v[1].MulScalar(u).Add(v[2].MulScalar(t))
	p23 := v[2].MulScalar(u).Add(v[3].MulScalar(t))
	p012 := p01.MulScalar(u).Add(p12.MulScalar(t))
	p123 := p12.MulScalar(u).Add(p23.MulScalar(t))
	p0123 := p012.MulScalar(u).Add(p123.MulScalar(t))
	left = Values{v[0], p01, p012, p0123}
	right = Values{p0123, p123, p23, v[3]}
	return
}

func isLinear(v Values, tol float64) bool {
	// distance of control points 1,2 from the chord 0-3
	chord := v[3].Sub(v[0])
	len2 := chord.LengthSquared()
	if len2 < 1e-20 {
		return v[1].Sub(v[0]).Length() < tol && v[2].Sub(v[0]).Length() < tol
	}
	dist := func(p geom.Vector2) float64 {
		d := p.Sub(v[0])
		cross := d.X*chord.Y - d.Y*chord.X
		return math.Abs(cross) / math.Sqrt(len2)
	}
	return dist(v[1]) < tol && dist(v[2]) < tol
}

// Curves finds all intersections between a and b, including overlap
// runs, via recursive subdivision: at each level the pair of curves'
// bounding boxes are tested for overlap (fast reject), and once both
// sides are flat enough to treat as line segments the segment-segment
// intersection is solved directly.
func Curves(a, b Values, tol float64) []Pair {
	var out []Pair
	recurse(a, 0, 1, b, 0, 1, 0, tol, &out)
	return mergePairs(out, tol)
}

func recurse(a Values, a0, a1 float64, b Values, b0, b1 float64, depth int, tol float64, out *[]Pair) {
	ba, bb := bounds(a), bounds(b)
	if !ba.Overlaps(bb.Expand(tol)) {
		return
	}
	if depth >= maxDepth || (isLinear(a, fatLineTol) && isLinear(b, fatLineTol)) {
		if p, ta, tb, ok := lineSegmentIntersect(a[0], a[3], b[0], b[3]); ok {
			gt := a0 + ta*(a1-a0)
			gs := b0 + tb*(b1-b0)
			*out = append(*out, Pair{TA: gt, TB: gs, Point: p})
		} else if ok2, oa0, oa1, ob0, ob1 := overlapSegments(a[0], a[3], b[0], b[3], tol); ok2 {
			*out = append(*out, Pair{
				TA: a0 + oa0*(a1-a0), TA2: a0 + oa1*(a1-a0),
				TB: b0 + ob0*(b1-b0), TB2: b0 + ob1*(b1-b0),
				Point: evaluate(a, oa0), Overlap: true,
			})
		}
		return
	}
	aMid := (a0 + a1) / 2
	bMid := (b0 + b1) / 2
	aLeft, aRight := split(a, 0.5)
	bLeft, bRight := split(b, 0.5)
	recurse(aLeft, a0, aMid, bLeft, b0, bMid, depth+1, tol, out)
	recurse(aLeft, a0, aMid, bRight, bMid, b1, depth+1, tol, out)
	recurse(aRight, aMid, a1, bLeft, b0, bMid, depth+1, tol, out)
	recurse(aRight, aMid, a1, bRight, bMid, b1, depth+1, tol, out)
}

// lineSegmentIntersect solves for the crossing of segments p0-p1 and
// q0-q1, returning the point and each segment's parameter.
func lineSegmentIntersect(p0, p1, q0, q1 geom.Vector2) (geom.Vector2, float64, float64, bool) {
	d1 := p1.Sub(p0)
	d2 := q1.Sub(q0)
	denom := d1.X*d2.Y - d1.Y*d2.X
	if math.Abs(denom) < 1e-14 {
		return geom.Vector2{}, 0, 0, false
	}
	diff := q0.Sub(p0)
	t := (diff.X*d2.Y - diff.Y*d2.X) / denom
	s := (diff.X*d1.Y - diff.Y*d1.X) / denom
	if t < -1e-9 || t > 1+1e-9 || s < -1e-9 || s > 1+1e-9 {
		return geom.Vector2{}, 0, 0, false
	}
	return p0.Add(d1.MulScalar(t)), clamp01(t), clamp01(s), true
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// overlapSegments reports whether p0-p1 and q0-q1 are collinear and
// share a positive-length run, returning that run's parameters on each.
func overlapSegments(p0, p1, q0, q1 geom.Vector2, tol float64) (bool, float64, float64, float64, float64) {
	d := p1.Sub(p0)
	len2 := d.LengthSquared()
	if len2 < 1e-20 {
		return false, 0, 0, 0, 0
	}
	cross := func(v geom.Vector2) float64 {
		w := v.Sub(p0)
		return math.Abs(w.X*d.Y-w.Y*d.X) / math.Sqrt(len2)
	}
	if cross(q0) > sameLineTol || cross(q1) > sameLineTol {
		return false, 0, 0, 0, 0
	}
	proj := func(v geom.Vector2) float64 {
		w := v.Sub(p0)
		return w.Dot(d) / len2
	}
	tq0, tq1 := proj(q0), proj(q1)
	lo, hi := 0.0, 1.0
	qlo, qhi := tq0, tq1
	if qlo > qhi {
		qlo, qhi = qhi, qlo
	}
	start := math.Max(lo, qlo)
	end := math.Min(hi, qhi)
	if end-start < tol {
		return false, 0, 0, 0, 0
	}
	invQ := func(t float64) float64 {
		if math.Abs(tq1-tq0) < 1e-14 {
			return 0
		}
		return (t - tq0) / (tq1 - tq0)
	}
	return true, start, end, clamp01(invQ(start)), clamp01(invQ(end))
}

// mergePairs drops near-duplicate intersections produced when a
// subdivision boundary lands exactly on a genuine intersection and both
// adjacent leaf pairs report it.
func mergePairs(pairs []Pair, tol float64) []Pair {
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].TA < pairs[j].TA })
	var out []Pair
	for _, p := range pairs {
		dup := false
		for i := range out {
			if !out[i].Overlap && !p.Overlap &&
				math.Abs(out[i].TA-p.TA) < tol*4 && math.Abs(out[i].TB-p.TB) < tol*4 {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}
