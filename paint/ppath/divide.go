// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import "sort"

// divideLocations splits the curves of locs's paths at each location's
// parameter, replacing each location's Curve/Time with the freshly
// produced segment, and threads coincident locations into the
// intersection chain via Segment.intersection.
//
// locs must already be "expanded": both sides of every intersection
// pair present as independent entries. Locations are processed in
// descending (curve, time) order so that splitting a curve never
// invalidates the parameter of a not-yet-processed location on the
// same original curve; a location whose time falls in the part of the
// curve already consumed by a later (in sort order, i.e. larger-time)
// split is rescaled onto the remaining sub-curve.
func divideLocations(locs []*CurveLocation) {
	if len(locs) == 0 {
		return
	}
	order := assignOrder(locs)
	sort.SliceStable(locs, func(i, j int) bool {
		oi, oj := order[locs[i].Curve.Seg1], order[locs[j].Curve.Seg1]
		if oi != oj {
			return oi > oj
		}
		return locs[i].Time > locs[j].Time
	})

	var prevCurve Curve
	prevTime := 1.0
	havePrev := false
	straightBefore := make(map[*Segment]bool)

	for _, loc := range locs {
		curve := loc.Curve
		t := loc.Time
		if havePrev && curve.Seg1 == prevCurve.Seg1 {
			if prevTime > 1e-12 {
				t = t / prevTime
			}
			// the earlier split inserted a segment after Seg1: what is
			// left of the original curve now ends at Seg1's successor.
			curve = Curve{curve.Seg1, curve.Seg1.Next()}
		} else {
			havePrev = true
		}
		prevCurve = curve
		prevTime = loc.Time

		var seg *Segment
		switch {
		case t < CurveTimeEpsilon:
			seg = curve.Seg1
		case t > 1-CurveTimeEpsilon:
			seg = curve.Seg2
		default:
			if _, ok := straightBefore[curve.Seg1]; !ok {
				straightBefore[curve.Seg1] = curve.IsStraight()
			}
			setHandles := !straightBefore[curve.Seg1]
			seg = curve.DivideAtTime(t, setHandles)
		}
		loc.Segment = seg
		loc.Time = 0

		dest := loc
		if inter := seg.intersection; inter != nil {
			linkIntersections(inter, dest)
			for l := inter; l != nil; l = l.next {
				if l.Other != nil {
					linkIntersections(l.Other, inter)
				}
			}
			for l := inter; l != nil; l = l.previous {
				if l.Other != nil {
					linkIntersections(l.Other, inter)
				}
			}
		} else {
			seg.intersection = dest
		}
	}
}

// assignOrder gives every segment that appears as a Curve.Seg1 among
// locs a stable index reflecting its original position along its path,
// computed once up front before any splitting occurs.
func assignOrder(locs []*CurveLocation) map[*Segment]int {
	seen := map[*Path]bool{}
	var paths []*Path
	for _, l := range locs {
		p := l.Curve.Seg1.path
		if p != nil && !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}
	order := make(map[*Segment]int)
	idx := 0
	for _, p := range paths {
		for _, s := range p.Segments() {
			order[s] = idx
			idx++
		}
	}
	return order
}
