// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"log/slog"

	"github.com/cogentcore/pathbool/geom"
)

// isValid reports whether seg is eligible to start or continue a
// traced contour: it must exist, be unvisited, and have a winding the
// operator admits (for unite and resolve with excludeContour false,
// winding 2 is admitted when the segment is flagged on-contour).
func isValid(op Operator, seg *Segment, excludeContour bool) bool {
	if seg == nil || seg.visited {
		return false
	}
	return op.includes(seg.winding, !excludeContour && seg.contour)
}

// findBestIntersection walks the intersection chain starting at inter,
// skipping exclude, and returns the first entry whose segment is a
// plausible branch to switch to: the start (or its successor) of the
// contour being traced, or a segment whose own validity and whose
// successor's validity (directly, or via the successor's own
// intersection) make it safe to continue along. Returns nil if none
// qualify, in which case the caller keeps following inter itself.
func findBestIntersection(op Operator, inter *CurveLocation, exclude, start, otherStart *Segment) *CurveLocation {
	if inter == nil {
		return nil
	}
	for l := inter; l != nil; l = l.next {
		seg := l.Segment
		if seg == nil || seg == exclude {
			continue
		}
		next := seg.Next()
		if seg == start || next == start || seg == otherStart || next == otherStart {
			return l
		}
		if seg.visited || next == nil || next.visited {
			continue
		}
		if !isValid(op, seg, false) {
			continue
		}
		if isValid(op, next, false) {
			return l
		}
		if next.intersection != nil && isValid(op, next.intersection.Segment, false) {
			return l
		}
	}
	return nil
}

// hasNonOverlapValidStart reports whether p has any unvisited, valid
// segment whose intersection (if any) is not an overlap; used to let
// the tracer start inside an overlap-only path when that is its only
// option.
func hasNonOverlapValidStart(op Operator, p *Path) bool {
	for _, s := range p.Segments() {
		if s.visited || !isValid(op, s, false) {
			continue
		}
		if s.intersection != nil && s.intersection.Overlap {
			continue
		}
		return true
	}
	return false
}

// tracePaths walks all segments of paths, emitting closed contours:
// starting from a valid unvisited segment, it follows Next, consulting
// findBestIntersection at each crossing to decide whether to switch to
// the partner segment, until it returns to its start.
func tracePaths(paths []*Path, op Operator) *CompoundPath {
	result := &CompoundPath{Fill: NonZero}

	var allSegs []*Segment
	for _, p := range paths {
		allSegs = append(allSegs, p.Segments()...)
	}
	maxIterations := 4*len(allSegs) + 16

	for _, seed := range allSegs {
		if seed.visited {
			continue
		}
		if !isValid(op, seed, false) {
			continue
		}
		if seed.intersection != nil && seed.intersection.Overlap && hasNonOverlapValidStart(op, seed.path) {
			continue
		}

		seg := seed
		var start, otherStart *Segment
		var out *Path
		var handleIn geom.Vector2
		finished := false

		for iter := 0; iter < maxIterations; iter++ {
			best := findBestIntersection(op, seg.intersection, seg, start, otherStart)
			var other *Segment
			if best != nil {
				other = best.Segment
			}

			if out != nil && (seg == start || seg == otherStart) {
				finished = true
				break
			}
			if other != nil {
				if other == start || other == otherStart {
					seg = other
					finished = true
				} else {
					excl := out != nil && isValid(op, seg, true)
					if isValid(op, other, excl) || op.alwaysSwitch() {
						if op == OpIntersect || op == OpSubtract {
							seg.visited = true
						}
						seg = other
					}
				}
			}
			if finished || seg.visited {
				break
			}

			if out == nil {
				out = NewPath()
				start = seg
				otherStart = other
			}

			nextSeg := seg.Next()
			newSeg := out.add(seg.Point)
			newSeg.HandleIn = handleIn
			if nextSeg != nil {
				newSeg.HandleOut = seg.HandleOut
			}
			seg.visited = true
			if nextSeg == nil {
				break
			}
			handleIn = nextSeg.HandleIn
			seg = nextSeg
		}

		if out == nil {
			continue
		}
		if finished {
			if fs := out.FirstSegment(); fs != nil {
				fs.HandleIn = handleIn
			}
			out.Close()
			result.Children = append(result.Children, out)
			continue
		}
		area := out.Area()
		if area < 0 {
			area = -area
		}
		if area < GeometricEpsilon {
			continue
		}
		slog.Error("boolean operation produced an unterminated contour", "area", area)
	}

	return result
}
