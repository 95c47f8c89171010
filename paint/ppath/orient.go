// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"sort"

	"github.com/cogentcore/pathbool/geom"
)

// interiorPoint returns a point known to be inside p: the bounding-box
// center if p actually contains it, otherwise the midpoint of the
// first two x-intercepts of a horizontal ray cast from that center
// against p's own Y-monotone curves. Falls back to the bounding-box
// center if fewer than two intercepts are found.
func interiorPoint(p *Path) geom.Vector2 {
	center := p.Bounds().Center()
	if p.Contains(center) {
		return center
	}
	var xs []float64
	for _, mc := range monotoneCurves(p, geom.Y) {
		y0, y3 := mc.Values[0].Y, mc.Values[3].Y
		lo, hi := y0, y3
		if lo > hi {
			lo, hi = hi, lo
		}
		if center.Y < lo || center.Y > hi || mc.Winding == 0 {
			continue
		}
		x := abscissaAtOrdinate(mc.Values, geom.Y, geom.X, center.Y)
		xs = append(xs, x)
	}
	sort.Float64s(xs)
	if len(xs) >= 2 {
		return geom.Vec2((xs[0]+xs[1])/2, center.Y)
	}
	return center
}

func bboxArea(p *Path) float64 {
	b := p.Bounds()
	return b.Area()
}

// reorient fixes the orientation of result's children in place: sorted
// by bounding-box area descending, the largest keeps its orientation,
// and every subsequent child's orientation (or exclusion, under the
// non-zero rule) follows from how many larger children contain its
// interior point.
func reorient(result *CompoundPath) {
	children := result.Children
	if len(children) == 0 {
		return
	}
	order := make([]int, len(children))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return bboxArea(children[order[i]]) > bboxArea(children[order[j]])
	})

	sorted := make([]*Path, len(children))
	for i, idx := range order {
		sorted[i] = children[idx]
	}

	largestCW := sorted[0].IsClockwise()
	keep := make([]bool, len(sorted))
	keep[0] = true

	for i := 1; i < len(sorted); i++ {
		p := sorted[i]
		pt := interiorPoint(p)
		depth := 0
		winding := 0
		containerWinding := 0
		for j := 0; j < i; j++ {
			if !keep[j] {
				continue
			}
			if sorted[j].Contains(pt) {
				depth++
				w := 1
				if sorted[j].IsClockwise() {
					w = -1
				}
				containerWinding = winding + w
				winding = containerWinding
			}
		}
		cw := depth%2 == 0
		cw = cw == largestCW
		p.SetClockwise(cw)

		pWinding := 1
		if p.IsClockwise() {
			pWinding = -1
		}
		if winding != 0 && winding+pWinding != 0 && depth > 0 {
			// both this child and its immediate container carry
			// non-zero cumulative winding: fully canceled out.
			keep[i] = false
			continue
		}
		keep[i] = true
	}

	out := make([]*Path, 0, len(sorted))
	for i, p := range sorted {
		if keep[i] {
			out = append(out, p)
		}
	}
	result.Children = out
}
