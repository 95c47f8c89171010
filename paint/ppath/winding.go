// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"math"

	"github.com/cogentcore/pathbool/geom"
)

// curveChain is a maximal run of consecutive segments with no
// intersection between them. All its curves share one winding number
// and one contour flag.
type curveChain struct {
	curves []Curve
	length []float64 // cumulative length up to and including curves[i]
	total  float64
}

// collectChains partitions paths into curve chains, split at every
// segment carrying an intersection. A path with no intersections at
// all forms a single chain running its whole length.
func collectChains(paths []*Path) []curveChain {
	var out []curveChain
	for _, p := range paths {
		segs := p.Segments()
		if len(segs) < 2 {
			continue
		}
		var seeds []*Segment
		for _, s := range segs {
			if s.intersection != nil {
				seeds = append(seeds, s)
			}
		}
		if len(seeds) == 0 {
			out = append(out, buildChain(segs[0]))
			continue
		}
		for _, s := range seeds {
			out = append(out, buildChain(s))
		}
	}
	return out
}

func buildChain(seed *Segment) curveChain {
	var ch curveChain
	cur := seed
	for {
		next := cur.Next()
		if next == nil {
			break
		}
		c := Curve{cur, next}
		ch.curves = append(ch.curves, c)
		ch.total += c.Length()
		ch.length = append(ch.length, ch.total)
		if next.intersection != nil || next == seed {
			break
		}
		cur = next
	}
	return ch
}

// sample returns a representative point and tangent at the chain's
// total-length midpoint, found via arc-length inversion on the curve
// that contains it.
func (ch curveChain) sample() (geom.Vector2, geom.Vector2) {
	if len(ch.curves) == 0 {
		return geom.Vector2{}, geom.Vector2{}
	}
	target := ch.total / 2
	prev := 0.0
	for i, c := range ch.curves {
		if target <= ch.length[i] || i == len(ch.curves)-1 {
			local := target - prev
			t := c.TimeAt(local)
			return c.PointAtTime(t), c.TangentAtTime(t)
		}
		prev = ch.length[i]
	}
	c := ch.curves[len(ch.curves)-1]
	return c.PointAtTime(0.5), c.TangentAtTime(0.5)
}

func (ch curveChain) assign(winding int, contour bool) {
	for _, c := range ch.curves {
		c.Seg1.winding = winding
		c.Seg1.windingSet = true
		c.Seg1.contour = contour
	}
}

func (ch curveChain) path() *Path {
	if len(ch.curves) == 0 {
		return nil
	}
	return ch.curves[0].Seg1.path
}

// propagateWinding computes, for every segment of every curve chain in
// all, its winding contribution and contour flag, by ray-casting the
// chain's sample point against the global monotone decomposition. For
// subtract, a chain belonging to A that lies inside B, or belonging to
// B that lies outside A, has its winding zeroed here rather than left
// for the tracer, since this is the point where the other operand's
// winding at the same sample point is already at hand.
func propagateWinding(all, pathsA, pathsB []*Path, op Operator) {
	global := globalMonotoneCurves(all)
	chains := collectChains(all)

	inA := make(map[*Path]bool, len(pathsA))
	for _, p := range pathsA {
		inA[p] = true
	}
	inB := make(map[*Path]bool, len(pathsB))
	for _, p := range pathsB {
		inB[p] = true
	}

	for _, ch := range chains {
		pt, tangent := ch.sample()
		length := tangent.Length()
		horizontal := length > 0 && math.Abs(tangent.Y)/length < 0.5
		w, onContour := getWinding(pt, global, horizontal)

		if op == OpSubtract && len(pathsB) > 0 {
			p := ch.path()
			switch {
			case inA[p]:
				wb, _ := getWinding(pt, globalMonotoneCurves(pathsB), horizontal)
				if wb != 0 {
					w = 0
				}
			case inB[p]:
				wa, _ := getWinding(pt, globalMonotoneCurves(pathsA), horizontal)
				if wa == 0 {
					w = 0
				}
			}
		}

		ch.assign(w, onContour)
	}
}

// getWinding casts an axis-aligned ray from pt in the +abscissa
// direction (x if !horizontal, y if horizontal) against curves,
// returning the winding number (mapped through mod 2, so +1 and -1
// both count as inside) and whether pt lies exactly on one of the
// curves' outlines.
func getWinding(pt geom.Vector2, curves []*MonoCurve, horizontal bool) (int, bool) {
	abscissa, ordinate := geom.X, geom.Y
	if horizontal {
		abscissa, ordinate = geom.Y, geom.X
	}
	pa := pt.Dim(abscissa)
	po := pt.Dim(ordinate)

	windLeft, windRight := 0, 0
	onPathWinding := 0
	pathWindLeft, pathWindRight := 0, 0
	onContourPath := false
	var curPath *Path
	prevWinding := 0
	havePrevWinding := false

	flush := func() {
		if pathWindLeft == 0 && pathWindRight == 0 && onContourPath && curPath != nil {
			if curPath.IsClockwise() {
				onPathWinding++
			} else {
				onPathWinding--
			}
		} else {
			windLeft += pathWindLeft
			windRight += pathWindRight
		}
		pathWindLeft, pathWindRight = 0, 0
		onContourPath = false
		prevWinding = 0
		havePrevWinding = false
	}

	for _, mc := range curves {
		if mc.Path != curPath {
			if curPath != nil {
				flush()
			}
			curPath = mc.Path
		}
		y0, y3 := mc.Values[0].Dim(ordinate), mc.Values[3].Dim(ordinate)
		lo, hi := y0, y3
		if lo > hi {
			lo, hi = hi, lo
		}
		if po < lo || po > hi {
			continue
		}
		x0 := mc.Values[0].Dim(abscissa)
		x3 := mc.Values[3].Dim(abscissa)

		winding := mc.Winding
		if winding == 0 {
			// horizontal piece: flag on-contour if it straddles the band,
			// inheriting winding sign from the previous non-horizontal piece.
			if x0 <= pa+WindingEpsilon && x3 >= pa-WindingEpsilon || x3 <= pa+WindingEpsilon && x0 >= pa-WindingEpsilon {
				onContourPath = true
			}
			continue
		}

		a := abscissaAtOrdinate(mc.Values, ordinate, abscissa, po)

		if havePrevWinding && po == y0 && winding != prevWinding {
			// cancel the previous piece's contribution: its endpoint
			// coincides exactly with this piece's start.
			if x0 < pa-WindingEpsilon {
				windLeft -= prevWinding
			} else if x0 > pa+WindingEpsilon {
				windRight -= prevWinding
			} else {
				windLeft -= prevWinding
				windRight -= prevWinding
			}
		}

		switch {
		case a < pa-WindingEpsilon:
			pathWindLeft += winding
		case a > pa+WindingEpsilon:
			pathWindRight += winding
		default:
			pathWindLeft += winding
			pathWindRight += winding
			onContourPath = true
		}

		prevWinding = winding
		havePrevWinding = true
	}
	if curPath != nil {
		flush()
	}

	mod2 := func(w int) int {
		if w == 0 {
			return 0
		}
		a := w
		if a < 0 {
			a = -a
		}
		return 2 - a%2
	}
	wl, wr := mod2(windLeft), mod2(windRight)
	winding := wl
	if wr > winding {
		winding = wr
	}
	contour := (windLeft != 0) != (windRight != 0)
	if onPathWinding != 0 {
		contour = true
	}
	return winding, contour
}

// abscissaAtOrdinate solves the cubic for the abscissa at which the
// curve's ordinate equals po, using the endpoint's abscissa directly
// when po exactly equals an endpoint ordinate.
func abscissaAtOrdinate(v [4]geom.Vector2, ordinate, abscissa geom.Dim, po float64) float64 {
	if v[0].Dim(ordinate) == po {
		return v[0].Dim(abscissa)
	}
	if v[3].Dim(ordinate) == po {
		return v[3].Dim(abscissa)
	}
	var roots [3]float64
	n := SolveCubic(v, ordinate, po, &roots, -1e-9, 1+1e-9)
	if n == 0 {
		return v[0].Dim(abscissa)
	}
	t := roots[0]
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return deCasteljauPoint(v, t).Dim(abscissa)
}
