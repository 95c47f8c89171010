// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"math"

	"github.com/cogentcore/pathbool/geom"
)

// Curve is a cubic Bézier curve owned by Seg1, running to Seg2 (which
// must be Seg1.Next()). It is a view, not a value: Seg1 and Seg2 are
// the authoritative state, so splitting or dividing the curve mutates
// the underlying segments rather than this struct.
type Curve struct {
	Seg1, Seg2 *Segment
}

// Values returns the curve's 8 control values:
// anchor + outgoing handle of Seg1, incoming handle of Seg2 + anchor of Seg2.
func (c Curve) Values() [4]geom.Vector2 {
	return [4]geom.Vector2{
		c.Seg1.Point,
		c.Seg1.Point.Add(c.Seg1.HandleOut),
		c.Seg2.Point.Add(c.Seg2.HandleIn),
		c.Seg2.Point,
	}
}

// IsStraight reports whether c has no effective handles, i.e. is a
// straight line segment masquerading as a cubic.
func (c Curve) IsStraight() bool {
	return c.Seg1.HandleOut == (geom.Vector2{}) && c.Seg2.HandleIn == (geom.Vector2{})
}

// PointAtTime evaluates the curve at parameter t via de Casteljau.
func (c Curve) PointAtTime(t float64) geom.Vector2 {
	v := c.Values()
	return deCasteljauPoint(v, t)
}

func deCasteljauPoint(v [4]geom.Vector2, t float64) geom.Vector2 {
	u := 1 - t
	p01 := v[0].MulScalar(u).Add(v[1].MulScalar(t))
	p12 := v[1].MulScalar(u).Add(v[2].MulScalar(t))
	p23 := v[2].MulScalar(u).Add(v[3].MulScalar(t))
	p012 := p01.MulScalar(u).Add(p12.MulScalar(t))
	p123 := p12.MulScalar(u).Add(p23.MulScalar(t))
	return p012.MulScalar(u).Add(p123.MulScalar(t))
}

// TangentAtTime returns the (unnormalized) derivative of c at t. Near
// t=0 or t=1 with a zero handle, the derivative can vanish; callers
// needing a direction should evaluate at CurveTimeEpsilon / 1-CurveTimeEpsilon
// instead of the exact endpoint.
func (c Curve) TangentAtTime(t float64) geom.Vector2 {
	v := c.Values()
	u := 1 - t
	d0 := v[1].Sub(v[0]).MulScalar(3 * u * u)
	d1 := v[2].Sub(v[1]).MulScalar(6 * u * t)
	d2 := v[3].Sub(v[2]).MulScalar(3 * t * t)
	return d0.Add(d1).Add(d2)
}

// subdivide splits v at t via de Casteljau, returning the two halves'
// control points.
func subdivide(v [4]geom.Vector2, t float64) (left, right [4]geom.Vector2) {
	u := 1 - t
	p01 := v[0].MulScalar(u).Add(v[1].MulScalar(t))
	p12 := v[1].MulScalar(u).Add(v[2].MulScalar(t))
	p23 := v[2].MulScalar(u).Add(v[3].MulScalar(t))
	p012 := p01.MulScalar(u).Add(p12.MulScalar(t))
	p123 := p12.MulScalar(u).Add(p23.MulScalar(t))
	p0123 := p012.MulScalar(u).Add(p123.MulScalar(t))
	left = [4]geom.Vector2{v[0], p01, p012, p0123}
	right = [4]geom.Vector2{p0123, p123, p23, v[3]}
	return
}

// Subdivide splits c at t and returns the control points of the left
// and right halves, without modifying the path.
func (c Curve) Subdivide(t float64) (left, right [4]geom.Vector2) {
	return subdivide(c.Values(), t)
}

// DivideAtTime splits c at parameter t by inserting a new segment into
// the path between Seg1 and Seg2, and returns that new segment — the
// start of the curve's right half. If setHandles is false the curve is
// treated as the straight chord from Seg1 to Seg2: the new segment is
// placed at fraction t along that chord and the two halves are left
// straight (zero handles); divideLocations uses this to keep straight
// input curves straight.
func (c Curve) DivideAtTime(t float64, setHandles bool) *Segment {
	left, right := c.Subdivide(t)
	p := c.Seg1.path
	pt := right[0]
	if !setHandles {
		pt = c.Seg1.Point.Lerp(c.Seg2.Point, t)
	}
	mid := p.InsertAfter(c.Seg1, pt)
	if setHandles {
		c.Seg1.HandleOut = left[1].Sub(left[0])
		mid.HandleIn = left[2].Sub(left[3])
		mid.HandleOut = right[1].Sub(right[0])
		c.Seg2.HandleIn = right[2].Sub(right[3])
	} else {
		c.Seg1.HandleOut = geom.Vector2{}
		mid.HandleIn = geom.Vector2{}
		mid.HandleOut = geom.Vector2{}
		c.Seg2.HandleIn = geom.Vector2{}
	}
	return mid
}

// Length returns the arc length of c, via 5-point Gauss-Legendre
// quadrature (straight lines are measured exactly).
func (c Curve) Length() float64 {
	if c.IsStraight() {
		return c.Seg2.Point.Sub(c.Seg1.Point).Length()
	}
	return curveLength(c.Values(), 0, 1)
}

// gauss5 nodes/weights on [-1,1], used for curveLength.
var gauss5X = [5]float64{-0.9061798459386640, -0.5384693101056831, 0, 0.5384693101056831, 0.9061798459386640}
var gauss5W = [5]float64{0.2369268850561891, 0.4786286704993665, 0.5688888888888889, 0.4786286704993665, 0.2369268850561891}

func curveSpeed(v [4]geom.Vector2, t float64) float64 {
	u := 1 - t
	d0 := v[1].Sub(v[0]).MulScalar(3 * u * u)
	d1 := v[2].Sub(v[1]).MulScalar(6 * u * t)
	d2 := v[3].Sub(v[2]).MulScalar(3 * t * t)
	return d0.Add(d1).Add(d2).Length()
}

func curveLength(v [4]geom.Vector2, t0, t1 float64) float64 {
	mid := (t0 + t1) / 2
	half := (t1 - t0) / 2
	sum := 0.0
	for i := range gauss5X {
		t := mid + half*gauss5X[i]
		sum += gauss5W[i] * curveSpeed(v, t)
	}
	return sum * half
}

// TimeAt returns the parameter t at which the arc length from the
// start of c equals arcLen, via bisection on the (monotonically
// increasing) length function.
func (c Curve) TimeAt(arcLen float64) float64 {
	if arcLen <= 0 {
		return 0
	}
	total := c.Length()
	if arcLen >= total {
		return 1
	}
	v := c.Values()
	lo, hi := 0.0, 1.0
	for i := 0; i < 48; i++ {
		mid := (lo + hi) / 2
		if curveLength(v, 0, mid) < arcLen {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

// area returns the signed area contribution of c via the exact
// polynomial integral of a cubic Bézier (generalized shoelace formula).
func (c Curve) area() float64 {
	v := c.Values()
	x0, y0 := v[0].X, v[0].Y
	x1, y1 := v[1].X, v[1].Y
	x2, y2 := v[2].X, v[2].Y
	x3, y3 := v[3].X, v[3].Y
	return (3.0*(y0*(-2*x1-x2)+y1*(2*x0-x2-x3)+y2*(x0+x1-2*x3)+y3*(x1+2*x2)) +
		(x0*y3 - x3*y0)) / 20.0
}

// SolveQuadratic finds the real roots of a*t^2 + b*t + c = 0 in
// (tMin, tMax), writing them into roots and returning how many were
// found (0, 1, or 2, sorted ascending).
func SolveQuadratic(a, b, c float64, roots *[2]float64, tMin, tMax float64) int {
	const epsilon = 1e-12
	if math.Abs(a) < epsilon {
		if math.Abs(b) < epsilon {
			return 0
		}
		t := -c / b
		if t > tMin && t < tMax {
			roots[0] = t
			return 1
		}
		return 0
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0
	}
	sq := math.Sqrt(disc)
	t0 := (-b - sq) / (2 * a)
	t1 := (-b + sq) / (2 * a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	n := 0
	if t0 > tMin && t0 < tMax {
		roots[n] = t0
		n++
	}
	if disc > 0 && t1 > tMin && t1 < tMax {
		roots[n] = t1
		n++
	}
	return n
}

// SolveCubic finds the t in (tMin, tMax) at which the chosen axis of
// the cubic Bézier with the given 4 control points equals v, writing
// up to 3 roots (sorted ascending) into roots and returning the count.
func SolveCubic(values [4]geom.Vector2, axis geom.Dim, v float64, roots *[3]float64, tMin, tMax float64) int {
	p0, p1, p2, p3 := values[0].Dim(axis), values[1].Dim(axis), values[2].Dim(axis), values[3].Dim(axis)
	// Bernstein-to-power-basis coefficients for (p(t) - v) = 0.
	a := -p0 + 3*p1 - 3*p2 + p3
	b := 3*p0 - 6*p1 + 3*p2
	c := -3*p0 + 3*p1
	d := p0 - v
	const epsilon = 1e-12
	if math.Abs(a) < epsilon {
		var q [2]float64
		n := SolveQuadratic(b, c, d, &q, tMin, tMax)
		copy(roots[:], q[:n])
		return n
	}
	b, c, d = b/a, c/a, d/a
	// depressed cubic t^3 + pt + q = 0 via t = x - b/3
	p := c - b*b/3
	q := 2*b*b*b/27 - b*c/3 + d
	var ts []float64
	disc := q*q/4 + p*p*p/27
	if disc > 1e-14 {
		sq := math.Sqrt(disc)
		u := math.Cbrt(-q/2 + sq)
		w := math.Cbrt(-q/2 - sq)
		ts = []float64{u + w - b/3}
	} else if disc > -1e-14 {
		u := math.Cbrt(-q / 2)
		ts = []float64{2*u - b/3, -u - b/3}
	} else {
		r := math.Sqrt(-p * p * p / 27)
		phi := math.Acos(clamp(-q/(2*r), -1, 1))
		m := 2 * math.Sqrt(-p/3)
		ts = []float64{
			m*math.Cos(phi/3) - b/3,
			m*math.Cos((phi+2*math.Pi)/3) - b/3,
			m*math.Cos((phi+4*math.Pi)/3) - b/3,
		}
	}
	n := 0
	for _, t := range ts {
		if t > tMin && t < tMax {
			roots[n] = t
			n++
		}
	}
	// sort ascending (n is at most 3, insertion sort is plenty)
	for i := 1; i < n; i++ {
		for j := i; j > 0 && roots[j-1] > roots[j]; j-- {
			roots[j-1], roots[j] = roots[j], roots[j-1]
		}
	}
	return n
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
