// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

package ppath

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cogentcore/pathbool/geom"
)

// ParseSVGPath builds a *Path from an SVG-subset path data string: the
// commands M/L/C/Q/A/Z (and their lowercase relative forms) are
// supported. Quadratics and elliptical arcs are converted to cubics on
// the fly, since this package works in cubic Béziers only. Multiple M
// commands start new sub-paths and are returned as a CompoundPath when
// more than one results; a single sub-path is returned as a plain
// *Path.
func ParseSVGPath(s string) (PathItem, error) {
	toks, err := tokenizeSVGPath(s)
	if err != nil {
		return nil, err
	}

	var paths []*Path
	var cur *Path
	var pos, start geom.Vector2

	i := 0
	for i < len(toks) {
		cmd := toks[i].cmd
		i++
		args := func(n int) ([]float64, error) {
			if i+n > len(toks) || toks[i].cmd != 0 {
				return nil, fmt.Errorf("ppath: not enough arguments for command %c", cmd)
			}
			out := make([]float64, n)
			for k := 0; k < n; k++ {
				out[k] = toks[i+k].val
			}
			i += n
			return out, nil
		}
		switch cmd {
		case 'M', 'm':
			a, err := args(2)
			if err != nil {
				return nil, err
			}
			p := geom.Vec2(a[0], a[1])
			if cmd == 'm' && cur != nil {
				p = pos.Add(p)
			}
			cur = NewPath()
			cur.MoveTo(p.X, p.Y)
			paths = append(paths, cur)
			pos, start = p, p
		case 'L', 'l':
			a, err := args(2)
			if err != nil {
				return nil, err
			}
			p := geom.Vec2(a[0], a[1])
			if cmd == 'l' {
				p = pos.Add(p)
			}
			cur.LineTo(p.X, p.Y)
			pos = p
		case 'H', 'h':
			a, err := args(1)
			if err != nil {
				return nil, err
			}
			x := a[0]
			if cmd == 'h' {
				x += pos.X
			}
			cur.LineTo(x, pos.Y)
			pos = geom.Vec2(x, pos.Y)
		case 'V', 'v':
			a, err := args(1)
			if err != nil {
				return nil, err
			}
			y := a[0]
			if cmd == 'v' {
				y += pos.Y
			}
			cur.LineTo(pos.X, y)
			pos = geom.Vec2(pos.X, y)
		case 'C', 'c':
			a, err := args(6)
			if err != nil {
				return nil, err
			}
			c1, c2, p := geom.Vec2(a[0], a[1]), geom.Vec2(a[2], a[3]), geom.Vec2(a[4], a[5])
			if cmd == 'c' {
				c1, c2, p = pos.Add(c1), pos.Add(c2), pos.Add(p)
			}
			cur.CubeTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
			pos = p
		case 'Q', 'q':
			a, err := args(4)
			if err != nil {
				return nil, err
			}
			c, p := geom.Vec2(a[0], a[1]), geom.Vec2(a[2], a[3])
			if cmd == 'q' {
				c, p = pos.Add(c), pos.Add(p)
			}
			c1, c2 := QuadraticToCubicBezier(pos, c, p)
			cur.CubeTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
			pos = p
		case 'A', 'a':
			a, err := args(7)
			if err != nil {
				return nil, err
			}
			rx, ry, phi := a[0], a[1], a[2]*math.Pi/180
			large, sweep := a[3] != 0, a[4] != 0
			p := geom.Vec2(a[5], a[6])
			if cmd == 'a' {
				p = pos.Add(p)
			}
			cubes := arcToCubeSegments(pos, rx, ry, phi, large, sweep, p)
			for _, c := range cubes {
				cur.CubeTo(c[0].X, c[0].Y, c[1].X, c[1].Y, c[2].X, c[2].Y)
			}
			pos = p
		case 'Z', 'z':
			cur.Close()
			pos = start
		default:
			return nil, fmt.Errorf("ppath: unsupported command %c", cmd)
		}
	}

	if len(paths) == 0 {
		return NewPath(), nil
	}
	if len(paths) == 1 {
		return paths[0], nil
	}
	return NewCompoundPath(NonZero, paths...), nil
}

// MustParseSVGPath is ParseSVGPath, panicking on a malformed string;
// intended for literal path data known at compile time (tests and
// fixtures), mirroring the convention other path libraries use for
// must-parse helpers.
func MustParseSVGPath(s string) PathItem {
	item, err := ParseSVGPath(s)
	if err != nil {
		panic(err)
	}
	return item
}

type svgTok struct {
	cmd byte
	val float64
}

func tokenizeSVGPath(s string) ([]svgTok, error) {
	var out []svgTok
	i := 0
	n := len(s)
	isCmd := func(b byte) bool {
		return strings.IndexByte("MmLlHhVvCcSsQqTtAaZz", b) >= 0
	}
	for i < n {
		c := s[i]
		switch {
		case c == ' ' || c == ',' || c == '\t' || c == '\n' || c == '\r':
			i++
		case isCmd(c):
			out = append(out, svgTok{cmd: c})
			i++
		case c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9'):
			j := i + 1
			for j < n && (s[j] == '.' || (s[j] >= '0' && s[j] <= '9') || s[j] == 'e' || s[j] == 'E' ||
				((s[j] == '-' || s[j] == '+') && j > i && (s[j-1] == 'e' || s[j-1] == 'E'))) {
				j++
			}
			v, err := strconv.ParseFloat(s[i:j], 64)
			if err != nil {
				return nil, fmt.Errorf("ppath: invalid number %q: %w", s[i:j], err)
			}
			out = append(out, svgTok{val: v})
			i = j
		default:
			return nil, fmt.Errorf("ppath: unexpected character %q", c)
		}
	}
	return out, nil
}

// QuadraticToCubicBezier returns the two cubic control points
// equivalent to the quadratic Bézier through p0, c, p1.
func QuadraticToCubicBezier(p0, c, p1 geom.Vector2) (geom.Vector2, geom.Vector2) {
	c1 := p0.Add(c.Sub(p0).MulScalar(2.0 / 3.0))
	c2 := p1.Add(c.Sub(p1).MulScalar(2.0 / 3.0))
	return c1, c2
}

// EllipseToCenter converts an SVG elliptical-arc endpoint
// parameterization (x1,y1)-(x2,y2) to the center parameterization
// (cx,cy,theta0,theta1), applying the radius correction SVG mandates
// when rx,ry are too small for the given endpoints.
func EllipseToCenter(x1, y1, rx, ry, phi float64, large, sweep bool, x2, y2 float64) (cx, cy, theta0, theta1 float64) {
	if x1 == x2 && y1 == y2 {
		return x1, y1, 0, 0
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	sinPhi, cosPhi := math.Sincos(phi)

	dx2, dy2 := (x1-x2)/2, (y1-y2)/2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	radiiCheck := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry)
	if radiiCheck > 1 {
		scale := math.Sqrt(radiiCheck)
		rx *= scale
		ry *= scale
	}

	sign := 1.0
	if large == sweep {
		sign = -1.0
	}
	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	co := 0.0
	if den > 0 && num > 0 {
		co = sign * math.Sqrt(num/den)
	}
	cxp := co * rx * y1p / ry
	cyp := -co * ry * x1p / rx

	cx = cosPhi*cxp - sinPhi*cyp + (x1+x2)/2
	cy = sinPhi*cxp + cosPhi*cyp + (y1+y2)/2

	angle := func(ux, uy, vx, vy float64) float64 {
		dot := ux*vx + uy*vy
		length := math.Sqrt((ux*ux + uy*uy) * (vx*vx + vy*vy))
		a := math.Acos(clamp(dot/length, -1, 1))
		if ux*vy-uy*vx < 0 {
			a = -a
		}
		return a
	}
	theta0 = angle(1, 0, (x1p-cxp)/rx, (y1p-cyp)/ry)
	if theta0 < 0 {
		theta0 += 2 * math.Pi
	}
	dtheta := angle((x1p-cxp)/rx, (y1p-cyp)/ry, (-x1p-cxp)/rx, (-y1p-cyp)/ry)
	if !sweep && dtheta > 0 {
		dtheta -= 2 * math.Pi
	} else if sweep && dtheta < 0 {
		dtheta += 2 * math.Pi
	}
	theta1 = theta0 + dtheta
	return
}

// ArcToCube returns the cubic Bézier control points (triples of
// (c1,c2,p) flattened) approximating the SVG elliptical arc from p0 to
// p1 with the given radii, rotation, and flags, as a flat coordinate
// slice.
func ArcToCube(p0 geom.Vector2, rx, ry, phi float64, large, sweep bool, p1 geom.Vector2) []float64 {
	segs := arcToCubeSegments(p0, rx, ry, phi, large, sweep, p1)
	out := make([]float64, 0, len(segs)*6)
	for _, s := range segs {
		out = append(out, s[0].X, s[0].Y, s[1].X, s[1].Y, s[2].X, s[2].Y)
	}
	return out
}

// ArcToQuad is ArcToCube's quadratic-approximation counterpart,
// returning flattened (c,p) pairs.
func ArcToQuad(p0 geom.Vector2, rx, ry, phi float64, large, sweep bool, p1 geom.Vector2) []float64 {
	cx, cy, theta0, theta1 := EllipseToCenter(p0.X, p0.Y, rx, ry, phi, large, sweep, p1.X, p1.Y)
	n := arcSegmentCount(theta1 - theta0)
	out := make([]float64, 0, n*4)
	dtheta := (theta1 - theta0) / float64(n)
	for i := 0; i < n; i++ {
		t0 := theta0 + float64(i)*dtheta
		t1 := t0 + dtheta
		tm := (t0 + t1) / 2
		p1pt := ellipsePos(cx, cy, rx, ry, phi, t1)
		cpt := ellipsePos(cx, cy, rx, ry, phi, tm)
		out = append(out, cpt.X, cpt.Y, p1pt.X, p1pt.Y)
	}
	return out
}

func arcSegmentCount(dtheta float64) int {
	n := int(math.Ceil(math.Abs(dtheta) / (math.Pi / 2)))
	if n < 1 {
		n = 1
	}
	return n
}

func ellipsePos(cx, cy, rx, ry, phi, theta float64) geom.Vector2 {
	sinPhi, cosPhi := math.Sincos(phi)
	sinT, cosT := math.Sincos(theta)
	x := cx + rx*cosT*cosPhi - ry*sinT*sinPhi
	y := cy + rx*cosT*sinPhi + ry*sinT*cosPhi
	return geom.Vec2(x, y)
}

func ellipseDeriv(rx, ry, phi float64, theta float64) geom.Vector2 {
	sinPhi, cosPhi := math.Sincos(phi)
	sinT, cosT := math.Sincos(theta)
	dx := -rx*sinT*cosPhi - ry*cosT*sinPhi
	dy := -rx*sinT*sinPhi + ry*cosT*cosPhi
	return geom.Vec2(dx, dy)
}

// arcToCubeSegments splits the arc into pieces no larger than a right
// angle (the approximation the cubic Bézier holds well), one cubic
// each, derived via the standard tangent-length construction.
func arcToCubeSegments(p0 geom.Vector2, rx, ry, phi float64, large, sweep bool, p1 geom.Vector2) [][3]geom.Vector2 {
	cx, cy, theta0, theta1 := EllipseToCenter(p0.X, p0.Y, rx, ry, phi, large, sweep, p1.X, p1.Y)
	n := arcSegmentCount(theta1 - theta0)
	dtheta := (theta1 - theta0) / float64(n)
	alpha := math.Sin(dtheta) * (math.Sqrt(4+3*math.Tan(dtheta/2)*math.Tan(dtheta/2)) - 1) / 3

	out := make([][3]geom.Vector2, 0, n)
	for i := 0; i < n; i++ {
		t0 := theta0 + float64(i)*dtheta
		t1 := t0 + dtheta
		start := ellipsePos(cx, cy, rx, ry, phi, t0)
		end := ellipsePos(cx, cy, rx, ry, phi, t1)
		d0 := ellipseDeriv(rx, ry, phi, t0)
		d1 := ellipseDeriv(rx, ry, phi, t1)
		c1 := start.Add(d0.MulScalar(alpha))
		c2 := end.Sub(d1.MulScalar(alpha))
		out = append(out, [3]geom.Vector2{c1, c2, end})
	}
	return out
}
