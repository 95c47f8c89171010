// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

package ppath

import (
	"fmt"
	"math"
	"testing"

	"github.com/cogentcore/pathbool/geom"
	"github.com/stretchr/testify/assert"
)

func TestParseSVGPathSquare(t *testing.T) {
	item := MustParseSVGPath("M0 0L100 0L100 100L0 100Z")
	p, ok := item.(*Path)
	assert.True(t, ok)
	assert.Equal(t, 4, p.Count())
	assert.InDelta(t, 10000.0, p.Area(), 1e-6)
}

func TestParseSVGPathCompound(t *testing.T) {
	item := MustParseSVGPath("M0 0L10 0L10 10ZM20 0L30 0L30 10Z")
	cp, ok := item.(*CompoundPath)
	assert.True(t, ok)
	assert.Equal(t, 2, len(cp.Children))
}

func TestParseSVGPathCubic(t *testing.T) {
	item := MustParseSVGPath("M0 0C10 0 20 10 30 10")
	p := item.(*Path)
	assert.Equal(t, 2, p.Count())
	assert.InDelta(t, 30.0, p.LastSegment().Point.X, 1e-9)
	assert.InDelta(t, 10.0, p.LastSegment().Point.Y, 1e-9)
}

func TestEllipseToCenter(t *testing.T) {
	var tests = []struct {
		x1, y1       float64
		rx, ry, phi  float64
		large, sweep bool
		x2, y2       float64

		cx, cy, theta0, theta1 float64
	}{
		{0.0, 0.0, 2.0, 2.0, 0.0, false, false, 2.0, 2.0, 2.0, 0.0, math.Pi, math.Pi / 2.0},
		{0.0, 0.0, 2.0, 2.0, 0.0, true, false, 2.0, 2.0, 0.0, 2.0, math.Pi * 3.0 / 2.0, 0.0},
		{0.0, 0.0, 2.0, 2.0, 0.0, true, true, 2.0, 2.0, 2.0, 0.0, math.Pi, math.Pi * 5.0 / 2.0},
		{0.0, 0.0, 2.0, 1.0, math.Pi / 2.0, false, false, 1.0, 2.0, 1.0, 0.0, math.Pi / 2.0, 0.0},
		// start == end
		{0.0, 0.0, 1.0, 1.0, 0.0, false, false, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("(%g,%g) %g %g %g %v %v (%g,%g)", tt.x1, tt.y1, tt.rx, tt.ry, tt.phi, tt.large, tt.sweep, tt.x2, tt.y2), func(t *testing.T) {
			cx, cy, theta0, theta1 := EllipseToCenter(tt.x1, tt.y1, tt.rx, tt.ry, tt.phi, tt.large, tt.sweep, tt.x2, tt.y2)
			assert.InDelta(t, tt.cx, cx, 1e-2)
			assert.InDelta(t, tt.cy, cy, 1e-2)
			assert.InDelta(t, tt.theta0, theta0, 1e-2)
			assert.InDelta(t, tt.theta1, theta1, 1e-2)
		})
	}
}

func TestQuadraticToCubicBezier(t *testing.T) {
	p0, p1, p2 := geom.Vec2(0, 0), geom.Vec2(1.5, 0), geom.Vec2(3.0, 0)
	c1, c2 := QuadraticToCubicBezier(p0, p1, p2)
	assert.InDelta(t, 1.0, c1.X, 1e-9)
	assert.InDelta(t, 2.0, c2.X, 1e-9)
}

func TestParseSVGPathArc(t *testing.T) {
	item := MustParseSVGPath("M0 0A100 100 0 0 0 200 0Z")
	p := item.(*Path)
	assert.True(t, p.Count() > 2)
	assert.True(t, p.Area() < 0 || p.Area() > 0)
}
