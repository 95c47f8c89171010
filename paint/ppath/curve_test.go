// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"testing"

	"github.com/cogentcore/pathbool/geom"
	"github.com/stretchr/testify/assert"
)

func TestCurvePointAtTime(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(100, 0)
	c := p.Curves()[0]
	assert.Equal(t, geom.Vec2(0, 0), c.PointAtTime(0))
	assert.Equal(t, geom.Vec2(100, 0), c.PointAtTime(1))
	assert.Equal(t, geom.Vec2(50, 0), c.PointAtTime(0.5))
}

func TestCurveLengthStraight(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(30, 40)
	c := p.Curves()[0]
	assert.InDelta(t, 50.0, c.Length(), 1e-9)
}

func TestCurveTimeAt(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(100, 0)
	c := p.Curves()[0]
	assert.InDelta(t, 0.5, c.TimeAt(50), 1e-6)
}

func TestCurveDivideAtTime(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(100, 0)
	c := p.Curves()[0]
	mid := c.DivideAtTime(0.5, true)
	assert.Equal(t, 3, p.Count())
	assert.InDelta(t, 50.0, mid.Point.X, 1e-9)
}

func TestSolveQuadratic(t *testing.T) {
	var roots [2]float64
	n := SolveQuadratic(1, -3, 2, &roots, -100, 100) // (t-1)(t-2)
	assert.Equal(t, 2, n)
	assert.InDelta(t, 1.0, roots[0], 1e-9)
	assert.InDelta(t, 2.0, roots[1], 1e-9)
}

func TestSolveQuadraticLinear(t *testing.T) {
	var roots [2]float64
	n := SolveQuadratic(0, 2, -4, &roots, -100, 100) // 2t-4=0
	assert.Equal(t, 1, n)
	assert.InDelta(t, 2.0, roots[0], 1e-9)
}

func TestSolveCubic(t *testing.T) {
	values := [4]geom.Vector2{geom.Vec2(0, 0), geom.Vec2(0, 33.3333), geom.Vec2(0, 66.6667), geom.Vec2(0, 100)}
	var roots [3]float64
	n := SolveCubic(values, geom.Y, 50, &roots, -1e-9, 1+1e-9)
	assert.Equal(t, 1, n)
	assert.InDelta(t, 0.5, roots[0], 1e-3)
}

func TestCurveArea(t *testing.T) {
	p := square(0, 0, 10, 10)
	area := 0.0
	for _, c := range p.Curves() {
		area += c.area()
	}
	assert.InDelta(t, 100.0, area, 1e-9)
}
