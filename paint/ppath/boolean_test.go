// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func totalArea(item PathItem) float64 {
	a := 0.0
	for _, p := range item.paths() {
		v := p.Area()
		if v < 0 {
			v = -v
		}
		a += v
	}
	return a
}

func TestUniteDisjoint(t *testing.T) {
	a := square(0, 0, 100, 100)
	b := square(200, 0, 300, 100)
	result := Unite(a, b)
	cp, ok := result.(*CompoundPath)
	assert.True(t, ok)
	assert.Equal(t, 2, len(cp.Children))
	assert.InDelta(t, 20000.0, totalArea(cp), 1e-3)
	for _, c := range cp.Children {
		assert.True(t, c.IsClockwise())
	}
}

func TestUniteOverlap(t *testing.T) {
	a := square(0, 0, 100, 100)
	b := square(50, 50, 150, 150)
	result := Unite(a, b)
	p, ok := result.(*Path)
	assert.True(t, ok)
	assert.Equal(t, 8, p.Count())
	assert.InDelta(t, 17500.0, totalArea(p), 1e-3)
}

func TestIntersectOverlap(t *testing.T) {
	a := square(0, 0, 100, 100)
	b := square(50, 50, 150, 150)
	result := Intersect(a, b)
	p, ok := result.(*Path)
	assert.True(t, ok)
	assert.InDelta(t, 2500.0, totalArea(p), 1e-3)
	assert.True(t, p.IsClockwise())
}

func TestSubtractOverlap(t *testing.T) {
	a := square(0, 0, 100, 100)
	b := square(50, 50, 150, 150)
	result := Subtract(a, b)
	p, ok := result.(*Path)
	assert.True(t, ok)
	assert.Equal(t, 6, p.Count())
	assert.InDelta(t, 7500.0, totalArea(p), 1e-3)
}

func TestExcludeOverlap(t *testing.T) {
	a := square(0, 0, 100, 100)
	b := square(50, 50, 150, 150)
	result := ExclusiveOr(a, b)
	cp, ok := result.(*CompoundPath)
	assert.True(t, ok)
	assert.Equal(t, 2, len(cp.Children))
	assert.InDelta(t, 15000.0, totalArea(cp), 1e-3)
}

func figureEight() *Path {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(100, 100)
	p.LineTo(100, 0)
	p.LineTo(0, 100)
	p.LineTo(0, 0)
	p.Close()
	return p
}

func TestResolveCrossingsFigureEight(t *testing.T) {
	result := ResolveCrossings(figureEight())
	cp, ok := result.(*CompoundPath)
	assert.True(t, ok)
	assert.Equal(t, 2, len(cp.Children))
	for _, c := range cp.Children {
		assert.InDelta(t, 2500.0, abs(c.Area()), 1.0)
	}
	cw0 := cp.Children[0].IsClockwise()
	cw1 := cp.Children[1].IsClockwise()
	assert.NotEqual(t, cw0, cw1)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func TestResolveCrossingsIdempotent(t *testing.T) {
	once := ResolveCrossings(figureEight())
	twice := ResolveCrossings(once)
	assert.InDelta(t, totalArea(once), totalArea(twice), 1e-6)
}

func TestDivide(t *testing.T) {
	a := square(0, 0, 100, 100)
	b := square(50, 50, 150, 150)
	result := Divide(a, b)
	assert.InDelta(t, totalArea(Subtract(a, b))+totalArea(Intersect(a, b)), totalArea(result), 1e-3)
}

func TestUniteCommutative(t *testing.T) {
	a := square(0, 0, 100, 100)
	b := square(50, 50, 150, 150)
	ab := Unite(a, b)
	ba := Unite(b, a)
	assert.InDelta(t, totalArea(ab), totalArea(ba), 1e-6)
}

func TestIntersectSelf(t *testing.T) {
	a := square(0, 0, 100, 100)
	b := square(0, 0, 100, 100)
	result := Intersect(a, b)
	assert.InDelta(t, 10000.0, totalArea(result), 1e-3)
}

func TestSubtractSelfIsEmpty(t *testing.T) {
	a := square(0, 0, 100, 100)
	b := square(0, 0, 100, 100)
	result := Subtract(a, b)
	assert.InDelta(t, 0.0, totalArea(result), 1e-3)
}

func TestUniteAreaConservation(t *testing.T) {
	a := square(0, 0, 100, 100)
	b := square(50, 50, 150, 150)
	u := totalArea(Unite(a, b))
	i := totalArea(Intersect(a, b))
	tol := 100 * GeometricEpsilon * (totalArea(a) + totalArea(b))
	assert.InDelta(t, totalArea(a)+totalArea(b), u+i, tol+1e-2)
}

func TestOpenPathAgainstClosedOperand(t *testing.T) {
	open := NewPath()
	open.MoveTo(-50, 50)
	open.LineTo(150, 50)
	closed := square(0, 0, 100, 100)
	result := Intersect(open, closed)
	assert.True(t, totalArea(result) >= 0)
}
