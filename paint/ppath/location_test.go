// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCrossingTrue(t *testing.T) {
	a := NewPath()
	a.MoveTo(0, 0)
	a.LineTo(100, 100)
	b := NewPath()
	b.MoveTo(0, 100)
	b.LineTo(100, 0)

	locA := &CurveLocation{Curve: a.Curves()[0], Time: 0.5}
	locB := &CurveLocation{Curve: b.Curves()[0], Time: 0.5}
	locA.Other = locB
	locB.Other = locA
	assert.True(t, locA.IsCrossing())
	assert.True(t, locB.IsCrossing())
}

func TestIsOverlapNotCrossing(t *testing.T) {
	a := NewPath()
	a.MoveTo(0, 0)
	a.LineTo(100, 0)
	locA := &CurveLocation{Curve: a.Curves()[0], Time: 0.5, Overlap: true}
	assert.False(t, locA.IsCrossing())
	assert.True(t, locA.IsOverlap())
}

func TestLinkIntersectionsChain(t *testing.T) {
	a := &CurveLocation{}
	b := &CurveLocation{}
	c := &CurveLocation{}
	linkIntersections(a, b)
	linkIntersections(b, c)
	assert.Same(t, b, a.next)
	assert.Same(t, c, b.next)
	assert.Same(t, b, c.previous)
}

func TestLinkIntersectionsNoSelfLoop(t *testing.T) {
	a := &CurveLocation{}
	linkIntersections(a, a)
	assert.Nil(t, a.next)
}

func TestLinkIntersectionsIdempotent(t *testing.T) {
	a := &CurveLocation{}
	b := &CurveLocation{}
	linkIntersections(a, b)
	linkIntersections(a, b)
	assert.Same(t, b, a.next)
	assert.Nil(t, b.next)
}
