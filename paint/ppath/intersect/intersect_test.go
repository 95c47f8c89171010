// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intersect

import (
	"testing"

	"github.com/cogentcore/pathbool/geom"
	"github.com/stretchr/testify/assert"
)

func TestCurvesLineCrossing(t *testing.T) {
	a := Values{geom.Vec2(0, 0), geom.Vec2(33, 33), geom.Vec2(66, 66), geom.Vec2(100, 100)}
	b := Values{geom.Vec2(0, 100), geom.Vec2(33, 66), geom.Vec2(66, 33), geom.Vec2(100, 0)}
	pairs := Curves(a, b, 1e-7)
	assert.Equal(t, 1, len(pairs))
	assert.InDelta(t, 0.5, pairs[0].TA, 1e-3)
	assert.InDelta(t, 0.5, pairs[0].TB, 1e-3)
	assert.InDelta(t, 50.0, pairs[0].Point.X, 1e-2)
	assert.InDelta(t, 50.0, pairs[0].Point.Y, 1e-2)
}

func TestCurvesNoIntersection(t *testing.T) {
	a := Values{geom.Vec2(0, 0), geom.Vec2(10, 0), geom.Vec2(20, 0), geom.Vec2(30, 0)}
	b := Values{geom.Vec2(0, 100), geom.Vec2(10, 100), geom.Vec2(20, 100), geom.Vec2(30, 100)}
	pairs := Curves(a, b, 1e-7)
	assert.Equal(t, 0, len(pairs))
}

func TestCurvesOverlap(t *testing.T) {
	a := Values{geom.Vec2(0, 0), geom.Vec2(10, 0), geom.Vec2(20, 0), geom.Vec2(30, 0)}
	b := Values{geom.Vec2(10, 0), geom.Vec2(16, 0), geom.Vec2(23, 0), geom.Vec2(40, 0)}
	pairs := Curves(a, b, 1e-7)
	assert.True(t, len(pairs) >= 1)
	assert.True(t, pairs[0].Overlap)
}

func TestCurvesSharedEndpoint(t *testing.T) {
	a := Values{geom.Vec2(0, 0), geom.Vec2(33, 0), geom.Vec2(66, 0), geom.Vec2(100, 0)}
	b := Values{geom.Vec2(100, 0), geom.Vec2(100, 33), geom.Vec2(100, 66), geom.Vec2(100, 100)}
	pairs := Curves(a, b, 1e-7)
	assert.Equal(t, 1, len(pairs))
	assert.InDelta(t, 1.0, pairs[0].TA, 1e-3)
	assert.InDelta(t, 0.0, pairs[0].TB, 1e-3)
}
