// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"testing"

	"github.com/cogentcore/pathbool/geom"
	"github.com/stretchr/testify/assert"
)

func TestMonotoneSplitStraight(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(100, 100)
	c := p.Curves()[0]
	pieces := monotoneSplit(c, geom.Y)
	assert.Equal(t, 1, len(pieces))
}

func TestMonotoneSplitSCurve(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.CubeTo(0, 100, 100, -100, 100, 0)
	c := p.Curves()[0]
	pieces := monotoneSplit(c, geom.Y)
	assert.True(t, len(pieces) >= 2)
	for _, piece := range pieces {
		sign := windingSign(piece, geom.Y)
		assert.True(t, sign == 1 || sign == -1 || sign == 0)
	}
}

func TestMonotoneCurvesCircular(t *testing.T) {
	p := square(0, 0, 100, 100)
	mcs := monotoneCurves(p, geom.Y)
	assert.True(t, len(mcs) > 0)
	assert.Same(t, mcs[0], mcs[len(mcs)-1].next)
	assert.Same(t, mcs[len(mcs)-1], mcs[0].previous)
}

func TestGetWindingInsideOutside(t *testing.T) {
	p := square(0, 0, 100, 100)
	curves := globalMonotoneCurves([]*Path{p})
	w, _ := getWinding(geom.Vec2(50, 50), curves, false)
	assert.Equal(t, 1, w)
	w, _ = getWinding(geom.Vec2(150, 50), curves, false)
	assert.Equal(t, 0, w)
}
