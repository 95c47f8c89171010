// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDivideLocationsSingleCurve(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(100, 0)
	c := p.Curves()[0]

	loc := &CurveLocation{Curve: c, Time: 0.5}
	divideLocations([]*CurveLocation{loc})

	assert.Equal(t, 3, p.Count())
	assert.NotNil(t, loc.Segment)
	assert.InDelta(t, 50.0, loc.Segment.Point.X, 1e-9)
	assert.Equal(t, 0.0, loc.Time)
}

func TestDivideLocationsTwoOnSameCurveDescending(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(100, 0)
	c := p.Curves()[0]

	locHi := &CurveLocation{Curve: c, Time: 0.75}
	locLo := &CurveLocation{Curve: c, Time: 0.25}
	divideLocations([]*CurveLocation{locHi, locLo})

	assert.Equal(t, 4, p.Count())
	assert.InDelta(t, 25.0, locLo.Segment.Point.X, 1e-6)
	assert.InDelta(t, 75.0, locHi.Segment.Point.X, 1e-6)
}

func TestDivideLocationsLinksChain(t *testing.T) {
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
	divideLocations([]*CurveLocation{locA, locB})

	assert.NotNil(t, locA.Segment)
	assert.NotNil(t, locB.Segment)
	assert.Same(t, locA.Segment.intersection, locA)
}
