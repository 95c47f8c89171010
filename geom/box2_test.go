// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox2(t *testing.T) {
	b := B2(0, 0, 10, 10)
	assert.Equal(t, 100.0, b.Area())
	assert.Equal(t, Vec2(5, 5), b.Center())
	assert.True(t, b.ContainsPoint(Vec2(5, 5)))
	assert.True(t, b.ContainsPoint(Vec2(0, 0)))
	assert.False(t, b.ContainsPoint(Vec2(11, 5)))
}

func TestBox2Canon(t *testing.T) {
	b := B2(10, 10, 0, 0)
	assert.Equal(t, Vec2(0, 0), b.Min)
	assert.Equal(t, Vec2(10, 10), b.Max)
}

func TestBox2Union(t *testing.T) {
	a := B2(0, 0, 10, 10)
	b := B2(5, 5, 20, 8)
	u := a.Union(b)
	assert.Equal(t, Vec2(0, 0), u.Min)
	assert.Equal(t, Vec2(20, 10), u.Max)
}

func TestBox2Overlaps(t *testing.T) {
	a := B2(0, 0, 10, 10)
	assert.True(t, a.Overlaps(B2(5, 5, 15, 15)))
	assert.True(t, a.Overlaps(B2(10, 10, 20, 20)))
	assert.False(t, a.Overlaps(B2(11, 11, 20, 20)))
}

func TestBox2Empty(t *testing.T) {
	b := BoxEmpty()
	b = b.ExpandByPoint(Vec2(3, 4))
	b = b.ExpandByPoint(Vec2(-1, 9))
	assert.Equal(t, Vec2(-1, 4), b.Min)
	assert.Equal(t, Vec2(3, 9), b.Max)
}
