// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInteriorPointConvex(t *testing.T) {
	p := square(0, 0, 100, 100)
	pt := interiorPoint(p)
	assert.True(t, p.Contains(pt))
}

func TestReorientNestedIslands(t *testing.T) {
	outer := square(0, 0, 300, 300)
	hole := square(50, 50, 250, 250)
	hole.Reverse()
	island := square(100, 100, 200, 200)

	result := &CompoundPath{Children: []*Path{island, hole, outer}}
	reorient(result)

	assert.Equal(t, 3, len(result.Children))
	assert.True(t, result.Children[0].IsClockwise())
	assert.False(t, result.Children[1].IsClockwise())
	assert.True(t, result.Children[2].IsClockwise())
}

func TestReorientTwoDisjoint(t *testing.T) {
	a := square(0, 0, 100, 100)
	b := square(200, 0, 260, 60)
	result := &CompoundPath{Children: []*Path{b, a}}
	reorient(result)
	assert.Equal(t, 2, len(result.Children))
	for _, c := range result.Children {
		assert.True(t, c.IsClockwise())
	}
}
