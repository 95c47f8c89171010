// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides testing functions that fail only if
// results are not within a given tolerance of each other, which is
// critical for the floating-point geometry in package ppath: exact
// equality is the wrong bar when curve subdivision, winding sampling,
// and ray casting all involve accumulated rounding error.
package tolassert

import "math"

// DefaultTolerance is the tolerance used by Equal.
const DefaultTolerance = 1.0e-3

// TestingT is the subset of *testing.T used by this package, so tests
// can be run through it without creating an import cycle on testing.
type TestingT interface {
	Errorf(format string, args ...any)
}

// Equal reports whether have is within [DefaultTolerance] of want,
// logging a t.Errorf and returning false otherwise.
func Equal(t TestingT, want, have float64) bool {
	return EqualTol(t, want, have, DefaultTolerance)
}

// EqualTol reports whether have is within tol of want, logging a
// t.Errorf and returning false otherwise.
func EqualTol(t TestingT, want, have, tol float64) bool {
	if math.Abs(want-have) <= tol {
		return true
	}
	t.Errorf("tolassert.Equal: want %g, have %g, diff %g exceeds tolerance %g", want, have, math.Abs(want-have), tol)
	return false
}

// EqualTolSlice reports whether each element of have is within tol of
// the corresponding element of want, failing with a single t.Errorf
// identifying the first mismatch if not.
func EqualTolSlice(t TestingT, want, have []float64, tol float64) bool {
	if len(want) != len(have) {
		t.Errorf("tolassert.EqualTolSlice: length mismatch: want %d, have %d", len(want), len(have))
		return false
	}
	for i := range want {
		if math.Abs(want[i]-have[i]) > tol {
			t.Errorf("tolassert.EqualTolSlice: at index %d: want %g, have %g, diff %g exceeds tolerance %g", i, want[i], have[i], math.Abs(want[i]-have[i]), tol)
			return false
		}
	}
	return true
}
