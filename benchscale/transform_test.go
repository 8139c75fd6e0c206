// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchscale

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTransform(t *testing.T) {
	if got := Transform(0); got != 0 {
		t.Errorf("Transform(0) = %v, want 0", got)
	}
	if got, want := Transform(9), math.Log(10)*100; math.Abs(got-want) > 1e-9 {
		t.Errorf("Transform(9) = %v, want %v", got, want)
	}
	if got := Transform(9); math.Abs(got-230.26) > 0.005 {
		t.Errorf("Transform(9) = %v, want ≈230.26", got)
	}
}

func TestTransformInverse(t *testing.T) {
	for _, x := range []float64{0, 1e-9, 0.5, 1, 9, 42.5, 1000, 123456, 1e9} {
		got := Untransform(Transform(x))
		if diff := math.Abs(got - x); diff > 1e-9*math.Max(1, x) {
			t.Errorf("Untransform(Transform(%v)) = %v", x, got)
		}
	}
}

func TestTransformMonotonic(t *testing.T) {
	xs := []float64{0, 1e-6, 0.1, 0.5, 1, 2, 10, 99, 100, 1e3, 1e6, 1e12}
	for i := 1; i < len(xs); i++ {
		a, b := Transform(xs[i-1]), Transform(xs[i])
		if !(a < b) {
			t.Errorf("Transform(%v) = %v >= Transform(%v) = %v", xs[i-1], a, xs[i], b)
		}
	}
}

func TestTransformAll(t *testing.T) {
	xs := []float64{0, 9, 99}
	got := TransformAll(xs)
	want := []float64{0, math.Log(10) * 100, math.Log(100) * 100}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("TransformAll mismatch (-want +got):\n%s", diff)
	}
	if xs[1] != 9 {
		t.Errorf("TransformAll modified its input: %v", xs)
	}
}
