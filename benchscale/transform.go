// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchscale

import (
	"math"

	"github.com/aclements/go-moremath/vec"
)

// factor stretches ln(1+x) into a range comparable to the raw data.
const factor = 100

// Transform maps x >= 0 to ln(1+x)*100.
func Transform(x float64) float64 {
	return math.Log1p(x) * factor
}

// Untransform is the inverse of Transform.
func Untransform(y float64) float64 {
	return math.Expm1(y / factor)
}

// TransformAll returns a new slice holding Transform of each x.
func TransformAll(xs []float64) []float64 {
	return vec.Map(Transform, xs)
}
