// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchscale

import (
	"errors"
	"fmt"
	"math"

	"github.com/aclements/go-moremath/vec"
)

// ErrRange is returned for tick ranges the generator cannot handle:
// non-finite bounds, min > max, or max <= 0.
var ErrRange = errors.New("invalid tick range")

// MinTicks is the smallest number of ticks DynamicTicks returns.
const MinTicks = 5

const (
	// Ranges wider than this use the extended pool.
	wideSpan = 1000
	// Candidates may exceed max by this factor.
	headroom = 1.1
)

var (
	narrowPool = []float64{1, 5, 10, 20, 50, 100, 200, 500}
	widePool   = []float64{1, 2, 5, 10, 20, 50, 100, 200, 500, 1000, 2000, 5000, 10000}
)

// DynamicTicks returns ascending tick values for an axis covering
// [min, max].
//
// The candidate pool depends on the width of the range. Candidates v
// with min <= v <= max*1.1 are kept in pool order. If fewer than
// MinTicks candidates survive, the result is instead MinTicks evenly
// spaced values from min to max inclusive. The fallback is not
// merged or deduplicated with the pool; when min == max it consists
// of MinTicks equal values.
func DynamicTicks(min, max float64) ([]float64, error) {
	if !finite(min) || !finite(max) || max <= 0 || min > max {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrRange, min, max)
	}

	pool := narrowPool
	if max-min > wideSpan {
		pool = widePool
	}

	limit := max * headroom
	ticks := make([]float64, 0, len(pool))
	for _, v := range pool {
		if v >= min && v <= limit {
			ticks = append(ticks, v)
		}
	}
	if len(ticks) < MinTicks {
		ticks = vec.Linspace(min, max, MinTicks)
		// Linspace accumulates rounding error; the ends are exact.
		ticks[0], ticks[MinTicks-1] = min, max
		return ticks, nil
	}
	return ticks, nil
}

// Bounds returns the smallest and largest of xs, ignoring NaNs.
// It returns NaN, NaN if xs holds no numbers.
func Bounds(xs []float64) (min, max float64) {
	min, max = math.NaN(), math.NaN()
	for _, x := range xs {
		if math.IsNaN(x) {
			continue
		}
		if math.IsNaN(min) || x < min {
			min = x
		}
		if math.IsNaN(max) || x > max {
			max = x
		}
	}
	return min, max
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
