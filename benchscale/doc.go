// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchscale chooses Y axis ticks for benchmark charts and
// provides the compressing transform used when values span several
// orders of magnitude.
//
// The transform is
//
//	Transform(x) = ln(1+x) * 100
//
// Values and tick positions are both plotted in transformed
// coordinates, while tick labels keep showing the untransformed
// numbers. Since the transform is strictly increasing, the relative
// order of series and ticks is preserved.
//
// Tick selection prefers "nice" magnitudes from a fixed candidate
// pool (1, 5, 10, 20, 50, ...), keeping the ones that fall inside
// [min, max*1.1]. When fewer than five candidates survive, the range
// is split evenly into five ticks instead.
package benchscale
