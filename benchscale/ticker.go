// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchscale

import (
	"strconv"

	"gonum.org/v1/plot"
)

// Ticker is a plot.Ticker with a fixed set of tick values.
//
// When Transformed is set, each tick is placed at Transform(v) while
// its label still reads v, matching data that was passed through
// Transform before plotting.
type Ticker struct {
	Values      []float64
	Transformed bool
}

// NewTicker returns a Ticker for an axis showing data in [min, max].
func NewTicker(min, max float64, transformed bool) (Ticker, error) {
	ticks, err := DynamicTicks(min, max)
	if err != nil {
		return Ticker{}, err
	}
	return Ticker{Values: ticks, Transformed: transformed}, nil
}

// Ticks implements plot.Ticker. The axis range is ignored; the
// caller is expected to widen the axis to Span.
func (t Ticker) Ticks(min, max float64) []plot.Tick {
	ticks := make([]plot.Tick, len(t.Values))
	for i, v := range t.Values {
		ticks[i] = plot.Tick{Value: t.position(v), Label: Label(v)}
	}
	return ticks
}

// Span returns the plotted positions of the first and last tick.
func (t Ticker) Span() (lo, hi float64) {
	if len(t.Values) == 0 {
		return 0, 0
	}
	return t.position(t.Values[0]), t.position(t.Values[len(t.Values)-1])
}

func (t Ticker) position(v float64) float64 {
	if t.Transformed {
		return Transform(v)
	}
	return v
}

// labelDigits bounds label precision so evenly split ticks do not
// show rounding noise.
const labelDigits = 6

// Label formats a tick value rounded to labelDigits significant
// digits, in plain decimal notation.
func Label(v float64) string {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', labelDigits, 64), 64)
	if err != nil {
		return strconv.FormatFloat(v, 'g', labelDigits, 64)
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
