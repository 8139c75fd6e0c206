// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchchart draws benchmark tables as line charts.
//
// Each series of a table becomes one line with circle markers,
// plotted against the 1-based row position. Selected series can be
// highlighted, in which case all other series are drawn translucent.
// Charts are written as PNG images through a Surface, either one
// chart per image or several charts stacked vertically.
package benchchart

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vuelsbench/benchplot/benchscale"
	"github.com/vuelsbench/benchplot/benchtab"
)

// Highlight is the line style of an emphasized series.
type Highlight struct {
	Color color.Color
	Width vg.Length
}

// Options controls how tables are drawn and rasterized.
type Options struct {
	// Scaled plots values through benchscale.Transform and labels
	// the Y axis with benchscale.DynamicTicks.
	Scaled bool

	// Highlight maps series names to their emphasized style.
	Highlight map[string]Highlight
	// DimAlpha is the opacity, in (0, 1], of series without a
	// highlight when at least one highlighted series is present.
	DimAlpha float64

	DPI           int
	Width, Height vg.Length
	// PanelHeight is the height of each chart in a stacked image.
	PanelHeight vg.Length
}

// DefaultOptions returns 14x8 inch, 300 DPI charts on a linear
// scale, with no highlights.
func DefaultOptions() Options {
	return Options{
		DimAlpha:    0.3,
		DPI:         300,
		Width:       14 * vg.Inch,
		Height:      8 * vg.Inch,
		PanelHeight: 6 * vg.Inch,
	}
}

const (
	markerRadius = vg.Length(3)
	dimWidth     = vg.Length(1.5) // series without a highlight
	titleSize    = 16
)

// NewPlot builds the chart of t. The returned plot is independent of
// any other plot; nothing is drawn until it is handed to a Surface.
func NewPlot(t *benchtab.Table, title string, o Options) (*plot.Plot, error) {
	if t.Len() == 0 {
		return nil, fmt.Errorf("%s: table has no rows", title)
	}

	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = titleSize
	p.X.Label.Text = "Order"
	p.Y.Label.Text = "Value"
	p.Legend.Top = true

	grid := plotter.NewGrid()
	p.Add(grid)

	xs := t.Positions()
	dim := o.dims(t)
	for i, s := range t.Series {
		ys := s.Values
		if o.Scaled {
			for _, v := range ys {
				if v < 0 {
					return nil, fmt.Errorf("%s: series %q has negative value %v, cannot use log scale", title, s.Name, v)
				}
			}
			ys = benchscale.TransformAll(ys)
		}
		xys := make(plotter.XYs, len(ys))
		for j := range ys {
			xys[j].X = xs[j]
			xys[j].Y = ys[j]
		}
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("%s: series %q: %w", title, s.Name, err)
		}
		clr, width := o.seriesStyle(i, s.Name, dim)
		line.LineStyle.Color = clr
		line.LineStyle.Width = width
		points.GlyphStyle.Color = clr
		points.GlyphStyle.Shape = draw.CircleGlyph{}
		points.GlyphStyle.Radius = markerRadius

		p.Add(line, points)
		p.Legend.Add(s.Name, line, points)
	}

	p.X.Tick.Marker = positionTicks(t.Len())

	if o.Scaled {
		min, max := benchscale.Bounds(t.Values())
		ticker, err := benchscale.NewTicker(min, max, true)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", title, err)
		}
		p.Y.Tick.Marker = ticker
		// Keep every tick on the axis, as the data may stop short of
		// the nice values around it.
		lo, hi := ticker.Span()
		p.Y.Min = math.Min(p.Y.Min, lo)
		p.Y.Max = math.Max(p.Y.Max, hi)
	}
	return p, nil
}

// dims reports whether unhighlighted series of t are drawn translucent.
func (o Options) dims(t *benchtab.Table) bool {
	for _, name := range t.Names() {
		if _, ok := o.Highlight[name]; ok {
			return true
		}
	}
	return false
}

// seriesStyle returns the line colour and width of the i'th series.
func (o Options) seriesStyle(i int, name string, dim bool) (color.Color, vg.Length) {
	if h, ok := o.Highlight[name]; ok {
		return h.Color, h.Width
	}
	clr := plotutil.Color(i)
	if dim {
		clr = withAlpha(clr, o.DimAlpha)
	}
	return clr, dimWidth
}

func withAlpha(c color.Color, alpha float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math.Round(alpha * float64(n.A)))
	return n
}

// positionTicks labels every row position from 1 to n.
func positionTicks(n int) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, n)
	for i := range ticks {
		ticks[i] = plot.Tick{Value: float64(i + 1), Label: strconv.Itoa(i + 1)}
	}
	return ticks
}
