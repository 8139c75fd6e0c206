// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"errors"
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/vuelsbench/benchplot/benchscale"
	"github.com/vuelsbench/benchplot/benchtab"
)

func load(t *testing.T, name string) *benchtab.Table {
	t.Helper()
	tab, err := benchtab.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatal(err)
	}
	return tab
}

var (
	darkGreen = color.NRGBA{0x00, 0x64, 0x00, 0xff}
	red       = color.NRGBA{0xff, 0x00, 0x00, 0xff}
)

func highlighted() Options {
	o := DefaultOptions()
	o.Highlight = map[string]Highlight{
		"oku-ui":    {Color: darkGreen, Width: vg.Points(2.5)},
		"radix-vue": {Color: red, Width: vg.Points(2.5)},
	}
	return o
}

func TestNewPlotLinear(t *testing.T) {
	p, err := NewPlot(load(t, "small.tsv"), "Path Completion", highlighted())
	if err != nil {
		t.Fatal(err)
	}
	if p.Title.Text != "Path Completion" || p.X.Label.Text != "Order" || p.Y.Label.Text != "Value" {
		t.Errorf("labels = %q, %q, %q", p.Title.Text, p.X.Label.Text, p.Y.Label.Text)
	}
	ticks, ok := p.X.Tick.Marker.(plot.ConstantTicks)
	if !ok {
		t.Fatalf("X ticker is %T, want plot.ConstantTicks", p.X.Tick.Marker)
	}
	if len(ticks) != 3 || ticks[0].Label != "1" || ticks[2].Value != 3 {
		t.Errorf("X ticks = %v", ticks)
	}
	if _, ok := p.Y.Tick.Marker.(benchscale.Ticker); ok {
		t.Error("linear chart uses the log1p ticker")
	}
	if p.Y.Min != 10 || p.Y.Max != 40 {
		t.Errorf("Y range = [%v, %v], want [10, 40]", p.Y.Min, p.Y.Max)
	}
}

func TestNewPlotScaled(t *testing.T) {
	o := highlighted()
	o.Scaled = true
	p, err := NewPlot(load(t, "wide.tsv"), "Global Completion", o)
	if err != nil {
		t.Fatal(err)
	}
	ticker, ok := p.Y.Tick.Marker.(benchscale.Ticker)
	if !ok {
		t.Fatalf("Y ticker is %T, want benchscale.Ticker", p.Y.Tick.Marker)
	}
	// Values span [2, 4200].
	want := []float64{2, 5, 10, 20, 50, 100, 200, 500, 1000, 2000}
	if len(ticker.Values) != len(want) {
		t.Fatalf("tick values = %v, want %v", ticker.Values, want)
	}
	for i := range want {
		if ticker.Values[i] != want[i] {
			t.Errorf("tick values = %v, want %v", ticker.Values, want)
			break
		}
	}
	if !ticker.Transformed {
		t.Error("ticker is not transformed")
	}
	if lo, hi := benchscale.Transform(2), benchscale.Transform(4200); p.Y.Min > lo || p.Y.Max < hi {
		t.Errorf("Y range = [%v, %v], want it to cover [%v, %v]", p.Y.Min, p.Y.Max, lo, hi)
	}
}

func TestNewPlotScaledExtendsToTicks(t *testing.T) {
	tab := &benchtab.Table{
		Labels: []string{"1", "2"},
		Series: []benchtab.Series{{Name: "a", Values: []float64{1, 48}}},
	}
	o := DefaultOptions()
	o.Scaled = true
	p, err := NewPlot(tab, "t", o)
	if err != nil {
		t.Fatal(err)
	}
	// Ticks are 1, 5, 10, 20, 50; 50 lies above the data.
	if want := benchscale.Transform(50); p.Y.Max != want {
		t.Errorf("Y max = %v, want %v", p.Y.Max, want)
	}
	if want := benchscale.Transform(1); p.Y.Min != want {
		t.Errorf("Y min = %v, want %v", p.Y.Min, want)
	}
}

func TestNewPlotErrors(t *testing.T) {
	scaled := DefaultOptions()
	scaled.Scaled = true
	for _, test := range []struct {
		name string
		tab  *benchtab.Table
		o    Options
		want string
	}{
		{"empty", &benchtab.Table{Series: []benchtab.Series{{Name: "a"}}}, DefaultOptions(), "no rows"},
		{"negative", &benchtab.Table{
			Labels: []string{"1"},
			Series: []benchtab.Series{{Name: "a", Values: []float64{-3}}},
		}, scaled, `series "a" has negative value -3`},
		{"zeros", zeros(), scaled, "invalid tick range"},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewPlot(test.tab, "chart", test.o)
			if err == nil || !strings.Contains(err.Error(), test.want) {
				t.Errorf("NewPlot error = %v, want it to mention %q", err, test.want)
			}
		})
	}
	_, err := NewPlot(&benchtab.Table{
		Labels: []string{"1"},
		Series: []benchtab.Series{{Name: "a", Values: []float64{0}}},
	}, "chart", scaled)
	if !errors.Is(err, benchscale.ErrRange) {
		t.Errorf("all-zero scaled chart error = %v, want ErrRange", err)
	}
}

func TestSeriesStyle(t *testing.T) {
	o := highlighted()

	clr, w := o.seriesStyle(1, "oku-ui", true)
	if clr != darkGreen || w != vg.Points(2.5) {
		t.Errorf("oku-ui style = %v, %v", clr, w)
	}
	clr, w = o.seriesStyle(2, "radix-vue", true)
	if clr != red || w != vg.Points(2.5) {
		t.Errorf("radix-vue style = %v, %v", clr, w)
	}

	clr, w = o.seriesStyle(0, "vanilla", true)
	n := color.NRGBAModel.Convert(clr).(color.NRGBA)
	if n.A != 77 {
		t.Errorf("dimmed alpha = %d, want 77", n.A)
	}
	base := color.NRGBAModel.Convert(plotutil.Color(0)).(color.NRGBA)
	if n.R != base.R || n.G != base.G || n.B != base.B {
		t.Errorf("dimmed colour %v does not match palette colour %v", n, base)
	}
	if w != vg.Points(1.5) {
		t.Errorf("dimmed width = %v, want 1.5pt", w)
	}

	clr, _ = o.seriesStyle(0, "vanilla", false)
	if clr != plotutil.Color(0) {
		t.Errorf("undimmed colour = %v, want %v", clr, plotutil.Color(0))
	}
}

func TestDims(t *testing.T) {
	o := highlighted()
	if !o.dims(load(t, "small.tsv")) {
		t.Error("table with oku-ui is not dimmed")
	}
	other := &benchtab.Table{Series: []benchtab.Series{{Name: "vuetify"}}}
	if o.dims(other) {
		t.Error("table without highlighted series is dimmed")
	}
}

func zeros() *benchtab.Table {
	return &benchtab.Table{
		Labels: []string{"1", "2"},
		Series: []benchtab.Series{{Name: "a", Values: []float64{0, 0}}},
	}
}
