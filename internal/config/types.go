// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

// Scale modes for the Y axis.
const (
	ScaleLinear = "linear"
	ScaleLog1p  = "log1p"
)

// Config describes one charting run.
type Config struct {
	Charts []Chart `yaml:"charts"`

	// Separate writes one image per chart.
	Separate bool `yaml:"separate"`
	// Combined, if set, is the path of an image stacking every chart
	// vertically.
	Combined string `yaml:"combined,omitempty"`
	// Report, if set, is the path of an HTML page linking the images.
	Report string `yaml:"report,omitempty"`

	Scale     string      `yaml:"scale"`
	Highlight []Highlight `yaml:"highlight,omitempty"`
	// DimAlpha is the opacity of series that are not highlighted.
	DimAlpha float64 `yaml:"dim_alpha"`

	DPI int `yaml:"dpi"`
	// Width and Height size a single chart, in inches.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// PanelHeight is the height of each panel of the combined image.
	PanelHeight float64 `yaml:"panel_height"`
}

// Chart pairs an input table with its title and output image.
type Chart struct {
	Input  string `yaml:"input"`
	Title  string `yaml:"title"`
	Output string `yaml:"output"`
}

// Highlight draws one series in a distinct colour and width.
type Highlight struct {
	Series string  `yaml:"series"`
	Color  string  `yaml:"color"` // #rrggbb or an SVG 1.1 colour name (colornames.Map)
	Width  float64 `yaml:"width"` // points
}
