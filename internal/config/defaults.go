// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

// Default returns the configuration used when no file is given: the
// three completion benchmarks of the Vue language server suite.
func Default() *Config {
	return &Config{
		Charts: []Chart{
			{Input: "temp/setup_function_completion.tsv", Title: "Setup Function Completion", Output: "temp/setup_function_completion.png"},
			{Input: "temp/global_completion.tsv", Title: "Global Completion", Output: "temp/global_completion.png"},
			{Input: "temp/path_completion.tsv", Title: "Path Completion", Output: "temp/path_completion.png"},
		},
		Separate: true,
		Combined: "temp/combined_completion.png",
		Scale:    ScaleLog1p,
		Highlight: []Highlight{
			{Series: "oku-ui", Color: "darkgreen", Width: 2.5},
			{Series: "radix-vue", Color: "red", Width: 2.5},
		},
		DimAlpha:    0.3,
		DPI:         300,
		Width:       14,
		Height:      8,
		PanelHeight: 6,
	}
}

// fill sets zero-valued layout fields to their defaults.
func (c *Config) fill() {
	d := Default()
	if c.Scale == "" {
		c.Scale = d.Scale
	}
	if c.DimAlpha == 0 {
		c.DimAlpha = d.DimAlpha
	}
	if c.DPI == 0 {
		c.DPI = d.DPI
	}
	if c.Width == 0 {
		c.Width = d.Width
	}
	if c.Height == 0 {
		c.Height = d.Height
	}
	if c.PanelHeight == 0 {
		c.PanelHeight = d.PanelHeight
	}
	for i := range c.Highlight {
		if c.Highlight[i].Width == 0 {
			c.Highlight[i].Width = 2.5
		}
	}
}
