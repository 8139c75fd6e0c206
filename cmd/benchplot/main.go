// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchplot draws line charts from tab-separated benchmark results.
//
// Usage:
//
//	benchplot [render] [-c config.yaml] [--log-level level]
//	benchplot summary [-c config.yaml]
//	benchplot merge [-o out.tsv] run1.tsv run2.tsv ...
//
// Each input table has a header row naming the series (usually the
// frameworks being compared) and one row per measurement; the first
// column is the measurement index:
//
//		vanilla	oku-ui	radix-vue
//	1	12	40	33
//	2	10	38	31
//
// The render command, which is also the default, draws one PNG per
// input with a line per series, and optionally a single PNG stacking
// all inputs and an HTML page linking everything. Without -c it
// reads temp/setup_function_completion.tsv, temp/global_completion.tsv
// and temp/path_completion.tsv, writes a .png next to each, and
// stacks them into temp/combined_completion.png, plotting values on
// the ln(1+x)*100 scale with oku-ui and radix-vue highlighted.
//
// A configuration file describes the same things explicitly:
//
//	charts:
//	  - input: temp/path_completion.tsv
//	    title: Path Completion
//	    output: temp/path_completion.png
//	separate: true        # one image per chart
//	combined: temp/all.png
//	report: temp/index.html
//	scale: log1p          # or linear
//	highlight:
//	  - series: oku-ui
//	    color: darkgreen
//	    width: 2.5
//	dim_alpha: 0.3
//	dpi: 300
//	width: 14             # inches
//	height: 8
//	panel_height: 6
//
// ${VAR} references in the file are replaced from the environment,
// and a .env file in the current directory is loaded first.
//
// The summary command prints count, minimum, mean, spread and maximum
// of every series of every configured input.
//
// The merge command averages repeated runs of the same benchmark,
// element by element, into one table.
package main

import (
	"github.com/vuelsbench/benchplot/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logging.GetLogger().WithError(err).Fatal("benchplot failed")
	}
}
