// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchreport describes rendered benchmark tables, as aligned
// text for terminals and as an HTML index of the chart images.
package benchreport

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/vuelsbench/benchplot/benchtab"
	"github.com/vuelsbench/benchplot/internal/texttab"
)

// A Row is one series summary, formatted for display.
type Row struct {
	Series string
	N      string
	Min    string
	Mean   string
	Spread string // standard deviation relative to the mean
	Max    string
}

// Rows formats stats for display.
func Rows(stats []benchtab.Stats) []Row {
	rows := make([]Row, len(stats))
	for i, st := range stats {
		rows[i] = Row{
			Series: st.Name,
			N:      strconv.Itoa(st.N),
			Min:    number(st.Min),
			Mean:   number(st.Mean),
			Spread: spread(st),
			Max:    number(st.Max),
		}
	}
	return rows
}

func number(v float64) string {
	return humanize.Commaf(math.Round(v*100) / 100)
}

func spread(st benchtab.Stats) string {
	if st.Mean == 0 || st.N < 2 {
		return ""
	}
	return fmt.Sprintf("±%.0f%%", 100*st.StdDev/math.Abs(st.Mean))
}

// WriteSummary writes a titled text table of stats to w.
func WriteSummary(w io.Writer, title string, stats []benchtab.Stats) error {
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}
	var t texttab.Table
	t.Row().Cell("series").Cells([]string{"n", "min", "mean", "", "max"}, texttab.Right)
	for _, r := range Rows(stats) {
		t.Row().Cell(r.Series).Cells([]string{r.N, r.Min, r.Mean, r.Spread, r.Max}, texttab.Right)
	}
	return t.Format(w)
}
