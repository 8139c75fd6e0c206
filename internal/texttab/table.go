// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out plain-text tables with aligned columns.
package texttab

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table accumulates cells row by row and formats them with every
// column as wide as its widest cell.
//
// Methods return the Table so calls can be chained.
type Table struct {
	rows [][]cell
}

type cell struct {
	value string
	right bool
}

// CellOption adjusts a single cell.
type CellOption func(c *cell)

// Right aligns a cell to the right edge of its column.
var Right CellOption = func(c *cell) { c.right = true }

// Row starts a new row.
func (t *Table) Row() *Table {
	t.rows = append(t.rows, nil)
	return t
}

// Cell appends a cell to the current row.
func (t *Table) Cell(value string, opts ...CellOption) *Table {
	if len(t.rows) == 0 {
		t.Row()
	}
	c := cell{value: value}
	for _, o := range opts {
		o(&c)
	}
	last := len(t.rows) - 1
	t.rows[last] = append(t.rows[last], c)
	return t
}

// Cells appends one cell per value, applying opts to each.
func (t *Table) Cells(values []string, opts ...CellOption) *Table {
	for _, v := range values {
		t.Cell(v, opts...)
	}
	return t
}

// Format writes t to w. Columns are separated by two spaces and
// trailing blanks are trimmed.
func (t *Table) Format(w io.Writer) error {
	var widths []int
	for _, row := range t.rows {
		for i, c := range row {
			if i == len(widths) {
				widths = append(widths, 0)
			}
			if n := utf8.RuneCountInString(c.value); n > widths[i] {
				widths[i] = n
			}
		}
	}

	var buf strings.Builder
	for _, row := range t.rows {
		buf.Reset()
		for i, c := range row {
			if i > 0 {
				buf.WriteString("  ")
			}
			pad := widths[i] - utf8.RuneCountInString(c.value)
			if c.right {
				fmt.Fprintf(&buf, "%*s%s", pad, "", c.value)
			} else {
				fmt.Fprintf(&buf, "%s%*s", c.value, pad, "")
			}
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(buf.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}
