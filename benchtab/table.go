// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchtab reads and writes tab-separated benchmark tables.
//
// A table has a header row followed by one row per measurement. The
// first column of each row is an index label (typically 1, 2, 3, ...)
// and every other column holds the value measured for one named
// series, such as a framework under test:
//
//		vanilla	naive-ui	radix-vue
//	1	12	40	33
//	2	10	38	31
package benchtab

import (
	"errors"
	"fmt"

	"github.com/aclements/go-moremath/stats"
)

// ErrShape is returned when rows or tables do not line up.
var ErrShape = errors.New("table shape mismatch")

// A Table is an ordered set of rows measured for a set of named
// series. Tables are not modified after they are built.
type Table struct {
	// Key is the header of the index column. It is often empty.
	Key string
	// Labels holds the index label of each row, in file order.
	Labels []string
	// Series holds one column per series, in header order.
	Series []Series
}

// A Series is one named column of a Table.
type Series struct {
	Name   string
	Values []float64
}

// Len returns the number of rows in t.
func (t *Table) Len() int {
	return len(t.Labels)
}

// Positions returns the 1-based position of each row.
func (t *Table) Positions() []float64 {
	xs := make([]float64, t.Len())
	for i := range xs {
		xs[i] = float64(i + 1)
	}
	return xs
}

// Names returns the series names in header order.
func (t *Table) Names() []string {
	names := make([]string, len(t.Series))
	for i, s := range t.Series {
		names[i] = s.Name
	}
	return names
}

// Lookup returns the series called name.
func (t *Table) Lookup(name string) (Series, bool) {
	for _, s := range t.Series {
		if s.Name == name {
			return s, true
		}
	}
	return Series{}, false
}

// Values returns every value in t, series by series.
func (t *Table) Values() []float64 {
	var all []float64
	for _, s := range t.Series {
		all = append(all, s.Values...)
	}
	return all
}

// Stats summarizes the values of a single series.
type Stats struct {
	Name   string
	N      int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64 // zero when N < 2
}

// Stats returns a summary of each series in header order.
func (t *Table) Stats() []Stats {
	out := make([]Stats, len(t.Series))
	for i, s := range t.Series {
		var ss stats.StreamStats
		for _, v := range s.Values {
			ss.Add(v)
		}
		st := Stats{Name: s.Name, N: int(ss.Count), Min: ss.Min, Max: ss.Max, Mean: ss.Mean()}
		if ss.Count > 1 {
			st.StdDev = ss.StdDev()
		}
		out[i] = st
	}
	return out
}

// Mean averages repeated runs of the same benchmark element by
// element. All tables must have the same series, in the same order,
// and the same number of rows. Labels and Key are taken from the
// first table.
func Mean(tables ...*Table) (*Table, error) {
	if len(tables) == 0 {
		return nil, fmt.Errorf("%w: no tables to average", ErrShape)
	}
	first := tables[0]
	for i, t := range tables[1:] {
		if err := sameShape(first, t); err != nil {
			return nil, fmt.Errorf("run %d: %w", i+2, err)
		}
	}

	out := &Table{
		Key:    first.Key,
		Labels: append([]string(nil), first.Labels...),
		Series: make([]Series, len(first.Series)),
	}
	n := float64(len(tables))
	for j, s := range first.Series {
		sum := make([]float64, len(s.Values))
		for _, t := range tables {
			for k, v := range t.Series[j].Values {
				sum[k] += v
			}
		}
		for k := range sum {
			sum[k] /= n
		}
		out.Series[j] = Series{Name: s.Name, Values: sum}
	}
	return out, nil
}

func sameShape(a, b *Table) error {
	if len(a.Series) != len(b.Series) {
		return fmt.Errorf("%w: %d series, want %d", ErrShape, len(b.Series), len(a.Series))
	}
	for i := range a.Series {
		if a.Series[i].Name != b.Series[i].Name {
			return fmt.Errorf("%w: series %d is %q, want %q", ErrShape, i+1, b.Series[i].Name, a.Series[i].Name)
		}
	}
	if a.Len() != b.Len() {
		return fmt.Errorf("%w: %d rows, want %d", ErrShape, b.Len(), a.Len())
	}
	return nil
}
