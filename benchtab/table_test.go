// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func mustRead(t *testing.T, name string) *Table {
	t.Helper()
	tab, err := ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatal(err)
	}
	return tab
}

func TestPositions(t *testing.T) {
	tab := mustRead(t, "run1.tsv")
	if diff := cmp.Diff([]float64{1, 2, 3}, tab.Positions()); diff != "" {
		t.Errorf("Positions mismatch (-want +got):\n%s", diff)
	}
}

func TestLookup(t *testing.T) {
	tab := mustRead(t, "run1.tsv")
	if _, ok := tab.Lookup("element-plus"); ok {
		t.Error("Lookup found a series that is not in the table")
	}
	s, ok := tab.Lookup("oku-ui")
	if !ok || s.Values[1] != 38.5 {
		t.Errorf("Lookup(oku-ui) = %v, %v", s, ok)
	}
}

func TestStats(t *testing.T) {
	tab := &Table{
		Labels: []string{"1", "2", "3", "4"},
		Series: []Series{
			{"a", []float64{2, 4, 4, 6}},
			{"b", []float64{5, 5, 5, 5}},
		},
	}
	want := []Stats{
		{Name: "a", N: 4, Min: 2, Max: 6, Mean: 4, StdDev: math.Sqrt(8.0 / 3)},
		{Name: "b", N: 4, Min: 5, Max: 5, Mean: 5, StdDev: 0},
	}
	if diff := cmp.Diff(want, tab.Stats(), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Stats mismatch (-want +got):\n%s", diff)
	}

	single := &Table{Labels: []string{"1"}, Series: []Series{{"x", []float64{3}}}}
	if got := single.Stats()[0]; got.StdDev != 0 || got.Mean != 3 {
		t.Errorf("single-row Stats = %+v", got)
	}
}

func TestMean(t *testing.T) {
	avg, err := Mean(mustRead(t, "run1.tsv"), mustRead(t, "run2.tsv"))
	if err != nil {
		t.Fatal(err)
	}
	want := &Table{
		Labels: []string{"1", "2", "3"},
		Series: []Series{
			{"vanilla", []float64{13, 11, 10}},
			{"oku-ui", []float64{41, 38, 37}},
			{"radix-vue", []float64{34, 30, 31}},
		},
	}
	if diff := cmp.Diff(want, avg); diff != "" {
		t.Errorf("Mean mismatch (-want +got):\n%s", diff)
	}
}

func TestMeanSingle(t *testing.T) {
	run := mustRead(t, "run1.tsv")
	avg, err := Mean(run)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(run, avg); diff != "" {
		t.Errorf("Mean of one run mismatch (-want +got):\n%s", diff)
	}
	avg.Series[0].Values[0] = -1
	if run.Series[0].Values[0] == -1 {
		t.Error("Mean shares storage with its input")
	}
}

func TestMeanShape(t *testing.T) {
	base := &Table{Labels: []string{"1"}, Series: []Series{{"a", []float64{1}}, {"b", []float64{2}}}}
	for _, other := range []*Table{
		{Labels: []string{"1"}, Series: []Series{{"a", []float64{1}}}},
		{Labels: []string{"1"}, Series: []Series{{"a", []float64{1}}, {"c", []float64{2}}}},
		{Labels: []string{"1", "2"}, Series: []Series{{"a", []float64{1, 1}}, {"b", []float64{2, 2}}}},
	} {
		if _, err := Mean(base, other); !errors.Is(err, ErrShape) {
			t.Errorf("Mean(%v, %v) error = %v, want ErrShape", base, other, err)
		}
	}
	if _, err := Mean(); !errors.Is(err, ErrShape) {
		t.Errorf("Mean() error = %v, want ErrShape", err)
	}
}
