// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/plot/vg"

	"github.com/vuelsbench/benchplot/benchchart"
	"github.com/vuelsbench/benchplot/benchreport"
	"github.com/vuelsbench/benchplot/benchtab"
	"github.com/vuelsbench/benchplot/internal/config"
	"github.com/vuelsbench/benchplot/internal/logging"
)

const doneMessage = "All plots saved successfully."

// chartOptions translates the file-level configuration into drawing
// options.
func chartOptions(cfg *config.Config) (benchchart.Options, error) {
	o := benchchart.Options{
		Scaled:      cfg.Scale == config.ScaleLog1p,
		Highlight:   make(map[string]benchchart.Highlight, len(cfg.Highlight)),
		DimAlpha:    cfg.DimAlpha,
		DPI:         cfg.DPI,
		Width:       vg.Length(cfg.Width) * vg.Inch,
		Height:      vg.Length(cfg.Height) * vg.Inch,
		PanelHeight: vg.Length(cfg.PanelHeight) * vg.Inch,
	}
	for _, h := range cfg.Highlight {
		clr, err := config.ParseColor(h.Color)
		if err != nil {
			return o, fmt.Errorf("highlight %s: %w", h.Series, err)
		}
		o.Highlight[h.Series] = benchchart.Highlight{Color: clr, Width: vg.Points(h.Width)}
	}
	return o, nil
}

// render draws every chart of cfg, then the combined image and the
// report if requested. Inputs are processed one at a time, in order.
func render(cfg *config.Config, stdout io.Writer) error {
	logger := logging.GetLogger()

	o, err := chartOptions(cfg)
	if err != nil {
		return err
	}

	page := benchreport.Page{Title: "Benchmark results"}
	var panels []benchchart.Panel
	for _, ch := range cfg.Charts {
		entry := logger.WithField("input", ch.Input)

		t, err := benchtab.ReadFile(ch.Input)
		if err != nil {
			return err
		}
		entry.WithField("series", len(t.Series)).WithField("rows", t.Len()).Debug("Loaded table")

		pn := benchchart.Panel{Title: chartTitle(ch), Table: t}
		panels = append(panels, pn)

		var image string
		if cfg.Separate {
			n, err := benchchart.Render(pn, ch.Output, o)
			if err != nil {
				return fmt.Errorf("rendering %s: %w", ch.Input, err)
			}
			entry.WithField("output", ch.Output).WithField("size", humanize.Bytes(uint64(n))).Info("Saved chart")
			image = link(cfg.Report, ch.Output)
		}
		page.Charts = append(page.Charts, benchreport.NewChart(pn.Title, ch.Input, image, t))
	}

	if cfg.Combined != "" {
		n, err := benchchart.RenderCombined(panels, cfg.Combined, o)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", cfg.Combined, err)
		}
		logger.WithField("output", cfg.Combined).WithField("panels", len(panels)).WithField("size", humanize.Bytes(uint64(n))).Info("Saved combined chart")
		page.Combined = link(cfg.Report, cfg.Combined)
	}

	if cfg.Report != "" {
		if err := writeReport(cfg.Report, page); err != nil {
			return err
		}
		logger.WithField("output", cfg.Report).Info("Saved report")
	}

	fmt.Fprintln(stdout, doneMessage)
	return nil
}

func chartTitle(ch config.Chart) string {
	if ch.Title != "" {
		return ch.Title
	}
	return strings.TrimSuffix(filepath.Base(ch.Input), filepath.Ext(ch.Input))
}

// link returns the URL of target relative to the report page.
func link(report, target string) string {
	if report == "" {
		return filepath.ToSlash(target)
	}
	rel, err := filepath.Rel(filepath.Dir(report), target)
	if err != nil {
		return filepath.ToSlash(target)
	}
	return filepath.ToSlash(rel)
}

func writeReport(path string, page benchreport.Page) error {
	if err := os.MkdirAll(filepath.Dir(path), 0777); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := benchreport.WriteHTML(f, page); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// summarize prints the statistics of every configured input.
func summarize(cfg *config.Config, stdout io.Writer) error {
	for i, ch := range cfg.Charts {
		t, err := benchtab.ReadFile(ch.Input)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(stdout)
		}
		if err := benchreport.WriteSummary(stdout, chartTitle(ch), t.Stats()); err != nil {
			return err
		}
	}
	return nil
}
