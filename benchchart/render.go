// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/vuelsbench/benchplot/benchtab"
)

// A Panel is a titled table, one chart of a rendering.
type Panel struct {
	Title string
	Table *benchtab.Table
}

// Render draws one panel into a Width×Height PNG at path and returns
// the size of the file.
func Render(pn Panel, path string, o Options) (int64, error) {
	p, err := NewPlot(pn.Table, pn.Title, o)
	if err != nil {
		return 0, err
	}
	s := NewSurface(o.Width, o.Height, o.DPI)
	defer s.Close()
	if err := s.Draw(p); err != nil {
		return 0, err
	}
	return s.WriteFile(path)
}

// RenderCombined stacks all panels, top to bottom, into a single PNG
// at path. Each panel is Width×PanelHeight.
func RenderCombined(panels []Panel, path string, o Options) (int64, error) {
	if len(panels) == 0 {
		return 0, fmt.Errorf("no panels to combine")
	}
	plots := make([]*plot.Plot, len(panels))
	for i, pn := range panels {
		p, err := NewPlot(pn.Table, pn.Title, o)
		if err != nil {
			return 0, err
		}
		plots[i] = p
	}
	s := NewSurface(o.Width, o.PanelHeight*vg.Length(len(panels)), o.DPI)
	defer s.Close()
	if err := s.DrawStack(plots); err != nil {
		return 0, err
	}
	return s.WriteFile(path)
}
