// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"errors"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrClosed is returned by operations on a closed Surface.
var ErrClosed = errors.New("surface is closed")

// A Surface is a raster canvas that charts are drawn onto before
// being encoded as PNG. Each image gets its own Surface, which must
// be closed once written.
type Surface struct {
	canvas *vgimg.Canvas
}

// NewSurface returns a white w×h canvas at the given resolution.
func NewSurface(w, h vg.Length, dpi int) *Surface {
	return &Surface{
		canvas: vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi), vgimg.UseBackgroundColor(color.White)),
	}
}

// Draw draws p over the whole surface.
func (s *Surface) Draw(p *plot.Plot) error {
	if s.canvas == nil {
		return ErrClosed
	}
	p.Draw(draw.New(s.canvas))
	return nil
}

// stackPad separates vertically stacked charts.
const stackPad = vg.Length(18)

// DrawStack draws plots top to bottom in equal-height rows, with
// their axes aligned.
func (s *Surface) DrawStack(plots []*plot.Plot) error {
	if s.canvas == nil {
		return ErrClosed
	}
	if len(plots) == 0 {
		return nil
	}
	rows := make([][]*plot.Plot, len(plots))
	for i, p := range plots {
		rows[i] = []*plot.Plot{p}
	}
	tiles := draw.Tiles{
		Rows:      len(plots),
		Cols:      1,
		PadY:      stackPad,
		PadTop:    stackPad / 2,
		PadBottom: stackPad / 2,
		PadLeft:   stackPad / 2,
		PadRight:  stackPad / 2,
	}
	canvases := plot.Align(rows, tiles, draw.New(s.canvas))
	for i, p := range plots {
		p.Draw(canvases[i][0])
	}
	return nil
}

// WriteTo encodes the surface as PNG.
func (s *Surface) WriteTo(w io.Writer) (int64, error) {
	if s.canvas == nil {
		return 0, ErrClosed
	}
	return vgimg.PngCanvas{Canvas: s.canvas}.WriteTo(w)
}

// WriteFile encodes the surface as PNG into the named file, creating
// its directory if needed. It returns the number of bytes written.
func (s *Surface) WriteFile(path string) (int64, error) {
	if s.canvas == nil {
		return 0, ErrClosed
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0777); err != nil {
			return 0, err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	n, err := s.WriteTo(f)
	if err != nil {
		f.Close()
		return n, err
	}
	return n, f.Close()
}

// Close releases the canvas. Closing a closed Surface is a no-op.
func (s *Surface) Close() error {
	s.canvas = nil
	return nil
}
