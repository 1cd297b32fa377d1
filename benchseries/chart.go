// Copyright 2026 The benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// A ChartSpec describes one line chart: its title, axis labels and the
// series to draw, in drawing order.
//
// A ChartSpec is not modified once built.
type ChartSpec struct {
	Title  string
	XLabel string
	YLabel string
	Series []Series
}

// HasLegend reports whether the chart gets a legend. A single line is
// left unlabeled.
func (c *ChartSpec) HasLegend() bool {
	return len(c.Series) > 1
}

// Points returns the total number of points across all series.
func (c *ChartSpec) Points() int {
	n := 0
	for _, s := range c.Series {
		n += s.Len()
	}
	return n
}

var errNoSeries = errors.New("chart has no series")

// Validate checks that there is something to draw.
func (c *ChartSpec) Validate() error {
	if len(c.Series) == 0 {
		return errNoSeries
	}
	for _, s := range c.Series {
		if s.Len() == 0 {
			return fmt.Errorf("series %q has no points", s.Name)
		}
	}
	return nil
}

// Plot builds the chart as a gonum plot without drawing it anywhere.
// Point coordinates are used exactly as given.
func (c *ChartSpec) Plot() (*plot.Plot, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	pl := plot.New()
	pl.Title.Text = c.Title
	pl.X.Label.Text = c.XLabel
	pl.Y.Label.Text = c.YLabel

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	pl.Add(grid)

	for i, s := range c.Series {
		line, err := plotter.NewLine(s.Points)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Name, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1.5)
		pl.Add(line)
		if c.HasLegend() {
			pl.Legend.Add(s.Name, line)
		}
	}
	pl.Legend.Top = true
	return pl, nil
}

// ChartOptions controls the size and resolution of a rendered chart.
type ChartOptions struct {
	Width, Height vg.Length
	DPI           int
}

// DefaultChartOptions is a landscape chart readable on a laptop screen.
var DefaultChartOptions = ChartOptions{
	Width:  20 * vg.Centimeter,
	Height: 12 * vg.Centimeter,
	DPI:    150,
}

func (o ChartOptions) orDefault() ChartOptions {
	if o.Width <= 0 {
		o.Width = DefaultChartOptions.Width
	}
	if o.Height <= 0 {
		o.Height = DefaultChartOptions.Height
	}
	if o.DPI <= 0 {
		o.DPI = DefaultChartOptions.DPI
	}
	return o
}

// WritePNG draws the chart onto a white PNG canvas and writes the
// encoded image to w. Zero fields of opts take their defaults.
func (c *ChartSpec) WritePNG(w io.Writer, opts ChartOptions) error {
	pl, err := c.Plot()
	if err != nil {
		return err
	}
	opts = opts.orDefault()
	can := vgimg.PngCanvas{Canvas: vgimg.NewWith(
		vgimg.UseWH(opts.Width, opts.Height),
		vgimg.UseDPI(opts.DPI),
		vgimg.UseBackgroundColor(color.White),
	)}
	pl.Draw(draw.New(can))
	_, err = can.WriteTo(w)
	return err
}
