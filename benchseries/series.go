// Copyright 2026 The benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchseries turns parsed benchmark output into named series
// and charts them.
package benchseries

import (
	"fmt"

	"github.com/aclements/go-gg/table"
	"gonum.org/v1/plot/plotter"

	"github.com/Hydroiodic/Project-SE2322-2023-2024-2/benchfmt"
)

// A Series is a named sequence of points drawn as one line.
// Name is used as the legend label.
type Series struct {
	Name   string
	Points plotter.XYs
}

// Len returns the number of points in s.
func (s Series) Len() int {
	return len(s.Points)
}

// FromTrace returns a series with one point (Index, Value) per sample,
// in sample order. name describes what the trace measures, for example
// "latency" or "throughput".
func FromTrace(samples []benchfmt.Sample, name string) Series {
	pts := make(plotter.XYs, len(samples))
	for i, s := range samples {
		pts[i].X = float64(s.Index)
		pts[i].Y = s.Value
	}
	return Series{Name: name, Points: pts}
}

// Columns of the long-form table built by FromTable. Header names are
// trimmed, so a leading space keeps these apart from them.
const (
	seriesCol = " series"
	valueCol  = " value"
)

// FromTable returns one series per dependent column of tab, named after
// that column and in header order. Every series shares the independent
// column as its x values. Rows keep their file order.
func FromTable(tab *benchfmt.Table) ([]Series, error) {
	wide := columns(tab)
	if got := len(wide.Columns()); got != benchfmt.TableColumns {
		// Only possible with repeated header names.
		return nil, fmt.Errorf("%s: table has %d distinct columns, want %d", tab.FileName, got, benchfmt.TableColumns)
	}

	// Unpivot the dependent columns into (series, value) pairs and
	// split them back out by series. Both steps keep row order, and
	// groups appear in header order.
	long := table.Unpivot(wide, seriesCol, valueCol, tab.YNames()...)
	groups := table.GroupBy(long, seriesCol)

	var out []Series
	for _, gid := range groups.Tables() {
		t := groups.Table(gid)
		xs := t.MustColumn(tab.XName()).([]float64)
		ys := t.MustColumn(valueCol).([]float64)
		pts := make(plotter.XYs, t.Len())
		for i := range pts {
			pts[i].X, pts[i].Y = xs[i], ys[i]
		}
		out = append(out, Series{Name: gid.Label().(string), Points: pts})
	}
	return out, nil
}

// columns stages the rows of tab as a wide column table keyed by
// header name.
func columns(tab *benchfmt.Table) *table.Table {
	xs := make([]float64, len(tab.Rows))
	ys := make([][]float64, len(tab.YNames()))
	for j := range ys {
		ys[j] = make([]float64, len(tab.Rows))
	}
	for i, row := range tab.Rows {
		xs[i] = row.X
		for j := range ys {
			ys[j][i] = row.Y[j]
		}
	}

	b := new(table.Builder)
	b.Add(tab.XName(), xs)
	for j, name := range tab.YNames() {
		b.Add(name, ys[j])
	}
	return b.Done()
}
