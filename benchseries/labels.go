// Copyright 2026 The benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"sort"

	"github.com/Hydroiodic/Project-SE2322-2023-2024-2/benchfmt"
)

// TraceLabels frames a trace chart. Latency and throughput traces share
// a file format and differ only in these labels.
type TraceLabels struct {
	Name   string // series name
	Title  string
	XLabel string
	YLabel string
}

// Trace label presets.
var (
	LatencyLabels = TraceLabels{
		Name:   "latency",
		Title:  "Time Cost Trend of Put",
		XLabel: "Operation No",
		YLabel: "Nanoseconds of Put",
	}
	ThroughputLabels = TraceLabels{
		Name:   "throughput",
		Title:  "Throughput Trend of Put",
		XLabel: "Operation No",
		YLabel: "Put Operations per Second",
	}
)

var presets = map[string]TraceLabels{
	LatencyLabels.Name:    LatencyLabels,
	ThroughputLabels.Name: ThroughputLabels,
}

// LookupTraceLabels returns the preset called name.
func LookupTraceLabels(name string) (TraceLabels, bool) {
	l, ok := presets[name]
	return l, ok
}

// TracePresets returns the preset names in sorted order.
func TracePresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default framing of the bloom filter comparison table.
const (
	DefaultTableTitle  = "Latency vs Size of BloomFilter"
	DefaultTableYLabel = "Latency"
)

// TraceChart returns the chart of samples framed by labels.
func TraceChart(samples []benchfmt.Sample, labels TraceLabels) *ChartSpec {
	return &ChartSpec{
		Title:  labels.Title,
		XLabel: labels.XLabel,
		YLabel: labels.YLabel,
		Series: []Series{FromTrace(samples, labels.Name)},
	}
}

// TableChart returns the chart of tab. The x axis is labeled with the
// independent column's name.
func TableChart(tab *benchfmt.Table, title, yLabel string) (*ChartSpec, error) {
	series, err := FromTable(tab)
	if err != nil {
		return nil, err
	}
	return &ChartSpec{
		Title:  title,
		XLabel: tab.XName(),
		YLabel: yLabel,
		Series: series,
	}, nil
}
