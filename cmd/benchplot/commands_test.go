// Copyright 2026 The benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/Hydroiodic/Project-SE2322-2023-2024-2/benchfmt"
	"github.com/Hydroiodic/Project-SE2322-2023-2024-2/benchseries"
)

const (
	traceData = "op,ns\n100\n250\n400\n"
	tableData = "size,bloom_lat,no_bloom_lat\n10,5.2,12.1\n20,5.5,12.8\n"
)

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// run executes benchplot with args and returns the charts it would
// have shown.
func run(t *testing.T, args ...string) ([]*benchseries.ChartSpec, error) {
	t.Helper()
	a := newApp()
	var shown []*benchseries.ChartSpec
	a.show = func(ctx context.Context, spec *benchseries.ChartSpec) error {
		shown = append(shown, spec)
		return nil
	}
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return shown, err
}

func TestTraceCommand(t *testing.T) {
	path := writeFile(t, t.TempDir(), "compaction_out", traceData)
	shown, err := run(t, "trace", path)
	if err != nil {
		t.Fatal(err)
	}
	want := []*benchseries.ChartSpec{{
		Title:  "Time Cost Trend of Put",
		XLabel: "Operation No",
		YLabel: "Nanoseconds of Put",
		Series: []benchseries.Series{{
			Name:   "latency",
			Points: plotter.XYs{{X: 1, Y: 100}, {X: 2, Y: 250}, {X: 3, Y: 400}},
		}},
	}}
	if diff := cmp.Diff(want, shown); diff != "" {
		t.Errorf("shown charts (-want +got):\n%s", diff)
	}
}

func TestTraceCommandPreset(t *testing.T) {
	path := writeFile(t, t.TempDir(), "compaction_out", traceData)
	shown, err := run(t, "trace", "--preset", "throughput", "--title", "Put rate", path)
	if err != nil {
		t.Fatal(err)
	}
	if len(shown) != 1 {
		t.Fatalf("showed %d charts", len(shown))
	}
	got := shown[0]
	if got.Title != "Put rate" || got.YLabel != benchseries.ThroughputLabels.YLabel || got.Series[0].Name != "throughput" {
		t.Errorf("got %q/%q/%q", got.Title, got.YLabel, got.Series[0].Name)
	}

	if _, err := run(t, "trace", "--preset", "bogus", path); err == nil {
		t.Error("unknown preset accepted")
	}
}

func TestTableCommand(t *testing.T) {
	path := writeFile(t, t.TempDir(), "filter_test_out.csv", tableData)
	shown, err := run(t, "table", path)
	if err != nil {
		t.Fatal(err)
	}
	want := []*benchseries.ChartSpec{{
		Title:  benchseries.DefaultTableTitle,
		XLabel: "size",
		YLabel: benchseries.DefaultTableYLabel,
		Series: []benchseries.Series{
			{Name: "bloom_lat", Points: plotter.XYs{{X: 10, Y: 5.2}, {X: 20, Y: 5.5}}},
			{Name: "no_bloom_lat", Points: plotter.XYs{{X: 10, Y: 12.1}, {X: 20, Y: 12.8}}},
		},
	}}
	if diff := cmp.Diff(want, shown); diff != "" {
		t.Errorf("shown charts (-want +got):\n%s", diff)
	}
}

func TestAllCommandConfigFile(t *testing.T) {
	dir := t.TempDir()
	trace := writeFile(t, dir, "trace", traceData)
	table := writeFile(t, dir, "table.csv", tableData)
	cfg := writeFile(t, dir, "benchplot.yaml", "trace:\n  path: "+trace+"\n  preset: throughput\ntable:\n  path: "+table+"\n  title: Bloom\n")

	shown, err := run(t, "--config", cfg, "all")
	if err != nil {
		t.Fatal(err)
	}
	if len(shown) != 2 {
		t.Fatalf("showed %d charts, want 2", len(shown))
	}
	if shown[0].Title != benchseries.ThroughputLabels.Title || shown[1].Title != "Bloom" {
		t.Errorf("titles %q, %q", shown[0].Title, shown[1].Title)
	}
}

func TestCommandErrors(t *testing.T) {
	dir := t.TempDir()
	badTrace := writeFile(t, dir, "bad", "op,ns\nabc\n")
	emptyTrace := writeFile(t, dir, "empty", "op,ns\n")
	badTable := writeFile(t, dir, "bad.csv", "size,a\n1,2\n")

	for _, test := range []struct {
		name  string
		args  []string
		check func(error) bool
	}{
		{"parse", []string{"trace", badTrace}, func(err error) bool {
			var pe *benchfmt.ParseError
			return errors.As(err, &pe) && pe.Line == 2
		}},
		{"insufficient", []string{"trace", emptyTrace}, func(err error) bool {
			var ie *benchfmt.InsufficientDataError
			return errors.As(err, &ie)
		}},
		{"schema", []string{"table", badTable}, func(err error) bool {
			var se *benchfmt.SchemaError
			return errors.As(err, &se)
		}},
		{"missing", []string{"table", filepath.Join(dir, "nope.csv")}, func(err error) bool {
			var fe *benchfmt.FileAccessError
			return errors.As(err, &fe)
		}},
		{"too many args", []string{"trace", "a", "b"}, func(err error) bool { return err != nil }},
	} {
		t.Run(test.name, func(t *testing.T) {
			shown, err := run(t, test.args...)
			if !test.check(err) {
				t.Errorf("unexpected error %v", err)
			}
			if len(shown) != 0 {
				t.Errorf("showed %d charts despite the error", len(shown))
			}
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	v := newConfig()
	if got := v.GetString(keyTracePath); got != defaultTracePath {
		t.Errorf("%s = %q", keyTracePath, got)
	}
	if got := v.GetString(keyTablePath); got != defaultTablePath {
		t.Errorf("%s = %q", keyTablePath, got)
	}
	if got := v.GetString(keyTracePreset); got != "latency" {
		t.Errorf("%s = %q", keyTracePreset, got)
	}
	if got, want := chartOptions(v), benchseries.DefaultChartOptions; !sameOptions(got, want) {
		t.Errorf("chartOptions = %+v, want %+v", got, want)
	}
}

func TestChartOptionsFromConfig(t *testing.T) {
	v := newConfig()
	v.Set(keyPlotWidth, 10)
	v.Set(keyPlotHeight, 5.5)
	v.Set(keyPlotDPI, 72)
	want := benchseries.ChartOptions{Width: 10 * vg.Centimeter, Height: 5.5 * vg.Centimeter, DPI: 72}
	if got := chartOptions(v); !sameOptions(got, want) {
		t.Errorf("chartOptions = %+v, want %+v", got, want)
	}
}

// sameOptions compares chart sizes up to rounding in the centimeter
// conversion.
func sameOptions(a, b benchseries.ChartOptions) bool {
	near := func(x, y vg.Length) bool { return math.Abs(float64(x-y)) < 1e-9 }
	return near(a.Width, b.Width) && near(a.Height, b.Height) && a.DPI == b.DPI
}

func TestConfigPathHome(t *testing.T) {
	v := newConfig()
	v.Set(keyTracePath, "~/bench/out")
	got, err := configPath(v, keyTracePath)
	if err != nil {
		t.Fatal(err)
	}
	if got == "~/bench/out" || filepath.Base(got) != "out" {
		t.Errorf("configPath = %q, want ~ expanded", got)
	}

	v.Set(keyTablePath, "")
	if _, err := configPath(v, keyTablePath); err == nil {
		t.Error("empty path accepted")
	}
}
