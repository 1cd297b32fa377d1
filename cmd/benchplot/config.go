// Copyright 2026 The benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gonum.org/v1/plot/vg"

	"github.com/Hydroiodic/Project-SE2322-2023-2024-2/benchseries"
)

// Configuration keys. Each can be set in the config file, or in the
// environment as BENCHPLOT_ followed by the key in upper case with
// dots replaced by underscores.
const (
	keyTracePath     = "trace.path"
	keyTracePreset   = "trace.preset"
	keyTablePath     = "table.path"
	keyTableTitle    = "table.title"
	keyTableYLabel   = "table.ylabel"
	keyDisplayAddr   = "display.addr"
	keyNoBrowser     = "display.no_browser"
	keyPlotWidth     = "plot.width"  // centimeters
	keyPlotHeight    = "plot.height" // centimeters
	keyPlotDPI       = "plot.dpi"
	keyVerbose       = "verbose"
	defaultTracePath = "data/compaction_out"
	defaultTablePath = "data/filter_test_out.csv"
)

func newConfig() *viper.Viper {
	v := viper.New()
	v.SetDefault(keyTracePath, defaultTracePath)
	v.SetDefault(keyTracePreset, benchseries.LatencyLabels.Name)
	v.SetDefault(keyTablePath, defaultTablePath)
	v.SetDefault(keyTableTitle, benchseries.DefaultTableTitle)
	v.SetDefault(keyTableYLabel, benchseries.DefaultTableYLabel)
	v.SetDefault(keyDisplayAddr, "localhost:0")
	v.SetDefault(keyNoBrowser, false)
	v.SetDefault(keyPlotWidth, float64(benchseries.DefaultChartOptions.Width/vg.Centimeter))
	v.SetDefault(keyPlotHeight, float64(benchseries.DefaultChartOptions.Height/vg.Centimeter))
	v.SetDefault(keyPlotDPI, benchseries.DefaultChartOptions.DPI)
	v.SetDefault(keyVerbose, false)

	v.SetEnvPrefix("benchplot")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// bind makes flag f the command line source of key.
func bind(v *viper.Viper, f *pflag.Flag, key string) {
	if err := v.BindPFlag(key, f); err != nil {
		panic(err)
	}
}

// readConfigFile merges the config file at path into v. The format
// follows the file extension.
func readConfigFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	p, err := homedir.Expand(path)
	if err != nil {
		return errors.Wrapf(err, "config file %s", path)
	}
	v.SetConfigFile(p)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "reading config file %s", p)
	}
	return nil
}

// configPath returns the path stored under key, with a leading ~
// expanded.
func configPath(v *viper.Viper, key string) (string, error) {
	p := v.GetString(key)
	if p == "" {
		return "", errors.Errorf("no path configured for %s", key)
	}
	exp, err := homedir.Expand(p)
	if err != nil {
		return "", errors.Wrapf(err, "%s", key)
	}
	return exp, nil
}

// chartOptions returns the configured chart size.
func chartOptions(v *viper.Viper) benchseries.ChartOptions {
	return benchseries.ChartOptions{
		Width:  vg.Length(v.GetFloat64(keyPlotWidth)) * vg.Centimeter,
		Height: vg.Length(v.GetFloat64(keyPlotHeight)) * vg.Centimeter,
		DPI:    v.GetInt(keyPlotDPI),
	}
}
