// Copyright 2026 The benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Hydroiodic/Project-SE2322-2023-2024-2/benchfmt"
	"github.com/Hydroiodic/Project-SE2322-2023-2024-2/benchseries"
	"github.com/Hydroiodic/Project-SE2322-2023-2024-2/internal/display"
)

// app carries the state shared by all commands.
type app struct {
	cfg *viper.Viper
	log *zap.Logger

	// show renders and displays a chart, blocking until it is
	// dismissed. Tests replace it.
	show func(ctx context.Context, spec *benchseries.ChartSpec) error
}

func newApp() *app {
	a := &app{cfg: newConfig(), log: zap.NewNop()}
	a.show = a.display
	return a
}

// display renders spec to PNG and shows it in the browser.
func (a *app) display(ctx context.Context, spec *benchseries.ChartSpec) error {
	var buf bytes.Buffer
	if err := spec.WritePNG(&buf, chartOptions(a.cfg)); err != nil {
		return errors.Wrapf(err, "rendering %q", spec.Title)
	}
	v := &display.Viewer{
		Addr:      a.cfg.GetString(keyDisplayAddr),
		NoBrowser: a.cfg.GetBool(keyNoBrowser),
		Logger:    a.log,
	}
	return v.Show(ctx, spec.Title, buf.Bytes())
}

func newRootCmd(a *app) *cobra.Command {
	var configFile string
	root := &cobra.Command{
		Use:           "benchplot",
		Short:         "Chart key-value store benchmark output",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := readConfigFile(a.cfg, configFile); err != nil {
				return err
			}
			log, err := newLogger(a.cfg.GetBool(keyVerbose))
			if err != nil {
				return errors.Wrap(err, "building logger")
			}
			a.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.log.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "read configuration from `file` (yaml, toml or json)")
	flags.String("addr", "localhost:0", "serve the chart on `address`")
	flags.Bool("no-browser", false, "do not open a browser, only log the chart URL")
	flags.Float64("width", 0, "chart width in `cm`")
	flags.Float64("height", 0, "chart height in `cm`")
	flags.Int("dpi", 0, "chart resolution in dots per inch")
	flags.BoolP("verbose", "v", false, "log debug detail")
	bind(a.cfg, flags.Lookup("addr"), keyDisplayAddr)
	bind(a.cfg, flags.Lookup("no-browser"), keyNoBrowser)
	bind(a.cfg, flags.Lookup("width"), keyPlotWidth)
	bind(a.cfg, flags.Lookup("height"), keyPlotHeight)
	bind(a.cfg, flags.Lookup("dpi"), keyPlotDPI)
	bind(a.cfg, flags.Lookup("verbose"), keyVerbose)

	root.AddCommand(newTraceCmd(a), newTableCmd(a), newAllCmd(a))
	return root
}

func newTraceCmd(a *app) *cobra.Command {
	var title, ylabel, name string
	cmd := &cobra.Command{
		Use:   "trace [file]",
		Short: "Chart a per-operation trace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			labels, err := traceLabels(a.cfg.GetString(keyTracePreset))
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("title") {
				labels.Title = title
			}
			if cmd.Flags().Changed("ylabel") {
				labels.YLabel = ylabel
			}
			if cmd.Flags().Changed("name") {
				labels.Name = name
			}
			path, err := argOrConfig(a.cfg, args, keyTracePath)
			if err != nil {
				return err
			}
			return a.runTrace(cmd.Context(), path, labels)
		},
	}
	flags := cmd.Flags()
	flags.String("preset", benchseries.LatencyLabels.Name, "label `preset`: "+strings.Join(benchseries.TracePresets(), " or "))
	flags.StringVar(&title, "title", "", "override the chart title")
	flags.StringVar(&ylabel, "ylabel", "", "override the y axis label")
	flags.StringVar(&name, "name", "", "override the series name")
	bind(a.cfg, flags.Lookup("preset"), keyTracePreset)
	return cmd
}

func newTableCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table [file]",
		Short: "Chart two metrics of a CSV table against its first column",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := argOrConfig(a.cfg, args, keyTablePath)
			if err != nil {
				return err
			}
			return a.runTable(cmd.Context(), path)
		},
	}
	flags := cmd.Flags()
	flags.String("title", benchseries.DefaultTableTitle, "chart title")
	flags.String("ylabel", benchseries.DefaultTableYLabel, "y axis label")
	bind(a.cfg, flags.Lookup("title"), keyTableTitle)
	bind(a.cfg, flags.Lookup("ylabel"), keyTableYLabel)
	return cmd
}

func newAllCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Chart the configured trace, then the configured table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			labels, err := traceLabels(a.cfg.GetString(keyTracePreset))
			if err != nil {
				return err
			}
			tracePath, err := configPath(a.cfg, keyTracePath)
			if err != nil {
				return err
			}
			tablePath, err := configPath(a.cfg, keyTablePath)
			if err != nil {
				return err
			}
			if err := a.runTrace(cmd.Context(), tracePath, labels); err != nil {
				return err
			}
			return a.runTable(cmd.Context(), tablePath)
		},
	}
}

func (a *app) runTrace(ctx context.Context, path string, labels benchseries.TraceLabels) error {
	samples, err := benchfmt.ReadTrace(path)
	if err != nil {
		return err
	}
	spec := benchseries.TraceChart(samples, labels)
	logChart(a.log, path, spec)
	return a.show(ctx, spec)
}

func (a *app) runTable(ctx context.Context, path string) error {
	tab, err := benchfmt.ReadTable(path)
	if err != nil {
		return err
	}
	spec, err := benchseries.TableChart(tab, a.cfg.GetString(keyTableTitle), a.cfg.GetString(keyTableYLabel))
	if err != nil {
		return err
	}
	logChart(a.log, path, spec)
	return a.show(ctx, spec)
}

func traceLabels(preset string) (benchseries.TraceLabels, error) {
	labels, ok := benchseries.LookupTraceLabels(preset)
	if !ok {
		return labels, errors.Errorf("unknown trace preset %q (want %s)", preset, strings.Join(benchseries.TracePresets(), " or "))
	}
	return labels, nil
}

// argOrConfig returns the path given on the command line, or the one
// configured under key.
func argOrConfig(v *viper.Viper, args []string, key string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return configPath(v, key)
}
