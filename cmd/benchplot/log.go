// Copyright 2026 The benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/aclements/go-moremath/stats"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Hydroiodic/Project-SE2322-2023-2024-2/benchseries"
)

// newLogger returns a colored console logger when stderr is a terminal
// and a JSON logger otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	var cfg zap.Config
	fd := os.Stderr.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
	}
	if verbose {
		cfg.Level.SetLevel(zap.DebugLevel)
	} else {
		cfg.Level.SetLevel(zap.InfoLevel)
	}
	return cfg.Build()
}

// logChart records what is about to be drawn.
func logChart(log *zap.Logger, path string, spec *benchseries.ChartSpec) {
	log.Info("read benchmark output",
		zap.String("file", path),
		zap.String("title", spec.Title),
		zap.Int("series", len(spec.Series)),
		zap.Int("points", spec.Points()))
	for _, s := range spec.Series {
		ys := make([]float64, s.Len())
		for i, p := range s.Points {
			ys[i] = p.Y
		}
		lo, hi := stats.Bounds(ys)
		log.Debug("series",
			zap.String("name", s.Name),
			zap.Int("points", s.Len()),
			zap.Float64("min", lo),
			zap.Float64("max", hi))
	}
}
