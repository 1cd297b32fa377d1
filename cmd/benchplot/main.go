// Copyright 2026 The benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchplot charts the output of the key-value store benchmarks.
//
// Usage:
//
//	benchplot trace [-preset latency|throughput] [-title t] [-ylabel y] [-name n] [file]
//	benchplot table [-title t] [-ylabel y] [file]
//	benchplot all
//
// A trace file has a banner line followed by one number per line, one
// per operation. The "latency" preset frames the numbers as the
// nanoseconds taken by each put; the "throughput" preset frames them as
// puts per second.
//
// A table file is a CSV file whose header names an independent
// variable and two dependent variables, for example
//
//	size,bloom_lat,no_bloom_lat
//	10,5.2,12.1
//	20,5.5,12.8
//
// Both dependent columns are drawn against the first column, with a
// legend naming them.
//
// When no file is given, the path comes from the configuration (see
// -config), which defaults to data/compaction_out for traces and
// data/filter_test_out.csv for tables. "benchplot all" draws both.
//
// The chart is served on a local web page and opened in the browser.
// benchplot waits until the page's Close button is pressed, or until it
// is interrupted. No image is saved.
//
// Any malformed input aborts the run before a chart is shown, with a
// message naming the file and line.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(newApp()).ExecuteContext(ctx)
	stop()
	if errors.Is(err, context.Canceled) {
		os.Exit(130)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "benchplot: %v\n", err)
		os.Exit(1)
	}
}
