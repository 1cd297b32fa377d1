// Copyright 2026 The benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchfmt reads the output files written by the key-value
// store benchmarks.
//
// Two shapes are supported. A trace file holds one measurement per
// line after a banner line, for example
//
//	/******************* Testing Put *******************/
//	81250
//	79640
//
// A table file is CSV with a header naming one independent and two
// dependent columns:
//
//	size,bloom_lat,no_bloom_lat
//	10,5.2,12.1
//	20,5.5,12.8
package benchfmt

import (
	"bufio"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
)

// A Sample is one measurement from a trace file.
//
// Index is the 1-based position of the sample among data lines, so
// the first line after the banner has Index 1.
type Sample struct {
	Index int
	Value float64
}

// maxLineLen bounds a trace line. No number is anywhere near this
// long; longer lines are reported as a ParseError.
const maxLineLen = 1 << 20

// A TraceReader reads samples from a trace file.
//
// Its API is modeled on bufio.Scanner. To construct a TraceReader,
// call NewTraceReader.
type TraceReader struct {
	s        *bufio.Scanner
	fileName string
	line     int
	sample   Sample
	err      error
}

// NewTraceReader returns a reader for the trace in r. fileName is used
// in error messages; it is purely diagnostic.
func NewTraceReader(r io.Reader, fileName string) *TraceReader {
	if fileName == "" {
		fileName = "<unknown>"
	}
	s := bufio.NewScanner(r)
	s.Buffer(nil, maxLineLen)
	return &TraceReader{s: s, fileName: fileName}
}

// Scan advances to the next sample and reports whether one was read.
// The first line of the input is skipped without being examined.
// If Scan reaches EOF or hits an error, it returns false and the
// caller should check Err.
func (r *TraceReader) Scan() bool {
	if r.err != nil {
		return false
	}
	for r.s.Scan() {
		r.line++
		if r.line == 1 {
			continue
		}
		text := r.s.Text()
		v, err := atof(strings.TrimSpace(text))
		if err != nil {
			r.err = &ParseError{FileName: r.fileName, Line: r.line, Text: text, Err: err}
			return false
		}
		r.sample = Sample{Index: r.sample.Index + 1, Value: v}
		return true
	}
	if err := r.s.Err(); errors.Is(err, bufio.ErrTooLong) {
		// The scanner gave up on the line after the last one it
		// returned.
		r.err = &ParseError{FileName: r.fileName, Line: r.line + 1, Msg: "line too long", Err: err}
	} else if err != nil {
		r.err = &FileAccessError{FileName: r.fileName, Err: err}
	}
	return false
}

// Sample returns the sample read by the last call to Scan.
func (r *TraceReader) Sample() Sample {
	return r.sample
}

// Err returns the first error encountered by Scan, or nil if Scan
// stopped at EOF.
func (r *TraceReader) Err() error {
	return r.err
}

// ReadTrace reads every sample in the trace file at path.
//
// A malformed line aborts the read; no samples are returned with an
// error. A file with nothing after its banner yields an
// *InsufficientDataError.
func ReadTrace(path string) (samples []Sample, err error) {
	err = withFile(path, func(f io.Reader) error {
		r := NewTraceReader(f, path)
		for r.Scan() {
			samples = append(samples, r.Sample())
		}
		if err := r.Err(); err != nil {
			return err
		}
		if len(samples) == 0 {
			return &InsufficientDataError{FileName: path}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return samples, nil
}

var errNonFinite = errors.New("value is not finite")

// atof parses a decimal literal. NaN and infinities are rejected
// because neither file format produces them and they cannot be drawn.
func atof(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok {
			return 0, ne.Err
		}
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNonFinite
	}
	return v, nil
}
