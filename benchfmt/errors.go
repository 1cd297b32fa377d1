// Copyright 2026 The benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"fmt"
	"strings"
)

// A FileAccessError reports that a benchmark output file could not be
// opened or read.
type FileAccessError struct {
	FileName string
	Err      error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("%s: %v", e.FileName, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// A ParseError reports a line or field that is not a number.
//
// Line is the 1-based line number in the file, counting the header.
// Column is the name of the table column the field belongs to; it is
// empty for trace files.
type ParseError struct {
	FileName string
	Line     int
	Column   string
	Text     string
	Msg      string // replaces the default message when set
	Err      error
}

// Pos returns the file name and line of the offending input.
func (e *ParseError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *ParseError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
	}
	if e.Column != "" {
		return fmt.Sprintf("%s:%d: column %q: cannot parse %q as a number", e.FileName, e.Line, e.Column, e.Text)
	}
	return fmt.Sprintf("%s:%d: cannot parse %q as a number", e.FileName, e.Line, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// A SchemaError reports a table record with the wrong number of
// fields, or a header with repeated or empty column names.
//
// Line 1 is the header.
type SchemaError struct {
	FileName string
	Line     int
	Columns  []string
	Msg      string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s:%d: %s (got %d columns: %s)", e.FileName, e.Line, e.Msg, len(e.Columns), strings.Join(e.Columns, ","))
}

// An InsufficientDataError reports a file with no data after its
// header.
type InsufficientDataError struct {
	FileName string
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s: no data after header", e.FileName)
}
