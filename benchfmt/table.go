// Copyright 2026 The benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

// TableColumns is the number of columns in a table file: one
// independent variable followed by two dependent variables.
const TableColumns = 3

// A Row is one data record of a table file.
type Row struct {
	Line int // 1-based line in the file; the header is line 1
	X    float64
	Y    [TableColumns - 1]float64
}

// A Table is the parsed content of a table file.
type Table struct {
	FileName string

	// Header holds the independent column name followed by the
	// two dependent column names.
	Header [TableColumns]string

	// Rows are in file order.
	Rows []Row
}

// XName returns the name of the independent column.
func (t *Table) XName() string {
	return t.Header[0]
}

// YNames returns the names of the dependent columns.
func (t *Table) YNames() []string {
	return t.Header[1:]
}

// ParseTable parses a table file from r. fileName is used in error
// messages.
func ParseTable(r io.Reader, fileName string) (*Table, error) {
	if fileName == "" {
		fileName = "<unknown>"
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // arity is checked here, with better errors
	cr.TrimLeadingSpace = true

	tab := &Table{FileName: fileName}
	header, err := cr.Read()
	if err == io.EOF {
		return nil, &InsufficientDataError{FileName: fileName}
	} else if err != nil {
		return nil, csvError(fileName, err)
	}
	hline, _ := cr.FieldPos(0)
	if len(header) != TableColumns {
		return nil, &SchemaError{FileName: fileName, Line: hline, Columns: header, Msg: "header must name exactly 3 columns"}
	}
	seen := make(map[string]bool)
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, &SchemaError{FileName: fileName, Line: hline, Columns: header, Msg: "empty column name"}
		}
		if seen[name] {
			return nil, &SchemaError{FileName: fileName, Line: hline, Columns: header, Msg: "duplicate column " + name}
		}
		seen[name] = true
		tab.Header[i] = name
	}

	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, csvError(fileName, err)
		}
		line, _ := cr.FieldPos(0)
		if len(rec) != TableColumns {
			return nil, &SchemaError{FileName: fileName, Line: line, Columns: rec, Msg: "row must have exactly 3 fields"}
		}
		row := Row{Line: line}
		for i, field := range rec {
			v, err := atof(strings.TrimSpace(field))
			if err != nil {
				return nil, &ParseError{FileName: fileName, Line: line, Column: tab.Header[i], Text: field, Err: err}
			}
			if i == 0 {
				row.X = v
			} else {
				row.Y[i-1] = v
			}
		}
		tab.Rows = append(tab.Rows, row)
	}

	if len(tab.Rows) == 0 {
		return nil, &InsufficientDataError{FileName: fileName}
	}
	return tab, nil
}

// ReadTable reads the table file at path.
func ReadTable(path string) (tab *Table, err error) {
	err = withFile(path, func(f io.Reader) error {
		t, perr := ParseTable(f, path)
		tab = t
		return perr
	})
	if err != nil {
		return nil, err
	}
	return tab, nil
}

// csvError converts an encoding/csv failure into a ParseError at the
// line the CSV reader gave up on.
func csvError(fileName string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &ParseError{FileName: fileName, Line: pe.Line, Msg: "malformed CSV: " + pe.Err.Error(), Err: pe.Err}
	}
	return &FileAccessError{FileName: fileName, Err: err}
}
