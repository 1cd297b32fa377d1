// Copyright 2026 The benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"io"
	"os"

	"go.uber.org/multierr"
)

// withFile opens path, passes it to fn and closes it again before
// returning, whatever fn does.
func withFile(path string, fn func(io.Reader) error) (err error) {
	f, err := os.Open(path)
	if err != nil {
		return &FileAccessError{FileName: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = multierr.Append(err, &FileAccessError{FileName: path, Err: cerr})
		}
	}()
	return fn(f)
}
