// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"os"

	"github.com/pkg/errors"
)

// A Files reads result rows from a sequence of input files, as if
// they were one file. Each file may have its own header row.
type Files struct {
	// Paths is the list of file names to read in.
	Paths []string

	// AllowStdin indicates that the path "-" should be treated as
	// stdin and if the file list is empty, it should be treated
	// as consisting of stdin.
	AllowStdin bool

	// Columns is the layout of files that have no header row.
	Columns []string

	// inputs is the sequence of remaining inputs, or nil if this
	// Files has not started yet. Note that this distinguishes nil
	// from length 0.
	inputs []string

	reader  Reader
	file    *os.File
	isStdin bool
	err     error
}

func (f *Files) init() {
	f.inputs = []string{}
	if f.AllowStdin && len(f.Paths) == 0 {
		f.inputs = append(f.inputs, "-")
	}
	f.inputs = append(f.inputs, f.Paths...)
}

// Scan advances the reader to the next row in the sequence of files
// and reports whether a row was read. The caller should use the Row
// method to get the row. If Scan reaches the end of the file
// sequence, or if an error occurs, it returns false. In this case,
// the caller should use the Err method to check for errors.
func (f *Files) Scan() bool {
	if f.err != nil {
		return false
	}

	if f.inputs == nil {
		f.init()
	}

	for {
		if f.file == nil {
			// Open the next file.
			if len(f.inputs) == 0 {
				return false
			}
			path := f.inputs[0]
			f.inputs = f.inputs[1:]

			if f.AllowStdin && path == "-" {
				f.isStdin, f.file = true, os.Stdin
				path = "<stdin>"
			} else {
				file, err := os.Open(path)
				if err != nil {
					f.err = errors.Wrapf(err, "opening %s", path)
					return false
				}
				f.isStdin, f.file = false, file
			}
			f.reader.Reset(f.file, path, WithColumns(f.Columns...))
		}

		if f.reader.Scan() {
			return true
		}
		err := f.reader.Err()
		f.close()
		if err != nil {
			f.err = err
			return false
		}
	}
}

func (f *Files) close() {
	if f.file != nil && !f.isStdin {
		f.file.Close()
	}
	f.file = nil
}

// Row returns the row that was just read by Scan.
func (f *Files) Row() *Row {
	return f.reader.Row()
}

// Err returns the error that stopped Scan, if any.
// If Scan stopped because it read each file to completion,
// or if Scan has not yet returned false, Err returns nil.
func (f *Files) Err() error {
	return f.err
}

// ReadAll reads every row of the files at paths. Files without a
// header row are read with the given column layout.
func ReadAll(columns []string, paths ...string) ([]*Row, error) {
	files := Files{Paths: paths, Columns: columns}
	var rows []*Row
	for files.Scan() {
		rows = append(rows, files.Row())
	}
	if err := files.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}
