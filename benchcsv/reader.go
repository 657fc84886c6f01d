// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchcsv reads the CSV result files written by the matrix
// benchmark kernels.
//
// Each row names the benchmarked code path ("code"), the problem
// size ("n"), optionally the number of threads ("threads"), and any
// number of numeric measurement columns. The kernels append rows
// without writing a header, so a Reader falls back to a known column
// layout (see OMPColumns and ILPColumns) when the first record is not
// a header.
package benchcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Names of the columns with special meaning. Column names are
// matched case-insensitively.
const (
	CodeColumn    = "code"
	SizeColumn    = "n"
	ThreadsColumn = "threads"
)

// OMPColumns is the column layout of results_omp.csv.
var OMPColumns = []string{"code", "n", "threads", "speedup1", "efficiency1", "speedup2", "efficiency2", "bandwidth"}

// ILPColumns is the column layout of results_ilp.csv.
var ILPColumns = []string{"code", "n", "flops", "bandwidth"}

// A Row is a single parsed result record.
type Row struct {
	Code    string
	N       int
	Threads int // 0 if the file has no threads column

	// Values maps each measurement column to its value.
	Values map[string]float64

	fileName string
	line     int
}

// Value returns the value of measurement column col.
func (r *Row) Value(col string) (float64, bool) {
	v, ok := r.Values[strings.ToLower(col)]
	return v, ok
}

// Pos returns the file name and line number of r.
func (r *Row) Pos() (fileName string, line int) {
	return r.fileName, r.line
}

// A SyntaxError represents a syntax error on a particular line of a
// result file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// A Reader reads result rows from a CSV file.
//
// Its API is modeled on bufio.Scanner. Unlike bufio.Scanner, each Row
// returned by a Reader is freshly allocated and owned by the caller.
type Reader struct {
	cr       *csv.Reader
	fileName string
	defaults []string

	// cols is the active column layout, or nil before the first
	// record has been read.
	cols []string
	code int
	size int
	thr  int

	row *Row
	err error
}

// An Option configures a Reader.
type Option func(r *Reader)

// WithColumns sets the column layout used when the input has no
// header row. Without this option, headerless input is an error.
func WithColumns(cols ...string) Option {
	return func(r *Reader) {
		r.defaults = cols
	}
}

// NewReader constructs a reader to parse result rows from r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string, opts ...Option) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName, opts...)
	return reader
}

// Reset resets the reader to begin reading from a new input.
// The column layout is forgotten, so the new input may have its own
// header.
func (r *Reader) Reset(ior io.Reader, fileName string, opts ...Option) {
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.cr = csv.NewReader(ior)
	r.cr.FieldsPerRecord = -1
	r.cr.TrimLeadingSpace = true
	r.fileName = fileName
	r.cols = nil
	r.row = nil
	r.err = nil
	for _, o := range opts {
		o(r)
	}
}

func (r *Reader) newSyntaxError(line int, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{r.fileName, line, fmt.Sprintf(format, args...)}
}

// Scan advances the reader to the next row and reports whether a
// row was read. The caller should use the Row method to get the row.
// If Scan reaches EOF or an error occurs, it returns false, in which
// case the caller should use the Err method to check for errors.
//
// Malformed input stops the scan: there is no attempt to skip bad
// rows.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	r.row = nil

	for {
		rec, err := r.cr.Read()
		if err == io.EOF {
			return false
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				r.err = r.newSyntaxError(pe.Line, "%v", pe.Err)
			} else {
				r.err = errors.Wrap(err, r.fileName)
			}
			return false
		}
		line, _ := r.cr.FieldPos(0)

		if r.cols == nil {
			isHeader, err := r.setLayout(rec, line)
			if err != nil {
				r.err = err
				return false
			}
			if isHeader {
				continue
			}
		}

		row, err := r.parseRow(rec, line)
		if err != nil {
			r.err = err
			return false
		}
		r.row = row
		return true
	}
}

// setLayout establishes the column layout from the first record.
// It reports whether rec was a header.
func (r *Reader) setLayout(rec []string, line int) (bool, error) {
	isHeader := false
	for _, f := range rec {
		if strings.EqualFold(strings.TrimSpace(f), CodeColumn) {
			isHeader = true
			break
		}
	}

	cols := r.defaults
	if isHeader {
		cols = rec
	} else if cols == nil {
		return false, r.newSyntaxError(line, "missing header row")
	}

	r.cols = make([]string, len(cols))
	r.code, r.size, r.thr = -1, -1, -1
	for i, c := range cols {
		c = strings.ToLower(strings.TrimSpace(c))
		r.cols[i] = c
		switch c {
		case CodeColumn:
			r.code = i
		case SizeColumn:
			r.size = i
		case ThreadsColumn:
			r.thr = i
		}
	}
	if r.code < 0 {
		return false, r.newSyntaxError(line, "no %q column", CodeColumn)
	}
	if r.size < 0 {
		return false, r.newSyntaxError(line, "no %q column", SizeColumn)
	}
	return isHeader, nil
}

func (r *Reader) parseRow(rec []string, line int) (*Row, error) {
	if len(rec) != len(r.cols) {
		return nil, r.newSyntaxError(line, "expected %d fields, found %d", len(r.cols), len(rec))
	}

	row := &Row{
		Code:     strings.TrimSpace(rec[r.code]),
		Values:   make(map[string]float64, len(rec)),
		fileName: r.fileName,
		line:     line,
	}
	var err error
	if row.N, err = strconv.Atoi(strings.TrimSpace(rec[r.size])); err != nil {
		return nil, r.newSyntaxError(line, "%s: invalid integer %q", SizeColumn, rec[r.size])
	}
	if r.thr >= 0 {
		if row.Threads, err = strconv.Atoi(strings.TrimSpace(rec[r.thr])); err != nil {
			return nil, r.newSyntaxError(line, "%s: invalid integer %q", ThreadsColumn, rec[r.thr])
		}
	}
	for i, f := range rec {
		if i == r.code || i == r.size || i == r.thr {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, r.newSyntaxError(line, "%s: invalid number %q", r.cols[i], f)
		}
		row.Values[r.cols[i]] = v
	}
	return row, nil
}

// Row returns the row that was just read by Scan.
func (r *Reader) Row() *Row {
	return r.row
}

// Columns returns the column layout in use, or nil if no record has
// been read yet.
func (r *Reader) Columns() []string {
	return r.cols
}

// Err returns the first error encountered by the Reader, if any.
func (r *Reader) Err() error {
	return r.err
}
