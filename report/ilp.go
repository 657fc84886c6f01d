// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"io"

	"github.com/matbench/benchplot/benchcsv"
	"github.com/matbench/benchplot/benchunit"
	"github.com/matbench/benchplot/pivot"
)

// A Table is one titled ILP pivot table.
type Table struct {
	Title  string
	Column string
	Grid   *pivot.Grid
}

var ilpTables = []struct {
	title, column string
	unit          benchunit.Unit
}{
	{"FLOPS (GFLOPS) FROM EXPERIMENTS", "flops", benchunit.FLOPS},
	{"BANDWIDTH (GB/s) FROM EXPERIMENTS", "bandwidth", benchunit.BytesPerSec},
}

// ILP pivots the ILP results into the throughput table and the
// bandwidth table, each with one row per code in order and one column
// per problem size. Values are rounded to prec digits.
func ILP(rows []*benchcsv.Row, order []string, prec int) ([]*Table, error) {
	var out []*Table
	for _, t := range ilpTables {
		g, err := pivot.Build(rows, order, t.column, t.unit, prec)
		if err != nil {
			return nil, err
		}
		out = append(out, &Table{t.title, t.column, g})
	}
	return out, nil
}

// WriteTables writes tables to w in grid layout, separated by blank
// lines, each preceded by its title.
func WriteTables(w io.Writer, tables []*Table, prec int, geomean bool) error {
	for i, t := range tables {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, t.Title); err != nil {
			return err
		}
		if err := t.Grid.Table(prec, geomean).FormatGrid(w); err != nil {
			return err
		}
	}
	return nil
}
