// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pivot arranges result rows into a code × problem size grid
// of a single measurement.
package pivot

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"

	"github.com/matbench/benchplot/benchcsv"
	"github.com/matbench/benchplot/benchunit"
	"github.com/matbench/benchplot/internal/texttab"
)

// IndexHeader is the header of the code column of a rendered Grid.
const IndexHeader = "code"

// A Cell is a grid value. OK is false if no row supplied the cell.
type Cell struct {
	Value float64
	OK    bool
}

// A Grid holds one measurement pivoted into codes (rows) by problem
// sizes (columns).
type Grid struct {
	Codes []string // row keys, in code order
	Sizes []int    // column keys, ascending

	// Dropped lists the codes found in the input that are not in
	// the code order, in order of first appearance. Their rows
	// are not part of the grid.
	Dropped []string

	cells [][]Cell // [code][size]
}

// record is one row of the table handed to table.Pivot. Its exported
// field names become column names.
type record struct {
	Code string
	N    string
	V    Cell
}

// Build pivots column of rows into a Grid. Values are converted to
// unit's display unit and rounded to prec digits after the decimal
// point. Rows are ordered by their position of code in order; codes
// not in order are dropped. A second row for the same code and size
// is an error.
func Build(rows []*benchcsv.Row, order []string, column string, unit benchunit.Unit, prec int) (*Grid, error) {
	g := new(Grid)

	inOrder := make(map[string]bool, len(order))
	for _, c := range order {
		inOrder[c] = true
	}
	var kept []*benchcsv.Row
	dropped := make(map[string]bool)
	for _, r := range rows {
		if inOrder[r.Code] {
			kept = append(kept, r)
		} else if !dropped[r.Code] {
			dropped[r.Code] = true
			g.Dropped = append(g.Dropped, r.Code)
		}
	}
	benchcsv.SortByOrder(kept, order)

	type key struct {
		code string
		n    int
	}
	seen := make(map[key]bool)
	recs := make([]record, 0, len(kept))
	for _, r := range kept {
		v, ok := r.Value(column)
		if !ok {
			file, line := r.Pos()
			return nil, &benchcsv.SyntaxError{FileName: file, Line: line, Msg: fmt.Sprintf("no %q column", column)}
		}
		k := key{r.Code, r.N}
		if seen[k] {
			file, line := r.Pos()
			return nil, &benchcsv.SyntaxError{FileName: file, Line: line, Msg: fmt.Sprintf("duplicate %s result for code %q at n=%d", column, r.Code, r.N)}
		}
		seen[k] = true
		recs = append(recs, record{
			Code: r.Code,
			N:    strconv.Itoa(r.N),
			V:    Cell{benchunit.Round(unit.Convert(v), prec), true},
		})
	}
	if len(recs) == 0 {
		return g, nil
	}

	// Pivot the size column into one column per distinct size.
	// Grouping by the remaining Code column keeps codes in order
	// of first appearance, which is code order after the sort.
	piv := table.Pivot(table.TableFromStructs(recs), "N", "V")
	t := piv.Table(table.RootGroupID)

	g.Codes = t.MustColumn("Code").([]string)
	for _, col := range t.Columns() {
		if col == "Code" {
			continue
		}
		n, err := strconv.Atoi(col)
		if err != nil {
			panic(fmt.Sprintf("pivot produced non-size column %q", col))
		}
		g.Sizes = append(g.Sizes, n)
	}
	sort.Ints(g.Sizes)

	g.cells = make([][]Cell, len(g.Codes))
	for i := range g.cells {
		g.cells[i] = make([]Cell, len(g.Sizes))
	}
	for j, n := range g.Sizes {
		col := t.MustColumn(strconv.Itoa(n)).([]Cell)
		for i := range g.Codes {
			g.cells[i][j] = col[i]
		}
	}
	return g, nil
}

// At returns the value for code at problem size n.
func (g *Grid) At(code string, n int) (float64, bool) {
	for i, c := range g.Codes {
		if c != code {
			continue
		}
		for j, s := range g.Sizes {
			if s == n {
				cell := g.cells[i][j]
				return cell.Value, cell.OK
			}
		}
	}
	return 0, false
}

// GeoMean returns the geometric mean of each size column over the
// codes that have a value at that size. A column's result is not OK
// if it has no values or any value is not positive.
func (g *Grid) GeoMean() []Cell {
	out := make([]Cell, len(g.Sizes))
	for j := range g.Sizes {
		var xs []float64
		for i := range g.Codes {
			if c := g.cells[i][j]; c.OK {
				xs = append(xs, c.Value)
			}
		}
		if len(xs) == 0 {
			continue
		}
		gm := stats.GeoMean(xs)
		if !math.IsNaN(gm) && !math.IsInf(gm, 0) {
			out[j] = Cell{gm, true}
		}
	}
	return out
}

// Table lays out g as a text table with a header row. Values are
// printed with prec digits after the decimal point and missing values
// as "nan". If geomean is set, a final row holds the geometric mean
// of each column.
func (g *Grid) Table(prec int, geomean bool) *texttab.Table {
	format := func(c Cell) string {
		if !c.OK {
			return "nan"
		}
		return strconv.FormatFloat(c.Value, 'f', prec, 64)
	}

	tab := new(texttab.Table)
	tab.Row().Cell(IndexHeader)
	for _, n := range g.Sizes {
		tab.Cell(strconv.Itoa(n), texttab.Right)
	}
	tab.SetHeaderRows(1)

	for i, code := range g.Codes {
		tab.Row().Cell(code)
		for j := range g.Sizes {
			tab.Cell(format(g.cells[i][j]), texttab.Right)
		}
	}
	if geomean && len(g.Codes) > 0 {
		tab.Row().Cell("geomean")
		for _, c := range g.GeoMean() {
			tab.Cell(format(c), texttab.Right)
		}
	}
	return tab
}
