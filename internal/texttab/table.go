// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out text tables, either as plain aligned
// columns or as a bordered grid.
package texttab

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table does layout of text-based tables.
//
// Many of its methods return the Table so callers can easily
// chain them to build up many cells at once.
type Table struct {
	cells [][]textCell // by row, then column
	cols  int

	headerRows int

	curRow, curCol int
}

type textCell struct {
	value     string
	alignment align
}

type CellOption func(c *textCell)

var (
	Left   CellOption = func(c *textCell) { c.alignment = alignLeft }
	Center            = func(c *textCell) { c.alignment = alignCenter }
	Right             = func(c *textCell) { c.alignment = alignRight }
)

type align int

const (
	alignLeft align = iota
	alignCenter
	alignRight
)

// pad pads s to width w according to a. Left-aligned text is padded
// on the right only if trailing is true.
func (a align) pad(s string, w int, trailing bool) string {
	n := w - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	switch a {
	case alignCenter:
		l := n / 2
		s = strings.Repeat(" ", l) + s
		n -= l
	case alignRight:
		return strings.Repeat(" ", n) + s
	}
	if trailing {
		s += strings.Repeat(" ", n)
	}
	return s
}

// Row starts a new row in table t.
func (t *Table) Row() *Table {
	if len(t.cells) > 0 {
		t.curRow++
	}
	for len(t.cells) <= t.curRow {
		t.cells = append(t.cells, nil)
	}
	t.curCol = 0
	return t
}

// Col skips to column "col" in table t. Columns are numbered starting
// at 0.
func (t *Table) Col(col int) *Table {
	if col < t.curCol {
		panic(fmt.Sprintf("cannot move from column %d to earlier column %d", t.curCol, col))
	}
	t.curCol = col
	return t
}

// CurCol returns the current column index.
func (t *Table) CurCol() int {
	return t.curCol
}

// Cell adds a cell at the current row and column.
func (t *Table) Cell(value string, opts ...CellOption) *Table {
	if len(t.cells) == 0 {
		t.Row()
	}
	row := t.cells[t.curRow]
	for len(row) <= t.curCol {
		row = append(row, textCell{})
	}
	c := textCell{value: value}
	for _, o := range opts {
		o(&c)
	}
	row[t.curCol] = c
	t.cells[t.curRow] = row

	t.curCol++
	if t.curCol > t.cols {
		t.cols = t.curCol
	}
	return t
}

// SetHeaderRows marks the first n rows as header rows. In grid
// format, header rows are separated from the body by a double rule.
func (t *Table) SetHeaderRows(n int) {
	t.headerRows = n
}

func (t *Table) widths() []int {
	ws := make([]int, t.cols)
	for _, row := range t.cells {
		for col, cell := range row {
			if w := utf8.RuneCountInString(cell.value); w > ws[col] {
				ws[col] = w
			}
		}
	}
	return ws
}

func (t *Table) cell(row, col int) textCell {
	if col < len(t.cells[row]) {
		return t.cells[row][col]
	}
	return textCell{}
}

// Format lays out table t as space-separated columns and writes it
// to w. Empty cells at the end of a row are not printed, and no row
// has trailing spaces.
func (t *Table) Format(w io.Writer) error {
	ws := t.widths()
	var buf strings.Builder
	for row := range t.cells {
		// Find the last non-empty cell.
		last := -1
		for col := range t.cells[row] {
			if strings.TrimSpace(t.cells[row][col].value) != "" {
				last = col
			}
		}
		buf.Reset()
		for col := 0; col <= last; col++ {
			if col > 0 {
				buf.WriteByte(' ')
			}
			c := t.cell(row, col)
			buf.WriteString(c.alignment.pad(c.value, ws[col], col < last))
		}
		buf.WriteByte('\n')
		if _, err := io.WriteString(w, buf.String()); err != nil {
			return err
		}
	}
	return nil
}

// FormatGrid lays out table t with borders around every cell and
// writes it to w:
//
//	+------+-------+
//	| code |   256 |
//	+======+=======+
//	| S    | 1.235 |
//	+------+-------+
func (t *Table) FormatGrid(w io.Writer) error {
	if t.cols == 0 {
		return nil
	}
	ws := t.widths()
	rule := func(fill string) string {
		var b strings.Builder
		b.WriteByte('+')
		for _, cw := range ws {
			b.WriteString(strings.Repeat(fill, cw+2))
			b.WriteByte('+')
		}
		b.WriteByte('\n')
		return b.String()
	}
	thin, thick := rule("-"), rule("=")

	var buf strings.Builder
	buf.WriteString(thin)
	for row := range t.cells {
		buf.WriteByte('|')
		for col := range ws {
			c := t.cell(row, col)
			buf.WriteByte(' ')
			buf.WriteString(c.alignment.pad(c.value, ws[col], true))
			buf.WriteString(" |")
		}
		buf.WriteByte('\n')
		if row == t.headerRows-1 && row != len(t.cells)-1 {
			buf.WriteString(thick)
		} else {
			buf.WriteString(thin)
		}
	}
	_, err := io.WriteString(w, buf.String())
	return err
}
