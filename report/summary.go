// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/matbench/benchplot/benchunit"
	"github.com/matbench/benchplot/extrema"
	"github.com/matbench/benchplot/internal/texttab"
)

// Summary lays out the per-code peaks of res followed by the overall
// peak. Values are in unit's display unit and printed with prec
// digits. The overall row holds the global extremum, which stays at
// (0, 0) unless some peak is above zero, or "-" if no code was found.
func Summary(res *extrema.Result, unit benchunit.Unit, prec int) *texttab.Table {
	scale := benchunit.Scaler{Prec: prec, Unit: unit}

	tab := new(texttab.Table)
	tab.Row().Cell("code").Cell("threads", texttab.Right).Cell("peak", texttab.Right)
	tab.SetHeaderRows(1)
	for _, c := range res.Categories {
		tab.Row().Cell(c.Category)
		tab.Cell(strconv.Itoa(c.X), texttab.Right).Cell(scale.Format(c.Y), texttab.Right)
	}
	tab.Row().Cell("overall")
	if res.Found() {
		tab.Cell(strconv.Itoa(res.Global.X), texttab.Right).Cell(scale.Format(res.Global.Y), texttab.Right)
	} else {
		tab.Cell("-", texttab.Right).Cell("-", texttab.Right)
	}
	return tab
}

// WriteSeriesCSV writes series to w as CSV with a header row of
// code, threads and the unit-qualified value column. Values are
// written exactly.
func WriteSeriesCSV(w io.Writer, series []extrema.Series, column string, unit benchunit.Unit) error {
	o := csv.NewWriter(w)
	valCol := column
	if unit.Display != "" {
		valCol += " (" + unit.Display + ")"
	}
	o.Write([]string{"code", "threads", valCol})
	for _, s := range series {
		for _, obs := range s.Observations {
			o.Write([]string{s.Category, strconv.Itoa(obs.X), benchunit.Exact(obs.Y)})
		}
	}
	o.Flush()
	return o.Error()
}
