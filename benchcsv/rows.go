// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"fmt"
	"sort"

	"github.com/matbench/benchplot/benchunit"
	"github.com/matbench/benchplot/extrema"
)

// FilterN returns the rows whose size parameter is n, in their
// original order.
func FilterN(rows []*Row, n int) []*Row {
	var out []*Row
	for _, r := range rows {
		if r.N == n {
			out = append(out, r)
		}
	}
	return out
}

// SortByOrder sorts rows by code, then size.
// Codes are ranked by their position in order; codes missing from
// order sort after all ranked codes, alphabetically. The sort is
// stable, so otherwise equal rows keep their input order.
func SortByOrder(rows []*Row, order []string) {
	rank := make(map[string]int, len(order))
	for i, c := range order {
		if _, ok := rank[c]; !ok {
			rank[c] = i
		}
	}
	key := func(code string) int {
		if r, ok := rank[code]; ok {
			return r
		}
		return len(order)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if ka, kb := key(a.Code), key(b.Code); ka != kb {
			return ka < kb
		}
		if a.Code != b.Code {
			return a.Code < b.Code
		}
		return a.N < b.N
	})
}

// Codes returns the distinct codes of rows in order of first
// appearance.
func Codes(rows []*Row) []string {
	var out []string
	seen := make(map[string]bool)
	for _, r := range rows {
		if !seen[r.Code] {
			seen[r.Code] = true
			out = append(out, r.Code)
		}
	}
	return out
}

// Observations converts rows into observations of column, keyed by
// code and thread count, with values converted to unit's display
// unit. It fails if a row lacks the column.
func Observations(rows []*Row, column string, unit benchunit.Unit) ([]extrema.Observation, error) {
	obs := make([]extrema.Observation, 0, len(rows))
	for _, r := range rows {
		v, ok := r.Value(column)
		if !ok {
			file, line := r.Pos()
			return nil, &SyntaxError{file, line, fmt.Sprintf("no %q column", column)}
		}
		obs = append(obs, extrema.Observation{
			Category: r.Code,
			X:        r.Threads,
			Y:        unit.Convert(v),
		})
	}
	return obs, nil
}
