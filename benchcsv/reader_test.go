// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"fmt"
	"sort"
	"strings"
	"testing"
)

func parseAll(t *testing.T, data string, opts ...Option) ([]*Row, error) {
	t.Helper()
	r := NewReader(strings.NewReader(data), "test", opts...)
	var out []*Row
	for r.Scan() {
		out = append(out, r.Row())
	}
	return out, r.Err()
}

// rowString formats a row compactly, with values in column order.
func rowString(r *Row) string {
	var keys []string
	for k := range r.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	fmt.Fprintf(&b, "%s n=%d t=%d", r.Code, r.N, r.Threads)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, r.Values[k])
	}
	return b.String()
}

func TestReader(t *testing.T) {
	check := func(data string, opts []Option, want ...string) {
		t.Helper()
		rows, err := parseAll(t, data, opts...)
		wantErr := ""
		if len(want) > 0 && strings.HasPrefix(want[len(want)-1], "err ") {
			wantErr = want[len(want)-1][len("err "):]
			want = want[:len(want)-1]
		}
		var got []string
		for _, r := range rows {
			got = append(got, rowString(r))
		}
		if strings.Join(got, "\n") != strings.Join(want, "\n") {
			t.Errorf("got:\n%s\nwant:\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
		}
		switch {
		case err == nil && wantErr != "":
			t.Errorf("got success, want error %s", wantErr)
		case err != nil && wantErr == "":
			t.Errorf("got error %s", err)
		case err != nil && err.Error() != wantErr:
			t.Errorf("got error %s, want error %s", err, wantErr)
		}
	}
	omp := []Option{WithColumns(OMPColumns...)}
	ilp := []Option{WithColumns(ILPColumns...)}

	// Header row.
	check("code,n,flops,bandwidth\nS,256,1.5,2\n", nil,
		"S n=256 t=0 bandwidth=2 flops=1.5")

	// Header with odd spacing and case.
	check("Code, N ,Threads,Bandwidth\nO, 64, 4, 10\n", nil,
		"O n=64 t=4 bandwidth=10")

	// Headerless with a default layout.
	check("OB,1024,8,1,2,3,4,5\n", omp,
		"OB n=1024 t=8 bandwidth=5 efficiency1=2 efficiency2=4 speedup1=1 speedup2=3")
	check("BO1,512,3e9,4e9\n", ilp,
		"BO1 n=512 t=0 bandwidth=4e+09 flops=3e+09")

	// A header wins over the default layout.
	check("n,code,flops\n4,S,1\n", omp,
		"S n=4 t=0 flops=1")

	// Headerless without a default layout.
	check("S,256,1,2\n", nil,
		"err test:1: missing header row")

	// Empty input.
	check("", nil)
	check("code,n,flops\n", nil)

	// Blank lines are skipped.
	check("code,n,flops\n\nS,1,2\n\n", nil,
		"S n=1 t=0 flops=2")

	// Bad rows stop the scan.
	check("code,n,flops\nS,1,2\nS,x,2\nS,3,4\n", nil,
		"S n=1 t=0 flops=2",
		`err test:3: n: invalid integer "x"`)
	check("code,n,threads,flops\nS,1,two,2\n", nil,
		`err test:2: threads: invalid integer "two"`)
	check("code,n,flops\nS,1,\n", nil,
		`err test:2: flops: invalid number ""`)
	check("code,n,flops\nS,1\n", nil,
		"err test:2: expected 3 fields, found 2")
	check("flops,bandwidth\n1,2\n", nil,
		`err test:1: missing header row`)
	check("code,flops\nS,2\n", nil,
		`err test:1: no "n" column`)
}

func TestRowPos(t *testing.T) {
	rows, err := parseAll(t, "code,n,x\nA,1,1\nB,2,2\n")
	if err != nil {
		t.Fatal(err)
	}
	for i, r := range rows {
		file, line := r.Pos()
		if file != "test" || line != i+2 {
			t.Errorf("row %d: got pos %s:%d, want test:%d", i, file, line, i+2)
		}
	}
}
