// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import (
	"math"
	"testing"
)

func TestScalerFormat(t *testing.T) {
	test := func(s Scaler, val float64, want string) {
		t.Helper()
		got := s.Format(val)
		if got != want {
			t.Errorf("for %v, got %s, want %s", val, got, want)
		}
	}

	test(Scaler{2, BytesPerSec}, 281.568, "281.57 GB/s")
	test(Scaler{2, BytesPerSec}, 0, "0.00 GB/s")
	test(Scaler{3, FLOPS}, 1.23456, "1.235 GFLOPS")
	test(Scaler{1, Ratio}, 7.25, "7.2")
	test(Scaler{0, Percent}, 99.6, "100 %")
}

func TestNoOpScaler(t *testing.T) {
	test := func(val float64, want string) {
		t.Helper()
		got := Exact(val)
		if got != want {
			t.Errorf("for %v, got %s, want %s", val, got, want)
		}
	}

	test(1, "1")
	test(123456789, "123456789")
	test(123.456789, "123.456789")
	test(281.568, "281.568")
}

func TestRound(t *testing.T) {
	test := func(val float64, digits int, want float64) {
		t.Helper()
		got := Round(val, digits)
		if got != want && !(math.IsNaN(got) && math.IsNaN(want)) {
			t.Errorf("Round(%v, %d) = %v, want %v", val, digits, got, want)
		}
	}

	test(1.23456, 3, 1.235)
	test(1.2344, 3, 1.234)
	test(-1.23456, 3, -1.235)
	test(12.0, 3, 12)
	test(0.0005, 3, 0.001) // 0.0005 is slightly above half in binary
	test(2.5, 0, 2)
	test(math.NaN(), 3, math.NaN())
	test(math.Inf(1), 3, math.Inf(1))
}

func TestConvert(t *testing.T) {
	test := func(u Unit, raw, want float64) {
		t.Helper()
		got := u.Convert(raw)
		if math.Abs(got-want) > 1e-9*math.Abs(want) {
			t.Errorf("%s: Convert(%v) = %v, want %v", u.Display, raw, got, want)
		}
	}

	test(BytesPerSec, 281568000000, 281.568)
	test(FLOPS, 1.5e9, 1.5)
	test(Ratio, 3.5, 3.5)
	test(Percent, 87.5, 87.5)
}

func TestForColumn(t *testing.T) {
	test := func(col string, want Unit) {
		t.Helper()
		if got := ForColumn(col); got != want {
			t.Errorf("ForColumn(%q) = %+v, want %+v", col, got, want)
		}
	}

	test("bandwidth", BytesPerSec)
	test("Bandwidth", BytesPerSec)
	test("flops", FLOPS)
	test("efficiency1", Percent)
	test("efficiency2", Percent)
	test("speedup1", Ratio)
	test("anything", Ratio)
}
