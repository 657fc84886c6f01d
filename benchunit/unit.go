// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchunit converts raw benchmark measurements into the
// units they are reported in and formats them.
package benchunit

import (
	"math"
	"strconv"
	"strings"
)

// A Unit describes how a raw measurement is displayed. Raw values
// are multiplied by Factor to obtain values in the Display unit.
type Unit struct {
	Name    string  // unit of the raw measurement, e.g. "B/s"
	Display string  // unit after conversion, e.g. "GB/s"
	Factor  float64 // raw-to-display multiplier
}

var (
	// BytesPerSec is memory bandwidth, displayed in GB/s.
	BytesPerSec = Unit{"B/s", "GB/s", 1e-9}
	// FLOPS is floating point throughput, displayed in GFLOPS.
	FLOPS = Unit{"FLOP/s", "GFLOPS", 1e-9}
	// Ratio is a dimensionless ratio, such as a speedup.
	Ratio = Unit{"", "", 1}
	// Percent is a percentage, such as a parallel efficiency.
	Percent = Unit{"%", "%", 1}
)

// Convert returns raw expressed in u's display unit.
func (u Unit) Convert(raw float64) float64 {
	return raw * u.Factor
}

// String returns the display unit.
func (u Unit) String() string {
	return u.Display
}

// ForColumn returns the Unit of a result file column. Columns named
// after bandwidth are in bytes per second, flops columns are in
// floating point operations per second, efficiency columns are
// percentages, and everything else is a plain ratio.
func ForColumn(column string) Unit {
	c := strings.ToLower(column)
	switch {
	case strings.HasPrefix(c, "bandwidth"):
		return BytesPerSec
	case strings.HasPrefix(c, "flops"):
		return FLOPS
	case strings.HasPrefix(c, "efficiency"):
		return Percent
	}
	return Ratio
}

// Round rounds v to the given number of digits after the decimal
// point. Rounding is done on the exact binary value of v; exact
// halfway cases round to even.
func Round(v float64, digits int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	s := strconv.FormatFloat(v, 'f', digits, 64)
	r, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// FormatFloat output always parses.
		panic(err)
	}
	return r
}
