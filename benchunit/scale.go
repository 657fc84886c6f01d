// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import (
	"strconv"
)

// A Scaler formats values with a fixed number of digits after the
// decimal point, followed by a unit.
type Scaler struct {
	Prec int  // Digits after the decimal point
	Unit Unit // Unit appended after a space, if it has a display name
}

// Format formats val, which must already be in s.Unit's display
// unit. For example, Scaler{2, BytesPerSec}.Format(281.568) returns
// "281.57 GB/s".
func (s Scaler) Format(val float64) string {
	buf := make([]byte, 0, 20)
	buf = strconv.AppendFloat(buf, val, 'f', s.Prec, 64)
	if s.Unit.Display != "" {
		buf = append(buf, ' ')
		buf = append(buf, s.Unit.Display...)
	}
	return string(buf)
}

// NoOpScaler formats numbers with the smallest number of digits
// necessary to capture the exact value, and no unit. This is
// intended for output consumed by another program, such as CSV.
var NoOpScaler = Scaler{-1, Ratio}

// Exact formats val the way the value was written, keeping every
// digit given. Integer-valued floats are printed without a decimal
// point.
func Exact(val float64) string {
	return NoOpScaler.Format(val)
}
