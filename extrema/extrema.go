// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package extrema finds the peak of each category of a measurement
// series and the peak across all categories.
//
// Observations are first partitioned by category (see Group) and
// then scanned once per category. Only the categories named in the
// caller's category order are considered, and they are considered in
// that order. The order matters only for tie-breaking: the global
// peak is replaced only by a strictly greater value, so when two
// categories peak at the same value the one considered first wins.
package extrema

// An Observation is a single measurement: the value Y of some
// category at input coordinate X (for example, the bandwidth of one
// implementation strategy at a given thread count).
type Observation struct {
	Category string
	X        int
	Y        float64
}

// A CategoryExtremum is the peak of one category's observations.
// X is the coordinate of the first observation, in input order, that
// attains the peak value Y.
type CategoryExtremum struct {
	Category string
	X        int
	Y        float64
}

// A GlobalExtremum is the peak across all considered categories.
// Its zero value, (0, 0), is the sentinel reported when no category
// matched.
type GlobalExtremum struct {
	X int
	Y float64
}

// A Series is the ordered subsequence of observations that share a
// category.
type Series struct {
	Category     string
	Observations []Observation
}

// Result is the outcome of Compute.
type Result struct {
	// Categories lists the extremum of each category present in
	// the input, in category order.
	Categories []CategoryExtremum

	// Global is the peak across Categories.
	Global GlobalExtremum

	index map[string]int
}

// Lookup returns the extremum of category, if it was present.
func (r *Result) Lookup(category string) (CategoryExtremum, bool) {
	if i, ok := r.index[category]; ok {
		return r.Categories[i], true
	}
	return CategoryExtremum{}, false
}

// Found reports whether at least one category in the order was
// present in the input.
func (r *Result) Found() bool {
	return len(r.Categories) > 0
}

// Group partitions obs by category. It returns one Series for each
// category in order that has at least one observation, in the order
// given. Within a Series, observations keep their input order.
// Categories not named in order are dropped, and a category repeated
// in order is only returned once.
func Group(obs []Observation, order []string) []Series {
	byCat := make(map[string][]Observation)
	for _, o := range obs {
		byCat[o.Category] = append(byCat[o.Category], o)
	}

	var out []Series
	seen := make(map[string]bool, len(order))
	for _, cat := range order {
		if seen[cat] {
			continue
		}
		seen[cat] = true
		if s, ok := byCat[cat]; ok {
			out = append(out, Series{cat, s})
		}
	}
	return out
}

// Peak returns the extremum of s. s must have at least one
// observation.
func (s Series) Peak() CategoryExtremum {
	best := s.Observations[0]
	for _, o := range s.Observations[1:] {
		if o.Y > best.Y {
			best = o
		}
	}
	return CategoryExtremum{s.Category, best.X, best.Y}
}

// Compute returns the extremum of every category in order that
// appears in obs, together with the global extremum.
//
// The global extremum starts at (0, 0) and is replaced only when a
// category peak is strictly greater than it.
func Compute(obs []Observation, order []string) *Result {
	return ComputeSeries(Group(obs, order))
}

// ComputeSeries is like Compute, but takes observations that have
// already been partitioned by Group.
func ComputeSeries(series []Series) *Result {
	r := &Result{index: make(map[string]int, len(series))}
	var global GlobalExtremum
	for _, s := range series {
		if len(s.Observations) == 0 {
			continue
		}
		peak := s.Peak()
		r.index[s.Category] = len(r.Categories)
		r.Categories = append(r.Categories, peak)
		if peak.Y > global.Y {
			global = GlobalExtremum{peak.X, peak.Y}
		}
	}
	r.Global = global
	return r
}
