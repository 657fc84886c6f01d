// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report turns parsed result rows into the bandwidth chart,
// the OpenMP scaling charts, and the ILP tables.
package report

import (
	"math/bits"

	"github.com/pkg/errors"
	"gonum.org/v1/plot/plotter"

	"github.com/matbench/benchplot/benchcsv"
	"github.com/matbench/benchplot/benchunit"
	"github.com/matbench/benchplot/chart"
	"github.com/matbench/benchplot/extrema"
)

// Options configures the OpenMP charts.
type Options struct {
	// Exp selects the problem size: only rows with n == 2^Exp
	// are used.
	Exp int

	// Order lists the codes to draw, in drawing order.
	Order []string

	// XTicks are the thread counts marked on the x axis.
	XTicks []float64

	// PeakBandwidth is drawn as a reference line, in GB/s.
	// Zero disables the line.
	PeakBandwidth float64

	// LabelOffset is the vertical distance, in GB/s, between
	// a point or line and its label.
	LabelOffset float64

	// SeriesSuffix is appended to each code in the bandwidth
	// chart legend.
	SeriesSuffix string
}

// Size returns the problem size 2^exp.
func Size(exp int) (int, error) {
	if exp < 0 || exp >= bits.UintSize-1 {
		return 0, errors.Errorf("size exponent %d out of range", exp)
	}
	return 1 << uint(exp), nil
}

// selectRows returns the rows at the problem size selected by opts,
// sorted by code and size. The sort does not reorder rows of the same
// code, so the first of several equal peaks is still the first in
// the file.
func selectRows(rows []*benchcsv.Row, opts Options) ([]*benchcsv.Row, error) {
	n, err := Size(opts.Exp)
	if err != nil {
		return nil, err
	}
	sel := benchcsv.FilterN(rows, n)
	benchcsv.SortByOrder(sel, nil)
	return sel, nil
}

// colors assigns each code of rows a palette color, in order of
// first appearance.
func colors(rows []*benchcsv.Row) map[string]int {
	idx := make(map[string]int)
	for i, c := range benchcsv.Codes(rows) {
		idx[c] = i
	}
	return idx
}

func seriesPoints(s extrema.Series) plotter.XYs {
	pts := make(plotter.XYs, len(s.Observations))
	for i, o := range s.Observations {
		pts[i].X = float64(o.X)
		pts[i].Y = o.Y
	}
	return pts
}

// BandwidthData is the data behind the bandwidth chart.
type BandwidthData struct {
	Size   int
	Series []extrema.Series
	Peaks  *extrema.Result
}

// BandwidthSeries selects the bandwidth of every code in opts.Order
// at the selected problem size, in GB/s, and finds the peaks.
func BandwidthSeries(rows []*benchcsv.Row, opts Options) (*BandwidthData, []*benchcsv.Row, error) {
	sel, err := selectRows(rows, opts)
	if err != nil {
		return nil, nil, err
	}
	obs, err := benchcsv.Observations(sel, "bandwidth", benchunit.BytesPerSec)
	if err != nil {
		return nil, nil, err
	}
	series := extrema.Group(obs, opts.Order)
	n, _ := Size(opts.Exp)
	return &BandwidthData{n, series, extrema.ComputeSeries(series)}, sel, nil
}

// Bandwidth builds the bandwidth chart: one line per code, the
// overall peak annotated, and the peak bandwidth of the machine as a
// reference line.
func Bandwidth(rows []*benchcsv.Row, opts Options) (*chart.Chart, *BandwidthData, error) {
	data, sel, err := BandwidthSeries(rows, opts)
	if err != nil {
		return nil, nil, err
	}

	c := &chart.Chart{
		XLabel: "Number of threads",
		YLabel: "Bandwidth (GB/s)",
		XTicks: opts.XTicks,
		LogX:   true,
	}
	palette := chart.Palette(len(benchcsv.Codes(sel)))
	colorOf := colors(sel)
	for _, s := range data.Series {
		c.Series = append(c.Series, chart.Series{
			Label:  s.Category + opts.SeriesSuffix,
			Points: seriesPoints(s),
			Color:  palette[colorOf[s.Category]],
		})
	}

	if g := data.Peaks.Global; data.Peaks.Found() && g.Y > 0 {
		c.Annotations = append(c.Annotations, chart.Annotation{
			X:    float64(g.X),
			Y:    g.Y + opts.LabelOffset,
			Text: benchunit.Scaler{Prec: 2, Unit: benchunit.BytesPerSec}.Format(g.Y),
		})
	}

	if opts.PeakBandwidth != 0 {
		ref := chart.Reference{
			Y:      opts.PeakBandwidth,
			Label:  benchunit.Exact(opts.PeakBandwidth) + " " + benchunit.BytesPerSec.Display,
			LabelY: opts.PeakBandwidth - opts.LabelOffset,
			LabelX: 1,
		}
		switch {
		case len(opts.XTicks) > 1:
			ref.LabelX = opts.XTicks[1]
		case len(opts.XTicks) == 1:
			ref.LabelX = opts.XTicks[0]
		}
		c.References = append(c.References, ref)
	}
	return c, data, nil
}

// A Metric is one of the per-thread scaling measurements of
// results_omp.csv.
type Metric struct {
	Name     string  // chart file name
	Column   string  // result column
	YLabel   string  // y axis label
	Baseline float64 // value of the sequential run at one thread
}

var (
	SymmetrySpeedup     = Metric{"speedup-symmetry", "speedup1", "Speedup", 1}
	SymmetryEfficiency  = Metric{"efficiency-symmetry", "efficiency1", "Efficiency", 100}
	TransposeSpeedup    = Metric{"speedup-transpose", "speedup2", "Speedup", 1}
	TransposeEfficiency = Metric{"efficiency-transpose", "efficiency2", "Efficiency", 100}
)

// ScalingMetrics lists the scaling charts in the order they are drawn.
var ScalingMetrics = []Metric{SymmetrySpeedup, SymmetryEfficiency, TransposeSpeedup, TransposeEfficiency}

// Scaling builds the chart of metric m: one line per code, each
// starting from the sequential baseline at one thread.
func Scaling(rows []*benchcsv.Row, opts Options, m Metric) (*chart.Chart, error) {
	sel, err := selectRows(rows, opts)
	if err != nil {
		return nil, err
	}
	obs, err := benchcsv.Observations(sel, m.Column, benchunit.ForColumn(m.Column))
	if err != nil {
		return nil, err
	}

	c := &chart.Chart{
		XLabel: "Number of threads",
		YLabel: m.YLabel,
		XTicks: opts.XTicks,
		LogX:   true,
	}
	palette := chart.Palette(len(benchcsv.Codes(sel)))
	colorOf := colors(sel)
	for _, s := range extrema.Group(obs, opts.Order) {
		pts := append(plotter.XYs{{X: 1, Y: m.Baseline}}, seriesPoints(s)...)
		c.Series = append(c.Series, chart.Series{
			Label:  s.Category,
			Points: pts,
			Color:  palette[colorOf[s.Category]],
		})
	}
	return c, nil
}
