// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart draws line charts of benchmark series with gonum/plot.
package chart

import (
	"image/color"
	"math"
	"strconv"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Series is one line of a chart.
type Series struct {
	Label  string
	Points plotter.XYs
	Color  color.Color // nil picks a color from the palette
}

// An Annotation is a text label drawn centered on a data point.
type Annotation struct {
	X, Y  float64
	Text  string
	Color color.Color // nil means black
}

// A Reference is a horizontal dashed line across the whole x axis,
// with a bold label whose top edge is drawn at (LabelX, LabelY).
type Reference struct {
	Y      float64
	Label  string
	LabelX float64
	LabelY float64
	Color  color.Color // nil means red
}

// A Chart describes a line chart.
type Chart struct {
	Title  string
	XLabel string
	YLabel string

	// XTicks are the only ticks of the x axis, labeled as
	// integers. If empty, the default tick marker is used.
	XTicks []float64
	// LogX selects a logarithmic x axis.
	LogX bool

	Series      []Series
	Annotations []Annotation
	References  []Reference

	// Width and Height are the size of the rendered chart. Zero
	// values select DefaultWidth and DefaultHeight.
	Width, Height vg.Length
	// DPI is the resolution of PNG output. Zero selects DefaultDPI.
	DPI int
}

const (
	DefaultWidth  = 6.4 * vg.Inch
	DefaultHeight = 4.8 * vg.Inch
	DefaultDPI    = 150
)

const (
	pointRad  = 3
	fontSize  = 10
	lineWidth = 1.5
)

var (
	black = color.Black
	red   = color.NRGBA{0xFF, 0, 0, 0xFF}
	// gridColor is a light gray at 70% opacity.
	gridColor = color.NRGBA{0xB0, 0xB0, 0xB0, 0xB3}
)

// Palette returns n distinct series colors. Colors repeat if n is
// larger than the qualitative palette.
func Palette(n int) []color.Color {
	const maxColors = 9 // size of the brewer "Set1" palette
	k := n
	if k < 3 {
		k = 3
	}
	if k > maxColors {
		k = maxColors
	}
	p, err := brewer.GetPalette(brewer.TypeQualitative, "Set1", k)
	if err != nil {
		panic(err)
	}
	base := p.Colors()
	out := make([]color.Color, n)
	for i := range out {
		out[i] = base[i%len(base)]
	}
	return out
}

func xTicks(values []float64) plot.ConstantTicks {
	ticks := make([]plot.Tick, len(values))
	for i, v := range values {
		ticks[i] = plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'f', -1, 64)}
	}
	return ticks
}

// xExtent returns the x range a reference line spans: the tick
// range if there are ticks, and otherwise the range of the data.
func (c *Chart) xExtent() (min, max float64) {
	if len(c.XTicks) > 0 {
		min, max = c.XTicks[0], c.XTicks[0]
		for _, t := range c.XTicks {
			min, max = math.Min(min, t), math.Max(max, t)
		}
		return
	}
	min, max = math.Inf(1), math.Inf(-1)
	for _, s := range c.Series {
		for _, p := range s.Points {
			min, max = math.Min(min, p.X), math.Max(max, p.X)
		}
	}
	if math.IsInf(min, 0) {
		return 1, 1
	}
	return
}

// Plot builds the gonum plot for c.
func (c *Chart) Plot() (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = c.Title
	pl.X.Label.Text = c.XLabel
	pl.Y.Label.Text = c.YLabel

	if c.LogX {
		pl.X.Scale = plot.LogScale{}
		// An empty chart must still have a positive x range.
		pl.X.Min, pl.X.Max = c.xExtent()
	}
	if len(c.XTicks) > 0 {
		pl.X.Tick.Marker = xTicks(c.XTicks)
	}

	grid := plotter.NewGrid()
	grid.Vertical.Color = gridColor
	grid.Vertical.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	grid.Horizontal.Color = gridColor
	grid.Horizontal.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	pl.Add(grid)

	colors := Palette(len(c.Series))
	for i, s := range c.Series {
		if len(s.Points) == 0 {
			continue
		}
		if c.LogX {
			for _, p := range s.Points {
				if !(p.X > 0) {
					return nil, errors.Errorf("series %q: x value %v on a log axis", s.Label, p.X)
				}
			}
		}
		clr := s.Color
		if clr == nil {
			clr = colors[i]
		}
		line, points, err := plotter.NewLinePoints(s.Points)
		if err != nil {
			return nil, errors.Wrapf(err, "series %q", s.Label)
		}
		line.Color = clr
		line.Width = vg.Points(lineWidth)
		points.Shape = draw.CircleGlyph{}
		points.Color = clr
		points.Radius = vg.Points(pointRad)
		pl.Add(line, points)
		pl.Legend.Add(s.Label, line, points)
	}

	xmin, xmax := c.xExtent()
	for _, r := range c.References {
		clr := r.Color
		if clr == nil {
			clr = red
		}
		line, err := plotter.NewLine(plotter.XYs{{X: xmin, Y: r.Y}, {X: xmax, Y: r.Y}})
		if err != nil {
			return nil, errors.Wrapf(err, "reference line %q", r.Label)
		}
		line.Color = clr
		line.Width = vg.Points(lineWidth)
		line.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
		pl.Add(line)

		if r.Label == "" {
			continue
		}
		lbl, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    plotter.XYs{{X: r.LabelX, Y: r.LabelY}},
			Labels: []string{r.Label},
		})
		if err != nil {
			return nil, errors.Wrapf(err, "reference label %q", r.Label)
		}
		for i := range lbl.TextStyle {
			sty := &lbl.TextStyle[i]
			sty.Color = clr
			sty.Font = font.From(boldFont, vg.Points(fontSize))
			sty.XAlign = draw.XCenter
			sty.YAlign = draw.YTop
		}
		pl.Add(lbl)
	}

	for _, a := range c.Annotations {
		clr := a.Color
		if clr == nil {
			clr = black
		}
		lbl, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    plotter.XYs{{X: a.X, Y: a.Y}},
			Labels: []string{a.Text},
		})
		if err != nil {
			return nil, errors.Wrapf(err, "annotation %q", a.Text)
		}
		for i := range lbl.TextStyle {
			sty := &lbl.TextStyle[i]
			sty.Color = clr
			sty.Font.Size = vg.Points(fontSize)
			sty.XAlign = draw.XCenter
		}
		pl.Add(lbl)
	}

	pl.Legend.Top = true
	pl.Legend.Left = true
	pl.Legend.Padding = 1 * vg.Millimeter
	return pl, nil
}
