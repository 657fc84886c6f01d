// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// A Format is an output image format. Its value is the file suffix.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
	PDF Format = "pdf"
)

// ParseFormats parses a list of format names, such as "png" or
// "svg", ignoring case and surrounding space.
func ParseFormats(names []string) ([]Format, error) {
	var out []Format
	for _, n := range names {
		switch f := Format(strings.ToLower(strings.TrimSpace(n))); f {
		case PNG, SVG, PDF:
			out = append(out, f)
		case "":
		default:
			return nil, errors.Errorf("unknown chart format %q", n)
		}
	}
	return out, nil
}

func (c *Chart) size() (w, h vg.Length, dpi int) {
	w, h, dpi = c.Width, c.Height, c.DPI
	if w == 0 {
		w = DefaultWidth
	}
	if h == 0 {
		h = DefaultHeight
	}
	if dpi == 0 {
		dpi = DefaultDPI
	}
	return
}

func (c *Chart) canvas(f Format) (vg.CanvasWriterTo, error) {
	w, h, dpi := c.size()
	switch f {
	case PNG:
		return vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h),
			vgimg.UseDPI(dpi), vgimg.UseBackgroundColor(color.White))}, nil
	case SVG:
		return vgsvg.New(w, h), nil
	case PDF:
		return vgpdf.New(w, h), nil
	}
	return nil, errors.Errorf("unknown chart format %q", f)
}

// Render draws c in format f and writes it to w.
func (c *Chart) Render(w io.Writer, f Format) error {
	can, err := c.canvas(f)
	if err != nil {
		return err
	}
	pl, err := c.Plot()
	if err != nil {
		return err
	}
	pl.Draw(draw.New(can))
	_, err = can.WriteTo(w)
	return errors.Wrapf(err, "writing %s chart", f)
}

// FileName returns the file name used by Save for a chart called
// name in format f.
func FileName(name string, f Format) string {
	return strings.ReplaceAll(name, "/", "-per-") + "." + string(f)
}

// Save renders c once per format into dir, creating dir if needed.
// It returns the paths of the files written.
func (c *Chart) Save(dir, name string, formats ...Format) ([]string, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0777); err != nil {
			return nil, errors.Wrap(err, "creating chart directory")
		}
	}
	var paths []string
	for _, f := range formats {
		file := filepath.Join(dir, FileName(name, f))
		out, err := os.Create(file)
		if err != nil {
			return paths, errors.Wrap(err, "creating chart file")
		}
		err = c.Render(out, f)
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return paths, errors.Wrapf(err, "saving %s", file)
		}
		paths = append(paths, file)
	}
	return paths, nil
}
