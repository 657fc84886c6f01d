// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/matbench/benchplot/benchcsv"
	"github.com/matbench/benchplot/benchunit"
	"github.com/matbench/benchplot/chart"
	"github.com/matbench/benchplot/internal/config"
	"github.com/matbench/benchplot/report"
)

// chartFlags are the flags of the commands that draw charts.
type chartFlags struct {
	exp int
}

var chartBinds = map[string]string{
	"output.dir":     "out",
	"output.formats": "format",
}

func (f *chartFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.exp, "n", 0, "plot matrices of size 2^`exp`")
	cmd.Flags().StringP("out", "o", "", "write charts to `dir`")
	cmd.Flags().StringSlice("format", nil, "chart `formats` (png, svg, pdf)")
	cmd.MarkFlagRequired("n")
}

func ompOptions(cfg *config.Config, exp int) report.Options {
	return report.Options{
		Exp:           exp,
		Order:         cfg.OMP.Order,
		XTicks:        cfg.OMP.XTicks,
		PeakBandwidth: cfg.OMP.PeakBandwidth,
		LabelOffset:   cfg.OMP.LabelOffset,
		SeriesSuffix:  cfg.OMP.SeriesSuffix,
	}
}

// save writes c to the output directory of cfg in every configured
// format and logs the files written.
func (a *app) save(cfg *config.Config, c *chart.Chart, name string) error {
	formats, err := chart.ParseFormats(cfg.Output.Formats)
	if err != nil {
		return err
	}
	c.Width = vg.Length(cfg.Output.Width) * vg.Inch
	c.Height = vg.Length(cfg.Output.Height) * vg.Inch
	c.DPI = cfg.Output.DPI
	paths, err := c.Save(cfg.Output.Dir, name, formats...)
	if err != nil {
		return errors.Wrapf(err, "saving %s", name)
	}
	for _, p := range paths {
		a.log.WithField("file", p).Info("wrote chart")
	}
	return nil
}

func newOMPCmd(a *app) *cobra.Command {
	var flags chartFlags
	cmd := &cobra.Command{
		Use:   "omp --n exp [file...]",
		Short: "Draw the OpenMP speedup and efficiency charts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config(cmd, chartBinds)
			if err != nil {
				return err
			}
			rows, err := a.readRows(args, cfg.OMP.File, benchcsv.OMPColumns)
			if err != nil {
				return err
			}
			a.warnUnknown(rows, cfg.OMP.Order)
			opts := ompOptions(cfg, flags.exp)
			n, err := report.Size(flags.exp)
			if err != nil {
				return err
			}
			for _, m := range report.ScalingMetrics {
				c, err := report.Scaling(rows, opts, m)
				if err != nil {
					return err
				}
				if len(c.Series) == 0 {
					a.log.WithField("n", n).Warnf("no %s results", m.Column)
				}
				if err := a.save(cfg, c, fmt.Sprintf("%s-%d", m.Name, n)); err != nil {
					return err
				}
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newBandwidthCmd(a *app) *cobra.Command {
	var flags chartFlags
	var writeCSV bool
	cmd := &cobra.Command{
		Use:   "bandwidth --n exp [file...]",
		Short: "Draw the memory bandwidth chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config(cmd, chartBinds)
			if err != nil {
				return err
			}
			rows, err := a.readRows(args, cfg.OMP.File, benchcsv.OMPColumns)
			if err != nil {
				return err
			}
			a.warnUnknown(rows, cfg.OMP.Order)
			c, data, err := report.Bandwidth(rows, ompOptions(cfg, flags.exp))
			if err != nil {
				return err
			}
			switch g := data.Peaks.Global; {
			case !data.Peaks.Found():
				a.log.WithField("n", data.Size).Warn("no bandwidth results")
			case g.Y > 0:
				a.log.WithField("threads", g.X).Infof("peak bandwidth %s", benchunit.Scaler{Prec: 2, Unit: benchunit.BytesPerSec}.Format(g.Y))
			default:
				a.log.WithField("n", data.Size).Warn("no bandwidth result above zero")
			}
			if err := a.save(cfg, c, fmt.Sprintf("bandwidth-%d", data.Size)); err != nil {
				return err
			}
			if writeCSV {
				return writeSeries(cmd.OutOrStdout(), data)
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&writeCSV, "csv", false, "write the plotted values to standard output as CSV")
	return cmd
}

func writeSeries(w io.Writer, data *report.BandwidthData) error {
	return errors.Wrap(report.WriteSeriesCSV(w, data.Series, "bandwidth", benchunit.BytesPerSec), "writing CSV")
}
