// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"

	"github.com/matbench/benchplot/benchcsv"
	"github.com/matbench/benchplot/benchunit"
	"github.com/matbench/benchplot/extrema"
	"github.com/matbench/benchplot/report"
)

func newExtremaCmd(a *app) *cobra.Command {
	var (
		exp    int
		column string
	)
	cmd := &cobra.Command{
		Use:   "extrema --n exp [file...]",
		Short: "Print the peak of a result column for every code",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config(cmd, nil)
			if err != nil {
				return err
			}
			n, err := report.Size(exp)
			if err != nil {
				return err
			}
			rows, err := a.readRows(args, cfg.OMP.File, benchcsv.OMPColumns)
			if err != nil {
				return err
			}
			a.warnUnknown(rows, cfg.OMP.Order)
			rows = benchcsv.FilterN(rows, n)
			unit := benchunit.ForColumn(column)
			obs, err := benchcsv.Observations(rows, column, unit)
			if err != nil {
				return err
			}
			res := extrema.Compute(obs, cfg.OMP.Order)
			return report.Summary(res, unit, 2).Format(cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVar(&exp, "n", 0, "use matrices of size 2^`exp`")
	cmd.Flags().StringVar(&column, "column", "bandwidth", "result `column` to find the peak of")
	cmd.MarkFlagRequired("n")
	return cmd
}
