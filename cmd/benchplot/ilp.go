// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"

	"github.com/matbench/benchplot/benchcsv"
	"github.com/matbench/benchplot/report"
)

func newILPCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ilp [file...]",
		Short: "Print the ILP throughput and bandwidth tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config(cmd, map[string]string{
				"ilp.geomean":   "geomean",
				"ilp.precision": "precision",
			})
			if err != nil {
				return err
			}
			rows, err := a.readRows(args, cfg.ILP.File, benchcsv.ILPColumns)
			if err != nil {
				return err
			}
			tables, err := report.ILP(rows, cfg.ILP.Order, cfg.ILP.Precision)
			if err != nil {
				return err
			}
			for _, c := range tables[0].Grid.Dropped {
				a.log.WithField("code", c).Warn("code is not in the code order; skipping")
			}
			return report.WriteTables(cmd.OutOrStdout(), tables, cfg.ILP.Precision, cfg.ILP.GeoMean)
		},
	}
	cmd.Flags().Bool("geomean", false, "add a geometric mean row to each table")
	cmd.Flags().Int("precision", 3, "print `digits` after the decimal point")
	return cmd
}
