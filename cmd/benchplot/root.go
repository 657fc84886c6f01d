// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/matbench/benchplot/benchcsv"
	"github.com/matbench/benchplot/internal/config"
)

// app is the state shared by the subcommands of one run.
type app struct {
	configPath string
	verbose    bool

	log *log.Logger
}

func newRootCmd() *cobra.Command {
	a := new(app)
	root := &cobra.Command{
		Use:           "benchplot",
		Short:         "Draw charts and tables from matrix benchmark results",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.log = log.New()
			a.log.Out = cmd.ErrOrStderr()
			a.log.Formatter = &log.TextFormatter{DisableTimestamp: true}
			if a.verbose {
				a.log.SetLevel(log.DebugLevel)
			}
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "read settings from YAML `file`")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debugging information")

	root.AddCommand(
		newBandwidthCmd(a),
		newOMPCmd(a),
		newILPCmd(a),
		newExtremaCmd(a),
	)
	return root
}

// config loads the configuration with the flags of cmd bound on top.
// binds maps configuration keys to flag names.
func (a *app) config(cmd *cobra.Command, binds map[string]string) (*config.Config, error) {
	v, err := config.New(a.configPath)
	if err != nil {
		return nil, err
	}
	if err := bindFlags(v, cmd.Flags(), binds); err != nil {
		return nil, err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}
	a.log.WithField("config", a.configPath).Debugf("settings: %+v", *cfg)
	return cfg, nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet, binds map[string]string) error {
	for key, name := range binds {
		f := flags.Lookup(name)
		if f == nil {
			return errors.Errorf("no flag %q", name)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "binding --%s", name)
		}
	}
	return nil
}

// readRows reads the result files paths, or def if there are none,
// using the headerless layout cols.
func (a *app) readRows(paths []string, def string, cols []string) ([]*benchcsv.Row, error) {
	if len(paths) == 0 {
		paths = []string{def}
	}
	a.log.Debugf("reading %v", paths)
	files := benchcsv.Files{Paths: paths, AllowStdin: true, Columns: cols}
	var rows []*benchcsv.Row
	for files.Scan() {
		rows = append(rows, files.Row())
	}
	if err := files.Err(); err != nil {
		return nil, errors.Wrap(err, "reading results")
	}
	a.log.Debugf("read %d rows", len(rows))
	return rows, nil
}

// warnUnknown logs the codes of rows that are not in order.
func (a *app) warnUnknown(rows []*benchcsv.Row, order []string) {
	known := make(map[string]bool, len(order))
	for _, c := range order {
		known[c] = true
	}
	for _, c := range benchcsv.Codes(rows) {
		if !known[c] {
			a.log.WithField("code", c).Warn("code is not in the code order; skipping")
		}
	}
}
