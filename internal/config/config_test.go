// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v, err := New("")
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "results/results_omp.csv", cfg.OMP.File)
	assert.Equal(t, []string{"O", "OR", "OB", "OBT", "OB_S", "OB_D", "OBf"}, cfg.OMP.Order)
	assert.Equal(t, []float64{1, 2, 4, 8, 16, 32, 64}, cfg.OMP.XTicks)
	assert.Equal(t, 281.568, cfg.OMP.PeakBandwidth)
	assert.Equal(t, 10.0, cfg.OMP.LabelOffset)
	assert.Equal(t, " - S", cfg.OMP.SeriesSuffix)

	assert.Equal(t, "results/results_ilp.csv", cfg.ILP.File)
	assert.Equal(t, []string{"S", "V", "B", "BP", "BO1", "BO2", "BO3", "BOf"}, cfg.ILP.Order)
	assert.Equal(t, 3, cfg.ILP.Precision)
	assert.False(t, cfg.ILP.GeoMean)

	assert.Equal(t, "charts", cfg.Output.Dir)
	assert.Equal(t, []string{"png"}, cfg.Output.Formats)
	assert.Equal(t, 150, cfg.Output.DPI)
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "benchplot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
omp:
  file: data/omp.csv
  order: [OB, O]
  peak_bandwidth: 100.5
ilp:
  geomean: true
output:
  formats: [svg, pdf]
`), 0666))

	v, err := New(path)
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "data/omp.csv", cfg.OMP.File)
	assert.Equal(t, []string{"OB", "O"}, cfg.OMP.Order)
	assert.Equal(t, 100.5, cfg.OMP.PeakBandwidth)
	assert.True(t, cfg.ILP.GeoMean)
	assert.Equal(t, []string{"svg", "pdf"}, cfg.Output.Formats)
	// Unset keys keep their defaults.
	assert.Equal(t, []float64{1, 2, 4, 8, 16, 32, 64}, cfg.OMP.XTicks)
	assert.Equal(t, 3, cfg.ILP.Precision)
}

func TestMissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	v, err := New("")
	require.NoError(t, err)

	v.Set("omp.order", []string{})
	_, err = Load(v)
	assert.EqualError(t, err, "omp.order is empty")

	v, _ = New("")
	v.Set("omp.xticks", []float64{1, 0})
	_, err = Load(v)
	assert.EqualError(t, err, "omp.xticks: 0 is not positive")

	v, _ = New("")
	v.Set("ilp.precision", -1)
	_, err = Load(v)
	assert.EqualError(t, err, "ilp.precision: -1 is negative")
}
