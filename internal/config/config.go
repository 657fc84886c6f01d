// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the settings of benchplot: input files, code
// orders, chart constants, and output options.
package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config is the complete benchplot configuration.
type Config struct {
	OMP    OMPConfig    `mapstructure:"omp"`
	ILP    ILPConfig    `mapstructure:"ilp"`
	Output OutputConfig `mapstructure:"output"`
}

// OMPConfig configures the bandwidth and OpenMP scaling charts.
type OMPConfig struct {
	// File is the results_omp.csv path.
	File string `mapstructure:"file"`
	// Order is the order in which codes are considered and drawn.
	Order []string `mapstructure:"order"`
	// XTicks are the thread counts marked on the x axis.
	XTicks []float64 `mapstructure:"xticks"`
	// PeakBandwidth is the reference line, in GB/s.
	PeakBandwidth float64 `mapstructure:"peak_bandwidth"`
	// LabelOffset is the vertical distance, in GB/s, between a
	// point and its annotation.
	LabelOffset float64 `mapstructure:"label_offset"`
	// SeriesSuffix is appended to each code in the bandwidth
	// chart legend.
	SeriesSuffix string `mapstructure:"series_suffix"`
}

// ILPConfig configures the ILP tables.
type ILPConfig struct {
	File  string   `mapstructure:"file"`
	Order []string `mapstructure:"order"`
	// Precision is the number of digits after the decimal point.
	Precision int `mapstructure:"precision"`
	// GeoMean adds a geometric mean row to each table.
	GeoMean bool `mapstructure:"geomean"`
}

// OutputConfig configures chart output.
type OutputConfig struct {
	Dir     string   `mapstructure:"dir"`
	Formats []string `mapstructure:"formats"`
	// Width and Height are in inches.
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
	DPI    int     `mapstructure:"dpi"`
}

// SetDefaults installs the default configuration into v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("omp.file", "results/results_omp.csv")
	v.SetDefault("omp.order", []string{"O", "OR", "OB", "OBT", "OB_S", "OB_D", "OBf"})
	v.SetDefault("omp.xticks", []float64{1, 2, 4, 8, 16, 32, 64})
	v.SetDefault("omp.peak_bandwidth", 281.568)
	v.SetDefault("omp.label_offset", 10.0)
	v.SetDefault("omp.series_suffix", " - S")

	v.SetDefault("ilp.file", "results/results_ilp.csv")
	v.SetDefault("ilp.order", []string{"S", "V", "B", "BP", "BO1", "BO2", "BO3", "BOf"})
	v.SetDefault("ilp.precision", 3)
	v.SetDefault("ilp.geomean", false)

	v.SetDefault("output.dir", "charts")
	v.SetDefault("output.formats", []string{"png"})
	v.SetDefault("output.width", 6.4)
	v.SetDefault("output.height", 4.8)
	v.SetDefault("output.dpi", 150)
}

// New returns a viper instance with the defaults installed. If path
// is not empty, the YAML file at path is read on top of them.
func New(path string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	if path == "" {
		return v, nil
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	return v, nil
}

// Load decodes the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cfg for settings no command can work with.
func (cfg *Config) Validate() error {
	if len(cfg.OMP.Order) == 0 {
		return errors.New("omp.order is empty")
	}
	if len(cfg.ILP.Order) == 0 {
		return errors.New("ilp.order is empty")
	}
	for _, t := range cfg.OMP.XTicks {
		if !(t > 0) {
			return errors.Errorf("omp.xticks: %v is not positive", t)
		}
	}
	if cfg.ILP.Precision < 0 {
		return errors.Errorf("ilp.precision: %d is negative", cfg.ILP.Precision)
	}
	if cfg.Output.Width <= 0 || cfg.Output.Height <= 0 {
		return errors.Errorf("output size %vx%v is not positive", cfg.Output.Width, cfg.Output.Height)
	}
	return nil
}
