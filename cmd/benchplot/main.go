// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchplot draws charts and tables from the results of the matrix
// kernel benchmarks.
//
// Usage:
//
//	benchplot bandwidth --n exp [--out dir] [--format png,svg,pdf] [--csv] [file]
//	benchplot omp --n exp [--out dir] [--format png,svg,pdf] [file]
//	benchplot ilp [--geomean] [file]
//	benchplot extrema --n exp [--column bandwidth] [file]
//
// The bandwidth and omp commands read results_omp.csv, whose rows are
//
//	code,n,threads,speedup1,efficiency1,speedup2,efficiency2,bandwidth
//
// and keep the rows whose matrix size n is 2^exp. The bandwidth
// command draws the memory bandwidth of every code against the number
// of threads, marking the best result and the peak bandwidth of the
// machine. The omp command draws the speedup and efficiency charts of
// the symmetry check and the transposition.
//
// The ilp command reads results_ilp.csv, whose rows are
//
//	code,n,flops,bandwidth
//
// and prints the throughput and bandwidth of every code for every
// matrix size as two tables.
//
// The extrema command prints the peak of a column for every code and
// the overall peak.
//
// Files may start with a header row naming the columns. A file name
// of "-" reads standard input.
//
// Defaults for every setting, such as the order of the codes or the
// peak bandwidth, can be overridden with a YAML file given by
// --config:
//
//	omp:
//	  order: [O, OB, OBT]
//	  peak_bandwidth: 204.8
//	output:
//	  dir: out
//	  formats: [png, svg]
package main

import log "github.com/sirupsen/logrus"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
