// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command distplot plots the distribution of Go benchmark results.
//
// distplot takes one or more input files in Go benchmark format [1]
// and, for each benchmark, draws a point estimate of the chosen
// metric overlaid with nested uncertainty intervals across the runs
// of that benchmark. Narrow intervals draw thicker and in front of
// wide ones, so a quick glance shows both where a benchmark's results
// concentrate and how far its tails reach.
//
// [1] https://github.com/golang/proposal/blob/master/design/14313-benchmark-format.md
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-ggdist/distat"
	"github.com/aclements/go-ggdist/geom"
	"github.com/aclements/go-misc/bench"
)

func main() {
	log.SetPrefix("distplot: ")
	log.SetFlags(0)

	var (
		flagOut    = flag.String("o", "", "write output to `file` (default: stdout)")
		flagUnit   = flag.String("unit", "ns/op", "plot the `unit` metric")
		flagMean   = flag.Bool("mean", false, "use the mean instead of the median as the point estimate")
		flagHDI    = flag.Bool("hdi", false, "use highest-density intervals instead of quantile intervals")
		flagWidths = flag.String("widths", "0.66,0.95", "comma-separated interval `widths`")
		flagTable  = flag.Bool("table", false, "output a summary table instead of a plot")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [inputs...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	widths, err := parseWidths(*flagWidths)
	if err != nil {
		log.Fatal(err)
	}

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	benchmarks, err := parseBenchmarks(paths)
	if err != nil {
		log.Fatal(err)
	}

	tab := benchmarksToTable(benchmarks, *flagUnit)
	if tab.Len() == 0 {
		log.Fatalf("no %q results found", *flagUnit)
	}
	g := table.GroupBy(tab, "name")
	nrows := len(g.Tables())

	stat := distat.PointInterval{X: *flagUnit, Widths: widths}
	if *flagMean {
		stat.Point = distat.Mean
	}
	if *flagHDI {
		stat.Interval = distat.HDI
	}

	w := io.Writer(os.Stdout)
	if *flagOut != "" {
		f, err := os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		w = f
	}

	if *flagTable {
		table.Fprint(w, stat.F(g))
		return
	}

	// Plot. Binding xmin/xmax to the interval bounds makes the
	// intervals extend horizontally along the metric axis, one
	// benchmark per row.
	plot := gg.NewPlot(g)
	plot.Stat(stat)
	plot.Add(geom.PointInterval{
		Mapping: geom.Aes{
			{Aes: "x", To: geom.Col(*flagUnit)},
			{Aes: "y", To: geom.Col("name")},
			{Aes: "xmin", To: geom.Col(geom.LowerCol)},
			{Aes: "xmax", To: geom.Col(geom.UpperCol)},
		},
	})
	plot.Add(gg.AxisLabel("x", *flagUnit), gg.AxisLabel("y", "benchmark"))
	if !(len(paths) == 1 && paths[0] == "-") {
		plot.Add(gg.Title(strings.Join(paths, " ")))
	}

	if err := plot.WriteSVG(w, 600, 100+60*nrows); err != nil {
		log.Fatal(err)
	}
}

// parseBenchmarks parses each input as Go benchmark results, with "-"
// meaning stdin, and returns the combined benchmarks with their
// metric values parsed.
func parseBenchmarks(paths []string) ([]*bench.Benchmark, error) {
	var benchmarks []*bench.Benchmark
	for _, path := range paths {
		var r io.ReadCloser = os.Stdin
		if path != "-" {
			f, err := os.Open(path)
			if err != nil {
				return nil, err
			}
			r = f
		}
		bs, err := bench.Parse(r)
		if r != os.Stdin {
			r.Close()
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %v", path, err)
		}
		benchmarks = append(benchmarks, bs...)
	}
	bench.ParseValues(benchmarks, nil)
	return benchmarks, nil
}

func parseWidths(s string) ([]float64, error) {
	var widths []float64
	for _, f := range strings.Split(s, ",") {
		w, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("bad interval width %q", f)
		}
		if w <= 0 || w > 1 {
			return nil, fmt.Errorf("interval width %v out of range (0, 1]", w)
		}
		widths = append(widths, w)
	}
	return widths, nil
}
