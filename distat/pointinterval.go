// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package distat provides stats that summarize sample distributions
// for plotting with package geom.
//
// Each stat transforms a table.Grouping and satisfies gg.Stat, so it
// can be applied with (*gg.Plot).Stat or given to a geometry factory
// as its Stat field.
package distat

import (
	"math"
	"sort"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-ggdist/geom"
	"github.com/aclements/go-moremath/stats"
)

// PointSummary selects the point estimate PointInterval reports.
type PointSummary int

const (
	// Median reports the sample median.
	Median PointSummary = iota

	// Mean reports the sample mean.
	Mean
)

// IntervalKind selects how PointInterval computes interval bounds.
type IntervalKind int

const (
	// QI computes equal-tailed quantile intervals: an interval
	// with width w spans the (1-w)/2 and 1-(1-w)/2 quantiles.
	QI IntervalKind = iota

	// HDI computes highest-density intervals: the shortest
	// interval containing fraction w of the samples.
	HDI
)

// PointInterval summarizes each group of samples as a point estimate
// with one or more nested uncertainty intervals, in the column
// convention package geom consumes.
//
// X is the only required field. All other fields have reasonable
// default zero values.
//
// The result of PointInterval has four columns in addition to
// constant columns from the input, with one row per value in Widths:
//
// - Column X is the point estimate, repeated on every row.
//
// - Columns ".lower" and ".upper" are the interval bounds.
//
// - Column ".width" is the probability mass the interval covers.
type PointInterval struct {
	// X is the name of the column to use for samples.
	X string

	// W is the optional name of the column to use for sample
	// weights. It may be "" to uniformly weight samples. Weights
	// only apply to QI intervals; HDI ignores them.
	W string

	// Point selects the point estimate. It defaults to Median.
	Point PointSummary

	// Interval selects how interval bounds are computed. It
	// defaults to QI.
	Interval IntervalKind

	// Widths gives the probability mass each nested interval
	// covers. If Widths is nil, it defaults to 0.66 and 0.95.
	Widths []float64
}

func (s PointInterval) F(g table.Grouping) table.Grouping {
	widths := s.Widths
	if widths == nil {
		widths = []float64{0.66, 0.95}
	}

	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		var sample stats.Sample
		slice.Convert(&sample.Xs, t.MustColumn(s.X))
		if s.W != "" {
			slice.Convert(&sample.Weights, t.MustColumn(s.W))
		}

		nt := new(table.Builder)
		if len(sample.Xs) == 0 || sample.Weight() == 0 {
			nt.Add(s.X, []float64{}).Add(geom.LowerCol, []float64{})
			nt.Add(geom.UpperCol, []float64{}).Add(geom.WidthCol, []float64{})
			preserveConsts(nt, t)
			return nt.Done()
		}

		var est float64
		switch s.Point {
		case Mean:
			est = sample.Mean()
		default:
			est = sample.Quantile(0.5)
		}

		ests := make([]float64, len(widths))
		los := make([]float64, len(widths))
		his := make([]float64, len(widths))
		ws := make([]float64, len(widths))
		for i, w := range widths {
			ests[i], ws[i] = est, w
			if s.Interval == HDI {
				los[i], his[i] = hdi(sample.Xs, w)
			} else {
				tail := (1 - w) / 2
				los[i] = sample.Quantile(tail)
				his[i] = sample.Quantile(1 - tail)
			}
		}

		nt.Add(s.X, ests).Add(geom.LowerCol, los)
		nt.Add(geom.UpperCol, his).Add(geom.WidthCol, ws)
		preserveConsts(nt, t)
		return nt.Done()
	})
}

// hdi returns the shortest interval covering at least fraction width
// of the samples in xs.
func hdi(xs []float64, width float64) (lo, hi float64) {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	n := len(sorted)
	m := int(math.Ceil(width * float64(n)))
	if m < 1 {
		m = 1
	}
	if m > n {
		m = n
	}

	// Ties between windows break toward the lowest one. The
	// relative slack in the comparison keeps rounding in the
	// subtraction from deciding a mathematical tie.
	besti, best := 0, sorted[m-1]-sorted[0]
	for i := 1; i+m <= n; i++ {
		if d := sorted[i+m-1] - sorted[i]; d < best*(1-1e-9) {
			besti, best = i, d
		}
	}
	return sorted[besti], sorted[besti+m-1]
}

// preserveConsts copies constant columns from t into nt. This keeps
// grouping keys through the summary.
func preserveConsts(nt *table.Builder, t *table.Table) {
	for _, col := range t.Columns() {
		if cv, ok := t.Const(col); ok {
			nt.AddConst(col, cv)
		}
	}
}
