// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distat

import (
	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
)

// Slab estimates the shape of each group of samples for drawing as a
// density slab, using kernel density estimation.
//
// X is the only required field. All other fields have reasonable
// default zero values.
//
// The result of Slab has two columns in addition to constant columns
// from the input:
//
// - Column X is the points at which the density estimate is sampled.
//
// - Column "thickness" is the density estimate normalized so each
// group's mode is 1, which is the scale the slab geometries expect.
type Slab struct {
	// X is the name of the column to use for samples.
	X string

	// W is the optional name of the column to use for sample
	// weights. It may be "" to uniformly weight samples.
	W string

	// N is the number of points to sample the estimate at. If N
	// is 0, a reasonable default is used.
	N int

	// Widen controls how far the slab's domain extends past the
	// bounds of the data, in bandwidths. If Widen is 0, it is
	// treated as 3.
	Widen float64

	// Kernel is the kernel to use for the KDE.
	Kernel stats.KDEKernel

	// Bandwidth is the bandwidth to use for the KDE. If this is
	// zero, the bandwidth is computed from the data using a
	// default bandwidth estimator.
	Bandwidth float64
}

func (s Slab) F(g table.Grouping) table.Grouping {
	if s.N == 0 {
		s.N = 200
	}
	if s.Widen == 0 {
		s.Widen = 3
	}

	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		kde := stats.KDE{Kernel: s.Kernel, Bandwidth: s.Bandwidth}
		slice.Convert(&kde.Sample.Xs, t.MustColumn(s.X))
		if s.W != "" {
			slice.Convert(&kde.Sample.Weights, t.MustColumn(s.W))
		}

		nt := new(table.Builder)
		if kde.Sample.Weight() == 0 {
			nt.Add(s.X, []float64{}).Add("thickness", []float64{})
			preserveConsts(nt, t)
			return nt.Done()
		}

		if kde.Bandwidth == 0 {
			kde.Bandwidth = stats.BandwidthScott(kde.Sample)
		}
		min, max := kde.Sample.Bounds()
		min, max = min-s.Widen*kde.Bandwidth, max+s.Widen*kde.Bandwidth

		ss := vec.Linspace(min, max, s.N)
		ys := vec.Map(kde.PDF, ss)

		// Normalize the mode to thickness 1.
		peak := 0.0
		for _, y := range ys {
			if y > peak {
				peak = y
			}
		}
		if peak > 0 {
			ys = vec.Map(func(y float64) float64 { return y / peak }, ys)
		}

		nt.Add(s.X, ss).Add("thickness", ys)
		preserveConsts(nt, t)
		return nt.Done()
	})
}
