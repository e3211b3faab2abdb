// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-misc/bench"
)

// benchmarksToTable converts benchmark results to a table with a
// "name" column and a column for the requested result unit, dropping
// results that don't report that unit.
func benchmarksToTable(bs []*bench.Benchmark, unit string) *table.Table {
	names := make([]string, 0, len(bs))
	values := make([]float64, 0, len(bs))
	for _, b := range bs {
		v, ok := b.Result[unit]
		if !ok || math.IsNaN(v) {
			continue
		}
		names = append(names, b.Name)
		values = append(values, v)
	}

	return new(table.Builder).
		Add("name", names).
		Add(unit, values).
		Done()
}
