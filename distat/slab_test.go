// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distat

import (
	"testing"

	"github.com/aclements/go-gg/table"
)

func TestSlab(t *testing.T) {
	g := Slab{X: "value", N: 50}.F(samples(1, 2, 2, 2, 3))
	xs, ys := col(g, "value"), col(g, "thickness")

	if len(xs) != 50 || len(ys) != 50 {
		t.Fatalf("result should have 50 rows; got %v and %v", len(xs), len(ys))
	}

	// The domain covers the data and the sample points ascend.
	if xs[0] >= 1 || xs[49] <= 3 {
		t.Fatalf("domain [%v, %v] should cover [1, 3]", xs[0], xs[49])
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			t.Fatalf("sample points should ascend; got %v then %v", xs[i-1], xs[i])
		}
	}

	// The mode is normalized to 1 and nothing exceeds it.
	peak := 0.0
	for _, y := range ys {
		if y < 0 {
			t.Fatalf("thickness should be non-negative; got %v", y)
		}
		if y > peak {
			peak = y
		}
	}
	if peak != 1 {
		t.Fatalf("peak thickness should be 1; got %v", peak)
	}
}

func TestSlabEmptyGroup(t *testing.T) {
	g := Slab{X: "value"}.F(samples())
	tab := g.Table(table.RootGroupID)
	if v := tab.Len(); v != 0 {
		t.Fatalf("empty input should yield 0 rows; got %v", v)
	}
	for _, c := range []string{"value", "thickness"} {
		if tab.Column(c) == nil {
			t.Fatalf("column %q should be present", c)
		}
	}
}
