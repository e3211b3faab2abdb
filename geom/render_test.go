// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
)

func intervalTestData() table.Grouping {
	// Two points, two interval widths per point.
	return new(table.Builder).
		Add("x", []float64{1, 1, 2, 2}).
		Add("y", []float64{10, 10, 20, 20}).
		Add(LowerCol, []float64{8, 5, 18, 15}).
		Add(UpperCol, []float64{12, 15, 22, 25}).
		Add(WidthCol, []float64{0.66, 0.95, 0.66, 0.95}).
		Done()
}

func TestNegate(t *testing.T) {
	g := negate{"a", "b"}.F(new(table.Builder).Add("a", []float64{1, -2, 0}).Done())
	want := []float64{-1, 2, 0}
	got := g.Table(table.RootGroupID).MustColumn("b").([]float64)
	// 0 negates to -0, which DeepEqual distinguishes, so compare
	// by value.
	if len(got) != len(want) {
		t.Fatalf("column b should be %v; got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("column b should be %v; got %v", want, got)
		}
	}
}

func TestSegmentize(t *testing.T) {
	in := new(table.Builder).
		Add("x", []float64{1, 2}).
		Add(LowerCol, []float64{8, 18}).
		Add(UpperCol, []float64{12, 22}).
		Done()
	g := segmentize{LowerCol, UpperCol}.F(in)
	out := g.Table(table.RootGroupID)

	if v := out.Len(); v != 4 {
		t.Fatalf("segmentized table should have 4 rows; got %v", v)
	}
	if v, want := out.MustColumn("x"), []float64{1, 1, 2, 2}; !de(v, want) {
		t.Fatalf("x should be %v; got %v", want, v)
	}
	if v, want := out.MustColumn(boundCol), []float64{8, 12, 18, 22}; !de(v, want) {
		t.Fatalf("bounds should be %v; got %v", want, v)
	}
	if v, want := out.MustColumn(segmentCol), []int{0, 0, 1, 1}; !de(v, want) {
		t.Fatalf("segment IDs should be %v; got %v", want, v)
	}
}

func TestSegmentizePreservesConsts(t *testing.T) {
	in := new(table.Builder).
		Add("x", []float64{1}).
		Add(LowerCol, []float64{0}).
		Add(UpperCol, []float64{2}).
		AddConst("name", "alpha").
		Done()
	out := segmentize{LowerCol, UpperCol}.F(in).Table(table.RootGroupID)
	if cv, ok := out.Const("name"); !ok || cv != "alpha" {
		t.Fatalf("const column should be preserved; got %v, %v", cv, ok)
	}
}

func TestHasColumn(t *testing.T) {
	g := intervalTestData()
	if !hasColumn(g, WidthCol) {
		t.Fatalf("hasColumn(%q) should be true", WidthCol)
	}
	if hasColumn(g, "nope") {
		t.Fatalf("hasColumn(%q) should be false", "nope")
	}
}

func TestApplyRestoresPlotData(t *testing.T) {
	data := intervalTestData()
	p := gg.NewPlot(data)

	PointInterval{}.Build().Apply(p)

	// The lowering materializes derived columns and groupings,
	// but none of it may leak into the plot's data environment.
	if p.Data() != data {
		t.Fatalf("Apply should restore the plot's data; got %v", p.Data().Columns())
	}
}

func TestApplyLayerData(t *testing.T) {
	p := gg.NewPlot(new(table.Builder).Add("unrelated", []float64{1}).Done())

	// Layer-local data must be used instead of the plot's, and
	// the plot's data must be back afterwards.
	l := PointInterval{Data: intervalTestData()}.Build()
	l.Apply(p)
	if cols := p.Data().Columns(); !de(cols, []string{"unrelated"}) {
		t.Fatalf("plot data should be restored; got columns %v", cols)
	}
}

func TestApplyExplicitBounds(t *testing.T) {
	// Horizontal intervals via explicit xmin/xmax bindings.
	data := new(table.Builder).
		Add("est", []float64{1, 2}).
		Add("name", []string{"a", "b"}).
		Add("lo", []float64{0, 1}).
		Add("hi", []float64{2, 3}).
		Done()
	p := gg.NewPlot(data)
	PointInterval{
		Mapping: geomAes("x", "est", "y", "name", "xmin", "lo", "xmax", "hi"),
	}.Apply(p)
	if p.Data() != table.Grouping(data) {
		t.Fatalf("Apply should restore the plot's data")
	}
}

// geomAes builds an Aes from alternating aesthetic and column names.
func geomAes(pairs ...string) Aes {
	var a Aes
	for i := 0; i < len(pairs); i += 2 {
		a = a.Bind(pairs[i], Col(pairs[i+1]))
	}
	return a
}
