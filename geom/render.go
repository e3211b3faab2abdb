// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/vec"
)

// Derived columns are named in go-gg's internal column style so they
// can't collide with user data.
const (
	boundCol    = "[ggdist-bound]"
	segmentCol  = "[ggdist-segment]"
	negWidthCol = "[ggdist-neg-.width]"
)

// Apply lowers l onto p as go-gg primitive layers: each interval row
// becomes a path segment, the point estimate becomes a point layer,
// and the slab becomes an area fed by the thickness column. Apply
// satisfies gg.Plotter, so a built Layer can be passed directly to
// (*gg.Plot).Add.
//
// Scale training, scan conversion, and legend drawing remain the
// plot's responsibility, and that is also where malformed
// configurations (unknown columns, unbound positional aesthetics) are
// reported.
func (l *Layer) Apply(p *gg.Plot) {
	defer p.Save().Restore()
	if l.Data != nil {
		p.SetData(l.Data)
	}
	if l.Stat != nil {
		p.Stat(l.Stat)
	}
	if _, ok := l.Position.(Dodge); ok {
		gg.Warning.Print("geom: dodge position adjustment is not implemented; using identity")
	}

	or := l.Orientation()
	if or == OrientationAuto {
		or = DetectOrientation(mergeAes(l.DefaultMapping, l.Mapping))
	}
	if or == OrientationAuto {
		// No positional bounds are mapped either. Slab domains
		// run along X by convention; intervals extend along Y.
		if l.Datatype() == DatatypeSlab {
			or = Horizontal
		} else {
			or = Vertical
		}
	}

	if l.show("showSlab") {
		l.applySlab(p, or)
	}
	if l.show("showInterval") {
		l.applyInterval(p, or)
	}
	if l.show("showPoint") {
		l.applyPoint(p)
	}
}

func (l *Layer) applySlab(p *gg.Plot, or Orientation) {
	if or == Vertical {
		// go-gg areas can only span vertically from a domain
		// on X, so a slab whose domain runs along Y has no
		// primitive to lower to.
		gg.Warning.Print("geom: vertical slab has no go-gg primitive; skipping slab")
		return
	}
	defer p.Save().Restore()

	thick := l.colOf(p, "thickness")
	if thick == "" {
		gg.Warning.Print("geom: no thickness aesthetic bound; skipping slab")
		return
	}
	domain := l.colOf(p, "x")
	fill := l.colOf(p, "fill")

	var upper, lower string
	side := l.Side()
	if side == SideTop || side == SideBoth {
		upper = thick
	}
	if side == SideBottom || side == SideBoth {
		lower = "[ggdist-neg-thickness]"
		p.Stat(negate{thick, lower})
	}
	p.Add(gg.LayerArea{X: domain, Upper: upper, Lower: lower, Fill: fill})
}

func (l *Layer) applyInterval(p *gg.Plot, or Orientation) {
	defer p.Save().Restore()

	// Draw wider intervals first so narrower ones land on top of
	// them.
	if hasColumn(p.Data(), WidthCol) {
		p.Stat(negate{WidthCol, negWidthCol})
		p.SetData(table.SortBy(p.Data(), negWidthCol))
		p.SetData(table.Remove(p.Data(), negWidthCol))
	}

	pos, lo, hi := l.intervalCols(p, or)
	stroke := l.colOf(p, "stroke")

	p.Stat(segmentize{lo, hi})
	p.GroupBy(segmentCol)
	if or == Horizontal {
		p.Add(gg.LayerPaths{X: boundCol, Y: pos, Color: stroke})
	} else {
		p.Add(gg.LayerPaths{X: pos, Y: boundCol, Color: stroke})
	}
}

// intervalCols resolves the position and bound columns for interval
// drawing. Explicitly mapped xmin/xmax or ymin/ymax bounds win;
// otherwise the bounds come from the conventional ".lower" and
// ".upper" columns.
func (l *Layer) intervalCols(p *gg.Plot, or Orientation) (pos, lo, hi string) {
	loAes, hiAes, posAes := "ymin", "ymax", "x"
	if or == Horizontal {
		loAes, hiAes, posAes = "xmin", "xmax", "y"
	}
	pos = l.colOf(p, posAes)
	if lo = l.colOf(p, loAes); lo == "" {
		lo = LowerCol
	}
	if hi = l.colOf(p, hiAes); hi == "" {
		hi = UpperCol
	}
	return
}

func (l *Layer) applyPoint(p *gg.Plot) {
	defer p.Save().Restore()
	p.Add(gg.LayerPoints{
		X:       l.colOf(p, "x"),
		Y:       l.colOf(p, "y"),
		Color:   l.colOf(p, "stroke"),
		Opacity: l.colOf(p, "opacity"),
		Size:    l.colOf(p, "size"),
	})
}

// colOf resolves the layer's binding for aes to a column name in p's
// current data, materializing negated and constant bindings as
// derived columns. It returns "" if the aesthetic is unbound or
// suppressed.
func (l *Layer) colOf(p *gg.Plot, aes string) string {
	b, ok := l.Aes(aes)
	if !ok {
		return ""
	}
	switch b := b.(type) {
	case Col:
		return string(b)
	case Neg:
		if !hasColumn(p.Data(), string(b)) {
			gg.Warning.Printf("geom: no column %q for aesthetic %q; leaving it unbound", string(b), aes)
			return ""
		}
		out := "[ggdist-neg-" + string(b) + "]"
		p.Stat(negate{string(b), out})
		return out
	case Const:
		return p.Const(b.Value)
	}
	return ""
}

func hasColumn(g table.Grouping, col string) bool {
	for _, c := range g.Columns() {
		if c == col {
			return true
		}
	}
	return false
}

// negate is a stat that adds column out holding the negation of
// numeric column col.
type negate struct {
	col, out string
}

func (n negate) F(g table.Grouping) table.Grouping {
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		var xs []float64
		slice.Convert(&xs, t.MustColumn(n.col))
		neg := vec.Map(func(x float64) float64 { return -x }, xs)
		return table.NewBuilder(t).Add(n.out, neg).Done()
	})
}

// segmentize is a stat that turns each interval row into the two end
// points of a path segment: every row is duplicated, the bounds are
// interleaved into the bound column, and the segment column gives
// each original row a distinct ID to group the paths by.
type segmentize struct {
	lo, hi string
}

func (s segmentize) F(g table.Grouping) table.Grouping {
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		var lo, hi []float64
		slice.Convert(&lo, t.MustColumn(s.lo))
		slice.Convert(&hi, t.MustColumn(s.hi))

		n := t.Len()
		nt := new(table.Builder)
		for _, col := range t.Columns() {
			if cv, ok := t.Const(col); ok {
				nt.AddConst(col, cv)
				continue
			}
			v := reflect.ValueOf(t.MustColumn(col))
			out := reflect.MakeSlice(v.Type(), 2*n, 2*n)
			for i := 0; i < n; i++ {
				out.Index(2 * i).Set(v.Index(i))
				out.Index(2*i + 1).Set(v.Index(i))
			}
			nt.Add(col, out.Interface())
		}

		bounds := make([]float64, 2*n)
		segs := make([]int, 2*n)
		for i := 0; i < n; i++ {
			bounds[2*i], bounds[2*i+1] = lo[i], hi[i]
			segs[2*i], segs[2*i+1] = i, i
		}
		return nt.Add(boundCol, bounds).Add(segmentCol, segs).Done()
	})
}
