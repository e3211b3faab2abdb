// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
)

// PointIntervalGeom is the descriptor for point+interval layers. On
// top of SlabInterval it selects interval drawing, removes the fill
// swatch from the legend key (the key glyph is a point and a line,
// not a filled slab), centers intervals on the point, and turns the
// slab off.
var PointIntervalGeom = NewGeom("pointinterval", SlabInterval, DatatypeInterval,
	Aes{
		{"datatype", Const{DatatypeInterval}},
	},
	Aes{
		{"fill", None},
	},
	Params{
		{"side", SideBoth},
		{"orientation", OrientationAuto},
		{"showSlab", false},
	},
)

// PointInterval layers a point estimate overlaid with one or more
// nested uncertainty intervals at each data point. Each interval row
// carries its bounds in the ".lower" and ".upper" columns and the
// probability mass it covers in ".width" (the convention produced by
// distat.PointInterval).
//
// All fields are optional; zero values are the defaults.
type PointInterval struct {
	// Mapping binds aesthetics to data columns or constants. If
	// Mapping does not bind "size", size defaults to the negation
	// of the ".width" column, so wider (less certain) intervals
	// draw thinner and narrower intervals peek out in front of
	// them. A caller-supplied size binding replaces this default
	// entirely.
	Mapping Aes

	// Data is an explicit data source for this layer. If nil, the
	// layer inherits the enclosing plot's data.
	Data table.Grouping

	// Stat, if non-nil, transforms the data before rendering. It
	// is forwarded unvalidated.
	Stat gg.Stat

	// Position is the position adjustment, or nil for identity.
	// A dodge adjustment separates overlapping intervals; this
	// geometry only threads the choice through to the renderer.
	Position Position

	// Side selects which side of the point intervals are drawn
	// on. The zero value resolves to SideBoth.
	Side Side

	// Orientation selects horizontal or vertical intervals. The
	// zero value, OrientationAuto, is passed through unresolved
	// so the renderer detects orientation once, with full mapping
	// visibility: xmin/xmax bound means horizontal, ymin/ymax
	// means vertical.
	Orientation Orientation

	// ShowSlab additionally draws the density slab component.
	// It defaults to false and is never coerced on by the
	// datatype.
	ShowSlab bool

	// ShowLegend controls which aesthetics appear in the legend.
	// If nil, the "size" aesthetic is hidden, since it is driven
	// by the width-encoding convention rather than a user-facing
	// dimension, and all other aesthetics show only if mapped.
	ShowLegend Legend

	// Params holds additional renderer parameters, forwarded
	// verbatim without interpretation.
	Params Params
}

// Build resolves g into a Layer. Build is a pure configuration merge:
// it performs no validation, no data transformation, and no drawing.
// Semantic errors (unknown columns, unresolvable orientation) surface
// from the renderer when the layer is drawn.
func (g PointInterval) Build() *Layer {
	var dm Aes
	if !g.Mapping.Has("size") {
		dm = Aes{{"size", Neg(WidthCol)}}
	}

	params := Params{}
	if g.Side != SideDefault {
		params = params.Set("side", g.Side)
	}
	params = params.Set("orientation", g.Orientation)
	params = params.Set("showSlab", g.ShowSlab)
	params = mergeParams(params, g.Params)

	legend := g.ShowLegend
	if legend == nil {
		legend = Legend{{"size", LegendHide}}
	}

	return NewLayer(PointIntervalGeom, g.Data, g.Mapping, dm, g.Stat, g.Position, params, legend)
}

// Apply builds g and applies the resulting layer to p. It satisfies
// gg.Plotter, so a PointInterval can be passed directly to
// (*gg.Plot).Add.
func (g PointInterval) Apply(p *gg.Plot) {
	g.Build().Apply(p)
}
