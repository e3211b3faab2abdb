// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
)

// IntervalGeom is the descriptor for interval-only layers: like
// PointIntervalGeom, but with the point estimate turned off as well.
var IntervalGeom = NewGeom("interval", SlabInterval, DatatypeInterval,
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
		{"showPoint", false},
	},
)

// Interval layers one or more nested uncertainty intervals at each
// data point, without a point estimate glyph. It follows the same
// column and sizing conventions as PointInterval.
//
// All fields are optional; zero values are the defaults.
type Interval struct {
	// Mapping binds aesthetics to data columns or constants. As
	// with PointInterval, an unmapped "size" defaults to the
	// negation of the ".width" column.
	Mapping Aes

	// Data is an explicit data source, or nil to inherit the
	// plot's.
	Data table.Grouping

	// Stat, if non-nil, transforms the data before rendering.
	Stat gg.Stat

	// Position is the position adjustment, or nil for identity.
	Position Position

	// Side selects which side of the central estimate intervals
	// are drawn on. The zero value resolves to SideBoth.
	Side Side

	// Orientation selects horizontal or vertical intervals. The
	// zero value defers detection to the renderer.
	Orientation Orientation

	// ShowLegend controls the legend as in PointInterval. If
	// nil, "size" is hidden and other aesthetics show only if
	// mapped.
	ShowLegend Legend

	// Params holds additional renderer parameters, forwarded
	// verbatim.
	Params Params
}

// Build resolves g into a Layer without validating it.
func (g Interval) Build() *Layer {
	var dm Aes
	if !g.Mapping.Has("size") {
		dm = Aes{{"size", Neg(WidthCol)}}
	}

	params := Params{}
	if g.Side != SideDefault {
		params = params.Set("side", g.Side)
	}
	params = params.Set("orientation", g.Orientation)
	params = mergeParams(params, g.Params)

	legend := g.ShowLegend
	if legend == nil {
		legend = Legend{{"size", LegendHide}}
	}

	return NewLayer(IntervalGeom, g.Data, g.Mapping, dm, g.Stat, g.Position, params, legend)
}

// Apply builds g and applies the resulting layer to p.
func (g Interval) Apply(p *gg.Plot) {
	g.Build().Apply(p)
}
