// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
)

// SlabGeom is the descriptor for slab-only layers: the density slab
// of SlabInterval with the point and interval components turned off.
var SlabGeom = NewGeom("slab", SlabInterval, DatatypeSlab,
	Aes{
		{"datatype", Const{DatatypeSlab}},
	},
	Aes{},
	Params{
		{"side", SideTop},
		{"orientation", OrientationAuto},
		{"showPoint", false},
		{"showInterval", false},
	},
)

// Slab layers a density slab at each group of data: the thickness of
// the slab across its domain comes from the "thickness" column (the
// convention produced by distat.Slab) unless the caller maps the
// "thickness" aesthetic elsewhere.
//
// All fields are optional; zero values are the defaults.
type Slab struct {
	// Mapping binds aesthetics to data columns or constants.
	Mapping Aes

	// Data is an explicit data source, or nil to inherit the
	// plot's.
	Data table.Grouping

	// Stat, if non-nil, transforms the data before rendering.
	// Typically this is a distat.Slab producing the thickness
	// column.
	Stat gg.Stat

	// Position is the position adjustment, or nil for identity.
	Position Position

	// Side selects which side of the baseline the slab is drawn
	// on. The zero value resolves to SideTop.
	Side Side

	// Orientation selects the axis the slab's domain runs along.
	// The zero value defers detection to the renderer.
	Orientation Orientation

	// ShowLegend controls the legend. If nil, all aesthetics
	// show only if mapped.
	ShowLegend Legend

	// Params holds additional renderer parameters, forwarded
	// verbatim.
	Params Params
}

// Build resolves g into a Layer without validating it.
func (g Slab) Build() *Layer {
	params := Params{}
	if g.Side != SideDefault {
		params = params.Set("side", g.Side)
	}
	params = params.Set("orientation", g.Orientation)
	params = mergeParams(params, g.Params)

	return NewLayer(SlabGeom, g.Data, g.Mapping, nil, g.Stat, g.Position, params, g.ShowLegend)
}

// Apply builds g and applies the resulting layer to p.
func (g Slab) Apply(p *gg.Plot) {
	g.Build().Apply(p)
}
