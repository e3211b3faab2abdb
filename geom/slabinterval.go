// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"image/color"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
)

// SlabInterval is the root descriptor of the slab+interval geometry
// family. It enables all three sub-components and draws the slab as a
// density (DatatypeSlab). Variants shadow individual entries rather
// than restating the whole configuration.
var SlabInterval = NewGeom("slabinterval", nil, DatatypeSlab,
	Aes{
		{"datatype", Const{DatatypeSlab}},
		{"thickness", Col("thickness")},
		{"stroke", Const{color.Color(color.Black)}},
		{"fill", Const{color.Color(color.Gray{Y: 192})}},
	},
	Aes{
		{"fill", Const{color.Color(color.Gray{Y: 192})}},
		{"size", Const{0.04}},
	},
	Params{
		{"side", SideTop},
		{"orientation", OrientationAuto},
		{"showSlab", true},
		{"showPoint", true},
		{"showInterval", true},
	},
)

// A Layer is one fully resolved rendering configuration: the result
// of a single factory call. It is created fresh per call, owned by
// the caller, and never mutates the Geom it references. Applying it
// to a plot hands it to the renderer; it has no lifecycle beyond
// that.
type Layer struct {
	// Data is the layer's own data source. If nil, the layer
	// inherits the enclosing plot's data.
	Data table.Grouping

	// Mapping holds the caller's explicit aesthetic bindings.
	// They take precedence over DefaultMapping.
	Mapping Aes

	// DefaultMapping holds the resolved default bindings: the
	// geometry's DefaultAes table layered with the factory's
	// defaults (such as the injected size binding).
	DefaultMapping Aes

	// Stat, if non-nil, transforms the layer's data before
	// rendering. It is passed through unvalidated.
	Stat gg.Stat

	// Geom is the descriptor this layer renders with.
	Geom *Geom

	// Position is the position adjustment to apply, or nil for
	// identity.
	Position Position

	// Params is the resolved parameter bag: the geometry's
	// DefaultParams shadowed by factory and caller parameters,
	// plus the resolved datatype.
	Params Params

	// Legend controls which aesthetics appear in the legend.
	Legend Legend
}

// NewLayer assembles a resolved Layer for geometry g. defaultMapping
// is layered onto g's DefaultAes and params onto g's DefaultParams;
// mapping is kept separate since explicit bindings must win over any
// default. NewLayer performs no semantic validation: unknown columns,
// unbound positional aesthetics, and the like surface from the
// renderer when the layer is drawn.
func NewLayer(g *Geom, data table.Grouping, mapping, defaultMapping Aes, stat gg.Stat, pos Position, params Params, legend Legend) *Layer {
	l := &Layer{
		Data:           data,
		Mapping:        mapping,
		DefaultMapping: mergeAes(g.DefaultAes(), defaultMapping),
		Stat:           stat,
		Geom:           g,
		Position:       pos,
		Params:         mergeParams(g.DefaultParams(), params),
		Legend:         legend,
	}
	if !l.Params.Has("datatype") {
		l.Params = l.Params.Set("datatype", l.datatypeFromAes())
	}
	return l
}

// datatypeFromAes returns the layer's datatype as bound by the
// mapping, or the geometry's default datatype.
func (l *Layer) datatypeFromAes() Datatype {
	if b, ok := l.Aes("datatype"); ok {
		if c, ok := b.(Const); ok {
			if dt, ok := c.Value.(Datatype); ok {
				return dt
			}
		}
	}
	return l.Geom.DefaultDatatype()
}

// Aes returns the binding for aesthetic aes, consulting the explicit
// mapping first and the default mapping second.
func (l *Layer) Aes(aes string) (Binding, bool) {
	if b, ok := l.Mapping.Get(aes); ok {
		return b, ok
	}
	return l.DefaultMapping.Get(aes)
}

// Param returns the resolved value of the named renderer parameter.
func (l *Layer) Param(name string) (interface{}, bool) {
	return l.Params.Get(name)
}

// Side returns the layer's resolved side parameter.
func (l *Layer) Side() Side {
	if v, ok := l.Param("side"); ok {
		if s, ok := v.(Side); ok && s != SideDefault {
			return s
		}
	}
	return SideBoth
}

// Orientation returns the layer's resolved orientation parameter.
// This can be OrientationAuto: detection from the bound positional
// aesthetics happens in the renderer, not during layer construction.
func (l *Layer) Orientation() Orientation {
	if v, ok := l.Param("orientation"); ok {
		if o, ok := v.(Orientation); ok {
			return o
		}
	}
	return OrientationAuto
}

// Datatype returns the layer's resolved datatype parameter.
func (l *Layer) Datatype() Datatype {
	if v, ok := l.Param("datatype"); ok {
		if dt, ok := v.(Datatype); ok {
			return dt
		}
	}
	return l.Geom.DefaultDatatype()
}

// show returns the boolean parameter name, defaulting to false if it
// is unset or not a bool.
func (l *Layer) show(name string) bool {
	v, ok := l.Param(name)
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}
