// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// A Geom is the immutable default configuration for one geometry
// variant. It does not draw anything itself; it is data consumed by
// the renderer when a Layer built with it is applied to a plot.
//
// A Geom holds three ordered default tables: default aesthetic
// bindings, default legend key aesthetics, and default renderer
// parameters. Variants are defined by layering partial tables onto a
// base Geom's tables, so a variant only states what it changes.
type Geom struct {
	name            string
	defaultAes      Aes
	defaultKeyAes   Aes
	defaultParams   Params
	defaultDatatype Datatype
}

// NewGeom returns a geometry descriptor named name whose default
// tables are the given override tables layered onto base's: a key
// present in an override table shadows base's value for that key, and
// keys the overrides don't name fall through from base unchanged. No
// key can be removed, only shadowed. datatype may be "" to inherit
// base's datatype. base may be nil for a root descriptor.
//
// Descriptors are meant to be built once, as package-level values,
// and are immutable afterwards; concurrent plotting calls may share
// them freely. NewGeom panics on malformed override tables, since a
// bad table is a defect in the geometry's definition, not a runtime
// condition.
func NewGeom(name string, base *Geom, datatype Datatype, defaultAes, defaultKeyAes Aes, defaultParams Params) *Geom {
	if name == "" {
		panic("geom: empty geometry name")
	}
	checkAes("default aes of "+name, defaultAes)
	checkAes("default key aes of "+name, defaultKeyAes)
	checkParams("default params of "+name, defaultParams)

	g := &Geom{name: name, defaultDatatype: datatype}
	var baseAes, baseKeyAes Aes
	var baseParams Params
	if base != nil {
		baseAes = base.defaultAes
		baseKeyAes = base.defaultKeyAes
		baseParams = base.defaultParams
		if datatype == "" {
			g.defaultDatatype = base.defaultDatatype
		}
	}
	g.defaultAes = mergeAes(baseAes, defaultAes)
	g.defaultKeyAes = mergeAes(baseKeyAes, defaultKeyAes)
	g.defaultParams = mergeParams(baseParams, defaultParams)
	return g
}

// Name returns the geometry's name.
func (g *Geom) Name() string {
	return g.name
}

// DefaultAes returns the geometry's default aesthetic bindings. The
// caller must not modify the returned slice.
func (g *Geom) DefaultAes() Aes {
	return g.defaultAes
}

// DefaultKeyAes returns the aesthetic overrides used only when
// drawing the geometry's legend key glyph. The caller must not modify
// the returned slice.
func (g *Geom) DefaultKeyAes() Aes {
	return g.defaultKeyAes
}

// DefaultParams returns the geometry's default renderer parameters.
// The caller must not modify the returned slice.
func (g *Geom) DefaultParams() Params {
	return g.defaultParams
}

// DefaultDatatype returns the datatype the geometry's data feeds when
// no mapping or parameter overrides it.
func (g *Geom) DefaultDatatype() Datatype {
	return g.defaultDatatype
}
