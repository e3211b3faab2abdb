// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "fmt"

// Orientation selects the axis along which slabs and intervals
// extend. The zero value, OrientationAuto, is a sentinel meaning the
// orientation has not been resolved yet.
type Orientation int

const (
	// OrientationAuto defers orientation detection to the
	// renderer. Factories pass it through unresolved so that
	// detection happens exactly once, with full visibility of the
	// merged mapping.
	OrientationAuto Orientation = iota

	// Horizontal draws slabs and intervals along the X axis.
	Horizontal

	// Vertical draws slabs and intervals along the Y axis.
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case OrientationAuto:
		return "auto"
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// DetectOrientation returns the orientation implied by the positional
// aesthetics bound in a: binding xmin or xmax means intervals extend
// along X, binding ymin or ymax means they extend along Y. If neither
// pair is bound it returns OrientationAuto and the renderer falls
// back to a per-datatype default.
func DetectOrientation(a Aes) Orientation {
	if a.Has("xmin") || a.Has("xmax") {
		return Horizontal
	}
	if a.Has("ymin") || a.Has("ymax") {
		return Vertical
	}
	return OrientationAuto
}

// Side selects which side of the point slabs and intervals are drawn
// on, relative to the orientation axis. The zero value uses the
// geometry's default.
type Side int

const (
	// SideDefault uses the geometry's default side.
	SideDefault Side = iota

	// SideBoth draws symmetrically on both sides.
	SideBoth

	// SideTop draws above the axis (to the right, for Vertical
	// orientation).
	SideTop

	// SideBottom draws below the axis (to the left, for Vertical
	// orientation).
	SideBottom
)

func (s Side) String() string {
	switch s {
	case SideDefault:
		return "default"
	case SideBoth:
		return "both"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// A Position adjusts mark placement to separate overlapping geometry.
// A nil Position means identity: marks are placed exactly where their
// positional aesthetics put them. Geometries only thread the choice
// through; applying the adjustment is the renderer's job.
type Position interface {
	position()
}

// Dodge shifts overlapping marks apart along the axis perpendicular
// to the orientation.
type Dodge struct {
	// Width is the total width to dodge within, in data units. 0
	// means the renderer picks one.
	Width float64
}

func (Dodge) position() {}

// Datatype selects which behavior of the slab+interval primitive a
// geometry's data feeds: density-like slab drawing or interval
// drawing.
type Datatype string

const (
	// DatatypeSlab draws the data as a density/CDF slab.
	DatatypeSlab Datatype = "slab"

	// DatatypeInterval draws the data as point+interval rows,
	// suppressing density-specific glyphs.
	DatatypeInterval Datatype = "interval"
)

// LegendMode says whether an aesthetic contributes to the plot's
// legend.
type LegendMode int

const (
	// LegendIfMapped shows the aesthetic in the legend only if
	// the caller mapped it explicitly.
	LegendIfMapped LegendMode = iota

	// LegendShow always shows the aesthetic in the legend.
	LegendShow

	// LegendHide never shows the aesthetic in the legend.
	LegendHide
)

// A Legend controls which aesthetics appear in the plot's legend.
// Aesthetics it doesn't name default to LegendIfMapped.
type Legend []LegendEntry

// A LegendEntry sets the legend mode for a single aesthetic.
type LegendEntry struct {
	Aes  string
	Mode LegendMode
}

// Mode returns the legend mode for aesthetic aes.
func (l Legend) Mode(aes string) LegendMode {
	for _, e := range l {
		if e.Aes == aes {
			return e.Mode
		}
	}
	return LegendIfMapped
}
