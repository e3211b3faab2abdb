// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides geometries for visualizing distributions and
// uncertainty with go-gg.
//
// The geometries in this package are variants of a single shared
// "slab+interval" primitive, which combines up to three
// sub-components at each data point: a density "slab", a point
// estimate, and one or more nested uncertainty intervals. Each
// variant is described by a Geom, an immutable table of default
// aesthetic bindings, legend key aesthetics, and renderer parameters,
// composed on top of the SlabInterval base descriptor. Turning on and
// off sub-components and shadowing individual defaults is all it
// takes to go from a densely shaded slab to a bare interval.
//
// Layer construction is split in two. A factory type such as
// PointInterval gathers the caller's mapping, data, stat, and
// parameters, fills in variant defaults for everything the caller
// omitted, and resolves the result into a Layer. The Layer is pure
// configuration: it records what to draw, not how. Applying the Layer
// to a gg.Plot lowers it onto go-gg's primitive layers (points,
// paths, areas), which own scale training and rendering.
//
// Interval data follows a column convention shared with package
// distat: each row carries interval bounds in the ".lower" and
// ".upper" columns and the probability mass the interval covers in
// ".width". Unless the caller maps "size" explicitly, interval and
// point sizes are bound to the negation of ".width", so wider (less
// certain) intervals draw thinner and narrow intervals peek out in
// front of them.
package geom
