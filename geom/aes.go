// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "fmt"

// Column names produced by interval stats (such as
// distat.PointInterval) and consumed by the interval geometries. One
// row of interval data carries its bounds in LowerCol and UpperCol
// and the probability mass the interval covers in WidthCol.
const (
	LowerCol = ".lower"
	UpperCol = ".upper"
	WidthCol = ".width"
)

// An Aes is an ordered mapping from aesthetics to the bindings that
// feed them. Order is the order bindings were added in; rebinding an
// aesthetic replaces its binding in place.
type Aes []AesBinding

// An AesBinding binds a single aesthetic to a value source.
type AesBinding struct {
	// Aes names the aesthetic, such as "x", "size", or "stroke".
	Aes string

	// To is the value source feeding the aesthetic.
	To Binding
}

// A Binding is a value source for an aesthetic. It is one of Col,
// Neg, Const, or None.
type Binding interface {
	binding()
}

// Col binds an aesthetic to the named data column.
type Col string

// Neg binds an aesthetic to the negation of the named numeric data
// column.
type Neg string

// Const binds an aesthetic to a fixed value for all rows.
type Const struct {
	Value interface{}
}

// None suppresses an aesthetic that a base geometry would otherwise
// bind (for example, a fill-less legend key).
var None Binding = none{}

type none struct{}

func (Col) binding()   {}
func (Neg) binding()   {}
func (Const) binding() {}
func (none) binding()  {}

// Get returns the binding for aesthetic aes and whether aes is bound.
func (a Aes) Get(aes string) (Binding, bool) {
	for _, b := range a {
		if b.Aes == aes {
			return b.To, true
		}
	}
	return nil, false
}

// Has reports whether aesthetic aes is bound.
func (a Aes) Has(aes string) bool {
	_, ok := a.Get(aes)
	return ok
}

// Bind returns a copy of a with aesthetic aes bound to to. If aes is
// already bound, the new binding replaces the old one in place;
// otherwise it is appended. a itself is not modified.
func (a Aes) Bind(aes string, to Binding) Aes {
	na := make(Aes, len(a), len(a)+1)
	copy(na, a)
	for i := range na {
		if na[i].Aes == aes {
			na[i].To = to
			return na
		}
	}
	return append(na, AesBinding{aes, to})
}

// mergeAes layers over onto base: an aesthetic bound in over shadows
// base's binding for it, and aesthetics over doesn't bind fall
// through from base unchanged. Neither argument is modified.
func mergeAes(base, over Aes) Aes {
	na := make(Aes, len(base), len(base)+len(over))
	copy(na, base)
	for _, b := range over {
		na = na.Bind(b.Aes, b.To)
	}
	return na
}

// checkAes panics if a is malformed. Descriptor tables are built at
// package initialization, so a bad table is a programming error and
// should fail immediately.
func checkAes(what string, a Aes) {
	for _, b := range a {
		if b.Aes == "" {
			panic(fmt.Sprintf("geom: empty aesthetic name in %s", what))
		}
		if b.To == nil {
			panic(fmt.Sprintf("geom: nil binding for %q in %s", b.Aes, what))
		}
	}
}
