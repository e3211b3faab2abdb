// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "fmt"

// Params is an ordered mapping from renderer parameter names to
// values. Like Aes, setting a parameter that is already present
// replaces its value in place.
type Params []Param

// A Param is a single named renderer parameter.
type Param struct {
	Name  string
	Value interface{}
}

// Get returns the value of the named parameter and whether it is set.
func (p Params) Get(name string) (interface{}, bool) {
	for _, e := range p {
		if e.Name == name {
			return e.Value, true
		}
	}
	return nil, false
}

// Has reports whether the named parameter is set.
func (p Params) Has(name string) bool {
	_, ok := p.Get(name)
	return ok
}

// Set returns a copy of p with the named parameter set to value. p
// itself is not modified.
func (p Params) Set(name string, value interface{}) Params {
	np := make(Params, len(p), len(p)+1)
	copy(np, p)
	for i := range np {
		if np[i].Name == name {
			np[i].Value = value
			return np
		}
	}
	return append(np, Param{name, value})
}

// mergeParams layers over onto base with the same semantics as
// mergeAes: over wins on name collisions, everything else falls
// through from base.
func mergeParams(base, over Params) Params {
	np := make(Params, len(base), len(base)+len(over))
	copy(np, base)
	for _, e := range over {
		np = np.Set(e.Name, e.Value)
	}
	return np
}

func checkParams(what string, p Params) {
	for _, e := range p {
		if e.Name == "" {
			panic(fmt.Sprintf("geom: empty parameter name in %s", what))
		}
	}
}
