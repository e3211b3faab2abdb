// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"fmt"
	"reflect"
	"regexp"
	"testing"
)

func de(x, y interface{}) bool {
	return reflect.DeepEqual(x, y)
}

func shouldPanic(t *testing.T, re string, f func()) {
	t.Helper()
	r := regexp.MustCompile(re)
	defer func() {
		err := recover()
		if err == nil {
			t.Fatalf("want panic matching %q; got no panic", re)
		} else if !r.MatchString(fmt.Sprintf("%s", err)) {
			t.Fatalf("panic %q does not match %q", err, re)
		}
	}()
	f()
}

func TestAesGet(t *testing.T) {
	a := Aes{{"x", Col("a")}, {"size", Neg("w")}}
	if b, ok := a.Get("x"); !ok || b != Col("a") {
		t.Fatalf("a.Get(\"x\") should be Col(\"a\"), true; got %v, %v", b, ok)
	}
	if b, ok := a.Get("y"); ok {
		t.Fatalf("a.Get(\"y\") should be unbound; got %v", b)
	}
	if !a.Has("size") || a.Has("fill") {
		t.Fatalf("Has should be true for size and false for fill")
	}
}

func TestAesBindOrder(t *testing.T) {
	// Bindings stay in order.
	var a Aes
	for _, aes := range []string{"a", "b", "c", "d"} {
		a = a.Bind(aes, Col(aes))
	}
	want := Aes{{"a", Col("a")}, {"b", Col("b")}, {"c", Col("c")}, {"d", Col("d")}}
	if !de(want, a) {
		t.Fatalf("want %v; got %v", want, a)
	}

	// Rebinding an aesthetic keeps it in place.
	a = a.Bind("b", Col("z"))
	want = Aes{{"a", Col("a")}, {"b", Col("z")}, {"c", Col("c")}, {"d", Col("d")}}
	if !de(want, a) {
		t.Fatalf("want %v; got %v", want, a)
	}
}

func TestAesBindCopies(t *testing.T) {
	a := Aes{{"x", Col("a")}}
	b := a.Bind("x", Col("b"))
	if !de(a, Aes{{"x", Col("a")}}) {
		t.Fatalf("Bind modified its receiver: %v", a)
	}
	if !de(b, Aes{{"x", Col("b")}}) {
		t.Fatalf("b should be %v; got %v", Aes{{"x", Col("b")}}, b)
	}
}

func TestMergeAes(t *testing.T) {
	base := Aes{{"x", Col("a")}, {"fill", None}}

	// Empty override yields the base, structurally.
	if v := mergeAes(base, nil); !de(v, base) {
		t.Fatalf("mergeAes(base, nil) should be %v; got %v", base, v)
	}
	if v := mergeAes(base, Aes{}); !de(v, base) {
		t.Fatalf("mergeAes(base, Aes{}) should be %v; got %v", base, v)
	}

	// Overrides win on collision and append otherwise; base keys
	// are never removed.
	v := mergeAes(base, Aes{{"fill", Col("f")}, {"size", Neg("w")}})
	want := Aes{{"x", Col("a")}, {"fill", Col("f")}, {"size", Neg("w")}}
	if !de(want, v) {
		t.Fatalf("want %v; got %v", want, v)
	}

	// The base is untouched.
	if !de(base, Aes{{"x", Col("a")}, {"fill", None}}) {
		t.Fatalf("mergeAes modified base: %v", base)
	}
}

func TestParams(t *testing.T) {
	var p Params
	for _, name := range []string{"a", "b", "c"} {
		p = p.Set(name, name)
	}
	want := Params{{"a", "a"}, {"b", "b"}, {"c", "c"}}
	if !de(want, p) {
		t.Fatalf("want %v; got %v", want, p)
	}

	// Re-setting keeps the parameter in place.
	p = p.Set("b", 42)
	want = Params{{"a", "a"}, {"b", 42}, {"c", "c"}}
	if !de(want, p) {
		t.Fatalf("want %v; got %v", want, p)
	}

	if v, ok := p.Get("b"); !ok || v != 42 {
		t.Fatalf("p.Get(\"b\") should be 42, true; got %v, %v", v, ok)
	}
	if _, ok := p.Get("z"); ok {
		t.Fatalf("p.Get(\"z\") should be unset")
	}
}

func TestMergeParams(t *testing.T) {
	base := Params{{"side", SideTop}, {"showSlab", true}}

	if v := mergeParams(base, nil); !de(v, base) {
		t.Fatalf("mergeParams(base, nil) should be %v; got %v", base, v)
	}

	v := mergeParams(base, Params{{"showSlab", false}, {"orientation", Vertical}})
	want := Params{{"side", SideTop}, {"showSlab", false}, {"orientation", Vertical}}
	if !de(want, v) {
		t.Fatalf("want %v; got %v", want, v)
	}
	if !de(base, Params{{"side", SideTop}, {"showSlab", true}}) {
		t.Fatalf("mergeParams modified base: %v", base)
	}
}
