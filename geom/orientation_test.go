// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "testing"

func TestDetectOrientation(t *testing.T) {
	tests := []struct {
		aes  Aes
		want Orientation
	}{
		{Aes{{"xmin", Col(LowerCol)}, {"xmax", Col(UpperCol)}}, Horizontal},
		{Aes{{"xmin", Col(LowerCol)}}, Horizontal},
		{Aes{{"xmax", Col(UpperCol)}}, Horizontal},
		{Aes{{"ymin", Col(LowerCol)}, {"ymax", Col(UpperCol)}}, Vertical},
		{Aes{{"ymin", Col(LowerCol)}}, Vertical},
		{Aes{{"x", Col("a")}, {"y", Col("b")}}, OrientationAuto},
		{nil, OrientationAuto},
		// X bounds win if both pairs are bound.
		{Aes{{"xmin", Col("a")}, {"ymin", Col("b")}}, Horizontal},
	}
	for _, test := range tests {
		if got := DetectOrientation(test.aes); got != test.want {
			t.Errorf("DetectOrientation(%v) should be %v; got %v", test.aes, test.want, got)
		}
	}
}

func TestEnumStrings(t *testing.T) {
	if s := OrientationAuto.String(); s != "auto" {
		t.Errorf("OrientationAuto should be %q; got %q", "auto", s)
	}
	if s := Horizontal.String(); s != "horizontal" {
		t.Errorf("Horizontal should be %q; got %q", "horizontal", s)
	}
	if s := SideBoth.String(); s != "both" {
		t.Errorf("SideBoth should be %q; got %q", "both", s)
	}
	if s := Side(42).String(); s != "Side(42)" {
		t.Errorf("Side(42) should be %q; got %q", "Side(42)", s)
	}
}

func TestLegendMode(t *testing.T) {
	l := Legend{{"size", LegendHide}, {"stroke", LegendShow}}
	if m := l.Mode("size"); m != LegendHide {
		t.Errorf("size mode should be %v; got %v", LegendHide, m)
	}
	if m := l.Mode("stroke"); m != LegendShow {
		t.Errorf("stroke mode should be %v; got %v", LegendShow, m)
	}
	if m := l.Mode("fill"); m != LegendIfMapped {
		t.Errorf("fill mode should be %v; got %v", LegendIfMapped, m)
	}
	if m := Legend(nil).Mode("size"); m != LegendIfMapped {
		t.Errorf("nil legend mode should be %v; got %v", LegendIfMapped, m)
	}
}
