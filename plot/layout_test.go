// seehuhn.de/go/spiral - Fibonacci spiral plots
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package plot

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// fakeMeasurer gives every glyph the same width.
type fakeMeasurer struct{}

func (fakeMeasurer) Width(f Font, s string) int {
	if f == Bold {
		return 9 * len(s)
	}
	return 7 * len(s)
}

func (fakeMeasurer) Ascent(f Font) int     { return 10 }
func (fakeMeasurer) LineHeight(f Font) int { return 14 }

func testScene(t *testing.T, w, h int, curve []vec.Vec2) (*Viewport, *Scene) {
	t.Helper()
	vp, err := NewViewport(w, h, DefaultPadding)
	if err != nil {
		t.Fatal(err)
	}
	return vp, Layout(vp, curve, fakeMeasurer{})
}

func classOf(item Item) string {
	switch item := item.(type) {
	case Fill:
		return item.Class
	case Stroke:
		return item.Class
	case Text:
		return item.Class
	}
	return ""
}

func TestLayoutOrder(t *testing.T) {
	_, s := testScene(t, 800, 600, []vec.Vec2{{}, {X: 1, Y: 1}})

	var classes []string
	for _, item := range s.Items {
		c := classOf(item)
		if len(classes) == 0 || classes[len(classes)-1] != c {
			classes = append(classes, c)
		}
	}
	want := []string{
		"background", "grid", "axis", "axis-label", "axis", "axis-label",
		"tick", "tick-label", "legend", "legend-swatch", "legend-label", "curve",
	}
	diff(t, want, classes)
	diff(t, 800, s.Width)
	diff(t, 600, s.Height)
}

func TestLayoutAxesThroughOrigin(t *testing.T) {
	vp, s := testScene(t, 600, 450, nil)
	origin := vp.ToPixel(vec.Vec2{})

	var axis *Stroke
	for _, item := range s.Items {
		if st, ok := item.(Stroke); ok && st.Class == "axis" {
			axis = &st
			break
		}
	}
	if axis == nil {
		t.Fatal("no axis stroke")
	}
	diff(t, 2.0, axis.Width)

	// x axis, then y axis
	box := vp.Drawable()
	want := []vec.Vec2{
		{X: box.LLx, Y: origin.Y}, {X: box.URx, Y: origin.Y},
		{X: origin.X, Y: box.LLy}, {X: origin.X, Y: box.URy},
	}
	diff(t, want, axis.Path.Coords)
}

func TestLayoutTickLabels(t *testing.T) {
	vp, s := testScene(t, 600, 450, nil)
	box := vp.Drawable()
	m := fakeMeasurer{}

	var labels []string
	for _, item := range s.Items {
		txt, ok := item.(Text)
		if !ok || txt.Class != "tick-label" {
			continue
		}
		labels = append(labels, txt.S)
		w := float64(m.Width(txt.Font, txt.S))
		if txt.X < box.LLx || txt.X+w > box.URx {
			t.Errorf("label %q at x=%g leaves the drawable area", txt.S, txt.X)
		}
		if txt.Y > float64(vp.Height-4) {
			t.Errorf("label %q baseline %g too low", txt.S, txt.Y)
		}
	}

	// x window is about [-17.6, 17.6], y window is [-13, 13]
	wantX := []string{"-16", "-14", "-12", "-10", "-8", "-6", "-4", "-2", "0", "2", "4", "6", "8", "10", "12", "14", "16"}
	wantY := []string{"-12", "-10", "-8", "-6", "-4", "-2", "2", "4", "6", "8", "10", "12"}
	diff(t, append(wantX, wantY...), labels)

	zeros := 0
	for _, l := range labels {
		if l == "0" {
			zeros++
		}
	}
	if zeros != 1 {
		t.Errorf("label 0 drawn %d times", zeros)
	}
}

func TestLayoutYLabelsRightAligned(t *testing.T) {
	vp, s := testScene(t, 600, 450, nil)
	ox := vp.ToPixel(vec.Vec2{}).X

	var got []Text
	for _, item := range s.Items {
		if txt, ok := item.(Text); ok && txt.Class == "tick-label" {
			got = append(got, txt)
		}
	}
	got = got[len(got)-12:] // the y labels follow the x labels

	for _, txt := range got {
		w := float64(7 * len(txt.S))
		diff(t, ox-8, txt.X+w, cmpopts.EquateApprox(0, 1e-9))
	}
	sy := vp.ToPixel(vec.Vec2{Y: 12}).Y
	diff(t, sy+3, got[len(got)-1].Y, cmpopts.EquateApprox(0, 1e-9))
}

func TestLayoutLegend(t *testing.T) {
	_, s := testScene(t, 800, 600, nil)

	textW := 7 * len(LegendLabel)
	rectW := textW + 2*8 + 14
	rectX := 800 - 12 - rectW
	rectY := 12 + 8
	rectH := 14 + 2*4

	var label Text
	var swatch Stroke
	for _, item := range s.Items {
		switch item := item.(type) {
		case Text:
			if item.Class == "legend-label" {
				label = item
			}
		case Stroke:
			if item.Class == "legend-swatch" {
				swatch = item
			}
		}
	}
	diff(t, Text{
		X:     float64(rectX + 8 + 14),
		Y:     float64(rectY + 4 + 10),
		S:     LegendLabel,
		Font:  Regular,
		Color: ink,
		Class: "legend-label",
	}, label)

	ly := float64(rectY + rectH/2)
	diff(t, []vec.Vec2{{X: float64(rectX + 8), Y: ly}, {X: float64(rectX + 18), Y: ly}}, swatch.Path.Coords)
	diff(t, accent, swatch.Color)
	diff(t, graphics.LineCapRound, swatch.Cap)
}

func TestLayoutCurve(t *testing.T) {
	pts := []vec.Vec2{{X: -1}, {X: 0, Y: 1}, {X: 1, Y: 0}}
	vp, s := testScene(t, 800, 600, pts)

	last, ok := s.Items[len(s.Items)-1].(Stroke)
	if !ok || last.Class != "curve" {
		t.Fatalf("last item is %T %q, want the curve", s.Items[len(s.Items)-1], classOf(s.Items[len(s.Items)-1]))
	}
	diff(t, pts, last.Path.Coords)
	diff(t, vp.Matrix(), last.CTM)
	diff(t, 3.0, last.Width*vp.YScale, cmpopts.EquateApprox(0, 1e-12))
	diff(t, accent, last.Color)
}

func TestLayoutWithoutCurve(t *testing.T) {
	_, s := testScene(t, 800, 600, nil)
	if slices.ContainsFunc(s.Items, func(item Item) bool { return classOf(item) == "curve" }) {
		t.Error("empty curve produced a curve item")
	}
}

func TestMultiples(t *testing.T) {
	diff(t, []float64{-4, -2, 0, 2, 4}, multiples(-5.5, 4, 2))
	diff(t, []float64{-10, -5, 0, 5, 10}, multiples(-13, 13, 5))
	diff(t, []float64(nil), multiples(0.5, 1.5, 2))
}
