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
	"math"
	"strconv"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/spiral/outline"
)

// LegendLabel is the text shown in the legend box.
const LegendLabel = "Fibonacci spiral"

// Layout parameters, in pixels unless noted otherwise.
const (
	gridStepX = 2.0 // data units
	gridStepY = 5.0 // data units
	tickStep  = 2.0 // data units

	gridWidth  = 1.0
	axisWidth  = 2.0
	curveWidth = 3.0
	arrowSize  = 10.0

	legendPadX   = 8
	legendPadY   = 4
	legendGap    = 14 // room for the colour swatch
	legendRadius = 3
	legendOffset = 8 // distance between the legend and the top padding

	circleKappa = 0.5522847498
)

// Layout builds the draw list for a plot of the given curve.  The curve
// points are in data space.  Items are emitted in painting order:
// background, grid, axes, ticks and labels, legend, and the curve on top.
func Layout(vp *Viewport, curve []vec.Vec2, m Measurer) *Scene {
	l := &layout{
		vp:     vp,
		m:      m,
		origin: vp.ToPixel(vec.Vec2{}),
		scene:  &Scene{Width: vp.Width, Height: vp.Height},
	}
	l.background()
	l.grid()
	l.axes()
	l.ticks()
	l.legend()
	l.curve(curve)
	return l.scene
}

type layout struct {
	vp     *Viewport
	m      Measurer
	origin vec.Vec2 // the data origin in pixel coordinates
	scene  *Scene
}

func (l *layout) add(item Item) {
	l.scene.Items = append(l.scene.Items, item)
}

// hasXAxis reports whether the line y=0 is inside the data window.
func (l *layout) hasXAxis() bool {
	return l.vp.YMin <= 0 && l.vp.YMax >= 0
}

// hasYAxis reports whether the line x=0 is inside the data window.
func (l *layout) hasYAxis() bool {
	return l.vp.XMin <= 0 && l.vp.XMax >= 0
}

func (l *layout) background() {
	w, h := float64(l.vp.Width), float64(l.vp.Height)
	l.add(Fill{
		Path:  polygon(pt(0, 0), pt(w, 0), pt(w, h), pt(0, h)),
		Color: background,
		Class: "background",
	})
}

// grid draws thin lines at the multiples of the grid steps.  The lines are
// moved to pixel centres, so that they stay sharp.
func (l *layout) grid() {
	box := l.vp.Drawable()
	p := &outline.Path{}
	for _, x := range multiples(l.vp.XMin, l.vp.XMax, gridStepX) {
		sx := snap(l.vp.ToPixel(vec.Vec2{X: x}).X)
		p = p.MoveTo(pt(sx, box.LLy)).LineTo(pt(sx, box.URy))
	}
	for _, y := range multiples(l.vp.YMin, l.vp.YMax, gridStepY) {
		sy := snap(l.vp.ToPixel(vec.Vec2{Y: y}).Y)
		p = p.MoveTo(pt(box.LLx, sy)).LineTo(pt(box.URx, sy))
	}
	l.add(Stroke{
		Path:  p,
		Width: gridWidth,
		Cap:   graphics.LineCapButt,
		Join:  graphics.LineJoinMiter,
		Color: gridColor,
		Class: "grid",
	})
}

// axes draws the coordinate axes through the origin, with arrow heads at
// the positive ends and the axis names next to them.
func (l *layout) axes() {
	box := l.vp.Drawable()
	ox, oy := l.origin.X, l.origin.Y

	p := &outline.Path{}
	if l.hasXAxis() {
		p = p.MoveTo(pt(box.LLx, oy)).LineTo(pt(box.URx, oy))
	}
	if l.hasYAxis() {
		p = p.MoveTo(pt(ox, box.LLy)).LineTo(pt(ox, box.URy))
	}
	if p.IsEmpty() {
		return
	}
	l.add(Stroke{
		Path:  p,
		Width: axisWidth,
		Cap:   graphics.LineCapSquare,
		Join:  graphics.LineJoinMiter,
		Color: ink,
		Class: "axis",
	})

	if l.hasXAxis() {
		ax := box.URx
		l.add(Fill{
			Path:  polygon(pt(ax, oy), pt(ax-arrowSize, oy-arrowSize/2), pt(ax-arrowSize, oy+arrowSize/2)),
			Color: ink,
			Class: "axis",
		})
		l.add(Text{X: ax - 16, Y: oy - 8, S: "x", Font: Bold, Color: ink, Class: "axis-label"})
	}
	if l.hasYAxis() {
		ay := box.LLy
		l.add(Fill{
			Path:  polygon(pt(ox, ay), pt(ox-arrowSize/2, ay+arrowSize), pt(ox+arrowSize/2, ay+arrowSize)),
			Color: ink,
			Class: "axis",
		})
		l.add(Text{X: ox + 8, Y: ay + 18, S: "y", Font: Bold, Color: ink, Class: "axis-label"})
	}
}

// ticks draws tick marks with numeric labels along both axes.  Labels are
// kept inside the drawable area.  The label "0" is drawn only once, below
// the x axis.
func (l *layout) ticks() {
	box := l.vp.Drawable()
	h := float64(l.vp.Height)
	ox, oy := l.origin.X, l.origin.Y
	ascent := l.m.Ascent(Regular)

	p := &outline.Path{}
	var labels []Text

	if l.hasXAxis() {
		top := max(box.LLy, oy-2)
		bottom := min(h-2, oy+8)
		baseline := min(h-4, oy+float64(ascent+12))
		for _, x := range multiples(l.vp.XMin, l.vp.XMax, tickStep) {
			sx := l.vp.ToPixel(vec.Vec2{X: x}).X
			p = p.MoveTo(pt(sx, top)).LineTo(pt(sx, bottom))

			s := label(x)
			w := float64(l.m.Width(Regular, s))
			left := sx - math.Floor(w/2)
			left = max(box.LLx, min(left, box.URx-w))
			labels = append(labels, Text{X: left, Y: baseline, S: s, Font: Regular, Color: ink, Class: "tick-label"})
		}
	}

	if l.hasYAxis() {
		for _, y := range multiples(l.vp.YMin, l.vp.YMax, tickStep) {
			sy := l.vp.ToPixel(vec.Vec2{Y: y}).Y
			p = p.MoveTo(pt(ox-4, sy)).LineTo(pt(ox+4, sy))
			if y == 0 && l.hasXAxis() {
				continue
			}

			s := label(y)
			w := float64(l.m.Width(Regular, s))
			left := max(box.LLx, ox-8-w)
			baseline := sy + float64(ascent/2-2)
			labels = append(labels, Text{X: left, Y: baseline, S: s, Font: Regular, Color: ink, Class: "tick-label"})
		}
	}

	if p.IsEmpty() {
		return
	}
	l.add(Stroke{
		Path:  p,
		Width: axisWidth,
		Cap:   graphics.LineCapButt,
		Join:  graphics.LineJoinMiter,
		Color: ink,
		Class: "tick",
	})
	for _, t := range labels {
		l.add(t)
	}
}

// legend draws a box in the top right corner, holding a short sample of
// the curve colour and the legend label.
func (l *layout) legend() {
	textW := l.m.Width(Regular, LegendLabel)
	textH := l.m.LineHeight(Regular)
	rectW := textW + 2*legendPadX + legendGap
	rectH := textH + 2*legendPadY
	rectX := l.vp.Width - l.vp.Padding - rectW
	rectY := l.vp.Padding + legendOffset

	box := roundedRect(float64(rectX), float64(rectY), float64(rectW), float64(rectH), legendRadius)
	l.add(Fill{Path: box, Color: legendFill, Class: "legend"})
	l.add(Stroke{
		Path:  box,
		Width: 1,
		Cap:   graphics.LineCapButt,
		Join:  graphics.LineJoinMiter,
		Color: ink,
		Class: "legend",
	})

	ly := float64(rectY + rectH/2)
	x0 := float64(rectX + legendPadX)
	l.add(Stroke{
		Path:  (&outline.Path{}).MoveTo(pt(x0, ly)).LineTo(pt(x0+legendGap-4, ly)),
		Width: 2,
		Cap:   graphics.LineCapRound,
		Join:  graphics.LineJoinRound,
		Color: accent,
		Class: "legend-swatch",
	})
	l.add(Text{
		X:     float64(rectX + legendPadX + legendGap),
		Y:     float64(rectY + legendPadY + l.m.Ascent(Regular)),
		S:     LegendLabel,
		Font:  Regular,
		Color: ink,
		Class: "legend-label",
	})
}

// curve strokes the curve as a single polyline.  The path stays in data
// space; the viewport transformation is attached to the item.
func (l *layout) curve(pts []vec.Vec2) {
	if len(pts) == 0 {
		return
	}
	p := (&outline.Path{}).MoveTo(pts[0])
	for _, q := range pts[1:] {
		p = p.LineTo(q)
	}
	l.add(Stroke{
		Path:  p,
		CTM:   l.vp.Matrix(),
		Width: curveWidth / l.vp.YScale,
		Cap:   graphics.LineCapSquare,
		Join:  graphics.LineJoinRound,
		Color: accent,
		Class: "curve",
	})
}

// multiples returns the multiples of step in the closed interval [lo, hi].
// Grid lines and ticks use these positions rather than starting at lo, so
// that the origin always falls on a tick and the zero label appears once.
func multiples(lo, hi, step float64) []float64 {
	var res []float64
	for k := math.Ceil(lo / step); k*step <= hi; k++ {
		res = append(res, k*step)
	}
	return res
}

// label formats a tick value, which is always a whole number.
func label(v float64) string {
	return strconv.Itoa(int(math.Round(v)))
}

// snap moves a pixel coordinate to the centre of its pixel.
func snap(v float64) float64 {
	return math.Floor(v) + 0.5
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func polygon(pts ...vec.Vec2) *outline.Path {
	p := (&outline.Path{}).MoveTo(pts[0])
	for _, q := range pts[1:] {
		p = p.LineTo(q)
	}
	return p.Close()
}

// roundedRect returns a rectangle with circular corners of radius r.
func roundedRect(x, y, w, h, r float64) *outline.Path {
	k := circleKappa * r
	x1, y1 := x+w, y+h
	return (&outline.Path{}).
		MoveTo(pt(x+r, y)).
		LineTo(pt(x1-r, y)).
		CubeTo(pt(x1-r+k, y), pt(x1, y+r-k), pt(x1, y+r)).
		LineTo(pt(x1, y1-r)).
		CubeTo(pt(x1, y1-r+k), pt(x1-r+k, y1), pt(x1-r, y1)).
		LineTo(pt(x+r, y1)).
		CubeTo(pt(x+r-k, y1), pt(x, y1-r+k), pt(x, y1-r)).
		LineTo(pt(x, y+r)).
		CubeTo(pt(x, y+r-k), pt(x+r-k, y), pt(x+r, y)).
		Close()
}
