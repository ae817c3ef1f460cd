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
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/spiral/outline"
)

// Scene is a format independent draw list.  Items are listed from back to
// front.
type Scene struct {
	Width, Height int
	Items         []Item
}

// Item is one of [Fill], [Stroke] or [Text].
type Item interface {
	isItem()
}

// Fill paints the interior of a path given in pixel coordinates, using the
// nonzero winding rule.
type Fill struct {
	Path  *outline.Path
	Color color.NRGBA
	Class string // role of the item in the plot, e.g. "legend"
}

// Stroke draws the outline of a path.  The path coordinates and the width
// are in the user space of CTM; the zero matrix means pixel coordinates.
type Stroke struct {
	Path  *outline.Path
	CTM   matrix.Matrix
	Width float64
	Cap   graphics.LineCapStyle
	Join  graphics.LineJoinStyle
	Color color.NRGBA
	Class string
}

// Text draws a single line of text.  (X, Y) is the left end of the
// baseline, in pixel coordinates.
type Text struct {
	X, Y  float64
	S     string
	Font  Font
	Color color.NRGBA
	Class string
}

func (Fill) isItem()   {}
func (Stroke) isItem() {}
func (Text) isItem()   {}

// Font selects one of the two type faces used in a plot.
type Font int

const (
	// Regular is used for tick labels and the legend.
	Regular Font = iota

	// Bold is used for the axis names.
	Bold
)

// Size returns the font size in pixels.
func (f Font) Size() float64 {
	if f == Bold {
		return 14
	}
	return 12
}

// Measurer provides the font metrics needed to place text.
// All values are in whole pixels.
type Measurer interface {
	// Width returns the advance width of s.
	Width(f Font, s string) int

	// Ascent returns the distance from the baseline to the top of the
	// tallest glyphs.
	Ascent(f Font) int

	// LineHeight returns the recommended distance between baselines.
	LineHeight(f Font) int
}

// Plot colours.
var (
	background = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	gridColor  = color.NRGBA{R: 230, G: 230, B: 230, A: 255}
	ink        = color.NRGBA{A: 255} // axes, ticks, labels and borders
	legendFill = color.NRGBA{R: 245, G: 245, B: 245, A: 255}
	accent     = color.NRGBA{R: 13, G: 148, B: 136, A: 255} // the curve
)
