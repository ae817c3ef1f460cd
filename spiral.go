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

package spiral

import (
	"bytes"
	"fmt"

	"seehuhn.de/go/spiral/curve"
	"seehuhn.de/go/spiral/encode"
	"seehuhn.de/go/spiral/plot"
	"seehuhn.de/go/spiral/text"
)

// DefaultSize is the canvas width used for vector output.
const DefaultSize = 800

// Bounds gives the accepted range for the number of terms and for the
// canvas dimensions.  Values outside the range are clamped.
type Bounds struct {
	MinTerms, MaxTerms int
	MinSize, MaxSize   int
}

// RasterBounds returns the limits for raster images.
func RasterBounds() Bounds {
	return Bounds{MinTerms: 1, MaxTerms: curve.MaxTerms, MinSize: 100, MaxSize: 2000}
}

// VectorBounds returns the limits for SVG output, which grows with the
// number of samples on the curve.
func VectorBounds() Bounds {
	return Bounds{MinTerms: 1, MaxTerms: 50, MinSize: 100, MaxSize: 2000}
}

// Model selects the curve family.
type Model int

const (
	// ModelLogSpiral is the golden logarithmic spiral.
	ModelLogSpiral Model = iota

	// ModelQuadrantArcs is a chain of quarter circles with Fibonacci radii.
	ModelQuadrantArcs
)

func (m Model) String() string {
	switch m {
	case ModelLogSpiral:
		return "log"
	case ModelQuadrantArcs:
		return "arcs"
	default:
		return fmt.Sprintf("Model(%d)", int(m))
	}
}

// ParseModel converts the name of a curve family, as returned by
// [Model.String], back into a Model.
func ParseModel(name string) (Model, error) {
	switch name {
	case "log", "spiral":
		return ModelLogSpiral, nil
	case "arcs", "quadrant":
		return ModelQuadrantArcs, nil
	}
	return 0, fmt.Errorf("spiral: unknown curve model %q", name)
}

// Format selects the output encoding of [Render].
type Format int

const (
	FormatPNG Format = iota
	FormatSVG

	// FormatPDF is a single page PDF document.  It holds the shapes of
	// the plot, but no text.
	FormatPDF
)

// Options controls a plot.  The zero value draws a one term log spiral on
// the smallest raster canvas.
type Options struct {
	// Terms is the number of Fibonacci terms, i.e. the number of quarter
	// turns of the spiral.
	Terms int

	// Size is the canvas width in pixels.
	Size int

	// Height is the canvas height in pixels.  If zero, Size*3/4 is used.
	Height int

	// Padding is the margin around the drawable area, in pixels.  If zero,
	// plot.DefaultPadding is used.
	Padding int

	Model Model

	// Bounds limits Terms, Size and Height.  If zero, [RasterBounds] is used.
	Bounds Bounds
}

// Clamped returns a copy of the options with the bounds applied and the
// defaults filled in.
func (o *Options) Clamped() Options {
	b := o.Bounds
	if b == (Bounds{}) {
		b = RasterBounds()
	}

	res := *o
	res.Bounds = b
	res.Terms = clamp(o.Terms, b.MinTerms, b.MaxTerms)
	res.Size = clamp(o.Size, b.MinSize, b.MaxSize)
	if o.Height == 0 {
		res.Height = res.Size * 3 / 4
	} else {
		res.Height = clamp(o.Height, b.MinSize, b.MaxSize)
	}
	if o.Padding == 0 {
		res.Padding = plot.DefaultPadding
	}
	return res
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// scene lays out the plot described by o.
func (o *Options) scene(m plot.Measurer) (*plot.Scene, error) {
	c := o.Clamped()
	vp, err := plot.NewViewport(c.Size, c.Height, c.Padding)
	if err != nil {
		return nil, err
	}

	var model curve.Model
	switch c.Model {
	case ModelQuadrantArcs:
		model = curve.Arcs{FitRadius: vp.FitRadius()}
	default:
		model = curve.LogSpiral{FitRadius: vp.FitRadius()}
	}
	return plot.Layout(vp, model.Points(c.Terms), m), nil
}

// Render draws the plot described by opt and returns the encoded image.
// Either the complete image is returned, or an error.
func Render(format Format, opt *Options) ([]byte, error) {
	if format < FormatPNG || format > FormatPDF {
		return nil, fmt.Errorf("spiral: unknown format %d", format)
	}

	faces, err := text.Open()
	if err != nil {
		return nil, err
	}
	defer faces.Close()

	s, err := opt.scene(faces)
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	switch format {
	case FormatPNG:
		err = encode.PNG(buf, s, faces)
	case FormatSVG:
		err = encode.SVG(buf, s)
	case FormatPDF:
		err = encode.PDF(buf, s)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderPNG draws the log spiral with the given number of terms as a PNG
// image.  The image is size pixels wide and size*3/4 pixels high.  Terms
// are clamped to [1, 1000] and size to [100, 2000].
func RenderPNG(terms, size int) ([]byte, error) {
	return Render(FormatPNG, &Options{Terms: terms, Size: size, Bounds: RasterBounds()})
}

// RenderSVG draws the log spiral with the given number of terms as an SVG
// document of 800x600 pixels.  Terms are clamped to [1, 50].
func RenderSVG(terms int) (string, error) {
	data, err := Render(FormatSVG, &Options{Terms: terms, Size: DefaultSize, Bounds: VectorBounds()})
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// RenderSVGFragment is like [RenderSVG], but returns only the svg element,
// for embedding into an HTML page.
func RenderSVGFragment(terms int) (string, error) {
	doc, err := RenderSVG(terms)
	if err != nil {
		return "", err
	}
	return encode.Fragment(doc), nil
}
