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

package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/spiral/outline"
)

// Pen describes how a path is stroked.
type Pen struct {
	Width float64 // in user space units
	Cap   graphics.LineCapStyle
	Join  graphics.LineJoinStyle
}

// Canvas is an RGBA drawing surface.  Fills and strokes are rasterised
// into a coverage mask, which is then composited onto the image in a solid
// colour.
type Canvas struct {
	Image *image.RGBA

	mask  *image.Alpha
	dirty image.Rectangle // part of mask which holds non-zero values
	r     *Rasteriser
}

// NewCanvas allocates a transparent canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	bounds := image.Rect(0, 0, width, height)
	clip := rect.Rect{URx: float64(width), URy: float64(height)}
	return &Canvas{
		Image: image.NewRGBA(bounds),
		mask:  image.NewAlpha(bounds),
		r:     NewRasteriser(clip),
	}
}

// Clear sets every pixel of the canvas to col.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.Image, c.Image.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// Fill paints the interior of p, using the nonzero winding rule.
// The zero matrix is treated as the identity.
func (c *Canvas) Fill(p *outline.Path, ctm matrix.Matrix, col color.Color) {
	c.setup(ctm)
	c.r.FillNonZero(p, c.cover)
	c.composite(col)
}

// Stroke paints the outline of p using pen.
// The zero matrix is treated as the identity.
func (c *Canvas) Stroke(p *outline.Path, ctm matrix.Matrix, pen Pen, col color.Color) {
	c.setup(ctm)
	c.r.Width = pen.Width
	c.r.Cap = pen.Cap
	c.r.Join = pen.Join
	c.r.Stroke(p, c.cover)
	c.composite(col)
}

// Text draws s with its baseline starting at the device point (x, y).
func (c *Canvas) Text(face font.Face, x, y float64, s string, col color.Color) {
	d := &font.Drawer{
		Dst:  c.Image,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	d.DrawString(s)
}

func (c *Canvas) setup(ctm matrix.Matrix) {
	c.r.Reset(c.r.Clip)
	if ctm != (matrix.Matrix{}) {
		c.r.CTM = ctm
	}
	c.dirty = image.Rectangle{}
}

// cover is the emit callback for the rasteriser.
func (c *Canvas) cover(y, xMin int, coverage []float32) {
	row := c.mask.Pix[y*c.mask.Stride+xMin:]
	for i, v := range coverage {
		row[i] = uint8(min(255, int(v*255+0.5)))
	}
	c.dirty = c.dirty.Union(image.Rect(xMin, y, xMin+len(coverage), y+1))
}

// composite blends col through the mask onto the image, then clears the
// mask for the next operation.
func (c *Canvas) composite(col color.Color) {
	if c.dirty.Empty() {
		return
	}
	draw.DrawMask(c.Image, c.dirty, image.NewUniform(col), image.Point{}, c.mask, c.dirty.Min, draw.Over)
	for y := c.dirty.Min.Y; y < c.dirty.Max.Y; y++ {
		i := y*c.mask.Stride + c.dirty.Min.X
		clear(c.mask.Pix[i : i+c.dirty.Dx()])
	}
}
