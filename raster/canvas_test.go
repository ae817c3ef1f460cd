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
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/spiral/outline"
)

var (
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.NRGBA{A: 255}
	red   = color.NRGBA{R: 255, A: 255}
)

func TestCanvasFill(t *testing.T) {
	c := NewCanvas(20, 20)
	c.Clear(white)
	c.Fill(rectangle(5, 5, 10, 10), matrix.Matrix{}, black)

	if got := c.Image.RGBAAt(7, 7); got != (color.RGBA{A: 255}) {
		t.Errorf("inside: got %v, want black", got)
	}
	if got := c.Image.RGBAAt(2, 2); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("outside: got %v, want white", got)
	}
}

func TestCanvasPartialCoverage(t *testing.T) {
	c := NewCanvas(20, 20)
	c.Clear(white)
	c.Fill(rectangle(4.5, 4, 10, 10), matrix.Matrix{}, black)

	got := c.Image.RGBAAt(4, 6)
	if got.R < 120 || got.R > 135 || got.A != 255 {
		t.Errorf("half covered pixel: got %v, want mid grey", got)
	}
}

func TestCanvasMaskIsCleared(t *testing.T) {
	c := NewCanvas(20, 20)
	c.Clear(white)
	c.Fill(rectangle(0, 0, 10, 10), matrix.Matrix{}, black)
	c.Fill(rectangle(12, 12, 14, 14), matrix.Matrix{}, red)

	if got := c.Image.RGBAAt(5, 5); got != (color.RGBA{A: 255}) {
		t.Errorf("first fill was repainted: got %v", got)
	}
	for _, v := range c.mask.Pix {
		if v != 0 {
			t.Fatal("mask not cleared after compositing")
		}
	}
}

func TestCanvasStroke(t *testing.T) {
	c := NewCanvas(40, 40)
	c.Clear(white)
	ctm := matrix.Matrix{1, 0, 0, -1, 0, 40} // y axis pointing up
	line := (&outline.Path{}).MoveTo(pt(5, 10)).LineTo(pt(35, 10))
	c.Stroke(line, ctm, Pen{Width: 4, Cap: graphics.LineCapButt, Join: graphics.LineJoinRound}, black)

	if got := c.Image.RGBAAt(20, 30); got != (color.RGBA{A: 255}) {
		t.Errorf("on the line: got %v, want black", got)
	}
	if got := c.Image.RGBAAt(20, 10); got.R != 255 {
		t.Errorf("away from the line: got %v, want white", got)
	}
}

func TestCanvasText(t *testing.T) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: 12, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		t.Fatal(err)
	}
	defer face.Close()

	c := NewCanvas(40, 20)
	c.Clear(white)
	c.Text(face, 2, 15, "Hx", black)

	dark := 0
	for y := range 20 {
		for x := range 40 {
			if c.Image.RGBAAt(x, y).R < 128 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("no text pixels drawn")
	}
	if !c.Image.Bounds().Eq(image.Rect(0, 0, 40, 20)) {
		t.Errorf("unexpected bounds %v", c.Image.Bounds())
	}
}
