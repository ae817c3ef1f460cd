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

// Package encode serialises plot scenes as PNG, SVG or PDF files.
package encode

import (
	"image"
	"image/png"
	"io"

	"golang.org/x/image/font"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/spiral/plot"
	"seehuhn.de/go/spiral/raster"
)

// FaceSource provides the font faces for drawing text into raster images.
type FaceSource interface {
	Face(f plot.Font) font.Face
}

// Rasterize paints the scene onto a new RGBA image.
func Rasterize(s *plot.Scene, faces FaceSource) *image.RGBA {
	c := raster.NewCanvas(s.Width, s.Height)
	for _, item := range s.Items {
		switch item := item.(type) {
		case plot.Fill:
			c.Fill(item.Path, matrix.Matrix{}, item.Color)
		case plot.Stroke:
			pen := raster.Pen{Width: item.Width, Cap: item.Cap, Join: item.Join}
			c.Stroke(item.Path, item.CTM, pen, item.Color)
		case plot.Text:
			c.Text(faces.Face(item.Font), item.X, item.Y, item.S, item.Color)
		}
	}
	return c.Image
}

// PNG rasterizes the scene and writes it to w as a PNG image.
func PNG(w io.Writer, s *plot.Scene, faces FaceSource) error {
	img := Rasterize(s, faces)
	enc := &png.Encoder{CompressionLevel: png.BestSpeed}
	return wrap("png", enc.Encode(w, img))
}
