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
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/spiral/outline"
)

var benchSizes = []int{20, 200, 2000}

// BenchmarkFillDisc fills a disc with our rasteriser.
func BenchmarkFillDisc(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasteriser(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			s := float64(size)
			disc := circle(s/2, s/2, s*0.45)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.FillNonZero(disc, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range coverage {
						row[i] = uint8(c * 255)
					}
				})
			}
		})
	}
}

// BenchmarkVectorDisc fills the same disc with x/image/vector.
func BenchmarkVectorDisc(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			z := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})
			s := float32(size)
			cx, cy, radius := s/2, s/2, s*0.45
			kr := float32(0.5522847498) * radius

			b.ReportAllocs()
			for b.Loop() {
				z.Reset(size, size)
				z.MoveTo(cx+radius, cy)
				z.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
				z.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
				z.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
				z.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
				z.ClosePath()
				z.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkStrokeSpiral strokes a densely sampled logarithmic spiral, the
// typical workload of a plot with many terms.
func BenchmarkStrokeSpiral(b *testing.B) {
	for _, size := range benchSizes[1:] {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasteriser(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			spiral := spiralPath(float64(size), 20)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.Width = 3
				r.Cap = graphics.LineCapSquare
				r.Join = graphics.LineJoinRound
				r.Stroke(spiral, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range coverage {
						row[i] = uint8(c * 255)
					}
				})
			}
		})
	}
}

// spiralPath samples a golden spiral with the given number of quarter
// turns, scaled to fit a square canvas of side size.
func spiralPath(size float64, turns int) *outline.Path {
	growth := 2 * math.Log(math.Phi) / math.Pi
	thetaMax := float64(turns) * math.Pi / 2
	scale := 0.45 * size / math.Exp(growth*thetaMax)

	p := &outline.Path{}
	for theta := 0.0; theta <= thetaMax; theta += 0.01 {
		rad := math.Exp(growth*theta) * scale
		q := pt(size/2+rad*math.Cos(theta), size/2+rad*math.Sin(theta))
		if theta == 0 {
			p = p.MoveTo(q)
		} else {
			p = p.LineTo(q)
		}
	}
	return p
}
