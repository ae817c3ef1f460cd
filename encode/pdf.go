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

package encode

import (
	imgcolor "image/color"
	"io"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/spiral/outline"
	"seehuhn.de/go/spiral/plot"
)

// PDF writes the shapes of the scene to w as a single page PDF document.
// One pixel becomes one PDF point.  Text items are not included.
func PDF(w io.Writer, s *plot.Scene) error {
	paper := &pdf.Rectangle{
		URx: float64(s.Width),
		URy: float64(s.Height),
	}
	page, err := document.WriteSinglePage(w, paper, pdf.V1_7, nil)
	if err != nil {
		return wrap("pdf", err)
	}

	// PDF origin is bottom-left, scene coordinates start top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(s.Height)})

	for _, item := range s.Items {
		switch item := item.(type) {
		case plot.Fill:
			page.SetFillColor(deviceRGB(item.Color))
			drawPath(page, item.Path, matrix.Matrix{})
			page.Fill()
		case plot.Stroke:
			page.SetStrokeColor(deviceRGB(item.Color))
			page.SetLineWidth(item.Width * lineScale(item.CTM))
			page.SetLineCap(item.Cap)
			page.SetLineJoin(item.Join)
			drawPath(page, item.Path, item.CTM)
			page.Stroke()
		}
	}

	return wrap("pdf", page.Close())
}

// drawPath appends p to the current path of the page.  The coordinates are
// mapped to pixels first, so that the line width is not distorted by m.
func drawPath(page *document.Page, p *outline.Path, m matrix.Matrix) {
	segments(p, m, func(s segment) {
		switch s.cmd {
		case path.CmdMoveTo:
			page.MoveTo(s.pts[0].X, s.pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(s.pts[0].X, s.pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(s.pts[0].X, s.pts[0].Y, s.pts[1].X, s.pts[1].Y, s.pts[2].X, s.pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	})
}

func deviceRGB(c imgcolor.NRGBA) color.DeviceRGB {
	return color.DeviceRGB{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}
