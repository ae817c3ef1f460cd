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
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"

	svg "github.com/ajstarks/svgo"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/spiral/outline"
	"seehuhn.de/go/spiral/plot"
)

// FontFamily is the CSS font family used for text in SVG output.
const FontFamily = "Go, Arial, sans-serif"

// SVG writes the scene to w as a standalone SVG document.  Coordinates are
// pixels, with two decimal places.
func SVG(w io.Writer, s *plot.Scene) error {
	sw := &stickyWriter{w: w}
	canvas := svg.New(sw)

	canvas.Start(s.Width, s.Height,
		fmt.Sprintf(`viewBox="0 0 %d %d"`, s.Width, s.Height))
	canvas.Title(plot.LegendLabel)
	for _, item := range s.Items {
		switch item := item.(type) {
		case plot.Fill:
			canvas.Path(pathData(item.Path, matrix.Matrix{}), classAttr(item.Class),
				"fill:"+hex(item.Color)+";stroke:none")
		case plot.Stroke:
			width := item.Width * lineScale(item.CTM)
			style := fmt.Sprintf("fill:none;stroke:%s;stroke-width:%s;stroke-linecap:%s;stroke-linejoin:%s",
				hex(item.Color), num(width), capName(item.Cap), joinName(item.Join))
			canvas.Path(pathData(item.Path, item.CTM), classAttr(item.Class), style)
		case plot.Text:
			style := fmt.Sprintf("font-family:%s;font-size:%spx;fill:%s",
				FontFamily, num(item.Font.Size()), hex(item.Color))
			if item.Font == plot.Bold {
				style += ";font-weight:bold"
			}
			canvas.Text(int(math.Round(item.X)), int(math.Round(item.Y)), item.S,
				classAttr(item.Class), style)
		}
	}
	canvas.End()

	return wrap("svg", sw.err)
}

// pathData formats a path as the value of an SVG "d" attribute.  Points
// which coincide after rounding are written only once.
func pathData(p *outline.Path, m matrix.Matrix) string {
	var buf []byte
	var last vec.Vec2
	haveLast := false
	segments(p, m, func(s segment) {
		switch s.cmd {
		case path.CmdMoveTo:
			buf = appendCmd(buf, 'M', s.pts[0])
			last, haveLast = round2(s.pts[0]), true
		case path.CmdLineTo:
			q := round2(s.pts[0])
			if haveLast && q == last {
				return
			}
			buf = appendCmd(buf, 'L', s.pts[0])
			last = q
		case path.CmdCubeTo:
			buf = appendCmd(buf, 'C', s.pts[0])
			buf = appendPoint(append(buf, ' '), s.pts[1])
			buf = appendPoint(append(buf, ' '), s.pts[2])
			last = round2(s.pts[2])
		case path.CmdClose:
			buf = append(buf, 'Z')
			haveLast = false
		}
	})
	return string(buf)
}

func appendCmd(buf []byte, cmd byte, p vec.Vec2) []byte {
	buf = append(buf, cmd)
	return appendPoint(buf, p)
}

func appendPoint(buf []byte, p vec.Vec2) []byte {
	buf = strconv.AppendFloat(buf, round(p.X), 'f', -1, 64)
	buf = append(buf, ' ')
	return strconv.AppendFloat(buf, round(p.Y), 'f', -1, 64)
}

// round rounds to two decimal places.  Negative zero becomes zero.
func round(x float64) float64 {
	return math.Round(x*100)/100 + 0
}

func round2(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: round(p.X), Y: round(p.Y)}
}

func num(x float64) string {
	return strconv.FormatFloat(round(x), 'f', -1, 64)
}

func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func classAttr(class string) string {
	return `class="` + class + `"`
}

func capName(c graphics.LineCapStyle) string {
	switch c {
	case graphics.LineCapRound:
		return "round"
	case graphics.LineCapSquare:
		return "square"
	default:
		return "butt"
	}
}

func joinName(j graphics.LineJoinStyle) string {
	switch j {
	case graphics.LineJoinRound:
		return "round"
	case graphics.LineJoinBevel:
		return "bevel"
	default:
		return "miter"
	}
}

// stickyWriter keeps the first write error.  svgo does not report
// errors itself.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) Write(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n, err := s.w.Write(p)
	s.err = err
	return n, err
}
