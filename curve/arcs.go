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

package curve

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// arcStepDeg is the angular sampling step for quarter arcs, in degrees.
const arcStepDeg = 3.0

// Arc is a quarter circle of a Fibonacci spiral.
type Arc struct {
	Radius float64

	// Points samples the arc from its start to its end.  The first point
	// coincides with the last point of the preceding arc.
	Points []vec.Vec2
}

// QuadrantArcs chains n quarter circles, starting at the origin, with radii
// given by the first n Fibonacci numbers.  The value of n is clamped to the
// range [1, MaxTerms].
//
// Arc i sweeps the angles from (i mod 4)·90° to (i mod 4)·90° + 90° around
// its own centre, so that the spiral turns counter-clockwise.
func QuadrantArcs(n int) []Arc {
	fib := Fibonacci(n)
	arcs := make([]Arc, len(fib))

	var cur vec.Vec2
	for i, r := range fib {
		start := float64(i%4) * 90
		end := start + 90

		sin, cos := math.Sincos(start * math.Pi / 180)
		c := vec.Vec2{X: cur.X - r*cos, Y: cur.Y - r*sin}

		pts := make([]vec.Vec2, 0, int(90/arcStepDeg)+1)
		for a := start; a <= end+1e-9; a += arcStepDeg {
			sin, cos := math.Sincos(a * math.Pi / 180)
			pts = append(pts, vec.Vec2{X: c.X + r*cos, Y: c.Y + r*sin})
		}
		pts[0] = cur // exact continuity with the previous arc

		arcs[i] = Arc{Radius: r, Points: pts}
		cur = pts[len(pts)-1]
	}
	return arcs
}

// Polyline joins the points of all arcs into one path, dropping the
// duplicated point where two arcs meet.
func Polyline(arcs []Arc) []vec.Vec2 {
	var n int
	for _, a := range arcs {
		n += len(a.Points)
	}
	pts := make([]vec.Vec2, 0, n)
	for i, a := range arcs {
		if i > 0 && len(a.Points) > 0 {
			pts = append(pts, a.Points[1:]...)
			continue
		}
		pts = append(pts, a.Points...)
	}
	return pts
}
