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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/spiral/outline"
)

// lineScale returns the factor by which m scales line widths.
// The zero matrix stands for pixel coordinates.
func lineScale(m matrix.Matrix) float64 {
	if m.IsZero() {
		return 1
	}
	return math.Sqrt(math.Abs(m[0]*m[3] - m[1]*m[2]))
}

// segment is one path command with its points already in pixel space.
type segment struct {
	cmd path.Command
	pts [3]vec.Vec2
}

// segments walks p and calls yield for every command, with coordinates
// mapped through m.  Quadratic curves are converted to cubic ones.  The
// zero matrix leaves the coordinates unchanged.
func segments(p *outline.Path, m matrix.Matrix, yield func(segment)) {
	it := p.All().ToCubic()
	if !m.IsZero() {
		it = it.Transform(m)
	}
	for cmd, pts := range it {
		s := segment{cmd: cmd}
		copy(s.pts[:], pts)
		yield(s)
	}
}
