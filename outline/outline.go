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

// Package outline stores paths as flat command and coordinate lists.
//
// A [Path] is built with chained calls:
//
//	p := (&outline.Path{}).MoveTo(a).LineTo(b).LineTo(c).Close()
//
// Consumers either walk Cmds and Coords directly, or use [Path.All] to
// obtain a geom path iterator.
package outline

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Path is a sequence of path commands.  Coords holds the points of all
// commands in order: one for MoveTo and LineTo, two for QuadTo, three for
// CubeTo and none for Close.
type Path struct {
	Cmds   []path.Command
	Coords []vec.Vec2
}

// MoveTo starts a new subpath at p.
func (o *Path) MoveTo(p vec.Vec2) *Path {
	o.Cmds = append(o.Cmds, path.CmdMoveTo)
	o.Coords = append(o.Coords, p)
	return o
}

// LineTo appends a straight line to p.
func (o *Path) LineTo(p vec.Vec2) *Path {
	o.Cmds = append(o.Cmds, path.CmdLineTo)
	o.Coords = append(o.Coords, p)
	return o
}

// QuadTo appends a quadratic Bézier curve with control point c.
func (o *Path) QuadTo(c, p vec.Vec2) *Path {
	o.Cmds = append(o.Cmds, path.CmdQuadTo)
	o.Coords = append(o.Coords, c, p)
	return o
}

// CubeTo appends a cubic Bézier curve with control points c1 and c2.
func (o *Path) CubeTo(c1, c2, p vec.Vec2) *Path {
	o.Cmds = append(o.Cmds, path.CmdCubeTo)
	o.Coords = append(o.Coords, c1, c2, p)
	return o
}

// Close closes the current subpath.
func (o *Path) Close() *Path {
	o.Cmds = append(o.Cmds, path.CmdClose)
	return o
}

// Append adds the commands of q to the end of o.
func (o *Path) Append(q *Path) *Path {
	o.Cmds = append(o.Cmds, q.Cmds...)
	o.Coords = append(o.Coords, q.Coords...)
	return o
}

// IsEmpty reports whether the path has no commands.
func (o *Path) IsEmpty() bool {
	return o == nil || len(o.Cmds) == 0
}

// All returns an iterator over the commands of the path.  The point slice
// passed to yield must not be modified.
func (o *Path) All() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if o == nil {
			return
		}
		k := 0
		for _, cmd := range o.Cmds {
			n := numPoints(cmd)
			if !yield(cmd, o.Coords[k:k+n:k+n]) {
				return
			}
			k += n
		}
	}
}

func numPoints(cmd path.Command) int {
	switch cmd {
	case path.CmdMoveTo, path.CmdLineTo:
		return 1
	case path.CmdQuadTo:
		return 2
	case path.CmdCubeTo:
		return 3
	default:
		return 0
	}
}
