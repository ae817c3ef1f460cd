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

// Package spiral draws plots of the Fibonacci spiral.
//
// A plot shows a light grid, coordinate axes with arrow heads, tick labels,
// a legend and the spiral itself.  [RenderPNG] produces a raster image,
// [RenderSVG] a vector document and [RenderSVGFragment] the same document
// prepared for inline use in HTML.  [Render] gives access to all settings
// through [Options].
//
// Two curve families are available: the golden logarithmic spiral (the
// default) and a chain of Fibonacci quarter circles.  See the curve
// package for details.
//
// Out of range parameters are clamped silently.  Rendering only fails if
// the canvas leaves no room to draw ([ErrDegenerateGeometry]) or if the
// output cannot be encoded ([EncodingError]).  Every call works on its own
// buffers, so that plots can be rendered concurrently.
package spiral
