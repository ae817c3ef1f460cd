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

// Package raster converts paths into anti-aliased pixel coverage and
// composites the result onto RGBA images.
//
// Coverage is computed exactly from the signed area of the path inside each
// pixel, using a scanline sweep over an active edge list.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/spiral/outline"
)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64 // start point
	x1, y1 float64 // end point
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasteriser converts paths to pixel coverage values: the fraction of each
// pixel covered by the filled or stroked path, from 0 (outside) to 1
// (inside).  Internal buffers are reused between calls.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space.  Must be non-singular.
	CTM matrix.Matrix

	// Clip bounds the output, in device coordinates.
	// Coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the line segments used to approximate it.  Must be positive.
	Flatness float64

	// Width is the stroke width in user-space units.
	Width float64

	// Cap is the style used at the ends of open subpaths.
	Cap graphics.LineCapStyle

	// Join is the style used where two segments of a subpath meet.
	Join graphics.LineJoinStyle

	// MiterLimit converts miter joins to bevels when the miter length
	// exceeds MiterLimit times the stroke width.  Must be at least 1.
	MiterLimit float64

	cover  []float32 // cover change per pixel; reused as output
	area   []float32 // area to the right of the edge, per pixel
	edges  []edge    // edges of the current path, in device space
	active []int     // indices into edges, for the current scanline

	verts        []vec.Vec2 // vertices of the subpath being stroked
	pieces       []vec.Vec2 // stroke polygons, all wound the same way
	pieceOffsets []int      // start index of each polygon in pieces

	noEdges          bool // true until the first edge is added
	devXMin, devXMax float64
	devYMin, devYMax float64
}

// NewRasteriser returns a Rasteriser for the given clip rectangle.
// All other parameters are set to the PDF defaults.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit

	r.edges = r.edges[:0]
	r.active = r.active[:0]
	r.verts = r.verts[:0]
	r.pieces = r.pieces[:0]
	r.pieceOffsets = r.pieceOffsets[:0]
}

// FillNonZero fills p using the nonzero winding rule.  Open subpaths are
// closed implicitly.  The emit callback receives coverage row by row; its
// slice argument is only valid during the call.
func (r *Rasteriser) FillNonZero(p *outline.Path, emit func(y, xMin int, coverage []float32)) {
	r.beginEdges()

	var start, current vec.Vec2
	open := false
	closeSubpath := func() {
		if open && current != start {
			r.addEdge(current, start)
		}
		current = start
	}
	r.walk(p,
		func(pt vec.Vec2) {
			closeSubpath()
			start, current = pt, pt
			open = true
		},
		func(pt vec.Vec2) {
			r.addEdge(current, pt)
			current = pt
		},
		closeSubpath,
	)
	closeSubpath()

	r.sweep(emit)
}

// walk visits the subpaths of p, with all curves replaced by line segments.
func (r *Rasteriser) walk(p *outline.Path, moveTo, lineTo func(vec.Vec2), closePath func()) {
	var current vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = p.Coords[k]
			moveTo(current)
			k++
		case path.CmdLineTo:
			current = p.Coords[k]
			lineTo(current)
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], lineTo)
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], lineTo)
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			closePath()
		}
	}
}

// transform maps a point from user space to device space.
func (r *Rasteriser) transform(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*p.X + r.CTM[2]*p.Y + r.CTM[4],
		Y: r.CTM[1]*p.X + r.CTM[3]*p.Y + r.CTM[5],
	}
}

// transformLinear applies only the linear part of the CTM.  This is used to
// measure user-space distances in device pixels.
func (r *Rasteriser) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic emits the end points of line segments approximating the
// quadratic Bézier curve p0, p1, p2.  p0 itself is not emitted.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2, lineTo func(vec.Vec2)) {
	dev := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		lineTo(p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t)))
	}
}

// flattenCubic emits the end points of line segments approximating the
// cubic Bézier curve p0, p1, p2, p3.  The number of segments is chosen using
// Wang's formula.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, lineTo func(vec.Vec2)) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3)).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		n = max(1, int(math.Ceil(math.Sqrt(3*m/(4*r.Flatness)))))
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		lineTo(p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t)))
	}
}

// beginEdges starts a new edge list.
func (r *Rasteriser) beginEdges() {
	r.edges = r.edges[:0]
	r.noEdges = true
}

// addEdge transforms a user-space segment to device space and records it.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	a := r.transform(p0)
	b := r.transform(p1)

	dy := b.Y - a.Y
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: a.X, y0: a.Y,
		x1: b.X, y1: b.Y,
		dxdy: (b.X - a.X) / dy,
	})

	if r.noEdges {
		r.devXMin, r.devXMax = min(a.X, b.X), max(a.X, b.X)
		r.devYMin, r.devYMax = min(a.Y, b.Y), max(a.Y, b.Y)
		r.noEdges = false
		return
	}
	r.devXMin = min(r.devXMin, a.X, b.X)
	r.devXMax = max(r.devXMax, a.X, b.X)
	r.devYMin = min(r.devYMin, a.Y, b.Y)
	r.devYMax = max(r.devYMax, a.Y, b.Y)
}

// sweep converts the current edge list into coverage, one scanline at a
// time, and passes the non-zero part of each row to emit.
func (r *Rasteriser) sweep(emit func(y, xMin int, coverage []float32)) {
	if r.noEdges || len(r.edges) == 0 {
		return
	}

	xMin := max(int(math.Floor(r.devXMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.devXMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.devYMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.devYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top := float64(y)
		for next < len(r.edges) && min(r.edges[next].y0, r.edges[next].y1) < top+1 {
			r.active = append(r.active, next)
			next++
		}
		r.active = slices.DeleteFunc(r.active, func(i int) bool {
			e := &r.edges[i]
			return max(e.y0, e.y1) <= top
		})
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, i := range r.active {
			accumulate(&r.edges[i], y, r.cover, r.area, xMin)
		}
		integrateNonZero(r.cover, r.area)

		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// Coverage accumulation:
//
// For each pixel of a scanline two values are collected.  cover is the
// signed vertical extent of all edge pieces inside the pixel column, and
// area is the same extent weighted by the horizontal fraction of the pixel
// lying to the right of the edge.  Summing cover from the left and adding
// the area of the current pixel gives the signed area of the path inside
// that pixel.

// accumulate adds the contribution of e within scanline y.  The buffers
// start at device column x0.  Edge pieces left of x0 are folded into the
// first pixel, pieces right of the buffer are dropped.
func accumulate(e *edge, y int, cover, area []float32, x0 int) {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}
	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	deposit := func(col int, dy, xMid float64) {
		c := sign * float32(dy)
		switch {
		case col < x0:
			cover[0] += c
			area[0] += c
		case col < x0+len(cover):
			i := col - x0
			cover[i] += c
			area[i] += c * float32(1-(xMid-float64(col)))
		}
	}

	xa := e.x0 + e.dxdy*(yTop-e.y0)
	xb := e.x0 + e.dxdy*(yBot-e.y0)
	if xa > xb {
		xa, xb = xb, xa
	}
	left := int(math.Floor(xa))
	right := int(math.Floor(xb))
	if left == right {
		deposit(left, yBot-yTop, (xa+xb)/2)
		return
	}

	// The edge crosses column boundaries.  Since it is straight, the
	// vertical extent in each column is proportional to the horizontal one.
	slope := math.Abs(e.dxdy)
	for col := left; col <= right; col++ {
		lo := max(xa, float64(col))
		hi := min(xb, float64(col+1))
		if hi <= lo {
			continue
		}
		deposit(col, (hi-lo)/slope, (lo+hi)/2)
	}
}

// integrateNonZero turns accumulated cover and area into coverage, using the
// nonzero winding rule.  The result is stored in cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// trimZeros returns the part of coverage between the first and the last
// non-zero value, together with its offset.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage)
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// Default values for rasteriser parameters.
const (
	// defaultFlatness is the curve flattening tolerance in device pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit matches PDF and PostScript.
	defaultMiterLimit = 10.0
)

// Numerical tolerances.
const (
	// horizontalEdgeThreshold is the minimal vertical extent for an edge
	// to contribute coverage.
	horizontalEdgeThreshold = 1e-10

	// mergeDistance is the device-space distance below which consecutive
	// stroke vertices are merged.
	mergeDistance = 1.0 / 16

	// collinearityThreshold is the cross product below which two stroke
	// segments are treated as collinear, so that no join is needed.
	collinearityThreshold = 1e-6
)
