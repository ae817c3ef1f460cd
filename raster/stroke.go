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
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/spiral/outline"
)

// Stroke renders p as a stroked outline, using Width, Cap, Join and
// MiterLimit.  The emit callback receives coverage row by row; its slice
// argument is only valid during the call.
//
// The outline is built as a union of pieces: one quadrilateral per segment,
// plus join and cap shapes.  All pieces are wound in the same direction, so
// that filling them with the nonzero rule paints every covered pixel once.
func (r *Rasteriser) Stroke(p *outline.Path, emit func(y, xMin int, coverage []float32)) {
	r.pieces = r.pieces[:0]
	r.pieceOffsets = r.pieceOffsets[:0]
	r.verts = r.verts[:0]

	d := r.Width / 2
	drawn := false // whether the current subpath has a drawing command
	flush := func(closed bool) {
		if drawn {
			r.strokeSubpath(r.verts, closed, d)
		}
		r.verts = r.verts[:0]
		drawn = false
	}
	r.walk(p,
		func(pt vec.Vec2) {
			flush(false)
			r.verts = append(r.verts, pt)
		},
		func(pt vec.Vec2) {
			if len(r.verts) == 0 {
				return
			}
			drawn = true
			r.addVertex(pt)
		},
		func() {
			if len(r.verts) == 0 {
				return
			}
			start := r.verts[0]
			flush(true)
			r.verts = append(r.verts, start)
		},
	)
	flush(false)

	r.beginEdges()
	for i, start := range r.pieceOffsets {
		end := len(r.pieces)
		if i+1 < len(r.pieceOffsets) {
			end = r.pieceOffsets[i+1]
		}
		poly := r.pieces[start:end]
		for j := range poly {
			r.addEdge(poly[j], poly[(j+1)%len(poly)])
		}
	}
	r.sweep(emit)
}

// addVertex appends pt to the current subpath, unless it lies within
// mergeDistance device pixels of the previous vertex.
func (r *Rasteriser) addVertex(pt vec.Vec2) {
	last := r.verts[len(r.verts)-1]
	if r.transformLinear(pt.Sub(last)).Length() < mergeDistance {
		return
	}
	r.verts = append(r.verts, pt)
}

// strokeSubpath adds the stroke pieces for one flattened subpath.
// d is half the stroke width.
func (r *Rasteriser) strokeSubpath(verts []vec.Vec2, closed bool, d float64) {
	n := len(verts)
	if closed && n > 2 && r.transformLinear(verts[n-1].Sub(verts[0])).Length() < mergeDistance {
		n--
		verts = verts[:n]
	}

	if n == 1 {
		// A zero-length subpath has no direction.  Only round caps
		// produce a mark.
		if r.Cap == graphics.LineCapRound {
			r.addDisc(verts[0], d)
		}
		return
	}
	if n == 2 {
		closed = false
	}

	segs := n - 1
	if closed {
		segs = n
	}
	for i := range segs {
		r.addSegment(verts[i], verts[(i+1)%n], d)
	}

	if closed {
		for i := range n {
			r.addJoin(verts[(i+n-1)%n], verts[i], verts[(i+1)%n], d)
		}
		return
	}
	for i := 1; i < n-1; i++ {
		r.addJoin(verts[i-1], verts[i], verts[i+1], d)
	}
	r.addCap(verts[0], unit(verts[0].Sub(verts[1])), d)
	r.addCap(verts[n-1], unit(verts[n-1].Sub(verts[n-2])), d)
}

// addSegment adds the quadrilateral covering the segment from a to b.
func (r *Rasteriser) addSegment(a, b vec.Vec2, d float64) {
	t := unit(b.Sub(a))
	n := normal(t).Mul(d)
	r.addPolygon(a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
}

// addJoin adds the join shape at vertex p, between the segments prev→p
// and p→next.
func (r *Rasteriser) addJoin(prev, p, next vec.Vec2, d float64) {
	t1 := unit(p.Sub(prev))
	t2 := unit(next.Sub(p))
	cross := t1.X*t2.Y - t1.Y*t2.X
	cos := t1.Dot(t2)
	if math.Abs(cross) < collinearityThreshold && cos > 0 {
		return
	}

	if r.Join == graphics.LineJoinRound {
		r.addDisc(p, d)
		return
	}

	// The outer side of the corner is opposite to the direction of turn.
	side := 1.0
	if cross > 0 {
		side = -1
	}
	n1 := normal(t1).Mul(side * d)
	n2 := normal(t2).Mul(side * d)

	if r.Join == graphics.LineJoinMiter {
		cosHalf := math.Sqrt((1 + cos) / 2)
		if cosHalf > 0 && 1/cosHalf <= r.MiterLimit {
			bisector := unit(n1.Add(n2))
			tip := p.Add(bisector.Mul(d / cosHalf))
			r.addPolygon(p, p.Add(n1), tip, p.Add(n2))
			return
		}
	}
	r.addPolygon(p, p.Add(n1), p.Add(n2))
}

// addCap adds the cap at the end point p of an open subpath.  dir is the
// unit vector pointing away from the subpath.
func (r *Rasteriser) addCap(p, dir vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addDisc(p, d)
	case graphics.LineCapSquare:
		n := normal(dir).Mul(d)
		ext := dir.Mul(d)
		r.addPolygon(p.Add(n), p.Add(n).Add(ext), p.Sub(n).Add(ext), p.Sub(n))
	}
}

// addDisc adds a polygon approximating the circle of radius d around c.
// The number of vertices is chosen so that the deviation in device space
// stays below the flatness tolerance.
func (r *Rasteriser) addDisc(c vec.Vec2, d float64) {
	devRadius := max(
		r.transformLinear(vec.Vec2{X: d}).Length(),
		r.transformLinear(vec.Vec2{Y: d}).Length(),
	)
	k := 8
	if devRadius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		k = max(k, int(math.Ceil(2*math.Pi/step)))
	}

	start := len(r.pieces)
	for i := range k {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(k))
		r.pieces = append(r.pieces, c.Add(vec.Vec2{X: cos * d, Y: sin * d}))
	}
	r.closePiece(start)
}

// addPolygon adds a closed polygon to the stroke pieces.
func (r *Rasteriser) addPolygon(pts ...vec.Vec2) {
	start := len(r.pieces)
	r.pieces = append(r.pieces, pts...)
	r.closePiece(start)
}

// closePiece finishes the polygon starting at r.pieces[start].  The vertex
// order is reversed if necessary, so that every piece has positive signed
// area in user space.  Pieces without area are dropped.
func (r *Rasteriser) closePiece(start int) {
	poly := r.pieces[start:]
	var area float64
	for i, a := range poly {
		b := poly[(i+1)%len(poly)]
		area += a.X*b.Y - a.Y*b.X
	}
	switch {
	case area == 0:
		r.pieces = r.pieces[:start]
		return
	case area < 0:
		slices.Reverse(poly)
	}
	r.pieceOffsets = append(r.pieceOffsets, start)
}

// unit returns v scaled to length 1.
func unit(v vec.Vec2) vec.Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

// normal returns t rotated by 90 degrees counter-clockwise.
func normal(t vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -t.Y, Y: t.X}
}
