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

package plot

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

const (
	// DefaultPadding is the margin, in pixels, around the drawable area.
	DefaultPadding = 12

	// HalfHeight is half the height of the data window.  The width of the
	// window follows from the aspect ratio of the drawable area.
	HalfHeight = 13.0
)

// Viewport maps data space, with the y axis pointing up, to pixel space,
// with the y axis pointing down.  The data window is centred on the origin
// and exactly fills the drawable area.
type Viewport struct {
	XMin, XMax float64 // horizontal extent of the data window
	YMin, YMax float64 // vertical extent of the data window

	Width, Height int // canvas size in pixels
	Padding       int // margin around the drawable area, in pixels

	XScale, YScale float64 // pixels per data unit
}

// NewViewport returns the viewport for a canvas of the given size.
// If no pixels remain after subtracting the padding on both sides,
// an error wrapping [ErrDegenerateGeometry] is returned.
func NewViewport(width, height, padding int) (*Viewport, error) {
	if padding < 0 || 2*padding >= width || 2*padding >= height {
		return nil, fmt.Errorf("%w: %dx%d canvas with padding %d",
			ErrDegenerateGeometry, width, height, padding)
	}

	dw := float64(width - 2*padding)
	dh := float64(height - 2*padding)
	halfWidth := HalfHeight * dw / dh

	return &Viewport{
		XMin:    -halfWidth,
		XMax:    halfWidth,
		YMin:    -HalfHeight,
		YMax:    HalfHeight,
		Width:   width,
		Height:  height,
		Padding: padding,
		XScale:  dw / (2 * halfWidth),
		YScale:  dh / (2 * HalfHeight),
	}, nil
}

// ToPixel maps a data point to pixel coordinates.
func (v *Viewport) ToPixel(p vec.Vec2) vec.Vec2 {
	pad := float64(v.Padding)
	return vec.Vec2{
		X: pad + (p.X-v.XMin)*v.XScale,
		Y: float64(v.Height) - pad - (p.Y-v.YMin)*v.YScale,
	}
}

// FromPixel is the inverse of [Viewport.ToPixel].
func (v *Viewport) FromPixel(q vec.Vec2) vec.Vec2 {
	pad := float64(v.Padding)
	return vec.Vec2{
		X: v.XMin + (q.X-pad)/v.XScale,
		Y: v.YMin + (float64(v.Height)-pad-q.Y)/v.YScale,
	}
}

// Matrix returns the transformation from data space to pixel space, in the
// form used by the rasteriser: (x, y) maps to (a·x + c·y + e, b·x + d·y + f).
func (v *Viewport) Matrix() matrix.Matrix {
	pad := float64(v.Padding)
	h := float64(v.Height)
	return matrix.Matrix{
		v.XScale, 0,
		0, -v.YScale,
		pad - v.XMin*v.XScale, h - pad + v.YMin*v.YScale,
	}
}

// Drawable returns the drawable area in pixel coordinates.
func (v *Viewport) Drawable() rect.Rect {
	pad := float64(v.Padding)
	return rect.Rect{
		LLx: pad,
		LLy: pad,
		URx: float64(v.Width) - pad,
		URy: float64(v.Height) - pad,
	}
}

// FitRadius returns the radius, in data units, of the largest circle around
// the origin which fits into the drawable area.
func (v *Viewport) FitRadius() float64 {
	dw := float64(v.Width - 2*v.Padding)
	dh := float64(v.Height - 2*v.Padding)
	return min(dw/v.XScale, dh/v.YScale) / 2
}

// Contains reports whether the data point p lies inside the data window.
func (v *Viewport) Contains(p vec.Vec2) bool {
	return p.X >= v.XMin && p.X <= v.XMax && p.Y >= v.YMin && p.Y <= v.YMax
}
