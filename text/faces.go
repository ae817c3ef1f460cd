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

// Package text provides the fonts used to label plots.
//
// The Go fonts are embedded in the binary, so that label placement and
// glyph rendering do not depend on the fonts installed on the host.
package text

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"seehuhn.de/go/spiral/plot"
)

// Faces holds one font face per [plot.Font].  It implements
// [plot.Measurer].
//
// A font.Face caches glyphs and is not safe for concurrent use, so every
// render call opens its own Faces.
type Faces struct {
	regular font.Face
	bold    font.Face
}

var _ plot.Measurer = (*Faces)(nil)

// Open parses the embedded Go fonts.  The caller must call Close when the
// faces are no longer needed.
func Open() (*Faces, error) {
	regular, err := newFace(goregular.TTF, plot.Regular.Size())
	if err != nil {
		return nil, fmt.Errorf("regular font: %w", err)
	}
	bold, err := newFace(gobold.TTF, plot.Bold.Size())
	if err != nil {
		regular.Close()
		return nil, fmt.Errorf("bold font: %w", err)
	}
	return &Faces{regular: regular, bold: bold}, nil
}

func newFace(data []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72, // one point per pixel
		Hinting: font.HintingFull,
	})
}

// Face returns the font face for f.
func (fs *Faces) Face(f plot.Font) font.Face {
	if f == plot.Bold {
		return fs.bold
	}
	return fs.regular
}

// Width implements [plot.Measurer].
func (fs *Faces) Width(f plot.Font, s string) int {
	return font.MeasureString(fs.Face(f), s).Ceil()
}

// Ascent implements [plot.Measurer].
func (fs *Faces) Ascent(f plot.Font) int {
	return fs.Face(f).Metrics().Ascent.Ceil()
}

// LineHeight implements [plot.Measurer].
func (fs *Faces) LineHeight(f plot.Font) int {
	return fs.Face(f).Metrics().Height.Ceil()
}

// Close releases the font faces.
func (fs *Faces) Close() error {
	err1 := fs.regular.Close()
	err2 := fs.bold.Close()
	if err1 != nil {
		return err1
	}
	return err2
}
