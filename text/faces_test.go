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

package text

import (
	"testing"

	"seehuhn.de/go/spiral/plot"
)

func TestMetrics(t *testing.T) {
	fs, err := Open()
	if err != nil {
		t.Fatal(err)
	}
	defer fs.Close()

	for _, f := range []plot.Font{plot.Regular, plot.Bold} {
		asc := fs.Ascent(f)
		if asc <= 0 || float64(asc) > f.Size()+1 {
			t.Errorf("font %d: ascent %d out of range", f, asc)
		}
		if lh := fs.LineHeight(f); lh < asc {
			t.Errorf("font %d: line height %d below ascent %d", f, lh, asc)
		}
		if w := fs.Width(f, ""); w != 0 {
			t.Errorf("font %d: empty string has width %d", f, w)
		}
	}

	short := fs.Width(plot.Regular, "1")
	long := fs.Width(plot.Regular, "-10")
	if short <= 0 || long <= short {
		t.Errorf("widths %d and %d are not increasing", short, long)
	}
	if fs.Width(plot.Bold, "x") < fs.Width(plot.Regular, "x") {
		t.Error("bold 14px glyph narrower than regular 12px glyph")
	}
	if w := fs.Width(plot.Regular, plot.LegendLabel); w < 60 || w > 120 {
		t.Errorf("legend label width %d is implausible", w)
	}
}
