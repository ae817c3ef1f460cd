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

package spiral_test

import (
	"fmt"
	"strings"

	"seehuhn.de/go/spiral"
)

func ExampleRenderSVGFragment() {
	frag, err := spiral.RenderSVGFragment(12)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(strings.HasPrefix(frag, "<svg"), strings.HasSuffix(frag, "</svg>"))
	// Output:
	// true true
}

func ExampleOptions_Clamped() {
	opt := &spiral.Options{Terms: 5000, Size: 640}
	c := opt.Clamped()
	fmt.Println(c.Terms, c.Size, c.Height)
	// Output:
	// 1000 640 480
}
