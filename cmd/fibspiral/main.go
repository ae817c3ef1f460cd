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

// Command fibspiral writes a plot of the Fibonacci spiral to a file.
//
// Usage:
//
//	fibspiral [-n terms] [-s size] [--model log|arcs] [--format png|svg|fragment|datauri|embed|pdf] [-o file]
//
// With the default settings, a 12 term spiral is written to fib_test.png as
// an 800x600 pixel image.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "fibspiral:", err)
		os.Exit(1)
	}
}
