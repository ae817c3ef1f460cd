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

// Package curve generates the sample points of Fibonacci spirals.
//
// Two curve families are provided.  [LogSpiral] samples the golden
// logarithmic spiral r = exp(b·θ), whose radius grows by the golden ratio
// every quarter turn.  [Arcs] chains quarter circles whose radii are
// successive Fibonacci numbers.  Both implement [Model], so that a plot can
// draw either one without knowing which it is.
//
// All points are in data space, centred on the origin, with the y axis
// pointing up.
package curve

// MaxTerms is the largest number of Fibonacci terms which is generated.
const MaxTerms = 1000

// Fibonacci returns the first n Fibonacci numbers 1, 1, 2, 3, 5, ...
// The value of n is clamped to the range [1, MaxTerms].
//
// The values are exact up to F(78).  Larger terms are rounded to the nearest
// float64, which keeps the sequence increasing up to the last term.
func Fibonacci(n int) []float64 {
	n = clampTerms(n)
	fib := make([]float64, n)
	fib[0] = 1
	if n > 1 {
		fib[1] = 1
	}
	for i := 2; i < n; i++ {
		fib[i] = fib[i-1] + fib[i-2]
	}
	return fib
}

func clampTerms(n int) int {
	return min(max(n, 1), MaxTerms)
}
