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

package curve

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Model is a family of Fibonacci spiral curves.
type Model interface {
	// Points returns the samples of the curve for the given number of
	// terms, as an ordered polyline in data space.
	Points(terms int) []vec.Vec2
}

// LogSpiral is the golden logarithmic spiral r(θ) = exp(b·θ), with
// b = 2·ln(φ)/π.  The curve makes one quarter turn per Fibonacci term.
type LogSpiral struct {
	// FitRadius is the radius, in data units, of the largest circle around
	// the origin which fits into the plot area.
	FitRadius float64
}

// growth is the rate b of the golden spiral.  The radius grows by the
// golden ratio for every quarter turn.
var growth = 2 * math.Log(math.Phi) / math.Pi

const (
	// spiralStep is the angular sampling step, in radians.
	spiralStep = 0.01

	// spiralFill is the fraction of the fit radius used by the outermost
	// point, before the small-spiral boost is applied.
	spiralFill = 0.95

	// Spirals with few terms are enlarged by 3% per term, up to
	// maxBoost.
	boostPerTerm = 0.03
	maxBoost     = 1.15
)

// Points samples the spiral from θ = 0 to θ = terms·π/2 in steps of 0.01
// radians.  The terms are clamped to [1, MaxTerms].
//
// The spiral is rotated by half a turn, so that it starts on the negative x
// axis and opens towards the upper right after the first quarter turns.
func (s LogSpiral) Points(terms int) []vec.Vec2 {
	terms = clampTerms(terms)
	thetaMax := float64(terms) * math.Pi / 2
	rMax := math.Exp(growth * thetaMax)

	boost := min(1+min(0.45, float64(terms-1)*boostPerTerm), maxBoost)
	scale := spiralFill * s.FitRadius / rMax * boost

	n := int(thetaMax/spiralStep) + 1
	pts := make([]vec.Vec2, 0, n)
	for i := 0; ; i++ {
		theta := float64(i) * spiralStep
		if theta > thetaMax {
			break
		}
		r := math.Exp(growth*theta) * scale
		sin, cos := math.Sincos(theta + math.Pi)
		pts = append(pts, vec.Vec2{X: r * cos, Y: r * sin})
	}
	return pts
}

// Arcs is the chain of Fibonacci quarter circles from [QuadrantArcs],
// fitted into the plot area.
type Arcs struct {
	// FitRadius is the radius, in data units, of the largest circle around
	// the origin which fits into the plot area.
	FitRadius float64
}

// Points returns the joined arcs for the given number of terms.  The
// bounding box of the curve is centred on the origin and scaled uniformly,
// so that its larger half-extent is 95% of FitRadius.
func (a Arcs) Points(terms int) []vec.Vec2 {
	pts := Polyline(QuadrantArcs(terms))

	lo, hi := pts[0], pts[0]
	for _, p := range pts[1:] {
		lo = vec.Vec2{X: min(lo.X, p.X), Y: min(lo.Y, p.Y)}
		hi = vec.Vec2{X: max(hi.X, p.X), Y: max(hi.Y, p.Y)}
	}
	mid := lo.Add(hi).Mul(0.5)
	half := max(hi.X-lo.X, hi.Y-lo.Y) / 2
	scale := spiralFill * a.FitRadius / half

	for i, p := range pts {
		pts[i] = p.Sub(mid).Mul(scale)
	}
	return pts
}
