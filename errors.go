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

package spiral

import (
	"seehuhn.de/go/spiral/encode"
	"seehuhn.de/go/spiral/plot"
)

// ErrDegenerateGeometry is returned, possibly wrapped, when the padding
// leaves no drawable pixels.
var ErrDegenerateGeometry = plot.ErrDegenerateGeometry

// EncodingError reports a failure to serialise a finished plot.
type EncodingError = encode.Error
