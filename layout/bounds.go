// SPDX-License-Identifier: MIT

package layout

import (
	"math"

	"seehuhn.de/go/geom/rect"
)

// Bounds returns the smallest axis-aligned rectangle containing every disc.
// The zero rect.Rect is returned for no discs.
func Bounds(discs ...Disc) rect.Rect {
	if len(discs) == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for _, d := range discs {
		b.LLx = math.Min(b.LLx, d.Center.X-d.Radius)
		b.LLy = math.Min(b.LLy, d.Center.Y-d.Radius)
		b.URx = math.Max(b.URx, d.Center.X+d.Radius)
		b.URy = math.Max(b.URy, d.Center.Y+d.Radius)
	}

	return b
}
