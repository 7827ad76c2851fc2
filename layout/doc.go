// SPDX-License-Identifier: MIT

// Package layout turns abstract size assignments into placements in the
// unit square.
//
// Two placement schemes are provided:
//
//   - MapSizes maps a latin.Square of order n onto a centered n×n grid of
//     discs. Symbol v becomes radius k·ratio^v with k = (1-ε)·f/(2n), where f
//     is the fill fraction (0.7 by default) and ε (1e-10) keeps neighbouring
//     discs from touching exactly when ratio = 1. Cell centers are
//     p_k = (k/n + 1/(2n))·f shifted by (1-f)/2 on both axes.
//
//   - Jittered places count equal discs on a side×side grid, side =
//     ⌈√count⌉, spacing s = 1/side and radius r = s/4. Each disc is moved
//     off its cell center by an independent uniform draw in [-r, r] per
//     axis. Cells are consumed in row-major order and the ones past count
//     stay empty.
//
// Placements carry both the exact radius value and the center as a
// seehuhn.de/go/geom/vec.Vec2. Bounds reports the extent of a placement as a
// seehuhn.de/go/geom/rect.Rect.
package layout
