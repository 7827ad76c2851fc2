// SPDX-License-Identifier: MIT
// Package: phantomgen/layout
//
// jitter.go — Jittered(count, rng).
//
// Contract:
//   • count ≥ 1 (else ErrInvalidParameter); rng != nil (else ErrNeedRandSource).
//   • side = ⌈√count⌉ computed in integers, spacing s = 1/side, radius r = s/4.
//   • Cell k (row-major) has center ((k mod side + ½)·s, (k div side + ½)·s).
//   • Only cells 0..count-1 are used; the remaining side²-count cells are
//     dropped on purpose, never an error.
//   • Per point, two draws: dx then dy, each 2r·(U[0,1) - ½) ∈ [-r, r).
//
// Determinism:
//   • Exactly 2·count rng draws in point order; same seed ⇒ same layout.

package layout

import (
	"math"
	"math/rand"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"github.com/katalvlaran/phantomgen"
)

const (
	methodJittered = "Jittered"
	minCount       = 1
	radiusPerCell  = 4 // r = s / radiusPerCell, so neighbours sit 4r apart
)

// JitteredPoint is one disc of a JitteredGrid.
type JitteredPoint struct {
	Index    int
	Row, Col int
	Cell     vec.Vec2 // unjittered cell center
	Disc
}

// Offset returns the jitter applied to the cell center.
func (p JitteredPoint) Offset() vec.Vec2 {
	return p.Center.Sub(p.Cell)
}

// JitteredGrid is the result of Jittered.
type JitteredGrid struct {
	Count   int     // requested and placed discs
	Side    int     // grid is Side×Side; Side² ≥ Count
	Spacing float64 // 1/Side
	Radius  float64 // Spacing/4, shared by every disc
	Points  []JitteredPoint
}

// GridSide returns ⌈√count⌉ for count ≥ 1, free of float rounding.
func GridSide(count int) int {
	side := int(math.Ceil(math.Sqrt(float64(count))))
	for side*side < count {
		side++
	}
	for side > 1 && (side-1)*(side-1) >= count {
		side--
	}

	return side
}

// Jittered places count discs of equal radius on a jittered grid.
func Jittered(count int, rng *rand.Rand) (*JitteredGrid, error) {
	if count < minCount {
		return nil, phantomgen.Errorf(methodJittered, phantomgen.ErrInvalidParameter,
			"count=%d (must be ≥ %d)", count, minCount)
	}
	if rng == nil {
		return nil, phantomgen.Errorf(methodJittered, phantomgen.ErrNeedRandSource, "count=%d", count)
	}

	side := GridSide(count)
	spacing := 1 / float64(side)
	radius := spacing / radiusPerCell

	pts := make([]JitteredPoint, count)
	var row, col int
	var cell, jitter vec.Vec2
	for k := range pts {
		row, col = k/side, k%side
		cell = vec.Vec2{
			X: (float64(col) + 0.5) * spacing,
			Y: (float64(row) + 0.5) * spacing,
		}
		jitter = vec.Vec2{
			X: 2 * radius * (rng.Float64() - 0.5),
			Y: 2 * radius * (rng.Float64() - 0.5),
		}
		pts[k] = JitteredPoint{
			Index: k,
			Row:   row,
			Col:   col,
			Cell:  cell,
			Disc:  Disc{Center: cell.Add(jitter), Radius: radius},
		}
	}

	return &JitteredGrid{
		Count:   count,
		Side:    side,
		Spacing: spacing,
		Radius:  radius,
		Points:  pts,
	}, nil
}

// Discs returns the placements without grid bookkeeping.
func (g *JitteredGrid) Discs() []Disc {
	out := make([]Disc, len(g.Points))
	for i, p := range g.Points {
		out[i] = p.Disc
	}

	return out
}

// Bounds returns the extent of every disc in the grid.
func (g *JitteredGrid) Bounds() rect.Rect {
	return Bounds(g.Discs()...)
}
