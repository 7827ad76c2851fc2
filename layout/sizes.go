// SPDX-License-Identifier: MIT
// Package: phantomgen/layout
//
// sizes.go — MapSizes(square, ratio, opts...).
//
// Contract:
//   • square != nil; ratio ∈ (0,1] (else ErrInvalidParameter).
//   • One radius per symbol is computed once; every cell holding symbol v
//     stores that exact float64, so grouping by radius is grouping by symbol.
//   • Radii lie in (0, f/(2n)]; a ratio so small that ratio^(n-1) underflows
//     to zero is rejected.
//   • X[i][j] = p[j] + (1-f)/2 and Y[i][j] = p[i] + (1-f)/2.
//
// Complexity:
//   • Time O(n²), Space O(n²).

package layout

import (
	"math"
	"sort"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"github.com/katalvlaran/phantomgen"
	"github.com/katalvlaran/phantomgen/latin"
	"github.com/katalvlaran/phantomgen/matrix"
)

const methodMapSizes = "MapSizes"

// Disc is a placed circle: a center in the unit square and a radius.
type Disc struct {
	Center vec.Vec2
	Radius float64
}

// GridPoint is one cell of a SizeGrid.
type GridPoint struct {
	Row, Col int
	Value    int // Latin symbol in this cell
	Disc
}

// SizeGrid is the result of MapSizes. It is read-only after construction.
type SizeGrid struct {
	N         int
	SizeRatio float64
	Fill      float64

	Square *latin.Square
	Radii  *matrix.Dense // Radii[i][j] = radius of symbol Square[i][j]
	X, Y   *matrix.Dense // cell centers

	byValue []float64 // byValue[v] = radius of symbol v
}

// MapSizes maps square onto a centered grid of discs whose radii decay
// geometrically with the Latin symbol.
func MapSizes(square *latin.Square, ratio float64, opts ...Option) (*SizeGrid, error) {
	if square == nil {
		return nil, phantomgen.Errorf(methodMapSizes, phantomgen.ErrInvalidParameter, "nil square")
	}
	if !(ratio > 0 && ratio <= 1) {
		return nil, phantomgen.Errorf(methodMapSizes, phantomgen.ErrInvalidParameter,
			"size ratio %g outside (0,1]", ratio)
	}
	cfg := newConfig(opts...)
	n := square.N()
	nf := float64(n)

	// 1) Radius per symbol, computed once.
	base := (1 - cfg.epsilon) / (2 * nf) * cfg.fill
	byValue := make([]float64, n)
	for v := range byValue {
		byValue[v] = base * math.Pow(ratio, float64(v))
		if byValue[v] <= 0 {
			return nil, phantomgen.Errorf(methodMapSizes, phantomgen.ErrInvalidParameter,
				"size ratio %g underflows at symbol %d", ratio, v)
		}
		// Adjacent symbols must stay distinct floats when ratio < 1.
		if ratio < 1 && v > 0 && byValue[v] >= byValue[v-1] {
			return nil, phantomgen.Errorf(methodMapSizes, phantomgen.ErrInvalidParameter,
				"size ratio %g too close to 1 for %d distinct radii", ratio, n)
		}
	}

	// 2) Period sequence and its centering shift.
	period := make([]float64, n)
	for k := range period {
		period[k] = (float64(k)/nf + 1/(2*nf)) * cfg.fill
	}
	shift := (1 - cfg.fill) / 2

	radii, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	xs, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	ys, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	// 3) Fill the three tables in row-major order.
	values := square.Values()
	if err = radii.Apply(func(i, j int, _ float64) float64 { return byValue[values[i*n+j]] }); err != nil {
		return nil, err
	}
	if err = xs.Apply(func(_, j int, _ float64) float64 { return period[j] + shift }); err != nil {
		return nil, err
	}
	if err = ys.Apply(func(i, _ int, _ float64) float64 { return period[i] + shift }); err != nil {
		return nil, err
	}

	// 4) The tables must be n×n and aligned cell for cell.
	if err = matrix.ValidateSquare(radii); err != nil {
		return nil, err
	}
	if err = matrix.ValidateSameShape(radii, xs); err != nil {
		return nil, err
	}
	if err = matrix.ValidateSameShape(radii, ys); err != nil {
		return nil, err
	}

	return &SizeGrid{
		N:         n,
		SizeRatio: ratio,
		Fill:      cfg.fill,
		Square:    square,
		Radii:     radii,
		X:         xs,
		Y:         ys,
		byValue:   byValue,
	}, nil
}

// Points returns every cell in row-major order.
func (g *SizeGrid) Points() []GridPoint {
	values := g.Square.Values()
	out := make([]GridPoint, 0, g.N*g.N)
	g.Radii.Do(func(i, j int, r float64) bool {
		out = append(out, GridPoint{
			Row:   i,
			Col:   j,
			Value: values[i*g.N+j],
			Disc:  Disc{Radius: r},
		})
		return true
	})
	g.X.Do(func(i, j int, x float64) bool {
		out[i*g.N+j].Center.X = x
		return true
	})
	g.Y.Do(func(i, j int, y float64) bool {
		out[i*g.N+j].Center.Y = y
		return true
	})

	return out
}

// RadiusFor returns the radius assigned to Latin symbol v.
func (g *SizeGrid) RadiusFor(v int) (float64, error) {
	if v < 0 || v >= len(g.byValue) {
		return 0, phantomgen.Errorf("SizeGrid.RadiusFor", phantomgen.ErrInvalidParameter,
			"symbol %d outside 0..%d", v, len(g.byValue)-1)
	}

	return g.byValue[v], nil
}

// DistinctRadii returns the distinct radius values in descending order.
// There are n of them when ratio < 1 and one when ratio == 1.
func (g *SizeGrid) DistinctRadii() []float64 {
	seen := make(map[float64]struct{}, len(g.byValue))
	out := make([]float64, 0, len(g.byValue))
	for _, r := range g.byValue {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(out)))

	return out
}

// Discs returns the placements without grid bookkeeping.
func (g *SizeGrid) Discs() []Disc {
	pts := g.Points()
	out := make([]Disc, len(pts))
	for i, p := range pts {
		out[i] = p.Disc
	}

	return out
}

// Bounds returns the extent of every disc in the grid.
func (g *SizeGrid) Bounds() rect.Rect {
	return Bounds(g.Discs()...)
}
