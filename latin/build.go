// SPDX-License-Identifier: MIT
// Package: phantomgen/latin
//
// build.go — Build(n, shuffles, rng).
//
// Contract:
//   • n ≥ 1 and shuffles ≥ 0 (else ErrInvalidParameter).
//   • rng != nil whenever shuffles > 0 (else ErrNeedRandSource).
//   • Seed: cell (r, c) = (r - c) mod n, i.e. column c is [0..n-1] rotated by c.
//   • Each round: d := rng.Intn(2); d == 0 permutes whole rows, d == 1 whole columns.
//   • Post-condition: checkSums then Validate; failure is ErrInvariantViolation.
//
// Complexity:
//   • Time: O(n²) seed + O(shuffles·n²) rounds + O(n²) checks.
//   • Space: O(n²).

package latin

import (
	"math/rand"

	"github.com/katalvlaran/phantomgen"
)

const (
	methodBuild = "Build"
	minOrder    = 1
	minShuffles = 0
)

// Build returns a shuffled Latin square of order n.
func Build(n, shuffles int, rng *rand.Rand) (*Square, error) {
	if n < minOrder {
		return nil, phantomgen.Errorf(methodBuild, phantomgen.ErrInvalidParameter,
			"n=%d (must be ≥ %d)", n, minOrder)
	}
	if shuffles < minShuffles {
		return nil, phantomgen.Errorf(methodBuild, phantomgen.ErrInvalidParameter,
			"shuffles=%d (must be ≥ %d)", shuffles, minShuffles)
	}
	if shuffles > 0 && rng == nil {
		return nil, phantomgen.Errorf(methodBuild, phantomgen.ErrNeedRandSource, "shuffles=%d", shuffles)
	}

	sq := seed(n)
	for round := 0; round < shuffles; round++ {
		perm := permRange(n, rng)
		if rng.Intn(numDims) == dimRows {
			sq = sq.permuteRows(perm)
		} else {
			sq = sq.permuteCols(perm)
		}
	}

	if err := checkSums(methodBuild, sq); err != nil {
		return nil, err
	}
	if err := Validate(sq); err != nil {
		return nil, err
	}

	return sq, nil
}

// seed builds the cyclic square whose column c is [0..n-1] rotated by c.
func seed(n int) *Square {
	cells := make([]int, n*n)
	var r, c int
	for r = 0; r < n; r++ {
		for c = 0; c < n; c++ {
			cells[r*n+c] = ((r-c)%n + n) % n
		}
	}

	return &Square{n: n, cells: cells}
}

// permuteRows returns a new square whose row i is s's row perm[i].
func (s *Square) permuteRows(perm []int) *Square {
	cells := make([]int, len(s.cells))
	for i, src := range perm {
		copy(cells[i*s.n:(i+1)*s.n], s.cells[src*s.n:(src+1)*s.n])
	}

	return &Square{n: s.n, cells: cells}
}

// permuteCols returns a new square whose column j is s's column perm[j].
func (s *Square) permuteCols(perm []int) *Square {
	cells := make([]int, len(s.cells))
	var i int
	for j, src := range perm {
		for i = 0; i < s.n; i++ {
			cells[i*s.n+j] = s.cells[i*s.n+src]
		}
	}

	return &Square{n: s.n, cells: cells}
}
