// SPDX-License-Identifier: MIT
// Package: phantomgen/latin
//
// square.go — the immutable Square type and its validators.

package latin

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/phantomgen"
)

const (
	methodNewSquare = "NewSquare"
	methodValidate  = "Validate"
	methodAt        = "Square.At"
)

// Square is an immutable n×n Latin square over the symbols 0..n-1,
// stored row-major.
type Square struct {
	n     int
	cells []int
}

// NewSquare copies rows into a Square and validates it.
//
// Errors:
//   - ErrInvalidParameter: empty or non-square input.
//   - ErrInvariantViolation: some row or column is not a permutation of 0..n-1.
func NewSquare(rows [][]int) (*Square, error) {
	n := len(rows)
	if n == 0 {
		return nil, phantomgen.Errorf(methodNewSquare, phantomgen.ErrInvalidParameter, "no rows")
	}
	cells := make([]int, 0, n*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, phantomgen.Errorf(methodNewSquare, phantomgen.ErrInvalidParameter,
				"row %d has %d entries, want %d", i, len(row), n)
		}
		cells = append(cells, row...)
	}
	sq := &Square{n: n, cells: cells}
	if err := Validate(sq); err != nil {
		return nil, err
	}

	return sq, nil
}

// N returns the order of the square.
func (s *Square) N() int { return s.n }

// At returns the symbol at (row, col).
func (s *Square) At(row, col int) (int, error) {
	if row < 0 || row >= s.n || col < 0 || col >= s.n {
		return 0, phantomgen.Errorf(methodAt, phantomgen.ErrInvalidParameter,
			"(%d,%d) outside %dx%d", row, col, s.n, s.n)
	}

	return s.cells[row*s.n+col], nil
}

// Values returns a row-major copy of every symbol.
func (s *Square) Values() []int {
	out := make([]int, len(s.cells))
	copy(out, s.cells)

	return out
}

// Row returns a copy of row i, or nil when i is out of range.
func (s *Square) Row(i int) []int {
	if i < 0 || i >= s.n {
		return nil
	}
	out := make([]int, s.n)
	copy(out, s.cells[i*s.n:(i+1)*s.n])

	return out
}

// Col returns a copy of column j, or nil when j is out of range.
func (s *Square) Col(j int) []int {
	if j < 0 || j >= s.n {
		return nil
	}
	out := make([]int, s.n)
	for i := 0; i < s.n; i++ {
		out[i] = s.cells[i*s.n+j]
	}

	return out
}

// Rows returns the square as a fresh [][]int.
func (s *Square) Rows() [][]int {
	out := make([][]int, s.n)
	for i := range out {
		out[i] = s.Row(i)
	}

	return out
}

// String renders one bracketed row per line.
func (s *Square) String() string {
	var b strings.Builder
	for i := 0; i < s.n; i++ {
		b.WriteString("[")
		for j := 0; j < s.n; j++ {
			if j > 0 {
				b.WriteString(" ")
			}
			fmt.Fprintf(&b, "%d", s.cells[i*s.n+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}

// MagicSum is the row/column sum of any Latin square of order n: n(n-1)/2.
func MagicSum(n int) int { return n * (n - 1) / 2 }

// checkSums enforces the sum post-condition: every row and column sums to
// MagicSum(n).
// Complexity: O(n²).
func checkSums(method string, s *Square) error {
	want := MagicSum(s.n)
	var i, j, rowSum, colSum int
	for i = 0; i < s.n; i++ {
		rowSum, colSum = 0, 0
		for j = 0; j < s.n; j++ {
			rowSum += s.cells[i*s.n+j]
			colSum += s.cells[j*s.n+i]
		}
		if colSum != want {
			return phantomgen.Errorf(method, phantomgen.ErrInvariantViolation,
				"column %d sums to %d, want %d", i, colSum, want)
		}
		if rowSum != want {
			return phantomgen.Errorf(method, phantomgen.ErrInvariantViolation,
				"row %d sums to %d, want %d", i, rowSum, want)
		}
	}

	return nil
}

// Validate reports whether every row and column of s is a permutation of
// 0..n-1. Sums are checked first; the permutation check then catches
// squares such as [[0,1,2],[1,1,1],[2,1,0]] whose sums happen to match.
//
// Complexity: O(n²) time, O(n) space.
func Validate(s *Square) error {
	if s == nil || s.n <= 0 || len(s.cells) != s.n*s.n {
		return phantomgen.Errorf(methodValidate, phantomgen.ErrInvalidParameter, "nil or malformed square")
	}
	if err := checkSums(methodValidate, s); err != nil {
		return err
	}

	seenRow := make([]int, s.n)
	seenCol := make([]int, s.n)
	var i, j, v, w int
	for i = 0; i < s.n; i++ {
		mark := i + 1 // per-line stamp avoids clearing the slices
		for j = 0; j < s.n; j++ {
			v = s.cells[i*s.n+j]
			w = s.cells[j*s.n+i]
			if v < 0 || v >= s.n || seenRow[v] == mark {
				return phantomgen.Errorf(methodValidate, phantomgen.ErrInvariantViolation,
					"row %d is not a permutation of 0..%d", i, s.n-1)
			}
			if w < 0 || w >= s.n || seenCol[w] == mark {
				return phantomgen.Errorf(methodValidate, phantomgen.ErrInvariantViolation,
					"column %d is not a permutation of 0..%d", i, s.n-1)
			}
			seenRow[v] = mark
			seenCol[w] = mark
		}
	}

	return nil
}
