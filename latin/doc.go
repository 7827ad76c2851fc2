// SPDX-License-Identifier: MIT

// Package latin builds shuffled Latin squares.
//
// A Latin square of order n is an n×n array of the integers 0..n-1 in which
// every row and every column is a permutation of 0..n-1. Build seeds a
// cyclic square (column i is the row [0..n-1] rotated by i) and then applies
// a number of shuffle rounds. Each round picks rows or columns at random and
// reorders them wholesale, which never alters the content of any single row
// or column, so the Latin property survives.
//
// Guarantees:
//
//   - The post-condition is checked, not assumed: every row and column must
//     sum to n(n-1)/2 and be a permutation of 0..n-1. A violation returns
//     phantomgen.ErrInvariantViolation.
//   - Invalid sizes (n ≤ 0) and negative shuffle counts return
//     phantomgen.ErrInvalidParameter before any work is done.
//   - Randomness comes only from the *rand.Rand passed in. With shuffles == 0
//     the rng may be nil and the result is the cyclic seed square.
//   - A returned Square is immutable; accessors hand out copies.
package latin
