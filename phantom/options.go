// SPDX-License-Identifier: MIT
// Package: phantomgen/phantom
//
// options.go — functional options for Assemble and the kind constructors.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Assembly itself never panics.
//   • Randomness is explicit: WithRand or WithSeed. Nothing falls back to
//     global or time-based state.

package phantom

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/phantomgen/csg"
)

// Option customizes phantom assembly.
type Option func(*config)

// WithRand provides an explicit RNG for stochastic kinds. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("phantom: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithFillFraction sets the share of the unit square used by Latin-square
// layouts. Panics unless 0 < f ≤ 1.
func WithFillFraction(f float64) Option {
	if !(f > 0 && f <= 1) {
		panic("phantom: WithFillFraction(f∉(0,1])")
	}
	return func(c *config) {
		c.fill = f
	}
}

// WithSegments sets the facet count of spheres and circles; 0 leaves the
// choice to the mesher. Panics on negative values.
func WithSegments(n int) Option {
	if n < 0 {
		panic("phantom: WithSegments(n<0)")
	}
	return func(c *config) {
		c.segments = n
	}
}

// WithExtrudeHeight sets the height of circle and sector extrusions.
// Panics unless h is positive and finite.
func WithExtrudeHeight(h float64) Option {
	if !(h > 0) || math.IsInf(h, 1) {
		panic("phantom: WithExtrudeHeight(h<=0)")
	}
	return func(c *config) {
		c.extrudeHeight = h
	}
}

// WithCenterOffset sets the translation applied to Latin-square layouts
// after folding. Panics on non-finite components.
func WithCenterOffset(v csg.Vec3) Option {
	for _, x := range []float64{v.X, v.Y, v.Z} {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			panic("phantom: WithCenterOffset(non-finite)")
		}
	}
	return func(c *config) {
		c.centerOffset = v
	}
}
