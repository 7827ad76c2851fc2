// SPDX-License-Identifier: MIT
// Package: phantomgen/phantom
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • config is the single source of truth for assembly knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng           = nil          (stochastic kinds fail with ErrNeedRandSource)
//   • fill          = 0.7          (layout.DefaultFillFraction)
//   • segments      = 20           (facets per sphere/circle)
//   • extrudeHeight = 100          (circle and sector extrusions)
//   • centerOffset  = (-0.5,-0.5,0) (moves unit-square layouts onto the origin)

package phantom

import (
	"math/rand"

	"github.com/katalvlaran/phantomgen/csg"
	"github.com/katalvlaran/phantomgen/layout"
)

// Named defaults.
const (
	DefaultSegments      = 20
	DefaultExtrudeHeight = 100.0
)

// DefaultCenterOffset recenters layouts built in [0,1]² onto the origin.
var DefaultCenterOffset = csg.Vec3{X: -0.5, Y: -0.5, Z: 0}

// config aggregates all knobs used by the kind constructors.
// It is passed by VALUE (immutable to callers).
type config struct {
	rng           *rand.Rand
	fill          float64
	segments      int
	extrudeHeight float64
	centerOffset  csg.Vec3
}

// newConfig constructs a config with deterministic defaults and applies all
// options in order.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		rng:           nil,
		fill:          layout.DefaultFillFraction,
		segments:      DefaultSegments,
		extrudeHeight: DefaultExtrudeHeight,
		centerOffset:  DefaultCenterOffset,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// layoutOptions forwards the layout-related knobs to layout.MapSizes.
func (c config) layoutOptions() []layout.Option {
	return []layout.Option{layout.WithFillFraction(c.fill)}
}
