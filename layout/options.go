// SPDX-License-Identifier: MIT
// Package: phantomgen/layout
//
// options.go — functional options for MapSizes.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     MapSizes/Jittered themselves never panic.
//   • Later options override earlier ones.

package layout

// Deterministic defaults.
const (
	// DefaultFillFraction is the share of the unit square covered by the size grid.
	DefaultFillFraction = 0.7
	// DefaultEpsilon shrinks every radius by a factor (1-ε) so equal neighbours never touch.
	DefaultEpsilon = 1e-10
)

// config aggregates the knobs used by MapSizes. Passed by value.
type config struct {
	fill    float64 // (0,1]
	epsilon float64 // [0,1)
}

// Option customizes MapSizes.
type Option func(*config)

func newConfig(opts ...Option) config {
	cfg := config{
		fill:    DefaultFillFraction,
		epsilon: DefaultEpsilon,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithFillFraction sets the fill fraction f ∈ (0,1]. Panics otherwise.
func WithFillFraction(f float64) Option {
	if !(f > 0 && f <= 1) {
		panic("layout: WithFillFraction(f∉(0,1])")
	}
	return func(c *config) {
		c.fill = f
	}
}

// WithEpsilon sets the radius guard ε ∈ [0,1). Panics otherwise.
func WithEpsilon(eps float64) Option {
	if !(eps >= 0 && eps < 1) {
		panic("layout: WithEpsilon(eps∉[0,1))")
	}
	return func(c *config) {
		c.epsilon = eps
	}
}
