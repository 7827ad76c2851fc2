// SPDX-License-Identifier: MIT
// Package: phantomgen/scad
//
// options.go — writer options.

package scad

import "strings"

// DefaultIndent is the per-level indentation.
const DefaultIndent = "  "

type config struct {
	indent string
	header []string
}

// Option customizes Write and Render.
type Option func(*config)

func newConfig(opts ...Option) config {
	cfg := config{indent: DefaultIndent}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIndent sets the per-level indentation. Panics unless s consists of
// spaces and tabs only.
func WithIndent(s string) Option {
	if strings.Trim(s, " \t") != "" {
		panic("scad: WithIndent(non-blank)")
	}
	return func(c *config) {
		c.indent = s
	}
}

// WithHeader prepends one "// line" comment per line of text.
func WithHeader(text string) Option {
	return func(c *config) {
		c.header = append(c.header, strings.Split(text, "\n")...)
	}
}
