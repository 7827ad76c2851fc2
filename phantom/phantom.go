// SPDX-License-Identifier: MIT
// Package: phantomgen/phantom
//
// phantom.go — the assembled result.

package phantom

import (
	"github.com/katalvlaran/phantomgen/csg"
	"github.com/katalvlaran/phantomgen/layout"
	"github.com/katalvlaran/phantomgen/siemens"
)

// Part is one physical object of a phantom.
type Part struct {
	Name   string
	Radius float64 // shared primitive radius, 0 when the part mixes sizes
	Node   csg.Node
}

// Phantom is an assembled geometry tree plus the layout it was built from.
// Exactly one of Sizes, Jitter, Star is set, depending on Kind.
type Phantom struct {
	Name  string
	Kind  Kind
	Parts []Part

	Sizes  *layout.SizeGrid
	Jitter *layout.JitteredGrid
	Star   *siemens.Star
}

// Nodes returns the root node of every part, in order.
func (p *Phantom) Nodes() []csg.Node {
	nodes := make([]csg.Node, len(p.Parts))
	for i, part := range p.Parts {
		nodes[i] = part.Node
	}

	return nodes
}

// Geometry returns the single part's node, or the union of all parts.
// It returns nil for a phantom without parts.
func (p *Phantom) Geometry() csg.Node {
	switch len(p.Parts) {
	case 0:
		return nil
	case 1:
		return p.Parts[0].Node
	default:
		return csg.Union(p.Nodes()...)
	}
}
