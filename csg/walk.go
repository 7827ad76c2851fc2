// SPDX-License-Identifier: MIT
// Package: phantomgen/csg
//
// walk.go — traversal, statistics and structural validation.

package csg

import (
	"fmt"
	"math"

	"github.com/katalvlaran/phantomgen"
)

const methodValidate = "Validate"

// Children returns the direct children of n in order (nil for primitives).
func Children(n Node) []Node {
	switch v := n.(type) {
	case *Transform:
		return []Node{v.Child}
	case *Boolean:
		return v.Children
	default:
		return nil
	}
}

// Walk visits n and its descendants in pre-order. depth is 0 for n.
// Returning false from fn skips the children of the current node.
func Walk(n Node, fn func(n Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n Node, depth int, fn func(Node, int) bool) {
	if isNil(n) || !fn(n, depth) {
		return
	}
	for _, c := range Children(n) {
		walk(c, depth+1, fn)
	}
}

// Stats summarizes a tree.
type Stats struct {
	Nodes      int
	Primitives int
	Transforms int
	Booleans   int

	Spheres    int
	Boxes      int
	Extrusions int

	Depth int // longest root-to-leaf edge count
}

// Collect computes Stats for n.
func Collect(n Node) Stats {
	var s Stats
	Walk(n, func(n Node, depth int) bool {
		s.Nodes++
		if depth > s.Depth {
			s.Depth = depth
		}
		switch n.(type) {
		case *Sphere:
			s.Primitives++
			s.Spheres++
		case *Box:
			s.Primitives++
			s.Boxes++
		case *Extrusion:
			s.Primitives++
			s.Extrusions++
		case *Transform:
			s.Transforms++
		case *Boolean:
			s.Booleans++
		}
		return true
	})

	return s
}

// Validate checks that n only holds well-formed nodes of the supported
// kinds: positive finite sizes, known operators, non-nil children and
// non-empty booleans.
//
// Errors:
//   - ErrEmptyGeometry for a Boolean without children.
//   - ErrInvalidParameter for everything else.
func Validate(n Node) error {
	return validate(n, "")
}

func validate(n Node, at string) error {
	bad := func(format string, args ...interface{}) error {
		return phantomgen.Errorf(methodValidate, phantomgen.ErrInvalidParameter,
			"%s: %s", pathOrRoot(at), fmt.Sprintf(format, args...))
	}
	if isNil(n) {
		return bad("nil node")
	}

	switch v := n.(type) {
	case *Sphere:
		if !positive(v.Radius) || v.Segments < 0 {
			return bad("sphere r=%g segments=%d", v.Radius, v.Segments)
		}
	case *Box:
		if !positive(v.Size.X) || !positive(v.Size.Y) || !positive(v.Size.Z) {
			return bad("box size %+v", v.Size)
		}
	case *Extrusion:
		if !positive(v.Height) {
			return bad("extrusion height %g", v.Height)
		}
		if err := validateProfile(v.Profile); err != "" {
			return bad("%s", err)
		}
	case *Transform:
		if !finite(v.By.X) || !finite(v.By.Y) || !finite(v.By.Z) {
			return bad("%s by %+v", v.Op, v.By)
		}
		switch v.Op {
		case OpTranslate:
		case OpScale:
			if v.By.X == 0 || v.By.Y == 0 || v.By.Z == 0 {
				return bad("degenerate scale %+v", v.By)
			}
		default:
			return bad("unknown transform op %d", int(v.Op))
		}
		return validate(v.Child, at+"/"+v.Op.String())
	case *Boolean:
		if v.Op < OpUnion || v.Op > OpIntersection {
			return bad("unknown boolean op %d", int(v.Op))
		}
		if len(v.Children) == 0 {
			return phantomgen.Errorf(methodValidate, phantomgen.ErrEmptyGeometry,
				"%s: %s without children", pathOrRoot(at), v.Op)
		}
		for i, c := range v.Children {
			if err := validate(c, fmt.Sprintf("%s/%s[%d]", at, v.Op, i)); err != nil {
				return err
			}
		}
	default:
		return bad("unsupported node %T", n)
	}

	return nil
}

// validateProfile returns a description of the defect, or "" when p is fine.
func validateProfile(p Profile) string {
	switch v := p.(type) {
	case *Circle:
		if v == nil || !positive(v.Radius) || v.Segments < 0 {
			return "bad circle profile"
		}
	case *Polygon:
		if v == nil || len(v.Points) < 3 {
			return "polygon profile needs ≥ 3 points"
		}
		for i, pt := range v.Points {
			if !finite(pt.X) || !finite(pt.Y) {
				return fmt.Sprintf("polygon point %d not finite", i)
			}
		}
	default:
		return "missing profile"
	}

	return ""
}

func pathOrRoot(at string) string {
	if at == "" {
		return "/"
	}
	return at
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

func positive(x float64) bool { return x > 0 && !math.IsInf(x, 1) }
