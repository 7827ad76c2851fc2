// SPDX-License-Identifier: MIT
// Package: phantomgen/csg
//
// build.go — constructors and combinators.
//
// Contract:
//   • Constructors copy their inputs; callers may reuse slices afterwards.
//   • Combinators never drop or reorder children.
//   • Fold starts from an explicit empty Union (the identity) and appends;
//     an empty input is ErrEmptyGeometry, a nil element ErrInvalidParameter.

package csg

import (
	"seehuhn.de/go/geom/vec"

	"github.com/katalvlaran/phantomgen"
)

const (
	methodFold = "Fold"

	// PlateThickness is the z-extent of Plate, independent of its scale.
	PlateThickness = 0.1
)

// NewSphere returns a sphere primitive.
func NewSphere(radius float64, segments int) *Sphere {
	return &Sphere{Radius: radius, Segments: segments}
}

// NewBox returns a box primitive.
func NewBox(size Vec3, center bool) *Box {
	return &Box{Size: size, Center: center}
}

// ExtrudeCircle returns a cylinder: a circle of the given radius extruded
// to height.
func ExtrudeCircle(height, radius float64, segments int) *Extrusion {
	return &Extrusion{
		Height:  height,
		Profile: &Circle{Radius: radius, Segments: segments},
	}
}

// ExtrudePolygon returns a prism over a copy of points.
func ExtrudePolygon(height float64, points []vec.Vec2) *Extrusion {
	pts := make([]vec.Vec2, len(points))
	copy(pts, points)

	return &Extrusion{Height: height, Profile: &Polygon{Points: pts}}
}

// Plate returns a centered flat scale×scale×PlateThickness box. It serves as
// the minuend of a cutout (Difference) or as a mask (Intersection).
func Plate(scale float64) *Box {
	return NewBox(Vec3{X: scale, Y: scale, Z: PlateThickness}, true)
}

// Translate moves n by v.
func Translate(v Vec3, n Node) *Transform {
	return &Transform{Op: OpTranslate, By: v, Child: n}
}

// Scale scales n by v per axis.
func Scale(v Vec3, n Node) *Transform {
	return &Transform{Op: OpScale, By: v, Child: n}
}

// ScaleUniform scales n by s on every axis.
func ScaleUniform(s float64, n Node) *Transform {
	return Scale(Uniform(s), n)
}

// Union returns the union of nodes, in order.
func Union(nodes ...Node) *Boolean {
	return boolean(OpUnion, nodes)
}

// Difference returns a with every node of subtrahends removed.
func Difference(a Node, subtrahends ...Node) *Boolean {
	return boolean(OpDifference, append([]Node{a}, subtrahends...))
}

// Intersection returns the common volume of a and every node of others.
func Intersection(a Node, others ...Node) *Boolean {
	return boolean(OpIntersection, append([]Node{a}, others...))
}

func boolean(op BoolOp, nodes []Node) *Boolean {
	children := make([]Node, len(nodes))
	copy(children, nodes)

	return &Boolean{Op: op, Children: children}
}

// Fold unions nodes into a single tree, starting from an empty Union.
//
// Errors:
//   - ErrEmptyGeometry when nodes is empty.
//   - ErrInvalidParameter when an element is nil.
//
// Complexity: O(len(nodes)).
func Fold(nodes []Node) (*Boolean, error) {
	if len(nodes) == 0 {
		return nil, phantomgen.Errorf(methodFold, phantomgen.ErrEmptyGeometry, "nothing to fold")
	}
	acc := &Boolean{Op: OpUnion, Children: make([]Node, 0, len(nodes))}
	for i, n := range nodes {
		if isNil(n) {
			return nil, phantomgen.Errorf(methodFold, phantomgen.ErrInvalidParameter, "node %d is nil", i)
		}
		acc.Children = append(acc.Children, n)
	}

	return acc, nil
}

// isNil reports a nil interface or a typed nil pointer inside it.
func isNil(n Node) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *Sphere:
		return v == nil
	case *Box:
		return v == nil
	case *Extrusion:
		return v == nil
	case *Transform:
		return v == nil
	case *Boolean:
		return v == nil
	default:
		return false
	}
}
