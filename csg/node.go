// SPDX-License-Identifier: MIT

// Package csg defines the declarative geometry tree handed to the external
// solid-modeling collaborator.
//
// A tree is built from three closed families of nodes:
//
//   - primitives: Sphere, Box and Extrusion (a Circle or Polygon profile
//     extruded linearly along +z);
//   - transforms: Translate and Scale applied to one child;
//   - booleans: Union, Difference and Intersection over an ordered child list.
//
// Boolean combination is ordinary function calls (Union, Difference,
// Intersection, Fold); there is no operator overloading and no nil
// placeholder to start an accumulation from. Every function returns a fresh
// node, and the phantom assembler never shares a node between two trees.
package csg

import (
	"seehuhn.de/go/geom/vec"
)

// Kind enumerates the node families.
type Kind int

const (
	KindPrimitive Kind = iota // Sphere, Box, Extrusion
	KindTransform             // Translate, Scale
	KindBoolean               // Union, Difference, Intersection
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindTransform:
		return "transform"
	case KindBoolean:
		return "boolean"
	default:
		return "unknown"
	}
}

// Node is any element of the geometry tree.
type Node interface {
	Kind() Kind
	isNode() // marker method restricting implementations to this package
}

// Vec3 is a 3-D vector used for offsets, scale factors and box sizes.
type Vec3 struct {
	X, Y, Z float64
}

// Uniform returns (s, s, s).
func Uniform(s float64) Vec3 { return Vec3{X: s, Y: s, Z: s} }

// ---------- primitives ----------

// Sphere is centered at the origin. Segments is the facet count handed to
// the mesher; zero leaves the choice to the tool.
type Sphere struct {
	Radius   float64
	Segments int
}

// Box is an axis-aligned cuboid with one corner at the origin, or centered
// on it when Center is set.
type Box struct {
	Size   Vec3
	Center bool
}

// Extrusion sweeps a planar Profile from z=0 to z=Height.
type Extrusion struct {
	Height  float64
	Profile Profile
}

// Profile is the 2-D cross-section of an Extrusion.
type Profile interface {
	isProfile()
}

// Circle is a disc profile centered at the origin.
type Circle struct {
	Radius   float64
	Segments int
}

// Polygon is a simple closed polygon profile; the last vertex connects back
// to the first.
type Polygon struct {
	Points []vec.Vec2
}

func (*Sphere) Kind() Kind    { return KindPrimitive }
func (*Box) Kind() Kind       { return KindPrimitive }
func (*Extrusion) Kind() Kind { return KindPrimitive }
func (*Sphere) isNode()       {}
func (*Box) isNode()          {}
func (*Extrusion) isNode()    {}
func (*Circle) isProfile()    {}
func (*Polygon) isProfile()   {}

// ---------- transforms ----------

// TransformOp selects the affine operation of a Transform.
type TransformOp int

const (
	OpTranslate TransformOp = iota
	OpScale
)

func (op TransformOp) String() string {
	switch op {
	case OpTranslate:
		return "translate"
	case OpScale:
		return "scale"
	default:
		return "unknown"
	}
}

// Transform applies Op with vector By to Child.
type Transform struct {
	Op    TransformOp
	By    Vec3
	Child Node
}

func (*Transform) Kind() Kind { return KindTransform }
func (*Transform) isNode()    {}

// ---------- booleans ----------

// BoolOp selects the set operation of a Boolean.
type BoolOp int

const (
	OpUnion BoolOp = iota
	OpDifference
	OpIntersection
)

func (op BoolOp) String() string {
	switch op {
	case OpUnion:
		return "union"
	case OpDifference:
		return "difference"
	case OpIntersection:
		return "intersection"
	default:
		return "unknown"
	}
}

// Boolean combines Children in order. For OpDifference the first child is
// the minuend and every later child is subtracted from it.
type Boolean struct {
	Op       BoolOp
	Children []Node
}

func (*Boolean) Kind() Kind { return KindBoolean }
func (*Boolean) isNode()    {}
