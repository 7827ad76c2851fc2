// SPDX-License-Identifier: MIT
// Package: phantomgen/phantom
//
// impl_spheres.go — RandomSpheres.
//
// Layout: layout.Jittered(count). Every disc becomes
// translate([x, y, 0]) sphere(r). The union is left in [0,1]².

package phantom

import (
	"github.com/katalvlaran/phantomgen"
	"github.com/katalvlaran/phantomgen/csg"
	"github.com/katalvlaran/phantomgen/layout"
)

func buildRandomSpheres(count int, cfg config) (*Phantom, error) {
	if cfg.rng == nil {
		return nil, phantomgen.Errorf(MethodRandomSpheres, phantomgen.ErrNeedRandSource, "count=%d", count)
	}
	grid, err := layout.Jittered(count, cfg.rng)
	if err != nil {
		return nil, wrap(MethodRandomSpheres, err)
	}

	root, err := csg.Fold(placeSpheres(grid.Discs(), cfg.segments))
	if err != nil {
		return nil, wrap(MethodRandomSpheres, err)
	}

	return &Phantom{
		Name:   KindRandomSpheres.String(),
		Kind:   KindRandomSpheres,
		Parts:  []Part{{Name: KindRandomSpheres.String(), Radius: grid.Radius, Node: root}},
		Jitter: grid,
	}, nil
}

// placeSpheres maps each disc to a sphere translated onto its center.
func placeSpheres(discs []layout.Disc, segments int) []csg.Node {
	nodes := make([]csg.Node, len(discs))
	for i, d := range discs {
		nodes[i] = csg.Translate(at(d), csg.NewSphere(d.Radius, segments))
	}

	return nodes
}

// placeCylinders maps each disc to an extruded circle translated onto its
// center.
func placeCylinders(discs []layout.Disc, height float64, segments int) []csg.Node {
	nodes := make([]csg.Node, len(discs))
	for i, d := range discs {
		nodes[i] = csg.Translate(at(d), csg.ExtrudeCircle(height, d.Radius, segments))
	}

	return nodes
}

// at lifts a disc center into the z=0 plane.
func at(d layout.Disc) csg.Vec3 {
	return csg.Vec3{X: d.Center.X, Y: d.Center.Y}
}
