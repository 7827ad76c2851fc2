// SPDX-License-Identifier: MIT
// Package: phantomgen/phantom
//
// impl_star.go — SiemensStar.
//
// Each sector triangle is extruded to the configured height; the union is
// shifted by -height/2 so the prism straddles z=0.

package phantom

import (
	"github.com/katalvlaran/phantomgen/csg"
	"github.com/katalvlaran/phantomgen/siemens"
)

func buildStar(sectors int, radius float64, cfg config) (*Phantom, error) {
	star, err := siemens.Build(sectors, radius)
	if err != nil {
		return nil, wrap(MethodSiemensStar, err)
	}

	nodes := make([]csg.Node, len(star.Triangles))
	for i, tri := range star.Triangles {
		nodes[i] = csg.ExtrudePolygon(cfg.extrudeHeight, tri[:])
	}
	root, err := csg.Fold(nodes)
	if err != nil {
		return nil, wrap(MethodSiemensStar, err)
	}

	return &Phantom{
		Name:  KindSiemensStar.String(),
		Kind:  KindSiemensStar,
		Parts: []Part{{Name: KindSiemensStar.String(), Node: csg.Translate(csg.Vec3{Z: -cfg.extrudeHeight / 2}, root)}},
		Star:  star,
	}, nil
}
