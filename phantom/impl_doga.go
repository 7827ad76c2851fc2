// SPDX-License-Identifier: MIT
// Package: phantomgen/phantom
//
// impl_doga.go — DogaSpheres, DogaCircles and RandomMatSpheres.
//
// Layout: latin.Build(sizes, shuffles) → layout.MapSizes(ratio).
// Primitives are folded into one union (or one union per radius for
// RandomMatSpheres) and translated by the configured center offset.
//
// Grouping compares the radii stored in the SizeGrid with ==. Those values
// are computed once per symbol, so cells sharing a symbol hold identical
// floats.

package phantom

import (
	"fmt"

	"github.com/katalvlaran/phantomgen/csg"
	"github.com/katalvlaran/phantomgen/latin"
	"github.com/katalvlaran/phantomgen/layout"
)

// sizeGrid builds the Latin square and maps it to discs.
func sizeGrid(method string, sizes int, ratio float64, shuffles int, cfg config) (*layout.SizeGrid, error) {
	sq, err := latin.Build(sizes, shuffles, cfg.rng)
	if err != nil {
		return nil, wrap(method, err)
	}
	grid, err := layout.MapSizes(sq, ratio, cfg.layoutOptions()...)
	if err != nil {
		return nil, wrap(method, err)
	}

	return grid, nil
}

func buildDoga(method string, kind Kind, sizes int, ratio float64, shuffles int, cfg config) (*Phantom, error) {
	grid, err := sizeGrid(method, sizes, ratio, shuffles, cfg)
	if err != nil {
		return nil, err
	}

	var nodes []csg.Node
	if kind == KindDogaCircles {
		nodes = placeCylinders(grid.Discs(), cfg.extrudeHeight, cfg.segments)
	} else {
		nodes = placeSpheres(grid.Discs(), cfg.segments)
	}
	root, err := csg.Fold(nodes)
	if err != nil {
		return nil, wrap(method, err)
	}

	return &Phantom{
		Name:  kind.String(),
		Kind:  kind,
		Parts: []Part{{Name: kind.String(), Node: csg.Translate(cfg.centerOffset, root)}},
		Sizes: grid,
	}, nil
}

func buildMatSpheres(sizes int, ratio float64, shuffles int, cfg config) (*Phantom, error) {
	grid, err := sizeGrid(MethodRandomMatSpheres, sizes, ratio, shuffles, cfg)
	if err != nil {
		return nil, err
	}

	// 1) Bucket discs by exact radius, in row-major order within a bucket.
	buckets := make(map[float64][]layout.Disc)
	for _, d := range grid.Discs() {
		buckets[d.Radius] = append(buckets[d.Radius], d)
	}

	// 2) One part per distinct radius, largest first.
	radii := grid.DistinctRadii()
	parts := make([]Part, 0, len(radii))
	for i, r := range radii {
		root, err := csg.Fold(placeSpheres(buckets[r], cfg.segments))
		if err != nil {
			return nil, wrap(MethodRandomMatSpheres, err)
		}
		parts = append(parts, Part{
			Name:   fmt.Sprintf("mat-%d", i),
			Radius: r,
			Node:   csg.Translate(cfg.centerOffset, root),
		})
	}

	return &Phantom{
		Name:  KindRandomMatSpheres.String(),
		Kind:  KindRandomMatSpheres,
		Parts: parts,
		Sizes: grid,
	}, nil
}
