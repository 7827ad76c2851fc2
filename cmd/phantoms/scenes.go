// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/phantomgen/csg"
	"github.com/katalvlaran/phantomgen/phantom"
)

// Star used by the plate scenes.
const (
	plateStarSectors = 20
	plateStarRadius  = 0.4
)

// Scene is one output file.
type Scene struct {
	Name string
	Node csg.Node
}

// buildScenes assembles every scene in a fixed order from one rng, scaled
// by scale. No node is shared between scenes.
func buildScenes(rng *rand.Rand, scale float64) ([]Scene, error) {
	params := phantom.DefaultParams()
	withRand := phantom.WithRand(rng)

	circles, err := phantom.DogaCircles(params.Sizes, params.SizeRatio, params.Shuffles, withRand)
	if err != nil {
		return nil, err
	}
	spheres, err := phantom.DogaSpheres(params.Sizes, params.SizeRatio, params.Shuffles, withRand)
	if err != nil {
		return nil, err
	}
	cutStar, err := phantom.SiemensStar(plateStarSectors, plateStarRadius)
	if err != nil {
		return nil, err
	}
	maskStar, err := phantom.SiemensStar(plateStarSectors, plateStarRadius)
	if err != nil {
		return nil, err
	}
	random, err := phantom.RandomSpheres(params.Spheres, withRand)
	if err != nil {
		return nil, err
	}
	mat, err := phantom.RandomMatSpheres(params.Sizes, params.SizeRatio, params.Shuffles, withRand)
	if err != nil {
		return nil, err
	}

	scenes := []Scene{
		{"doga-plate", csg.Difference(csg.Plate(1), circles.Geometry())},
		{"doga-spheres", spheres.Geometry()},
		{"star-plate", csg.Difference(csg.Plate(1), cutStar.Geometry())},
		{"star", csg.Intersection(csg.Plate(1), maskStar.Geometry())},
		{"spheres", random.Geometry()},
	}
	for i, part := range mat.Parts {
		scenes = append(scenes, Scene{fmt.Sprintf("mat-spheres-%d", i), part.Node})
	}
	for i := range scenes {
		scenes[i].Node = csg.ScaleUniform(scale, scenes[i].Node)
	}

	return scenes, nil
}
