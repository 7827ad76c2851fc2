// SPDX-License-Identifier: MIT

// Package phantom assembles test-object geometry from the layout generators.
//
// A phantom is a csg tree built from one of five variants:
//
//	random-spheres      equal spheres on a jittered grid
//	doga-spheres        Latin-square grid, radius decays with the symbol
//	doga-circles        same grid with extruded circles
//	siemens-star        extruded star sectors centered on z=0
//	random-mat-spheres  doga-spheres split into one part per radius
//
// Use Assemble with a Kind and Params, or call the per-kind constructor
// directly. Variants that draw random numbers need WithRand or WithSeed.
//
//	p, err := phantom.Assemble(phantom.KindDogaCircles, phantom.DefaultParams(), phantom.WithSeed(1))
//	if err != nil { ... }
//	tree := p.Geometry()
package phantom
