// SPDX-License-Identifier: MIT

// Package phantomgen builds synthetic calibration objects ("phantoms") for
// X-ray imaging simulation and reconstruction pipelines.
//
// A phantom is a small parametric scene: spheres of balanced sizes laid out
// on a Latin-square grid, randomly jittered spheres, or a Siemens star
// resolution target. The scene is returned as a declarative CSG tree that an
// external solid-modeling tool turns into a mesh.
//
// Under the hood the module is organized into subpackages:
//
//	latin/    — shuffled Latin squares with checked post-conditions
//	layout/   — size-grid mapping (radius table + cell centers) and jittered grids
//	siemens/  — Siemens star sectors and the frequency↔radius relation
//	csg/      — the geometry tree: primitives, transforms, boolean operators
//	phantom/  — one Assemble entry point over every phantom kind
//	scad/     — OpenSCAD serialization of a geometry tree
//	matrix/   — row-major float64 tables shared by the layout code
//
// Every stochastic step takes an explicit *rand.Rand; nothing reads global
// random state, so a fixed seed reproduces a phantom exactly.
//
// Quick example:
//
//	p, err := phantom.Assemble(phantom.KindDogaSpheres, phantom.DefaultParams(),
//		phantom.WithSeed(42))
//	if err != nil { ... }
//	src, err := scad.Render(csg.ScaleUniform(100, p.Geometry()))
//
// The command in cmd/phantoms writes the standard scene set to disk.
package phantomgen
