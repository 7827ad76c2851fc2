// SPDX-License-Identifier: MIT
// Package: phantomgen/phantom
//
// api.go — public entry points.
//
// Contract:
//   • Parameters are validated before any geometry is computed.
//   • Stochastic kinds need WithRand or WithSeed; otherwise they fail with
//     phantomgen.ErrNeedRandSource.
//   • Errors are wrapped as "<Method>: <detail>: <sentinel>".

package phantom

import (
	"fmt"

	"github.com/katalvlaran/phantomgen"
)

// Method names used in error messages.
const (
	MethodAssemble         = "Assemble"
	MethodRandomSpheres    = "RandomSpheres"
	MethodDogaSpheres      = "DogaSpheres"
	MethodDogaCircles      = "DogaCircles"
	MethodSiemensStar      = "SiemensStar"
	MethodRandomMatSpheres = "RandomMatSpheres"
)

// Assemble builds a phantom of the given kind from the fields of p that kind
// reads.
//
// Errors:
//   - ErrInvalidParameter for an unknown kind or out-of-range parameters.
//   - ErrNeedRandSource when the kind draws random numbers and no rng is set.
//   - ErrInvariantViolation when a Latin-square post-condition fails.
//   - ErrEmptyGeometry when nothing was placed.
func Assemble(kind Kind, p Params, opts ...Option) (*Phantom, error) {
	switch kind {
	case KindRandomSpheres:
		return RandomSpheres(p.Spheres, opts...)
	case KindDogaSpheres:
		return DogaSpheres(p.Sizes, p.SizeRatio, p.Shuffles, opts...)
	case KindDogaCircles:
		return DogaCircles(p.Sizes, p.SizeRatio, p.Shuffles, opts...)
	case KindSiemensStar:
		return SiemensStar(p.Sectors, p.StarRadius, opts...)
	case KindRandomMatSpheres:
		return RandomMatSpheres(p.Sizes, p.SizeRatio, p.Shuffles, opts...)
	default:
		return nil, phantomgen.Errorf(MethodAssemble, phantomgen.ErrInvalidParameter, "unknown kind %d", int(kind))
	}
}

// RandomSpheres places count equal spheres on a jittered grid in [0,1]².
func RandomSpheres(count int, opts ...Option) (*Phantom, error) {
	if err := validateMin(MethodRandomSpheres, "count", count, 1); err != nil {
		return nil, err
	}

	return buildRandomSpheres(count, newConfig(opts...))
}

// DogaSpheres places sizes² spheres on a Latin-square grid; the radius of a
// cell decays geometrically with its symbol. The layout is recentered by
// the configured offset.
func DogaSpheres(sizes int, ratio float64, shuffles int, opts ...Option) (*Phantom, error) {
	if err := validateLatin(MethodDogaSpheres, sizes, ratio, shuffles); err != nil {
		return nil, err
	}

	return buildDoga(MethodDogaSpheres, KindDogaSpheres, sizes, ratio, shuffles, newConfig(opts...))
}

// DogaCircles is DogaSpheres with extruded circles in place of spheres.
func DogaCircles(sizes int, ratio float64, shuffles int, opts ...Option) (*Phantom, error) {
	if err := validateLatin(MethodDogaCircles, sizes, ratio, shuffles); err != nil {
		return nil, err
	}

	return buildDoga(MethodDogaCircles, KindDogaCircles, sizes, ratio, shuffles, newConfig(opts...))
}

// SiemensStar extrudes the sectors of a star and centers the prism on z=0.
func SiemensStar(sectors int, radius float64, opts ...Option) (*Phantom, error) {
	if err := validateStar(MethodSiemensStar, sectors, radius); err != nil {
		return nil, err
	}

	return buildStar(sectors, radius, newConfig(opts...))
}

// RandomMatSpheres is DogaSpheres split into one part per distinct radius,
// largest first. Each part is a separate material.
func RandomMatSpheres(sizes int, ratio float64, shuffles int, opts ...Option) (*Phantom, error) {
	if err := validateLatin(MethodRandomMatSpheres, sizes, ratio, shuffles); err != nil {
		return nil, err
	}

	return buildMatSpheres(sizes, ratio, shuffles, newConfig(opts...))
}

// wrap prefixes an error from a lower layer with method.
func wrap(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
