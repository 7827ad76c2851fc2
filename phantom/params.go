// SPDX-License-Identifier: MIT
// Package: phantomgen/phantom
//
// params.go — per-kind generation parameters.

package phantom

// Params carries the numeric inputs of every kind. Each kind reads only the
// fields it needs:
//
//	RandomSpheres             Spheres
//	DogaSpheres, DogaCircles  Sizes, SizeRatio, Shuffles
//	RandomMatSpheres          Sizes, SizeRatio, Shuffles
//	SiemensStar               Sectors, StarRadius
type Params struct {
	Spheres    int     // disc count of the jittered grid
	Sizes      int     // Latin square order, one radius per symbol
	SizeRatio  float64 // radius(v+1)/radius(v), in (0,1]
	Shuffles   int     // row/column permutation rounds
	Sectors    int     // filled wedges of the star
	StarRadius float64 // outer radius of the star
}

// Reference defaults.
const (
	DefaultSpheres    = 10
	DefaultSizes      = 5
	DefaultSizeRatio  = 0.5
	DefaultShuffles   = 5
	DefaultSectors    = 2
	DefaultStarRadius = 0.5
)

// DefaultParams returns the reference parameter set.
func DefaultParams() Params {
	return Params{
		Spheres:    DefaultSpheres,
		Sizes:      DefaultSizes,
		SizeRatio:  DefaultSizeRatio,
		Shuffles:   DefaultShuffles,
		Sectors:    DefaultSectors,
		StarRadius: DefaultStarRadius,
	}
}
