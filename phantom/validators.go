// SPDX-License-Identifier: MIT
// Package: phantomgen/phantom
//
// validators.go — parameter contracts checked before any geometry is built.
//
// Each helper returns a wrapped phantomgen.ErrInvalidParameter naming the
// calling method, or nil.

package phantom

import (
	"math"

	"github.com/katalvlaran/phantomgen"
	"github.com/katalvlaran/phantomgen/siemens"
)

// validateMin ensures got ≥ min.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return phantomgen.Errorf(method, phantomgen.ErrInvalidParameter,
			"%s must be ≥ %d, got %d", name, min, got)
	}

	return nil
}

// validateRatio ensures 0 < ratio ≤ 1.
func validateRatio(method string, ratio float64) error {
	if !(ratio > 0 && ratio <= 1) {
		return phantomgen.Errorf(method, phantomgen.ErrInvalidParameter,
			"size ratio must be in (0,1], got %g", ratio)
	}

	return nil
}

// validateRadius ensures r is positive and finite.
func validateRadius(method string, r float64) error {
	if !(r > 0) || math.IsInf(r, 1) {
		return phantomgen.Errorf(method, phantomgen.ErrInvalidParameter,
			"radius must be > 0, got %g", r)
	}

	return nil
}

// validateLatin checks the inputs shared by the Latin-square kinds.
func validateLatin(method string, sizes int, ratio float64, shuffles int) error {
	if err := validateMin(method, "sizes", sizes, 1); err != nil {
		return err
	}
	if err := validateMin(method, "shuffles", shuffles, 0); err != nil {
		return err
	}

	return validateRatio(method, ratio)
}

// validateStar checks the Siemens star inputs.
func validateStar(method string, sectors int, radius float64) error {
	if err := validateMin(method, "sectors", sectors, siemens.MinSectors); err != nil {
		return err
	}

	return validateRadius(method, radius)
}
