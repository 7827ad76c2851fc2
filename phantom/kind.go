// SPDX-License-Identifier: MIT
// Package: phantomgen/phantom
//
// kind.go — the closed set of phantom variants.

package phantom

import (
	"strings"

	"github.com/katalvlaran/phantomgen"
)

// Kind selects a phantom variant.
type Kind int

const (
	// KindRandomSpheres is a jittered grid of equal spheres.
	KindRandomSpheres Kind = iota
	// KindDogaSpheres is a Latin-square grid of spheres with decaying radii.
	KindDogaSpheres
	// KindDogaCircles is KindDogaSpheres with extruded circles (cylinders).
	KindDogaCircles
	// KindSiemensStar is an extruded Siemens star centered on z=0.
	KindSiemensStar
	// KindRandomMatSpheres is KindDogaSpheres split into one part per radius.
	KindRandomMatSpheres
)

var kindNames = [...]string{
	KindRandomSpheres:    "random-spheres",
	KindDogaSpheres:      "doga-spheres",
	KindDogaCircles:      "doga-circles",
	KindSiemensStar:      "siemens-star",
	KindRandomMatSpheres: "random-mat-spheres",
}

// Kinds lists every variant in declaration order.
func Kinds() []Kind {
	return []Kind{KindRandomSpheres, KindDogaSpheres, KindDogaCircles, KindSiemensStar, KindRandomMatSpheres}
}

// String returns the kebab-case name used in file names and flags.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind is the inverse of Kind.String. Matching ignores case and
// surrounding blanks.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}

	return 0, phantomgen.Errorf("ParseKind", phantomgen.ErrInvalidParameter, "unknown kind %q", s)
}
