// SPDX-License-Identifier: MIT
// Package: phantomgen
//
// errors.go — the shared error taxonomy for every generation step.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with fmt.Errorf("<Method>: ...: %w", ErrX).
//   • Generation never panics on user input. Option constructors (WithX...)
//     panic on meaningless values instead of returning errors.
//   • There is no partial success: an error means no tree was built.

package phantomgen

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter reports an out-of-range or nonsensical input, detected
// before any computation starts: non-positive counts, a size ratio outside
// (0,1], negative shuffle counts, fewer than two star sectors, and so on.
var ErrInvalidParameter = errors.New("phantomgen: invalid parameter")

// ErrInvariantViolation reports that a post-construction check failed, e.g.
// a Latin square whose row or column sums drifted. It signals a defect in the
// algorithm itself; callers must not retry or recover from it.
var ErrInvariantViolation = errors.New("phantomgen: invariant violation")

// ErrEmptyGeometry reports that an assembly step had no primitives to compose.
var ErrEmptyGeometry = errors.New("phantomgen: empty geometry")

// ErrNeedRandSource reports that a stochastic step was invoked with a nil
// *rand.Rand. It is a specialization of ErrInvalidParameter, so both
// errors.Is(err, ErrNeedRandSource) and errors.Is(err, ErrInvalidParameter)
// hold for it.
var ErrNeedRandSource = fmt.Errorf("%w: rng is required", ErrInvalidParameter)

// Errorf wraps sentinel with a method tag and a formatted detail message:
// "<method>: <detail>: <sentinel>".
//
// Complexity: O(len(format) + Σlen(args)).
func Errorf(method string, sentinel error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %s: %w", method, inner, sentinel)
}
