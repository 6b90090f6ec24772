// SPDX-License-Identifier: MIT
// Package operator: sentinel error set.
// All constructors and algorithms return these sentinels (possibly wrapped
// with fmt.Errorf("ctx: %w", ErrX)); callers and tests match them with
// errors.Is. Nothing in this package panics on user input; option
// constructors panic on nonsensical arguments only (programmer error).

package operator

import "errors"

var (
	// ErrWrongLabels is returned when the operator sequence and the mode
	// indices of a term do not both have length N.
	ErrWrongLabels = errors.New("operator: wrong labels")

	// ErrVanishingTerm marks a product that is identically zero by
	// construction: two creation (or two annihilation) operators on one mode
	// with nothing between them that changes its occupation.
	ErrVanishingTerm = errors.New("operator: term vanishes")

	// ErrWrongOperatorSequence marks a rearrangement target that cannot be
	// reached from the current creation/annihilation pattern.
	ErrWrongOperatorSequence = errors.New("operator: wrong operator sequence")

	// ErrPosition indicates a swap position outside [0, N-2].
	ErrPosition = errors.New("operator: swap position out of range")

	// ErrModeOutOfRange indicates a mode index that is negative or not below
	// the mode count supplied by the lattice.
	ErrModeOutOfRange = errors.New("operator: mode index out of range")

	// ErrNilTerm indicates a nil *Term passed where a term is required.
	ErrNilTerm = errors.New("operator: nil term")

	// ErrEmptyBasis is returned by Matrix for a zero-length basis.
	ErrEmptyBasis = errors.New("operator: empty basis")

	// ErrParse indicates malformed textual input to ParseTerm/ParseOperator.
	ErrParse = errors.New("operator: malformed expression")
)
