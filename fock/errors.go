// SPDX-License-Identifier: MIT

package fock

import "errors"

var (
	// ErrWidth is returned when a requested mode count is outside [0, MaxWidth]
	// (or outside MaxBasisWidth for Basis).
	ErrWidth = errors.New("fock: invalid width")

	// ErrModeOutOfRange indicates that a mode index is outside [0, width).
	ErrModeOutOfRange = errors.New("fock: mode index out of range")

	// ErrParse indicates that an occupation string contains characters other than '0' and '1'.
	ErrParse = errors.New("fock: malformed occupation string")

	// ErrParticles indicates a particle count outside [0, width].
	ErrParticles = errors.New("fock: invalid particle count")
)
