// SPDX-License-Identifier: MIT

package operator

import "github.com/katalvlaran/fermion/fock"

// ActRight applies the operator product of t to ket and returns the
// resulting basis state and amplitude.
//
// Operators act right to left (position N−1 first). Each one:
//   - fails on a Pauli violation (creation on an occupied mode, annihilation
//     on an empty one) or on a mode outside ket: the result is
//     (fock.Forbidden, 0);
//   - otherwise picks up (−1) per occupied mode below its own in the
//     current state (the Jordan–Wigner string), then flips its mode.
//
// The returned amplitude is value·sign. ket itself is never modified.
// Complexity: O(N).
func (t *Term) ActRight(ket fock.State) (fock.State, complex128) {
	bra := ket
	sign := 1.0
	for k := t.n - 1; k >= 0; k-- {
		mode := t.indices[k]
		if !bra.Valid(mode) || bra.Occupied(mode) == t.sequence[k] {
			return fock.Forbidden, 0
		}
		if bra.ParityBelow(mode)%2 == 1 {
			sign = -sign
		}
		bra = bra.Flip(mode)
	}

	return bra, t.value * complex(sign, 0)
}

// MatrixElement returns <bra| t |ket>.
func (t *Term) MatrixElement(bra, ket fock.State) complex128 {
	out, amp := t.ActRight(ket)
	if out.IsForbidden() || out != bra {
		return 0
	}

	return amp
}
