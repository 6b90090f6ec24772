// SPDX-License-Identifier: MIT

package operator

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fermion/fock"
)

// Matrix returns the dense representation of op over a caller-supplied
// basis: element (r, c) is <basis[r]| op |basis[c]>. Results of the action
// that fall outside the basis are discarded, so the basis should be closed
// under op (e.g. a fixed-particle sector for a number-conserving op).
//
// Duplicate basis states keep their first position.
//
// Complexity: O(B·T·N) for B basis states and T terms of length N.
func (op *Operator) Matrix(basis []fock.State) (*mat.CDense, error) {
	if len(basis) == 0 {
		return nil, ErrEmptyBasis
	}
	row := make(map[fock.State]int, len(basis))
	for r, s := range basis {
		if s.IsForbidden() {
			return nil, fmt.Errorf("Matrix: basis[%d] is %v: %w", r, s, ErrModeOutOfRange)
		}
		if _, seen := row[s]; !seen {
			row[s] = r
		}
	}

	m := mat.NewCDense(len(basis), len(basis), nil)
	for c, ket := range basis {
		for bra, amp := range op.ActRight(ket) {
			if r, ok := row[bra]; ok {
				m.Set(r, c, amp)
			}
		}
	}

	return m, nil
}
