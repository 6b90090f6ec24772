// SPDX-License-Identifier: MIT
// Package operator_test contains shared fixtures.
//
// Purpose:
//   - Build terms without repeating error checks in every test.
//   - Enumerate the full occupation basis of a few modes so algebraic
//     rewrites can be checked against the action on every basis state.

package operator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fermion/fock"
	"github.com/katalvlaran/fermion/operator"
)

// Shorthand for readable operator sequences.
const (
	C = true  // creation
	A = false // annihilation
)

// MustTerm builds a term or fails the test.
func MustTerm(t *testing.T, seq []bool, idx []int, value complex128) *operator.Term {
	t.Helper()
	term, err := operator.NewTerm(seq, idx, value)
	require.NoError(t, err, "NewTerm(%v, %v)", seq, idx)

	return term
}

// MustParse parses an operator or fails the test.
func MustParse(t *testing.T, s string, opts ...operator.Option) *operator.Operator {
	t.Helper()
	op, err := operator.ParseOperator(s, opts...)
	require.NoError(t, err, "ParseOperator(%q)", s)

	return op
}

// FullBasis returns all 2^modes occupation states.
func FullBasis(t *testing.T, modes int) []fock.State {
	t.Helper()
	var out []fock.State
	for p := 0; p <= modes; p++ {
		sector, err := fock.Basis(modes, p)
		require.NoError(t, err)
		out = append(out, sector...)
	}

	return out
}

// RequireSameAction asserts that two operators act identically on every
// basis state.
func RequireSameAction(t *testing.T, want, got *operator.Operator, basis []fock.State) {
	t.Helper()
	for _, ket := range basis {
		w, g := want.ActRight(ket), got.ActRight(ket)
		require.Len(t, g, len(w), "ket %v: %v vs %v", ket, want, got)
		for bra, amp := range w {
			require.InDelta(t, real(amp), real(g[bra]), 1e-12, "ket %v bra %v", ket, bra)
			require.InDelta(t, imag(amp), imag(g[bra]), 1e-12, "ket %v bra %v", ket, bra)
		}
	}
}
