// SPDX-License-Identifier: MIT

package operator

import (
	"errors"
	"fmt"
	"math/cmplx"
)

// ExactlyEqual reports field-for-field identity: same length, same pattern,
// same indices, bitwise-equal coefficient.
func (t *Term) ExactlyEqual(o *Term) bool {
	return t.sameOperators(o) && t.value == o.value
}

// sameOperators compares pattern and indices, ignoring the coefficient.
func (t *Term) sameOperators(o *Term) bool {
	if t.n != o.n {
		return false
	}
	for k := 0; k < t.n; k++ {
		if t.sequence[k] != o.sequence[k] || t.indices[k] != o.indices[k] {
			return false
		}
	}

	return true
}

// Equal is an algebraic identity test between two terms.
//
//  1. Exact field-for-field match: equal.
//  2. Otherwise normal-order copies of both, then Reduce and Prune
//     (DefaultPrecision) their auxiliary lists. The terms are equal iff the
//     normal-ordered cores match exactly and the auxiliary lists match
//     pairwise, in generation order.
//
// Neither argument is modified. Nil terms are equal only to each other.
func Equal(a, b *Term) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.ExactlyEqual(b) {
		return true
	}

	ac, bc := a.Clone(), b.Clone()
	auxA, err := ac.MakeNormalOrder()
	if err != nil {
		return false
	}
	auxB, err := bc.MakeNormalOrder()
	if err != nil {
		return false
	}
	auxA = Prune(Reduce(auxA), DefaultPrecision)
	auxB = Prune(Reduce(auxB), DefaultPrecision)

	if !ac.ExactlyEqual(bc) || len(auxA) != len(auxB) {
		return false
	}
	for k := range auxA {
		if !auxA[k].ExactlyEqual(auxB[k]) {
			return false
		}
	}

	return true
}

// Equal is the method form of the package-level Equal.
func (t *Term) Equal(o *Term) bool { return Equal(t, o) }

// Commutator returns the two halves of [t, rhs]:
//
//	t·rhs   with coefficient  t.value·rhs.value
//	rhs·t   with coefficient −t.value·rhs.value
//
// A half whose concatenation is identically zero is omitted; the returned
// error then joins one ErrVanishingTerm per omitted half. The error is
// informational: the returned terms are the complete commutator.
func (t *Term) Commutator(rhs *Term) ([]*Term, error) {
	if rhs == nil {
		return nil, ErrNilTerm
	}

	var (
		out  []*Term
		errs []error
	)
	coeff := t.value * rhs.value
	halves := [2][2]*Term{{t, rhs}, {rhs, t}}
	for h, pair := range halves {
		seq := append(append(make([]bool, 0, t.n+rhs.n), pair[0].sequence...), pair[1].sequence...)
		idx := append(append(make([]int, 0, t.n+rhs.n), pair[0].indices...), pair[1].indices...)
		value := coeff
		if h == 1 {
			value = -coeff
		}
		term, err := NewTerm(seq, idx, value)
		if err != nil {
			errs = append(errs, fmt.Errorf("commutator [%v, %v] half %d: %w", t, rhs, h, err))
			continue
		}
		out = append(out, term)
	}

	return out, errors.Join(errs...)
}

// Commutes reports whether [t, rhs] vanishes term-wise: either both halves
// are identically zero, or the two halves cancel, i.e. t·rhs equals
// rhs·t by the algebraic Equal test.
//
// This is a per-term check. Operator.Commutes normal-orders the whole
// commutator and catches cancellations between different terms as well.
func (t *Term) Commutes(rhs *Term) bool {
	halves, _ := t.Commutator(rhs)
	switch len(halves) {
	case 0:
		return true
	case 2:
		return Equal(halves[0], halves[1].Scale(-1))
	default:
		return false
	}
}

// Reduce merges terms with identical operator pattern and indices by
// summing their coefficients; the first occurrence survives, in place.
// The merge is complete after one call, so a second call is a no-op.
//
// Reduce takes ownership of terms: the backing array is reused and merged
// entries are released. Nil entries are dropped.
//
// Complexity: O(T²·N) for T terms of length N.
func Reduce(terms []*Term) []*Term {
	out := terms[:0]
	for _, t := range terms {
		if t == nil {
			continue
		}
		merged := false
		for _, kept := range out {
			if kept.sameOperators(t) {
				kept.value += t.value
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, t)
		}
	}
	clear(terms[len(out):])

	return out
}

// Prune removes every term whose coefficient magnitude is below precision.
// Like Reduce it works in place and takes ownership of terms.
func Prune(terms []*Term, precision float64) []*Term {
	out := terms[:0]
	for _, t := range terms {
		if t != nil && cmplx.Abs(t.value) >= precision {
			out = append(out, t)
		}
	}
	clear(terms[len(out):])

	return out
}
