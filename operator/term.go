// SPDX-License-Identifier: MIT

package operator

import (
	"fmt"
	"math/cmplx"
)

// Term is a product of N elementary fermionic operators times a complex
// coefficient:
//
//	value · o_0 o_1 … o_{N-1},  o_k = c†_{indices[k]} if sequence[k] else c_{indices[k]}
//
// Position k is the operator's place in the left-to-right product.
// A Term owns its slices; accessors return copies. Reordering methods mutate
// the receiver in place and return the auxiliary (contraction) terms they
// spawn as fresh, independently owned values.
type Term struct {
	n        int
	sequence []bool
	indices  []int
	value    complex128
}

// NewTerm builds a term whose length N is len(sequence).
// See NewTermN for the validation rules.
func NewTerm(sequence []bool, indices []int, value complex128) (*Term, error) {
	return NewTermN(len(sequence), sequence, indices, value)
}

// NewTermN builds a term of n operators.
//
// Validation:
//   - len(sequence) and len(indices) must both equal n, else ErrWrongLabels;
//   - scanning right from every operator, the running count of same-mode
//     operators (creation +1, annihilation −1) may never leave [−1, 1],
//     else ErrVanishingTerm: the product is identically zero.
//
// The slices are copied; the caller keeps ownership of its arguments.
// Complexity: O(n²).
func NewTermN(n int, sequence []bool, indices []int, value complex128) (*Term, error) {
	if n < 0 || len(sequence) != n || len(indices) != n {
		return nil, fmt.Errorf("NewTerm(N=%d, %d ops, %d indices): %w", n, len(sequence), len(indices), ErrWrongLabels)
	}
	for _, m := range indices {
		if m < 0 {
			return nil, fmt.Errorf("NewTerm: index %d: %w", m, ErrModeOutOfRange)
		}
	}
	t := &Term{
		n:        n,
		sequence: append([]bool(nil), sequence...),
		indices:  append([]int(nil), indices...),
		value:    value,
	}
	if t.Vanishes() {
		return nil, fmt.Errorf("NewTerm(%v): %w", t, ErrVanishingTerm)
	}

	return t, nil
}

// Create returns the single-operator term c†_i with coefficient 1.
func Create(i int) (*Term, error) { return NewTerm([]bool{true}, []int{i}, 1) }

// Annihilate returns the single-operator term c_i with coefficient 1.
func Annihilate(i int) (*Term, error) { return NewTerm([]bool{false}, []int{i}, 1) }

// Number returns the occupation-number term c†_i c_i with coefficient 1.
func Number(i int) (*Term, error) { return NewTerm([]bool{true, false}, []int{i, i}, 1) }

// Hopping returns value · c†_i c_j.
func Hopping(i, j int, value complex128) (*Term, error) {
	return NewTerm([]bool{true, false}, []int{i, j}, value)
}

// Identity returns the zero-operator term carrying only a coefficient.
func Identity(value complex128) *Term {
	return &Term{value: value}
}

// Product concatenates terms left to right; the coefficient is the product
// of all coefficients. Fails with ErrVanishingTerm when the concatenation
// is identically zero and with ErrNilTerm on a nil factor.
func Product(terms ...*Term) (*Term, error) {
	var (
		seq   []bool
		idx   []int
		value complex128 = 1
	)
	for _, t := range terms {
		if t == nil {
			return nil, ErrNilTerm
		}
		seq = append(seq, t.sequence...)
		idx = append(idx, t.indices...)
		value *= t.value
	}

	return NewTerm(seq, idx, value)
}

// N returns the number of elementary operators.
func (t *Term) N() int { return t.n }

// Sequence returns a copy of the creation (true) / annihilation (false) pattern.
func (t *Term) Sequence() []bool { return append([]bool(nil), t.sequence...) }

// Indices returns a copy of the mode indices.
func (t *Term) Indices() []int { return append([]int(nil), t.indices...) }

// Value returns the coefficient.
func (t *Term) Value() complex128 { return t.value }

// Clone returns a deep copy that shares no memory with t.
func (t *Term) Clone() *Term {
	return &Term{
		n:        t.n,
		sequence: append([]bool(nil), t.sequence...),
		indices:  append([]int(nil), t.indices...),
		value:    t.value,
	}
}

// Scale returns a copy of t with its coefficient multiplied by c.
func (t *Term) Scale(c complex128) *Term {
	out := t.Clone()
	out.value *= c

	return out
}

// Adjoint returns the Hermitian conjugate: reversed order, creation and
// annihilation exchanged, conjugated coefficient.
func (t *Term) Adjoint() *Term {
	out := &Term{
		n:        t.n,
		sequence: make([]bool, t.n),
		indices:  make([]int, t.n),
		value:    cmplx.Conj(t.value),
	}
	for k := 0; k < t.n; k++ {
		out.sequence[k] = !t.sequence[t.n-1-k]
		out.indices[k] = t.indices[t.n-1-k]
	}

	return out
}

// Vanishes re-runs the construction invariant on the current operator
// order. Reordering never makes a valid product vanish algebraically, but
// contraction bookkeeping can leave e.g. c†_0 c†_0 c_0 behind, which is
// identically zero.
func (t *Term) Vanishes() bool {
	for i := 0; i < t.n; i++ {
		count := occupationStep(t.sequence[i])
		for j := i + 1; j < t.n; j++ {
			if t.indices[j] != t.indices[i] {
				continue
			}
			count += occupationStep(t.sequence[j])
			if count > 1 || count < -1 {
				return true
			}
		}
	}

	return false
}

// Validate checks every mode index against the mode count of the lattice.
func (t *Term) Validate(modes int) error {
	for k, m := range t.indices {
		if m < 0 || m >= modes {
			return fmt.Errorf("term %v, operator %d: mode %d of %d: %w", t, k, m, modes, ErrModeOutOfRange)
		}
	}

	return nil
}

// occupationStep is +1 for creation, −1 for annihilation.
func occupationStep(creation bool) int {
	if creation {
		return 1
	}

	return -1
}
