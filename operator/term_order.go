// SPDX-License-Identifier: MIT

package operator

import "fmt"

// ElementarySwap exchanges the operators at positions pos and pos+1.
//
// Behavior:
//   - different modes, or forceIgnore: pure fermionic transposition;
//     the coefficient changes sign and nothing else is produced.
//   - same mode, creation next to annihilation: the anticommutator
//     {c, c†} = 1 is evaluated. The receiver is transposed (sign flip) and
//     one auxiliary term of N−2 operators is returned: the original product
//     with both operators removed, original coefficient.
//   - same mode, same kind: the pair anticommutes to zero, so only the
//     sign flips.
//
// The caller owns the returned terms and is responsible for normal-ordering
// them. Errors: ErrPosition when pos+1 is not a valid position.
//
// Complexity: O(N).
func (t *Term) ElementarySwap(pos int, forceIgnore bool) ([]*Term, error) {
	if pos < 0 || pos+1 >= t.n {
		return nil, fmt.Errorf("ElementarySwap(%d) on %d operators: %w", pos, t.n, ErrPosition)
	}
	if forceIgnore || t.indices[pos] != t.indices[pos+1] || t.sequence[pos] == t.sequence[pos+1] {
		t.transpose(pos, pos+1)
		return nil, nil
	}

	seq := make([]bool, 0, t.n-2)
	idx := make([]int, 0, t.n-2)
	seq = append(append(seq, t.sequence[:pos]...), t.sequence[pos+2:]...)
	idx = append(append(idx, t.indices[:pos]...), t.indices[pos+2:]...)
	contraction := &Term{n: t.n - 2, sequence: seq, indices: idx, value: t.value}
	t.transpose(pos, pos+1)

	// Removing an adjacent c c† pair keeps every other running count, so a
	// vanishing contraction only comes from an already vanishing product.
	if contraction.Vanishes() {
		return nil, nil
	}

	return []*Term{contraction}, nil
}

// transpose exchanges operators i and j and flips the sign of the
// coefficient. Callers guarantee the exchange is a pure anticommutation.
func (t *Term) transpose(i, j int) {
	t.value = -t.value
	t.sequence[i], t.sequence[j] = t.sequence[j], t.sequence[i]
	t.indices[i], t.indices[j] = t.indices[j], t.indices[i]
}

// Rearrange transforms the creation/annihilation pattern of t into desired
// and returns every auxiliary term spawned by contractions on the way.
//
// Algorithm:
//  1. Scan left to right for the first position i with the wrong kind.
//  2. Scan right from i for the nearest j that holds the kind i needs and
//     is itself misplaced; if none exists the target is unreachable
//     (ErrWrongOperatorSequence).
//  3. Two-operator terms are fixed with one elementary swap.
//  4. If no operator in (i, j) shares a mode with either endpoint, and the
//     endpoints act on different modes, exchange them directly: one sign
//     flip, no new term.
//  5. Otherwise walk: move operator j left to i, then the displaced
//     operator from i+1 right to j, one elementary swap at a time,
//     collecting every contraction.
//
// Complexity: O(N²) swaps, plus the size of the returned list.
func (t *Term) Rearrange(desired []bool) ([]*Term, error) {
	if len(desired) != t.n {
		return nil, fmt.Errorf("Rearrange: target of %d operators for %v: %w", len(desired), t, ErrWrongOperatorSequence)
	}

	var out []*Term
	for i := 0; i < t.n-1; i++ {
		if t.sequence[i] == desired[i] {
			continue
		}
		j := i + 1
		for j < t.n && (t.sequence[j] == t.sequence[i] || t.sequence[j] == desired[j]) {
			j++
		}
		if j == t.n {
			return nil, fmt.Errorf("Rearrange(%v) toward %v: %w", t, desired, ErrWrongOperatorSequence)
		}
		if t.n == 2 {
			aux, err := t.ElementarySwap(0, false)
			if err != nil {
				return nil, err
			}
			return append(out, aux...), nil
		}

		walk := t.indices[i] == t.indices[j]
		for k := i + 1; k < j && !walk; k++ {
			walk = t.indices[k] == t.indices[i] || t.indices[k] == t.indices[j]
		}
		if !walk {
			t.transpose(i, j)
			continue
		}

		for k := j - 1; k >= i; k-- {
			aux, err := t.ElementarySwap(k, false)
			if err != nil {
				return nil, err
			}
			out = append(out, aux...)
		}
		for k := i + 1; k < j; k++ {
			aux, err := t.ElementarySwap(k, false)
			if err != nil {
				return nil, err
			}
			out = append(out, aux...)
		}
	}

	return out, nil
}

// Reorder sorts the creation block and the annihilation block of a term
// that is already split (all creations first) by mode index, ascending or
// descending. Only same-kind neighbours are exchanged, so every step is a
// pure sign flip and no term is produced.
//
// Either block may be empty. A term that is not split returns
// ErrWrongOperatorSequence and is left untouched.
//
// Complexity: O(N²).
func (t *Term) Reorder(ascending bool) error {
	split := 0
	for split < t.n && t.sequence[split] {
		split++
	}
	for k := split; k < t.n; k++ {
		if t.sequence[k] {
			return fmt.Errorf("Reorder(%v): %w", t, ErrWrongOperatorSequence)
		}
	}
	t.bubbleSort(0, split, ascending)
	t.bubbleSort(split, t.n, ascending)

	return nil
}

// bubbleSort orders indices[lo:hi] with forced elementary swaps.
func (t *Term) bubbleSort(lo, hi int, ascending bool) {
	for pass := 0; pass < hi-lo-1; pass++ {
		for k := lo; k < hi-1-pass; k++ {
			a, b := t.indices[k], t.indices[k+1]
			if (ascending && b < a) || (!ascending && b > a) {
				t.transpose(k, k+1)
			}
		}
	}
}

// MakeNormalOrder brings t to normal order in place: all creation operators
// to the left of all annihilation operators, each block ascending by mode.
// It returns the flattened list of auxiliary terms, each already in normal
// order, whose sum with t equals the original product.
//
// Auxiliary terms are processed through a worklist, so the stack depth is
// constant however many contractions appear. The list is in generation
// order: contractions of t first, then those of each auxiliary term in turn.
//
// Normal-ordering an already normal-ordered term returns no terms.
func (t *Term) MakeNormalOrder() ([]*Term, error) {
	queue, err := t.normalOrderSelf()
	if err != nil {
		return nil, err
	}
	for k := 0; k < len(queue); k++ {
		more, err := queue[k].normalOrderSelf()
		if err != nil {
			return nil, err
		}
		queue = append(queue, more...)
	}

	return queue, nil
}

// normalOrderSelf rearranges t only, returning its direct contractions.
func (t *Term) normalOrderSelf() ([]*Term, error) {
	aux, err := t.Rearrange(t.normalPattern())
	if err != nil {
		return nil, err
	}
	if err := t.Reorder(true); err != nil {
		return nil, err
	}

	return aux, nil
}

// normalPattern returns the target pattern: one true per creation operator
// followed by one false per annihilation operator.
func (t *Term) normalPattern() []bool {
	pattern := make([]bool, 0, t.n)
	for _, creation := range t.sequence {
		if creation {
			pattern = append([]bool{true}, pattern...)
		} else {
			pattern = append(pattern, false)
		}
	}

	return pattern
}

// IsNormalOrdered reports whether t is split into a creation block followed
// by an annihilation block, each ascending by mode index.
func (t *Term) IsNormalOrdered() bool {
	for k := 1; k < t.n; k++ {
		prev, cur := t.sequence[k-1], t.sequence[k]
		if !prev && cur {
			return false
		}
		if prev == cur && t.indices[k] < t.indices[k-1] {
			return false
		}
	}

	return true
}
