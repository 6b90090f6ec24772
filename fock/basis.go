// SPDX-License-Identifier: MIT

package fock

import "fmt"

// MaxBasisWidth bounds Basis so the enumerated sector stays in memory.
const MaxBasisWidth = 20

// Basis returns every state over width modes holding exactly particles
// occupied modes, in ascending order (see Compare).
//
// Algorithm: Gosper's hack walks all masks with a fixed popcount in
// increasing numeric order.
//
// Complexity: O(C(width, particles)) time and memory.
func Basis(width, particles int) ([]State, error) {
	if width < 0 || width > MaxBasisWidth {
		return nil, fmt.Errorf("Basis(%d, %d): %w", width, particles, ErrWidth)
	}
	if particles < 0 || particles > width {
		return nil, fmt.Errorf("Basis(%d, %d): %w", width, particles, ErrParticles)
	}

	if particles == 0 {
		return []State{{width: width}}, nil
	}

	limit := uint64(1) << uint(width)
	out := make([]State, 0, binomial(width, particles))
	for mask := uint64(1)<<uint(particles) - 1; mask < limit; {
		out = append(out, State{width: width, mask: mask})
		// next mask with the same popcount
		lowest := mask & -mask
		ripple := mask + lowest
		mask = (((ripple ^ mask) >> 2) / lowest) | ripple
	}

	return out, nil
}

// binomial returns C(n, k) for small arguments.
func binomial(n, k int) int {
	if k > n-k {
		k = n - k
	}
	r := 1
	for i := 1; i <= k; i++ {
		r = r * (n - k + i) / i
	}

	return r
}
