// Package fock provides occupation-number basis states for a fixed set of
// fermionic modes.
//
// 🚀 What is a Fock state?
//
//	A many-body basis vector |n_0 n_1 … n_{M-1}> where every n_i ∈ {0,1}
//	says whether single-particle mode i is occupied. Fermionic operators
//	map one such vector onto another (times a sign) or annihilate it.
//
// ✨ Key features:
//   - State is a small comparable value: use it directly as a map key
//   - total order (Compare/Less) for deterministic iteration
//   - Forbidden sentinel, distinct from every valid state, marks a
//     Pauli-exclusion violation
//   - ParityBelow for the Jordan–Wigner exchange sign
//   - Basis enumerates the fixed-particle-number sector
//
// ⚙️ Usage:
//
//	ket, _ := fock.Parse("01")   // mode 0 empty, mode 1 occupied
//	ket = ket.Flip(0)            // |11>
//	fmt.Println(ket.Occupied(0)) // true
//
// Width is limited to MaxWidth (64) modes; exact diagonalization never gets
// close to that bound.
package fock
