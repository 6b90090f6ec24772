// Package operator implements the algebra of second-quantized fermionic
// operators: products of creation (c†) and annihilation (c) operators on
// discrete modes, and sums of such products.
//
// 🚀 What does it do?
//
//	Term     — value · o_0 o_1 … o_{N-1}, one coefficient, N elementary operators
//	Operator — Σ Term, owning its terms
//
//	Both can be brought to normal order (creations left, annihilations right,
//	each block ascending by mode), compared algebraically, commuted, and
//	applied to occupation-number basis states from package fock.
//
// ✨ Key features:
//   - anticommutation {c_i, c†_j} = δ_ij tracked exactly: every swap of a
//     same-mode pair spawns the contraction term it owes
//   - worklist normal ordering: no recursion however many terms appear
//   - Reduce (merge like terms) and Prune (drop |value| < precision)
//   - algebraic Term equality and commutator checks for symmetry detection
//   - Jordan–Wigner signs in ActRight / MatrixElement
//   - dense complex matrix over a caller-supplied basis (gonum mat.CDense)
//
// ⚙️ Usage:
//
//	cdag, _ := operator.Create(0)
//	c, _ := operator.Annihilate(0)
//	a := operator.New([]*operator.Term{cdag})
//	b := operator.New([]*operator.Term{c})
//	comm := a.Commutator(b)      // c†c − c c†
//	_ = comm.MakeNormalOrder()   // (2+0i)*c^{+}_0 c_0 + (-1+0i)
//
// Errors are package sentinels (ErrWrongLabels, ErrVanishingTerm,
// ErrWrongOperatorSequence, …) matched with errors.Is. A vanishing half of a
// commutator is not fatal: it is omitted and reported.
//
// Concurrency: single-threaded and synchronous. Operators own their terms
// exclusively, so distinct Operators can be processed in parallel.
package operator
