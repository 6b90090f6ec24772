// Package fermion is a symbolic algebra for second-quantized fermionic
// operators: sums of products of creation and annihilation operators on
// discrete modes.
//
// 🚀 What does it do?
//
//	Brings operator products to normal order, generating the Wick
//	contraction terms that {c_i, c†_j} = δ_ij demands, applies operators
//	to occupation-number basis states with the Jordan–Wigner exchange
//	sign, and forms commutators to detect symmetries.
//
// ✨ Packages:
//
//	fock/        — occupation-number basis states, Forbidden sentinel, sector enumeration
//	operator/    — Term and Operator: normal order, action, commutators, parsing, dense matrices
//	cmd/fermion/ — diagnostic CLI over the operator package
//
// Quick example:
//
//	op, _ := operator.ParseOperator("c_0 c^{+}_0")
//	_ = op.MakeNormalOrder()
//	fmt.Println(op) // (-1+0i)*c^{+}_0 c_0 + (1+0i)
//
// Diagonalization and Hilbert-space management are left to the caller;
// Operator.Matrix hands a gonum CDense to whatever solver comes next.
package fermion
