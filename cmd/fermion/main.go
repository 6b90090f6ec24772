// Command fermion is a diagnostic front end for the operator algebra.
//
// Usage:
//
//	fermion normal-order "c_0 c^{+}_0 c_1 c^{+}_1"
//	fermion commutator "c^{+}_0 c_1 + c^{+}_1 c_0" "c^{+}_0 c_0 + c^{+}_1 c_1"
//	fermion act --ket 0110 "c^{+}_0 c_1"
//	fermion matrix --modes 4 --particles 2 "c^{+}_0 c_1 + c^{+}_1 c_0"
//
// Operators use the textual form of package operator: terms joined by " + ",
// each term "value*c^{+}_i c_j ..." with the value optional.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
