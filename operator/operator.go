// SPDX-License-Identifier: MIT

package operator

import (
	"fmt"
	"math/cmplx"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/fermion/fock"
)

// Operator is a sum of Terms. The term order is stable for display and
// carries no algebraic meaning.
//
// An Operator owns its terms exclusively: New takes ownership of the slice
// it is given, Terms hands out clones, and every transformation either
// mutates owned terms in place or moves freshly generated ones in. Separate
// Operators never share a *Term, so independent Operators may be processed
// on different goroutines; a single Operator is not safe for concurrent use.
type Operator struct {
	terms []*Term
	opts  Options
	log   zerolog.Logger
}

// New wraps terms into an Operator and takes ownership of them; the caller
// must not use the given *Term values afterwards. Nil entries are skipped.
func New(terms []*Term, opts ...Option) *Operator {
	return newWithOptions(terms, gatherOptions(opts...))
}

// newWithOptions builds an Operator with already resolved options.
func newWithOptions(terms []*Term, o Options) *Operator {
	owned := make([]*Term, 0, len(terms))
	for _, t := range terms {
		if t != nil {
			owned = append(owned, t)
		}
	}

	return &Operator{terms: owned, opts: o, log: o.logger}
}

// Add moves t into the operator.
func (op *Operator) Add(t *Term) error {
	if t == nil {
		return ErrNilTerm
	}
	op.terms = append(op.terms, t)

	return nil
}

// Len returns the number of terms.
func (op *Operator) Len() int { return len(op.terms) }

// Terms returns deep copies of the owned terms.
func (op *Operator) Terms() []*Term {
	out := make([]*Term, len(op.terms))
	for k, t := range op.terms {
		out[k] = t.Clone()
	}

	return out
}

// Options returns the effective configuration.
func (op *Operator) Options() Options { return op.opts }

// Clone returns a deep copy with the same options.
func (op *Operator) Clone() *Operator {
	return &Operator{terms: op.Terms(), opts: op.opts, log: op.log}
}

// IsZero reports whether the operator has no terms. Call MakeNormalOrder
// first to get an algebraic answer.
func (op *Operator) IsZero() bool { return len(op.terms) == 0 }

// Validate checks every term against the mode count of the lattice.
func (op *Operator) Validate(modes int) error {
	for _, t := range op.terms {
		if err := t.Validate(modes); err != nil {
			return err
		}
	}

	return nil
}

// ActRight applies the operator to ket and returns the resulting
// superposition as basis state → amplitude.
//
// Forbidden results and amplitudes with magnitude at or below Epsilon are
// skipped; entries that sum to less than Epsilon are removed.
func (op *Operator) ActRight(ket fock.State) map[fock.State]complex128 {
	out := make(map[fock.State]complex128)
	for _, t := range op.terms {
		bra, amp := t.ActRight(ket)
		if bra.IsForbidden() || cmplx.Abs(amp) <= Epsilon {
			continue
		}
		out[bra] += amp
	}
	for bra, amp := range out {
		if cmplx.Abs(amp) < Epsilon {
			delete(out, bra)
		}
	}

	return out
}

// MatrixElement returns <bra| op |ket>, zero when bra is not reached.
func (op *Operator) MatrixElement(bra, ket fock.State) complex128 {
	return op.ActRight(ket)[bra]
}

// MakeNormalOrder normal-orders every owned term in place, moves all
// generated auxiliary terms into the operator, drops terms whose normal
// form vanishes identically, then reduces and prunes at the configured
// precision.
func (op *Operator) MakeNormalOrder() error {
	var generated []*Term
	for _, t := range op.terms {
		aux, err := t.MakeNormalOrder()
		if err != nil {
			return fmt.Errorf("MakeNormalOrder: %w", err)
		}
		generated = append(generated, aux...)
	}
	op.terms = append(op.terms, generated...)

	kept := op.terms[:0]
	for _, t := range op.terms {
		if t.Vanishes() {
			op.log.Debug().Stringer("term", t).Msg("dropping vanishing term")
			continue
		}
		kept = append(kept, t)
	}
	clear(op.terms[len(kept):])
	op.terms = kept

	op.Reduce()
	op.Prune(op.opts.precision)

	return nil
}

// Reduce merges terms with identical operator content.
func (op *Operator) Reduce() { op.terms = Reduce(op.terms) }

// Prune drops terms whose coefficient magnitude is below precision.
func (op *Operator) Prune(precision float64) { op.terms = Prune(op.terms, precision) }

// Commutator returns [op, rhs] as a new Operator holding every pairwise
// term commutator, unsimplified. Halves that vanish identically are left
// out and reported at Warn level; they never abort the computation.
func (op *Operator) Commutator(rhs *Operator) *Operator {
	var out []*Term
	if rhs == nil {
		return newWithOptions(out, op.opts)
	}
	for _, a := range op.terms {
		for _, b := range rhs.terms {
			halves, err := a.Commutator(b)
			if err != nil {
				op.log.Warn().Err(err).Msg("commutator creates a vanishing term")
			}
			out = append(out, halves...)
		}
	}

	return newWithOptions(out, op.opts)
}

// Commutes reports whether [op, rhs] is the zero operator.
//
// The commutator is normal-ordered, reduced and pruned at the configured
// precision; the operators commute iff no term survives. This catches
// cancellations across different terms, not only within one pair.
func (op *Operator) Commutes(rhs *Operator) (bool, error) {
	comm := op.Commutator(rhs)
	op.log.Debug().Stringer("commutator", comm).Msg("raw")
	if err := comm.MakeNormalOrder(); err != nil {
		return false, err
	}
	op.log.Debug().Stringer("commutator", comm).Msg("normal ordered")

	return comm.IsZero(), nil
}

// Adjoint returns the Hermitian conjugate as a new Operator.
func (op *Operator) Adjoint() *Operator {
	out := make([]*Term, len(op.terms))
	for k, t := range op.terms {
		out[k] = t.Adjoint()
	}

	return newWithOptions(out, op.opts)
}

// IsHermitian reports whether op − op† normal-orders to zero.
func (op *Operator) IsHermitian() (bool, error) {
	diff := op.Clone()
	for _, t := range op.terms {
		diff.terms = append(diff.terms, t.Adjoint().Scale(-1))
	}
	if err := diff.MakeNormalOrder(); err != nil {
		return false, err
	}

	return diff.IsZero(), nil
}
