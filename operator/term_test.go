// SPDX-License-Identifier: MIT
package operator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fermion/operator"
)

// TestNewTerm_Validation covers the construction error taxonomy.
func TestNewTerm_Validation(t *testing.T) {
	_, err := operator.NewTerm([]bool{C, A}, []int{0}, 1)
	assert.ErrorIs(t, err, operator.ErrWrongLabels, "length mismatch")

	_, err = operator.NewTermN(3, []bool{C, A}, []int{0, 1}, 1)
	assert.ErrorIs(t, err, operator.ErrWrongLabels, "N mismatch")

	_, err = operator.NewTerm([]bool{C, C}, []int{0, 0}, 1)
	assert.ErrorIs(t, err, operator.ErrVanishingTerm, "c†0 c†0")

	_, err = operator.NewTerm([]bool{A, C, C}, []int{1, 1, 1}, 1)
	assert.ErrorIs(t, err, operator.ErrVanishingTerm, "c1 c†1 c†1")

	_, err = operator.NewTerm([]bool{C}, []int{-2}, 1)
	assert.ErrorIs(t, err, operator.ErrModeOutOfRange)

	term, err := operator.NewTerm([]bool{C, A, C}, []int{0, 0, 0}, 2)
	require.NoError(t, err, "alternating kinds on one mode are valid")
	assert.Equal(t, 3, term.N())
	assert.Equal(t, complex(2, 0), term.Value())
	assert.Equal(t, []bool{C, A, C}, term.Sequence())
	assert.Equal(t, []int{0, 0, 0}, term.Indices())
}

// TestNewTerm_CopiesInput verifies the term does not alias caller slices.
func TestNewTerm_CopiesInput(t *testing.T) {
	seq, idx := []bool{C, A}, []int{0, 1}
	term := MustTerm(t, seq, idx, 1)
	seq[0], idx[0] = A, 5
	assert.Equal(t, []bool{C, A}, term.Sequence())
	assert.Equal(t, []int{0, 1}, term.Indices())

	got := term.Indices()
	got[1] = 9
	assert.Equal(t, []int{0, 1}, term.Indices(), "accessors return copies")
}

// TestConstructors checks the convenience builders.
func TestConstructors(t *testing.T) {
	cd, err := operator.Create(2)
	require.NoError(t, err)
	assert.Equal(t, "(1+0i)*c^{+}_2", cd.String())

	c, err := operator.Annihilate(1)
	require.NoError(t, err)
	assert.Equal(t, "(1+0i)*c_1", c.String())

	n, err := operator.Number(3)
	require.NoError(t, err)
	assert.Equal(t, "(1+0i)*c^{+}_3 c_3", n.String())

	h, err := operator.Hopping(0, 1, -0.5)
	require.NoError(t, err)
	assert.Equal(t, "(-0.5+0i)*c^{+}_0 c_1", h.String())

	assert.Equal(t, 0, operator.Identity(3).N())
	assert.Equal(t, "(3+0i)", operator.Identity(3).String())

	p, err := operator.Product(cd.Scale(2), c.Scale(3))
	require.NoError(t, err)
	assert.Equal(t, "(6+0i)*c^{+}_2 c_1", p.String())

	_, err = operator.Product(cd, cd)
	assert.ErrorIs(t, err, operator.ErrVanishingTerm)
	_, err = operator.Product(cd, nil)
	assert.ErrorIs(t, err, operator.ErrNilTerm)
}

// TestTerm_Adjoint reverses the product, swaps kinds and conjugates.
func TestTerm_Adjoint(t *testing.T) {
	term := MustTerm(t, []bool{C, C, A}, []int{0, 2, 1}, complex(1, 2))
	adj := term.Adjoint()
	assert.Equal(t, []bool{C, A, A}, adj.Sequence())
	assert.Equal(t, []int{1, 2, 0}, adj.Indices())
	assert.Equal(t, complex(1, -2), adj.Value())
	assert.True(t, adj.Adjoint().ExactlyEqual(term))
}

// TestTerm_Validate checks mode indices against the lattice size.
func TestTerm_Validate(t *testing.T) {
	term := MustTerm(t, []bool{C, A}, []int{0, 3}, 1)
	assert.NoError(t, term.Validate(4))
	assert.ErrorIs(t, term.Validate(3), operator.ErrModeOutOfRange)
}

// TestElementarySwap_Involution: two swaps at the same position of two
// operators on distinct modes restore the term exactly.
func TestElementarySwap_Involution(t *testing.T) {
	cases := []struct {
		seq []bool
		idx []int
	}{
		{[]bool{C, A}, []int{0, 1}},
		{[]bool{A, C}, []int{3, 1}},
		{[]bool{C, C}, []int{2, 0}},
		{[]bool{A, A}, []int{1, 2}},
	}
	for _, tc := range cases {
		orig := MustTerm(t, tc.seq, tc.idx, complex(0.5, -1))
		term := orig.Clone()

		aux, err := term.ElementarySwap(0, false)
		require.NoError(t, err)
		assert.Empty(t, aux)
		assert.Equal(t, -orig.Value(), term.Value())
		assert.Equal(t, []int{tc.idx[1], tc.idx[0]}, term.Indices())

		aux, err = term.ElementarySwap(0, false)
		require.NoError(t, err)
		assert.Empty(t, aux)
		assert.True(t, term.ExactlyEqual(orig), "%v vs %v", term, orig)
	}
}

// TestElementarySwap_Anticommutator encodes {c, c†} = 1: swapping c0 c†0
// yields −c†0 c0 plus the contraction 1, with the original coefficient.
func TestElementarySwap_Anticommutator(t *testing.T) {
	term := MustTerm(t, []bool{A, C, A}, []int{0, 0, 1}, 2)
	aux, err := term.ElementarySwap(0, false)
	require.NoError(t, err)
	require.Len(t, aux, 1)
	assert.Equal(t, 1, aux[0].N())
	assert.Equal(t, []int{1}, aux[0].Indices())
	assert.Equal(t, []bool{A}, aux[0].Sequence())
	assert.Equal(t, complex(2, 0), aux[0].Value())

	assert.Equal(t, []bool{C, A, A}, term.Sequence())
	assert.Equal(t, []int{0, 0, 1}, term.Indices())
	assert.Equal(t, complex(-2, 0), term.Value())

	// forceIgnore turns the same swap into a bare sign flip.
	forced := MustTerm(t, []bool{C, A}, []int{4, 4}, 1)
	aux, err = forced.ElementarySwap(0, true)
	require.NoError(t, err)
	assert.Empty(t, aux)
	assert.Equal(t, "(-1+0i)*c_4 c^{+}_4", forced.String())
}

// TestElementarySwap_SameKind: c†0 c0 c†0 contracts to c†0 plus the
// vanishing −c†0 c†0 c0, whose identical neighbours swap without contraction.
func TestElementarySwap_SameKind(t *testing.T) {
	term := MustTerm(t, []bool{C, A, C}, []int{0, 0, 0}, 1)
	aux, err := term.ElementarySwap(1, false)
	require.NoError(t, err)
	require.Len(t, aux, 1)
	assert.Equal(t, "(1+0i)*c^{+}_0", aux[0].String())
	assert.Equal(t, "(-1+0i)*c^{+}_0 c^{+}_0 c_0", term.String())
	assert.True(t, term.Vanishes())

	aux, err = term.ElementarySwap(0, false)
	require.NoError(t, err)
	assert.Empty(t, aux)
	assert.Equal(t, complex(1, 0), term.Value())
}

// TestElementarySwap_Position rejects positions without a right neighbour.
func TestElementarySwap_Position(t *testing.T) {
	term := MustTerm(t, []bool{C, A}, []int{0, 1}, 1)
	for _, pos := range []int{-1, 1, 5} {
		_, err := term.ElementarySwap(pos, false)
		assert.ErrorIs(t, err, operator.ErrPosition, "pos=%d", pos)
	}
}

// TestRearrange_Direct exchanges non-adjacent operators on unrelated modes
// without producing terms.
func TestRearrange_Direct(t *testing.T) {
	term := MustTerm(t, []bool{A, A, C, C}, []int{0, 1, 2, 3}, 1)
	aux, err := term.Rearrange([]bool{C, C, A, A})
	require.NoError(t, err)
	assert.Empty(t, aux)
	assert.Equal(t, []bool{C, C, A, A}, term.Sequence())
	assert.Equal(t, []int{2, 3, 0, 1}, term.Indices())
	assert.Equal(t, complex(1, 0), term.Value())
}

// TestRearrange_Walk needs the swap walk because a middle operator shares
// a mode with an endpoint: c1 c0 c†0 = c1 − c†0 c0 c1.
func TestRearrange_Walk(t *testing.T) {
	term := MustTerm(t, []bool{A, A, C}, []int{1, 0, 0}, 1)
	aux, err := term.Rearrange([]bool{C, A, A})
	require.NoError(t, err)
	require.Len(t, aux, 1)
	assert.Equal(t, "(1+0i)*c_1", aux[0].String())
	assert.Equal(t, "(-1+0i)*c^{+}_0 c_0 c_1", term.String())
}

// TestRearrange_TwoOperators uses a single swap, with contraction when the
// modes match.
func TestRearrange_TwoOperators(t *testing.T) {
	term := MustTerm(t, []bool{A, C}, []int{0, 1}, 1)
	aux, err := term.Rearrange([]bool{C, A})
	require.NoError(t, err)
	assert.Empty(t, aux)
	assert.Equal(t, "(-1+0i)*c^{+}_1 c_0", term.String())

	term = MustTerm(t, []bool{A, C}, []int{2, 2}, 3)
	aux, err = term.Rearrange([]bool{C, A})
	require.NoError(t, err)
	require.Len(t, aux, 1)
	assert.Equal(t, "(3+0i)", aux[0].String())
	assert.Equal(t, "(-3+0i)*c^{+}_2 c_2", term.String())
}

// TestRearrange_Impossible: the target must have the same kinds.
func TestRearrange_Impossible(t *testing.T) {
	term := MustTerm(t, []bool{A, A}, []int{0, 1}, 1)
	_, err := term.Rearrange([]bool{C, A})
	assert.ErrorIs(t, err, operator.ErrWrongOperatorSequence)

	_, err = term.Rearrange([]bool{A})
	assert.ErrorIs(t, err, operator.ErrWrongOperatorSequence)

	aux, err := term.Rearrange([]bool{A, A})
	require.NoError(t, err, "identical pattern is a no-op")
	assert.Empty(t, aux)
}

// TestReorder sorts each block with pure sign flips.
func TestReorder(t *testing.T) {
	term := MustTerm(t, []bool{C, C, A, A}, []int{3, 1, 2, 0}, 1)
	require.NoError(t, term.Reorder(true))
	assert.Equal(t, []int{1, 3, 0, 2}, term.Indices())
	assert.Equal(t, complex(1, 0), term.Value())

	require.NoError(t, term.Reorder(false))
	assert.Equal(t, []int{3, 1, 2, 0}, term.Indices())
	assert.Equal(t, complex(1, 0), term.Value())

	onlyCreation := MustTerm(t, []bool{C, C, C}, []int{2, 1, 0}, 1)
	require.NoError(t, onlyCreation.Reorder(true))
	assert.Equal(t, []int{0, 1, 2}, onlyCreation.Indices())
	assert.Equal(t, complex(-1, 0), onlyCreation.Value(), "reversal of 3 = 3 transpositions")

	mixed := MustTerm(t, []bool{A, C}, []int{0, 1}, 1)
	assert.ErrorIs(t, mixed.Reorder(true), operator.ErrWrongOperatorSequence)
	assert.Equal(t, "(1+0i)*c_0 c^{+}_1", mixed.String(), "left untouched on error")

	empty := operator.Identity(1)
	assert.NoError(t, empty.Reorder(true))
}

// TestMakeNormalOrder_Contraction: c0 c†1 c1 c†0 = c†0 c†1 c0 c1 + c†1 c1.
func TestMakeNormalOrder_Contraction(t *testing.T) {
	term := MustTerm(t, []bool{A, C, A, C}, []int{0, 1, 1, 0}, 1)
	aux, err := term.MakeNormalOrder()
	require.NoError(t, err)
	assert.Equal(t, "(1+0i)*c^{+}_0 c^{+}_1 c_0 c_1", term.String())
	require.Len(t, aux, 1)
	assert.Equal(t, "(1+0i)*c^{+}_1 c_1", aux[0].String())
	assert.True(t, term.IsNormalOrdered())
}

// TestMakeNormalOrder_Idempotent: a normal-ordered term and its auxiliary
// terms produce nothing further.
func TestMakeNormalOrder_Idempotent(t *testing.T) {
	term := MustTerm(t, []bool{A, C, A, C, C}, []int{2, 0, 0, 2, 1}, complex(0, 1))
	aux, err := term.MakeNormalOrder()
	require.NoError(t, err)
	require.NotEmpty(t, aux)

	before := term.String()
	again, err := term.MakeNormalOrder()
	require.NoError(t, err)
	assert.Empty(t, again)
	assert.Equal(t, before, term.String())

	for _, a := range aux {
		assert.True(t, a.IsNormalOrdered(), "%v", a)
		more, err := a.MakeNormalOrder()
		require.NoError(t, err)
		assert.Empty(t, more, "%v", a)
	}
}

// TestMakeNormalOrder_PreservesAction checks term = normal(term) + Σ aux
// on every basis state of three modes.
func TestMakeNormalOrder_PreservesAction(t *testing.T) {
	cases := []struct {
		seq []bool
		idx []int
		val complex128
	}{
		{[]bool{A, C}, []int{0, 0}, 1},
		{[]bool{A, A, C}, []int{1, 0, 0}, 2},
		{[]bool{A, C, A, C}, []int{0, 1, 1, 0}, complex(0, 0.5)},
		{[]bool{A, C, C, A}, []int{2, 0, 2, 1}, 1},
		{[]bool{C, A, C}, []int{0, 0, 0}, 1},
		{[]bool{A, C, A, C, C}, []int{1, 1, 0, 0, 2}, -1},
		{[]bool{A, A, C, C}, []int{0, 1, 0, 1}, 1},
		{[]bool{C, C, A, A}, []int{2, 1, 1, 2}, 3},
	}
	basis := FullBasis(t, 3)
	for _, tc := range cases {
		orig := MustTerm(t, tc.seq, tc.idx, tc.val)
		ordered := orig.Clone()
		aux, err := ordered.MakeNormalOrder()
		require.NoError(t, err)
		require.True(t, ordered.IsNormalOrdered())

		want := operator.New([]*operator.Term{orig.Clone()})
		got := operator.New(append([]*operator.Term{ordered}, aux...))
		RequireSameAction(t, want, got, basis)
	}
}

// TestEqual covers exact and algebraic equality.
func TestEqual(t *testing.T) {
	a := MustTerm(t, []bool{C, C}, []int{1, 0}, -1)
	b := MustTerm(t, []bool{C, C}, []int{0, 1}, 1)
	assert.False(t, a.ExactlyEqual(b))
	assert.True(t, operator.Equal(a, b), "−c†1 c†0 = c†0 c†1")
	assert.True(t, a.Equal(a.Clone()))
	assert.Equal(t, "(-1+0i)*c^{+}_1 c^{+}_0", a.String(), "Equal must not mutate its arguments")

	// c0 c†0 = 1 − c†0 c0: same core as −c†0 c0 but a different remainder.
	c := MustTerm(t, []bool{A, C}, []int{0, 0}, 1)
	d := MustTerm(t, []bool{C, A}, []int{0, 0}, -1)
	assert.False(t, operator.Equal(c, d))

	assert.True(t, operator.Equal(nil, nil))
	assert.False(t, operator.Equal(c, nil))
}

// TestCommutator_Halves checks coefficients and vanishing halves.
func TestCommutator_Halves(t *testing.T) {
	cd := MustTerm(t, []bool{C}, []int{0}, 2)
	c := MustTerm(t, []bool{A}, []int{0}, 3)
	halves, err := cd.Commutator(c)
	require.NoError(t, err)
	require.Len(t, halves, 2)
	assert.Equal(t, "(6+0i)*c^{+}_0 c_0", halves[0].String())
	assert.Equal(t, "(-6+0i)*c_0 c^{+}_0", halves[1].String())
	assert.False(t, operator.Equal(halves[0], halves[1]))
	assert.False(t, cd.Commutes(c))

	halves, err = cd.Commutator(cd)
	assert.ErrorIs(t, err, operator.ErrVanishingTerm)
	assert.Empty(t, halves)
	assert.True(t, cd.Commutes(cd), "[c†0, c†0] has no surviving half")

	n := MustTerm(t, []bool{C, A}, []int{0, 0}, 1)
	halves, err = n.Commutator(cd)
	assert.ErrorIs(t, err, operator.ErrVanishingTerm)
	assert.Len(t, halves, 1)
	assert.False(t, n.Commutes(cd), "[n0, c†0] = c†0")

	_, err = n.Commutator(nil)
	assert.ErrorIs(t, err, operator.ErrNilTerm)
}

// TestCommutes_Bilinears: number operators and disjoint hoppings commute;
// distinct creation operators anticommute, so they do not commute.
func TestCommutes_Bilinears(t *testing.T) {
	n0 := MustTerm(t, []bool{C, A}, []int{0, 0}, 1)
	n1 := MustTerm(t, []bool{C, A}, []int{1, 1}, 1)
	assert.True(t, n0.Commutes(n1))

	h01 := MustTerm(t, []bool{C, A}, []int{0, 1}, 1)
	h23 := MustTerm(t, []bool{C, A}, []int{2, 3}, 1)
	assert.True(t, h01.Commutes(h23))

	cd0 := MustTerm(t, []bool{C}, []int{0}, 1)
	cd1 := MustTerm(t, []bool{C}, []int{1}, 1)
	assert.False(t, cd0.Commutes(cd1))
}

// TestReduce merges like terms and is idempotent.
func TestReduce(t *testing.T) {
	terms := []*operator.Term{
		MustTerm(t, []bool{C, A}, []int{0, 0}, 1),
		MustTerm(t, []bool{C, A}, []int{1, 1}, 2),
		nil,
		MustTerm(t, []bool{C, A}, []int{0, 0}, 3),
		operator.Identity(1),
		operator.Identity(-0.5),
	}
	terms = operator.Reduce(terms)
	require.Len(t, terms, 3)
	assert.Equal(t, "(4+0i)*c^{+}_0 c_0", terms[0].String())
	assert.Equal(t, "(2+0i)*c^{+}_1 c_1", terms[1].String())
	assert.Equal(t, "(0.5+0i)", terms[2].String())

	again := operator.Reduce(terms)
	require.Len(t, again, 3)
	assert.Equal(t, complex(4, 0), again[0].Value())
}

// TestPrune removes exactly the terms below precision and is idempotent.
func TestPrune(t *testing.T) {
	mk := func() []*operator.Term {
		return []*operator.Term{
			operator.Identity(1e-9),
			MustTerm(t, []bool{C}, []int{0}, 0.5),
			MustTerm(t, []bool{A}, []int{1}, complex(0, 1e-3)),
			MustTerm(t, []bool{A}, []int{2}, 1e-2),
		}
	}

	terms := operator.Prune(mk(), 1e-2)
	require.Len(t, terms, 2)
	assert.Equal(t, complex(0.5, 0), terms[0].Value())
	assert.Equal(t, complex(1e-2, 0), terms[1].Value(), "magnitude equal to precision is kept")

	again := operator.Prune(terms, 1e-2)
	assert.Len(t, again, 2)

	assert.Len(t, operator.Prune(mk(), 0), 4)
	assert.Empty(t, operator.Prune(mk(), 1))
}
