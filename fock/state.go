// SPDX-License-Identifier: MIT

package fock

import (
	"fmt"
	"math/bits"
	"strings"
)

// MaxWidth is the largest number of modes a State can hold.
const MaxWidth = 64

// forbiddenWidth marks the sentinel; no valid State has a negative width.
const forbiddenWidth = -1

// State is an occupation-number basis vector over a fixed number of modes.
// Bit i of mask is the occupation of mode i. The zero value is the
// empty state over zero modes.
//
// State is comparable, so it can be used directly as a map key.
type State struct {
	width int
	mask  uint64
}

// Forbidden is the result of an operator action that annihilates a basis
// state identically (Pauli exclusion). It is unequal to every valid State.
var Forbidden = State{width: forbiddenWidth}

// New returns the empty (vacuum) state over width modes.
// Complexity: O(1).
func New(width int) (State, error) {
	if width < 0 || width > MaxWidth {
		return Forbidden, fmt.Errorf("New(%d): %w", width, ErrWidth)
	}

	return State{width: width}, nil
}

// FromOccupation returns the state over width modes with exactly the listed
// modes occupied. Repeated modes are idempotent.
func FromOccupation(width int, modes ...int) (State, error) {
	s, err := New(width)
	if err != nil {
		return Forbidden, err
	}
	for _, m := range modes {
		if m < 0 || m >= width {
			return Forbidden, fmt.Errorf("FromOccupation: mode %d: %w", m, ErrModeOutOfRange)
		}
		s.mask |= 1 << uint(m)
	}

	return s, nil
}

// Parse reads an occupation string such as "0101"; character i is mode i.
// An optional "|...>" wrapper is accepted so that String output round-trips.
func Parse(s string) (State, error) {
	body := strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(s), "|"), ">")
	st, err := New(len(body))
	if err != nil {
		return Forbidden, err
	}
	for i, r := range body {
		switch r {
		case '0':
		case '1':
			st.mask |= 1 << uint(i)
		default:
			return Forbidden, fmt.Errorf("Parse(%q): %w", s, ErrParse)
		}
	}

	return st, nil
}

// Width returns the number of modes, or -1 for Forbidden.
func (s State) Width() int { return s.width }

// IsForbidden reports whether s is the Forbidden sentinel.
func (s State) IsForbidden() bool { return s.width == forbiddenWidth }

// Valid reports whether mode i exists in s.
func (s State) Valid(i int) bool { return i >= 0 && i < s.width }

// Occupied reports whether mode i is occupied. Modes outside the state are
// reported empty.
func (s State) Occupied(i int) bool {
	if !s.Valid(i) {
		return false
	}

	return s.mask&(1<<uint(i)) != 0
}

// Set returns a copy of s with mode i set to occupied. An index outside the
// state yields Forbidden.
func (s State) Set(i int, occupied bool) State {
	if !s.Valid(i) {
		return Forbidden
	}
	if occupied {
		s.mask |= 1 << uint(i)
	} else {
		s.mask &^= 1 << uint(i)
	}

	return s
}

// Flip returns a copy of s with the occupation of mode i inverted.
// An index outside the state yields Forbidden.
func (s State) Flip(i int) State {
	if !s.Valid(i) {
		return Forbidden
	}
	s.mask ^= 1 << uint(i)

	return s
}

// Count returns the number of occupied modes.
func (s State) Count() int {
	if s.IsForbidden() {
		return 0
	}

	return bits.OnesCount64(s.mask)
}

// ParityBelow returns the number of occupied modes with index strictly
// less than i. Indices past the last mode count every occupied mode.
//
// This is the length of the Jordan–Wigner string: moving an elementary
// operator at mode i past the occupied modes below it costs
// (-1)^ParityBelow(i).
func (s State) ParityBelow(i int) int {
	if i <= 0 || s.IsForbidden() {
		return 0
	}
	if i >= MaxWidth {
		return bits.OnesCount64(s.mask)
	}

	return bits.OnesCount64(s.mask & (1<<uint(i) - 1))
}

// Mask returns the raw occupation bits (bit i = mode i).
func (s State) Mask() uint64 { return s.mask }

// Equal reports whether s and o are the same state.
func (s State) Equal(o State) bool { return s == o }

// Compare orders states by width, then by occupation mask. It returns
// -1, 0 or +1. Forbidden sorts before every valid state.
func (s State) Compare(o State) int {
	switch {
	case s.width < o.width:
		return -1
	case s.width > o.width:
		return 1
	case s.mask < o.mask:
		return -1
	case s.mask > o.mask:
		return 1
	}

	return 0
}

// Less reports whether s orders strictly before o.
func (s State) Less(o State) bool { return s.Compare(o) < 0 }

// String renders the state as |n_0 n_1 ...>, mode 0 first.
func (s State) String() string {
	if s.IsForbidden() {
		return "|forbidden>"
	}
	var b strings.Builder
	b.Grow(s.width + 2)
	b.WriteByte('|')
	for i := 0; i < s.width; i++ {
		if s.Occupied(i) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	b.WriteByte('>')

	return b.String()
}
