// SPDX-License-Identifier: MIT

package operator

import (
	"fmt"
	"strconv"
	"strings"
)

// Textual form
//
//	term     = value [ "*" op { " " op } ]
//	op       = "c^{+}_" index | "c^+_" index | "c_" index
//	operator = "0" | term { " + " term }
//
// value is any form strconv.ParseComplex accepts, e.g. "(1+0i)", "-2", "0.5i".
// When the value is omitted ("c^{+}_0 c_1") it defaults to 1. String output
// always uses the "(re+imi)*c^{+}_i c_j" spelling and round-trips.
const (
	creationPrefix      = "c^{+}_"
	creationShortPrefix = "c^+_"
	annihilationPrefix  = "c_"
	termSeparator       = " + "
)

// String renders the term, creation operators as c^{+}_i and annihilation
// operators as c_i.
func (t *Term) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v", t.value)
	for k := 0; k < t.n; k++ {
		if k == 0 {
			b.WriteByte('*')
		} else {
			b.WriteByte(' ')
		}
		if t.sequence[k] {
			b.WriteString(creationPrefix)
		} else {
			b.WriteString(annihilationPrefix)
		}
		b.WriteString(strconv.Itoa(t.indices[k]))
	}

	return b.String()
}

// String renders the sum of terms; the empty operator renders "0".
func (op *Operator) String() string {
	if len(op.terms) == 0 {
		return "0"
	}
	parts := make([]string, len(op.terms))
	for k, t := range op.terms {
		parts[k] = t.String()
	}

	return strings.Join(parts, termSeparator)
}

// ParseTerm reads a single term in the textual form documented above.
// Construction errors (ErrVanishingTerm) pass through unchanged.
func ParseTerm(s string) (*Term, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("ParseTerm: empty input: %w", ErrParse)
	}

	var (
		value complex128 = 1
		body             = s
	)
	if head, rest, ok := strings.Cut(s, "*"); ok {
		v, err := strconv.ParseComplex(strings.TrimSpace(head), 128)
		if err != nil {
			return nil, fmt.Errorf("ParseTerm(%q): coefficient: %w", s, ErrParse)
		}
		value, body = v, rest
	} else if v, err := strconv.ParseComplex(s, 128); err == nil {
		return Identity(v), nil
	}

	fields := strings.Fields(body)
	if len(fields) == 0 {
		return nil, fmt.Errorf("ParseTerm(%q): no operators after '*': %w", s, ErrParse)
	}
	seq := make([]bool, 0, len(fields))
	idx := make([]int, 0, len(fields))
	for _, f := range fields {
		creation, index, err := parseElementary(f)
		if err != nil {
			return nil, fmt.Errorf("ParseTerm(%q): %w", s, err)
		}
		seq = append(seq, creation)
		idx = append(idx, index)
	}

	return NewTerm(seq, idx, value)
}

// parseElementary reads one "c^{+}_i" / "c^+_i" / "c_i" token.
func parseElementary(tok string) (creation bool, index int, err error) {
	var digits string
	switch {
	case strings.HasPrefix(tok, creationPrefix):
		creation, digits = true, tok[len(creationPrefix):]
	case strings.HasPrefix(tok, creationShortPrefix):
		creation, digits = true, tok[len(creationShortPrefix):]
	case strings.HasPrefix(tok, annihilationPrefix):
		digits = tok[len(annihilationPrefix):]
	default:
		return false, 0, fmt.Errorf("token %q: %w", tok, ErrParse)
	}
	index, convErr := strconv.Atoi(digits)
	if convErr != nil || index < 0 {
		return false, 0, fmt.Errorf("token %q: bad mode index: %w", tok, ErrParse)
	}

	return creation, index, nil
}

// ParseOperator reads a sum of terms separated by " + ". "0" and the empty
// string give the zero operator.
func ParseOperator(s string, opts ...Option) (*Operator, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "0" {
		return New(nil, opts...), nil
	}
	parts := strings.Split(s, termSeparator)
	terms := make([]*Term, 0, len(parts))
	for _, p := range parts {
		t, err := ParseTerm(p)
		if err != nil {
			return nil, fmt.Errorf("ParseOperator: %w", err)
		}
		terms = append(terms, t)
	}

	return New(terms, opts...), nil
}
