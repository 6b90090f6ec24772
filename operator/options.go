// SPDX-License-Identifier: MIT

// Package operator: functional configuration for Operator instances.
// This file defines:
//   - documented defaults (constants),
//   - Option / Options (functional options with internal state),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper that resolves a list of Option into Options.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Every option has an observable effect covered by tests.
package operator

import (
	"math"

	"github.com/rs/zerolog"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrecision is the coefficient magnitude below which Prune drops
	// a term, and the threshold Operator.MakeNormalOrder prunes with.
	DefaultPrecision = 1e-8

	// Epsilon is float64 machine epsilon. ActRight aggregation ignores
	// amplitudes whose magnitude does not exceed it.
	Epsilon = 2.220446049250313e-16
)

// ---------- Internal panic messages ----------

const panicPrecisionInvalid = "operator: WithPrecision: precision must be finite, non-negative"

// ---------- Public option type ----------

// Option mutates Options. Applying the same Option twice is harmless;
// the last writer wins.
type Option func(*Options)

// Options holds the effective configuration of an Operator.
type Options struct {
	precision float64        // >= 0; DefaultPrecision
	logger    zerolog.Logger // zerolog.Nop() unless WithLogger
}

// WithPrecision sets the pruning threshold used by MakeNormalOrder,
// Commutes and IsHermitian.
//
// Panics with a stable message when precision is negative, NaN or Inf.
func WithPrecision(precision float64) Option {
	if math.IsNaN(precision) || math.IsInf(precision, 0) || precision < 0 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = precision }
}

// WithLogger attaches a zerolog logger. The operator scopes it with
// component=operator. Vanishing commutator halves are reported at Warn,
// intermediate commutator forms at Debug.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// defaultOptions returns Options populated with the documented defaults.
func defaultOptions() Options {
	return Options{
		precision: DefaultPrecision,
		logger:    zerolog.Nop(),
	}
}

// gatherOptions applies opts over the defaults, skipping nil entries.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	o.logger = o.logger.With().Str("component", "operator").Logger()

	return o
}

// Precision returns the configured pruning threshold.
func (o Options) Precision() float64 { return o.precision }
