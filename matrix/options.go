// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - The policy lives on each Matrix. Clone, Minor, Transpose, Scale and the
//     results of binary kernels inherit the policy of the left operand.
//   - validateNaNInf only has an effect on floating and complex element types;
//     integers can never be NaN or Inf.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on
	// ingestion (FromSlice, FromRows, decode), Set and Apply.
	DefaultValidateNaNInf = true

	// DefaultEpsilon is the singularity tolerance used by Inverse: a
	// determinant d with |d| <= eps is treated as zero. The default 0 means an
	// exact zero test.
	DefaultEpsilon = 0.0
)

// ---------- Internal panic messages (no magic strings) ----------

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options is the resolved numeric policy of a Matrix.
// Fields are unexported; use the WithX constructors.
type Options struct {
	validateNaNInf bool    // reject NaN/±Inf on ingestion and writes
	eps            float64 // singularity tolerance for Inverse (>= 0)
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		validateNaNInf: DefaultValidateNaNInf,
		eps:            DefaultEpsilon,
	}
}

// gatherOptions applies opts over the defaults in order; nil options are skipped.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithValidateNaNInf enables or disables the finite-only numeric policy.
func WithValidateNaNInf(on bool) Option {
	return func(o *Options) { o.validateNaNInf = on }
}

// WithEpsilon sets the singularity tolerance used by Inverse.
// Panics if eps is negative, NaN or ±Inf (programmer error).
//
// AI-Hints:
//   - Keep 0 for integral or exactly representable inputs.
//   - Use a small positive eps (e.g. 1e-12) when inputs are results of prior
//     floating computations and cancellation may leave a tiny residue.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// ValidatesNaNInf reports whether the finite-only policy is enabled.
func (o Options) ValidatesNaNInf() bool { return o.validateNaNInf }

// Epsilon returns the singularity tolerance.
func (o Options) Epsilon() float64 { return o.eps }
