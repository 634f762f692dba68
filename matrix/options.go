// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the iterative eigenvalue routines.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters over the defaults.
//
// Notes:
//   - Options only affect PowerIterate, PowerIteration, the second-eigenvalue
//     routines and their deflation step. Arithmetic takes no options.
//   - The logger defaults to zap.NewNop(), so the package is silent unless a
//     caller injects a logger.
package matrix

import (
	"math"

	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxIterations caps the number of matrix-vector products per power iteration.
	DefaultMaxIterations = 10000

	// DefaultTolerance is the absolute difference between consecutive norm
	// estimates below which power iteration is considered converged.
	DefaultTolerance = 1e-6

	// DefaultEpsilon is the allowed deviation of a stochastic row sum from 1.
	DefaultEpsilon = 1e-9

	// DefaultValidateStochastic toggles the row-sum check in
	// SecondLargestEigenvalueOfStochasticSquareMatrix.
	DefaultValidateStochastic = true
)

// ---------- Internal panic messages ----------

const (
	panicMaxIterationsInvalid = "matrix: WithMaxIterations: n must be > 0"
	panicToleranceInvalid     = "matrix: WithTolerance: tol must be finite, non-negative"
	panicEpsilonInvalid       = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicSeedInvalid          = "matrix: WithSeed: seed must be non-empty and finite"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	maxIters           int         // > 0; DefaultMaxIterations
	tol                float64     // >= 0; DefaultTolerance
	eps                float64     // >= 0; DefaultEpsilon
	validateStochastic bool        // DefaultValidateStochastic
	seed               []float64   // nil ⇒ x_k = k+1
	logger             *zap.Logger // never nil after gatherOptions
}

// ---------- Constructors (WithX) ----------

// WithMaxIterations sets the iteration cap for power iteration.
// Panics when n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *Options) { o.maxIters = n }
}

// WithTolerance sets the convergence threshold on |λ_k - λ_{k-1}|.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0.
//   - Stage 2: return a setter that writes tol into Options.
//
// Notes:
//   - The comparison is strict, so tol = 0 disables early termination and every
//     run takes exactly MaxIterations steps.
func WithTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithEpsilon sets the tolerance used when checking that stochastic rows sum to 1.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateStochastic enables the row-sum check (default).
func WithValidateStochastic() Option {
	return func(o *Options) { o.validateStochastic = true }
}

// WithNoValidateStochastic skips the row-sum check and runs the stochastic
// deflation on any square input. The result is only meaningful for
// row-stochastic matrices.
func WithNoValidateStochastic() Option {
	return func(o *Options) { o.validateStochastic = false }
}

// WithSeed replaces the default start vector x_k = k+1.
// The slice is copied. Its length is checked against the matrix order when
// the iteration starts (ErrDimensionMismatch), and an all-zero seed fails
// with ErrDegenerate.
func WithSeed(seed []float64) Option {
	if len(seed) == 0 {
		panic(panicSeedInvalid)
	}
	for _, v := range seed {
		if isNonFinite(v) {
			panic(panicSeedInvalid)
		}
	}
	cp := make([]float64, len(seed))
	copy(cp, seed)

	return func(o *Options) { o.seed = cp }
}

// WithLogger injects a zap logger. Power iteration logs convergence at Debug
// and an exhausted iteration cap at Warn. A nil logger restores the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// NewOptions resolves opts over the defaults. Exposed for callers that want to
// inspect or reuse a resolved configuration.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// MaxIterations returns the effective iteration cap.
func (o Options) MaxIterations() int { return o.maxIters }

// Tolerance returns the effective convergence threshold.
func (o Options) Tolerance() float64 { return o.tol }

// Epsilon returns the effective stochastic row-sum tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// gatherOptions applies setters in order over the defaults; last writer wins.
// Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := Options{
		maxIters:           DefaultMaxIterations,
		tol:                DefaultTolerance,
		eps:                DefaultEpsilon,
		validateStochastic: DefaultValidateStochastic,
		logger:             zap.NewNop(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
