// SPDX-License-Identifier: MIT

// Package matrix: domain types.
package matrix

import "github.com/katalvlaran/numkit/table"

// Matrix is a rows×cols table of V with linear-algebra operations computed in
// working precision W.
//
// The embedded *table.Table supplies storage, At/Set, Row/Column views,
// structural mutators and the text formats. Matrix methods that shadow table
// methods (Clone, Move, Equal) return or accept *Matrix instead.
type Matrix[V table.Value, W table.Float] struct {
	*table.Table[V]
}

// Estimate is the result of a power iteration run.
type Estimate[W table.Float] struct {
	// Value is the final norm estimate, i.e. |λ| of the dominant eigenvalue.
	Value W

	// Rayleigh is xᵀAx for the final unit vector x; it carries the sign of λ.
	Rayleigh W

	// Vector is the final unit-length iterate (approximate eigenvector).
	Vector []W

	// Iterations is the number of matrix-vector products performed.
	Iterations int

	// Converged reports whether successive estimates agreed within tolerance
	// before the iteration cap was reached.
	Converged bool
}
