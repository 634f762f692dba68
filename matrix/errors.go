// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All operations return these sentinels wrapped with an operation tag; tests
// MUST check them via errors.Is. No operation panics on user input; only the
// WithX option constructors panic, and only on nonsensical arguments.

package matrix

import (
	"errors"

	"github.com/katalvlaran/numkit/table"
)

var (
	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrEmpty signals that an operation needs at least one element
	// (or, for deflation, an order of at least 2).
	ErrEmpty = errors.New("matrix: matrix is empty")

	// ErrDivideByZero is returned by Divide/DivideInPlace for a zero divisor.
	ErrDivideByZero = errors.New("matrix: division by zero")

	// ErrNotStochastic signals a row whose sum differs from 1 by more than eps.
	ErrNotStochastic = errors.New("matrix: rows do not sum to 1 within eps")

	// ErrDegenerate signals a zero seed vector or a zero pivot component in a
	// deflation vector.
	ErrDegenerate = errors.New("matrix: degenerate vector")
)

// Shared with package table so a single errors.Is check matches both layers.
var (
	ErrOutOfBounds       = table.ErrOutOfBounds
	ErrDimensionMismatch = table.ErrDimensionMismatch
	ErrOutOfMemory       = table.ErrOutOfMemory
	ErrInvalidDimensions = table.ErrInvalidDimensions
)
