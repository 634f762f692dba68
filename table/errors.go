// SPDX-License-Identifier: MIT
// Package table: sentinel error set.
// Every algorithm returns one of these (possibly wrapped with call-site context);
// tests MUST check them via errors.Is.

package table

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds indicates an index (row, column or view position) outside valid bounds.
	ErrOutOfBounds = errors.New("table: index out of bounds")

	// ErrDimensionMismatch indicates incompatible shapes or lengths between operands.
	ErrDimensionMismatch = errors.New("table: dimension mismatch")

	// ErrOutOfMemory indicates the requested buffer cannot be allocated
	// (rows*cols overflows or exceeds the runtime allocation limit).
	ErrOutOfMemory = errors.New("table: out of memory")

	// ErrInvalidDimensions indicates negative dimensions or a non-positive column
	// count where one is required.
	ErrInvalidDimensions = errors.New("table: invalid dimensions")

	// ErrInvalidPermutation indicates a slice that is not a 0-based permutation of [0,n).
	ErrInvalidPermutation = errors.New("table: invalid permutation")

	// ErrForeignIterator indicates an iterator used with a table or view it does not belong to.
	ErrForeignIterator = errors.New("table: iterator belongs to another view")

	// ErrInvalidNorm indicates an Lp exponent that is not > 0 (or +Inf).
	ErrInvalidNorm = errors.New("table: norm exponent must be > 0")

	// ErrSyntax indicates malformed textual input to Parse.
	ErrSyntax = errors.New("table: syntax error")
)

// Method tags used in error wrappers.
const (
	ctxAt          = "At"
	ctxSet         = "Set"
	ctxNew         = "New"
	ctxFromRows    = "FromRows"
	ctxFromSlice   = "FromSlice"
	ctxFromRange   = "FromRange"
	ctxRow         = "Row"
	ctxColumn      = "Column"
	ctxSwapRows    = "SwapRows"
	ctxSwapCols    = "SwapColumns"
	ctxPermuteRows = "PermuteRows"
	ctxPermuteCols = "PermuteColumns"
	ctxApplyMap    = "ApplyPermutationMap"
	ctxInsert      = "Insert"
	ctxColumnSum   = "ColumnSum"
	ctxRowSum      = "RowSum"
	ctxLpNorms     = "LpNorms"
	ctxDot         = "Dot"
	ctxParse       = "Parse"
	ctxZip         = "ZipInPlace"
)

// tableErrorf wraps err as "Table.<method>: err", preserving the sentinel via %w.
func tableErrorf(method string, err error) error {
	return fmt.Errorf("Table.%s: %w", method, err)
}

// cellErrorf wraps err with the method tag and the offending coordinates.
func cellErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Table.%s(%d,%d): %w", method, row, col, err)
}
