// SPDX-License-Identifier: MIT

// Package table provides Table, a generic fixed-shape two-dimensional container
// with contiguous row-major storage, and View, the strided window used to walk it.
//
// The package provides:
//
//   - Table[V]: exclusively owned buffer of rows*cols elements, element (i,j) at
//     offset i*cols + j. Copy is deep (Clone), Move transfers the buffer and empties
//     the source, Swap exchanges two tables in O(1).
//   - View[V] and Iterator[V]: one strided abstraction (origin, stride, length) that
//     serves flat, per-row and per-column random-access iteration.
//   - Structural mutation: SwapRows/SwapColumns, PermuteRows/PermuteColumns,
//     ApplyPermutationMap (value relabeling) and Insert.
//   - Reductions accumulated in a working precision W: RowSums, ColumnSums, Sum,
//     Mean, Lp norms and the matching in-place normalizations.
//   - A textual interchange format: String ({{a,b},{c,d}}), Dump ([a,b;c,d];) and Parse.
//
// Errors are package sentinels (ErrOutOfBounds, ErrDimensionMismatch, ...) wrapped
// with call-site context; match them with errors.Is. Public methods never panic on
// user input.
//
// A Table is not safe for concurrent mutation; callers must hold exclusive access
// for the duration of any mutating call.
package table
