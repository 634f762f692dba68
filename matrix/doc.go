// SPDX-License-Identifier: MIT

// Package matrix layers numeric linear algebra over table.Table.
//
// A Matrix[V, W] embeds a *table.Table[V] for storage and row/column views and
// adds arithmetic, multiplication, transposition and dominant-eigenvalue
// estimation. V is the element type (integer or floating), W is the floating
// working precision used for products, norms and eigenvalue estimates.
//
// The package provides:
//
//   - Constructors: New, FromTable, FromRows, Identity, AllOnes, Parse.
//   - Element-wise arithmetic: Scale, Divide, Add, Sub, Neg (plus *InPlace forms).
//   - Products: Mul (row view of A · column view of B), MulVec, Transpose.
//   - Spectral estimates: PowerIterate / PowerIteration for the dominant
//     eigenvalue, Deflate for Wielandt deflation, and
//     SecondLargestEigenvalueOfStochasticSquareMatrix for Markov chains.
//
// Errors are package-level sentinels (see errors.go) wrapped with an operation
// tag; match them with errors.Is. Iterative routines accept functional options
// (WithMaxIterations, WithTolerance, WithLogger, ...).
package matrix
