// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Thin, intention-revealing entry points that delegate to the canonical
//     constructors and to the table reductions. No logic is duplicated here.

package matrix

import "github.com/katalvlaran/numkit/table"

const opTrace = "Trace"

// NewZeros returns a zero-filled rows×cols matrix. Alias of New.
func NewZeros[V table.Value, W table.Float](rows, cols int) (*Matrix[V, W], error) {
	return New[V, W](rows, cols)
}

// NewIdentity returns I_n. Alias of Identity.
func NewIdentity[V table.Value, W table.Float](n int) (*Matrix[V, W], error) {
	return Identity[V, W](n)
}

// ZerosLike returns a zero matrix with m's shape.
func ZerosLike[V table.Value, W table.Float](m *Matrix[V, W]) (*Matrix[V, W], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	return New[V, W](m.Rows(), m.Cols())
}

// RowSums returns one sum per row, accumulated in W.
func RowSums[V table.Value, W table.Float](m *Matrix[V, W]) []W {
	return table.RowSums[W](m.Table)
}

// ColumnSums returns one sum per column, accumulated in W.
func ColumnSums[V table.Value, W table.Float](m *Matrix[V, W]) []W {
	return table.ColumnSums[W](m.Table)
}

// Trace returns Σ m[i,i] accumulated in W.
// Errors: ErrNilMatrix, ErrNonSquare, ErrEmpty.
func Trace[V table.Value, W table.Float](m *Matrix[V, W]) (W, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	var acc W
	m.Do(func(i, j int, v V) bool {
		if i == j {
			acc += W(v)
		}
		return true
	})

	return acc, nil
}
