// SPDX-License-Identifier: MIT

// Package matrix - constructors and ownership helpers.
//
// Purpose:
//   - Build Matrix values over freshly allocated or adopted table storage.
//   - Shadow the table ownership helpers (Clone, Move, Equal) with *Matrix forms.
//
// Complexity quicksheet:
//   - New/Identity/AllOnes/FromRows/Clone: O(r*c); FromTable/Move: O(1).

package matrix

import "github.com/katalvlaran/numkit/table"

// Operation tags for constructors.
const (
	opNew       = "New"
	opFromTable = "FromTable"
	opFromRows  = "FromRows"
	opIdentity  = "Identity"
	opAllOnes   = "AllOnes"
	opParse     = "Parse"
)

// New returns a zero-filled rows×cols matrix.
// Errors: ErrInvalidDimensions, ErrOutOfMemory (from table.New).
func New[V table.Value, W table.Float](rows, cols int) (*Matrix[V, W], error) {
	t, err := table.New[V](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	return &Matrix[V, W]{Table: t}, nil
}

// FromTable adopts t as the storage of a new Matrix; no copy is made, so later
// writes through either handle are visible through both.
// Errors: ErrNilMatrix when t is nil.
func FromTable[V table.Value, W table.Float](t *table.Table[V]) (*Matrix[V, W], error) {
	if t == nil {
		return nil, matrixErrorf(opFromTable, ErrNilMatrix)
	}

	return &Matrix[V, W]{Table: t}, nil
}

// FromRows builds a matrix from a nested slice; see table.FromRows for the
// ragged-row policy (first row authoritative, short rows rejected).
func FromRows[V table.Value, W table.Float](src [][]V) (*Matrix[V, W], error) {
	t, err := table.FromRows[V](src)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}

	return &Matrix[V, W]{Table: t}, nil
}

// Parse reads a matrix in either table text form ({{..},{..}} or [..;..];).
func Parse[V table.Value, W table.Float](s string) (*Matrix[V, W], error) {
	t, err := table.Parse[V](s)
	if err != nil {
		return nil, matrixErrorf(opParse, err)
	}

	return &Matrix[V, W]{Table: t}, nil
}

// Identity returns the n×n identity matrix.
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func Identity[V table.Value, W table.Float](n int) (*Matrix[V, W], error) {
	m, err := New[V, W](n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		_ = m.Set(i, i, 1) // in range by construction
	}

	return m, nil
}

// AllOnes returns a rows×cols matrix with every element set to 1.
func AllOnes[V table.Value, W table.Float](rows, cols int) (*Matrix[V, W], error) {
	t, err := table.NewFilled[V](rows, cols, 1)
	if err != nil {
		return nil, matrixErrorf(opAllOnes, err)
	}

	return &Matrix[V, W]{Table: t}, nil
}

// Clone returns a deep copy of m.
func (m *Matrix[V, W]) Clone() *Matrix[V, W] {
	return &Matrix[V, W]{Table: m.Table.Clone()}
}

// Move transfers m's storage into a new Matrix and leaves m empty (0×0).
func (m *Matrix[V, W]) Move() *Matrix[V, W] {
	return &Matrix[V, W]{Table: m.Table.Move()}
}

// Equal reports whether m and other have identical shape and elements.
// Two nil matrices are equal.
func (m *Matrix[V, W]) Equal(other *Matrix[V, W]) bool {
	return Equal(m, other)
}

// Equal reports whether a and b have identical shape and elements.
// Floating elements are compared exactly; use table views with a tolerance
// (or go-cmp in tests) for approximate comparison.
func Equal[V table.Value, W table.Float](a, b *Matrix[V, W]) bool {
	if a == nil || b == nil {
		return a == b
	}

	return table.Equal(a.Table, b.Table)
}
