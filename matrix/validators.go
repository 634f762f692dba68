// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for nil/shape/square checks shared by the kernels.
//   - Return plain sentinels; facades wrap them with matrixErrorf.
//
// Note:
//   - Composite validators run in a fixed sequence (NotNil → Shape).

package matrix

import (
	"math"

	"github.com/katalvlaran/numkit/table"
)

// ValidateNotNil ensures m and its storage are non-nil.
// Complexity: O(1).
func ValidateNotNil[V table.Value, W table.Float](m *Matrix[V, W]) error {
	if m == nil || m.Table == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
func ValidateSameShape[V table.Value, W table.Float](a, b *Matrix[V, W]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols() == b.Rows().
func ValidateMulCompatible[V table.Value, W table.Float](a, b *Matrix[V, W]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateSquare ensures m is non-nil, square and has at least one element.
// Errors: ErrNilMatrix, ErrNonSquare, ErrEmpty (in that order).
func ValidateSquare[V table.Value, W table.Float](m *Matrix[V, W]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return ErrNonSquare
	}
	if m.IsEmpty() {
		return ErrEmpty
	}

	return nil
}

// ValidateVecLen ensures len(x) == n.
func ValidateVecLen[W table.Float](x []W, n int) error {
	if len(x) != n {
		return ErrDimensionMismatch
	}

	return nil
}

// validateRowStochastic checks |Σ_j a[i,j] - 1| <= eps for every row of the
// n×n working copy a. Assumes len(a) == n*n.
func validateRowStochastic[W table.Float](a []W, n int, eps float64) error {
	var acc W
	for i := 0; i < n; i++ {
		acc = 0
		for _, v := range a[i*n : (i+1)*n] {
			acc += v
		}
		if !(math.Abs(float64(acc)-1) <= eps) { // NaN sums fail too
			return ErrNotStochastic
		}
	}

	return nil
}
