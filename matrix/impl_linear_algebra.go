// SPDX-License-Identifier: MIT
// Package matrix - element-wise arithmetic, products and transposition.
//
// Purpose:
//   - In-place operators (ScaleInPlace, DivideInPlace, AddInPlace, SubInPlace,
//     Transpose) mutate the receiver; the free-function mirrors (Scale, Divide,
//     Add, Sub, Neg, Mul, Transposed) return a fresh Matrix and never touch
//     their operands.
//
// Determinism & Policy:
//   - Every operator validates shapes before its first write, so a failed call
//     leaves the receiver unchanged.
//   - Products accumulate in W and convert back to V once per cell; integer
//     matrices therefore truncate only the final sum.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/numkit/table"
)

// Operation name constants for unified error wrapping.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opTranspose  = "Transpose"
	opScale      = "Scale"
	opDivide     = "Divide"
	opNeg        = "Neg"
	opMulVec     = "MulVec"
	opPower      = "PowerIterate"
	opDeflate    = "Deflate"
	opSecond     = "SecondLargestEigenvalue"
	opStochastic = "SecondLargestEigenvalueOfStochasticSquareMatrix"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ScaleInPlace multiplies every element by alpha.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func (m *Matrix[V, W]) ScaleInPlace(alpha V) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opScale, err)
	}
	m.Apply(func(_, _ int, v V) V { return v * alpha })

	return nil
}

// DivideInPlace divides every element by alpha.
// Errors: ErrDivideByZero when alpha == 0; m is untouched.
func (m *Matrix[V, W]) DivideInPlace(alpha V) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opDivide, err)
	}
	if alpha == 0 {
		return matrixErrorf(opDivide, ErrDivideByZero)
	}
	m.Apply(func(_, _ int, v V) V { return v / alpha })

	return nil
}

// AddInPlace performs m += b element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch (checked before any write).
func (m *Matrix[V, W]) AddInPlace(b *Matrix[V, W]) error {
	if err := ValidateSameShape(m, b); err != nil {
		return matrixErrorf(opAdd, err)
	}
	if err := m.ZipInPlace(b.Table, func(x, y V) V { return x + y }); err != nil {
		return matrixErrorf(opAdd, err)
	}

	return nil
}

// SubInPlace performs m -= b element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch (checked before any write).
func (m *Matrix[V, W]) SubInPlace(b *Matrix[V, W]) error {
	if err := ValidateSameShape(m, b); err != nil {
		return matrixErrorf(opSub, err)
	}
	if err := m.ZipInPlace(b.Table, func(x, y V) V { return x - y }); err != nil {
		return matrixErrorf(opSub, err)
	}

	return nil
}

// Scale returns alpha·m as a new matrix.
func Scale[V table.Value, W table.Float](m *Matrix[V, W], alpha V) (*Matrix[V, W], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := m.Clone()
	_ = res.ScaleInPlace(alpha) // m checked above

	return res, nil
}

// Divide returns m/alpha as a new matrix.
// Errors: ErrNilMatrix, ErrDivideByZero.
func Divide[V table.Value, W table.Float](m *Matrix[V, W], alpha V) (*Matrix[V, W], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDivide, err)
	}
	if alpha == 0 {
		return nil, matrixErrorf(opDivide, ErrDivideByZero)
	}
	res := m.Clone()
	_ = res.DivideInPlace(alpha) // alpha checked above

	return res, nil
}

// Add returns a + b as a new matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add[V table.Value, W table.Float](a, b *Matrix[V, W]) (*Matrix[V, W], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	res := a.Clone()
	if err := res.AddInPlace(b); err != nil {
		return nil, err
	}

	return res, nil
}

// Sub returns a - b as a new matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub[V table.Value, W table.Float](a, b *Matrix[V, W]) (*Matrix[V, W], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	res := a.Clone()
	if err := res.SubInPlace(b); err != nil {
		return nil, err
	}

	return res, nil
}

// Neg returns -m as a new matrix. Unary plus is Clone.
// For unsigned V the result wraps modulo 2^n, as Go's unary minus does.
func Neg[V table.Value, W table.Float](m *Matrix[V, W]) (*Matrix[V, W], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNeg, err)
	}
	res := m.Clone()
	res.Apply(func(_, _ int, v V) V { return -v })

	return res, nil
}

// Mul returns the matrix product a·b.
// MAIN DESCRIPTION:
//   - Result is a.Rows()×b.Cols(); cell (i,j) is table.Dot[W] of row i of a and
//     column j of b.
//
// Implementation:
//   - Stage 1: validate a.Cols() == b.Rows().
//   - Stage 2: allocate the result.
//   - Stage 3: i→j loop; one strided dot product per cell, accumulated in W.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r·k·c), Space O(r·c) for the result.
func Mul[V table.Value, W table.Float](a, b *Matrix[V, W]) (*Matrix[V, W], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	rows, cols := a.Rows(), b.Cols()
	res, err := New[V, W](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		ar, bc table.View[V]
		d      W
		i, j   int
	)
	for i = 0; i < rows; i++ {
		if ar, err = a.Row(i); err != nil {
			return nil, matrixErrorf(opMul, err)
		}
		for j = 0; j < cols; j++ {
			if bc, err = b.Column(j); err != nil {
				return nil, matrixErrorf(opMul, err)
			}
			if d, err = table.Dot[W](ar, bc); err != nil {
				return nil, matrixErrorf(opMul, err)
			}
			_ = res.Set(i, j, V(d)) // in range by construction
		}
	}

	return res, nil
}

// Transpose replaces m with its transpose in place; dimensions swap.
// Implementation:
//   - Stage 1: copy row i of m into column i of a cols×rows scratch table.
//   - Stage 2: Swap the scratch storage into m.
//
// Notes:
//   - Views and iterators taken before the call are invalidated.
//
// Complexity: Time O(r*c), Space O(r*c).
func (m *Matrix[V, W]) Transpose() error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Dims()
	scratch, err := table.New[V](cols, rows)
	if err != nil {
		return matrixErrorf(opTranspose, err)
	}

	var src, dst table.View[V]
	for i := 0; i < rows; i++ {
		if src, err = m.Row(i); err != nil {
			return matrixErrorf(opTranspose, err)
		}
		if dst, err = scratch.Column(i); err != nil {
			return matrixErrorf(opTranspose, err)
		}
		dst.Assign(src.Values())
	}
	m.Table.Swap(scratch)

	return nil
}

// Transposed returns mᵀ as a new matrix; m is unchanged.
func Transposed[V table.Value, W table.Float](m *Matrix[V, W]) (*Matrix[V, W], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res := m.Clone()
	if err := res.Transpose(); err != nil {
		return nil, err
	}

	return res, nil
}

// MulVec returns y = m·x computed in W.
// Errors: ErrNilMatrix, ErrDimensionMismatch when len(x) != m.Cols().
// Complexity: O(r*c).
func (m *Matrix[V, W]) MulVec(x []W) ([]W, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	y := make([]W, m.Rows())
	m.Do(func(i, j int, v V) bool {
		y[i] += W(v) * x[j]
		return true
	})

	return y, nil
}
