// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for arithmetic, products and transposition.
package matrix_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/numkit/matrix"
)

func TestScaleAndDivide(t *testing.T) {
	m := mustInt(t, [][]int{{1, 2}, {3, 4}})
	require.NoError(t, m.ScaleInPlace(3))
	require.Equal(t, []int{3, 6, 9, 12}, m.Data())

	require.NoError(t, m.DivideInPlace(3))
	require.Equal(t, []int{1, 2, 3, 4}, m.Data())

	err := m.DivideInPlace(0)
	require.ErrorIs(t, err, matrix.ErrDivideByZero)
	require.Equal(t, []int{1, 2, 3, 4}, m.Data()) // untouched

	s, err := matrix.Scale(m, -1)
	require.NoError(t, err)
	require.Equal(t, []int{-1, -2, -3, -4}, s.Data())
	require.Equal(t, []int{1, 2, 3, 4}, m.Data()) // operand untouched

	f := mustF64(t, [][]float64{{1, 2}})
	d, err := matrix.Divide(f, 4)
	require.NoError(t, err)
	require.Equal(t, []float64{0.25, 0.5}, d.Data())
	_, err = matrix.Divide(f, 0)
	require.ErrorIs(t, err, matrix.ErrDivideByZero)

	_, err = matrix.Scale[int, float64](nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var nilM *matrix.Matrix[int, float64]
	require.ErrorIs(t, nilM.ScaleInPlace(2), matrix.ErrNilMatrix)
	require.ErrorIs(t, nilM.DivideInPlace(2), matrix.ErrNilMatrix)
}

func TestAddSub(t *testing.T) {
	a := mustInt(t, [][]int{{1, 2}, {3, 4}})
	b := mustInt(t, [][]int{{10, 20}, {30, 40}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, []int{11, 22, 33, 44}, sum.Data())

	diff, err := matrix.Sub(b, a)
	require.NoError(t, err)
	require.Equal(t, []int{9, 18, 27, 36}, diff.Data())

	require.NoError(t, a.AddInPlace(b))
	require.Equal(t, []int{11, 22, 33, 44}, a.Data())
	require.NoError(t, a.SubInPlace(b))
	require.Equal(t, []int{1, 2, 3, 4}, a.Data())
}

func TestAddSubShapeMismatch(t *testing.T) {
	a := mustInt(t, [][]int{{1, 2}, {3, 4}})
	c := mustInt(t, [][]int{{1, 2, 3}})

	_, err := matrix.Add(a, c)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(a, c)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	err = a.AddInPlace(c)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Equal(t, []int{1, 2, 3, 4}, a.Data()) // checked before any write

	err = a.SubInPlace(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestNeg(t *testing.T) {
	m := mustF64(t, [][]float64{{1, -2}, {0, 3.5}})
	n, err := matrix.Neg(m)
	require.NoError(t, err)
	require.Equal(t, []float64{-1, 2, 0, -3.5}, n.Data())

	back, err := matrix.Neg(n)
	require.NoError(t, err)
	require.True(t, back.Equal(m))
}

func TestMulIntegers(t *testing.T) {
	a := mustInt(t, [][]int{{1, 2}, {3, 4}})
	b := mustInt(t, [][]int{{5, 6}, {7, 8}})
	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, "{{19,22},{43,50}}", p.String())

	// 2×3 · 3×1
	c := mustInt(t, [][]int{{1, 0, 2}, {0, 1, 1}})
	v := mustInt(t, [][]int{{3}, {4}, {5}})
	p, err = matrix.Mul(c, v)
	require.NoError(t, err)
	require.Equal(t, 2, p.Rows())
	require.Equal(t, 1, p.Cols())
	require.Equal(t, []int{13, 9}, p.Data())
}

func TestMulDimensionMismatch(t *testing.T) {
	a := mustInt(t, [][]int{{1, 2, 3}})
	_, err := matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMulMatchesGonum(t *testing.T) {
	a := randF64(t, 4, 5, 11)
	b := randF64(t, 5, 3, 12)

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)

	var want mat.Dense
	want.Mul(toGonum(a), toGonum(b))
	if diff := cmp.Diff(want.RawMatrix().Data, got.Data(), approx); diff != "" {
		t.Fatalf("Mul mismatch (-gonum +got):\n%s", diff)
	}
}

func TestMulIdentity(t *testing.T) {
	a := randInt(t, 3, 3, 7)
	id, err := matrix.Identity[int, float64](3)
	require.NoError(t, err)

	left, err := matrix.Mul(id, a)
	require.NoError(t, err)
	right, err := matrix.Mul(a, id)
	require.NoError(t, err)
	require.True(t, left.Equal(a))
	require.True(t, right.Equal(a))
}

func TestTranspose(t *testing.T) {
	m := mustInt(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, m.Transpose())
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 2, m.Cols())
	require.Equal(t, "{{1,4},{2,5},{3,6}}", m.String())

	back, err := matrix.Transposed(m)
	require.NoError(t, err)
	require.Equal(t, "{{1,2,3},{4,5,6}}", back.String())
	require.Equal(t, 3, m.Rows()) // source unchanged

	empty, err := matrix.New[int, float64](0, 4)
	require.NoError(t, err)
	require.NoError(t, empty.Transpose())
	require.Equal(t, 4, empty.Rows())
	require.Equal(t, 0, empty.Cols())
}

func TestTransposeMatchesGonum(t *testing.T) {
	m := randF64(t, 3, 5, 99)
	got, err := matrix.Transposed(m)
	require.NoError(t, err)
	want := mat.DenseCopyOf(toGonum(m).T())
	require.Equal(t, want.RawMatrix().Data, got.Data())
}

func TestMulVec(t *testing.T) {
	m := mustInt(t, [][]int{{1, 2}, {3, 4}, {5, 6}})
	y, err := m.MulVec([]float64{1, 0.5})
	require.NoError(t, err)
	require.Equal(t, []float64{2, 5, 8}, y)

	_, err = m.MulVec([]float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestTraceAndSums(t *testing.T) {
	m := mustInt(t, [][]int{{1, 2}, {3, 4}})
	tr, err := matrix.Trace(m)
	require.NoError(t, err)
	require.Equal(t, 5.0, tr)
	require.Equal(t, []float64{3, 7}, matrix.RowSums(m))
	require.Equal(t, []float64{4, 6}, matrix.ColumnSums(m))

	_, err = matrix.Trace(mustInt(t, [][]int{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	z, err := matrix.ZerosLike(m)
	require.NoError(t, err)
	require.Equal(t, 2, z.Rows())
	require.True(t, z.IsZero())
}
