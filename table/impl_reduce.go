// SPDX-License-Identifier: MIT
// Package table - reductions and normalizations.
//
// Purpose:
//   - Per-row / per-column sums and Lp norms, aggregate Sum and Mean, and the
//     in-place normalizations built on them.
//   - Accumulate in a caller-chosen working precision W (float32/float64), which
//     may be wider than the element type V.
//
// Notes:
//   - These are free functions rather than methods because Go methods cannot
//     introduce the extra type parameter W. Call them as table.RowSums[float64](t).
//   - Lp norms delegate to gonum's floats.Norm (special cases p=1, p=2, p=+Inf).
//   - Zero sums / zero norms are not guarded: floating tables receive Inf/NaN,
//     integer tables receive whatever the conversion yields.
//
// Complexity quicksheet:
//   - all reductions O(r*c) time; O(r) or O(c) output.

package table

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// RowSums returns one sum per row, accumulated in W.
func RowSums[W Float, V Value](t *Table[V]) []W {
	out := make([]W, t.r)
	var i, j, base int
	var acc W
	for i = 0; i < t.r; i++ {
		acc = 0
		base = i * t.c
		for j = 0; j < t.c; j++ {
			acc += W(t.data[base+j])
		}
		out[i] = acc
	}

	return out
}

// ColumnSums returns one sum per column, accumulated in W.
func ColumnSums[W Float, V Value](t *Table[V]) []W {
	out := make([]W, t.c)
	var i, j, base int
	for i = 0; i < t.r; i++ {
		base = i * t.c
		for j = 0; j < t.c; j++ {
			out[j] += W(t.data[base+j])
		}
	}

	return out
}

// RowSum returns the sum of row i.
func RowSum[W Float, V Value](t *Table[V], i int) (W, error) {
	if err := validateIndex(i, t.r); err != nil {
		return 0, cellErrorf(ctxRowSum, i, 0, err)
	}
	var acc W
	for _, v := range t.data[i*t.c : (i+1)*t.c] {
		acc += W(v)
	}

	return acc, nil
}

// ColumnSum returns the sum of column j.
func ColumnSum[W Float, V Value](t *Table[V], j int) (W, error) {
	if err := validateIndex(j, t.c); err != nil {
		return 0, cellErrorf(ctxColumnSum, 0, j, err)
	}
	var acc W
	for i := 0; i < t.r; i++ {
		acc += W(t.data[i*t.c+j])
	}

	return acc, nil
}

// Sum returns the sum of all elements.
func Sum[W Float, V Value](t *Table[V]) W {
	var acc W
	for _, v := range t.data {
		acc += W(v)
	}

	return acc
}

// Mean returns the arithmetic mean of all elements; NaN for an empty table.
func Mean[W Float, V Value](t *Table[V]) W {
	if len(t.data) == 0 {
		return W(math.NaN())
	}

	return Sum[W](t) / W(len(t.data))
}

// validateNorm accepts p > 0 (including +Inf).
func validateNorm(p float64) error {
	if math.IsNaN(p) || p <= 0 {
		return fmt.Errorf("%s(p=%g): %w", ctxLpNorms, p, ErrInvalidNorm)
	}

	return nil
}

// RowLpNorms returns (Σ_j |t[i,j]|^p)^(1/p) for every row i.
// MAIN DESCRIPTION:
//   - p = +Inf yields the max-abs norm.
//
// Implementation:
//   - Stage 1: validate p.
//   - Stage 2: widen each row into one reused float64 scratch slice.
//   - Stage 3: floats.Norm per row.
//
// Errors:
//   - ErrInvalidNorm when p <= 0 or NaN.
//
// Complexity:
//   - Time O(r*c), Space O(c) scratch.
func RowLpNorms[W Float, V Value](t *Table[V], p float64) ([]W, error) {
	if err := validateNorm(p); err != nil {
		return nil, err
	}
	out := make([]W, t.r)
	scratch := make([]float64, t.c)
	var i, j, base int
	for i = 0; i < t.r; i++ {
		base = i * t.c
		for j = 0; j < t.c; j++ {
			scratch[j] = float64(t.data[base+j])
		}
		out[i] = W(floats.Norm(scratch, p))
	}

	return out, nil
}

// ColumnLpNorms returns (Σ_i |t[i,j]|^p)^(1/p) for every column j.
// Errors: ErrInvalidNorm when p <= 0 or NaN.
func ColumnLpNorms[W Float, V Value](t *Table[V], p float64) ([]W, error) {
	if err := validateNorm(p); err != nil {
		return nil, err
	}
	out := make([]W, t.c)
	scratch := make([]float64, t.r)
	var i, j int
	for j = 0; j < t.c; j++ {
		for i = 0; i < t.r; i++ {
			scratch[i] = float64(t.data[i*t.c+j])
		}
		out[j] = W(floats.Norm(scratch, p))
	}

	return out, nil
}

// scaleRows divides every element of row i by div[i], computing in W.
func scaleRows[W Float, V Value](t *Table[V], div []W) {
	var i, j, base int
	for i = 0; i < t.r; i++ {
		base = i * t.c
		for j = 0; j < t.c; j++ {
			t.data[base+j] = V(W(t.data[base+j]) / div[i])
		}
	}
}

// scaleColumns divides every element of column j by div[j], computing in W.
func scaleColumns[W Float, V Value](t *Table[V], div []W) {
	var i, j, base int
	for i = 0; i < t.r; i++ {
		base = i * t.c
		for j = 0; j < t.c; j++ {
			t.data[base+j] = V(W(t.data[base+j]) / div[j])
		}
	}
}

// NormalizeByRowSums divides every element by its row sum, in place, and returns
// the sums used. A zero sum is not guarded.
func NormalizeByRowSums[W Float, V Value](t *Table[V]) []W {
	sums := RowSums[W](t)
	scaleRows(t, sums)

	return sums
}

// NormalizeByColumnSums divides every element by its column sum, in place, and
// returns the sums used. A zero sum is not guarded.
func NormalizeByColumnSums[W Float, V Value](t *Table[V]) []W {
	sums := ColumnSums[W](t)
	scaleColumns(t, sums)

	return sums
}

// NormalizeRowsByLp divides every row by its Lp norm, in place, and returns the
// norms used. After NormalizeRowsByLp(t, 2) each non-zero row has unit L2 norm.
func NormalizeRowsByLp[W Float, V Value](t *Table[V], p float64) ([]W, error) {
	norms, err := RowLpNorms[W](t, p)
	if err != nil {
		return nil, err
	}
	scaleRows(t, norms)

	return norms, nil
}

// NormalizeColumnsByLp divides every column by its Lp norm, in place, and returns
// the norms used.
func NormalizeColumnsByLp[W Float, V Value](t *Table[V], p float64) ([]W, error) {
	norms, err := ColumnLpNorms[W](t, p)
	if err != nil {
		return nil, err
	}
	scaleColumns(t, norms)

	return norms, nil
}

// Dot returns Σ_k x[k]*y[k] accumulated in W. Views may come from different
// tables and have different strides (e.g. a row of A and a column of B).
//
// Errors:
//   - ErrDimensionMismatch when x.Len() != y.Len().
//   - ErrOutOfBounds when either view is stale.
func Dot[W Float, V Value](x, y View[V]) (W, error) {
	if x.length != y.length {
		return 0, fmt.Errorf("%s(len %d vs %d): %w", ctxDot, x.length, y.length, ErrDimensionMismatch)
	}
	if x.length == 0 {
		return 0, nil
	}
	if _, ok := x.offset(x.length - 1); !ok {
		return 0, fmt.Errorf("%s: %w", ctxDot, ErrOutOfBounds)
	}
	if _, ok := y.offset(y.length - 1); !ok {
		return 0, fmt.Errorf("%s: %w", ctxDot, ErrOutOfBounds)
	}

	var acc W
	xo, yo := x.origin, y.origin
	for k := 0; k < x.length; k++ {
		acc += W(x.t.data[xo]) * W(y.t.data[yo])
		xo += x.stride
		yo += y.stride
	}

	return acc, nil
}
