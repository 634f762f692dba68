// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
package matrix_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/numkit/matrix"
)

// F64 is the float64/float64 matrix used by most tests.
type F64 = matrix.Matrix[float64, float64]

var approx = cmpopts.EquateApprox(0, 1e-9)

// mustF64 builds a float64 matrix from rows or fails the test.
func mustF64(tb testing.TB, rows [][]float64) *F64 {
	tb.Helper()
	m, err := matrix.FromRows[float64, float64](rows)
	if err != nil {
		tb.Fatalf("FromRows: %v", err)
	}
	return m
}

// mustInt builds an int matrix (float64 working precision) from rows.
func mustInt(tb testing.TB, rows [][]int) *matrix.Matrix[int, float64] {
	tb.Helper()
	m, err := matrix.FromRows[int, float64](rows)
	if err != nil {
		tb.Fatalf("FromRows: %v", err)
	}
	return m
}

// randInt returns an r×c matrix of small integers from a seeded source.
func randInt(tb testing.TB, r, c int, seed int64) *matrix.Matrix[int, float64] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.New[int, float64](r, c)
	if err != nil {
		tb.Fatalf("New(%d,%d): %v", r, c, err)
	}
	m.Apply(func(_, _ int, _ int) int { return rng.Intn(19) - 9 })
	return m
}

// randF64 returns an r×c matrix of uniform values in [-1, 1).
func randF64(tb testing.TB, r, c int, seed int64) *F64 {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.New[float64, float64](r, c)
	if err != nil {
		tb.Fatalf("New(%d,%d): %v", r, c, err)
	}
	m.Apply(func(_, _ int, _ float64) float64 { return 2*rng.Float64() - 1 })
	return m
}

// toGonum copies m into a gonum Dense for oracle comparisons.
func toGonum(m *F64) *mat.Dense {
	r, c := m.Dims()
	return mat.NewDense(r, c, m.Data())
}

// symEigenByMagnitude returns the eigenvalues of a symmetric matrix sorted by
// decreasing absolute value, computed by gonum.
func symEigenByMagnitude(tb testing.TB, m *F64) []float64 {
	tb.Helper()
	n := m.Rows()
	var es mat.EigenSym
	if !es.Factorize(mat.NewSymDense(n, m.Data()), false) {
		tb.Fatalf("EigenSym.Factorize failed")
	}
	vals := es.Values(nil)
	sort.Slice(vals, func(i, j int) bool { return math.Abs(vals[i]) > math.Abs(vals[j]) })
	return vals
}
