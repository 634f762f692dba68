// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numkit/matrix"
)

// TestDefaultOptions_Documented verifies that NewOptions() equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.NewOptions()
	require.Equal(t, matrix.DefaultMaxIterations, o.MaxIterations())
	require.Equal(t, matrix.DefaultTolerance, o.Tolerance())
	require.Equal(t, matrix.DefaultEpsilon, o.Epsilon())
}

func TestOptionsLastWriterWins(t *testing.T) {
	o := matrix.NewOptions(
		matrix.WithMaxIterations(10),
		matrix.WithMaxIterations(20),
		matrix.WithTolerance(1e-3),
		matrix.WithEpsilon(0),
		matrix.WithLogger(nil), // restores the no-op logger
	)
	require.Equal(t, 20, o.MaxIterations())
	require.Equal(t, 1e-3, o.Tolerance())
	require.Equal(t, 0.0, o.Epsilon())
}

func TestOptionConstructorsPanic(t *testing.T) {
	require.Panics(t, func() { matrix.WithMaxIterations(0) })
	require.Panics(t, func() { matrix.WithTolerance(-1) })
	require.Panics(t, func() { matrix.WithTolerance(math.NaN()) })
	require.Panics(t, func() { matrix.WithEpsilon(math.Inf(1)) })
	require.Panics(t, func() { matrix.WithSeed(nil) })
	require.Panics(t, func() { matrix.WithSeed([]float64{1, math.NaN()}) })
	require.NotPanics(t, func() { matrix.WithTolerance(0) })
}

// TestWithSeedCopies checks the option does not alias the caller's slice.
func TestWithSeedCopies(t *testing.T) {
	seed := []float64{0, 1}
	opt := matrix.WithSeed(seed)
	seed[0], seed[1] = 1, 0

	est, err := mustF64(t, [][]float64{{2, 0}, {0, 1}}).PowerIterate(opt, matrix.WithMaxIterations(3))
	require.NoError(t, err)
	// seed [0,1] is the λ=1 eigenvector, so the estimate stays at 1
	require.InDelta(t, 1, est.Value, 1e-12)
	require.True(t, est.Converged)
}

// TestToleranceZeroRunsToCap exercises the strict comparison.
func TestToleranceZeroRunsToCap(t *testing.T) {
	est, err := mustF64(t, [][]float64{{2, 0}, {0, 1}}).PowerIterate(
		matrix.WithTolerance(0),
		matrix.WithMaxIterations(7),
	)
	require.NoError(t, err)
	require.False(t, est.Converged)
	require.Equal(t, 7, est.Iterations)
}
